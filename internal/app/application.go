package app

import (
	"fmt"
	"log"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriLingo/internal/clipboard"
	"github.com/Rorical/RoriLingo/internal/config"
	"github.com/Rorical/RoriLingo/internal/core"
	"github.com/Rorical/RoriLingo/internal/dispatcher"
	"github.com/Rorical/RoriLingo/internal/eventbus"
	"github.com/Rorical/RoriLingo/internal/history"
	"github.com/Rorical/RoriLingo/internal/kv"
	"github.com/Rorical/RoriLingo/internal/langs"
	"github.com/Rorical/RoriLingo/internal/models"
	"github.com/Rorical/RoriLingo/internal/share"
	"github.com/Rorical/RoriLingo/internal/translate"
	"github.com/Rorical/RoriLingo/internal/update"
)

const logFileName = "rorilingo.log"

// Application manages the complete application lifecycle
type Application struct {
	config     *config.Config
	store      kv.Store
	eventBus   *eventbus.EventBus
	dispatcher *dispatcher.EventDispatcher
	service    *core.TranslateService
	model      *AppModel
}

// NewClient builds the translate client from the active profile and settings.
func NewClient(cfg *config.Config) *translate.Client {
	return translate.NewClient(translate.Options{
		BaseURL:    cfg.GetAPIBase(),
		Timeout:    cfg.Settings.Timeout(),
		Retries:    cfg.Settings.Retries,
		RetryDelay: cfg.Settings.RetryDelay(),
	})
}

// OpenHistory opens the configured kv backend and wraps it in a history
// store. The caller closes the returned kv.Store.
func OpenHistory(cfg *config.Config) (*history.Store, kv.Store, error) {
	dir, err := config.Dir()
	if err != nil {
		return nil, nil, err
	}
	store, err := kv.Open(cfg.Settings.StoreBackend, dir)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s store: %w", cfg.Settings.StoreBackend, err)
	}
	return history.NewStore(store, cfg.Settings.HistoryLimit), store, nil
}

// InitialSession applies the configured default target and then seed.
func InitialSession(cfg *config.Config, seed share.Params) models.Session {
	session := models.NewSession()
	if code, ok := langs.Normalize(cfg.Settings.DefaultTarget); ok {
		session.TargetLang = code
	}
	return session.Seed(seed)
}

func NewApplication(cfg *config.Config, seed share.Params) (*Application, error) {
	hist, store, err := OpenHistory(cfg)
	if err != nil {
		return nil, err
	}

	// Create event bus
	eb := eventbus.NewEventBus()
	eb.SetErrorCallback(func(e eventbus.EventBusError) {
		log.Printf("event bus: %v", e)
	})

	// Create dispatcher
	disp := dispatcher.NewEventDispatcher(eb)

	service := core.NewTranslateService(NewClient(cfg), hist, eb)

	appModel := models.NewAppModel(
		InitialSession(cfg, seed),
		seed.Text,
		cfg.Settings.MaxInputChars,
		cfg.Settings.InputHistoryLimit,
	)

	model := &AppModel{
		appModel:   appModel,
		dispatcher: disp,
		env: update.Env{
			Bus:       eb,
			Clipboard: clipboard.System{},
			ShareBase: cfg.Settings.ShareBase,
			ExportDir: cfg.Settings.ExportDir,
			OpenURL:   share.Open,
		},
	}

	return &Application{
		config:     cfg,
		store:      store,
		eventBus:   eb,
		dispatcher: disp,
		service:    service,
		model:      model,
	}, nil
}

func (app *Application) Start() error {
	// Keep log output off the terminal while the UI owns it
	if dir, err := config.Dir(); err == nil {
		if f, err := tea.LogToFile(filepath.Join(dir, logFileName), "rorilingo"); err == nil {
			defer f.Close()
		}
	}

	app.service.Start()

	// Run UI
	p := tea.NewProgram(app.model, tea.WithAltScreen())
	_, err := p.Run()

	return err
}

func (app *Application) Stop() {
	app.service.Stop()
	app.dispatcher.Stop()
	app.eventBus.Close()
	if err := app.store.Close(); err != nil {
		log.Printf("close store: %v", err)
	}
}
