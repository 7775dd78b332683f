package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

type testApp struct {
	model *AppModel
	store *history.Store
}

func newTestApp(t *testing.T, handler http.HandlerFunc, text string) *testApp {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := translate.NewClient(translate.Options{
		BaseURL:    srv.URL,
		Timeout:    100 * time.Millisecond,
		RetryDelay: 10 * time.Millisecond,
	})
	eb := eventbus.NewEventBus()
	store := history.NewStore(kv.NewMemory(), history.DefaultCapacity)
	svc := core.NewTranslateService(client, store, eb)
	disp := dispatcher.NewEventDispatcher(eb)
	svc.Start()
	t.Cleanup(func() {
		svc.Stop()
		disp.Stop()
		eb.Close()
	})

	m := &AppModel{
		appModel:   models.NewAppModel(models.NewSession(), text, 2000, 50),
		dispatcher: disp,
		env:        update.Env{Bus: eb, Clipboard: &clipboard.Memory{}, ExportDir: t.TempDir()},
	}
	ta := &testApp{model: m, store: store}
	ta.pump(t) // initial history snapshot
	return ta
}

// pump delivers the next core event through the model.
func (a *testApp) pump(t *testing.T) update.CoreEventMsg {
	t.Helper()
	done := make(chan tea.Msg, 1)
	go func() { done <- a.model.dispatcher.ListenForUIEvents()() }()
	select {
	case msg := <-done:
		ev, ok := msg.(update.CoreEventMsg)
		require.True(t, ok)
		a.model.Update(ev)
		return ev
	case <-time.After(3 * time.Second):
		t.Fatal("no core event")
		return update.CoreEventMsg{}
	}
}

func TestApp_TranslateHelloToHindi(t *testing.T) {
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "Hello", body["text"])
		assert.Equal(t, "auto", body["source_lang"])
		assert.Equal(t, "hi", body["target_lang"])
		w.Write([]byte(`{"translation":"नमस्ते","detected_source_lang":"en"}`))
	}, "Hello")

	app.model.Update(tea.KeyMsg{Type: tea.KeyCtrlT})
	assert.True(t, app.model.appModel.Session.Busy)

	app.pump(t) // done
	app.pump(t) // history

	am := app.model.appModel
	assert.False(t, am.Session.Busy)
	assert.Equal(t, "नमस्ते", am.Output)
	assert.Equal(t, "English (en)", langs.Detected(am.Detected))
	require.Len(t, am.History, 1)
	assert.Equal(t, langs.Code("en"), am.History[0].SourceLang)
	assert.Equal(t, langs.Code("hi"), am.History[0].TargetLang)
	assert.Len(t, app.store.List(), 1)
	assert.Contains(t, app.model.View(), "नमस्ते")
}

func TestApp_DoubleTimeoutLeavesOutput(t *testing.T) {
	var calls int32
	app := newTestApp(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}, "Hello")
	app.model.appModel.Output = "earlier"

	app.model.Update(tea.KeyMsg{Type: tea.KeyCtrlT})

	retry := app.pump(t)
	assert.IsType(t, eventbus.TranslationRetryEvent{}, retry.Event)
	assert.Equal(t, "Retrying request...", app.model.appModel.Status)

	app.pump(t)
	am := app.model.appModel
	assert.Equal(t, "Request timed out", am.Status)
	assert.Equal(t, "earlier", am.Output)
	assert.False(t, am.Session.Busy)
	assert.Empty(t, am.History)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestInitialSession(t *testing.T) {
	cfg := &config.Config{Settings: config.DefaultSettings()}
	cfg.Settings.DefaultTarget = "fr"

	assert.Equal(t, models.Session{SourceLang: langs.Auto, TargetLang: "fr"}, InitialSession(cfg, share.Params{}))
	assert.Equal(t,
		models.Session{SourceLang: "en", TargetLang: "de"},
		InitialSession(cfg, share.Params{Source: "en", Target: "de"}))

	cfg.Settings.DefaultTarget = "klingon"
	assert.Equal(t, langs.Code("hi"), InitialSession(cfg, share.Params{}).TargetLang)
}
