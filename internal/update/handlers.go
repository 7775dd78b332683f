package update

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriLingo/internal/clipboard"
	"github.com/Rorical/RoriLingo/internal/eventbus"
	"github.com/Rorical/RoriLingo/internal/export"
	"github.com/Rorical/RoriLingo/internal/langs"
	"github.com/Rorical/RoriLingo/internal/models"
	"github.com/Rorical/RoriLingo/internal/share"
	"github.com/Rorical/RoriLingo/internal/translate"
)

const (
	statusSending    = "Sending request..."
	statusRetrying   = "Retrying request..."
	statusTranslated = "Translated successfully"
	statusSwapped    = "Languages swapped"
	statusCleared    = "Output cleared"
	statusBusy       = "Busy: wait for the current request"
)

// Samples are the quick-fill phrases bound to alt+1..3.
var Samples = []string{
	"Hello, how are you today?",
	"Where is the nearest train station?",
	"Thank you very much for your help.",
}

// Env carries the side-effect dependencies of the handlers.
type Env struct {
	Bus       *eventbus.EventBus
	Clipboard clipboard.Writer
	ShareBase string
	ExportDir string
	OpenURL   func(string) error
}

// HandleKeyMsgWithEventBus handles keyboard input using event bus
func HandleKeyMsgWithEventBus(appModel *models.AppModel, keyMsg tea.KeyMsg, env Env) tea.Cmd {
	switch keyMsg.String() {
	case "ctrl+c", "esc":
		return tea.Quit
	case "ctrl+t":
		return startTranslation(appModel, env)
	case "ctrl+x":
		swapLanguages(appModel)
		return nil
	case "ctrl+z":
		if value, ok := appModel.Edits.Undo(); ok {
			appModel.Input.SetValue(value)
		}
		return nil
	case "ctrl+y":
		if value, ok := appModel.Edits.Redo(); ok {
			appModel.Input.SetValue(value)
		}
		return nil
	case "ctrl+l":
		if rejectWhileBusy(appModel) {
			return nil
		}
		appModel.SetInput("")
		appModel.ResetOutput()
		return focus(appModel, models.FocusInput)
	case "ctrl+o":
		appModel.Output = ""
		appModel.SetStatus(statusCleared, models.StatusReady)
		return nil
	case "ctrl+k":
		copyText(appModel, env, appModel.Output, "Copied translation to clipboard")
		return nil
	case "ctrl+g":
		copyShareLink(appModel, env)
		return nil
	case "ctrl+q":
		openQRCode(appModel, env)
		return nil
	case "ctrl+s":
		exportOutput(appModel, env)
		return nil
	case "alt+1", "alt+2", "alt+3":
		useSample(appModel, int(keyMsg.String()[4]-'1'))
		return focus(appModel, models.FocusInput)
	case "tab":
		return focus(appModel, appModel.Focus.Next(1))
	case "shift+tab":
		return focus(appModel, appModel.Focus.Next(-1))
	}

	switch appModel.Focus {
	case models.FocusSource, models.FocusTarget:
		handleSelectorKey(appModel, keyMsg)
	case models.FocusHistory:
		handleHistoryKey(appModel, keyMsg, env)
	default:
		return handleInputKey(appModel, keyMsg)
	}
	return nil
}

func rejectWhileBusy(appModel *models.AppModel) bool {
	if appModel.Session.Busy {
		appModel.SetStatus(statusBusy, models.StatusWarning)
		return true
	}
	return false
}

func focus(appModel *models.AppModel, f models.Focus) tea.Cmd {
	appModel.Focus = f
	if f == models.FocusInput {
		return appModel.Input.Focus()
	}
	appModel.Input.Blur()
	return nil
}

func startTranslation(appModel *models.AppModel, env Env) tea.Cmd {
	if rejectWhileBusy(appModel) {
		return nil
	}
	req := eventbus.TranslateRequestEvent{
		Text:       strings.TrimSpace(appModel.Input.Value()),
		SourceLang: appModel.Session.SourceLang,
		TargetLang: appModel.Session.TargetLang,
	}
	if err := req.Request().Validate(); err != nil {
		appModel.SetStatus(err.Error(), models.StatusError)
		return focus(appModel, models.FocusInput)
	}
	if req.TargetLang == langs.Auto {
		appModel.SetStatus("Choose a target language other than Auto.", models.StatusError)
		return nil
	}
	if err := env.Bus.SendToCore(req); err != nil {
		appModel.SetStatus("Error sending request: "+err.Error(), models.StatusError)
		return nil
	}
	appModel.Session.Busy = true
	appModel.LoadingDots = 0
	appModel.SetStatus(statusSending, models.StatusLoading)
	return nil
}

func swapLanguages(appModel *models.AppModel) {
	if rejectWhileBusy(appModel) {
		return
	}
	appModel.Session = appModel.Session.Swap(appModel.Detected)
	input := appModel.Input.Value()
	appModel.SetInput(appModel.Output)
	appModel.Output = input
	appModel.Detected = ""
	appModel.SetStatus(statusSwapped, models.StatusReady)
}

func useSample(appModel *models.AppModel, i int) {
	if i < 0 || i >= len(Samples) {
		return
	}
	appModel.SetInput(Samples[i])
	appModel.ResetOutput()
}

func handleInputKey(appModel *models.AppModel, keyMsg tea.KeyMsg) tea.Cmd {
	before := appModel.Input.Value()
	var cmd tea.Cmd
	appModel.Input, cmd = appModel.Input.Update(keyMsg)
	after := appModel.Input.Value()
	if after == before {
		return cmd
	}
	appModel.Edits.Record(after)
	if strings.TrimSpace(after) == "" {
		appModel.ResetOutput()
	}
	return cmd
}

func handleSelectorKey(appModel *models.AppModel, keyMsg tea.KeyMsg) {
	step := 0
	switch keyMsg.String() {
	case "left", "h", "up", "k":
		step = -1
	case "right", "l", "down", "j":
		step = 1
	}
	if step == 0 {
		return
	}
	if appModel.Focus == models.FocusSource {
		appModel.Session.SourceLang = langs.Next(appModel.Session.SourceLang, step, true)
	} else {
		appModel.Session.TargetLang = langs.Next(appModel.Session.TargetLang, step, false)
	}
}

func handleHistoryKey(appModel *models.AppModel, keyMsg tea.KeyMsg, env Env) {
	switch keyMsg.String() {
	case "up", "k":
		if appModel.Selected > 0 {
			appModel.Selected--
		}
	case "down", "j":
		if appModel.Selected < len(appModel.History)-1 {
			appModel.Selected++
		}
	case "enter":
		entry, ok := appModel.SelectedEntry()
		if !ok {
			return
		}
		if langs.Valid(entry.SourceLang) {
			appModel.Session.SourceLang = entry.SourceLang
		}
		if langs.Valid(entry.TargetLang) && entry.TargetLang != langs.Auto {
			appModel.Session.TargetLang = entry.TargetLang
		}
		appModel.SetInput(entry.SourceText)
		appModel.Output = entry.TranslatedText
		appModel.Detected = ""
		appModel.SetStatus("Loaded from history", models.StatusSuccess)
	case "c":
		if entry, ok := appModel.SelectedEntry(); ok {
			copyText(appModel, env, entry.TranslatedText, "Copied history translation")
		}
	case "x":
		if err := env.Bus.SendToCore(eventbus.ClearHistoryEvent{}); err != nil {
			appModel.SetStatus("Error clearing history: "+err.Error(), models.StatusError)
		}
	}
}

func copyText(appModel *models.AppModel, env Env, text, done string) {
	text = strings.TrimSpace(text)
	if text == "" {
		appModel.SetStatus("Nothing to copy yet.", models.StatusWarning)
		return
	}
	if err := env.Clipboard.WriteText(text); err != nil {
		appModel.SetStatus(clipboardError(err), models.StatusError)
		return
	}
	appModel.SetStatus(done, models.StatusSuccess)
}

func clipboardError(err error) string {
	var we *clipboard.WriteError
	switch {
	case errors.As(err, &we):
		return "Clipboard unavailable: " + we.Cause.Error()
	case errors.Is(err, clipboard.ErrUnavailable):
		return "Clipboard unavailable: no clipboard utility found"
	default:
		return "Clipboard unavailable: " + err.Error()
	}
}

func shareLink(appModel *models.AppModel, env Env) (string, bool) {
	link, err := share.Link(env.ShareBase, appModel.Input.Value(), appModel.Session.SourceLang, appModel.Session.TargetLang)
	if errors.Is(err, share.ErrEmptyText) {
		appModel.SetStatus("Add text before sharing.", models.StatusWarning)
		return "", false
	}
	if err != nil {
		appModel.SetStatus(err.Error(), models.StatusError)
		return "", false
	}
	return link, true
}

func copyShareLink(appModel *models.AppModel, env Env) {
	link, ok := shareLink(appModel, env)
	if !ok {
		return
	}
	if err := env.Clipboard.WriteText(link); err != nil {
		appModel.SetStatus(clipboardError(err), models.StatusError)
		return
	}
	appModel.SetStatus("Copied share link", models.StatusSuccess)
}

func openQRCode(appModel *models.AppModel, env Env) {
	link, ok := shareLink(appModel, env)
	if !ok {
		return
	}
	qr := share.QRCodeURL(link)
	if env.OpenURL == nil {
		appModel.SetStatus("QR code: "+qr, models.StatusReady)
		return
	}
	if err := env.OpenURL(qr); err != nil {
		appModel.SetStatus("Could not open browser, QR code: "+qr, models.StatusWarning)
		return
	}
	appModel.SetStatus("Opened QR code", models.StatusSuccess)
}

func exportOutput(appModel *models.AppModel, env Env) {
	path, err := export.WriteText(env.ExportDir, export.DefaultName, appModel.Output)
	if errors.Is(err, export.ErrEmpty) {
		appModel.SetStatus("Nothing to download yet.", models.StatusWarning)
		return
	}
	if err != nil {
		appModel.SetStatus("Download failed: "+err.Error(), models.StatusError)
		return
	}
	appModel.SetStatus("Saved translation to "+path, models.StatusSuccess)
}

// CoreEventMsg wraps core events for Bubble Tea
type CoreEventMsg struct {
	Event eventbus.CoreEvent
}

// HandleCoreEvent processes events from the core
func HandleCoreEvent(appModel *models.AppModel, coreEventMsg CoreEventMsg) tea.Cmd {
	switch event := coreEventMsg.Event.(type) {
	case eventbus.TranslationRetryEvent:
		appModel.SetStatus(statusRetrying, models.StatusWarning)
	case eventbus.TranslationDoneEvent:
		appModel.Session.Busy = false
		if event.Err != nil {
			appModel.SetStatus(errorMessage(event.Err), models.StatusError)
			return nil
		}
		appModel.Output = event.Result.Translation
		appModel.Detected = event.Result.DetectedSourceLang
		appModel.SetStatus(statusTranslated, models.StatusSuccess)
	case eventbus.HistoryUpdateEvent:
		appModel.History = event.Entries
		if appModel.Selected >= len(appModel.History) {
			appModel.Selected = max(len(appModel.History)-1, 0)
		}
		switch {
		case event.Err != nil:
			appModel.SetStatus("History not saved: "+event.Err.Error(), models.StatusWarning)
		case event.Cleared:
			appModel.Selected = 0
			appModel.SetStatus("History cleared", models.StatusReady)
		}
	}

	return nil
}

func errorMessage(err error) string {
	var te *translate.Error
	if errors.As(err, &te) {
		return te.Message
	}
	return err.Error()
}

type TickMsg time.Time

func TickCmd() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func HandleWindowSizeMsg(appModel *models.AppModel, sizeMsg tea.WindowSizeMsg) {
	appModel.Width = sizeMsg.Width
	appModel.Height = sizeMsg.Height
	if w := sizeMsg.Width - 4; w > 10 {
		appModel.Input.SetWidth(w)
	}
}

func HandleTickMsg(appModel *models.AppModel) tea.Cmd {
	// Only handle UI animations - loading dots
	if appModel.Session.Busy {
		appModel.LoadingDots = (appModel.LoadingDots + 1) % 4
	}
	return TickCmd()
}

// CharCount reports the input length against the limit, e.g. "5 / 2000".
func CharCount(appModel *models.AppModel) string {
	return fmt.Sprintf("%d / %d", len([]rune(appModel.Input.Value())), appModel.MaxInputChars)
}
