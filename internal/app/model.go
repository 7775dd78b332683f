package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriLingo/internal/dispatcher"
	"github.com/Rorical/RoriLingo/internal/models"
	"github.com/Rorical/RoriLingo/internal/update"
	"github.com/Rorical/RoriLingo/ui/components"
)

type AppModel struct {
	appModel   models.AppModel
	dispatcher *dispatcher.EventDispatcher
	env        update.Env
}

func (m *AppModel) Init() tea.Cmd {
	return tea.Batch(
		update.TickCmd(),
		textarea.Blink,
		m.dispatcher.ListenForUIEvents(),
	)
}

func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle core events and continue listening
	if coreEvent, ok := msg.(update.CoreEventMsg); ok {
		cmd := update.HandleCoreEvent(&m.appModel, coreEvent)
		return m, tea.Batch(cmd, m.dispatcher.ListenForUIEvents())
	}

	cmd := update.HandleUpdateWithEventBus(&m.appModel, msg, m.env)
	return m, cmd
}

func (m *AppModel) View() string {
	am := &m.appModel
	var b strings.Builder

	b.WriteString(components.RenderHeader(am.Session, am.Focus, am.Detected))
	b.WriteString(components.RenderInput(am.Input.View(), am.Session.SourceLang, am.Focus == models.FocusInput, am.Width))
	b.WriteString(components.RenderOutput(am.Output, am.Session.TargetLang, am.Width))
	b.WriteString(components.RenderHistory(am.History, am.Selected, am.Focus == models.FocusHistory, am.Width))
	b.WriteString(components.RenderStatus(
		am.Status,
		am.StatusKind,
		am.Session.Busy,
		am.LoadingDots,
		update.CharCount(am),
		am.Edits.CanUndo(),
		am.Edits.CanRedo(),
		am.Width,
	))
	b.WriteString("\n")
	b.WriteString(components.RenderHelp())

	return b.String()
}
