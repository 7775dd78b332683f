package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Rorical/RoriLingo/internal/models"
)

func HandleUpdateWithEventBus(appModel *models.AppModel, msg tea.Msg, env Env) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return HandleKeyMsgWithEventBus(appModel, msg, env)
	case tea.WindowSizeMsg:
		HandleWindowSizeMsg(appModel, msg)
		return nil
	case TickMsg:
		return HandleTickMsg(appModel)
	case CoreEventMsg:
		return HandleCoreEvent(appModel, msg)
	}
	return nil
}
