package components

import (
	"strings"

	"github.com/Rorical/RoriLingo/internal/models"
	"github.com/Rorical/RoriLingo/ui/styles"
)

const helpText = "ctrl+t translate · ctrl+x swap · ctrl+z/y undo/redo · ctrl+k copy · ctrl+g link · ctrl+q QR · ctrl+s save · alt+1-3 samples · tab focus · esc quit"

func RenderStatus(status string, kind models.StatusKind, loading bool, loadingDots int, counter string, canUndo, canRedo bool, width int) string {
	statusContent := status
	if loading {
		statusContent += strings.Repeat(".", loadingDots)
	}

	right := counter + "  undo " + mark(canUndo) + " redo " + mark(canRedo)
	gap := width - len([]rune(statusContent)) - len([]rune(right)) - 2
	if gap < 1 {
		gap = 1
	}

	return styles.StatusStyle(width, kind).Render(statusContent + strings.Repeat(" ", gap) + right)
}

func RenderHelp() string {
	return styles.HelpStyle().Render(helpText)
}

func mark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}
