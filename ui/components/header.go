package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Rorical/RoriLingo/internal/langs"
	"github.com/Rorical/RoriLingo/internal/models"
	"github.com/Rorical/RoriLingo/ui/styles"
)

// RenderHeader shows the title, both language selectors and the detected
// source language.
func RenderHeader(session models.Session, focus models.Focus, detected langs.Code) string {
	source := styles.SelectorStyle(focus == models.FocusSource).Render("From: " + langs.LabelOrUnknown(session.SourceLang))
	target := styles.SelectorStyle(focus == models.FocusTarget).Render("To: " + langs.LabelOrUnknown(session.TargetLang))
	det := styles.MutedStyle().Render("Detected: " + langs.Detected(detected))

	return lipgloss.JoinHorizontal(lipgloss.Center,
		styles.TitleStyle().Render("RoriLingo"),
		" ", source, " → ", target, "  ", det,
	) + "\n"
}
