package components

import (
	"github.com/Rorical/RoriLingo/internal/langs"
	"github.com/Rorical/RoriLingo/ui/styles"
)

// RenderInput frames the textarea view under a label naming the source language.
func RenderInput(view string, source langs.Code, focused bool, width int) string {
	label := styles.LabelStyle().Render("Input text (" + langs.LabelOrUnknown(source) + ")")
	return styles.PaneStyle(width, focused).Render(label+"\n"+view) + "\n"
}
