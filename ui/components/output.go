package components

import (
	"strings"

	"github.com/Rorical/RoriLingo/internal/langs"
	"github.com/Rorical/RoriLingo/ui/styles"
)

func RenderOutput(output string, target langs.Code, width int) string {
	label := styles.LabelStyle().Render(langs.LabelOrUnknown(target) + " translation")
	body := styles.MutedStyle().Render("Translation will appear here.")
	if strings.TrimSpace(output) != "" {
		body = styles.OutputStyle().Render(output)
	}
	return styles.PaneStyle(width, false).Render(label+"\n"+body) + "\n"
}
