package components

import (
	"fmt"
	"strings"

	"github.com/Rorical/RoriLingo/internal/history"
	"github.com/Rorical/RoriLingo/internal/langs"
	"github.com/Rorical/RoriLingo/ui/styles"
)

const previewChars = 60

// RenderHistory lists recent translations, newest first.
func RenderHistory(entries []history.Entry, selected int, focused bool, width int) string {
	var b strings.Builder
	b.WriteString(styles.LabelStyle().Render(fmt.Sprintf("History (%d)", len(entries))))
	b.WriteString("\n")

	if len(entries) == 0 {
		b.WriteString(styles.MutedStyle().Render("No translations yet."))
		return styles.PaneStyle(width, focused).Render(b.String()) + "\n"
	}

	for i, e := range entries {
		meta := fmt.Sprintf("%s → %s | %s",
			langs.LabelOrUnknown(e.SourceLang),
			langs.LabelOrUnknown(e.TargetLang),
			e.CreatedAt.Local().Format("2006-01-02 15:04"))
		row := meta + "\nIn:  " + preview(e.SourceText) + "\nOut: " + preview(e.TranslatedText)
		b.WriteString(styles.HistoryRowStyle(focused && i == selected).Render(row))
		if i < len(entries)-1 {
			b.WriteString("\n")
		}
	}
	return styles.PaneStyle(width, focused).Render(b.String()) + "\n"
}

func preview(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= previewChars {
		return s
	}
	return string(r[:previewChars-1]) + "…"
}
