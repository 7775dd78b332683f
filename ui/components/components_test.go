package components

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Rorical/RoriLingo/internal/history"
	"github.com/Rorical/RoriLingo/internal/models"
)

func TestRenderHeader(t *testing.T) {
	out := RenderHeader(models.NewSession(), models.FocusSource, "en")
	assert.Contains(t, out, "From: Auto")
	assert.Contains(t, out, "To: Hindi")
	assert.Contains(t, out, "Detected: English (en)")
}

func TestRenderHistory(t *testing.T) {
	assert.Contains(t, RenderHistory(nil, 0, false, 80), "No translations yet.")

	out := RenderHistory([]history.Entry{{
		SourceText:     "Hello",
		TranslatedText: "नमस्ते",
		SourceLang:     "en",
		TargetLang:     "hi",
		CreatedAt:      time.Date(2025, 1, 2, 3, 4, 0, 0, time.UTC),
	}}, 0, true, 80)
	assert.Contains(t, out, "History (1)")
	assert.Contains(t, out, "English → Hindi")
	assert.Contains(t, out, "Hello")
}

func TestRenderOutput_Placeholder(t *testing.T) {
	assert.Contains(t, RenderOutput("", "hi", 80), "Translation will appear here.")
	assert.Contains(t, RenderOutput("नमस्ते", "hi", 80), "Hindi translation")
}

func TestRenderStatus(t *testing.T) {
	out := RenderStatus("Sending request", models.StatusLoading, true, 2, "5 / 2000", true, false, 80)
	assert.Contains(t, out, "Sending request..")
	assert.Contains(t, out, "5 / 2000")
	assert.Contains(t, out, "undo ✓ redo ✗")
}

func TestPreview(t *testing.T) {
	long := ""
	for i := 0; i < 100; i++ {
		long += "a"
	}
	assert.Len(t, []rune(preview(long)), previewChars)
	assert.Equal(t, "a b", preview("a\n  b"))
}
