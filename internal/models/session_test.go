package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rorical/RoriLingo/internal/langs"
	"github.com/Rorical/RoriLingo/internal/share"
)

func TestNewSession_Defaults(t *testing.T) {
	s := NewSession()
	assert.Equal(t, langs.Auto, s.SourceLang)
	assert.Equal(t, langs.Code("hi"), s.TargetLang)
	assert.False(t, s.Busy)
}

func TestSeedSession(t *testing.T) {
	tests := []struct {
		name   string
		params share.Params
		want   Session
	}{
		{"empty", share.Params{}, Session{SourceLang: langs.Auto, TargetLang: "hi"}},
		{"both", share.Params{Source: "fr", Target: "de"}, Session{SourceLang: "fr", TargetLang: "de"}},
		{"unknown source", share.Params{Source: "xx", Target: "es"}, Session{SourceLang: langs.Auto, TargetLang: "es"}},
		{"auto target ignored", share.Params{Target: langs.Auto}, Session{SourceLang: langs.Auto, TargetLang: "hi"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SeedSession(tt.params))
		})
	}
}

func TestSession_Swap(t *testing.T) {
	s := Session{SourceLang: "en", TargetLang: "hi"}
	assert.Equal(t, Session{SourceLang: "hi", TargetLang: "en"}, s.Swap(""))

	auto := Session{SourceLang: langs.Auto, TargetLang: "hi"}
	assert.Equal(t, Session{SourceLang: "hi", TargetLang: "en"}, auto.Swap("en"))
	assert.Equal(t, Session{SourceLang: "hi", TargetLang: langs.Auto}, auto.Swap(""))
}

func TestFocus_Next(t *testing.T) {
	assert.Equal(t, FocusSource, FocusInput.Next(1))
	assert.Equal(t, FocusInput, FocusHistory.Next(1))
	assert.Equal(t, FocusHistory, FocusInput.Next(-1))
}

func TestNewAppModel_SeedsInput(t *testing.T) {
	m := NewAppModel(NewSession(), "Hello", 0, 50)
	assert.Equal(t, "Hello", m.Input.Value())
	assert.Equal(t, DefaultMaxInputChars, m.MaxInputChars)
	assert.True(t, m.Edits.CanUndo())
	assert.Equal(t, "Ready", m.Status)
	assert.NotNil(t, m.History)
}
