package models

import (
	"github.com/charmbracelet/bubbles/textarea"

	"github.com/Rorical/RoriLingo/internal/editbuf"
	"github.com/Rorical/RoriLingo/internal/history"
	"github.com/Rorical/RoriLingo/internal/langs"
)

// DefaultMaxInputChars bounds the input textarea.
const DefaultMaxInputChars = 2000

type StatusKind int

const (
	StatusReady StatusKind = iota
	StatusLoading
	StatusSuccess
	StatusError
	StatusWarning
)

func (k StatusKind) String() string {
	switch k {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	case StatusWarning:
		return "warning"
	default:
		return "ready"
	}
}

// Focus is the pane receiving keys.
type Focus int

const (
	FocusInput Focus = iota
	FocusSource
	FocusTarget
	FocusHistory
	focusCount
)

// Next cycles focus forward (step 1) or backward (step -1).
func (f Focus) Next(step int) Focus {
	n := (int(f) + step) % int(focusCount)
	if n < 0 {
		n += int(focusCount)
	}
	return Focus(n)
}

const ReadyStatus = "Ready"

// AppModel represents the UI state - only local UI concerns
type AppModel struct {
	Session       Session
	Input         textarea.Model  // Source text editor
	Output        string          // Last translation
	Status        string          // Status bar text
	StatusKind    StatusKind      // Drives the status colour
	Detected      langs.Code      // Detected source language, empty when unknown
	History       []history.Entry // Snapshot pushed by core, newest first
	Selected      int             // Selected history row
	Focus         Focus
	Edits         *editbuf.Buffer
	MaxInputChars int
	LoadingDots   int // Animation counter for loading dots
	Width         int // Terminal width
	Height        int // Terminal height
}

// NewAppModel builds the initial UI state. A non-empty text seeds the input
// and becomes the first edit-buffer entry.
func NewAppModel(session Session, text string, maxChars, editCapacity int) AppModel {
	if maxChars <= 0 {
		maxChars = DefaultMaxInputChars
	}
	ta := textarea.New()
	ta.Placeholder = "Type or paste text to translate..."
	ta.CharLimit = maxChars
	ta.ShowLineNumbers = false
	ta.SetHeight(5)
	ta.Focus()

	edits := editbuf.New(editCapacity)
	if text != "" {
		ta.SetValue(text)
		edits.Record(ta.Value())
	}

	return AppModel{
		Session:       session,
		Input:         ta,
		Status:        ReadyStatus,
		StatusKind:    StatusReady,
		History:       []history.Entry{},
		Focus:         FocusInput,
		Edits:         edits,
		MaxInputChars: maxChars,
	}
}

func (m *AppModel) SetStatus(text string, kind StatusKind) {
	m.Status = text
	m.StatusKind = kind
}

// SetInput replaces the editor contents and records the value.
func (m *AppModel) SetInput(value string) {
	m.Input.SetValue(value)
	m.Edits.Record(m.Input.Value())
}

// ResetOutput clears the translation, detected language and status.
func (m *AppModel) ResetOutput() {
	m.Output = ""
	m.Detected = ""
	m.SetStatus(ReadyStatus, StatusReady)
}

// SelectedEntry returns the highlighted history row.
func (m *AppModel) SelectedEntry() (history.Entry, bool) {
	if m.Selected < 0 || m.Selected >= len(m.History) {
		return history.Entry{}, false
	}
	return m.History[m.Selected], true
}
