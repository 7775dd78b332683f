// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

var ErrUnavailable = errors.New("clipboard unavailable")

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// System uses the OS clipboard (pbcopy, xclip/xsel/wl-copy, or the Win32 API).
type System struct{}

func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return &WriteError{Cause: err}
	}
	return nil
}

// WriteError wraps a failed write to an otherwise supported clipboard.
type WriteError struct {
	Cause error
}

func (e *WriteError) Error() string {
	return ErrUnavailable.Error() + ": " + e.Cause.Error()
}

func (e *WriteError) Unwrap() []error {
	return []error{ErrUnavailable, e.Cause}
}

// Memory records the last write. Handy in tests and headless sessions.
type Memory struct {
	Text   string
	Writes int
	Err    error
}

func (m *Memory) WriteText(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Text = text
	m.Writes++
	return nil
}
