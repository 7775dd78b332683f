package translate

import (
	"errors"
	"fmt"
)

// Kind classifies a failed translation.
type Kind int

const (
	KindValidation Kind = iota
	KindTransport
	KindTimeout
	KindProtocol
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindTransport:
		return "transport"
	case KindTimeout:
		return "timeout"
	case KindProtocol:
		return "protocol"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is returned by Client.Translate. Message is what the user sees.
type Error struct {
	Kind     Kind
	Status   int // HTTP status, 0 when no response was received
	Message  string
	Attempts int
	Err      error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether another attempt could succeed. Malformed
// success bodies are not retried.
func (e *Error) Retryable() bool {
	switch e.Kind {
	case KindTransport, KindTimeout:
		return true
	case KindProtocol:
		return e.Status != 0 && (e.Status < 200 || e.Status > 299)
	default:
		return false
	}
}

// KindOf returns the kind of err, and false if err is not a *Error.
func KindOf(err error) (Kind, bool) {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}
