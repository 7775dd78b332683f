// Package kv is a small key-value persistence layer with memory, file and
// sqlite backends.
package kv

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var ErrNotFound = errors.New("key not found")

// Store persists opaque values under string keys.
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}

const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// Open returns the store selected by backend, rooted at dir.
func Open(backend, dir string) (Store, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendMemory:
		return NewMemory(), nil
	case "", BackendFile:
		return NewFile(filepath.Join(dir, "store"))
	case BackendSQLite:
		return NewSQLite(filepath.Join(dir, "rorilingo.db"))
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}
