// Package history persists the most recent translations.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Rorical/RoriLingo/internal/kv"
	"github.com/Rorical/RoriLingo/internal/langs"
)

const (
	// Key is the storage key; bump the suffix if Entry changes shape.
	Key = "translator_history_v1"

	DefaultCapacity = 10
)

// Entry is one past translation. Entries are never modified after creation.
type Entry struct {
	SourceText     string     `json:"source_text" yaml:"source_text"`
	TranslatedText string     `json:"translated_text" yaml:"translated_text"`
	SourceLang     langs.Code `json:"source_lang" yaml:"source_lang"`
	TargetLang     langs.Code `json:"target_lang" yaml:"target_lang"`
	CreatedAt      time.Time  `json:"created_at" yaml:"created_at"`
}

// Store is a bounded, most-recent-first list of entries on top of a kv.Store.
type Store struct {
	kv       kv.Store
	capacity int
}

func NewStore(store kv.Store, capacity int) *Store {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &Store{kv: store, capacity: capacity}
}

func (s *Store) Capacity() int {
	return s.capacity
}

// List returns entries most recent first. Unreadable or corrupted storage
// reads as an empty history.
func (s *Store) List() []Entry {
	data, err := s.kv.Get(Key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			log.Printf("history: read failed, treating as empty: %v", err)
		}
		return []Entry{}
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("history: corrupted payload, treating as empty: %v", err)
		return []Entry{}
	}
	if entries == nil {
		return []Entry{}
	}
	if len(entries) > s.capacity {
		entries = entries[:s.capacity]
	}
	for i := range entries {
		entries[i].SourceLang = registered(entries[i].SourceLang)
		entries[i].TargetLang = registered(entries[i].TargetLang)
	}
	return entries
}

// registered blanks codes outside the language registry so they read as absent.
func registered(code langs.Code) langs.Code {
	if !langs.Valid(code) {
		return ""
	}
	return code
}

// Get returns the entry at index in List order.
func (s *Store) Get(index int) (Entry, bool) {
	entries := s.List()
	if index < 0 || index >= len(entries) {
		return Entry{}, false
	}
	return entries[index], true
}

// Add prepends entry and persists the list truncated to capacity.
func (s *Store) Add(entry Entry) error {
	if !langs.Valid(entry.SourceLang) || !langs.Valid(entry.TargetLang) {
		return fmt.Errorf("history entry has unsupported languages %q -> %q", entry.SourceLang, entry.TargetLang)
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	entry.CreatedAt = entry.CreatedAt.UTC()

	entries := append([]Entry{entry}, s.List()...)
	if len(entries) > s.capacity {
		entries = entries[:s.capacity]
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := s.kv.Set(Key, data); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}

func (s *Store) Clear() error {
	if err := s.kv.Delete(Key); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
