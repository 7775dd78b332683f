package core

import (
	"sync"

	"github.com/Rorical/RoriLingo/internal/eventbus"
)

// TranslateState tracks the request the core is currently serving
type TranslateState struct {
	mu           sync.RWMutex
	isProcessing bool
	current      eventbus.TranslateRequestEvent
	lastError    error
	completed    int
	failed       int
}

func NewTranslateState() *TranslateState {
	return &TranslateState{}
}

// StartProcessing marks req as in flight. It reports false when another
// request is already being served.
func (ts *TranslateState) StartProcessing(req eventbus.TranslateRequestEvent) bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	if ts.isProcessing {
		return false
	}
	ts.isProcessing = true
	ts.current = req
	ts.lastError = nil
	return true
}

func (ts *TranslateState) FinishProcessing() {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.isProcessing = false
	ts.current = eventbus.TranslateRequestEvent{}
	ts.completed++
}

func (ts *TranslateState) FinishProcessingWithError(err error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	ts.isProcessing = false
	ts.current = eventbus.TranslateRequestEvent{}
	ts.lastError = err
	ts.failed++
}

func (ts *TranslateState) IsProcessing() bool {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.isProcessing
}

func (ts *TranslateState) Current() eventbus.TranslateRequestEvent {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.current
}

func (ts *TranslateState) GetLastError() error {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.lastError
}

// Counts returns completed and failed request totals.
func (ts *TranslateState) Counts() (completed, failed int) {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return ts.completed, ts.failed
}
