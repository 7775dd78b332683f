package core

import (
	"context"
	"errors"
	"log"

	"github.com/Rorical/RoriLingo/internal/eventbus"
	"github.com/Rorical/RoriLingo/internal/history"
	"github.com/Rorical/RoriLingo/internal/langs"
	"github.com/Rorical/RoriLingo/internal/translate"
)

// ErrBusy is reported when a request arrives while another is in flight.
var ErrBusy = errors.New("a translation is already in progress")

// TranslateService owns the translate client and the history store. All
// requests are served one at a time from a single goroutine.
type TranslateService struct {
	translator translate.Translator
	history    *history.Store
	state      *TranslateState
	eventBus   *eventbus.EventBus
	ctx        context.Context
	cancel     context.CancelFunc
	done       chan struct{}
}

func NewTranslateService(tr translate.Translator, store *history.Store, eb *eventbus.EventBus) *TranslateService {
	ctx, cancel := context.WithCancel(context.Background())
	return &TranslateService{
		translator: tr,
		history:    store,
		state:      NewTranslateState(),
		eventBus:   eb,
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
	}
}

// Start runs the core logic in a goroutine
func (ts *TranslateService) Start() {
	// Send initial history to UI immediately
	ts.pushHistoryToUI(false, nil)
	go ts.eventLoop()
}

// Stop cancels any in-flight request and waits for the loop to exit.
func (ts *TranslateService) Stop() {
	ts.cancel()
	<-ts.done
}

func (ts *TranslateService) State() *TranslateState {
	return ts.state
}

func (ts *TranslateService) eventLoop() {
	defer close(ts.done)
	for {
		select {
		case <-ts.ctx.Done():
			return
		case event, ok := <-ts.eventBus.UIToCore():
			if !ok {
				return
			}
			ts.handleUIEvent(event)
		}
	}
}

func (ts *TranslateService) handleUIEvent(event eventbus.UIEvent) {
	switch e := event.(type) {
	case eventbus.TranslateRequestEvent:
		ts.processRequest(e)
	case eventbus.ClearHistoryEvent:
		ts.clearHistory()
	}
}

func (ts *TranslateService) processRequest(req eventbus.TranslateRequestEvent) {
	if !ts.state.StartProcessing(req) {
		ts.pushToUI(eventbus.TranslationDoneEvent{Request: req, Err: ErrBusy})
		return
	}

	ctx := translate.WithRetryHook(ts.ctx, func(attempt int, err error) {
		log.Printf("translate attempt %d failed, retrying: %v", attempt, err)
		ts.pushToUI(eventbus.TranslationRetryEvent{Attempt: attempt, Err: err})
	})

	result, err := ts.translator.Translate(ctx, req.Request())
	if err != nil {
		ts.state.FinishProcessingWithError(err)
		log.Printf("translate failed: %v", err)
		ts.pushToUI(eventbus.TranslationDoneEvent{Request: req, Err: err})
		return
	}
	ts.state.FinishProcessing()
	ts.pushToUI(eventbus.TranslationDoneEvent{Request: req, Result: result})

	source := req.SourceLang
	if d := result.DetectedSourceLang; d != langs.Auto && langs.Valid(d) {
		source = d
	}
	addErr := ts.history.Add(history.Entry{
		SourceText:     req.Text,
		TranslatedText: result.Translation,
		SourceLang:     source,
		TargetLang:     req.TargetLang,
	})
	if addErr != nil {
		log.Printf("history add failed: %v", addErr)
	}
	ts.pushHistoryToUI(false, addErr)
}

func (ts *TranslateService) clearHistory() {
	err := ts.history.Clear()
	if err != nil {
		log.Printf("history clear failed: %v", err)
	}
	ts.pushHistoryToUI(err == nil, err)
}

func (ts *TranslateService) pushHistoryToUI(cleared bool, err error) {
	ts.pushToUI(eventbus.HistoryUpdateEvent{
		Entries: ts.history.List(),
		Cleared: cleared,
		Err:     err,
	})
}

func (ts *TranslateService) pushToUI(event eventbus.CoreEvent) {
	if err := ts.eventBus.SendToUI(event); err != nil {
		log.Printf("core: dropping %T: %v", event, err)
	}
}
