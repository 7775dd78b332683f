package eventbus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventBus_RoundTrip(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	require.NoError(t, eb.SendToCore(TranslateRequestEvent{Text: "Hello", SourceLang: "auto", TargetLang: "hi"}))
	got := <-eb.UIToCore()
	req, ok := got.(TranslateRequestEvent)
	require.True(t, ok)
	assert.Equal(t, "Hello", req.Request().Text)

	require.NoError(t, eb.SendToUI(HistoryUpdateEvent{Cleared: true}))
	ev := <-eb.CoreToUI()
	assert.Equal(t, HistoryUpdateEvent{Cleared: true}, ev)
}

func TestEventBus_SendAfterClose(t *testing.T) {
	eb := NewEventBus()
	eb.Close()
	eb.Close()

	assert.ErrorIs(t, eb.SendToCore(ClearHistoryEvent{}), ErrClosed)
	assert.ErrorIs(t, eb.SendToUI(TranslationRetryEvent{Attempt: 1}), ErrClosed)
}

func TestEventBus_FullChannelTripsBreaker(t *testing.T) {
	eb := NewEventBus()
	defer eb.Close()

	var reported []EventBusError
	eb.SetErrorCallback(func(e EventBusError) { reported = append(reported, e) })

	for i := 0; i < cap(eb.coreToUI); i++ {
		require.NoError(t, eb.SendToUI(TranslationRetryEvent{Attempt: i}))
	}
	for i := 0; i < 5; i++ {
		assert.Error(t, eb.SendToUI(TranslationRetryEvent{}))
	}
	assert.Equal(t, CircuitOpen, eb.GetCircuitBreakerState())
	assert.Len(t, reported, 5)
	assert.EqualError(t, eb.SendToCore(ClearHistoryEvent{}), "circuit breaker is open")
}

func TestCircuitBreaker_HalfOpenAfterTimeout(t *testing.T) {
	cb := NewCircuitBreaker(1, 10*time.Millisecond)
	cb.RecordFailure()
	assert.True(t, cb.IsOpen())

	time.Sleep(20 * time.Millisecond)
	assert.False(t, cb.IsOpen())
	assert.Equal(t, CircuitHalfOpen, cb.State())

	cb.RecordSuccess()
	assert.Equal(t, CircuitClosed, cb.State())
	assert.Equal(t, "closed", cb.State().String())
}
