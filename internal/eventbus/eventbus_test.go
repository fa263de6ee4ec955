package eventbus

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishDeliversToSubscribers(t *testing.T) {
	b := New()
	defer b.Close()

	got := make(chan DomainEvent, 1)
	b.Subscribe(EventPageRequested, func(e DomainEvent) {
		got <- e
	})

	b.Publish(PageRequestedEvent{Query: "golang", Number: 2})

	select {
	case e := <-got:
		req, ok := e.(PageRequestedEvent)
		require.True(t, ok)
		assert.Equal(t, "golang", req.Query)
		assert.Equal(t, 2, req.Number)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	b := New()
	defer b.Close()

	var calls atomic.Int32
	unsubscribe := b.Subscribe(EventError, func(DomainEvent) {
		calls.Add(1)
	})
	unsubscribe()

	delivered := make(chan struct{}, 1)
	b.Subscribe(EventError, func(DomainEvent) {
		delivered <- struct{}{}
	})

	b.Publish(ErrorEvent{Message: "boom", Err: errors.New("boom")})

	select {
	case <-delivered:
	case <-time.After(time.Second):
		t.Fatal("remaining subscriber was not called")
	}
	assert.Equal(t, int32(0), calls.Load())
}

func TestHandlerPanicDoesNotStopBus(t *testing.T) {
	b := New()
	defer b.Close()

	b.Subscribe(EventSearchFailed, func(DomainEvent) {
		panic("handler failure")
	})
	ok := make(chan struct{}, 1)
	b.Subscribe(EventResultsLoaded, func(DomainEvent) {
		ok <- struct{}{}
	})

	b.Publish(SearchFailedEvent{Query: "x"})
	b.Publish(ResultsLoadedEvent{})

	select {
	case <-ok:
	case <-time.After(time.Second):
		t.Fatal("bus stopped after handler panic")
	}
}

func TestPublishAfterCloseIsDropped(t *testing.T) {
	b := New()
	var calls atomic.Int32
	b.Subscribe(EventConfigSaved, func(DomainEvent) {
		calls.Add(1)
	})
	b.Close()

	b.Publish(ConfigSavedEvent{Path: "/tmp/x"})
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}
