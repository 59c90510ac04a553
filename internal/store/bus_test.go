package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBus_DeliversToAllSubscribers(t *testing.T) {
	bus := NewBus()

	ch1, cancel1 := bus.Subscribe()
	defer cancel1()
	ch2, cancel2 := bus.Subscribe()
	defer cancel2()

	bus.Publish(Event{Kind: EventSaved, StudyID: "abc"})

	for _, ch := range []<-chan Event{ch1, ch2} {
		select {
		case ev := <-ch:
			assert.Equal(t, EventSaved, ev.Kind)
			assert.Equal(t, "abc", ev.StudyID)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive event")
		}
	}
}

func TestBus_CancelStopsDelivery(t *testing.T) {
	bus := NewBus()

	ch, cancel := bus.Subscribe()
	cancel()

	// Channel is closed after cancel.
	_, open := <-ch
	assert.False(t, open)

	// Publishing after cancel must not panic.
	bus.Publish(Event{Kind: EventRemoved, StudyID: "abc"})
}

func TestBus_CancelIsIdempotent(t *testing.T) {
	bus := NewBus()

	_, cancel := bus.Subscribe()
	cancel()
	cancel()
}

func TestBus_PublishNeverBlocks(t *testing.T) {
	bus := NewBus()

	ch, cancel := bus.Subscribe()
	defer cancel()

	// Overflow the buffer; extra events are dropped, not blocked on.
	for i := 0; i < 32; i++ {
		bus.Publish(Event{Kind: EventSaved, StudyID: "overflow"})
	}

	var received int
	for {
		select {
		case <-ch:
			received++
		default:
			require.Greater(t, received, 0)
			assert.LessOrEqual(t, received, 8)
			return
		}
	}
}
