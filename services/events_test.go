package services

import (
	"testing"
	"time"
)

func TestBusDeliversToSubscribers(t *testing.T) {
	bus := NewBus()
	got := make(chan Event, 1)
	bus.Subscribe(func(e Event) { got <- e })

	bus.Publish(Event{Type: EventBookingChanged})

	select {
	case e := <-got:
		if e.Type != EventBookingChanged {
			t.Fatalf("delivered %q, want %q", e.Type, EventBookingChanged)
		}
	case <-time.After(time.Second):
		t.Fatal("subscriber never received the event")
	}
}

func TestBusUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus()
	got := make(chan Event, 1)
	unsubscribe := bus.Subscribe(func(e Event) { got <- e })
	unsubscribe()

	bus.Publish(Event{Type: EventBookingChanged})

	select {
	case <-got:
		t.Fatal("unsubscribed handler still received the event")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestBusFanOut(t *testing.T) {
	bus := NewBus()
	first := make(chan Event, 1)
	second := make(chan Event, 1)
	bus.Subscribe(func(e Event) { first <- e })
	bus.Subscribe(func(e Event) { second <- e })

	bus.Publish(Event{Type: EventServiceChanged})

	for i, ch := range []chan Event{first, second} {
		select {
		case <-ch:
		case <-time.After(time.Second):
			t.Fatalf("subscriber %d never received the event", i)
		}
	}
}
