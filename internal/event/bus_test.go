package event_test

import (
	"testing"

	"github.com/auricle/auricle/internal/event"
	"github.com/auricle/auricle/internal/suspend"
)

func TestPublishDeliversInOrder(t *testing.T) {
	bus := event.NewBus(nil)
	var got []string
	bus.Subscribe(event.TypeFocus, func(e event.Event) { got = append(got, "a") })
	bus.Subscribe(event.TypeFocus, func(e event.Event) { got = append(got, "b") })

	if !bus.Publish(event.Event{Type: event.TypeFocus}) {
		t.Fatal("delivery reported false")
	}
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("got = %v", got)
	}
}

func TestSuspensionDropsEchoes(t *testing.T) {
	scope := suspend.NewScope()
	bus := event.NewBus(scope)

	delivered := 0
	bus.Subscribe(event.TypeDOMSubtreeModified, func(e event.Event) { delivered++ })

	scope.Enter()
	if bus.Publish(event.Event{Type: event.TypeDOMSubtreeModified}) {
		t.Error("echo delivered during suspension")
	}
	scope.Exit()

	if !bus.Publish(event.Event{Type: event.TypeDOMSubtreeModified}) {
		t.Error("event dropped outside suspension")
	}
	if delivered != 1 {
		t.Errorf("delivered = %d, want 1", delivered)
	}
	if bus.Dropped() != 1 {
		t.Errorf("Dropped() = %d, want 1", bus.Dropped())
	}
}

func TestCommandRepliesBypassSuspension(t *testing.T) {
	scope := suspend.NewScope()
	bus := event.NewBus(scope)

	delivered := 0
	bus.Subscribe(event.TypeCommandReply, func(e event.Event) { delivered++ })

	scope.Enter()
	defer scope.Exit()

	if !bus.Publish(event.Event{Type: event.TypeCommandReply, Detail: `{"command":"nextHeading"}`}) {
		t.Error("reply suppressed")
	}
	if delivered != 1 {
		t.Errorf("delivered = %d", delivered)
	}
}

func TestUnsubscribedTypeIsDeliveredToNobody(t *testing.T) {
	bus := event.NewBus(nil)
	if !bus.Publish(event.Event{Type: event.TypeFocus}) {
		t.Error("publish with no subscribers is still a delivery")
	}
}
