package eventbus

import (
	"testing"

	"github.com/DmitriyGrigoriev/console-app/test"
)

func TestBus_Publish(t *testing.T) {
	test.DisableLogging()

	t.Run("it delivers events to subscribers in subscription order", func(t *testing.T) {
		bus := New()

		var order []string

		bus.Subscribe(func(Event) {
			order = append(order, "first")
		})
		bus.Subscribe(func(Event) {
			order = append(order, "second")
		})

		bus.Publish(Event{Key: "k", Value: "v"})

		test.AssertEqual(t, len(order), 2)
		test.AssertEqual(t, order[0], "first")
		test.AssertEqual(t, order[1], "second")
	})

	t.Run("it delivers the payload unchanged", func(t *testing.T) {
		bus := New()

		var got Event
		bus.Subscribe(func(event Event) {
			got = event
		})

		want := Event{Key: "k", Deleted: true}
		bus.Publish(want)

		test.AssertEqual(t, got, want)
	})

	t.Run("it delivers each event at most once per subscriber", func(t *testing.T) {
		bus := New()

		calls := 0
		bus.Subscribe(func(Event) {
			calls++
		})

		bus.Publish(Event{Key: "k"})
		bus.Publish(Event{Key: "k"})

		test.AssertEqual(t, calls, 2)
	})

	t.Run("it isolates a panicking subscriber", func(t *testing.T) {
		bus := New()

		bus.Subscribe(func(Event) {
			panic("boom")
		})

		delivered := false
		bus.Subscribe(func(Event) {
			delivered = true
		})

		bus.Publish(Event{Key: "k"})

		test.AssertTrue(t, delivered)
	})

	t.Run("it does nothing without subscribers", func(t *testing.T) {
		bus := New()

		bus.Publish(Event{Key: "k"})
	})
}
