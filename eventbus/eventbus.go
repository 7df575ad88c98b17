package eventbus

import (
	"github.com/rs/zerolog/log"
)

// Event describes one externally visible mutation: a new value for Key,
// or its deletion when Deleted is set.
type Event struct {
	Key     string
	Value   string
	Deleted bool
}

type Handler func(Event)

// Bus fans events out to subscribers synchronously, in subscription
// order. Each subscriber sees each event at most once; a failing
// subscriber does not block delivery to the rest.
type Bus struct {
	subscribers []Handler
}

func New() *Bus {
	return &Bus{}
}

func (b *Bus) Subscribe(handler Handler) {
	b.subscribers = append(b.subscribers, handler)
}

func (b *Bus) Publish(event Event) {
	for _, handler := range b.subscribers {
		deliver(handler, event)
	}
}

func deliver(handler Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().
				Interface("panic", r).
				Str("key", event.Key).
				Msg("eventbus: subscriber panicked")
		}
	}()

	handler(event)
}
