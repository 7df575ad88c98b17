package engine

import (
	"sort"

	"github.com/DmitriyGrigoriev/console-app/eventbus"
	"github.com/DmitriyGrigoriev/console-app/storage"
)

// Engine layers pending transactional mutations over a storage backend.
// Reads resolve against the innermost open layer first and fall through
// to the backend; writes land in the innermost layer, or directly on
// the backend when no transaction is open. Mutations that reach the
// backend are announced on the event bus.
//
// The engine serves a single session and is not safe for concurrent
// use.
type Engine struct {
	backend storage.Backend
	bus     *eventbus.Bus
	stack   []*layer
}

func New(backend storage.Backend, bus *eventbus.Bus) *Engine {
	return &Engine{
		backend: backend,
		bus:     bus,
	}
}

// Get resolves key through the pending layers, innermost first. The
// first layer mentioning the key decides the outcome; a tombstone means
// absent even if the backend still holds the key.
func (e *Engine) Get(key string) (string, bool, error) {
	for i := len(e.stack) - 1; i >= 0; i-- {
		m, ok := e.stack[i].lookup(key)

		if !ok {
			continue
		}

		if m.tombstone {
			return "", false, nil
		}

		return m.value, true, nil
	}

	value, found, err := e.backend.Get(key)

	if err != nil {
		return "", false, backendFailure(err)
	}

	return value, found, nil
}

func (e *Engine) Set(key string, value string) error {
	if len(e.stack) > 0 {
		e.innermost().set(key, value)
		return nil
	}

	if err := e.backend.Set(key, value); err != nil {
		return backendFailure(err)
	}

	e.bus.Publish(eventbus.Event{Key: key, Value: value})
	return nil
}

// Unset records a tombstone in the innermost layer, or deletes directly
// from the backend. Unsetting a key the backend never held is a no-op
// and publishes nothing.
func (e *Engine) Unset(key string) error {
	if len(e.stack) > 0 {
		e.innermost().unset(key)
		return nil
	}

	_, found, err := e.backend.Get(key)

	if err != nil {
		return backendFailure(err)
	}

	if !found {
		return nil
	}

	if err := e.backend.Delete(key); err != nil {
		return backendFailure(err)
	}

	e.bus.Publish(eventbus.Event{Key: key, Deleted: true})
	return nil
}

func (e *Engine) CountWithValue(value string) (int, error) {
	keys, err := e.FindKeysWithValue(value)

	if err != nil {
		return 0, err
	}

	return len(keys), nil
}

// FindKeysWithValue returns every key whose resolved value equals
// value, merging pending layers with the backend into one logical view.
// Result order is unspecified.
func (e *Engine) FindKeysWithValue(value string) ([]string, error) {
	durable, err := e.backend.ScanByValue(value)

	if err != nil {
		return nil, backendFailure(err)
	}

	matches := make(map[string]struct{}, len(durable))

	for _, key := range durable {
		matches[key] = struct{}{}
	}

	for key, m := range e.overlay() {
		if m.tombstone || m.value != value {
			delete(matches, key)
			continue
		}

		matches[key] = struct{}{}
	}

	keys := make([]string, 0, len(matches))

	for key := range matches {
		keys = append(keys, key)
	}

	return keys, nil
}

// Begin opens a new transaction. Nesting depth is unbounded.
func (e *Engine) Begin() {
	e.stack = append(e.stack, newLayer())
}

// Commit merges the innermost layer into its parent, or flushes it to
// the backend when it is the only one left. Only the outermost commit
// publishes events. On a backend failure the layer stays on the stack
// so the commit can be retried.
func (e *Engine) Commit() error {
	if len(e.stack) == 0 {
		return NoActiveTransactionError
	}

	top := e.innermost()

	if len(e.stack) > 1 {
		top.mergeInto(e.stack[len(e.stack)-2])
		e.stack = e.stack[:len(e.stack)-1]
		return nil
	}

	if err := e.flush(top); err != nil {
		return err
	}

	e.stack = e.stack[:0]
	return nil
}

// Rollback discards the innermost layer.
func (e *Engine) Rollback() error {
	if len(e.stack) == 0 {
		return NoActiveTransactionError
	}

	e.stack = e.stack[:len(e.stack)-1]
	return nil
}

// Depth reports how many transactions are open.
func (e *Engine) Depth() int {
	return len(e.stack)
}

// flush applies the final remaining layer to the backend, key by key in
// lexicographic order so event order is deterministic. Entries that do
// not change the backend's state are skipped, which also keeps a retry
// after a partial failure from re-applying or re-announcing keys that
// already went through.
func (e *Engine) flush(l *layer) error {
	keys := make([]string, 0, len(l.entries))

	for key := range l.entries {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		m := l.entries[key]

		current, found, err := e.backend.Get(key)

		if err != nil {
			return backendFailure(err)
		}

		if m.tombstone {
			if !found {
				continue
			}

			if err := e.backend.Delete(key); err != nil {
				return backendFailure(err)
			}

			e.bus.Publish(eventbus.Event{Key: key, Deleted: true})
			continue
		}

		if found && current == m.value {
			continue
		}

		if err := e.backend.Set(key, m.value); err != nil {
			return backendFailure(err)
		}

		e.bus.Publish(eventbus.Event{Key: key, Value: m.value})
	}

	return nil
}

func (e *Engine) innermost() *layer {
	return e.stack[len(e.stack)-1]
}

// overlay resolves the net pending mutation per key across the whole
// stack, innermost layer winning.
func (e *Engine) overlay() map[string]mutation {
	resolved := make(map[string]mutation)

	for _, l := range e.stack {
		for key, m := range l.entries {
			resolved[key] = m
		}
	}

	return resolved
}
