package engine

// mutation is one pending write or delete. The non-tombstone form
// carries the written value.
type mutation struct {
	value     string
	tombstone bool
}

// layer holds the uncommitted mutations of a single BEGIN. Only the
// most recent mutation per key is retained; a later write to the same
// key replaces the earlier one.
type layer struct {
	entries map[string]mutation
}

func newLayer() *layer {
	return &layer{
		entries: make(map[string]mutation),
	}
}

func (l *layer) set(key string, value string) {
	l.entries[key] = mutation{value: value}
}

func (l *layer) unset(key string) {
	l.entries[key] = mutation{tombstone: true}
}

func (l *layer) lookup(key string) (mutation, bool) {
	m, ok := l.entries[key]
	return m, ok
}

// mergeInto folds this layer's entries into parent, overwriting
// whatever the parent held for the same keys.
func (l *layer) mergeInto(parent *layer) {
	for key, m := range l.entries {
		parent.entries[key] = m
	}
}
