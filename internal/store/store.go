// Package store provides a minimal reactive state container: one typed
// state value per store, shallow-merge updates, and synchronous
// subscriber notification after every change.
package store

import (
	"encoding/json"
	"sync"
)

// Partial is a shallow set of fields to merge onto the current state.
// Keys address the state's JSON field names.
type Partial = map[string]any

// Initializer produces the initial state for a store. It runs exactly
// once, synchronously, during New, and receives the store handle so the
// initial state may capture it.
type Initializer[T any] func(s *Store[T]) T

// Listener is notified with the new and previous state after a change.
type Listener[T any] func(next, prev T)

// Store holds a single state value and notifies subscribers after each
// update. Notifications are synchronous and run in subscription order;
// there is no batching and no deduplication, so N updates produce N
// notifications even when the resulting values are equal.
type Store[T any] struct {
	mu        sync.Mutex
	state     T
	listeners []*entry[T]
}

type entry[T any] struct {
	fn      Listener[T]
	removed bool
}

// New creates a store and runs the initializer once.
func New[T any](init Initializer[T]) *Store[T] {
	s := &Store[T]{}
	s.state = init(s)
	return s
}

// Get returns the current state snapshot.
func (s *Store[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Set shallow-merges the partial onto the current state and notifies
// all subscribers. Fields absent from the partial are unchanged;
// keys that do not correspond to any state field are dropped when the
// merged document is decoded back into the state type. The merge goes
// through a JSON round-trip, so partial values must be serializable.
func (s *Store[T]) Set(partial Partial) {
	s.Update(func(cur T) T {
		next, err := merge(cur, partial)
		if err != nil {
			// Unserializable partials leave the state unchanged; the
			// notification still fires, mirroring an empty merge.
			return cur
		}
		return next
	})
}

// Update replaces the state with fn(current) and notifies all
// subscribers with (next, prev). fn must return a new value rather than
// mutate shared references in place; subscribers receive whatever it
// returns, changed or not.
func (s *Store[T]) Update(fn func(T) T) {
	s.mu.Lock()
	prev := s.state
	next := fn(prev)
	s.state = next
	snapshot := make([]*entry[T], len(s.listeners))
	copy(snapshot, s.listeners)
	s.mu.Unlock()

	// The lock is not held during fan-out, so listeners may re-enter
	// Get, Update or Subscribe. A listener subscribed during this
	// notification is only called from the next update.
	for _, e := range snapshot {
		if !e.removed {
			e.fn(next, prev)
		}
	}
}

// Subscribe registers a listener for future notifications and returns
// a function that removes it. Unsubscribing twice is harmless.
func (s *Store[T]) Subscribe(fn Listener[T]) func() {
	e := &entry[T]{fn: fn}
	s.mu.Lock()
	s.listeners = append(s.listeners, e)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		e.removed = true
		for i, cur := range s.listeners {
			if cur == e {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				break
			}
		}
	}
}

// merge produces cur with the partial's fields shallow-merged over it.
func merge[T any](cur T, partial Partial) (T, error) {
	var next T

	raw, err := json.Marshal(cur)
	if err != nil {
		return next, err
	}

	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return next, err
	}

	for k, v := range partial {
		enc, err := json.Marshal(v)
		if err != nil {
			return next, err
		}
		doc[k] = enc
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return next, err
	}
	if err := json.Unmarshal(merged, &next); err != nil {
		return next, err
	}
	return next, nil
}
