package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counterState struct {
	Count int    `json:"count"`
	Label string `json:"label"`
}

func newCounter() *Store[counterState] {
	return New(func(*Store[counterState]) counterState {
		return counterState{Count: 0, Label: "start"}
	})
}

func TestNewRunsInitializerOnce(t *testing.T) {
	calls := 0
	s := New(func(*Store[counterState]) counterState {
		calls++
		return counterState{Count: 7}
	})

	assert.Equal(t, 1, calls)
	assert.Equal(t, 7, s.Get().Count)
	s.Get()
	assert.Equal(t, 1, calls)
}

func TestInitializerReceivesStoreHandle(t *testing.T) {
	var captured *Store[counterState]
	s := New(func(s *Store[counterState]) counterState {
		captured = s
		return counterState{}
	})
	assert.Same(t, s, captured)
}

func TestSetShallowMerge(t *testing.T) {
	s := newCounter()
	s.Set(Partial{"count": 5})

	state := s.Get()
	assert.Equal(t, 5, state.Count)
	// Fields absent from the partial keep their value.
	assert.Equal(t, "start", state.Label)
}

func TestSetUnknownKeyDropped(t *testing.T) {
	s := newCounter()
	s.Set(Partial{"count": 3, "bogus": true})

	state := s.Get()
	assert.Equal(t, 3, state.Count)
	assert.Equal(t, "start", state.Label)
}

func TestSetUnserializablePartialStillNotifies(t *testing.T) {
	s := newCounter()
	notified := 0
	s.Subscribe(func(next, prev counterState) {
		notified++
		assert.Equal(t, prev, next)
	})

	s.Set(Partial{"count": func() {}})

	assert.Equal(t, 1, notified)
	assert.Equal(t, 0, s.Get().Count)
}

func TestUpdateNotifiesWithNextAndPrev(t *testing.T) {
	s := newCounter()

	var gotNext, gotPrev counterState
	s.Subscribe(func(next, prev counterState) {
		gotNext = next
		gotPrev = prev
	})

	s.Update(func(cur counterState) counterState {
		cur.Count = 10
		return cur
	})

	assert.Equal(t, 10, gotNext.Count)
	assert.Equal(t, 0, gotPrev.Count)
}

func TestEveryUpdateNotifies(t *testing.T) {
	s := newCounter()
	notified := 0
	s.Subscribe(func(counterState, counterState) { notified++ })

	// No deduplication: identical values still notify.
	for i := 0; i < 3; i++ {
		s.Set(Partial{"count": 1})
	}
	assert.Equal(t, 3, notified)
}

func TestListenersRunInSubscriptionOrder(t *testing.T) {
	s := newCounter()
	var order []string
	s.Subscribe(func(counterState, counterState) { order = append(order, "first") })
	s.Subscribe(func(counterState, counterState) { order = append(order, "second") })

	s.Set(Partial{"count": 1})

	require.Equal(t, []string{"first", "second"}, order)
}

func TestUnsubscribe(t *testing.T) {
	s := newCounter()
	notified := 0
	unsub := s.Subscribe(func(counterState, counterState) { notified++ })

	s.Set(Partial{"count": 1})
	unsub()
	s.Set(Partial{"count": 2})

	assert.Equal(t, 1, notified)

	// Unsubscribing twice is harmless.
	unsub()
	s.Set(Partial{"count": 3})
	assert.Equal(t, 1, notified)
}

func TestUnsubscribeDuringNotification(t *testing.T) {
	s := newCounter()

	var unsubSecond func()
	var order []string
	s.Subscribe(func(counterState, counterState) {
		order = append(order, "first")
		unsubSecond()
	})
	unsubSecond = s.Subscribe(func(counterState, counterState) {
		order = append(order, "second")
	})

	// The first listener removes the second mid-fan-out; the second must
	// not fire for this update.
	s.Set(Partial{"count": 1})
	assert.Equal(t, []string{"first"}, order)
}

func TestSubscribeDuringNotification(t *testing.T) {
	s := newCounter()

	lateCalls := 0
	s.Subscribe(func(next, _ counterState) {
		if next.Count == 1 {
			s.Subscribe(func(counterState, counterState) { lateCalls++ })
		}
	})

	s.Set(Partial{"count": 1})
	// A listener added during notification only hears the next update.
	assert.Equal(t, 0, lateCalls)

	s.Set(Partial{"count": 2})
	assert.Equal(t, 1, lateCalls)
}

func TestListenerMayReenterGet(t *testing.T) {
	s := newCounter()
	var seen int
	s.Subscribe(func(next, _ counterState) {
		seen = s.Get().Count
	})

	s.Set(Partial{"count": 42})
	assert.Equal(t, 42, seen)
}
