// Package appdata holds the in-memory application data store: every
// domain collection behind one reactive state value, with typed CRUD
// and user-scoped queries on top.
//
// Collections are treated as immutable per update: mutations build a
// new slice (and a new State) rather than editing elements in place, so
// subscribers can rely on snapshot semantics. Update and Delete on an
// unknown id are silent no-ops. Queries return a fresh slice on every
// call in insertion order.
package appdata

import (
	"encoding/json"
	"time"

	"github.com/lifeos-app/lifeos/internal/model"
	"github.com/lifeos-app/lifeos/internal/store"
)

// State is the complete application data set. It resets to its seed on
// every process start; nothing here is persisted.
type State struct {
	Tasks          []model.Task            `json:"tasks"`
	Transactions   []model.Transaction     `json:"transactions"`
	Accounts       []model.Account         `json:"accounts"`
	FinancialGoals []model.FinancialGoal   `json:"financial_goals"`
	Meals          []model.Meal            `json:"meals"`
	Workouts       []model.Workout         `json:"workouts"`
	Measurements   []model.BodyMeasurement `json:"measurements"`
	FitnessGoals   []model.FitnessGoal     `json:"fitness_goals"`
	Subjects       []model.Subject         `json:"subjects"`
	StudySessions  []model.StudySession    `json:"study_sessions"`
}

// Store is the application data store.
type Store struct {
	*store.Store[State]
}

// New creates a store seeded with the given initial state.
func New(initial State) *Store {
	return &Store{store.New(func(*store.Store[State]) State {
		return initial
	})}
}

// applyPartial shallow-merges partial onto the entity through a JSON
// round-trip. Keys address the entity's JSON field names; unknown keys
// are dropped. A failed merge returns the entity unchanged.
func applyPartial[E any](e E, partial store.Partial) E {
	raw, err := json.Marshal(e)
	if err != nil {
		return e
	}
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return e
	}
	for k, v := range partial {
		enc, err := json.Marshal(v)
		if err != nil {
			return e
		}
		doc[k] = enc
	}
	merged, err := json.Marshal(doc)
	if err != nil {
		return e
	}
	var next E
	if err := json.Unmarshal(merged, &next); err != nil {
		return e
	}
	return next
}

// replaceByID returns a copy of items with the element whose id matches
// replaced by apply(element). The second result reports whether a
// match was found.
func replaceByID[E any](items []E, id string, idOf func(E) string, apply func(E) E) ([]E, bool) {
	out := make([]E, len(items))
	found := false
	for i, e := range items {
		if idOf(e) == id {
			out[i] = apply(e)
			found = true
		} else {
			out[i] = e
		}
	}
	return out, found
}

// removeByID returns items without the element whose id matches.
func removeByID[E any](items []E, id string, idOf func(E) string) []E {
	out := make([]E, 0, len(items))
	for _, e := range items {
		if idOf(e) != id {
			out = append(out, e)
		}
	}
	return out
}

// filterByUser returns the elements owned by user, insertion order
// preserved, as a fresh slice.
func filterByUser[E any](items []E, user string, userOf func(E) string) []E {
	out := make([]E, 0)
	for _, e := range items {
		if userOf(e) == user {
			out = append(out, e)
		}
	}
	return out
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
