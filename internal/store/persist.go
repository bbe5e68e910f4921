package store

import (
	"encoding/json"
	"fmt"

	"github.com/lifeos-app/lifeos/internal/logging"
)

// Storage is the synchronous key-value medium persisted stores write
// to. Implementations must treat values as opaque bytes.
type Storage interface {
	// GetItem returns the value for key, and whether it was present.
	GetItem(key string) ([]byte, bool, error)
	// SetItem stores value under key, replacing any previous value.
	SetItem(key string, value []byte) error
	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(key string) error
}

// Migration upgrades a persisted state document by one version.
type Migration func(state json.RawMessage) (json.RawMessage, error)

// PersistOptions configures the persistence middleware.
type PersistOptions struct {
	// Name is the storage key the state is kept under. Only one live
	// store per name should exist; nothing prevents two instances from
	// clobbering each other's writes.
	Name    string
	Storage Storage

	// Version tags written state. Stored documents older than Version
	// are upgraded through Migrations before hydration.
	Version int
	// Migrations maps a source version to the Migration that lifts it
	// to the next one. Missing links abort hydration and fall back to
	// defaults.
	Migrations map[int]Migration
}

// envelope is the persisted document layout. Documents written before
// versioning was introduced are bare state objects; they decode with
// Version 0 and a nil State and are handled as legacy below.
type envelope struct {
	Version int             `json:"version"`
	State   json.RawMessage `json:"state"`
}

// Persist wraps an initializer so the store hydrates from storage at
// creation and writes its entire state back after every update.
//
// Hydration shallow-merges the stored fields over the initializer's
// defaults: stored values win where both define a field, defaults fill
// the rest. Absent or unparsable stored data falls back silently to the
// defaults (logged, never fatal). Writes are unconditional and
// synchronous; a failed write is logged and the store degrades to
// in-memory-only persistence for that update.
func Persist[T any](init Initializer[T], opts PersistOptions) Initializer[T] {
	return func(s *Store[T]) T {
		state := init(s)

		if raw, ok, err := opts.Storage.GetItem(opts.Name); err != nil {
			logging.Warn("persisted state read failed", "name", opts.Name, "error", err)
		} else if ok {
			if err := hydrate(raw, opts, &state); err != nil {
				logging.Warn("persisted state discarded", "name", opts.Name, "error", err)
			}
		}

		s.Subscribe(func(next, _ T) {
			if err := write(next, opts); err != nil {
				logging.Warn("state write failed, continuing in memory", "name", opts.Name, "error", err)
			}
		})

		return state
	}
}

// hydrate decodes raw over *state, migrating old documents first.
func hydrate[T any](raw []byte, opts PersistOptions, state *T) error {
	var env envelope
	doc := raw
	version := 0

	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("parse envelope: %w", err)
	}
	if env.State != nil {
		doc = env.State
		version = env.Version
	}

	for version < opts.Version {
		migrate, ok := opts.Migrations[version]
		if !ok {
			return fmt.Errorf("no migration from version %d", version)
		}
		next, err := migrate(doc)
		if err != nil {
			return fmt.Errorf("migrate from version %d: %w", version, err)
		}
		doc = next
		version++
	}

	// Unmarshaling over the default value keeps defaults for fields the
	// stored document does not define.
	if err := json.Unmarshal(doc, state); err != nil {
		return fmt.Errorf("parse state: %w", err)
	}
	return nil
}

// write serializes the full state and stores it under the options key.
// Function-valued or otherwise unserializable fields do not survive;
// callers must reconstruct those in the initializer.
func write[T any](state T, opts PersistOptions) error {
	doc, err := json.Marshal(state)
	if err != nil {
		return err
	}
	out, err := json.Marshal(envelope{Version: opts.Version, State: doc})
	if err != nil {
		return err
	}
	return opts.Storage.SetItem(opts.Name, out)
}
