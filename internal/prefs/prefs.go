// Package prefs holds the user preference store: active user identity,
// theme, and the known profiles. Unlike application data it survives
// restarts through the persistence middleware.
package prefs

import (
	"github.com/lifeos-app/lifeos/internal/model"
	"github.com/lifeos-app/lifeos/internal/store"
)

// StorageKey is the key preference state is persisted under.
const StorageKey = "lifeos-user-storage"

// Version tags the persisted preference layout. Version 0 documents
// (bare, unversioned state) hydrate as-is.
const Version = 1

// State is the persisted preference value.
type State struct {
	CurrentUser string              `json:"current_user"`
	Theme       model.Theme         `json:"theme"`
	Users       []model.UserProfile `json:"users"`
}

// ThemeApplier receives theme changes as a synchronous side effect, so
// presentation can flip before any subscriber is notified. The TUI
// swaps its palette through this.
type ThemeApplier interface {
	ApplyTheme(model.Theme)
}

// ThemeApplierFunc adapts a function to the ThemeApplier interface.
type ThemeApplierFunc func(model.Theme)

// ApplyTheme calls f.
func (f ThemeApplierFunc) ApplyTheme(t model.Theme) { f(t) }

// Store is the preference store.
type Store struct {
	*store.Store[State]
	applier ThemeApplier
}

// Options configures the preference store.
type Options struct {
	// Storage persists the state; required.
	Storage store.Storage
	// Applier receives theme side effects; nil disables them.
	Applier ThemeApplier
	// Defaults are the initial values when nothing is stored yet.
	Defaults State
}

// New creates a preference store hydrated from storage. The applier is
// invoked once with the effective theme so presentation matches
// whatever was restored.
func New(opts Options) *Store {
	s := &Store{applier: opts.Applier}

	init := store.Persist(func(*store.Store[State]) State {
		return opts.Defaults
	}, store.PersistOptions{
		Name:    StorageKey,
		Storage: opts.Storage,
		Version: Version,
	})

	s.Store = store.New(init)
	s.applyTheme(s.Get().Theme)
	return s
}

// SetApplier replaces the theme applier and immediately applies the
// current theme through it, so late-constructed presentation (the TUI)
// starts in sync.
func (s *Store) SetApplier(applier ThemeApplier) {
	s.applier = applier
	s.applyTheme(s.Get().Theme)
}

// SetUser switches the active user identity. The identity is not
// checked against the known profiles.
func (s *Store) SetUser(name string) {
	s.Set(store.Partial{"current_user": name})
}

// CurrentUser returns the active user identity.
func (s *Store) CurrentUser() string {
	return s.Get().CurrentUser
}

// Theme returns the active theme.
func (s *Store) Theme() model.Theme {
	return s.Get().Theme
}

// SetTheme switches the theme. The applier side effect runs
// synchronously before subscribers are notified.
func (s *Store) SetTheme(theme model.Theme) {
	s.applyTheme(theme)
	s.Set(store.Partial{"theme": theme})
}

// ToggleTheme flips between light and dark.
func (s *Store) ToggleTheme() {
	s.SetTheme(s.Get().Theme.Toggle())
}

// Profiles returns the known user profiles.
func (s *Store) Profiles() []model.UserProfile {
	return append([]model.UserProfile{}, s.Get().Users...)
}

// CurrentProfile returns the profile matching the active identity,
// falling back to the first known profile when the identity does not
// resolve.
func (s *Store) CurrentProfile() model.UserProfile {
	state := s.Get()
	for _, u := range state.Users {
		if u.Name == state.CurrentUser {
			return u
		}
	}
	if len(state.Users) > 0 {
		return state.Users[0]
	}
	return model.UserProfile{}
}

func (s *Store) applyTheme(theme model.Theme) {
	if s.applier != nil {
		s.applier.ApplyTheme(theme)
	}
}
