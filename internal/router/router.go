// Package router implements the minimal client-side navigation model:
// a shared Location, programmatic and link-driven navigation through a
// History port, and path matching for conditional rendering.
package router

import (
	"strings"

	"github.com/lifeos-app/lifeos/internal/store"
)

// Location is the current navigation state.
type Location struct {
	Path     string `json:"path"`
	Query    string `json:"query"`
	Fragment string `json:"fragment"`
}

// ParseLocation splits a target like "/a/b?x=1#top" into a Location.
// Query and fragment are raw passthrough, never parsed further.
func ParseLocation(target string) Location {
	var loc Location
	if i := strings.Index(target, "#"); i >= 0 {
		loc.Fragment = target[i+1:]
		target = target[:i]
	}
	if i := strings.Index(target, "?"); i >= 0 {
		loc.Query = target[i+1:]
		target = target[:i]
	}
	if !strings.HasPrefix(target, "/") {
		target = "/" + target
	}
	loc.Path = target
	return loc
}

// NavigateOptions controls how a navigation lands in history.
type NavigateOptions struct {
	// Replace overwrites the current history entry instead of pushing.
	Replace bool
}

// Router tracks the current Location and fans out changes to
// subscribers. Both transitions — Navigate and a history move (Back or
// Forward) — update the Location synchronously and notify.
type Router struct {
	history History
	loc     *store.Store[Location]
}

// New creates a router initialized from the history's current address.
func New(history History) *Router {
	r := &Router{history: history}
	r.loc = store.New(func(*store.Store[Location]) Location {
		return history.Current()
	})
	return r
}

// Location returns the current location.
func (r *Router) Location() Location {
	return r.loc.Get()
}

// Navigate pushes (or replaces) a history entry for the target and
// updates the Location synchronously.
func (r *Router) Navigate(target string, opts ...NavigateOptions) {
	loc := ParseLocation(target)
	replace := len(opts) > 0 && opts[0].Replace
	if replace {
		r.history.Replace(loc)
	} else {
		r.history.Push(loc)
	}
	r.loc.Update(func(Location) Location { return loc })
}

// Back moves one entry back in history, like the browser back button.
// At the oldest entry it is a no-op.
func (r *Router) Back() {
	if loc, ok := r.history.Back(); ok {
		r.loc.Update(func(Location) Location { return loc })
	}
}

// Forward moves one entry forward in history. At the newest entry it
// is a no-op.
func (r *Router) Forward() {
	if loc, ok := r.history.Forward(); ok {
		r.loc.Update(func(Location) Location { return loc })
	}
}

// Subscribe registers a listener for location changes and returns an
// unsubscribe function.
func (r *Router) Subscribe(fn func(next, prev Location)) func() {
	return r.loc.Subscribe(fn)
}

// Match reports whether a view registered for pattern should render at
// path. Matching is exact, or a trailing-prefix match; the root
// pattern "/" additionally matches the empty path. There are no path
// parameters and no wildcards.
func Match(pattern, path string) bool {
	if pattern == path {
		return true
	}
	if pattern == "/" && path == "" {
		return true
	}
	return pattern != "" && strings.HasPrefix(path, pattern)
}
