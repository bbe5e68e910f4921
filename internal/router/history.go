package router

import "sync"

// History is the address/history platform port: read the current
// address, push or replace entries, and move back or forward the way a
// browser's buttons do.
type History interface {
	// Current returns the address the history is sitting on.
	Current() Location
	// Push appends a new entry after the current one, discarding any
	// forward entries.
	Push(Location)
	// Replace overwrites the current entry.
	Replace(Location)
	// Back moves to the previous entry; ok is false at the oldest one.
	Back() (loc Location, ok bool)
	// Forward moves to the next entry; ok is false at the newest one.
	Forward() (loc Location, ok bool)
}

// MemoryHistory is an in-process History holding the entry stack in
// memory. It starts with a single root entry.
type MemoryHistory struct {
	mu      sync.Mutex
	entries []Location
	index   int
}

var _ History = (*MemoryHistory)(nil)

// NewMemoryHistory creates a history sitting on the initial location.
func NewMemoryHistory(initial Location) *MemoryHistory {
	if initial.Path == "" {
		initial.Path = "/"
	}
	return &MemoryHistory{entries: []Location{initial}}
}

// Current returns the address the history is sitting on.
func (h *MemoryHistory) Current() Location {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index]
}

// Push appends a new entry, discarding forward entries.
func (h *MemoryHistory) Push(loc Location) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries = append(h.entries[:h.index+1], loc)
	h.index = len(h.entries) - 1
}

// Replace overwrites the current entry.
func (h *MemoryHistory) Replace(loc Location) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.entries[h.index] = loc
}

// Back moves to the previous entry.
func (h *MemoryHistory) Back() (Location, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.index == 0 {
		return Location{}, false
	}
	h.index--
	return h.entries[h.index], true
}

// Forward moves to the next entry.
func (h *MemoryHistory) Forward() (Location, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.index == len(h.entries)-1 {
		return Location{}, false
	}
	h.index++
	return h.entries[h.index], true
}
