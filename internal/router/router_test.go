package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *Router {
	return New(NewMemoryHistory(Location{Path: "/"}))
}

func TestParseLocation(t *testing.T) {
	tests := []struct {
		target string
		want   Location
	}{
		{"/", Location{Path: "/"}},
		{"/tarefas", Location{Path: "/tarefas"}},
		{"tarefas", Location{Path: "/tarefas"}},
		{"/financeiro?month=8", Location{Path: "/financeiro", Query: "month=8"}},
		{"/estudos#top", Location{Path: "/estudos", Fragment: "top"}},
		{"/a?x=1#frag", Location{Path: "/a", Query: "x=1", Fragment: "frag"}},
		{"", Location{Path: "/"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLocation(tt.target), "target %q", tt.target)
	}
}

func TestNavigate(t *testing.T) {
	r := newTestRouter()
	assert.Equal(t, "/", r.Location().Path)

	r.Navigate("/fitness")
	assert.Equal(t, "/fitness", r.Location().Path)

	r.Navigate("/fitness/treinos")
	assert.Equal(t, "/fitness/treinos", r.Location().Path)
}

func TestNavigateNotifiesSubscribers(t *testing.T) {
	r := newTestRouter()

	var gotNext, gotPrev Location
	unsub := r.Subscribe(func(next, prev Location) {
		gotNext = next
		gotPrev = prev
	})

	r.Navigate("/tarefas")
	assert.Equal(t, "/tarefas", gotNext.Path)
	assert.Equal(t, "/", gotPrev.Path)

	unsub()
	r.Navigate("/estudos")
	assert.Equal(t, "/tarefas", gotNext.Path)
}

func TestBackAndForward(t *testing.T) {
	r := newTestRouter()
	r.Navigate("/tarefas")
	r.Navigate("/financeiro")

	r.Back()
	assert.Equal(t, "/tarefas", r.Location().Path)
	r.Back()
	assert.Equal(t, "/", r.Location().Path)

	// At the oldest entry Back is a no-op.
	r.Back()
	assert.Equal(t, "/", r.Location().Path)

	r.Forward()
	assert.Equal(t, "/tarefas", r.Location().Path)
	r.Forward()
	assert.Equal(t, "/financeiro", r.Location().Path)

	// At the newest entry Forward is a no-op.
	r.Forward()
	assert.Equal(t, "/financeiro", r.Location().Path)
}

func TestPushDiscardsForwardEntries(t *testing.T) {
	r := newTestRouter()
	r.Navigate("/tarefas")
	r.Navigate("/financeiro")
	r.Back()

	r.Navigate("/estudos")

	// The /financeiro branch is gone.
	r.Forward()
	assert.Equal(t, "/estudos", r.Location().Path)
	r.Back()
	assert.Equal(t, "/tarefas", r.Location().Path)
}

func TestNavigateReplace(t *testing.T) {
	r := newTestRouter()
	r.Navigate("/tarefas")
	r.Navigate("/typo", NavigateOptions{Replace: true})

	assert.Equal(t, "/typo", r.Location().Path)

	// The replaced entry left no extra history behind.
	r.Back()
	assert.Equal(t, "/", r.Location().Path)
}

func TestBackNoOpDoesNotNotify(t *testing.T) {
	r := newTestRouter()
	notified := 0
	r.Subscribe(func(Location, Location) { notified++ })

	r.Back()
	assert.Equal(t, 0, notified)

	r.Navigate("/tarefas")
	r.Back()
	assert.Equal(t, 2, notified)
}

func TestMatch(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"/fitness", "/fitness", true},
		{"/fitness", "/fitness/treinos", true},
		{"/fitness", "/financeiro", false},
		{"/", "/", true},
		{"/", "", true},
		// The root pattern prefix-matches everything; callers order
		// their branches most specific first.
		{"/", "/tarefas", true},
		{"/tarefas", "/tarefa", false},
		{"", "/anything", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Match(tt.pattern, tt.path),
			"Match(%q, %q)", tt.pattern, tt.path)
	}
}

func TestLinkIsActiveExactOnly(t *testing.T) {
	link := Link{To: "/fitness", Label: "Fitness"}

	assert.True(t, link.IsActive(Location{Path: "/fitness"}))
	assert.False(t, link.IsActive(Location{Path: "/fitness/treinos"}))
	assert.False(t, link.IsActive(Location{Path: "/"}))
}

func TestLinkFollow(t *testing.T) {
	r := newTestRouter()
	link := Link{To: "/estudos", Label: "Study"}

	link.Follow(r)
	assert.Equal(t, "/estudos", r.Location().Path)
}

func TestRouterInitializesFromHistory(t *testing.T) {
	h := NewMemoryHistory(Location{Path: "/configuracoes"})
	r := New(h)
	require.Equal(t, "/configuracoes", r.Location().Path)
}

func TestMemoryHistoryDefaultsToRoot(t *testing.T) {
	h := NewMemoryHistory(Location{})
	assert.Equal(t, "/", h.Current().Path)
}
