package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeos-app/lifeos/internal/model"
	"github.com/lifeos-app/lifeos/internal/output"
	"github.com/lifeos-app/lifeos/internal/runtime"
	"github.com/lifeos-app/lifeos/internal/seed"
)

func newTestContext(t *testing.T) *runtime.Context {
	t.Helper()
	opts := runtime.DefaultOptions()
	opts.InMemory = true
	opts.DBPath = ""
	opts.ConfigPath = filepath.Join(os.TempDir(), "lifeos-test-no-such-config.toml")
	opts.ColorMode = output.ColorNever

	ctx, err := runtime.New(opts)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ctx.Close() })
	return ctx
}

func TestPaletteFor(t *testing.T) {
	assert.Equal(t, LightPalette(), PaletteFor(model.ThemeLight))
	assert.Equal(t, DarkPalette(), PaletteFor(model.ThemeDark))
	assert.Equal(t, LightPalette(), PaletteFor("sepia"))
}

func TestNewDashboardModelSyncsTheme(t *testing.T) {
	ctx := newTestContext(t)
	m := NewDashboardModel(ctx)

	light := m.styles

	// Toggling the theme swaps the palette through the applier before
	// any subscriber runs.
	ctx.Prefs.ToggleTheme()
	assert.NotEqual(t, light, m.styles)

	ctx.Prefs.ToggleTheme()
	assert.Equal(t, light, m.styles)
}

func TestDashboardNavigation(t *testing.T) {
	ctx := newTestContext(t)
	m := NewDashboardModel(ctx)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	assert.Equal(t, "/tarefas", ctx.Router.Location().Path)
	assert.Contains(t, m.View(), "Tasks")

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("5")})
	assert.Equal(t, "/estudos", ctx.Router.Location().Path)
	assert.Contains(t, m.View(), "Mathematics")

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "/tarefas", ctx.Router.Location().Path)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "/estudos", ctx.Router.Location().Path)
}

func TestDashboardOverviewFallback(t *testing.T) {
	ctx := newTestContext(t)
	m := NewDashboardModel(ctx)

	assert.Contains(t, m.View(), "Welcome back, "+seed.UserJoao)
}

func TestDashboardUserSwitch(t *testing.T) {
	ctx := newTestContext(t)
	m := NewDashboardModel(ctx)

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("u")})
	assert.Equal(t, seed.UserMyrrena, ctx.Prefs.CurrentUser())

	_, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("u")})
	assert.Equal(t, seed.UserJoao, ctx.Prefs.CurrentUser())
}

func TestDashboardQuit(t *testing.T) {
	ctx := newTestContext(t)
	m := NewDashboardModel(ctx)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
