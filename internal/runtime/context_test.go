package runtime

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifeos-app/lifeos/internal/model"
	"github.com/lifeos-app/lifeos/internal/output"
	"github.com/lifeos-app/lifeos/internal/prefs"
	"github.com/lifeos-app/lifeos/internal/seed"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.InMemory = true
	opts.DBPath = ""
	// Point at a path that never exists so the host's real config file
	// cannot leak into the test.
	opts.ConfigPath = filepath.Join(os.TempDir(), "lifeos-test-no-such-config.toml")
	return opts
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestNewWiresEverything(t *testing.T) {
	ctx, err := New(testOptions())
	require.NoError(t, err)
	defer func() { require.NoError(t, ctx.Close()) }()

	assert.Equal(t, seed.UserJoao, ctx.Prefs.CurrentUser())
	assert.Equal(t, model.ThemeLight, ctx.Prefs.Theme())
	assert.Len(t, ctx.Prefs.Profiles(), 2)

	// Application data starts from the seed for both users.
	assert.NotEmpty(t, ctx.Data.TasksByUser(seed.UserJoao))
	assert.NotEmpty(t, ctx.Data.AccountsByUser(seed.UserMyrrena))

	assert.Equal(t, "/", ctx.Router.Location().Path)
	assert.False(t, ctx.IsJSON())
}

func TestNewAppliesConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
default_user = "Myrrena"
default_theme = "dark"
`)

	opts := testOptions()
	opts.ConfigPath = path

	ctx, err := New(opts)
	require.NoError(t, err)
	defer func() { _ = ctx.Close() }()

	assert.Equal(t, seed.UserMyrrena, ctx.Prefs.CurrentUser())
	assert.Equal(t, model.ThemeDark, ctx.Prefs.Theme())
}

func TestNewAppliesThemeThroughApplier(t *testing.T) {
	var applied model.Theme
	opts := testOptions()
	opts.Applier = prefs.ThemeApplierFunc(func(theme model.Theme) { applied = theme })

	ctx, err := New(opts)
	require.NoError(t, err)
	defer func() { _ = ctx.Close() }()

	assert.Equal(t, model.ThemeLight, applied)
}

func TestPrefsPersistAcrossContexts(t *testing.T) {
	dir := t.TempDir()
	opts := testOptions()
	opts.InMemory = false
	opts.DBPath = filepath.Join(dir, "db")

	ctx, err := New(opts)
	require.NoError(t, err)
	ctx.Prefs.SetUser(seed.UserMyrrena)
	ctx.Prefs.SetTheme(model.ThemeDark)
	require.NoError(t, ctx.Close())

	ctx, err = New(opts)
	require.NoError(t, err)
	defer func() { _ = ctx.Close() }()

	assert.Equal(t, seed.UserMyrrena, ctx.Prefs.CurrentUser())
	assert.Equal(t, model.ThemeDark, ctx.Prefs.Theme())
}

func TestIsJSON(t *testing.T) {
	opts := testOptions()
	opts.Format = output.FormatJSON

	ctx, err := New(opts)
	require.NoError(t, err)
	defer func() { _ = ctx.Close() }()

	assert.True(t, ctx.IsJSON())
}
