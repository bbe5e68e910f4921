// Package runtime provides the application composition root for
// LifeOS. Every store is an explicit instance owned here and handed
// down; there are no module-level singletons, so tests get a fresh
// world per context.
package runtime

import (
	"os"

	"github.com/lifeos-app/lifeos/internal/appdata"
	"github.com/lifeos-app/lifeos/internal/config"
	"github.com/lifeos-app/lifeos/internal/model"
	"github.com/lifeos-app/lifeos/internal/output"
	"github.com/lifeos-app/lifeos/internal/prefs"
	"github.com/lifeos-app/lifeos/internal/router"
	"github.com/lifeos-app/lifeos/internal/seed"
	"github.com/lifeos-app/lifeos/internal/storage"
)

// Context holds the application runtime context.
type Context struct {
	DB        *storage.DB
	Formatter *output.Formatter

	Prefs  *prefs.Store
	Data   *appdata.Store
	Router *router.Router
}

// Options configures the runtime context.
type Options struct {
	ConfigPath string
	DBPath     string
	InMemory   bool
	Format     output.Format
	ColorMode  output.ColorMode
	Applier    prefs.ThemeApplier
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
	}
}

// New creates a new runtime context: it loads the config file, opens
// the preference database, seeds the application data from mocks, and
// wires the stores and router together.
func New(opts Options) (*Context, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if cfg.DataDir != "" && opts.DBPath == storage.DefaultPath() {
		opts.DBPath = cfg.DataDir
	}

	// Environment override, mainly for tests and throwaway runs.
	if envPath := os.Getenv("LIFEOS_DATABASE"); envPath != "" {
		if envPath == ":memory:" {
			opts.InMemory = true
		} else {
			opts.DBPath = envPath
		}
	}

	db, err := storage.Open(storage.Options{
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	profiles := seed.Profiles()
	defaultUser := cfg.DefaultUser
	if defaultUser == "" {
		defaultUser = profiles[0].Name
	}

	prefStore := prefs.New(prefs.Options{
		Storage: db,
		Applier: opts.Applier,
		Defaults: prefs.State{
			CurrentUser: defaultUser,
			Theme:       model.Theme(cfg.DefaultTheme),
			Users:       profiles,
		},
	})

	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode

	return &Context{
		DB:        db,
		Formatter: formatter,
		Prefs:     prefStore,
		Data:      appdata.New(seed.Data()),
		Router:    router.New(router.NewMemoryHistory(router.Location{Path: "/"})),
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}
