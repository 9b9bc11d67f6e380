package app

import "jackbridge/internal/config"

// Options configures the top-level controller.
type Options struct {
	// ConfigPath points to the daemon config file. Empty means the
	// system default.
	ConfigPath string
}

// App exposes high-level operations that the CLI/TUI can reuse.
type App struct {
	cfgPath string
}

// New constructs the shared controller facade.
func New(opts Options) *App {
	return &App{
		cfgPath: opts.ConfigPath,
	}
}

// ConfigPath returns the effective config file path.
func (a *App) ConfigPath() string {
	if a.cfgPath == "" {
		return config.DefaultPath
	}
	return a.cfgPath
}
