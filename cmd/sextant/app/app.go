// Package app provides the application context and dependency management
// for the sextant CLI: configuration, logging, and the lazily created
// orchestrator instance.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/vaultsfyi/sextant"
	"github.com/vaultsfyi/sextant/pkg/errors"
)

// App represents the sextant application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Orchestrator instance (lazy-initialized, singleton)
	mu      sync.RWMutex
	sextant sextant.Sextant
}

// New creates a new App instance with the given version information.
func New(version, commit, date string) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.NewConfigError("app", "loading configuration", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	return app, nil
}

// Version returns the version string.
func (a *App) Version() string {
	return a.version
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Sextant returns the orchestrator instance, creating it lazily. Safe for
// concurrent use; only one instance is ever created.
func (a *App) Sextant() (sextant.Sextant, error) {
	a.mu.RLock()
	if a.sextant != nil {
		s := a.sextant
		a.mu.RUnlock()
		return s, nil
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.sextant != nil {
		return a.sextant, nil
	}

	s, err := sextant.New(a.buildOptions()...)
	if err != nil {
		return nil, err
	}
	a.sextant = s
	return s, nil
}

// buildOptions constructs orchestrator options from the app configuration.
func (a *App) buildOptions() []sextant.Option {
	opts := []sextant.Option{
		sextant.WithLogger(*a.logger),
		sextant.WithAPIKey(a.config.APIKey),
		sextant.WithProgress(!a.config.Quiet && !a.config.NoColor),
	}
	if len(a.config.Bindings) > 0 {
		opts = append(opts, sextant.WithBindingNames(a.config.Bindings...))
	}
	if a.config.ResultsPath != "" {
		opts = append(opts, sextant.WithResultsPath(a.config.ResultsPath))
	}
	if a.config.InstallTimeout > 0 {
		opts = append(opts, sextant.WithInstallTimeout(a.config.InstallTimeout))
	}
	if a.config.KeepSandbox {
		opts = append(opts, sextant.WithKeepSandbox(true))
	}
	return opts
}
