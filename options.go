package sextant

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/vaultsfyi/sextant/internal/bindings"
	"github.com/vaultsfyi/sextant/pkg/constants"
	"github.com/vaultsfyi/sextant/pkg/logging"
	"github.com/vaultsfyi/sextant/pkg/registry"
)

// Option is a function that configures a Sextant instance.
type Option func(*config) error

// config holds the resolved run configuration.
type config struct {
	registry       registry.Registry
	bindings       []bindings.Binding
	bindingNames   []string
	apiKey         string
	resultsPath    string
	progress       bool
	logger         zerolog.Logger
	installTimeout time.Duration
	keepSandbox    bool
}

func defaultConfig() *config {
	return &config{
		apiKey:         constants.PlaceholderAPIKey,
		logger:         *logging.Default(),
		installTimeout: constants.InstallTimeout,
	}
}

func (s *sextant) options(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(s.config); err != nil {
			return err
		}
	}
	return nil
}

// WithRegistry configures a registry other than the embedded one,
// e.g. a registry file under test.
func WithRegistry(reg registry.Registry) Option {
	return func(c *config) error {
		c.registry = reg
		return nil
	}
}

// WithBindings configures the exact bindings to verify, replacing the
// default set.
func WithBindings(bs ...bindings.Binding) Option {
	return func(c *config) error {
		c.bindings = bs
		return nil
	}
}

// WithBindingNames selects bindings by name, in the given order.
func WithBindingNames(names ...string) Option {
	return func(c *config) error {
		c.bindingNames = names
		return nil
	}
}

// WithAPIKey configures the credential used for client construction.
// Suites never dial the network, so a placeholder works; a real key
// exercises the exact documented setup.
func WithAPIKey(key string) Option {
	return func(c *config) error {
		if key != "" {
			c.apiKey = key
		}
		return nil
	}
}

// WithResultsPath configures the directory where run reports are saved.
// Empty disables persistence.
func WithResultsPath(dir string) Option {
	return func(c *config) error {
		c.resultsPath = dir
		return nil
	}
}

// WithProgress enables interactive progress output during the run.
func WithProgress(enabled bool) Option {
	return func(c *config) error {
		c.progress = enabled
		return nil
	}
}

// WithLogger configures the run logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) error {
		c.logger = logger
		return nil
	}
}

// WithInstallTimeout bounds each binding's SDK install step.
func WithInstallTimeout(timeout time.Duration) Option {
	return func(c *config) error {
		if timeout > 0 {
			c.installTimeout = timeout
		}
		return nil
	}
}

// WithKeepSandbox keeps sandbox directories after the run for inspection.
func WithKeepSandbox(keep bool) Option {
	return func(c *config) error {
		c.keepSandbox = keep
		return nil
	}
}
