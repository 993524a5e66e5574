package registry

import (
	"fmt"
	"io/fs"

	"github.com/goccy/go-yaml"

	"github.com/vaultsfyi/sextant/internal/embedded"
	"github.com/vaultsfyi/sextant/pkg/errors"
)

// DefaultPath is the registry file's path inside the embedded filesystem.
const DefaultPath = "registry/registry.yaml"

// config holds loading configuration built from options.
type config struct {
	fsys fs.FS
	path string
}

// Option configures registry loading.
type Option func(*config) error

// WithFS loads the registry from an alternate filesystem instead of the
// embedded one. Useful for tests and for inspecting registry candidates
// before they are embedded.
func WithFS(fsys fs.FS) Option {
	return func(c *config) error {
		if fsys == nil {
			return &errors.ConfigError{Component: "registry", Message: "filesystem is nil"}
		}
		c.fsys = fsys
		return nil
	}
}

// WithPath overrides the registry file path within the filesystem.
func WithPath(path string) Option {
	return func(c *config) error {
		if path == "" {
			return &errors.ConfigError{Component: "registry", Message: "path is empty"}
		}
		c.path = path
		return nil
	}
}

// New loads the registry, from the embedded filesystem by default.
// The loaded registry is validated before it is returned; a registry that
// fails validation is never handed to callers.
func New(opts ...Option) (Registry, error) {
	cfg := &config{
		fsys: embedded.FS,
		path: DefaultPath,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("applying registry option: %w", err)
		}
	}

	data, err := fs.ReadFile(cfg.fsys, cfg.path)
	if err != nil {
		return nil, errors.WrapIO("read", cfg.path, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapParse("yaml", cfg.path, err)
	}

	reg := &registry{
		api:          doc.API,
		fixtures:     doc.Fixtures,
		vocabularies: NewVocabularies(doc.Vocabularies),
		operations:   NewOperations(doc.Operations),
	}

	if err := reg.Validate(); err != nil {
		return nil, err
	}

	return reg, nil
}
