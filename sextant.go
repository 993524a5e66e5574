// Package sextant verifies that the vaults.fyi documentation still matches
// the SDKs it describes. An embedded example registry is the single source
// of truth for endpoints, parameters, and domain vocabularies; per-language
// bindings run assertion suites against their SDK and the orchestrator
// rolls everything up into one run report.
package sextant

import (
	"context"
	"fmt"

	"github.com/vaultsfyi/sextant/internal/bindings"
	"github.com/vaultsfyi/sextant/pkg/conformance"
	"github.com/vaultsfyi/sextant/pkg/registry"
)

// Sextant orchestrates documentation conformance runs across every
// configured SDK binding.
type Sextant interface {
	// Registry returns the example registry the run is driven by.
	Registry() registry.Registry

	// Bindings lists the names of the bindings the run will verify,
	// in run order.
	Bindings() []string

	// Verify runs every binding's assertion suites and returns the
	// aggregated run report. Check failures travel inside the report;
	// a returned error means the run itself could not be orchestrated.
	Verify(ctx context.Context) (*conformance.RunReport, error)
}

// sextant is the internal implementation of the Sextant interface.
type sextant struct {
	config   *config
	registry registry.Registry
	bindings []bindings.Binding
}

// New creates a Sextant instance with the given options.
func New(opts ...Option) (Sextant, error) {
	s := &sextant{
		config: defaultConfig(),
	}

	if err := s.options(opts...); err != nil {
		return nil, fmt.Errorf("applying options: %w", err)
	}

	// Use the provided registry or load the embedded one.
	if s.config.registry != nil {
		s.registry = s.config.registry
	} else {
		reg, err := registry.New()
		if err != nil {
			return nil, fmt.Errorf("loading embedded registry: %w", err)
		}
		s.registry = reg
	}

	if len(s.config.bindings) > 0 {
		s.bindings = s.config.bindings
	} else if len(s.config.bindingNames) > 0 {
		for _, name := range s.config.bindingNames {
			b, ok := bindings.ByName(name, s.config.logger)
			if !ok {
				return nil, fmt.Errorf("unknown binding %q", name)
			}
			s.bindings = append(s.bindings, b)
		}
	} else {
		s.bindings = bindings.All(s.config.logger)
	}

	return s, nil
}

// Registry returns the example registry the run is driven by.
func (s *sextant) Registry() registry.Registry {
	return s.registry
}

// Bindings lists the configured binding names in run order.
func (s *sextant) Bindings() []string {
	names := make([]string, len(s.bindings))
	for i, b := range s.bindings {
		names[i] = b.Name()
	}
	return names
}
