// Package suites defines the Go binding's assertion suites: binding
// construction, capability surface, documented parameter shapes, and
// domain vocabularies. Every expectation is derived from the example
// registry, so the suites never drift from the guide independently.
package suites

import (
	"github.com/vaultsfyi/sextant/pkg/conformance"
	"github.com/vaultsfyi/sextant/pkg/registry"
)

// All returns the Go binding's suites in their fixed declared order.
func All(reg registry.Registry, apiKey string) []conformance.Suite {
	return []conformance.Suite{
		Binding(apiKey),
		Surface(reg, apiKey),
		Parameters(reg, apiKey),
		Vocabulary(reg),
	}
}
