package suites

import (
	"context"
	"fmt"
	"strings"

	"github.com/vaultsfyi/sextant/pkg/conformance"
	"github.com/vaultsfyi/sextant/pkg/registry"
	"github.com/vaultsfyi/sextant/pkg/vaultsfyi"
)

// Vocabulary returns the suite that cross-checks the binding's typed
// constants against the documented vocabularies. The constants are declared
// independently of the registry, so a value added or renamed on either side
// surfaces here as drift.
func Vocabulary(reg registry.Registry) conformance.Suite {
	suite := conformance.Suite{
		Name:        "vocabulary",
		Description: "typed constants match the documented vocabularies verbatim",
	}

	type pairing struct {
		vocab  string
		values func() []string
	}
	pairings := []pairing{
		{registry.VocabNetworks, func() []string { return networkStrings() }},
		{registry.VocabAssets, func() []string { return assetStrings() }},
		{registry.VocabActions, func() []string { return actionStrings() }},
		{registry.VocabBenchmarkCodes, func() []string { return benchmarkCodeStrings() }},
		{registry.VocabAPYIntervals, func() []string { return apyIntervalStrings() }},
	}

	for _, p := range pairings {
		p := p
		suite.Checks = append(suite.Checks, conformance.Check{
			Name:        p.vocab + " values match",
			Description: fmt.Sprintf("binding constants for %s match the documented set in order", p.vocab),
			Fn: func(ctx context.Context) error {
				vocab, ok := reg.Vocabularies().Get(p.vocab)
				if !ok {
					return fmt.Errorf("vocabulary %s is not documented", p.vocab)
				}
				return matchValues(vocab, p.values())
			},
		})
		suite.Checks = append(suite.Checks, conformance.Check{
			Name:        p.vocab + " casing holds",
			Description: fmt.Sprintf("every documented %s value follows its declared casing", p.vocab),
			Fn: func(ctx context.Context) error {
				vocab, ok := reg.Vocabularies().Get(p.vocab)
				if !ok {
					return fmt.Errorf("vocabulary %s is not documented", p.vocab)
				}
				for _, value := range vocab.Values {
					if !vocab.Casing.Holds(value) {
						return fmt.Errorf("value %q violates %s casing", value, vocab.Casing)
					}
				}
				return nil
			},
		})
	}

	suite.Checks = append(suite.Checks, conformance.Check{
		Name:        "network count",
		Description: "the binding supports exactly the documented number of networks",
		Fn: func(ctx context.Context) error {
			vocab, ok := reg.Vocabularies().Get(registry.VocabNetworks)
			if !ok {
				return fmt.Errorf("vocabulary %s is not documented", registry.VocabNetworks)
			}
			if got := len(vaultsfyi.Networks()); got != vocab.Len() {
				return fmt.Errorf("binding declares %d networks, guide documents %d", got, vocab.Len())
			}
			return nil
		},
	})

	suite.Checks = append(suite.Checks, conformance.Check{
		Name:        "actions are deposit and redeem",
		Description: "the action vocabulary is exactly {deposit, redeem}",
		Fn: func(ctx context.Context) error {
			vocab, ok := reg.Vocabularies().Get(registry.VocabActions)
			if !ok {
				return fmt.Errorf("vocabulary %s is not documented", registry.VocabActions)
			}
			if vocab.Len() != 2 || !vocab.Contains("deposit") || !vocab.Contains("redeem") {
				return fmt.Errorf("documented actions are [%s], want exactly deposit and redeem",
					strings.Join(vocab.Values, ", "))
			}
			return nil
		},
	})

	return suite
}

// matchValues compares a documented vocabulary against the binding's
// constants, reporting values present on only one side.
func matchValues(vocab registry.Vocabulary, bindingValues []string) error {
	documented := make(map[string]bool, vocab.Len())
	for _, v := range vocab.Values {
		documented[v] = true
	}
	declared := make(map[string]bool, len(bindingValues))
	for _, v := range bindingValues {
		declared[v] = true
	}

	var missing, extra []string
	for _, v := range vocab.Values {
		if !declared[v] {
			missing = append(missing, v)
		}
	}
	for _, v := range bindingValues {
		if !documented[v] {
			extra = append(extra, v)
		}
	}
	if len(missing) > 0 || len(extra) > 0 {
		return fmt.Errorf("binding is missing %v and declares undocumented %v", missing, extra)
	}

	// Same set; the declared order must match the guide too.
	for i, v := range vocab.Values {
		if bindingValues[i] != v {
			return fmt.Errorf("position %d is %q in the binding, guide documents %q", i, bindingValues[i], v)
		}
	}
	return nil
}

func networkStrings() []string {
	values := vaultsfyi.Networks()
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

func assetStrings() []string {
	values := vaultsfyi.Assets()
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

func actionStrings() []string {
	values := vaultsfyi.Actions()
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

func benchmarkCodeStrings() []string {
	values := vaultsfyi.BenchmarkCodes()
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}

func apyIntervalStrings() []string {
	values := vaultsfyi.APYIntervals()
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.String()
	}
	return out
}
