package suites

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultsfyi/sextant/internal/embedded"
	"github.com/vaultsfyi/sextant/pkg/conformance"
	"github.com/vaultsfyi/sextant/pkg/logging"
	"github.com/vaultsfyi/sextant/pkg/registry"
)

const testKey = "test-api-key"

func loadRegistry(t *testing.T) registry.Registry {
	t.Helper()
	reg, err := registry.New(registry.WithFS(embedded.FS))
	require.NoError(t, err)
	return reg
}

func TestAllReturnsSuitesInOrder(t *testing.T) {
	reg := loadRegistry(t)
	all := All(reg, testKey)

	require.Len(t, all, 4)
	assert.Equal(t, "binding", all[0].Name)
	assert.Equal(t, "surface", all[1].Name)
	assert.Equal(t, "parameters", all[2].Name)
	assert.Equal(t, "vocabulary", all[3].Name)
}

func TestBindingSuitePasses(t *testing.T) {
	runner := conformance.NewRunner(logging.Nop)
	report := runner.RunSuite(context.Background(), "go", Binding(testKey))

	assert.True(t, report.Tally.AllPassed(), "binding suite: %+v", report.Results)
}

func TestSurfaceSuitePasses(t *testing.T) {
	reg := loadRegistry(t)
	runner := conformance.NewRunner(logging.Nop)
	report := runner.RunSuite(context.Background(), "go", Surface(reg, testKey))

	for _, res := range report.Results {
		assert.NotEqual(t, conformance.OutcomeFail, res.Outcome, "%s: %s", res.Name, res.Detail)
	}
	// One reflection check per operation, plus the reverse check for
	// undocumented capabilities.
	assert.Equal(t, reg.Operations().Len()+1, report.Tally.Total)
}

func TestParametersSuiteCoversEveryExample(t *testing.T) {
	reg := loadRegistry(t)
	suite := Parameters(reg, testKey)

	var examples int
	for _, op := range reg.Operations().List() {
		examples += len(op.Examples)
	}
	assert.Equal(t, examples, suite.Len())
}

func TestParametersSuitePasses(t *testing.T) {
	reg := loadRegistry(t)
	runner := conformance.NewRunner(logging.Nop)
	report := runner.RunSuite(context.Background(), "go", Parameters(reg, testKey))

	for _, res := range report.Results {
		assert.Equal(t, conformance.OutcomePass, res.Outcome, "%s: %s", res.Name, res.Detail)
	}
}

func TestEveryOperationHasABuilder(t *testing.T) {
	reg := loadRegistry(t)
	for _, op := range reg.Operations().List() {
		_, ok := builders[op.ID]
		assert.True(t, ok, "operation %s has no request builder", op.ID)
	}
}

func TestVocabularySuitePasses(t *testing.T) {
	reg := loadRegistry(t)
	runner := conformance.NewRunner(logging.Nop)
	report := runner.RunSuite(context.Background(), "go", Vocabulary(reg))

	assert.True(t, report.Tally.AllPassed(), "vocabulary suite: %+v", report.Results)
}

func TestVocabularyDetectsDrift(t *testing.T) {
	vocab := registry.Vocabulary{
		Casing: registry.CasingLower,
		Values: []string{"mainnet", "base", "goerli"},
	}
	err := matchValues(vocab, []string{"mainnet", "base", "arbitrum"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "goerli")
	assert.Contains(t, err.Error(), "arbitrum")
}

func TestVocabularyDetectsOrderDrift(t *testing.T) {
	vocab := registry.Vocabulary{
		Casing: registry.CasingLower,
		Values: []string{"mainnet", "base"},
	}
	err := matchValues(vocab, []string{"base", "mainnet"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "position 0")
}

func TestNormalizeArgsResolvesMixedCasing(t *testing.T) {
	ex := registry.Example{
		Name: "mixed",
		Args: map[string]any{
			"user_address": "0xdB79e7E9e1412457528e40db9fCDBe69f558777d",
			"vaultAddress": "0x1234567890123456789012345678901234567890",
			"per_page":     uint64(50),
		},
	}
	a := normalizeArgs(ex)

	assert.Equal(t, "0xdB79e7E9e1412457528e40db9fCDBe69f558777d", a.str("userAddress"))
	assert.Equal(t, "0x1234567890123456789012345678901234567890", a.str("vaultAddress"))
	if pp := a.intPtr("perPage"); assert.NotNil(t, pp) {
		assert.Equal(t, 50, *pp)
	}
	assert.Nil(t, a.intPtr("page"))
	assert.Nil(t, a.boolPtr("simulate"))
}

func TestArgsStringList(t *testing.T) {
	a := args{"allowedAssets": []any{"USDC", "USDT"}}
	assert.Equal(t, []string{"USDC", "USDT"}, a.strs("allowedAssets"))
	assert.Nil(t, a.strs("allowedNetworks"))
}
