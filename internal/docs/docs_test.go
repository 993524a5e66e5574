package docs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultsfyi/sextant/internal/embedded"
	"github.com/vaultsfyi/sextant/pkg/errors"
	"github.com/vaultsfyi/sextant/pkg/registry"
)

func loadRegistry(t *testing.T) registry.Registry {
	t.Helper()
	reg, err := registry.New(registry.WithFS(embedded.FS))
	require.NoError(t, err)
	return reg
}

func TestGenerateIsDeterministic(t *testing.T) {
	reg := loadRegistry(t)

	first, err := Generate(reg)
	require.NoError(t, err)
	second, err := Generate(reg)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateCoversEveryOperation(t *testing.T) {
	reg := loadRegistry(t)
	guide, err := Generate(reg)
	require.NoError(t, err)

	for _, op := range reg.Operations().List() {
		assert.Contains(t, guide, op.ID, "operation table")
		assert.Contains(t, guide, op.Title, "operation section")
		assert.Contains(t, guide, op.Path)
	}
	assert.Contains(t, guide, "https://api.vaults.fyi")
	assert.Contains(t, guide, "x-api-key")
}

func TestGenerateRendersAllThreeBindings(t *testing.T) {
	reg := loadRegistry(t)
	guide, err := Generate(reg)
	require.NoError(t, err)

	assert.Contains(t, guide, "client.GetVault(ctx, vaultsfyi.VaultParams{")
	assert.Contains(t, guide, "await client.getVault({")
	assert.Contains(t, guide, "client.get_vault(")
	assert.Contains(t, guide, `vault_address=`)
}

func TestGenerateListsVocabularies(t *testing.T) {
	reg := loadRegistry(t)
	guide, err := Generate(reg)
	require.NoError(t, err)

	vocab, ok := reg.Vocabularies().Get(registry.VocabNetworks)
	require.True(t, ok)
	for _, value := range vocab.Values {
		assert.Contains(t, guide, value)
	}
}

func TestGenerateSnippetsForParamlessOperations(t *testing.T) {
	reg := loadRegistry(t)
	guide, err := Generate(reg)
	require.NoError(t, err)

	assert.Contains(t, guide, "client.GetNetworks(ctx)")
	assert.Contains(t, guide, "await client.getNetworks();")
	assert.Contains(t, guide, "client.get_networks()")
}

func TestCommittedGuideMatchesRegistry(t *testing.T) {
	reg := loadRegistry(t)
	assert.NoError(t, Verify(reg, filepath.Join("..", "..", DefaultPath)))
}

func TestVerifyRoundTrip(t *testing.T) {
	reg := loadRegistry(t)
	path := filepath.Join(t.TempDir(), "guide.md")

	require.NoError(t, Write(reg, path))
	assert.NoError(t, Verify(reg, path))
}

func TestVerifyDetectsDrift(t *testing.T) {
	reg := loadRegistry(t)
	path := filepath.Join(t.TempDir(), "guide.md")
	require.NoError(t, Write(reg, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	drifted := strings.Replace(string(content), "mainnet", "goerli", 1)
	require.NoError(t, os.WriteFile(path, []byte(drifted), 0o644))

	err = Verify(reg, path)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrDocsDrift)
}

func TestVerifyMissingFile(t *testing.T) {
	reg := loadRegistry(t)
	err := Verify(reg, filepath.Join(t.TempDir(), "absent.md"))
	assert.Error(t, err)
}

func TestGoSnippetUsesTypedFields(t *testing.T) {
	reg := loadRegistry(t)
	op, ok := reg.Operations().Get("get_vault_historical_data")
	require.True(t, ok)
	require.NotEmpty(t, op.Examples)

	snippet := goSnippet(op, normalizedArgs(op.Examples[0]))
	assert.Contains(t, snippet, "GetVaultHistoricalData")
	assert.Contains(t, snippet, "APYInterval:")
	assert.NotContains(t, snippet, "ApyInterval")
}
