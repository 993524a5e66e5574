package registry

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaultsfyi/sextant/pkg/errors"
)

func TestNewLoadsEmbeddedRegistry(t *testing.T) {
	reg, err := New()
	require.NoError(t, err)
	require.NotNil(t, reg)

	api := reg.API()
	assert.Equal(t, "https://api.vaults.fyi", api.BaseURL)
	assert.Equal(t, "v2", api.Version)
	assert.Equal(t, "x-api-key", api.AuthHeader)
	assert.Equal(t, 30, api.TimeoutSeconds)
	assert.Equal(t, 3, api.MaxRetries)
}

func TestNetworksVocabulary(t *testing.T) {
	reg, err := New()
	require.NoError(t, err)

	networks, err := reg.Vocabulary(VocabNetworks)
	require.NoError(t, err)

	assert.Equal(t, 13, networks.Len(), "documented network count")
	assert.Equal(t, CasingLower, networks.Casing)
	for _, value := range networks.Values {
		assert.NotEmpty(t, value)
		assert.True(t, networks.Casing.Holds(value), "network %q should be lowercase", value)
	}
	assert.True(t, networks.Contains("mainnet"))
	assert.True(t, networks.Contains("swellchain"))
	assert.False(t, networks.Contains("Mainnet"))
}

func TestActionsVocabulary(t *testing.T) {
	reg, err := New()
	require.NoError(t, err)

	actions, err := reg.Vocabulary(VocabActions)
	require.NoError(t, err)
	assert.Equal(t, []string{"deposit", "redeem"}, actions.Values)
}

func TestUnknownVocabulary(t *testing.T) {
	reg, err := New()
	require.NoError(t, err)

	_, err = reg.Vocabulary("chains")
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

func TestOperationsDeclaredOrder(t *testing.T) {
	reg, err := New()
	require.NoError(t, err)

	ops := reg.Operations()
	assert.Equal(t, 13, ops.Len())

	ids := ops.IDs()
	require.NotEmpty(t, ids)
	assert.Equal(t, "get_networks", ids[0], "get_networks is documented first")

	// get_networks is the only optional operation.
	assert.Len(t, ops.Required(), 12)
	networks, ok := ops.Get("get_networks")
	require.True(t, ok)
	assert.False(t, networks.Required)
}

func TestOperationMethodNames(t *testing.T) {
	reg, err := New()
	require.NoError(t, err)

	op, err := reg.Operation("get_vault_total_returns")
	require.NoError(t, err)

	assert.Equal(t, "GetVaultTotalReturns", op.GoMethod())
	assert.Equal(t, "getVaultTotalReturns", op.JSMethod())
	assert.Equal(t, "get_vault_total_returns", op.PyMethod())
}

func TestOperationParams(t *testing.T) {
	reg, err := New()
	require.NoError(t, err)

	op, err := reg.Operation("get_actions")
	require.NoError(t, err)

	assert.Equal(t, "GET", op.Method)
	assert.Len(t, op.PathParams(), 4)
	assert.Len(t, op.QueryParams(), 3)

	action, ok := op.Param("action")
	require.True(t, ok)
	assert.Equal(t, InPath, action.In)
	assert.Equal(t, TypeEnum, action.Type)
	assert.Equal(t, VocabActions, action.Enum)
}

func TestNormalizeArgKey(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"user_address", "userAddress"},
		{"userAddress", "userAddress"},
		{"per_page", "perPage"},
		{"network", "network"},
		{"allowed_assets", "allowedAssets"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeArgKey(tt.key), "key %q", tt.key)
	}
}

func TestOperationNotFound(t *testing.T) {
	reg, err := New()
	require.NoError(t, err)

	_, err = reg.Operation("get_yield")
	assert.ErrorIs(t, err, errors.ErrNotFound)
}

const validDoc = `
api:
  base_url: https://api.vaults.fyi
  version: v2
  auth_header: x-api-key
  response_format: JSON
  timeout_seconds: 30
  max_retries: 3
vocabularies:
  networks:
    casing: lower
    values: [mainnet, base]
fixtures:
  user_address: "0xdB79e7E9e1412457528e40db9fCDBe69f558777d"
operations:
  - id: get_positions
    title: Get user positions
    method: GET
    path: /v2/portfolio/positions/{userAddress}
    required: true
    params:
      - name: userAddress
        in: path
        type: address
        required: true
    examples:
      - name: documented
        args:
          user_address: "0xdB79e7E9e1412457528e40db9fCDBe69f558777d"
`

func loadDoc(t *testing.T, doc string) (Registry, error) {
	t.Helper()
	fsys := fstest.MapFS{
		"registry.yaml": &fstest.MapFile{Data: []byte(doc)},
	}
	return New(WithFS(fsys), WithPath("registry.yaml"))
}

func TestNewWithAlternateFS(t *testing.T) {
	reg, err := loadDoc(t, validDoc)
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Operations().Len())
}

func TestValidateRejectsUnknownVocabularyRef(t *testing.T) {
	doc := `
api:
  base_url: https://api.vaults.fyi
  version: v2
  auth_header: x-api-key
  timeout_seconds: 30
  max_retries: 3
vocabularies:
  networks:
    casing: lower
    values: [mainnet]
operations:
  - id: get_benchmarks
    title: Get benchmarks
    method: GET
    path: /v2/benchmarks/{network}
    required: true
    params:
      - name: network
        in: path
        type: enum
        enum: chains
        required: true
`
	_, err := loadDoc(t, doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrRegistryInvalid)
	assert.Contains(t, err.Error(), "unknown vocabulary")
}

func TestValidateRejectsPathParamMismatch(t *testing.T) {
	doc := `
api:
  base_url: https://api.vaults.fyi
  version: v2
  auth_header: x-api-key
  timeout_seconds: 30
  max_retries: 3
vocabularies:
  networks:
    casing: lower
    values: [mainnet]
operations:
  - id: get_vault
    title: Get vault
    method: GET
    path: /v2/detailed-vaults/{network}/{vaultAddress}
    required: true
    params:
      - name: network
        in: path
        type: enum
        enum: networks
        required: true
`
	_, err := loadDoc(t, doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrRegistryInvalid)
	assert.Contains(t, err.Error(), "placeholder {vaultAddress}")
}

func TestValidateRejectsUnresolvableExampleArg(t *testing.T) {
	doc := `
api:
  base_url: https://api.vaults.fyi
  version: v2
  auth_header: x-api-key
  timeout_seconds: 30
  max_retries: 3
vocabularies:
  networks:
    casing: lower
    values: [mainnet]
operations:
  - id: get_all_vaults
    title: List all vaults
    method: GET
    path: /v2/detailed-vaults
    required: true
    params:
      - name: network
        in: query
        type: enum
        enum: networks
        required: false
    examples:
      - name: typo
        args:
          netwrok: mainnet
`
	_, err := loadDoc(t, doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrRegistryInvalid)
	assert.Contains(t, err.Error(), "resolves to no declared param")
}

func TestValidateRejectsCasingViolation(t *testing.T) {
	doc := `
api:
  base_url: https://api.vaults.fyi
  version: v2
  auth_header: x-api-key
  timeout_seconds: 30
  max_retries: 3
vocabularies:
  assets:
    casing: upper
    values: [USDC, usdt]
operations:
  - id: get_all_vaults
    title: List all vaults
    method: GET
    path: /v2/detailed-vaults
    required: true
`
	_, err := loadDoc(t, doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrRegistryInvalid)
	assert.Contains(t, err.Error(), "violates upper casing")
}

func TestValidateRejectsEnumExampleValueOutsideVocabulary(t *testing.T) {
	doc := `
api:
  base_url: https://api.vaults.fyi
  version: v2
  auth_header: x-api-key
  timeout_seconds: 30
  max_retries: 3
vocabularies:
  networks:
    casing: lower
    values: [mainnet]
operations:
  - id: get_all_vaults
    title: List all vaults
    method: GET
    path: /v2/detailed-vaults
    required: true
    params:
      - name: network
        in: query
        type: enum
        enum: networks
        required: false
    examples:
      - name: documented
        args:
          network: goerli
`
	_, err := loadDoc(t, doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrRegistryInvalid)
	assert.Contains(t, err.Error(), `"goerli" not in vocabulary networks`)
}
