package suites

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/vaultsfyi/sextant/pkg/conformance"
	"github.com/vaultsfyi/sextant/pkg/registry"
	"github.com/vaultsfyi/sextant/pkg/vaultsfyi"
)

// requestBuilder constructs the dry-run request for one operation from a
// documented example's normalized arguments.
type requestBuilder func(ctx context.Context, client *vaultsfyi.Client, a args) (*http.Request, error)

// builders maps registry operation ids onto dry-run request constructors.
// An operation in the registry without a builder here fails its parameter
// checks, which is exactly the drift the suite exists to catch.
var builders = map[string]requestBuilder{
	"get_networks": func(ctx context.Context, client *vaultsfyi.Client, _ args) (*http.Request, error) {
		return client.NewGetNetworksRequest(ctx)
	},
	"get_benchmarks": func(ctx context.Context, client *vaultsfyi.Client, a args) (*http.Request, error) {
		return client.NewGetBenchmarksRequest(ctx, vaultsfyi.BenchmarksParams{
			Network: vaultsfyi.Network(a.str("network")),
			Code:    vaultsfyi.BenchmarkCode(a.str("code")),
		})
	},
	"get_historical_benchmarks": func(ctx context.Context, client *vaultsfyi.Client, a args) (*http.Request, error) {
		return client.NewGetHistoricalBenchmarksRequest(ctx, vaultsfyi.HistoricalBenchmarksParams{
			Network:       vaultsfyi.Network(a.str("network")),
			Code:          vaultsfyi.BenchmarkCode(a.str("code")),
			Page:          a.intPtr("page"),
			PerPage:       a.intPtr("perPage"),
			FromTimestamp: a.int64Ptr("fromTimestamp"),
			ToTimestamp:   a.int64Ptr("toTimestamp"),
		})
	},
	"get_all_vaults": func(ctx context.Context, client *vaultsfyi.Client, a args) (*http.Request, error) {
		return client.NewGetAllVaultsRequest(ctx, vaultsfyi.AllVaultsParams{
			Network:           vaultsfyi.Network(a.str("network")),
			AssetSymbol:       vaultsfyi.Asset(a.str("assetSymbol")),
			OnlyTransactional: a.boolPtr("onlyTransactional"),
			Page:              a.intPtr("page"),
			PerPage:           a.intPtr("perPage"),
		})
	},
	"get_vault": func(ctx context.Context, client *vaultsfyi.Client, a args) (*http.Request, error) {
		return client.NewGetVaultRequest(ctx, vaultsfyi.VaultParams{
			Network:      vaultsfyi.Network(a.str("network")),
			VaultAddress: a.str("vaultAddress"),
		})
	},
	"get_vault_historical_data": func(ctx context.Context, client *vaultsfyi.Client, a args) (*http.Request, error) {
		return client.NewGetVaultHistoricalDataRequest(ctx, vaultsfyi.VaultHistoricalDataParams{
			Network:       vaultsfyi.Network(a.str("network")),
			VaultAddress:  a.str("vaultAddress"),
			APYInterval:   vaultsfyi.APYInterval(a.str("apyInterval")),
			FromTimestamp: a.int64Ptr("fromTimestamp"),
			ToTimestamp:   a.int64Ptr("toTimestamp"),
			Page:          a.intPtr("page"),
			PerPage:       a.intPtr("perPage"),
		})
	},
	"get_positions": func(ctx context.Context, client *vaultsfyi.Client, a args) (*http.Request, error) {
		return client.NewGetPositionsRequest(ctx, vaultsfyi.PositionsParams{
			UserAddress: a.str("userAddress"),
		})
	},
	"get_deposit_options": func(ctx context.Context, client *vaultsfyi.Client, a args) (*http.Request, error) {
		params := vaultsfyi.DepositOptionsParams{
			UserAddress: a.str("userAddress"),
		}
		for _, s := range a.strs("allowedAssets") {
			params.AllowedAssets = append(params.AllowedAssets, vaultsfyi.Asset(s))
		}
		for _, s := range a.strs("allowedNetworks") {
			params.AllowedNetworks = append(params.AllowedNetworks, vaultsfyi.Network(s))
		}
		for _, s := range a.strs("disallowedNetworks") {
			params.DisallowedNetworks = append(params.DisallowedNetworks, vaultsfyi.Network(s))
		}
		return client.NewGetDepositOptionsRequest(ctx, params)
	},
	"get_idle_assets": func(ctx context.Context, client *vaultsfyi.Client, a args) (*http.Request, error) {
		return client.NewGetIdleAssetsRequest(ctx, vaultsfyi.IdleAssetsParams{
			UserAddress: a.str("userAddress"),
		})
	},
	"get_actions": func(ctx context.Context, client *vaultsfyi.Client, a args) (*http.Request, error) {
		return client.NewGetActionsRequest(ctx, vaultsfyi.ActionsParams{
			Action:       vaultsfyi.Action(a.str("action")),
			UserAddress:  a.str("userAddress"),
			Network:      vaultsfyi.Network(a.str("network")),
			VaultAddress: a.str("vaultAddress"),
			Amount:       a.str("amount"),
			AssetAddress: a.str("assetAddress"),
			Simulate:     a.boolPtr("simulate"),
		})
	},
	"get_transactions_context": func(ctx context.Context, client *vaultsfyi.Client, a args) (*http.Request, error) {
		return client.NewGetTransactionsContextRequest(ctx, vaultsfyi.TransactionsContextParams{
			UserAddress:  a.str("userAddress"),
			Network:      vaultsfyi.Network(a.str("network")),
			VaultAddress: a.str("vaultAddress"),
		})
	},
	"get_vault_holder_events": func(ctx context.Context, client *vaultsfyi.Client, a args) (*http.Request, error) {
		return client.NewGetVaultHolderEventsRequest(ctx, vaultsfyi.VaultHolderEventsParams{
			UserAddress:  a.str("userAddress"),
			Network:      vaultsfyi.Network(a.str("network")),
			VaultAddress: a.str("vaultAddress"),
		})
	},
	"get_vault_total_returns": func(ctx context.Context, client *vaultsfyi.Client, a args) (*http.Request, error) {
		return client.NewGetVaultTotalReturnsRequest(ctx, vaultsfyi.VaultTotalReturnsParams{
			UserAddress:  a.str("userAddress"),
			Network:      vaultsfyi.Network(a.str("network")),
			VaultAddress: a.str("vaultAddress"),
		})
	},
}

// Parameters returns the suite that constructs a dry-run request for every
// documented example. Nothing is dialed, so network and authentication
// failures are structurally impossible here; what is asserted is that the
// guide's literal parameter shapes remain constructible and interpolate
// into the documented paths.
func Parameters(reg registry.Registry, apiKey string) conformance.Suite {
	suite := conformance.Suite{
		Name:        "parameters",
		Description: "documented examples construct valid requests",
	}

	for _, op := range reg.Operations().List() {
		op := op
		for _, ex := range op.Examples {
			ex := ex
			suite.Checks = append(suite.Checks, conformance.Check{
				Name:        op.ID + "/" + ex.Name,
				Description: fmt.Sprintf("example %q of %s builds the documented request", ex.Name, op.ID),
				Fn: func(ctx context.Context) error {
					build, ok := builders[op.ID]
					if !ok {
						return fmt.Errorf("binding has no request builder for operation %s", op.ID)
					}
					client, err := vaultsfyi.New(vaultsfyi.Config{APIKey: apiKey})
					if err != nil {
						return err
					}

					a := normalizeArgs(ex)
					req, err := build(ctx, client, a)
					if err != nil {
						return fmt.Errorf("constructing documented call: %w", err)
					}

					wantPath, err := expandPath(op, a)
					if err != nil {
						return err
					}
					if req.URL.Path != wantPath {
						return fmt.Errorf("request path %q, documented %q", req.URL.Path, wantPath)
					}
					if req.Header.Get("x-api-key") == "" {
						return fmt.Errorf("request is missing the x-api-key header")
					}
					return nil
				},
			})
		}
	}

	return suite
}

// expandPath substitutes the example's arguments into the operation's path
// template.
func expandPath(op registry.Operation, a args) (string, error) {
	path := op.Path
	for _, p := range op.PathParams() {
		value := a.str(p.Name)
		if value == "" {
			return "", fmt.Errorf("example is missing path param %q", p.Name)
		}
		path = strings.ReplaceAll(path, "{"+p.Name+"}", url.PathEscape(value))
	}
	return path, nil
}
