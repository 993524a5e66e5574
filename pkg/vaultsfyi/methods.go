package vaultsfyi

import (
	"context"
	"net/http"
)

// The NewXxxRequest constructors validate documented parameters and build
// the exact request the live method would send, without dialing anything.
// The parameter suites exercise every documented example through them.

// NewGetNetworksRequest builds the GetNetworks request.
func (c *Client) NewGetNetworksRequest(ctx context.Context) (*http.Request, error) {
	return c.newRequest(ctx, http.MethodGet, "/v2/networks", nil)
}

// GetNetworks lists the networks the API currently supports.
func (c *Client) GetNetworks(ctx context.Context) (Payload, error) {
	req, err := c.NewGetNetworksRequest(ctx)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// NewGetBenchmarksRequest validates params and builds the GetBenchmarks request.
func (c *Client) NewGetBenchmarksRequest(ctx context.Context, params BenchmarksParams) (*http.Request, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return c.newRequest(ctx, http.MethodGet, params.path(), params.query())
}

// GetBenchmarks returns current benchmark rates for a network and code.
func (c *Client) GetBenchmarks(ctx context.Context, params BenchmarksParams) (Payload, error) {
	req, err := c.NewGetBenchmarksRequest(ctx, params)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// NewGetHistoricalBenchmarksRequest validates params and builds the
// GetHistoricalBenchmarks request.
func (c *Client) NewGetHistoricalBenchmarksRequest(ctx context.Context, params HistoricalBenchmarksParams) (*http.Request, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return c.newRequest(ctx, http.MethodGet, params.path(), params.query())
}

// GetHistoricalBenchmarks returns paginated benchmark history.
func (c *Client) GetHistoricalBenchmarks(ctx context.Context, params HistoricalBenchmarksParams) (Payload, error) {
	req, err := c.NewGetHistoricalBenchmarksRequest(ctx, params)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// NewGetAllVaultsRequest validates params and builds the GetAllVaults request.
func (c *Client) NewGetAllVaultsRequest(ctx context.Context, params AllVaultsParams) (*http.Request, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return c.newRequest(ctx, http.MethodGet, params.path(), params.query())
}

// GetAllVaults lists tracked vaults, filterable by network and asset.
func (c *Client) GetAllVaults(ctx context.Context, params AllVaultsParams) (Payload, error) {
	req, err := c.NewGetAllVaultsRequest(ctx, params)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// NewGetVaultRequest validates params and builds the GetVault request.
func (c *Client) NewGetVaultRequest(ctx context.Context, params VaultParams) (*http.Request, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return c.newRequest(ctx, http.MethodGet, params.path(), params.query())
}

// GetVault returns details for one vault.
func (c *Client) GetVault(ctx context.Context, params VaultParams) (Payload, error) {
	req, err := c.NewGetVaultRequest(ctx, params)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// NewGetVaultHistoricalDataRequest validates params and builds the
// GetVaultHistoricalData request.
func (c *Client) NewGetVaultHistoricalDataRequest(ctx context.Context, params VaultHistoricalDataParams) (*http.Request, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return c.newRequest(ctx, http.MethodGet, params.path(), params.query())
}

// GetVaultHistoricalData returns paginated APY and TVL history for one vault.
func (c *Client) GetVaultHistoricalData(ctx context.Context, params VaultHistoricalDataParams) (Payload, error) {
	req, err := c.NewGetVaultHistoricalDataRequest(ctx, params)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// NewGetPositionsRequest validates params and builds the GetPositions request.
func (c *Client) NewGetPositionsRequest(ctx context.Context, params PositionsParams) (*http.Request, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return c.newRequest(ctx, http.MethodGet, params.path(), params.query())
}

// GetPositions returns current vault positions for a wallet.
func (c *Client) GetPositions(ctx context.Context, params PositionsParams) (Payload, error) {
	req, err := c.NewGetPositionsRequest(ctx, params)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// NewGetDepositOptionsRequest validates params and builds the
// GetDepositOptions request.
func (c *Client) NewGetDepositOptionsRequest(ctx context.Context, params DepositOptionsParams) (*http.Request, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return c.newRequest(ctx, http.MethodGet, params.path(), params.query())
}

// GetDepositOptions returns best yield opportunities for a wallet's idle
// assets.
func (c *Client) GetDepositOptions(ctx context.Context, params DepositOptionsParams) (Payload, error) {
	req, err := c.NewGetDepositOptionsRequest(ctx, params)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// NewGetIdleAssetsRequest validates params and builds the GetIdleAssets request.
func (c *Client) NewGetIdleAssetsRequest(ctx context.Context, params IdleAssetsParams) (*http.Request, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return c.newRequest(ctx, http.MethodGet, params.path(), params.query())
}

// GetIdleAssets returns wallet balances not deployed in any vault.
func (c *Client) GetIdleAssets(ctx context.Context, params IdleAssetsParams) (Payload, error) {
	req, err := c.NewGetIdleAssetsRequest(ctx, params)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// NewGetActionsRequest validates params and builds the GetActions request.
func (c *Client) NewGetActionsRequest(ctx context.Context, params ActionsParams) (*http.Request, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return c.newRequest(ctx, http.MethodGet, params.path(), params.query())
}

// GetActions returns transaction payloads for a deposit or redeem against
// a vault.
func (c *Client) GetActions(ctx context.Context, params ActionsParams) (Payload, error) {
	req, err := c.NewGetActionsRequest(ctx, params)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// NewGetTransactionsContextRequest validates params and builds the
// GetTransactionsContext request.
func (c *Client) NewGetTransactionsContextRequest(ctx context.Context, params TransactionsContextParams) (*http.Request, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return c.newRequest(ctx, http.MethodGet, params.path(), params.query())
}

// GetTransactionsContext returns context needed before building
// transactions for a vault.
func (c *Client) GetTransactionsContext(ctx context.Context, params TransactionsContextParams) (Payload, error) {
	req, err := c.NewGetTransactionsContextRequest(ctx, params)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// NewGetVaultHolderEventsRequest validates params and builds the
// GetVaultHolderEvents request.
func (c *Client) NewGetVaultHolderEventsRequest(ctx context.Context, params VaultHolderEventsParams) (*http.Request, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return c.newRequest(ctx, http.MethodGet, params.path(), params.query())
}

// GetVaultHolderEvents returns deposit, withdrawal, and transfer events for
// a holder.
func (c *Client) GetVaultHolderEvents(ctx context.Context, params VaultHolderEventsParams) (Payload, error) {
	req, err := c.NewGetVaultHolderEventsRequest(ctx, params)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}

// NewGetVaultTotalReturnsRequest validates params and builds the
// GetVaultTotalReturns request.
func (c *Client) NewGetVaultTotalReturnsRequest(ctx context.Context, params VaultTotalReturnsParams) (*http.Request, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return c.newRequest(ctx, http.MethodGet, params.path(), params.query())
}

// GetVaultTotalReturns returns realized and unrealized returns for a holder
// in one vault.
func (c *Client) GetVaultTotalReturns(ctx context.Context, params VaultTotalReturnsParams) (Payload, error) {
	req, err := c.NewGetVaultTotalReturnsRequest(ctx, params)
	if err != nil {
		return nil, err
	}
	return c.do(req)
}
