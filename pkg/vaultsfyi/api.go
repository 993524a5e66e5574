package vaultsfyi

import "context"

// Payload is a decoded JSON response body. Response shapes belong to the
// API, not to this binding, so payloads stay schemaless.
type Payload map[string]any

// API is the capability-set contract: every documented operation, stated as
// a Go method. Client satisfies it with a compile-time assertion, so a
// method dropped from the binding fails the build before any suite runs.
type API interface {
	// GetNetworks lists the networks the API currently supports.
	GetNetworks(ctx context.Context) (Payload, error)

	// GetBenchmarks returns current benchmark rates for a network and code.
	GetBenchmarks(ctx context.Context, params BenchmarksParams) (Payload, error)

	// GetHistoricalBenchmarks returns paginated benchmark history.
	GetHistoricalBenchmarks(ctx context.Context, params HistoricalBenchmarksParams) (Payload, error)

	// GetAllVaults lists tracked vaults, filterable by network and asset.
	GetAllVaults(ctx context.Context, params AllVaultsParams) (Payload, error)

	// GetVault returns details for one vault.
	GetVault(ctx context.Context, params VaultParams) (Payload, error)

	// GetVaultHistoricalData returns paginated APY and TVL history.
	GetVaultHistoricalData(ctx context.Context, params VaultHistoricalDataParams) (Payload, error)

	// GetPositions returns current vault positions for a wallet.
	GetPositions(ctx context.Context, params PositionsParams) (Payload, error)

	// GetDepositOptions returns best yield opportunities for idle assets.
	GetDepositOptions(ctx context.Context, params DepositOptionsParams) (Payload, error)

	// GetIdleAssets returns wallet balances not deployed in any vault.
	GetIdleAssets(ctx context.Context, params IdleAssetsParams) (Payload, error)

	// GetActions returns transaction payloads for a deposit or redeem.
	GetActions(ctx context.Context, params ActionsParams) (Payload, error)

	// GetTransactionsContext returns context needed before building
	// transactions for a vault.
	GetTransactionsContext(ctx context.Context, params TransactionsContextParams) (Payload, error)

	// GetVaultHolderEvents returns deposit, withdrawal, and transfer events
	// for a holder.
	GetVaultHolderEvents(ctx context.Context, params VaultHolderEventsParams) (Payload, error)

	// GetVaultTotalReturns returns realized and unrealized returns for a
	// holder in one vault.
	GetVaultTotalReturns(ctx context.Context, params VaultTotalReturnsParams) (Payload, error)
}
