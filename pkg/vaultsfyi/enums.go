package vaultsfyi

import "slices"

// Network identifies a supported blockchain network.
type Network string

// Documented networks. The vocabulary suite cross-checks this list against
// the example registry, so drift in either direction is caught.
const (
	NetworkArbitrum   Network = "arbitrum"
	NetworkBase       Network = "base"
	NetworkBerachain  Network = "berachain"
	NetworkBSC        Network = "bsc"
	NetworkCelo       Network = "celo"
	NetworkGnosis     Network = "gnosis"
	NetworkInk        Network = "ink"
	NetworkMainnet    Network = "mainnet"
	NetworkOptimism   Network = "optimism"
	NetworkPolygon    Network = "polygon"
	NetworkSwellchain Network = "swellchain"
	NetworkUnichain   Network = "unichain"
	NetworkWorldchain Network = "worldchain"
)

// Networks returns all supported networks in documented order.
func Networks() []Network {
	return []Network{
		NetworkArbitrum,
		NetworkBase,
		NetworkBerachain,
		NetworkBSC,
		NetworkCelo,
		NetworkGnosis,
		NetworkInk,
		NetworkMainnet,
		NetworkOptimism,
		NetworkPolygon,
		NetworkSwellchain,
		NetworkUnichain,
		NetworkWorldchain,
	}
}

// String returns the string representation of the network.
func (n Network) String() string { return string(n) }

// IsValid returns true if the network is one of the documented networks.
func (n Network) IsValid() bool { return slices.Contains(Networks(), n) }

// Asset identifies a documented asset symbol.
type Asset string

// Documented asset symbols.
const (
	AssetUSDC Asset = "USDC"
	AssetUSDS Asset = "USDS"
	AssetUSDT Asset = "USDT"
	AssetDAI  Asset = "DAI"
	AssetWBTC Asset = "WBTC"
)

// Assets returns all documented asset symbols in documented order.
func Assets() []Asset {
	return []Asset{AssetUSDC, AssetUSDS, AssetUSDT, AssetDAI, AssetWBTC}
}

// String returns the string representation of the asset symbol.
func (a Asset) String() string { return string(a) }

// IsValid returns true if the asset is one of the documented symbols.
func (a Asset) IsValid() bool { return slices.Contains(Assets(), a) }

// Action identifies a transaction action kind.
type Action string

// Documented transaction actions.
const (
	ActionDeposit Action = "deposit"
	ActionRedeem  Action = "redeem"
)

// Actions returns all documented action kinds.
func Actions() []Action {
	return []Action{ActionDeposit, ActionRedeem}
}

// String returns the string representation of the action.
func (a Action) String() string { return string(a) }

// IsValid returns true if the action is one of the documented kinds.
func (a Action) IsValid() bool { return slices.Contains(Actions(), a) }

// BenchmarkCode identifies a benchmark currency code.
type BenchmarkCode string

// Documented benchmark codes.
const (
	BenchmarkUSD BenchmarkCode = "usd"
	BenchmarkETH BenchmarkCode = "eth"
)

// BenchmarkCodes returns all documented benchmark codes.
func BenchmarkCodes() []BenchmarkCode {
	return []BenchmarkCode{BenchmarkUSD, BenchmarkETH}
}

// String returns the string representation of the benchmark code.
func (b BenchmarkCode) String() string { return string(b) }

// IsValid returns true if the code is one of the documented codes.
func (b BenchmarkCode) IsValid() bool { return slices.Contains(BenchmarkCodes(), b) }

// APYInterval identifies a documented APY averaging window.
type APYInterval string

// Documented APY intervals.
const (
	APYInterval1Day  APYInterval = "1day"
	APYInterval7Day  APYInterval = "7day"
	APYInterval30Day APYInterval = "30day"
)

// APYIntervals returns all documented APY intervals.
func APYIntervals() []APYInterval {
	return []APYInterval{APYInterval1Day, APYInterval7Day, APYInterval30Day}
}

// String returns the string representation of the interval.
func (i APYInterval) String() string { return string(i) }

// IsValid returns true if the interval is one of the documented windows.
func (i APYInterval) IsValid() bool { return slices.Contains(APYIntervals(), i) }
