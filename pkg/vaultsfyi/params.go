package vaultsfyi

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"

	"github.com/vaultsfyi/sextant/pkg/constants"
	"github.com/vaultsfyi/sextant/pkg/errors"
)

var (
	addressRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	amountRe  = regexp.MustCompile(`^[0-9]+$`)
)

// validateAddress checks a 0x-prefixed 20-byte hex address.
func validateAddress(field, value string) error {
	if value == "" {
		return errors.NewValidationError(field, value, "address is required")
	}
	if !addressRe.MatchString(value) {
		return errors.NewValidationError(field, value, "not a 0x-prefixed 20-byte hex address")
	}
	return nil
}

func validateNetwork(field string, n Network) error {
	if n == "" {
		return errors.NewValidationError(field, n, "network is required")
	}
	if !n.IsValid() {
		return errors.NewValidationError(field, n, "not a documented network")
	}
	return nil
}

func validatePage(field string, page *int) error {
	if page != nil && *page < 0 {
		return errors.NewValidationError(field, *page, "must not be negative")
	}
	return nil
}

func validatePerPage(field string, perPage *int) error {
	if perPage == nil {
		return nil
	}
	if *perPage <= 0 {
		return errors.NewValidationError(field, *perPage, "must be positive")
	}
	if *perPage > constants.MaxPageSize {
		return errors.NewValidationError(field, *perPage,
			fmt.Sprintf("must not exceed %d", constants.MaxPageSize))
	}
	return nil
}

func validateTimeRange(from, to *int64) error {
	if from != nil && *from < 0 {
		return errors.NewValidationError("fromTimestamp", *from, "must not be negative")
	}
	if to != nil && *to < 0 {
		return errors.NewValidationError("toTimestamp", *to, "must not be negative")
	}
	if from != nil && to != nil && *to < *from {
		return errors.NewValidationError("toTimestamp", *to, "must not precede fromTimestamp")
	}
	return nil
}

func setInt(q url.Values, key string, v *int) {
	if v != nil {
		q.Set(key, strconv.Itoa(*v))
	}
}

func setInt64(q url.Values, key string, v *int64) {
	if v != nil {
		q.Set(key, strconv.FormatInt(*v, 10))
	}
}

func setBool(q url.Values, key string, v *bool) {
	if v != nil {
		q.Set(key, strconv.FormatBool(*v))
	}
}

// BenchmarksParams are the parameters for GetBenchmarks.
type BenchmarksParams struct {
	Network Network
	Code    BenchmarkCode
}

// Validate checks the parameters against the documented constraints.
func (p BenchmarksParams) Validate() error {
	if err := validateNetwork("network", p.Network); err != nil {
		return err
	}
	if p.Code == "" || !p.Code.IsValid() {
		return errors.NewValidationError("code", p.Code, "not a documented benchmark code")
	}
	return nil
}

func (p BenchmarksParams) path() string {
	return fmt.Sprintf("/v2/benchmarks/%s/%s", url.PathEscape(p.Network.String()), url.PathEscape(p.Code.String()))
}

func (p BenchmarksParams) query() url.Values { return nil }

// HistoricalBenchmarksParams are the parameters for GetHistoricalBenchmarks.
type HistoricalBenchmarksParams struct {
	Network       Network
	Code          BenchmarkCode
	Page          *int
	PerPage       *int
	FromTimestamp *int64
	ToTimestamp   *int64
}

// Validate checks the parameters against the documented constraints.
func (p HistoricalBenchmarksParams) Validate() error {
	if err := validateNetwork("network", p.Network); err != nil {
		return err
	}
	if p.Code == "" || !p.Code.IsValid() {
		return errors.NewValidationError("code", p.Code, "not a documented benchmark code")
	}
	if err := validatePage("page", p.Page); err != nil {
		return err
	}
	if err := validatePerPage("perPage", p.PerPage); err != nil {
		return err
	}
	return validateTimeRange(p.FromTimestamp, p.ToTimestamp)
}

func (p HistoricalBenchmarksParams) path() string {
	return fmt.Sprintf("/v2/historical-benchmarks/%s/%s", url.PathEscape(p.Network.String()), url.PathEscape(p.Code.String()))
}

func (p HistoricalBenchmarksParams) query() url.Values {
	q := url.Values{}
	setInt(q, "page", p.Page)
	setInt(q, "perPage", p.PerPage)
	setInt64(q, "fromTimestamp", p.FromTimestamp)
	setInt64(q, "toTimestamp", p.ToTimestamp)
	return q
}

// AllVaultsParams are the parameters for GetAllVaults. All fields are
// optional filters; the zero value requests every tracked vault.
type AllVaultsParams struct {
	Network           Network
	AssetSymbol       Asset
	OnlyTransactional *bool
	Page              *int
	PerPage           *int
}

// Validate checks the parameters against the documented constraints.
func (p AllVaultsParams) Validate() error {
	if p.Network != "" && !p.Network.IsValid() {
		return errors.NewValidationError("network", p.Network, "not a documented network")
	}
	if p.AssetSymbol != "" && !p.AssetSymbol.IsValid() {
		return errors.NewValidationError("assetSymbol", p.AssetSymbol, "not a documented asset symbol")
	}
	if err := validatePage("page", p.Page); err != nil {
		return err
	}
	return validatePerPage("perPage", p.PerPage)
}

func (p AllVaultsParams) path() string { return "/v2/detailed-vaults" }

func (p AllVaultsParams) query() url.Values {
	q := url.Values{}
	if p.Network != "" {
		q.Set("network", p.Network.String())
	}
	if p.AssetSymbol != "" {
		q.Set("assetSymbol", p.AssetSymbol.String())
	}
	setBool(q, "onlyTransactional", p.OnlyTransactional)
	setInt(q, "page", p.Page)
	setInt(q, "perPage", p.PerPage)
	return q
}

// VaultParams are the parameters for GetVault.
type VaultParams struct {
	Network      Network
	VaultAddress string
}

// Validate checks the parameters against the documented constraints.
func (p VaultParams) Validate() error {
	if err := validateNetwork("network", p.Network); err != nil {
		return err
	}
	return validateAddress("vaultAddress", p.VaultAddress)
}

func (p VaultParams) path() string {
	return fmt.Sprintf("/v2/detailed-vaults/%s/%s", url.PathEscape(p.Network.String()), url.PathEscape(p.VaultAddress))
}

func (p VaultParams) query() url.Values { return nil }

// VaultHistoricalDataParams are the parameters for GetVaultHistoricalData.
type VaultHistoricalDataParams struct {
	Network       Network
	VaultAddress  string
	APYInterval   APYInterval
	FromTimestamp *int64
	ToTimestamp   *int64
	Page          *int
	PerPage       *int
}

// Validate checks the parameters against the documented constraints.
func (p VaultHistoricalDataParams) Validate() error {
	if err := validateNetwork("network", p.Network); err != nil {
		return err
	}
	if err := validateAddress("vaultAddress", p.VaultAddress); err != nil {
		return err
	}
	if p.APYInterval != "" && !p.APYInterval.IsValid() {
		return errors.NewValidationError("apyInterval", p.APYInterval, "not a documented APY interval")
	}
	if err := validatePage("page", p.Page); err != nil {
		return err
	}
	if err := validatePerPage("perPage", p.PerPage); err != nil {
		return err
	}
	return validateTimeRange(p.FromTimestamp, p.ToTimestamp)
}

func (p VaultHistoricalDataParams) path() string {
	return fmt.Sprintf("/v2/historical/%s/%s", url.PathEscape(p.Network.String()), url.PathEscape(p.VaultAddress))
}

func (p VaultHistoricalDataParams) query() url.Values {
	q := url.Values{}
	if p.APYInterval != "" {
		q.Set("apyInterval", p.APYInterval.String())
	}
	setInt64(q, "fromTimestamp", p.FromTimestamp)
	setInt64(q, "toTimestamp", p.ToTimestamp)
	setInt(q, "page", p.Page)
	setInt(q, "perPage", p.PerPage)
	return q
}

// PositionsParams are the parameters for GetPositions.
type PositionsParams struct {
	UserAddress string
}

// Validate checks the parameters against the documented constraints.
func (p PositionsParams) Validate() error {
	return validateAddress("userAddress", p.UserAddress)
}

func (p PositionsParams) path() string {
	return "/v2/portfolio/positions/" + url.PathEscape(p.UserAddress)
}

func (p PositionsParams) query() url.Values { return nil }

// DepositOptionsParams are the parameters for GetDepositOptions.
type DepositOptionsParams struct {
	UserAddress        string
	AllowedAssets      []Asset
	AllowedNetworks    []Network
	DisallowedNetworks []Network
}

// Validate checks the parameters against the documented constraints.
func (p DepositOptionsParams) Validate() error {
	if err := validateAddress("userAddress", p.UserAddress); err != nil {
		return err
	}
	for _, a := range p.AllowedAssets {
		if !a.IsValid() {
			return errors.NewValidationError("allowedAssets", a, "not a documented asset symbol")
		}
	}
	for _, n := range p.AllowedNetworks {
		if !n.IsValid() {
			return errors.NewValidationError("allowedNetworks", n, "not a documented network")
		}
	}
	for _, n := range p.DisallowedNetworks {
		if !n.IsValid() {
			return errors.NewValidationError("disallowedNetworks", n, "not a documented network")
		}
	}
	return nil
}

func (p DepositOptionsParams) path() string {
	return "/v2/portfolio/deposit-options/" + url.PathEscape(p.UserAddress)
}

func (p DepositOptionsParams) query() url.Values {
	q := url.Values{}
	for _, a := range p.AllowedAssets {
		q.Add("allowedAssets", a.String())
	}
	for _, n := range p.AllowedNetworks {
		q.Add("allowedNetworks", n.String())
	}
	for _, n := range p.DisallowedNetworks {
		q.Add("disallowedNetworks", n.String())
	}
	return q
}

// IdleAssetsParams are the parameters for GetIdleAssets.
type IdleAssetsParams struct {
	UserAddress string
}

// Validate checks the parameters against the documented constraints.
func (p IdleAssetsParams) Validate() error {
	return validateAddress("userAddress", p.UserAddress)
}

func (p IdleAssetsParams) path() string {
	return "/v2/portfolio/idle-assets/" + url.PathEscape(p.UserAddress)
}

func (p IdleAssetsParams) query() url.Values { return nil }

// ActionsParams are the parameters for GetActions.
type ActionsParams struct {
	Action       Action
	UserAddress  string
	Network      Network
	VaultAddress string
	Amount       string
	AssetAddress string
	Simulate     *bool
}

// Validate checks the parameters against the documented constraints.
func (p ActionsParams) Validate() error {
	if p.Action == "" || !p.Action.IsValid() {
		return errors.NewValidationError("action", p.Action, "not a documented action kind")
	}
	if err := validateAddress("userAddress", p.UserAddress); err != nil {
		return err
	}
	if err := validateNetwork("network", p.Network); err != nil {
		return err
	}
	if err := validateAddress("vaultAddress", p.VaultAddress); err != nil {
		return err
	}
	if p.Amount != "" {
		// Amounts are base-unit decimal strings and routinely exceed 64
		// bits for 18-decimal tokens, so they never pass through integers.
		if !amountRe.MatchString(p.Amount) {
			return errors.NewValidationError("amount", p.Amount, "not a base-unit decimal string")
		}
	}
	if p.AssetAddress != "" {
		if err := validateAddress("assetAddress", p.AssetAddress); err != nil {
			return err
		}
	}
	return nil
}

func (p ActionsParams) path() string {
	return fmt.Sprintf("/v2/transactions/vaults/%s/%s/%s/%s",
		url.PathEscape(p.Action.String()),
		url.PathEscape(p.UserAddress),
		url.PathEscape(p.Network.String()),
		url.PathEscape(p.VaultAddress))
}

func (p ActionsParams) query() url.Values {
	q := url.Values{}
	if p.Amount != "" {
		q.Set("amount", p.Amount)
	}
	if p.AssetAddress != "" {
		q.Set("assetAddress", p.AssetAddress)
	}
	setBool(q, "simulate", p.Simulate)
	return q
}

// TransactionsContextParams are the parameters for GetTransactionsContext.
type TransactionsContextParams struct {
	UserAddress  string
	Network      Network
	VaultAddress string
}

// Validate checks the parameters against the documented constraints.
func (p TransactionsContextParams) Validate() error {
	return validateHolderTriple(p.UserAddress, p.Network, p.VaultAddress)
}

func (p TransactionsContextParams) path() string {
	return fmt.Sprintf("/v2/transactions/context/%s/%s/%s",
		url.PathEscape(p.UserAddress), url.PathEscape(p.Network.String()), url.PathEscape(p.VaultAddress))
}

func (p TransactionsContextParams) query() url.Values { return nil }

// VaultHolderEventsParams are the parameters for GetVaultHolderEvents.
type VaultHolderEventsParams struct {
	UserAddress  string
	Network      Network
	VaultAddress string
}

// Validate checks the parameters against the documented constraints.
func (p VaultHolderEventsParams) Validate() error {
	return validateHolderTriple(p.UserAddress, p.Network, p.VaultAddress)
}

func (p VaultHolderEventsParams) path() string {
	return fmt.Sprintf("/v2/portfolio/events/%s/%s/%s",
		url.PathEscape(p.UserAddress), url.PathEscape(p.Network.String()), url.PathEscape(p.VaultAddress))
}

func (p VaultHolderEventsParams) query() url.Values { return nil }

// VaultTotalReturnsParams are the parameters for GetVaultTotalReturns.
type VaultTotalReturnsParams struct {
	UserAddress  string
	Network      Network
	VaultAddress string
}

// Validate checks the parameters against the documented constraints.
func (p VaultTotalReturnsParams) Validate() error {
	return validateHolderTriple(p.UserAddress, p.Network, p.VaultAddress)
}

func (p VaultTotalReturnsParams) path() string {
	return fmt.Sprintf("/v2/portfolio/returns/%s/%s/%s",
		url.PathEscape(p.UserAddress), url.PathEscape(p.Network.String()), url.PathEscape(p.VaultAddress))
}

func (p VaultTotalReturnsParams) query() url.Values { return nil }

// validateHolderTriple validates the (userAddress, network, vaultAddress)
// parameter triple shared by the portfolio and transaction endpoints.
func validateHolderTriple(user string, network Network, vault string) error {
	if err := validateAddress("userAddress", user); err != nil {
		return err
	}
	if err := validateNetwork("network", network); err != nil {
		return err
	}
	return validateAddress("vaultAddress", vault)
}
