package registry

import (
	"strings"
	"time"

	"github.com/vaultsfyi/sextant/internal/strcase"
)

// API describes the documented API configuration: base URL, version,
// authentication header, and client defaults.
type API struct {
	BaseURL        string `yaml:"base_url" json:"base_url"`
	Version        string `yaml:"version" json:"version"`
	AuthHeader     string `yaml:"auth_header" json:"auth_header"`
	ResponseFormat string `yaml:"response_format" json:"response_format"`
	TimeoutSeconds int    `yaml:"timeout_seconds" json:"timeout_seconds"`
	MaxRetries     int    `yaml:"max_retries" json:"max_retries"`
}

// Timeout returns the documented default client timeout as a duration.
func (a API) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// Casing is the casing convention a vocabulary declares for its values.
type Casing string

// Casing conventions used by the documented vocabularies.
const (
	CasingLower Casing = "lower"
	CasingUpper Casing = "upper"
)

// Holds reports whether the given value follows the casing convention.
// Values without letters (e.g. "1day") satisfy both conventions.
func (c Casing) Holds(value string) bool {
	switch c {
	case CasingLower:
		return value == strings.ToLower(value)
	case CasingUpper:
		return value == strings.ToUpper(value)
	}
	return false
}

// Vocabulary is a fixed set of documented domain values with a declared
// casing convention, such as the supported networks or asset symbols.
type Vocabulary struct {
	Casing Casing   `yaml:"casing" json:"casing"`
	Values []string `yaml:"values" json:"values"`
}

// Contains reports whether the vocabulary includes the given value.
func (v Vocabulary) Contains(value string) bool {
	for _, s := range v.Values {
		if s == value {
			return true
		}
	}
	return false
}

// Len returns the number of values in the vocabulary.
func (v Vocabulary) Len() int {
	return len(v.Values)
}

// Well-known vocabulary names in the registry.
const (
	VocabNetworks       = "networks"
	VocabAssets         = "assets"
	VocabActions        = "actions"
	VocabBenchmarkCodes = "benchmark_codes"
	VocabAPYIntervals   = "apy_intervals"
)

// Fixtures are the literal parameter values the guide uses in its examples.
// They are copied verbatim into assertion calls and expected-value checks.
type Fixtures struct {
	UserAddress   string `yaml:"user_address" json:"user_address"`
	VaultAddress  string `yaml:"vault_address" json:"vault_address"`
	AssetAddress  string `yaml:"asset_address" json:"asset_address"`
	Amount        string `yaml:"amount" json:"amount"`
	FromTimestamp int64  `yaml:"from_timestamp" json:"from_timestamp"`
	ToTimestamp   int64  `yaml:"to_timestamp" json:"to_timestamp"`
	Page          int    `yaml:"page" json:"page"`
	PerPage       int    `yaml:"per_page" json:"per_page"`
}

// ParamLocation says where a parameter travels: interpolated into the path
// template or encoded into the query string.
type ParamLocation string

// Parameter locations.
const (
	InPath  ParamLocation = "path"
	InQuery ParamLocation = "query"
)

// ParamType is the documented type of a parameter value.
type ParamType string

// Parameter types.
const (
	TypeString     ParamType = "string"
	TypeInt        ParamType = "int"
	TypeBool       ParamType = "bool"
	TypeAddress    ParamType = "address"
	TypeStringList ParamType = "string_list"
	TypeEnum       ParamType = "enum"
)

// Param describes one documented operation parameter. Name is the canonical
// camelCase wire name; bindings derive their native casing from it.
type Param struct {
	Name     string        `yaml:"name" json:"name"`
	In       ParamLocation `yaml:"in" json:"in"`
	Type     ParamType     `yaml:"type" json:"type"`
	Enum     string        `yaml:"enum,omitempty" json:"enum,omitempty"`
	Required bool          `yaml:"required" json:"required"`
}

// Example is one documented call example. Argument keys are verbatim from
// the guide, including its historical mixed casing; resolve keys with
// NormalizeArgKey before matching them against declared params.
type Example struct {
	Name string         `yaml:"name" json:"name"`
	Args map[string]any `yaml:"args" json:"args"`
}

// Operation is one documented API operation. ID is the canonical snake_case
// identifier shared across the guide and all bindings.
type Operation struct {
	ID       string    `yaml:"id" json:"id"`
	Title    string    `yaml:"title" json:"title"`
	Method   string    `yaml:"method" json:"method"`
	Path     string    `yaml:"path" json:"path"`
	Required bool      `yaml:"required" json:"required"`
	Summary  string    `yaml:"summary,omitempty" json:"summary,omitempty"`
	Params   []Param   `yaml:"params,omitempty" json:"params,omitempty"`
	Examples []Example `yaml:"examples,omitempty" json:"examples,omitempty"`
}

// GoMethod returns the operation's Go binding method name (PascalCase).
func (o Operation) GoMethod() string {
	return strcase.ToPascalCase(o.ID)
}

// JSMethod returns the operation's JavaScript binding member name (camelCase).
func (o Operation) JSMethod() string {
	return strcase.ToCamelCase(o.ID)
}

// PyMethod returns the operation's Python binding method name (snake_case).
func (o Operation) PyMethod() string {
	return strcase.ToSnakeCase(o.ID)
}

// Param returns the declared parameter with the given wire name.
func (o Operation) Param(name string) (Param, bool) {
	for _, p := range o.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}

// PathParams returns the operation's path parameters in declared order.
func (o Operation) PathParams() []Param {
	var params []Param
	for _, p := range o.Params {
		if p.In == InPath {
			params = append(params, p)
		}
	}
	return params
}

// QueryParams returns the operation's query parameters in declared order.
func (o Operation) QueryParams() []Param {
	var params []Param
	for _, p := range o.Params {
		if p.In == InQuery {
			params = append(params, p)
		}
	}
	return params
}

// NormalizeArgKey maps an example argument key to its canonical camelCase
// wire name. The guide's examples mix snake_case and camelCase spellings;
// both resolve to the same parameter.
func NormalizeArgKey(key string) string {
	return strcase.ToCamelCase(key)
}

// document is the registry file's top-level YAML structure.
type document struct {
	API          API                   `yaml:"api"`
	Vocabularies map[string]Vocabulary `yaml:"vocabularies"`
	Fixtures     Fixtures              `yaml:"fixtures"`
	Operations   []Operation           `yaml:"operations"`
}
