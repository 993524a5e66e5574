package suites

import (
	"fmt"

	"github.com/vaultsfyi/sextant/pkg/registry"
)

// args holds one example's arguments keyed by their canonical camelCase
// wire names, regardless of the spelling the guide used.
type args map[string]any

// normalizeArgs resolves an example's mixed-casing argument keys into
// canonical wire names.
func normalizeArgs(ex registry.Example) args {
	a := make(args, len(ex.Args))
	for key, value := range ex.Args {
		a[registry.NormalizeArgKey(key)] = value
	}
	return a
}

// str returns the argument's string form, or "" when absent. Non-string
// scalars are rendered the way the guide writes them.
func (a args) str(key string) string {
	v, ok := a[key]
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case string:
		return s
	default:
		return fmt.Sprintf("%v", v)
	}
}

// intPtr returns the argument as an optional int, or nil when absent.
// YAML integers decode through several widths depending on magnitude.
func (a args) intPtr(key string) *int {
	v, ok := a[key]
	if !ok {
		return nil
	}
	if n, ok := asInt64(v); ok {
		i := int(n)
		return &i
	}
	return nil
}

// int64Ptr returns the argument as an optional int64, or nil when absent.
func (a args) int64Ptr(key string) *int64 {
	v, ok := a[key]
	if !ok {
		return nil
	}
	if n, ok := asInt64(v); ok {
		return &n
	}
	return nil
}

// boolPtr returns the argument as an optional bool, or nil when absent.
func (a args) boolPtr(key string) *bool {
	v, ok := a[key]
	if !ok {
		return nil
	}
	if b, ok := v.(bool); ok {
		return &b
	}
	return nil
}

// strs returns the argument as a string slice, or nil when absent.
func (a args) strs(key string) []string {
	v, ok := a[key]
	if !ok {
		return nil
	}
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int64:
		return n, true
	case uint64:
		return int64(n), true
	case float64:
		return int64(n), true
	}
	return 0, false
}
