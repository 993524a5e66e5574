package registry

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/vaultsfyi/sextant/pkg/errors"
)

var (
	snakeCaseRe = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`)
	addressRe   = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	pathParamRe = regexp.MustCompile(`\{([^{}]+)\}`)
)

// Validate checks the registry for structural consistency: well-formed ids,
// resolvable vocabulary references, path templates that agree with declared
// path parameters, and examples whose arguments resolve to declared params.
// All problems found are reported in a single error.
func (r *registry) Validate() error {
	var problems []string

	problems = append(problems, r.validateAPI()...)
	problems = append(problems, r.validateVocabularies()...)
	problems = append(problems, r.validateOperations()...)

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d problem(s):\n  - %s",
		errors.ErrRegistryInvalid, len(problems), strings.Join(problems, "\n  - "))
}

func (r *registry) validateAPI() []string {
	var problems []string
	if r.api.BaseURL == "" {
		problems = append(problems, "api: base_url is empty")
	} else if !strings.HasPrefix(r.api.BaseURL, "https://") {
		problems = append(problems, fmt.Sprintf("api: base_url %q is not https", r.api.BaseURL))
	}
	if r.api.Version == "" {
		problems = append(problems, "api: version is empty")
	}
	if r.api.AuthHeader == "" {
		problems = append(problems, "api: auth_header is empty")
	}
	if r.api.TimeoutSeconds <= 0 {
		problems = append(problems, "api: timeout_seconds must be positive")
	}
	if r.api.MaxRetries < 0 {
		problems = append(problems, "api: max_retries must not be negative")
	}
	return problems
}

func (r *registry) validateVocabularies() []string {
	var problems []string
	for _, name := range r.vocabularies.Names() {
		vocab, _ := r.vocabularies.Get(name)
		if len(vocab.Values) == 0 {
			problems = append(problems, fmt.Sprintf("vocabulary %s: no values", name))
			continue
		}
		if vocab.Casing != CasingLower && vocab.Casing != CasingUpper {
			problems = append(problems, fmt.Sprintf("vocabulary %s: unknown casing %q", name, vocab.Casing))
			continue
		}
		seen := make(map[string]bool, len(vocab.Values))
		for _, value := range vocab.Values {
			if value == "" {
				problems = append(problems, fmt.Sprintf("vocabulary %s: empty value", name))
				continue
			}
			if !vocab.Casing.Holds(value) {
				problems = append(problems, fmt.Sprintf("vocabulary %s: value %q violates %s casing", name, value, vocab.Casing))
			}
			if seen[value] {
				problems = append(problems, fmt.Sprintf("vocabulary %s: duplicate value %q", name, value))
			}
			seen[value] = true
		}
	}
	return problems
}

func (r *registry) validateOperations() []string {
	var problems []string
	if r.operations.Len() == 0 {
		return []string{"no operations declared"}
	}

	for _, op := range r.operations.List() {
		problems = append(problems, r.validateOperation(op)...)
	}
	return problems
}

func (r *registry) validateOperation(op Operation) []string {
	var problems []string

	if !snakeCaseRe.MatchString(op.ID) {
		problems = append(problems, fmt.Sprintf("operation %q: id is not snake_case", op.ID))
	}
	if op.Method != "GET" && op.Method != "POST" {
		problems = append(problems, fmt.Sprintf("operation %s: unsupported method %q", op.ID, op.Method))
	}
	versionPrefix := "/" + r.api.Version + "/"
	if !strings.HasPrefix(op.Path, versionPrefix) {
		problems = append(problems, fmt.Sprintf("operation %s: path %q does not start with %s", op.ID, op.Path, versionPrefix))
	}

	// Path template placeholders and declared path params must agree in
	// both directions.
	placeholders := make(map[string]bool)
	for _, match := range pathParamRe.FindAllStringSubmatch(op.Path, -1) {
		placeholders[match[1]] = true
	}
	declared := make(map[string]bool)
	for _, p := range op.PathParams() {
		declared[p.Name] = true
		if !placeholders[p.Name] {
			problems = append(problems, fmt.Sprintf("operation %s: path param %q not in path template", op.ID, p.Name))
		}
		if !p.Required {
			problems = append(problems, fmt.Sprintf("operation %s: path param %q must be required", op.ID, p.Name))
		}
	}
	for name := range placeholders {
		if !declared[name] {
			problems = append(problems, fmt.Sprintf("operation %s: path template placeholder {%s} has no declared param", op.ID, name))
		}
	}

	for _, p := range op.Params {
		if p.In != InPath && p.In != InQuery {
			problems = append(problems, fmt.Sprintf("operation %s: param %s has unknown location %q", op.ID, p.Name, p.In))
		}
		if p.Enum != "" {
			if _, ok := r.vocabularies.Get(p.Enum); !ok {
				problems = append(problems, fmt.Sprintf("operation %s: param %s references unknown vocabulary %q", op.ID, p.Name, p.Enum))
			}
		}
		if p.Type == TypeEnum && p.Enum == "" {
			problems = append(problems, fmt.Sprintf("operation %s: enum param %s has no vocabulary reference", op.ID, p.Name))
		}
	}

	for _, ex := range op.Examples {
		problems = append(problems, r.validateExample(op, ex)...)
	}

	return problems
}

func (r *registry) validateExample(op Operation, ex Example) []string {
	var problems []string
	where := fmt.Sprintf("operation %s example %q", op.ID, ex.Name)

	seen := make(map[string]bool)
	for key, value := range ex.Args {
		name := NormalizeArgKey(key)
		param, ok := op.Param(name)
		if !ok {
			problems = append(problems, fmt.Sprintf("%s: arg %q resolves to no declared param", where, key))
			continue
		}
		seen[name] = true
		problems = append(problems, r.validateArgValue(where, param, value)...)
	}

	// Every required path param must appear in every example; the guide's
	// examples are complete calls, not fragments.
	for _, p := range op.PathParams() {
		if !seen[p.Name] {
			problems = append(problems, fmt.Sprintf("%s: missing required path param %q", where, p.Name))
		}
	}

	return problems
}

func (r *registry) validateArgValue(where string, param Param, value any) []string {
	var problems []string
	fail := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf("%s: arg %s %s", where, param.Name, fmt.Sprintf(format, args...)))
	}

	switch param.Type {
	case TypeString:
		if _, ok := value.(string); !ok {
			fail("expects a string, got %T", value)
		}
	case TypeInt:
		if !isIntValue(value) {
			fail("expects an integer, got %T", value)
		}
	case TypeBool:
		if _, ok := value.(bool); !ok {
			fail("expects a bool, got %T", value)
		}
	case TypeAddress:
		s, ok := value.(string)
		if !ok || !addressRe.MatchString(s) {
			fail("expects a 0x-prefixed 20-byte address, got %v", value)
		}
	case TypeEnum:
		s, ok := value.(string)
		if !ok {
			fail("expects a string, got %T", value)
			break
		}
		if vocab, found := r.vocabularies.Get(param.Enum); found && !vocab.Contains(s) {
			fail("value %q not in vocabulary %s", s, param.Enum)
		}
	case TypeStringList:
		items, ok := value.([]any)
		if !ok {
			fail("expects a list, got %T", value)
			break
		}
		vocab, hasVocab := r.vocabularies.Get(param.Enum)
		for _, item := range items {
			s, ok := item.(string)
			if !ok {
				fail("list item %v is not a string", item)
				continue
			}
			if param.Enum != "" && hasVocab && !vocab.Contains(s) {
				fail("list item %q not in vocabulary %s", s, param.Enum)
			}
		}
	default:
		fail("has unknown type %q", param.Type)
	}

	return problems
}

// isIntValue reports whether a YAML-decoded value is an integer. goccy
// decodes untyped numbers as uint64 or int64 depending on sign.
func isIntValue(value any) bool {
	switch v := value.(type) {
	case int, int64, uint64:
		return true
	case float64:
		return v == float64(int64(v))
	}
	return false
}
