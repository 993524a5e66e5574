package bindings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vaultsfyi/sextant/internal/strcase"
	"github.com/vaultsfyi/sextant/pkg/constants"
	"github.com/vaultsfyi/sextant/pkg/registry"
)

// Expectations is the document a subprocess probe receives: everything the
// registry documents about the SDK, rendered in the binding's native
// casing. Probes are data-driven and carry no knowledge of their own.
type Expectations struct {
	Binding      string               `json:"binding"`
	Module       string               `json:"module"`
	ClientSymbol string               `json:"clientSymbol"`
	InstallHint  string               `json:"installHint"`
	Constructor  ConstructorSpec      `json:"constructor"`
	Methods      []MethodSpec         `json:"methods"`
	Vocabularies map[string]VocabSpec `json:"vocabularies"`
}

// ConstructorSpec describes how the SDK client is constructed.
type ConstructorSpec struct {
	APIKeyArg string `json:"apiKeyArg"`
}

// MethodSpec is one documented operation in the binding's casing.
type MethodSpec struct {
	Op       string        `json:"op"`
	Name     string        `json:"name"`
	Required bool          `json:"required"`
	Params   []ParamSpec   `json:"params"`
	Examples []ExampleSpec `json:"examples"`
}

// ParamSpec is one documented parameter in the binding's casing.
type ParamSpec struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Enum     string `json:"enum,omitempty"`
	Required bool   `json:"required"`
}

// ExampleSpec is one documented call example with re-cased argument keys.
type ExampleSpec struct {
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

// VocabSpec is one documented vocabulary.
type VocabSpec struct {
	Casing string   `json:"casing"`
	Values []string `json:"values"`
}

// caser renders a canonical camelCase wire name in a binding's native
// parameter casing.
type caser func(string) string

func camelCaser(name string) string { return name }

func snakeCaser(name string) string { return strcase.ToSnakeCase(name) }

// buildExpectations renders the registry into a probe expectations document.
func buildExpectations(reg registry.Registry, binding, module, clientSymbol, installHint, apiKeyArg string, methodName func(registry.Operation) string, recase caser) Expectations {
	exp := Expectations{
		Binding:      binding,
		Module:       module,
		ClientSymbol: clientSymbol,
		InstallHint:  installHint,
		Constructor:  ConstructorSpec{APIKeyArg: apiKeyArg},
		Vocabularies: make(map[string]VocabSpec, reg.Vocabularies().Len()),
	}

	for _, name := range reg.Vocabularies().Names() {
		vocab, _ := reg.Vocabularies().Get(name)
		exp.Vocabularies[name] = VocabSpec{
			Casing: string(vocab.Casing),
			Values: vocab.Values,
		}
	}

	for _, op := range reg.Operations().List() {
		method := MethodSpec{
			Op:       op.ID,
			Name:     methodName(op),
			Required: op.Required,
		}
		for _, p := range op.Params {
			method.Params = append(method.Params, ParamSpec{
				Name:     recase(p.Name),
				Type:     string(p.Type),
				Enum:     p.Enum,
				Required: p.Required,
			})
		}
		for _, ex := range op.Examples {
			args := make(map[string]any, len(ex.Args))
			for key, value := range ex.Args {
				args[recase(registry.NormalizeArgKey(key))] = value
			}
			method.Examples = append(method.Examples, ExampleSpec{
				Name: ex.Name,
				Args: args,
			})
		}
		exp.Methods = append(exp.Methods, method)
	}

	return exp
}

// writeExpectations persists an expectations document into the sandbox
// directory and returns its path.
func writeExpectations(dir string, exp Expectations) (string, error) {
	data, err := json.MarshalIndent(exp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding expectations: %w", err)
	}
	path := filepath.Join(dir, "expectations-"+exp.Binding+".json")
	if err := os.WriteFile(path, data, constants.FilePermissions); err != nil {
		return "", fmt.Errorf("writing expectations: %w", err)
	}
	return path, nil
}
