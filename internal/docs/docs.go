// Package docs renders the API guide from the example registry and checks
// the committed guide for drift. The registry is the single source of
// truth; the guide is generated, never edited by hand.
package docs

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	md "github.com/nao1215/markdown"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vaultsfyi/sextant/internal/strcase"
	"github.com/vaultsfyi/sextant/pkg/constants"
	"github.com/vaultsfyi/sextant/pkg/errors"
	"github.com/vaultsfyi/sextant/pkg/registry"
)

// DefaultPath is where the generated guide is committed.
const DefaultPath = "docs/guide.md"

// goInitialisms restores initialisms PascalCase derivation loses.
var goInitialisms = strings.NewReplacer("Apy", "APY")

// Generate renders the full API guide as markdown. Output is deterministic
// for a given registry: vocabularies sort by name, operations keep their
// registry order.
func Generate(reg registry.Registry) (string, error) {
	var buf strings.Builder
	doc := md.NewMarkdown(&buf)
	titleCaser := cases.Title(language.English)

	api := reg.API()
	doc.H1("vaults.fyi API Guide").LF()
	doc.PlainText(fmt.Sprintf("Base URL: `%s` (API %s). Authenticate every request with the `%s` header.",
		api.BaseURL, api.Version, api.AuthHeader)).LF()
	doc.PlainText(fmt.Sprintf("SDK clients default to a %s timeout and %d retries.",
		api.Timeout(), api.MaxRetries)).LF()

	doc.H2("Vocabularies").LF()
	names := reg.Vocabularies().Names()
	sort.Strings(names)
	for _, name := range names {
		vocab, _ := reg.Vocabularies().Get(name)
		doc.H3(titleCaser.String(strings.ReplaceAll(name, "_", " "))).LF()
		doc.PlainText(fmt.Sprintf("%d documented values (%s case):", vocab.Len(), vocab.Casing)).LF()
		doc.CodeBlocks(md.SyntaxHighlight("text"), strings.Join(vocab.Values, "\n")).LF()
	}

	doc.H2("Operations").LF()
	var rows [][]string
	for _, op := range reg.Operations().List() {
		required := "yes"
		if !op.Required {
			required = "no"
		}
		rows = append(rows, []string{op.ID, op.Method, "`" + op.Path + "`", required})
	}
	doc.Table(md.TableSet{
		Header: []string{"Operation", "Method", "Path", "Required"},
		Rows:   rows,
	}).LF()

	for _, op := range reg.Operations().List() {
		writeOperation(doc, op)
	}

	if err := doc.Build(); err != nil {
		return "", fmt.Errorf("rendering guide: %w", err)
	}
	return buf.String(), nil
}

func writeOperation(doc *md.Markdown, op registry.Operation) {
	doc.H3(op.Title).LF()
	if op.Summary != "" {
		doc.PlainText(op.Summary).LF()
	}
	doc.PlainText(fmt.Sprintf("`%s %s`", op.Method, op.Path)).LF()

	if len(op.Params) > 0 {
		var rows [][]string
		for _, p := range op.Params {
			required := "optional"
			if p.Required {
				required = "required"
			}
			kind := string(p.Type)
			if p.Type == registry.TypeEnum {
				kind = "enum (" + p.Enum + ")"
			}
			rows = append(rows, []string{"`" + p.Name + "`", string(p.In), kind, required})
		}
		doc.Table(md.TableSet{
			Header: []string{"Parameter", "In", "Type", "Required"},
			Rows:   rows,
		}).LF()
	}

	if len(op.Examples) == 0 && len(op.Params) > 0 {
		return
	}
	var args map[string]any
	if len(op.Examples) > 0 {
		args = normalizedArgs(op.Examples[0])
	}

	doc.H4("Go").LF()
	doc.CodeBlocks(md.SyntaxHighlight("go"), goSnippet(op, args)).LF()
	doc.H4("JavaScript").LF()
	doc.CodeBlocks(md.SyntaxHighlight("javascript"), jsSnippet(op, args)).LF()
	doc.H4("Python").LF()
	doc.CodeBlocks(md.SyntaxHighlight("python"), pySnippet(op, args)).LF()
}

func normalizedArgs(ex registry.Example) map[string]any {
	args := make(map[string]any, len(ex.Args))
	for key, value := range ex.Args {
		args[registry.NormalizeArgKey(key)] = value
	}
	return args
}

// goSnippet renders the first documented example as a Go call.
func goSnippet(op registry.Operation, args map[string]any) string {
	if len(op.Params) == 0 {
		return fmt.Sprintf("payload, err := client.%s(ctx)", op.GoMethod())
	}
	var fields []string
	for _, p := range op.Params {
		value, ok := args[p.Name]
		if !ok {
			continue
		}
		field := goInitialisms.Replace(strcase.ToPascalCase(p.Name))
		fields = append(fields, fmt.Sprintf("\t%s: %s,", field, goLiteral(p, value)))
	}
	return fmt.Sprintf("payload, err := client.%s(ctx, vaultsfyi.%sParams{\n%s\n})",
		op.GoMethod(), paramsTypeName(op), strings.Join(fields, "\n"))
}

// paramsTypeName matches the Go SDK's parameter struct naming: the method
// name without its Get prefix.
func paramsTypeName(op registry.Operation) string {
	return strings.TrimPrefix(op.GoMethod(), "Get")
}

func goLiteral(p registry.Param, value any) string {
	switch p.Type {
	case registry.TypeString, registry.TypeAddress, registry.TypeEnum:
		return fmt.Sprintf("%q", value)
	case registry.TypeInt:
		return fmt.Sprintf("vaultsfyi.Ptr(%v)", value)
	case registry.TypeBool:
		return fmt.Sprintf("vaultsfyi.Ptr(%v)", value)
	case registry.TypeStringList:
		items, _ := value.([]any)
		var quoted []string
		for _, item := range items {
			quoted = append(quoted, fmt.Sprintf("%q", item))
		}
		return "[]string{" + strings.Join(quoted, ", ") + "}"
	}
	return fmt.Sprintf("%v", value)
}

// jsSnippet renders the first documented example as a JavaScript call.
func jsSnippet(op registry.Operation, args map[string]any) string {
	if len(op.Params) == 0 {
		return fmt.Sprintf("const payload = await client.%s();", op.JSMethod())
	}
	var fields []string
	for _, p := range op.Params {
		value, ok := args[p.Name]
		if !ok {
			continue
		}
		fields = append(fields, fmt.Sprintf("  %s: %s,", p.Name, jsonLiteral(p, value)))
	}
	return fmt.Sprintf("const payload = await client.%s({\n%s\n});",
		op.JSMethod(), strings.Join(fields, "\n"))
}

// pySnippet renders the first documented example as a Python call.
func pySnippet(op registry.Operation, args map[string]any) string {
	if len(op.Params) == 0 {
		return fmt.Sprintf("payload = client.%s()", op.PyMethod())
	}
	var kwargs []string
	for _, p := range op.Params {
		value, ok := args[p.Name]
		if !ok {
			continue
		}
		kwargs = append(kwargs, fmt.Sprintf("    %s=%s,", strcase.ToSnakeCase(p.Name), pyLiteral(p, value)))
	}
	return fmt.Sprintf("payload = client.%s(\n%s\n)", op.PyMethod(), strings.Join(kwargs, "\n"))
}

func jsonLiteral(p registry.Param, value any) string {
	switch p.Type {
	case registry.TypeString, registry.TypeAddress, registry.TypeEnum:
		return fmt.Sprintf("%q", value)
	case registry.TypeStringList:
		items, _ := value.([]any)
		var quoted []string
		for _, item := range items {
			quoted = append(quoted, fmt.Sprintf("%q", item))
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	}
	return fmt.Sprintf("%v", value)
}

func pyLiteral(p registry.Param, value any) string {
	switch p.Type {
	case registry.TypeString, registry.TypeAddress, registry.TypeEnum:
		return fmt.Sprintf("%q", value)
	case registry.TypeBool:
		if b, ok := value.(bool); ok && b {
			return "True"
		}
		return "False"
	case registry.TypeStringList:
		items, _ := value.([]any)
		var quoted []string
		for _, item := range items {
			quoted = append(quoted, fmt.Sprintf("%q", item))
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	}
	return fmt.Sprintf("%v", value)
}

// Verify regenerates the guide and compares it with the committed file.
// Any difference is documentation drift.
func Verify(reg registry.Registry, path string) error {
	if path == "" {
		path = DefaultPath
	}
	want, err := Generate(reg)
	if err != nil {
		return err
	}
	got, err := os.ReadFile(path)
	if err != nil {
		return errors.WrapIO("read", path, err)
	}
	if !bytes.Equal(got, []byte(want)) {
		return fmt.Errorf("%w: %s does not match the registry, regenerate it", errors.ErrDocsDrift, path)
	}
	return nil
}

// Write generates the guide and writes it to path.
func Write(reg registry.Registry, path string) error {
	if path == "" {
		path = DefaultPath
	}
	content, err := Generate(reg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}
