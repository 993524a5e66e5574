// Package strcase converts identifier casing between the conventions the
// documented SDK bindings use: snake_case registry IDs and Python kwargs,
// camelCase JavaScript members and wire parameter names, PascalCase Go
// methods.
package strcase

import (
	"strings"
	"unicode"
)

// ToCamelCase converts a snake_case or PascalCase identifier to camelCase.
func ToCamelCase(name string) string {
	if name == "" {
		return name
	}

	if strings.ContainsRune(name, '_') {
		pascal := ToPascalCase(name)
		if pascal == "" {
			return pascal
		}
		runes := []rune(pascal)
		runes[0] = unicode.ToLower(runes[0])
		return string(runes)
	}

	firstChar := name[0]
	if firstChar >= 'A' && firstChar <= 'Z' {
		return string(firstChar+32) + name[1:]
	}

	return name
}

// ToPascalCase converts a snake_case or camelCase identifier to PascalCase.
func ToPascalCase(name string) string {
	if name == "" {
		return name
	}

	parts := strings.Split(name, "_")
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}
	return b.String()
}

// ToSnakeCase converts a camelCase or PascalCase identifier to snake_case.
func ToSnakeCase(s string) string {
	if s == "" {
		return s
	}

	runes := []rune(s)
	var result []rune

	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prev := runes[i-1]
				nextLower := false
				if i < len(runes)-1 {
					nextLower = unicode.IsLower(runes[i+1])
				}

				if unicode.IsLower(prev) || nextLower {
					result = append(result, '_')
				}
			}
			r = unicode.ToLower(r)
		}

		result = append(result, r)
	}

	return string(result)
}
