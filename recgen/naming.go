// Package recgen provides utilities for transforming table names into
// Go-idiomatic names.
package recgen

import (
	"strings"
	"unicode"
)

// splitName splits a string on underscores and hyphens.
func splitName(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})
}

// ToPascalCase transforms a snake_case string into PascalCase.
func ToPascalCase(name string) string {
	parts := splitName(name)
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		b.WriteRune(unicode.ToUpper(runes[0]))
		for _, r := range runes[1:] {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// CommonAcronyms defines a set of common abbreviations that should be fully
// uppercased when generating Go names.
var CommonAcronyms = map[string]string{
	"id":   "ID",
	"url":  "URL",
	"uuid": "UUID",
	"api":  "API",
	"http": "HTTP",
	"sql":  "SQL",
}

// ToPascalCaseAcronyms transforms a string into PascalCase while preserving
// the casing of common Go acronyms.
func ToPascalCaseAcronyms(name string) string {
	parts := splitName(name)
	var b strings.Builder
	for _, part := range parts {
		if part == "" {
			continue
		}
		if acronym, ok := CommonAcronyms[strings.ToLower(part)]; ok {
			b.WriteString(acronym)
			continue
		}
		runes := []rune(part)
		b.WriteRune(unicode.ToUpper(runes[0]))
		for _, r := range runes[1:] {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
