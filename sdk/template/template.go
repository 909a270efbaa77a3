// SPDX-FileCopyrightText: © 2025 DSLab - Fondazione Bruno Kessler
//
// SPDX-License-Identifier: Apache-2.0

// Package template implements the placeholder engine used for dataset
// filenames and metadata text. A placeholder is written {name} where name
// matches [a-zA-Z_][a-zA-Z0-9_]*.
//
// Parse inverse-matches a concrete name against a pattern with non-greedy
// captures. Patterns with two adjacent placeholders and no literal between
// them ({a}{b}) are ambiguous: the left placeholder takes the minimum
// match. Such patterns are accepted but should be avoided.
package template

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMismatch is returned by Parse when the name cannot be produced by the
// pattern.
var ErrMismatch = errors.New("name does not match template")

var placeholderRe = regexp.MustCompile(`\{([a-zA-Z_][a-zA-Z0-9_]*)\}`)

// Placeholders returns the placeholder names of s in first-appearance
// order, deduplicated.
func Placeholders(s string) []string {
	var names []string
	seen := map[string]bool{}
	for _, m := range placeholderRe.FindAllStringSubmatch(s, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

// Parse extracts placeholder values from name by inverse-matching it
// against pattern. Literal segments must match exactly; each placeholder
// captures the shortest non-empty run. Duplicate placeholder names in the
// pattern are rejected.
func Parse(pattern, name string) (map[string]string, error) {
	names := Placeholders(pattern)
	if n := len(placeholderRe.FindAllString(pattern, -1)); n != len(names) {
		return nil, fmt.Errorf("template %q repeats a placeholder", pattern)
	}

	re, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}

	m := re.FindStringSubmatch(name)
	if m == nil {
		return nil, fmt.Errorf("%q does not match template %q: %w", name, pattern, ErrMismatch)
	}

	values := make(map[string]string, len(names))
	for i, n := range names {
		values[n] = m[i+1]
	}
	return values, nil
}

// Match reports whether name could have been produced by pattern.
func Match(pattern, name string) bool {
	_, err := Parse(pattern, name)
	return err == nil
}

// Expand substitutes {name} in pattern with each value in turn, returning
// one result per value, in the values' order. Other placeholders are left
// untouched.
func Expand(pattern, name string, values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ReplaceAll(pattern, "{"+name+"}", v))
	}
	return out
}

// Replace performs a best-effort substitution of the given replacements;
// placeholders without a replacement stay verbatim.
func Replace(s string, replacements map[string]string) string {
	return placeholderRe.ReplaceAllStringFunc(s, func(ph string) string {
		name := ph[1 : len(ph)-1]
		if v, ok := replacements[name]; ok {
			return v
		}
		return ph
	})
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	var sb strings.Builder
	sb.WriteString("^")
	last := 0
	for _, loc := range placeholderRe.FindAllStringIndex(pattern, -1) {
		sb.WriteString(regexp.QuoteMeta(pattern[last:loc[0]]))
		sb.WriteString("(.+?)")
		last = loc[1]
	}
	sb.WriteString(regexp.QuoteMeta(pattern[last:]))
	sb.WriteString("$")

	re, err := regexp.Compile(sb.String())
	if err != nil {
		return nil, fmt.Errorf("invalid template %q: %w", pattern, err)
	}
	return re, nil
}
