// Package classify assigns commits to release-impact categories and computes
// the next semantic version from the aggregate. A commit whose type token is
// missing or unrecognized is resolved through a Policy, so new resolution
// strategies (interactive, defaulting, rule-driven) plug in without touching
// the classifier itself.
package classify

import (
	"fmt"
	"strings"
)

// Category is the release-impact bucket of a commit. It drives both version
// arithmetic and changelog grouping.
type Category int

const (
	// Unknown means the type token did not match the prefix table; a
	// Policy resolves it before rendering.
	Unknown Category = iota
	// Ignored commits never appear in the changelog (docs, style, chore).
	Ignored
	// Patch commits bump the patch component (fixes, perf, refactor).
	Patch
	// Minor commits bump the minor component (new features).
	Minor
	// Major commits bump the major component (breaking changes).
	Major
)

// String returns the lowercase category name.
func (c Category) String() string {
	switch c {
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Patch:
		return "patch"
	case Ignored:
		return "ignore"
	case Unknown:
		return "unknown"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// ParseCategory parses a category name as written in config rule tables or
// prompt answers. Accepts "ignore" and "ignored" interchangeably.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "major":
		return Major, nil
	case "minor":
		return Minor, nil
	case "patch":
		return Patch, nil
	case "ignore", "ignored":
		return Ignored, nil
	default:
		return Unknown, fmt.Errorf("unknown category %q (expected: major, minor, patch, ignore)", s)
	}
}

// prefixTable maps conventional-commit type tokens to categories. Tokens are
// matched exactly and case-insensitively against the portion of the subject
// before the first colon.
var prefixTable = map[string]Category{
	"breaking": Major,
	"major":    Major,

	"feat":  Minor,
	"minor": Minor,

	"fix":      Patch,
	"fixes":    Patch,
	"perf":     Patch,
	"refactor": Patch,
	"patch":    Patch,
	"tweak":    Patch,
	"tweaks":   Patch,

	"docs":  Ignored,
	"doc":   Ignored,
	"style": Ignored,
	"chore": Ignored,
	"test":  Ignored,
}

// Lookup maps a type token to its category. Empty or unrecognized tokens
// map to Unknown.
func Lookup(typeToken string) Category {
	token := strings.ToLower(strings.TrimSpace(typeToken))
	if token == "" {
		return Unknown
	}
	if cat, ok := prefixTable[token]; ok {
		return cat
	}
	return Unknown
}
