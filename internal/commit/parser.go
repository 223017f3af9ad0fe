package commit

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// releaseMarkerPattern matches release pseudo-commits like "-> v1.2.3"
	// or "-> 1.2.3" against the full trimmed subject.
	releaseMarkerPattern = regexp.MustCompile(`^->\s+v?\d+\.\d+\.\d+$`)

	issueRefPattern = regexp.MustCompile(`#(\d+)`)
)

// IsReleaseMarker reports whether a subject line marks a release tag action.
// Such commits never reach classification.
func IsReleaseMarker(subject string) bool {
	return releaseMarkerPattern.MatchString(strings.TrimSpace(subject))
}

// Parse turns a raw commit into its structured form. The second return is
// false when the commit is a release marker and must be dropped entirely.
// Parse never fails: malformed subjects degrade to a commit without a type
// token rather than an error.
func Parse(raw Raw) (Parsed, bool) {
	subject := strings.TrimSpace(raw.Subject)
	if IsReleaseMarker(subject) {
		return Parsed{}, false
	}

	parsed := Parsed{
		Hash:      raw.Hash,
		ShortHash: raw.ShortHash,
	}

	colon := strings.Index(subject, ":")
	if colon < 0 {
		parsed.Subject = subject
		parsed.IssueRefs = issueRefs(subject)
		return parsed, true
	}

	head := subject[:colon]
	parsed.Subject = strings.TrimSpace(subject[colon+1:])
	parsed.Type, parsed.Scope = splitTypeScope(head)
	parsed.IssueRefs = issueRefs(parsed.Subject)
	return parsed, true
}

// splitTypeScope splits the prefix before the colon into a type token and an
// optional parenthesized scope. An unclosed parenthesis yields no scope.
func splitTypeScope(head string) (typeToken, scope string) {
	open := strings.Index(head, "(")
	if open < 0 {
		return strings.TrimSpace(head), ""
	}

	typeToken = strings.TrimSpace(head[:open])
	if close := strings.Index(head[open:], ")"); close >= 0 {
		scope = head[open+1 : open+close]
	}
	return typeToken, scope
}

// issueRefs extracts every "#N" reference in left-to-right order,
// preserving duplicates.
func issueRefs(text string) []int {
	matches := issueRefPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}

	refs := make([]int, 0, len(matches))
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			// Digit runs too long for an int are not issue numbers.
			continue
		}
		refs = append(refs, n)
	}
	if len(refs) == 0 {
		return nil
	}
	return refs
}
