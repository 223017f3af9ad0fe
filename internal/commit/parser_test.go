package commit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReleaseMarkers(t *testing.T) {
	markers := []string{
		"-> v1.2.3",
		"-> 1.2.3",
		"-> v0.1.0",
		"  -> v10.0.1  ",
	}

	for _, subject := range markers {
		t.Run(subject, func(t *testing.T) {
			_, ok := Parse(Raw{Hash: "deadbeef", Subject: subject})
			assert.False(t, ok, "release marker must be dropped before classification")
		})
	}
}

func TestParseNonMarkers(t *testing.T) {
	// Close misses keep flowing through the pipeline.
	subjects := []string{
		"-> invalid",
		"->",
		"not a release",
		"-> v1.2",
		"-> v1.2.3 extra",
	}

	for _, subject := range subjects {
		t.Run(subject, func(t *testing.T) {
			_, ok := Parse(Raw{Subject: subject})
			assert.True(t, ok)
		})
	}
}

func TestParse(t *testing.T) {
	tests := map[string]struct {
		subject string
		want    Parsed
	}{
		"simple type": {
			subject: "fix: resolve bug",
			want:    Parsed{Type: "fix", Subject: "resolve bug"},
		},
		"scoped type": {
			subject: "feat(api): add new endpoint",
			want:    Parsed{Type: "feat", Scope: "api", Subject: "add new endpoint"},
		},
		"no colon": {
			subject: "just a regular commit message",
			want:    Parsed{Subject: "just a regular commit message"},
		},
		"multiple colons": {
			subject: "fix: handle error: invalid input",
			want:    Parsed{Type: "fix", Subject: "handle error: invalid input"},
		},
		"case preserved in token": {
			subject: "FEAT: uppercase",
			want:    Parsed{Type: "FEAT", Subject: "uppercase"},
		},
		"whitespace around token": {
			subject: "  fix : trailing space prefix",
			want:    Parsed{Type: "fix", Subject: "trailing space prefix"},
		},
		"unclosed scope parenthesis": {
			subject: "fix(parser: handle edge case",
			want:    Parsed{Type: "fix", Subject: "handle edge case"},
		},
		"issue reference": {
			subject: "fix: leak (#38)",
			want:    Parsed{Type: "fix", Subject: "leak (#38)", IssueRefs: []int{38}},
		},
		"multiple issue references in order": {
			subject: "fix: close #12 and #7 and #100",
			want:    Parsed{Type: "fix", Subject: "close #12 and #7 and #100", IssueRefs: []int{12, 7, 100}},
		},
		"duplicate issue references preserved": {
			subject: "fix: revisit #5, see #5",
			want:    Parsed{Type: "fix", Subject: "revisit #5, see #5", IssueRefs: []int{5, 5}},
		},
		"empty subject": {
			subject: "",
			want:    Parsed{},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := Parse(Raw{Subject: tc.subject})
			assert.True(t, ok)
			assert.Equal(t, tc.want.Type, got.Type)
			assert.Equal(t, tc.want.Scope, got.Scope)
			assert.Equal(t, tc.want.Subject, got.Subject)
			assert.Equal(t, tc.want.IssueRefs, got.IssueRefs)
		})
	}
}

func TestParseCarriesHashes(t *testing.T) {
	got, ok := Parse(Raw{Hash: "0123456789abcdef", ShortHash: "0123456", Subject: "feat: auth"})
	assert.True(t, ok)
	assert.Equal(t, "0123456789abcdef", got.Hash)
	assert.Equal(t, "0123456", got.ShortHash)
}
