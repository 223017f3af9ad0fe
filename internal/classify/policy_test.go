package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariel-frischer/changelogger/internal/commit"
	apperrors "github.com/ariel-frischer/changelogger/internal/errors"
)

func TestNonInteractivePolicy(t *testing.T) {
	cat, err := NonInteractivePolicy{}.Resolve(commit.Parsed{Subject: "anything"})
	require.NoError(t, err)
	assert.Equal(t, Patch, cat)
}

func TestInteractivePolicyChoices(t *testing.T) {
	tests := map[string]struct {
		input string
		want  Category
	}{
		"numeric patch":       {input: "1\n", want: Patch},
		"numeric minor":       {input: "2\n", want: Minor},
		"numeric major":       {input: "3\n", want: Major},
		"numeric ignore":      {input: "4\n", want: Ignored},
		"empty defaults":      {input: "\n", want: Patch},
		"category name":       {input: "major\n", want: Major},
		"name case fold":      {input: "MINOR\n", want: Minor},
		"retry after invalid": {input: "9\nnope\n2\n", want: Minor},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var out strings.Builder
			policy := NewInteractivePolicy(strings.NewReader(tc.input), &out)

			cat, err := policy.Resolve(commit.Parsed{ShortHash: "abc1234", Type: "odd", Subject: "something"})
			require.NoError(t, err)
			assert.Equal(t, tc.want, cat)
			assert.Contains(t, out.String(), "abc1234")
		})
	}
}

func TestInteractivePolicyAbort(t *testing.T) {
	tests := map[string]string{
		"quit shorthand": "q\n",
		"quit word":      "quit\n",
		"abort word":     "abort\n",
		"end of input":   "",
	}

	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			var out strings.Builder
			policy := NewInteractivePolicy(strings.NewReader(input), &out)

			_, err := policy.Resolve(commit.Parsed{ShortHash: "abc1234", Subject: "something"})
			require.Error(t, err)
			assert.True(t, apperrors.IsAborted(err))
		})
	}
}

func TestInteractivePolicyShowsConventionalSubject(t *testing.T) {
	var out strings.Builder
	policy := NewInteractivePolicy(strings.NewReader("1\n"), &out)

	_, err := policy.Resolve(commit.Parsed{
		ShortHash: "abc1234",
		Type:      "odd",
		Scope:     "core",
		Subject:   "do something",
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "odd(core): do something")
}

func TestRulesPolicy(t *testing.T) {
	rules := RulesPolicy{
		Rules: map[string]Category{
			"deps": Patch,
			"wip":  Ignored,
		},
		Fallback: &recordingPolicy{answer: Major},
	}

	cat, err := rules.Resolve(commit.Parsed{Type: "deps"})
	require.NoError(t, err)
	assert.Equal(t, Patch, cat)

	cat, err = rules.Resolve(commit.Parsed{Type: "WIP"})
	require.NoError(t, err)
	assert.Equal(t, Ignored, cat, "rule tokens match case-insensitively")

	cat, err = rules.Resolve(commit.Parsed{Type: "mystery"})
	require.NoError(t, err)
	assert.Equal(t, Major, cat, "unmatched tokens fall through to the fallback policy")
}

func TestRulesPolicyNilFallback(t *testing.T) {
	cat, err := RulesPolicy{}.Resolve(commit.Parsed{Type: "mystery"})
	require.NoError(t, err)
	assert.Equal(t, Patch, cat)
}
