package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandFlags(t *testing.T) {
	for _, name := range []string{
		"repo", "new-version", "from-tag", "output", "config", "dry-run", "non-interactive",
	} {
		assert.NotNil(t, rootCmd.Flags().Lookup(name), "flag --%s must be registered", name)
	}
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("debug"))
}

func TestRootCommandSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		names[sub.Name()] = true
	}

	require.True(t, names["version"])
	require.True(t, names["config"])
}
