package config

// Defaults returns the default configuration values.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"output":          "CHANGELOG.md",
		"title":           "# Changelog",
		"non_interactive": false,
	}
}

// SampleConfig returns a commented project config template for
// "changelogger config init".
func SampleConfig() string {
	return `# changelogger configuration (.changelogger.yml)
# Values here are overridden by CHANGELOGGER_* environment variables.

output: CHANGELOG.md        # Changelog file to update
title: "# Changelog"        # Document title written on first creation
non_interactive: false      # Unknown commit prefixes default to patch instead of prompting

# Extra prefix rules consulted for commit types the built-in table does not
# recognize, before any prompting. Categories: major, minor, patch, ignore.
#rules:
#  deps: patch
#  revert: patch
#  wip: ignore
`
}
