// Package cli implements the changelogger command-line interface and the
// persistence collaborator around the classification/changelog engine.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apperrors "github.com/ariel-frischer/changelogger/internal/errors"
	"github.com/ariel-frischer/changelogger/internal/gitrepo"
)

var (
	repoFlag           string
	newVersionFlag     string
	fromTagFlag        string
	outputFlag         string
	configFlag         string
	dryRunFlag         bool
	nonInteractiveFlag bool
	debugFlag          bool
)

var rootCmd = &cobra.Command{
	Use:   "changelogger",
	Short: "Generate or update CHANGELOG.md from git commits",
	Long: `Generate or update CHANGELOG.md from git commits.

Commits since the last semver tag are classified by their conventional-commit
prefix (feat, fix, breaking, ...). Unrecognized prefixes are resolved
interactively, or default to patch with --non-interactive. The next version
is computed from the classified commits and a markdown section is merged
into the changelog ahead of all previous releases.

Examples:
  changelogger                      # Update CHANGELOG.md interactively
  changelogger --dry-run            # Print the new section instead of writing
  changelogger --non-interactive    # CI mode, unknown prefixes become patch
  changelogger --new-version 2.0.0  # Force the released version
  changelogger --from-tag v1.4.0    # Start from a specific tag`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func init() {
	rootCmd.Flags().StringVar(&repoFlag, "repo", ".", "Path to the repository")
	rootCmd.Flags().StringVar(&newVersionFlag, "new-version", "", "Explicit new version, otherwise computed from commits")
	rootCmd.Flags().StringVar(&fromTagFlag, "from-tag", "", "Tag to start from, otherwise the latest semver tag")
	rootCmd.Flags().StringVar(&outputFlag, "output", "", "Changelog file to update (default from config: CHANGELOG.md)")
	rootCmd.Flags().StringVar(&configFlag, "config", "", "Project config path (default: .changelogger.yml)")
	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Print the new section to stdout instead of writing the file")
	rootCmd.Flags().BoolVar(&nonInteractiveFlag, "non-interactive", false, "Do not prompt, unknown commit prefixes become patch")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		apperrors.PrintError(os.Stderr, err)
		return exitCodeFor(err)
	}
	return ExitSuccess
}

// enableDebugLogging routes repository debug output to stderr.
func enableDebugLogging() {
	gitrepo.SetDebugLogger(func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	})
}
