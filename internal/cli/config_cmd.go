package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/changelogger/internal/config"
	apperrors "github.com/ariel-frischer/changelogger/internal/errors"
	"github.com/ariel-frischer/changelogger/internal/output"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and initialize changelogger configuration",
}

var configShowCmd = &cobra.Command{
	Use:          "show",
	Short:        "Print the effective configuration as YAML",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return apperrors.Wrap(err, apperrors.Configuration)
		}

		out, err := cfg.YAML()
		if err != nil {
			return apperrors.Wrap(err, apperrors.Runtime)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:          "init",
	Short:        "Write a commented .changelogger.yml template",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.ProjectConfigPath()
		if _, err := os.Stat(path); err == nil {
			return apperrors.NewConfigError(
				fmt.Sprintf("%s already exists", path),
				"Remove the existing file first if you want a fresh template")
		}

		if err := os.WriteFile(path, []byte(config.SampleConfig()), 0o644); err != nil {
			return apperrors.WrapWithMessage(err, apperrors.Runtime, "writing config template")
		}

		output.Success(cmd.OutOrStdout(), "wrote %s", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
