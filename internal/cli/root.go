package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/digicarbon/digicarbon/internal/config"
	"github.com/digicarbon/digicarbon/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the digicarbon CLI.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "digicarbon",
		Short:   "Digital carbon footprint estimator",
		Long:    "digicarbon: estimate the daily carbon footprint of digital habits from survey answers",
		Version: ver,
		Example: rootCmdExample,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := loadConfig(cmd); err != nil {
				return err
			}
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return logResult.Close()
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "YAML file merged over the configuration file")
	cmd.AddCommand(
		NewEstimateCmd(), NewAggregateCmd(), NewLiveCmd(), NewTablesCmd(), newConfigCmd(),
	)

	return cmd
}

const rootCmdExample = `  # Estimate a footprint from an answers file
  digicarbon estimate --answers answers.yaml

  # Estimate and store the record for research
  digicarbon estimate --answers answers.yaml --record

  # Summarise a batch of responses
  digicarbon aggregate --responses responses.jsonl --output json

  # Explore answers interactively
  digicarbon live --answers answers.yaml

  # Show the lookup tables
  digicarbon tables

  # Initialize configuration
  digicarbon config init`

// annotationSkipValidation marks commands that must run with an invalid
// configuration file.
const annotationSkipValidation = "digicarbon/skip-config-validation"

// loadConfig builds the global configuration, merging the --config overlay
// when given, and rejects invalid settings unless cmd opts out.
func loadConfig(cmd *cobra.Command) error {
	overlay, _ := cmd.Flags().GetString("config")
	cfg, err := config.NewWithOverlay(overlay)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if cmd.Annotations[annotationSkipValidation] == "" {
		if err = cfg.Validate(); err != nil {
			return err
		}
	}
	config.SetGlobalConfig(cfg)
	return nil
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
