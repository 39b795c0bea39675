package cli

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/digicarbon/digicarbon/internal/config"
	"github.com/digicarbon/digicarbon/internal/footprint"
	"github.com/digicarbon/digicarbon/internal/logging"
	"github.com/digicarbon/digicarbon/internal/survey"
	"github.com/digicarbon/digicarbon/internal/tui"
)

// ErrNotTerminal is returned when the live display has no terminal.
var ErrNotTerminal = errors.New("live display requires an interactive terminal")

// liveParams holds the flags of the live command.
type liveParams struct {
	answersPath string
	recordsPath string
}

// NewLiveCmd creates the live command.
func NewLiveCmd() *cobra.Command {
	var params liveParams

	cmd := &cobra.Command{
		Use:   "live",
		Short: "Edit answers and watch the footprint update",
		Long: `Open an interactive display that re-estimates the footprint on every edit.

Start from an answers file or from an empty response. Press s to save the
edited response as a research record (requires researchConsent: true).`,
		Example: `  # Start from scratch
  digicarbon live

  # Start from existing answers
  digicarbon live --answers answers.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeLive(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.answersPath, "answers", "", "Optional YAML or JSON answers file to start from")
	cmd.Flags().StringVar(&params.recordsPath, "records", "", "Records file used when saving (default from configuration)")

	return cmd
}

// executeLive runs the live TUI and saves the response when requested.
func executeLive(cmd *cobra.Command, params liveParams) error {
	if !isTerminal(os.Stdout) {
		return ErrNotTerminal
	}

	var answers footprint.Answers
	if params.answersPath != "" {
		loaded, err := survey.LoadFile(params.answersPath)
		if err != nil {
			return err
		}
		survey.Sanitize(&loaded)
		answers = loaded
	}

	model := tui.NewLiveModel(answers, tui.LiveOptions{
		PricePerTonne: config.GetPricePerTonne(),
		Currency:      config.GetCurrency(),
		Precision:     config.GetOutputPrecision(),
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("running live display: %w", err)
	}

	live, ok := final.(*tui.LiveModel)
	if !ok || !live.Saved() {
		return nil
	}

	edited := live.Answers()
	if _, err = saveRecord(cmd, edited, params.recordsPath); err != nil {
		if errors.Is(err, survey.ErrNoConsent) {
			logging.FromContext(cmd.Context()).Warn().Msg("response not saved: research consent not given")
			cmd.PrintErrln("Response not saved: research consent not given")
			return nil
		}
		return err
	}
	return nil
}
