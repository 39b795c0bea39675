package cli

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/digicarbon/digicarbon/internal/awareness"
	"github.com/digicarbon/digicarbon/internal/config"
	"github.com/digicarbon/digicarbon/internal/footprint"
	"github.com/digicarbon/digicarbon/internal/greenops"
	"github.com/digicarbon/digicarbon/internal/logging"
	"github.com/digicarbon/digicarbon/internal/survey"
	"github.com/digicarbon/digicarbon/internal/tui"
)

// estimateParams holds the flags of the estimate command.
type estimateParams struct {
	answersPath   string
	output        string
	pricePerTonne float64
	currency      string
	strict        bool
	record        bool
	recordsPath   string
}

// estimateOutput is the JSON shape of an estimate.
type estimateOutput struct {
	RecordID      string                     `json:"record_id,omitempty"`
	Daily         footprint.Result           `json:"daily"`
	Annual        footprint.Result           `json:"annual"`
	Projection    footprint.Projection       `json:"projection"`
	Currency      string                     `json:"currency"`
	Equivalencies greenops.EquivalencyOutput `json:"equivalencies"`
	Quiz          awareness.QuizReport       `json:"quiz"`
	SelfEstimate  *awareness.Assessment      `json:"self_estimate,omitempty"`
	Warnings      []survey.Warning           `json:"warnings,omitempty"`
}

// NewEstimateCmd creates the estimate command.
func NewEstimateCmd() *cobra.Command {
	var params estimateParams

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the footprint of one survey response",
		Long: `Estimate the daily digital carbon footprint of one survey response.

Answers are read from a YAML or JSON file ("-" reads stdin). Out-of-range
numbers are clamped and reported unless --strict is set, in which case the
answers are validated against the answers schema first.`,
		Example: estimateExample,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeEstimate(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.answersPath, "answers", "", "Path to a YAML or JSON answers file, or - for stdin")
	cmd.Flags().StringVar(&params.output, "output", "", "Output format: table or json (default from configuration)")
	cmd.Flags().Float64Var(&params.pricePerTonne, "price-per-tonne", 0, "Carbon price per tonne (default from configuration)")
	cmd.Flags().StringVar(&params.currency, "currency", "", "ISO currency code for the price (default from configuration)")
	cmd.Flags().BoolVar(&params.strict, "strict", false, "Reject answers that do not match the answers schema")
	cmd.Flags().BoolVar(&params.record, "record", false, "Append the estimate to the research records file")
	cmd.Flags().StringVar(&params.recordsPath, "records", "", "Records file (default from configuration)")
	_ = cmd.MarkFlagRequired("answers")

	return cmd
}

const estimateExample = `  # Estimate from a YAML answers file
  digicarbon estimate --answers answers.yaml

  # Read JSON answers from stdin and print JSON
  cat answers.json | digicarbon estimate --answers - --output json

  # Price at 25 USD per tonne
  digicarbon estimate --answers answers.yaml --price-per-tonne 25 --currency USD

  # Validate strictly and store the record
  digicarbon estimate --answers answers.yaml --strict --record`

// executeEstimate loads answers, estimates them and renders the report.
func executeEstimate(cmd *cobra.Command, params estimateParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	format, err := resolveOutputFormat(params.output)
	if err != nil {
		return err
	}

	answers, err := readAnswers(cmd, params.answersPath, params.strict)
	if err != nil {
		return err
	}

	price := config.GetPricePerTonne()
	if cmd.Flags().Changed("price-per-tonne") {
		price = params.pricePerTonne
	}
	currency := config.GetCurrency()
	if params.currency != "" {
		currency = params.currency
	}

	warnings := survey.Sanitize(&answers)
	for _, w := range warnings {
		log.Debug().Str("field", w.Field).Float64("original", w.Original).Float64("clamped", w.Clamped).
			Msg("answer adjusted")
	}

	daily := footprint.Estimate(answers)
	out := estimateOutput{
		Daily:         daily,
		Annual:        footprint.Annualize(daily),
		Projection:    footprint.Project(daily, price),
		Currency:      currency,
		Equivalencies: greenops.CalculateAnnual(daily),
		Quiz:          awareness.CompareQuiz(answers.Quiz, daily),
		Warnings:      warnings,
	}
	if a, ok := awareness.AssessSelfEstimate(answers.EstimatedAnnualFootprint, daily); ok {
		out.SelfEstimate = &a
	}

	log.Debug().Float64("daily_kg", daily.Total).Float64("annual_kg", out.Projection.AnnualKg).Msg("estimate complete")

	if params.record {
		id, recErr := saveRecord(cmd, answers, params.recordsPath)
		if recErr != nil {
			return recErr
		}
		out.RecordID = id
	}

	if format == config.OutputJSON {
		return writeJSON(cmd.OutOrStdout(), out)
	}

	view := tui.ReportView{
		Result:        out.Daily,
		Projection:    out.Projection,
		Currency:      currency,
		Precision:     config.GetOutputPrecision(),
		Equivalencies: out.Equivalencies,
		Quiz:          out.Quiz,
		SelfEstimate:  out.SelfEstimate,
		Warnings:      out.Warnings,
	}
	cmd.Println(tui.RenderReport(view, 0))
	return nil
}

// readAnswers decodes one answers document, validating it first when strict.
func readAnswers(cmd *cobra.Command, path string, strict bool) (footprint.Answers, error) {
	rc, err := openInput(path, cmd.InOrStdin())
	if err != nil {
		return footprint.Answers{}, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return footprint.Answers{}, fmt.Errorf("reading answers: %w", err)
	}
	if strict {
		if err = survey.Validate(bytes.NewReader(data)); err != nil {
			return footprint.Answers{}, err
		}
	}
	answers, err := survey.Decode(bytes.NewReader(data))
	if err != nil {
		return footprint.Answers{}, fmt.Errorf("decoding %s: %w", path, err)
	}
	return answers, nil
}

// saveRecord appends a consented response to the records file and returns
// the record ID.
func saveRecord(cmd *cobra.Command, answers footprint.Answers, recordsPath string) (string, error) {
	if err := survey.CheckConsent(answers); err != nil {
		return "", err
	}
	path, err := resolveRecordsPath(recordsPath)
	if err != nil {
		return "", err
	}

	rec := survey.NewRecord(answers, time.Now())
	if err = survey.AppendRecords(path, []survey.Record{rec}); err != nil {
		return "", err
	}

	logging.FromContext(cmd.Context()).Info().Str("record_id", rec.ID).Str("path", path).Msg("record saved")
	cmd.PrintErrf("Record %s saved to %s\n", rec.ID, path)
	return rec.ID, nil
}
