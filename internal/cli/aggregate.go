package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/digicarbon/digicarbon/internal/config"
	"github.com/digicarbon/digicarbon/internal/logging"
	"github.com/digicarbon/digicarbon/internal/research"
	"github.com/digicarbon/digicarbon/internal/survey"
	"github.com/digicarbon/digicarbon/internal/tui"
)

// aggregateParams holds the flags of the aggregate command.
type aggregateParams struct {
	responsesPath  string
	output         string
	recordsPath    string
	metricsFile    string
	batchSize      int
	concurrency    int
	requireConsent bool
	details        bool
}

// aggregateOutput is the JSON shape of an aggregate run.
type aggregateOutput struct {
	Summary   research.Summary    `json:"summary"`
	Estimates []research.Estimate `json:"estimates,omitempty"`
}

// NewAggregateCmd creates the aggregate command.
func NewAggregateCmd() *cobra.Command {
	var params aggregateParams

	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "Estimate and summarise many survey responses",
		Long: `Estimate every response in a batch file and summarise the results.

The file holds JSON lines, a JSON array, or multi-document YAML ("-" reads
stdin). Responses without research consent are skipped unless
--require-consent=false.`,
		Example: aggregateExample,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return executeAggregate(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.responsesPath, "responses", "", "Path to a batch of responses, or - for stdin")
	cmd.Flags().StringVar(&params.output, "output", "", "Output format: table or json (default from configuration)")
	cmd.Flags().StringVar(&params.recordsPath, "records", "", "Append a record per included response to this file")
	cmd.Flags().StringVar(&params.metricsFile, "metrics-file", "",
		"Write Prometheus metrics to this file for a textfile collector")
	cmd.Flags().IntVar(&params.batchSize, "batch-size", 0, "Responses per batch (default from configuration)")
	cmd.Flags().IntVar(&params.concurrency, "concurrency", 0, "Batches processed at once (default from configuration)")
	cmd.Flags().BoolVar(&params.requireConsent, "require-consent", true, "Skip responses without research consent")
	cmd.Flags().BoolVar(&params.details, "details", false, "Include every estimate in JSON output")
	_ = cmd.MarkFlagRequired("responses")

	return cmd
}

const aggregateExample = `  # Summarise a JSON-lines export
  digicarbon aggregate --responses responses.jsonl

  # JSON summary with per-response estimates
  digicarbon aggregate --responses responses.jsonl --output json --details

  # Store records and export metrics
  digicarbon aggregate --responses responses.yaml --records records.jsonl --metrics-file digicarbon.prom`

// executeAggregate estimates a batch of responses and renders the summary.
func executeAggregate(cmd *cobra.Command, params aggregateParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	format, err := resolveOutputFormat(params.output)
	if err != nil {
		return err
	}

	rc, err := openInput(params.responsesPath, cmd.InOrStdin())
	if err != nil {
		return err
	}
	responses, err := survey.DecodeStream(rc)
	_ = rc.Close()
	if err != nil {
		return fmt.Errorf("decoding %s: %w", params.responsesPath, err)
	}

	cfg := config.GetGlobalConfig().Research
	batchSize := cfg.BatchSize
	if params.batchSize > 0 {
		batchSize = params.batchSize
	}
	concurrency := cfg.Concurrency
	if params.concurrency > 0 {
		concurrency = params.concurrency
	}

	processor, err := research.NewProcessor(batchSize, concurrency)
	if err != nil {
		return err
	}
	processor.
		WithPricePerTonne(config.GetPricePerTonne()).
		WithConsentRequired(params.requireConsent).
		WithProgressCallback(func(s research.ProgressSnapshot) {
			log.Debug().
				Int("processed", s.ProcessedItems).
				Int("total", s.TotalItems).
				Float64("percent", s.PercentComplete).
				Msg("aggregate progress")
		})

	var metrics *research.Metrics
	if params.metricsFile != "" {
		metrics = research.NewMetrics()
		processor.WithMetrics(metrics)
	}

	estimates, err := processor.Process(ctx, responses)
	if err != nil {
		return err
	}
	summary := research.Summarize(estimates)
	log.Info().
		Int("responses", summary.Responses).
		Int("included", summary.Included).
		Int("skipped", summary.Skipped).
		Msg("aggregate complete")

	if params.recordsPath != "" {
		if err = survey.AppendRecords(params.recordsPath, research.Records(estimates)); err != nil {
			return err
		}
		cmd.PrintErrf("%d records appended to %s\n", summary.Included, params.recordsPath)
	}
	if metrics != nil {
		if err = metrics.Write(params.metricsFile); err != nil {
			return err
		}
	}

	if format == config.OutputJSON {
		out := aggregateOutput{Summary: summary}
		if params.details {
			out.Estimates = estimates
		}
		return writeJSON(cmd.OutOrStdout(), out)
	}

	cmd.Println(tui.RenderSummary(summary, config.GetOutputPrecision()))
	return nil
}
