package research

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/digicarbon/digicarbon/internal/awareness"
	"github.com/digicarbon/digicarbon/internal/footprint"
	"github.com/digicarbon/digicarbon/internal/logging"
	"github.com/digicarbon/digicarbon/internal/survey"
)

// Batch size limits.
const (
	DefaultBatchSize = 100
	MinBatchSize     = 1
	MaxBatchSize     = 1000
)

// Sentinel errors.
var (
	ErrInvalidBatchSize = errors.New("batch size must be between 1 and 1000")
	ErrNoResponses      = errors.New("no responses to process")
)

// Estimate is one processed response.
type Estimate struct {
	// Index is the response's position in the input.
	Index int `json:"index"`

	Record       survey.Record         `json:"record"`
	Quiz         awareness.QuizReport  `json:"quiz"`
	SelfEstimate *awareness.Assessment `json:"self_estimate,omitempty"`
	Warnings     []survey.Warning      `json:"warnings,omitempty"`
	Projection   footprint.Projection  `json:"projection"`

	// Skipped is set for responses without research consent when the
	// processor requires it. Skipped estimates carry no record.
	Skipped bool `json:"skipped,omitempty"`
}

// ProgressCallback receives a snapshot after every finished batch. It may
// be called from several goroutines at once.
type ProgressCallback func(ProgressSnapshot)

// Processor estimates responses in concurrent fixed-size batches.
type Processor struct {
	batchSize      int
	concurrency    int
	pricePerTonne  float64
	requireConsent bool
	onProgress     ProgressCallback
	metrics        *Metrics
	now            func() time.Time
}

// NewProcessor returns a processor. concurrency below 1 means one worker
// per CPU.
func NewProcessor(batchSize, concurrency int) (*Processor, error) {
	if batchSize < MinBatchSize || batchSize > MaxBatchSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBatchSize, batchSize)
	}
	if concurrency < 1 {
		concurrency = runtime.NumCPU()
	}
	return &Processor{
		batchSize:   batchSize,
		concurrency: concurrency,
		now:         time.Now,
	}, nil
}

// WithProgressCallback sets the progress callback.
func (p *Processor) WithProgressCallback(cb ProgressCallback) *Processor {
	p.onProgress = cb
	return p
}

// WithPricePerTonne sets the carbon price used for each projection.
func (p *Processor) WithPricePerTonne(price float64) *Processor {
	p.pricePerTonne = price
	return p
}

// WithConsentRequired marks responses without research consent as skipped.
func (p *Processor) WithConsentRequired(required bool) *Processor {
	p.requireConsent = required
	return p
}

// WithMetrics records every processed response in m.
func (p *Processor) WithMetrics(m *Metrics) *Processor {
	p.metrics = m
	return p
}

// WithClock overrides the record timestamp source.
func (p *Processor) WithClock(now func() time.Time) *Processor {
	p.now = now
	return p
}

// BatchSize returns the configured batch size.
func (p *Processor) BatchSize() int {
	return p.batchSize
}

// Batches returns [start, end) bounds for n items.
func (p *Processor) Batches(n int) [][2]int {
	count := (n + p.batchSize - 1) / p.batchSize
	bounds := make([][2]int, count)
	for i := range count {
		start := i * p.batchSize
		bounds[i] = [2]int{start, min(start+p.batchSize, n)}
	}
	return bounds
}

// Process estimates every response and returns the estimates in input
// order. It stops at the first cancellation of ctx and returns ctx's error.
func (p *Processor) Process(ctx context.Context, responses []footprint.Answers) ([]Estimate, error) {
	if len(responses) == 0 {
		return nil, ErrNoResponses
	}

	log := logging.FromContext(ctx)
	bounds := p.Batches(len(responses))
	progress := NewProgress(len(responses), len(bounds))
	out := make([]Estimate, len(responses))

	log.Debug().
		Int("responses", len(responses)).
		Int("batches", len(bounds)).
		Int("concurrency", p.concurrency).
		Msg("processing responses")

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)

	for batchIndex, b := range bounds {
		if gCtx.Err() != nil {
			break
		}
		g.Go(func() error {
			for i := b[0]; i < b[1]; i++ {
				if err := gCtx.Err(); err != nil {
					return err
				}
				out[i] = p.estimate(i, responses[i])
			}

			progress.AddBatch(b[1] - b[0])
			if p.onProgress != nil {
				p.onProgress(progress.Snapshot())
			}
			log.Trace().Int("batch", batchIndex).Msg("batch done")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("processing responses: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("processing responses: %w", err)
	}
	return out, nil
}

func (p *Processor) estimate(index int, answers footprint.Answers) Estimate {
	if p.requireConsent && survey.CheckConsent(answers) != nil {
		if p.metrics != nil {
			p.metrics.observeSkipped()
		}
		return Estimate{Index: index, Skipped: true}
	}

	sanitized := answers
	sanitized.Devices = append([]footprint.Device(nil), answers.Devices...)
	warnings := survey.Sanitize(&sanitized)

	rec := survey.NewRecord(sanitized, p.now())
	est := Estimate{
		Index:      index,
		Record:     rec,
		Quiz:       awareness.CompareQuiz(rec.Answers.Quiz, rec.Result),
		Warnings:   warnings,
		Projection: footprint.Project(rec.Result, p.pricePerTonne),
	}
	if a, ok := awareness.AssessSelfEstimate(rec.Answers.EstimatedAnnualFootprint, rec.Result); ok {
		est.SelfEstimate = &a
	}

	if p.metrics != nil {
		p.metrics.observe(est)
	}
	return est
}

// Records returns the records of estimates that were not skipped.
func Records(estimates []Estimate) []survey.Record {
	out := make([]survey.Record, 0, len(estimates))
	for _, e := range estimates {
		if !e.Skipped {
			out = append(out, e.Record)
		}
	}
	return out
}
