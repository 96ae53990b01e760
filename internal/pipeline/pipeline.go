package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/weather-report/internal/domain"
	"github.com/couchcryptid/weather-report/internal/observability"
)

// Stage labels for the run error metric.
const (
	stageExtract   = "extract"
	stageTransform = "transform"
	stageLoad      = "load"
)

// Extractor reads the full dataset from its source.
type Extractor interface {
	Extract(ctx context.Context) (domain.Dataset, error)
}

// Transformer turns a dataset into a report.
type Transformer interface {
	Transform(ctx context.Context, source string, ds domain.Dataset) (domain.Report, error)
}

// Loader delivers a finished report to a destination.
type Loader interface {
	Load(ctx context.Context, report domain.Report) error
}

// Pipeline runs one extract-transform-load pass per call to Run.
type Pipeline struct {
	source      string
	extractor   Extractor
	transformer Transformer
	loaders     []Loader
	logger      *slog.Logger
	metrics     *observability.Metrics
	ready       atomic.Bool
}

// New creates a Pipeline. source names the dataset in logs and reports.
// Loaders run in order; the report is still returned when there are none.
func New(source string, e Extractor, t Transformer, logger *slog.Logger, metrics *observability.Metrics, loaders ...Loader) *Pipeline {
	return &Pipeline{
		source:      source,
		extractor:   e,
		transformer: t,
		loaders:     loaders,
		logger:      logger,
		metrics:     metrics,
	}
}

// CheckReadiness returns nil once a run has completed successfully.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no report has been generated yet")
	}
	return nil
}

// Run extracts the dataset, builds the report, and hands it to every loader.
// Any failure aborts the run; there are no retries and no partial results.
func (p *Pipeline) Run(ctx context.Context) (domain.Report, error) {
	start := time.Now()
	p.metrics.RunsStarted.Inc()

	ds, err := p.extractor.Extract(ctx)
	if err != nil {
		return domain.Report{}, p.fail(stageExtract, err)
	}
	p.metrics.RowsLoaded.Add(float64(len(ds)))

	report, err := p.transformer.Transform(ctx, p.source, ds)
	if err != nil {
		return domain.Report{}, p.fail(stageTransform, err)
	}

	for _, l := range p.loaders {
		if err := l.Load(ctx, report); err != nil {
			return domain.Report{}, p.fail(stageLoad, err)
		}
	}

	p.metrics.RunDuration.Observe(time.Since(start).Seconds())
	p.metrics.LastReportDays.Set(float64(report.Days))
	p.ready.Store(true)

	p.logger.Info("report generated",
		"source", p.source,
		"days", report.Days,
		"loaders", len(p.loaders),
		"duration", time.Since(start),
	)
	return report, nil
}

func (p *Pipeline) fail(stage string, err error) error {
	p.metrics.RunErrors.WithLabelValues(stage).Inc()
	p.logger.Error("pipeline run failed", "stage", stage, "source", p.source, "error", err)
	return fmt.Errorf("%s: %w", stage, err)
}
