package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/weather-report/internal/domain"
)

// ReportTransformer implements Transformer using domain.BuildReport.
type ReportTransformer struct {
	logger *slog.Logger
}

// NewTransformer creates a ReportTransformer.
func NewTransformer(logger *slog.Logger) *ReportTransformer {
	return &ReportTransformer{logger: logger}
}

func (t *ReportTransformer) Transform(_ context.Context, source string, ds domain.Dataset) (domain.Report, error) {
	report, err := domain.BuildReport(source, ds)
	if err != nil {
		return domain.Report{}, err
	}

	t.logger.Debug("extremes resolved",
		"source", source,
		"lowest_date", report.Lowest.Date,
		"highest_date", report.Highest.Date,
	)
	return report, nil
}
