// Package console prints reports as plain text.
package console

import (
	"context"
	"fmt"
	"io"

	"github.com/couchcryptid/weather-report/internal/domain"
)

// Section selects which summaries are printed.
type Section int

const (
	SectionOverall Section = 1 << iota
	SectionDaily

	SectionAll = SectionOverall | SectionDaily
)

// Writer prints report text to an io.Writer.
// It implements pipeline.Loader.
type Writer struct {
	out      io.Writer
	sections Section
}

// NewWriter creates a Writer. A zero sections value prints everything.
func NewWriter(out io.Writer, sections Section) *Writer {
	if sections == 0 {
		sections = SectionAll
	}
	return &Writer{out: out, sections: sections}
}

// Load writes the overall summary, then the daily summary, separated by a
// blank line when both are selected.
func (w *Writer) Load(_ context.Context, report domain.Report) error {
	var text string
	switch w.sections {
	case SectionOverall:
		text = report.Overall
	case SectionDaily:
		text = report.Daily
	default:
		text = report.Overall + "\n" + report.Daily
	}
	if _, err := io.WriteString(w.out, text); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
