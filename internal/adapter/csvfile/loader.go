// Package csvfile reads weather datasets from CSV files on disk.
package csvfile

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/couchcryptid/weather-report/internal/domain"
)

const (
	columnCount = 3
	headerLines = 1
)

// Loader reads a dataset from a fixed path.
// It implements pipeline.Extractor.
type Loader struct {
	path   string
	logger *slog.Logger
}

// NewLoader creates a Loader for the CSV file at path.
func NewLoader(path string, logger *slog.Logger) *Loader {
	return &Loader{path: path, logger: logger}
}

// Extract loads the dataset. The file is read in full on every call.
func (l *Loader) Extract(ctx context.Context) (domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	ds, err := LoadDataset(l.path)
	if err != nil {
		return nil, err
	}
	l.logger.Debug("dataset loaded", "path", l.path, "rows", len(ds))
	return ds, nil
}

// LoadDataset opens path, skips the first line as the header, and parses every remaining
// non-empty line into a WeatherRow. Rows that do not have exactly three
// columns, or whose temperatures are not integers, fail with domain.ErrParse.
func LoadDataset(path string) (domain.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open dataset: %w", domain.ErrIO, err)
	}
	defer f.Close()

	return readDataset(f)
}

func readDataset(r io.Reader) (domain.Dataset, error) {
	// The header is the first physical line, even when that line is blank.
	br := bufio.NewReader(r)
	header, err := br.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: read header: %w", domain.ErrIO, err)
	}
	if header == "" {
		return nil, fmt.Errorf("read header: %w", domain.ErrEmptyInput)
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1 // column count is checked per row below

	var ds domain.Dataset
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return ds, nil
		}
		if err != nil {
			return nil, wrapReadError(err)
		}

		line, _ := cr.FieldPos(0)
		row, err := parseRow(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+headerLines, err)
		}
		ds = append(ds, row)
	}
}

func parseRow(record []string) (domain.WeatherRow, error) {
	if len(record) != columnCount {
		return domain.WeatherRow{}, fmt.Errorf("%w: expected %d columns, got %d", domain.ErrParse, columnCount, len(record))
	}

	minF, err := parseTemperature(record[1])
	if err != nil {
		return domain.WeatherRow{}, err
	}
	maxF, err := parseTemperature(record[2])
	if err != nil {
		return domain.WeatherRow{}, err
	}

	return domain.WeatherRow{Date: record[0], MinF: minF, MaxF: maxF}, nil
}

func parseTemperature(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: temperature %q is not an integer", domain.ErrParse, s)
	}
	return v, nil
}

// wrapReadError classifies csv syntax errors as parse errors and anything
// else as I/O. Line numbers in csv errors are shifted past the header.
func wrapReadError(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		perr.StartLine += headerLines
		perr.Line += headerLines
		return fmt.Errorf("%w: %w", domain.ErrParse, err)
	}
	return fmt.Errorf("%w: read dataset: %w", domain.ErrIO, err)
}
