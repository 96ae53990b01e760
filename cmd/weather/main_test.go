package main

import (
	"bytes"
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/couchcryptid/weather-report/internal/adapter/console"
	"github.com/couchcryptid/weather-report/internal/adapter/csvfile"
	"github.com/couchcryptid/weather-report/internal/config"
	"github.com/couchcryptid/weather-report/internal/observability"
	"github.com/couchcryptid/weather-report/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoDays = "date,min,max\n2021-07-05,39,47\n2021-07-06,41,52\n"

const twoDayOverview = "2 Day Overview\n" +
	"  The lowest temperature will be 3.9°C, and will occur on Monday 05 July 2021.\n" +
	"  The highest temperature will be 11.1°C, and will occur on Tuesday 06 July 2021.\n" +
	"  The average low this week is 4.4°C.\n" +
	"  The average high this week is 9.7°C.\n"

// commandEnv keeps run from picking up a local .env, a default dataset or
// Kafka settings.
func commandEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DOTENV_PATH", filepath.Join(t.TempDir(), "absent.env"))
	t.Setenv("WEATHER_CSV_PATH", "")
	t.Setenv("KAFKA_BROKERS", "")
	t.Setenv("LOG_LEVEL", "error")
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "weather.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestSections(t *testing.T) {
	assert.Equal(t, console.Section(0), sections(false, false))
	assert.Equal(t, console.SectionOverall, sections(true, false))
	assert.Equal(t, console.SectionDaily, sections(false, true))
	assert.Equal(t, console.SectionAll, sections(true, true))
}

func TestRun_ExitCodes(t *testing.T) {
	commandEnv(t)
	good := writeCSV(t, twoDays)
	bad := writeCSV(t, "date,min,max\n2021-07-05,cold,47\n")

	tests := []struct {
		name   string
		args   []string
		code   int
		stdout string
		stderr string
	}{
		{"overall summary", []string{"-overall", good}, 0, twoDayOverview, ""},
		{"no path", nil, 2, "", "no CSV file given"},
		{"unknown flag", []string{"-weekly", good}, 2, "", "flag provided but not defined"},
		{"serve with section flag", []string{"-serve", "-daily", good}, 2, "", "cannot be used with -serve"},
		{"missing file", []string{filepath.Join(t.TempDir(), "missing.csv")}, 1, "", ""},
		{"malformed row", []string{bad}, 1, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(tt.args, &stdout, &stderr, observability.NewMetricsForTesting())

			assert.Equal(t, tt.code, code)
			assert.Equal(t, tt.stdout, stdout.String())
			assert.Contains(t, stderr.String(), tt.stderr)
		})
	}
}

func TestRun_PathFromEnv(t *testing.T) {
	commandEnv(t)
	t.Setenv("WEATHER_CSV_PATH", writeCSV(t, twoDays))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-overall"}, &stdout, &stderr, observability.NewMetricsForTesting())

	assert.Equal(t, 0, code)
	assert.Equal(t, twoDayOverview, stdout.String())
}

func TestRunServer_ListenFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	logger := observability.NewLogger(&config.Config{LogLevel: "error", LogFormat: "json"})
	path := writeCSV(t, twoDays)
	p := pipeline.New(path, csvfile.NewLoader(path, logger), pipeline.NewTransformer(logger),
		logger, observability.NewMetricsForTesting())
	cfg := &config.Config{HTTPAddr: ln.Addr().String(), ShutdownTimeout: time.Second}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err = runServer(ctx, cfg, p, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "address already in use")
	assert.NoError(t, ctx.Err(), "runServer should return before the context ends")
}
