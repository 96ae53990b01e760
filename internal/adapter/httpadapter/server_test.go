package httpadapter_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/couchcryptid/weather-report/internal/adapter/httpadapter"
	"github.com/couchcryptid/weather-report/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockReadiness struct {
	err error
}

func (m *mockReadiness) CheckReadiness(_ context.Context) error { return m.err }

type mockRunner struct {
	report domain.Report
	err    error
	calls  int
}

func (m *mockRunner) Run(_ context.Context) (domain.Report, error) {
	m.calls++
	return m.report, m.err
}

var testReport = domain.Report{
	Source:  "weather.csv",
	Days:    2,
	Overall: "2 Day Overview\n",
	Daily:   "---- Monday 05 July 2021 ----\n\n",
}

func newTestServer(readyErr error, runner *mockRunner) *httpadapter.Server {
	return httpadapter.NewServer(":0", &mockReadiness{err: readyErr}, runner, slog.Default())
}

func serve(srv *httpadapter.Server, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHealthzReturns200(t *testing.T) {
	rec := serve(newTestServer(nil, &mockRunner{}), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzReturns200WhenReady(t *testing.T) {
	rec := serve(newTestServer(nil, &mockRunner{}), "/readyz")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzReturns503WhenNotReady(t *testing.T) {
	rec := serve(newTestServer(fmt.Errorf("not ready yet"), &mockRunner{}), "/readyz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsEndpoint(t *testing.T) {
	rec := serve(newTestServer(nil, &mockRunner{}), "/metrics")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestSummaryEndpoints(t *testing.T) {
	tests := []struct {
		path     string
		expected string
	}{
		{"/summary", testReport.Overall},
		{"/summary/daily", testReport.Daily},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			runner := &mockRunner{report: testReport}
			rec := serve(newTestServer(nil, runner), tt.path)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.expected, rec.Body.String())
			assert.Equal(t, 1, runner.calls)
		})
	}
}

func TestReportEndpoint(t *testing.T) {
	rec := serve(newTestServer(nil, &mockRunner{report: testReport}), "/report")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body domain.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "weather.csv", body.Source)
	assert.Equal(t, 2, body.Days)
	assert.Equal(t, testReport.Overall, body.Overall)
}

func TestReportErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"missing file", fmt.Errorf("extract: %w: open dataset: %w", domain.ErrIO, fs.ErrNotExist), http.StatusNotFound},
		{"unreadable file", fmt.Errorf("extract: %w: permission denied", domain.ErrIO), http.StatusInternalServerError},
		{"bad row", fmt.Errorf("extract: line 3: %w", domain.ErrParse), http.StatusUnprocessableEntity},
		{"bad date", fmt.Errorf("transform: %w", domain.ErrFormat), http.StatusUnprocessableEntity},
		{"no rows", fmt.Errorf("transform: %w", domain.ErrEmptyInput), http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(newTestServer(nil, &mockRunner{err: tt.err}), "/summary")

			assert.Equal(t, tt.status, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.err.Error(), body["error"])
		})
	}
}

func TestReportEndpoint_MethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	srv := newTestServer(nil, &mockRunner{report: testReport})
	srv.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/report", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
