// Command weather summarizes a CSV file of daily minimum and maximum
// temperatures.
//
// Usage:
//
//	weather [-overall] [-daily] [-serve] [path/to/readings.csv]
//
// With no flags both the overall and the daily summary are printed. -serve
// keeps running and exposes the summaries over HTTP on HTTP_ADDR instead; it
// cannot be combined with -overall or -daily. When KAFKA_BROKERS is set every
// generated report is also published to KAFKA_TOPIC. The path defaults to
// WEATHER_CSV_PATH.
//
// Exit status is 0 on success, 1 on a config or pipeline error, and 2 on a
// usage error such as a missing path.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/weather-report/internal/adapter/console"
	"github.com/couchcryptid/weather-report/internal/adapter/csvfile"
	"github.com/couchcryptid/weather-report/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/weather-report/internal/adapter/kafka"
	"github.com/couchcryptid/weather-report/internal/config"
	"github.com/couchcryptid/weather-report/internal/observability"
	"github.com/couchcryptid/weather-report/internal/pipeline"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, observability.NewMetrics()))
}

func run(args []string, stdout, stderr io.Writer, metrics *observability.Metrics) int {
	fs := flag.NewFlagSet("weather", flag.ContinueOnError)
	fs.SetOutput(stderr)
	overall := fs.Bool("overall", false, "print only the overall summary")
	daily := fs.Bool("daily", false, "print only the daily summary")
	serve := fs.Bool("serve", false, "serve summaries over HTTP instead of printing once")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *serve && (*overall || *daily) {
		fmt.Fprintln(stderr, "weather: -overall and -daily cannot be used with -serve")
		fs.Usage()
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return 1
	}

	path := cfg.CSVPath
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}
	if path == "" {
		fmt.Fprintln(stderr, "weather: no CSV file given (pass a path or set WEATHER_CSV_PATH)")
		fs.Usage()
		return 2
	}

	logger := observability.NewLogger(cfg)

	var loaders []pipeline.Loader
	if !*serve {
		loaders = append(loaders, console.NewWriter(stdout, sections(*overall, *daily)))
	}

	var writer *kafkaadapter.Writer
	if cfg.KafkaEnabled() {
		writer = kafkaadapter.NewWriter(cfg, logger, metrics)
		loaders = append(loaders, writer)
		logger.Info("kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	p := pipeline.New(path, csvfile.NewLoader(path, logger), pipeline.NewTransformer(logger), logger, metrics, loaders...)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *serve {
		err = runServer(ctx, cfg, p, logger)
	} else {
		_, err = p.Run(ctx)
	}

	if writer != nil {
		if cerr := writer.Close(); cerr != nil {
			logger.Error("kafka writer close error", "error", cerr)
		}
	}
	if err != nil {
		return 1
	}
	return 0
}

func sections(overall, daily bool) console.Section {
	var s console.Section
	if overall {
		s |= console.SectionOverall
	}
	if daily {
		s |= console.SectionDaily
	}
	return s
}

// runServer serves reports until ctx is cancelled or the listener fails. An
// initial run warms readiness; its failure is logged but does not stop the
// server.
func runServer(ctx context.Context, cfg *config.Config, p *pipeline.Pipeline, logger *slog.Logger) error {
	if _, err := p.Run(ctx); err != nil {
		logger.Warn("initial report failed", "error", err)
	}

	srv := httpadapter.NewServer(cfg.HTTPAddr, p, p, logger)

	startErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			startErr <- err
		}
	}()

	select {
	case err := <-startErr:
		logger.Error("http server error", "error", err)
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
		return err
	}
	logger.Info("shutdown complete")
	return nil
}
