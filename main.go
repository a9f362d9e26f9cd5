// Package main provides the nistcheck CLI entrypoint.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/lukemcguire/nistcheck/config"
	"github.com/lukemcguire/nistcheck/logging"
	"github.com/lukemcguire/nistcheck/runner"
	"github.com/lukemcguire/nistcheck/sink"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to a YAML config file")
	input := flag.String("input", config.DefaultInputFile, "markdown file to scan for links")
	reportFile := flag.String("report", config.DefaultReportFile, "markdown report output path")
	resultsFile := flag.String("results", config.DefaultResultsFile, "JSON results output path")
	csvFile := flag.String("csv", "", "optional CSV results output path")
	timeout := flag.Duration("timeout", config.DefaultRequestTimeout, "per-request timeout")
	window := flag.Duration("window", config.DefaultCheckWindow, "Last-Modified age that counts as recently updated")
	userAgent := flag.String("user-agent", config.DefaultUserAgent, "user agent string")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error)")
	interactive := flag.Bool("tui", false, "show an interactive progress view")

	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return runner.ExitFailure
	}

	// Flags given explicitly override the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.InputFile = *input
		case "report":
			cfg.ReportFile = *reportFile
		case "results":
			cfg.ResultsFile = *resultsFile
		case "csv":
			cfg.CSVFile = *csvFile
		case "timeout":
			cfg.RequestTimeout = *timeout
		case "window":
			cfg.CheckWindow = *window
		case "user-agent":
			cfg.UserAgent = *userAgent
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return runner.ExitFailure
	}

	logger := logging.New(cfg.Log, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := runner.Options{
		Logger:      logger,
		Stdout:      os.Stdout,
		Now:         func() time.Time { return time.Now().UTC() },
		Interactive: *interactive,
	}
	opts.Sink = sink.FromEnv(os.Getenv, cfg.OutputEnv)

	r, err := runner.New(cfg, opts)
	if err != nil {
		logger.Error().Err(err).Msg("setup failed")
		return runner.ExitFailure
	}

	outcome, err := r.Run(ctx)
	if err != nil {
		if !errors.Is(err, runner.ErrMissingInput) {
			logger.Error().Err(err).Msg("run failed")
		}
		return runner.ExitFailure
	}
	return outcome.ExitCode
}
