// Package runner drives one audit: load the markdown source, extract links,
// check them in order, write the report and results, and decide the exit code.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lukemcguire/nistcheck/checker"
	"github.com/lukemcguire/nistcheck/config"
	"github.com/lukemcguire/nistcheck/report"
	"github.com/lukemcguire/nistcheck/result"
	"github.com/lukemcguire/nistcheck/sink"
	"github.com/lukemcguire/nistcheck/tui"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// updatesFoundKey is the automation output key.
const updatesFoundKey = "updates_found"

// ErrMissingInput is returned when the markdown source does not exist.
var ErrMissingInput = errors.New("input file not found")

// Options holds the collaborators injected into a Runner.
type Options struct {
	Checker     *checker.Checker // nil builds one from the config
	Sink        sink.KeyValue    // nil when no automation output is available
	Logger      zerolog.Logger
	Stdout      io.Writer // Human-readable progress; defaults to os.Stdout
	Now         func() time.Time
	Interactive bool // Show the Bubble Tea view instead of progress lines
}

// Outcome is the result of a completed run.
type Outcome struct {
	Results      []result.CheckResult
	UpdatesFound bool
	ExitCode     int
}

// Runner executes a single audit pass.
type Runner struct {
	cfg         config.Config
	extractor   *checker.Extractor
	checker     *checker.Checker
	sink        sink.KeyValue
	logger      zerolog.Logger
	stdout      io.Writer
	now         func() time.Time
	interactive bool
}

// New creates a Runner for cfg.
func New(cfg config.Config, opts Options) (*Runner, error) {
	cfg = cfg.Clone()

	extractor, err := checker.NewExtractor(cfg.Domain, cfg.Subdomains)
	if err != nil {
		return nil, fmt.Errorf("create extractor: %w", err)
	}

	chk := opts.Checker
	if chk == nil {
		chk = checker.New(cfg, nil, opts.Logger)
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Runner{
		cfg:         cfg,
		extractor:   extractor,
		checker:     chk,
		sink:        opts.Sink,
		logger:      opts.Logger.With().Str("component", "Runner").Logger(),
		stdout:      stdout,
		now:         now,
		interactive: opts.Interactive,
	}, nil
}

// Run performs the audit. Per-URL failures are recorded in the results; an
// error is returned only when the run cannot complete.
func (r *Runner) Run(ctx context.Context) (*Outcome, error) {
	r.printf("%s\n", r.cfg.ReportTitle)
	r.printf("Check window: %s\n\n", report.FormatWindow(r.cfg.CheckWindow))

	content, err := r.load()
	if err != nil {
		return nil, err
	}

	urls := r.extractor.Extract(content)
	r.printf("Found %d unique URLs to check\n\n", len(urls))
	r.logger.Info().Int("urls", len(urls)).Str("input", r.cfg.InputFile).Msg("extracted links")

	results, err := r.check(ctx, urls)
	if err != nil {
		return nil, err
	}
	r.printf("\n")

	if err := r.persist(results); err != nil {
		return nil, err
	}

	outcome := &Outcome{
		Results:      results,
		UpdatesFound: result.UpdatesFound(results),
		ExitCode:     ExitOK,
	}
	r.signal(outcome.UpdatesFound)

	if !r.interactive {
		r.printf("\n")
		result.PrintSummary(r.stdout, results)
	}

	if result.HasBroken(results) {
		outcome.ExitCode = ExitFailure
	}
	return outcome, nil
}

func (r *Runner) load() (string, error) {
	data, err := os.ReadFile(r.cfg.InputFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.printf("ERROR: %s not found\n", r.cfg.InputFile)
			return "", fmt.Errorf("%w: %s", ErrMissingInput, r.cfg.InputFile)
		}
		return "", fmt.Errorf("read input %s: %w", r.cfg.InputFile, err)
	}
	return string(data), nil
}

// check runs the sequential check loop beside a progress consumer.
func (r *Runner) check(ctx context.Context, urls []string) ([]result.CheckResult, error) {
	if r.interactive {
		results, err := tui.Run(ctx, r.checker, urls, r.stdout)
		if err != nil {
			return nil, fmt.Errorf("check urls: %w", err)
		}
		return results, nil
	}

	progressCh := make(chan checker.CheckEvent)
	var results []result.CheckResult

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		defer close(progressCh)
		var err error
		results, err = r.checker.CheckAll(groupCtx, urls, progressCh)
		return err
	})
	group.Go(func() error {
		for evt := range progressCh {
			result.PrintProgress(r.stdout, evt.Index, evt.Total, evt.Result)
		}
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("check urls: %w", err)
	}
	return results, nil
}

// persist writes every output file once, after all checks have finished.
func (r *Runner) persist(results []result.CheckResult) error {
	md := report.Generate(results, report.Options{
		Title:      r.cfg.ReportTitle,
		CheckedAt:  r.now(),
		Window:     r.cfg.CheckWindow,
		SourceName: filepath.Base(r.cfg.InputFile),
	})
	if err := os.WriteFile(r.cfg.ReportFile, []byte(md), 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", r.cfg.ReportFile, err)
	}
	r.printf("Report saved to %s\n", r.cfg.ReportFile)

	if err := writeWith(r.cfg.ResultsFile, results, result.WriteJSON); err != nil {
		return err
	}
	r.printf("Results saved to %s\n", r.cfg.ResultsFile)

	if r.cfg.CSVFile != "" {
		if err := writeWith(r.cfg.CSVFile, results, result.WriteCSV); err != nil {
			return err
		}
		r.printf("CSV saved to %s\n", r.cfg.CSVFile)
	}
	return nil
}

// signal reports updates_found to the automation sink, if any. A sink
// failure is logged and never changes the exit code.
func (r *Runner) signal(updatesFound bool) {
	if r.sink == nil {
		return
	}
	value := strconv.FormatBool(updatesFound)
	if err := r.sink.Set(updatesFoundKey, value); err != nil {
		r.logger.Error().Err(err).Msg("failed to write automation output")
		return
	}
	r.printf("\nGitHub Output: %s=%s\n", updatesFoundKey, value)
}

func (r *Runner) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.stdout, format, a...)
}

func writeWith(path string, results []result.CheckResult, write func(io.Writer, []result.CheckResult) error) error {
	var buf bytes.Buffer
	if err := write(&buf, results); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
