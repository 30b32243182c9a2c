// Package batch scores many documents concurrently and keeps their order.
package batch

import (
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/dotcommander/thinkcheck/internal/discovery"
	"github.com/dotcommander/thinkcheck/internal/logging"
	"github.com/dotcommander/thinkcheck/internal/scoring"
)

// StdinName is how a document read from standard input is labeled.
const StdinName = "<stdin>"

// Result pairs a file with its report.
type Result struct {
	File   string                `json:"file"`
	Report scoring.QualityReport `json:"report"`
}

// Runner fans documents out to a shared scorer.
type Runner struct {
	scorer *scoring.Scorer
	limit  int
	stdin  io.Reader
	log    zerolog.Logger
}

// NewRunner creates a Runner that scores at most limit documents at a time.
func NewRunner(scorer *scoring.Scorer, limit int, stdin io.Reader, log zerolog.Logger) *Runner {
	if limit < 1 {
		limit = 1
	}
	return &Runner{
		scorer: scorer,
		limit:  limit,
		stdin:  stdin,
		log:    logging.Component(log, "batch"),
	}
}

// Run scores every file. Unreadable files yield failure reports, so the only
// error returned is context cancellation.
func (r *Runner) Run(ctx context.Context, files []string) ([]Result, error) {
	results := make([]Result, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.limit)

	for i, file := range files {
		if file == discovery.Stdin {
			// Stdin can only be consumed once, so it is scored inline.
			results[i] = Result{File: StdinName, Report: r.scoreStdin()}
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			report := r.scorer.ScoreFile(file)
			r.log.Debug().
				Str("file", file).
				Int("score", report.Score).
				Str("grade", report.Grade).
				Msg("scored")
			results[i] = Result{File: file, Report: report}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch interrupted: %w", err)
	}
	return results, nil
}

func (r *Runner) scoreStdin() scoring.QualityReport {
	if r.stdin == nil {
		return scoring.Failed(fmt.Errorf("standard input is not available"))
	}
	data, err := io.ReadAll(r.stdin)
	if err != nil {
		r.log.Warn().Err(err).Msg("reading stdin")
		return scoring.Failed(err)
	}
	if !utf8.Valid(data) {
		return scoring.Failed(fmt.Errorf("%s: %w", StdinName, scoring.ErrInvalidEncoding))
	}
	return r.scorer.Score(scoring.NormalizeNewlines(string(data)))
}

// Reports extracts the reports in order.
func Reports(results []Result) []scoring.QualityReport {
	out := make([]scoring.QualityReport, len(results))
	for i, res := range results {
		out[i] = res.Report
	}
	return out
}

// Summarize computes the batch statistics for the results.
func Summarize(results []Result) scoring.Summary {
	return scoring.Summarize(Reports(results))
}

// BelowThreshold returns the results whose score is under min.
func BelowThreshold(results []Result, min int) []Result {
	var out []Result
	for _, res := range results {
		if res.Report.Score < min {
			out = append(out, res)
		}
	}
	return out
}
