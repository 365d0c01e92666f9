package survey

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Banner is printed once before the first statement.
const Banner = "Score yourself on each statement on a scale of 0 – 5. \n 0 = never  1 = rarely 2 = sometimes 3 = occasionally 4 = frequently 5 = always\n"

// PromptSuffix follows each statement's text.
const PromptSuffix = " (Enter a score from 0 to 5): "

// ErrIncomplete is returned when input ends or the run is cancelled before
// every statement has a rating. No totals are reported in that case.
var ErrIncomplete = errors.New("survey abandoned before all statements were rated")

// Reporter writes a finalized ScoreBoard.
type Reporter interface {
	Render(w io.Writer, sb *ScoreBoard) error
}

// ReporterFunc adapts a function to Reporter.
type ReporterFunc func(w io.Writer, sb *ScoreBoard) error

func (f ReporterFunc) Render(w io.Writer, sb *ScoreBoard) error { return f(w, sb) }

// WriteTotals writes the plain "Total Scores:" report.
func WriteTotals(w io.Writer, sb *ScoreBoard) error {
	var b strings.Builder
	b.WriteString("\nTotal Scores:\n")
	for _, row := range sb.Totals() {
		fmt.Fprintf(&b, "%s: %d\n", row.Category, row.Total)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Runner administers the survey over a line-oriented reader and writer.
type Runner struct {
	in       *bufio.Reader
	out      io.Writer
	mapping  Mapping
	reporter Reporter
	logger   *zap.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithReporter replaces the plain totals report.
func WithReporter(r Reporter) Option {
	return func(rn *Runner) { rn.reporter = r }
}

// WithLogger sets the diagnostic logger. Diagnostics never go to out.
func WithLogger(l *zap.Logger) Option {
	return func(rn *Runner) { rn.logger = l }
}

// WithMapping overrides the scoring key. Used by tests.
func WithMapping(m Mapping) Option {
	return func(rn *Runner) { rn.mapping = m }
}

// NewRunner builds a Runner reading answers from in and writing the
// transcript to out.
func NewRunner(in io.Reader, out io.Writer, opts ...Option) *Runner {
	r := &Runner{
		in:       bufio.NewReader(in),
		out:      out,
		mapping:  DefaultMapping(),
		reporter: ReporterFunc(WriteTotals),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run prints the banner, collects one valid rating per statement in
// ascending order, and reports the totals. Every call starts from a fresh
// ScoreBoard.
func (r *Runner) Run(ctx context.Context) (*ScoreBoard, error) {
	sb := NewScoreBoard(r.mapping)
	log := r.logger.With(zap.String("run_id", sb.RunID()))
	log.Debug("survey started", zap.Int("statements", StatementCount))

	if _, err := fmt.Fprint(r.out, Banner+"\n"); err != nil {
		return nil, fmt.Errorf("write banner: %w", err)
	}

	for _, st := range Statements() {
		rating, err := r.ask(ctx, st, log)
		if err != nil {
			log.Debug("survey abandoned", zap.Int("statement", st.Ordinal), zap.Error(err))
			return nil, err
		}
		if err := sb.Add(st.Ordinal, rating); err != nil {
			return nil, fmt.Errorf("record statement %d: %w", st.Ordinal, err)
		}
	}

	if err := r.reporter.Render(r.out, sb); err != nil {
		return nil, fmt.Errorf("render totals: %w", err)
	}
	log.Debug("survey completed")
	return sb, nil
}

// ask prompts for st until a valid rating arrives.
func (r *Runner) ask(ctx context.Context, st Statement, log *zap.Logger) (int, error) {
	var (
		rating   int
		valid    bool
		attempts int
	)
	for !valid {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("%w at statement %d: %v", ErrIncomplete, st.Ordinal, err)
		}
		if _, err := io.WriteString(r.out, st.Text+PromptSuffix); err != nil {
			return 0, fmt.Errorf("write prompt %d: %w", st.Ordinal, err)
		}

		line, readErr := r.in.ReadString('\n')
		if readErr != nil && (readErr != io.EOF || line == "") {
			if readErr == io.EOF {
				return 0, fmt.Errorf("%w at statement %d: end of input", ErrIncomplete, st.Ordinal)
			}
			return 0, fmt.Errorf("%w at statement %d: %v", ErrIncomplete, st.Ordinal, readErr)
		}
		attempts++

		var err error
		rating, err = ParseRating(line)
		if err != nil {
			log.Debug("rating rejected", zap.Int("statement", st.Ordinal), zap.Error(err))
			if _, werr := fmt.Fprintln(r.out, RejectionMessage(err)); werr != nil {
				return 0, fmt.Errorf("write rejection: %w", werr)
			}
			continue
		}
		valid = true
	}

	log.Debug("rating accepted",
		zap.Int("statement", st.Ordinal),
		zap.Int("rating", rating),
		zap.Int("attempts", attempts))
	return rating, nil
}
