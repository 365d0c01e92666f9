package main

import (
	"io"

	"assess/internal/logging"
	"assess/internal/report"
	"assess/internal/survey"
	"assess/internal/tui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runSurvey administers one sitting on stdin/stdout and prints the totals.
func runSurvey(cmd *cobra.Command, args []string) error {
	st := styles()
	renderer, err := report.ForFormat(cfg.Report.Format, st)
	if err != nil {
		return err
	}

	if cfg.UI.Mode == "tui" {
		sb, err := tui.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), st,
			loggers.Get(logging.CategoryTUI))
		if err != nil {
			return err
		}
		return renderReport(cmd, renderer, sb)
	}

	runner := survey.NewRunner(cmd.InOrStdin(), cmd.OutOrStdout(),
		survey.WithReporter(logged(renderer)),
		survey.WithLogger(loggers.Get(logging.CategorySurvey)))
	_, err = runner.Run(cmd.Context())
	return err
}

func renderReport(cmd *cobra.Command, r report.Renderer, sb *survey.ScoreBoard) error {
	return logged(r).Render(cmd.OutOrStdout(), sb)
}

// logged records which renderer produced the totals.
func logged(r report.Renderer) survey.Reporter {
	log := loggers.Get(logging.CategoryReport)
	return survey.ReporterFunc(func(w io.Writer, sb *survey.ScoreBoard) error {
		err := r.Render(w, sb)
		log.Debug("report rendered", zap.String("format", cfg.Report.Format), zap.Error(err))
		return err
	})
}
