package tui

import (
	"context"
	"fmt"
	"io"

	"assess/internal/survey"
	"assess/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Run drives a full sitting through Bubble Tea on in/out and returns the
// finalized board.
func Run(ctx context.Context, in io.Reader, out io.Writer, styles ui.Styles, logger *zap.Logger) (*survey.ScoreBoard, error) {
	p := tea.NewProgram(New(styles, logger),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", survey.ErrIncomplete, err)
	}
	m, ok := final.(Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	return m.Result()
}
