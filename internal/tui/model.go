// Package tui is a Bubble Tea front-end for the survey. It shares rating
// validation and scoring with the line-mode runner.
package tui

import (
	"fmt"
	"strings"

	"assess/internal/survey"
	"assess/internal/ui"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Model walks the respondent through every statement in order.
type Model struct {
	statements []survey.Statement
	board      *survey.ScoreBoard
	idx        int

	input    textinput.Model
	progress progress.Model
	rejected string

	done      bool
	abandoned bool

	width  int
	styles ui.Styles
	logger *zap.Logger
}

// New creates a model positioned on statement 1.
func New(styles ui.Styles, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	ti := textinput.New()
	ti.Placeholder = "0-5"
	ti.Prompt = "> "
	ti.CharLimit = 16
	ti.Width = 16
	ti.PromptStyle = styles.Prompt
	ti.TextStyle = styles.UserInput
	ti.Focus()

	board := survey.NewScoreBoard(survey.DefaultMapping())
	logger = logger.With(zap.String("run_id", board.RunID()))

	pb := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	pb.Width = 40

	return Model{
		statements: survey.Statements(),
		board:      board,
		input:      ti,
		progress:   pb,
		width:      80,
		styles:     styles,
		logger:     logger,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		if w := msg.Width - 10; w > 10 && w < 60 {
			m.progress.Width = w
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.abandoned = true
			m.logger.Debug("survey abandoned", zap.Int("statement", m.current().Ordinal))
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.done {
		return m, tea.Quit
	}
	st := m.current()

	rating, err := survey.ParseRating(m.input.Value())
	m.input.Reset()
	if err != nil {
		m.rejected = survey.RejectionMessage(err)
		m.logger.Debug("rating rejected", zap.Int("statement", st.Ordinal), zap.Error(err))
		return m, nil
	}
	if err := m.board.Add(st.Ordinal, rating); err != nil {
		m.rejected = err.Error()
		return m, nil
	}

	m.logger.Debug("rating accepted", zap.Int("statement", st.Ordinal), zap.Int("rating", rating))
	m.rejected = ""
	m.idx++
	if m.idx == len(m.statements) {
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) current() survey.Statement {
	if m.idx >= len(m.statements) {
		return m.statements[len(m.statements)-1]
	}
	return m.statements[m.idx]
}

// Done reports whether every statement has been rated.
func (m Model) Done() bool { return m.done }

// Abandoned reports whether the respondent quit early.
func (m Model) Abandoned() bool { return m.abandoned }

// Result returns the finalized board, or ErrIncomplete when the sitting
// ended early.
func (m Model) Result() (*survey.ScoreBoard, error) {
	if !m.done {
		return nil, fmt.Errorf("%w at statement %d", survey.ErrIncomplete, m.current().Ordinal)
	}
	return m.board, nil
}

// View renders the model.
func (m Model) View() string {
	s := m.styles
	var b strings.Builder

	b.WriteString(s.Title.Render("Negotiation Style Self-Assessment"))
	b.WriteString("\n")
	b.WriteString(s.Subtitle.Render(strings.TrimSpace(survey.Banner)))
	b.WriteString("\n\n")

	if m.done {
		b.WriteString(s.Success.Render("All statements rated."))
		b.WriteString("\n")
		return b.String()
	}

	total := len(m.statements)
	b.WriteString(m.progress.ViewAs(float64(m.idx) / float64(total)))
	b.WriteString(s.Muted.Render(fmt.Sprintf(" %d/%d", m.idx+1, total)))
	b.WriteString("\n\n")

	b.WriteString(s.Body.Render(m.current().Text))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.rejected != "" {
		b.WriteString(s.Error.Render(m.rejected))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(s.Muted.Render("enter: submit • esc: quit"))
	b.WriteString("\n")
	return b.String()
}
