package report

import (
	"fmt"
	"io"
	"strings"

	"assess/internal/survey"
)

// Markdown writes the totals as a Markdown document.
type Markdown struct{}

func (Markdown) Render(w io.Writer, sb *survey.ScoreBoard) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Negotiation Style Self-Assessment\n\n")
	fmt.Fprintf(&b, "## Total Scores\n\n")
	fmt.Fprintf(&b, "| Category | Statements | Total | Max |\n")
	fmt.Fprintf(&b, "|----------|------------|------:|----:|\n")
	for _, row := range sb.Totals() {
		fmt.Fprintf(&b, "| %s | %s | %d | %d |\n",
			row.Category, joinOrdinals(row.Statements, ", "), row.Total, row.Max)
	}

	if shared := sb.Mapping().SharedOrdinals(); len(shared) > 0 {
		fmt.Fprintf(&b, "\nStatements counted in more than one category: %s\n", joinOrdinals(shared, ", "))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
