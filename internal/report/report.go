// Package report renders a finalized survey.ScoreBoard. Every renderer
// lists categories in survey display order.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"assess/internal/survey"
	"assess/internal/ui"
)

// Renderer writes a ScoreBoard. It satisfies survey.Reporter.
type Renderer = survey.Reporter

// ForFormat returns the renderer for a configured format name.
func ForFormat(format string, styles ui.Styles) (Renderer, error) {
	switch format {
	case "", "text":
		return Text{}, nil
	case "table":
		return Table{Styles: styles}, nil
	case "json":
		return JSON{}, nil
	case "markdown":
		return Markdown{}, nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// Text is the plain "Total Scores:" listing.
type Text struct{}

func (Text) Render(w io.Writer, sb *survey.ScoreBoard) error {
	return survey.WriteTotals(w, sb)
}

// Table renders totals as a styled table with each category's maximum.
type Table struct {
	Styles ui.Styles
}

func (t Table) Render(w io.Writer, sb *survey.ScoreBoard) error {
	table := ui.NewSimpleTable("Total Scores", []string{"Category", "Statements", "Total", "Max"})
	for _, row := range sb.Totals() {
		table.AddRow(string(row.Category), joinOrdinals(row.Statements, ", "),
			strconv.Itoa(row.Total), strconv.Itoa(row.Max))
	}
	_, err := io.WriteString(w, "\n"+table.View(t.Styles))
	return err
}

func joinOrdinals(ordinals []int, sep string) string {
	parts := make([]string, len(ordinals))
	for i, o := range ordinals {
		parts[i] = strconv.Itoa(o)
	}
	return strings.Join(parts, sep)
}
