package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"assess/internal/survey"
	"assess/internal/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardWith rates every statement r.
func boardWith(t *testing.T, r int) *survey.ScoreBoard {
	t.Helper()
	sb := survey.NewScoreBoard(survey.DefaultMapping())
	for o := 1; o <= survey.StatementCount; o++ {
		require.NoError(t, sb.Add(o, r))
	}
	return sb
}

func render(t *testing.T, r Renderer, sb *survey.ScoreBoard) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, sb))
	return buf.String()
}

func assertDisplayOrder(t *testing.T, out string) {
	t.Helper()
	last := -1
	for _, c := range survey.Categories() {
		idx := strings.Index(out, string(c))
		require.GreaterOrEqual(t, idx, 0, "missing %s", c)
		assert.Greater(t, idx, last, "%s out of order", c)
		last = idx
	}
}

func TestForFormat(t *testing.T) {
	styles := ui.NewStyles(ui.PlainTheme())
	for _, f := range []string{"", "text", "table", "json", "markdown"} {
		r, err := ForFormat(f, styles)
		require.NoError(t, err, f)
		assert.NotNil(t, r, f)
	}
	_, err := ForFormat("xml", styles)
	assert.Error(t, err)
}

func TestText(t *testing.T) {
	out := render(t, Text{}, boardWith(t, 5))
	assert.Equal(t, "\nTotal Scores:\n"+
		"Avoidance: 25\n"+
		"Aggression: 25\n"+
		"Accommodation: 25\n"+
		"Compromise: 25\n"+
		"Collaboration: 25\n", out)
}

func TestTable(t *testing.T) {
	out := render(t, Table{Styles: ui.NewStyles(ui.PlainTheme())}, boardWith(t, 3))
	assert.Contains(t, out, "Total Scores")
	assert.Contains(t, out, "6, 14, 16, 17, 25")
	assert.Contains(t, out, "15")
	assertDisplayOrder(t, out)
}

func TestJSON(t *testing.T) {
	sb := boardWith(t, 2)
	out := render(t, JSON{}, sb)

	var doc struct {
		RunID  string `json:"run_id"`
		Totals []struct {
			Category   string `json:"category"`
			Total      int    `json:"total"`
			Max        int    `json:"max"`
			Statements []int  `json:"statements"`
		} `json:"totals"`
		SharedStatements []int `json:"shared_statements"`
		Unscored         []int `json:"unscored_statements"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Totals, 5)
	assert.Equal(t, sb.RunID(), doc.RunID)
	assert.NotEmpty(t, doc.RunID)

	for i, c := range survey.Categories() {
		assert.Equal(t, string(c), doc.Totals[i].Category)
		assert.Equal(t, 10, doc.Totals[i].Total)
		assert.Equal(t, 25, doc.Totals[i].Max)
	}
	assert.Equal(t, []int{2, 4, 14, 18, 21}, doc.Totals[4].Statements)
	assert.Equal(t, []int{14}, doc.SharedStatements)
	assert.Equal(t, []int{13}, doc.Unscored)
}

func TestMarkdown(t *testing.T) {
	out := render(t, Markdown{}, boardWith(t, 0))
	assert.True(t, strings.HasPrefix(out, "# Negotiation Style Self-Assessment"))
	assert.Contains(t, out, "| Avoidance | 6, 14, 16, 17, 25 | 0 | 25 |")
	assert.Contains(t, out, "more than one category: 14")
	assertDisplayOrder(t, out)
}
