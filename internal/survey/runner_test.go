package survey

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func answers(ratings ...string) string {
	return strings.Join(ratings, "\n") + "\n"
}

func uniform(r string) string {
	rs := make([]string, StatementCount)
	for i := range rs {
		rs[i] = r
	}
	return answers(rs...)
}

func runWith(t *testing.T, input string) (*ScoreBoard, string, error) {
	t.Helper()
	var out bytes.Buffer
	sb, err := NewRunner(strings.NewReader(input), &out).Run(context.Background())
	return sb, out.String(), err
}

func TestRunner_AllFives(t *testing.T) {
	sb, out, err := runWith(t, uniform("5"))
	require.NoError(t, err)
	for _, c := range Categories() {
		assert.Equal(t, 25, sb.Total(c), "category %s", c)
	}
	assert.True(t, strings.HasSuffix(out, "\nTotal Scores:\n"+
		"Avoidance: 25\n"+
		"Aggression: 25\n"+
		"Accommodation: 25\n"+
		"Compromise: 25\n"+
		"Collaboration: 25\n"), out)
}

func TestRunner_AllZeros(t *testing.T) {
	sb, _, err := runWith(t, uniform("0"))
	require.NoError(t, err)
	for _, row := range sb.Totals() {
		assert.Zero(t, row.Total, "category %s", row.Category)
	}
}

func TestRunner_Transcript(t *testing.T) {
	_, out, err := runWith(t, uniform("1"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, Banner+"\n"))
	for _, st := range Statements() {
		assert.Contains(t, out, st.Text+PromptSuffix)
	}
	assert.Equal(t, StatementCount, strings.Count(out, PromptSuffix))
	assert.NotContains(t, out, ParseErrorMessage)
	assert.NotContains(t, out, RangeErrorMessage)
}

func TestRunner_RetriesUntilValid(t *testing.T) {
	rs := []string{"abc", "7", "3"}
	for i := 1; i < StatementCount; i++ {
		rs = append(rs, "0")
	}
	sb, out, err := runWith(t, answers(rs...))
	require.NoError(t, err)

	first := Statements()[0].Text + PromptSuffix
	assert.Equal(t, 3, strings.Count(out, first), "statement 1 asked three times")
	assert.Equal(t, 1, strings.Count(out, ParseErrorMessage))
	assert.Equal(t, 1, strings.Count(out, RangeErrorMessage))

	parseAt := strings.Index(out, ParseErrorMessage)
	rangeAt := strings.Index(out, RangeErrorMessage)
	assert.Less(t, parseAt, rangeAt)

	assert.Equal(t, 3, sb.Total(Accommodation))
	assert.Equal(t, StatementCount, sb.Rated())
}

func TestRunner_Boundaries(t *testing.T) {
	rs := []string{"-1", "6", "0", "5"}
	for i := 2; i < StatementCount; i++ {
		rs = append(rs, "0")
	}
	sb, out, err := runWith(t, answers(rs...))
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, RangeErrorMessage))
	assert.Zero(t, strings.Count(out, ParseErrorMessage))
	assert.Equal(t, 0, sb.Total(Accommodation))
	assert.Equal(t, 5, sb.Total(Collaboration))
}

func TestRunner_Statement14CountsTwice(t *testing.T) {
	rs := make([]string, StatementCount)
	for i := range rs {
		rs[i] = "0"
	}
	rs[13] = "4"
	sb, _, err := runWith(t, answers(rs...))
	require.NoError(t, err)
	assert.Equal(t, 4, sb.Total(Avoidance))
	assert.Equal(t, 4, sb.Total(Collaboration))
}

func TestRunner_Deterministic(t *testing.T) {
	input := answers("1", "2", "3", "4", "5", "0", "1", "2", "3", "4", "5", "0", "1",
		"2", "3", "4", "5", "0", "1", "2", "3", "4", "5", "0", "1")
	sb1, out1, err := runWith(t, input)
	require.NoError(t, err)
	sb2, out2, err := runWith(t, input)
	require.NoError(t, err)
	assert.Equal(t, sb1.Totals(), sb2.Totals())
	assert.Equal(t, out1, out2)
}

func TestRunner_FinalLineWithoutNewline(t *testing.T) {
	input := strings.TrimSuffix(uniform("2"), "\n")
	sb, _, err := runWith(t, input)
	require.NoError(t, err)
	assert.Equal(t, 10, sb.Total(Compromise))
}

func TestRunner_EndOfInputAbandons(t *testing.T) {
	_, out, err := runWith(t, answers("1", "2", "x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncomplete))
	assert.Contains(t, err.Error(), "statement 3")
	assert.NotContains(t, out, "Total Scores:")
}

func TestRunner_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := NewRunner(strings.NewReader(uniform("1")), &out).Run(ctx)
	require.ErrorIs(t, err, ErrIncomplete)
	assert.NotContains(t, out.String(), PromptSuffix)
}

func TestRunner_CustomReporter(t *testing.T) {
	var calls int
	rep := ReporterFunc(func(w io.Writer, sb *ScoreBoard) error {
		calls++
		_, err := io.WriteString(w, "done\n")
		return err
	})

	var out bytes.Buffer
	_, err := NewRunner(strings.NewReader(uniform("3")), &out,
		WithReporter(rep), WithLogger(zap.NewNop())).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.True(t, strings.HasSuffix(out.String(), "done\n"))
	assert.NotContains(t, out.String(), "Total Scores:")
}

func TestRunner_FreshBoardPerRun(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader(uniform("5") + uniform("1"))
	r := NewRunner(in, &out)

	first, err := r.Run(context.Background())
	require.NoError(t, err)
	second, err := r.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 25, first.Total(Aggression))
	assert.Equal(t, 5, second.Total(Aggression))
	assert.NotEqual(t, first.RunID(), second.RunID())
}
