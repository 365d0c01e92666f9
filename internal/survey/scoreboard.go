package survey

import (
	"fmt"

	"github.com/google/uuid"
)

// CategoryTotal is one row of a finalized ScoreBoard.
type CategoryTotal struct {
	Category   Category
	Total      int
	Max        int
	Statements []int
}

// ScoreBoard accumulates ratings per category for a single run.
type ScoreBoard struct {
	runID   string
	mapping Mapping
	totals  map[Category]int
	rated   map[int]bool
}

// NewScoreBoard returns a board with every category at zero and a fresh
// run ID.
func NewScoreBoard(m Mapping) *ScoreBoard {
	sb := &ScoreBoard{
		runID:   uuid.NewString(),
		mapping: m,
		totals:  make(map[Category]int, len(displayOrder)),
		rated:   make(map[int]bool, StatementCount),
	}
	for _, c := range displayOrder {
		sb.totals[c] = 0
	}
	return sb
}

// Add credits rating to every category that scores ordinal. Each ordinal
// may be added once.
func (sb *ScoreBoard) Add(ordinal, rating int) error {
	if _, ok := StatementByOrdinal(ordinal); !ok {
		return fmt.Errorf("statement %d out of range 1..%d", ordinal, StatementCount)
	}
	if err := checkRange(rating); err != nil {
		return err
	}
	if sb.rated[ordinal] {
		return fmt.Errorf("statement %d already rated", ordinal)
	}
	sb.rated[ordinal] = true
	for _, c := range sb.mapping.CategoriesFor(ordinal) {
		sb.totals[c] += rating
	}
	return nil
}

// RunID identifies the sitting this board belongs to.
func (sb *ScoreBoard) RunID() string {
	return sb.runID
}

// Total returns the accumulated total for c.
func (sb *ScoreBoard) Total(c Category) int {
	return sb.totals[c]
}

// Rated reports how many statements have been rated so far.
func (sb *ScoreBoard) Rated() int {
	return len(sb.rated)
}

// Complete reports whether every statement has been rated.
func (sb *ScoreBoard) Complete() bool {
	return len(sb.rated) == StatementCount
}

// Totals returns the per-category rows in display order.
func (sb *ScoreBoard) Totals() []CategoryTotal {
	out := make([]CategoryTotal, 0, len(displayOrder))
	for _, c := range displayOrder {
		ordinals := append([]int(nil), sb.mapping[c]...)
		out = append(out, CategoryTotal{
			Category:   c,
			Total:      sb.totals[c],
			Max:        len(ordinals) * MaxRating,
			Statements: ordinals,
		})
	}
	return out
}

// Mapping returns a copy of the scoring key the board was built with.
func (sb *ScoreBoard) Mapping() Mapping {
	out := make(Mapping, len(sb.mapping))
	for c, ordinals := range sb.mapping {
		out[c] = append([]int(nil), ordinals...)
	}
	return out
}
