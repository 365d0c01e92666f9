package report

import (
	"encoding/json"
	"io"

	"assess/internal/survey"
)

// JSON writes the totals as an indented JSON document.
type JSON struct{}

type jsonCategory struct {
	Category   string `json:"category"`
	Total      int    `json:"total"`
	Max        int    `json:"max"`
	Statements []int  `json:"statements"`
}

type jsonReport struct {
	RunID            string         `json:"run_id"`
	Totals           []jsonCategory `json:"totals"`
	SharedStatements []int          `json:"shared_statements,omitempty"`
	Unscored         []int          `json:"unscored_statements,omitempty"`
}

func (JSON) Render(w io.Writer, sb *survey.ScoreBoard) error {
	m := sb.Mapping()
	doc := jsonReport{
		RunID:            sb.RunID(),
		SharedStatements: m.SharedOrdinals(),
		Unscored:         m.Unmapped(),
	}
	for _, row := range sb.Totals() {
		doc.Totals = append(doc.Totals, jsonCategory{
			Category:   string(row.Category),
			Total:      row.Total,
			Max:        row.Max,
			Statements: row.Statements,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
