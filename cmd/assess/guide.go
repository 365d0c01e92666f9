package main

import (
	"fmt"
	"io"
	"strings"

	"assess/internal/survey"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

var styleSummaries = map[survey.Category]string{
	survey.Avoidance:     "Stepping around or postponing conflict rather than engaging with it.",
	survey.Aggression:    "Pressing your own position at the expense of the relationship.",
	survey.Accommodation: "Yielding to the other party to preserve goodwill.",
	survey.Compromise:    "Trading concessions to reach a middle ground.",
	survey.Collaboration: "Working openly with the other party toward a solution that serves both.",
}

func guideMarkdown() string {
	var b strings.Builder
	b.WriteString("# Negotiation Style Self-Assessment\n\n")
	b.WriteString("## Rating scale\n\n")
	b.WriteString("| Rating | Meaning |\n|---:|---|\n")
	for i, meaning := range []string{"never", "rarely", "sometimes", "occasionally", "frequently", "always"} {
		fmt.Fprintf(&b, "| %d | %s |\n", i, meaning)
	}

	b.WriteString("\n## Styles\n\n")
	m := survey.DefaultMapping()
	for _, c := range survey.Categories() {
		fmt.Fprintf(&b, "- **%s** (statements %s): %s\n", c, intList(m[c]), styleSummaries[c])
	}

	fmt.Fprintf(&b, "\nEach style totals between %d and %d. ", 0, 5*survey.MaxRating)
	b.WriteString("Statement 14 counts toward both Avoidance and Collaboration; statement 13 counts toward none.\n")
	return b.String()
}

// showGuide renders the guide through glamour, or as raw Markdown when
// colour is off.
func showGuide(cmd *cobra.Command, args []string) error {
	return renderGuide(cmd.OutOrStdout(), guideMarkdown(), styles().Theme.Name)
}

func renderGuide(w io.Writer, md, theme string) error {
	if theme == "none" {
		_, err := io.WriteString(w, md)
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(theme),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render guide: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}
