package main

import (
	"fmt"
	"strings"

	"assess/internal/survey"

	"github.com/spf13/cobra"
)

// listStatements prints every statement with the categories it scores.
func listStatements(cmd *cobra.Command, args []string) error {
	m := survey.DefaultMapping()
	s := styles()
	out := cmd.OutOrStdout()

	for _, st := range survey.Statements() {
		cats := m.CategoriesFor(st.Ordinal)
		names := make([]string, len(cats))
		for i, c := range cats {
			names[i] = string(c)
		}
		label := strings.Join(names, ", ")
		if label == "" {
			label = "unscored"
		}
		fmt.Fprintf(out, "%s\n    %s\n", st.Text, s.Muted.Render("→ "+label))
	}

	if shared := m.SharedOrdinals(); len(shared) > 0 {
		fmt.Fprintf(out, "\n%s\n", s.Warning.Render(fmt.Sprintf(
			"Note: statement(s) %s count toward more than one category.", intList(shared))))
	}
	if unmapped := m.Unmapped(); len(unmapped) > 0 {
		fmt.Fprintf(out, "%s\n", s.Warning.Render(fmt.Sprintf(
			"Note: statement(s) %s count toward no category.", intList(unmapped))))
	}
	return nil
}

func intList(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, ", ")
}
