package analysis

import (
	"fmt"
	"strings"
)

const addendumDisclaimer = "Notes: Machine-assisted. Review with counsel."

// SynthesizeAddendum renders a redline addendum: the base document followed
// by one numbered change request per accepted issue, in input order.
func SynthesizeAddendum(baseText string, issues []Issue, author string) string {
	var b strings.Builder
	b.WriteString(baseText)
	fmt.Fprintf(&b, "\n\n— — —\nADDENDUM — Risk-Refined Draft (Author: %s)\n", author)

	entries := make([]string, 0, len(issues))
	for i, is := range issues {
		entries = append(entries, fmt.Sprintf("A%d. Clause: %s\nIssue: %s\nChange: %s\n",
			i+1, is.Clause, is.Issue, is.Suggestion))
	}
	b.WriteString(strings.Join(entries, "\n"))
	b.WriteString("\n" + addendumDisclaimer)
	return b.String()
}
