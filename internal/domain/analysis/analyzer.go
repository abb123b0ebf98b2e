package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

var outlinePrefixRe = regexp.MustCompile(`^\d+(?:\.\d+)*[.)]?\s*`)

// AnalyzeText segments the text and applies every catalog rule to every
// section, sections in document order and rules in catalog order. It is
// total: any input, including empty, yields a valid result.
func AnalyzeText(text string) Result {
	issues := []Issue{}
	for _, sec := range ExtractSections(text) {
		for i := range riskRules {
			rule := &riskRules[i]
			if !rule.InContext(sec.Raw) {
				continue
			}
			if !rule.Matches(sec.Raw) {
				continue
			}
			issues = append(issues, Issue{
				ID:         fmt.Sprintf("%s-%d", rule.ID, len(issues)+1),
				Clause:     displayTitle(sec),
				Issue:      rule.Label,
				Risk:       rule.Severity,
				Party:      rule.Party,
				Suggestion: rule.Suggestion,
			})
		}
	}

	var counts SeverityCounts
	for _, is := range issues {
		switch is.Risk {
		case SeverityHigh:
			counts.High++
		case SeverityMedium:
			counts.Medium++
		case SeverityLow:
			counts.Low++
		}
	}
	counts.Total = len(issues)

	return Result{
		Summary: fmt.Sprintf("%d issues detected (%d High, %d Medium, %d Low).",
			counts.Total, counts.High, counts.Medium, counts.Low),
		Counts: counts,
		Issues: issues,
	}
}

// displayTitle derives the clause label shown on an issue: the section title
// minus any outline prefix, else the first sentence of the body, else "Clause".
func displayTitle(sec Section) string {
	t := strings.TrimSpace(outlinePrefixRe.ReplaceAllString(sec.Title, ""))
	if t == "" {
		first, _, _ := strings.Cut(sec.Body, ".")
		t = truncate(strings.TrimSpace(first), 40)
	}
	if t == "" {
		t = "Clause"
	}
	return truncate(t, 60)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
