package analysis

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	// Heading prefixes: "Section 3", outline numbers ("7.", "3.2.1"), a
	// single capital + "."/")", or a Roman numeral + ".". A short capitalized
	// phrase ("Governing Law:") counts only when it occupies the whole line.
	headingRe = regexp.MustCompile(`^(?:` +
		`(?i:(?:section|clause|article)\s+\d+)\b` +
		`|\d+(?:\.\d+){1,3}[.)]?(?:\s|$)` +
		`|\d+[.)](?:\s|$)` +
		`|\d+$` +
		`|[A-Z][.)](?:\s|$)` +
		`|[IVXLC]+\.(?:\s|$)` +
		`|[A-Z][A-Za-z ]{2,30}:?$` +
		`)`)
	bulletRe = regexp.MustCompile(`^\s*[-•*]\s+`)
)

// segmentState accumulates the section currently being scanned.
type segmentState struct {
	title    string
	hasTitle bool
	body     []string
}

func (st *segmentState) flush(out []Section) []Section {
	if !st.hasTitle && len(st.body) == 0 {
		return out
	}
	title := st.title
	if !st.hasTitle {
		title = "Untitled"
	}
	body := strings.TrimSpace(strings.Join(st.body, "\n"))
	raw := strings.TrimSpace(st.title + "\n" + strings.Join(st.body, "\n"))
	return append(out, Section{Title: strings.TrimSpace(title), Body: body, Raw: raw})
}

// ExtractSections splits contract text into an ordered list of titled
// sections. Lines matching the heading pattern start a new section; bullets
// only ever continue a body; consecutive blank lines collapse to one
// separator. When no heading is detected anywhere, the text is re-split on
// paragraph breaks so unstructured prose still yields analyzable units.
func ExtractSections(text string) []Section {
	var sections []Section
	st := segmentState{}
	for _, ln := range normalizeLines(text) {
		switch {
		case ln == "":
			if len(st.body) > 0 && st.body[len(st.body)-1] != "" {
				st.body = append(st.body, "")
			}
		case headingRe.MatchString(ln):
			sections = st.flush(sections)
			st = segmentState{title: ln, hasTitle: true}
		case bulletRe.MatchString(ln):
			if len(st.body) > 0 {
				st.body = append(st.body, ln)
			}
		default:
			st.body = append(st.body, ln)
		}
	}
	sections = st.flush(sections)

	if len(sections) == 1 && strings.EqualFold(sections[0].Title, "untitled") {
		var paras []Section
		for _, p := range strings.Split(sections[0].Body, "\n\n") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			paras = append(paras, Section{
				Title: fmt.Sprintf("Para %d", len(paras)+1),
				Body:  p,
				Raw:   p,
			})
		}
		sections = paras
	}
	return sections
}
