package analysis

import (
	"regexp"
	"strings"
)

var (
	lineBreakRe = regexp.MustCompile(`\r\n?`)
	hspaceRe    = regexp.MustCompile(`[ \t]+`)
)

// normalizeLines canonicalizes line endings and horizontal whitespace, then
// splits into trimmed lines. Applying it to already-normalized text is a no-op.
func normalizeLines(text string) []string {
	text = lineBreakRe.ReplaceAllString(text, "\n")
	text = hspaceRe.ReplaceAllString(text, " ")
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimSpace(ln)
	}
	return lines
}
