package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractSectionsHeadings(t *testing.T) {
	text := "Section 1\nScope of the work is described below.\n\n" +
		"7. Limitation of Liability\nLiability shall be unlimited in all cases.\n"

	secs := ExtractSections(text)
	require.Len(t, secs, 2)

	assert.Equal(t, "Section 1", secs[0].Title)
	assert.Equal(t, "Scope of the work is described below.", secs[0].Body)
	assert.Equal(t, "Section 1\nScope of the work is described below.", secs[0].Raw)

	assert.Equal(t, "7. Limitation of Liability", secs[1].Title)
	assert.Equal(t, "Liability shall be unlimited in all cases.", secs[1].Body)
}

func TestExtractSectionsHeadingVariants(t *testing.T) {
	headings := []string{
		"Section 12",
		"Clause 3",
		"article 7",
		"3.2.1",
		"7. Limitation of Liability",
		"A) Definitions here.",
		"IV. Force Majeure events.",
		"Governing Law:",
		"Confidentiality",
	}
	for _, h := range headings {
		assert.True(t, headingRe.MatchString(h), "expected heading: %q", h)
	}

	bodies := []string{
		"the parties agree as follows.",
		"Liability shall be unlimited in all cases.",
		"Net 30 days from invoice date.",
		"- bullet item",
		"payment is due within 30 days.",
	}
	for _, b := range bodies {
		assert.False(t, headingRe.MatchString(b), "expected body line: %q", b)
	}
}

func TestExtractSectionsBulletsNeverStartBody(t *testing.T) {
	text := "Payment Terms:\n- orphan bullet\nall fees are payable on receipt.\n- retained bullet\n"

	secs := ExtractSections(text)
	require.Len(t, secs, 1)
	assert.Equal(t, "Payment Terms:", secs[0].Title)
	assert.Equal(t, "all fees are payable on receipt.\n- retained bullet", secs[0].Body)
}

func TestExtractSectionsBlankLinesCollapse(t *testing.T) {
	text := "Notice Period:\nthe notice begins here.\n\n\n\nthe notice ends here.\n"

	secs := ExtractSections(text)
	require.Len(t, secs, 1)
	assert.Equal(t, "the notice begins here.\n\nthe notice ends here.", secs[0].Body)
}

func TestExtractSectionsParagraphFallback(t *testing.T) {
	text := "this agreement is made between the parties hereto.\n\n" +
		"the vendor shall deliver the goods without undue delay.\n"

	secs := ExtractSections(text)
	require.Len(t, secs, 2)
	assert.Equal(t, "Para 1", secs[0].Title)
	assert.Equal(t, "this agreement is made between the parties hereto.", secs[0].Body)
	assert.Equal(t, secs[0].Body, secs[0].Raw)
	assert.Equal(t, "Para 2", secs[1].Title)
}

func TestExtractSectionsTotality(t *testing.T) {
	inputs := []string{"x", "hello world", "  x  \n", "one.\n\ntwo.\n\nthree."}
	for _, in := range inputs {
		assert.NotEmpty(t, ExtractSections(in), "input %q", in)
	}
}

func TestExtractSectionsEmptyInput(t *testing.T) {
	assert.Empty(t, ExtractSections(""))
	assert.Empty(t, ExtractSections("   \n\n\t\n"))
}
