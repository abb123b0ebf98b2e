package analysis

import (
	"regexp"
	"strings"
)

// NegationScope selects where a rule's negation pattern is searched. Go's
// regexp has no lookahead, so the lookahead-style negations of the catalog
// are expressed as a trigger match plus a separate search window.
type NegationScope int

const (
	// NegateAnywhere searches the whole clause text.
	NegateAnywhere NegationScope = iota
	// NegateTrailing searches from the end of a trigger match to end of text.
	NegateTrailing
	// NegateWindow searches a bounded window after a trigger match.
	NegateWindow
)

// Rule is one static risk-detection descriptor. The catalog is read-only
// process-wide configuration; Rule values are never mutated at runtime.
type Rule struct {
	ID         string
	Label      string
	Severity   Severity
	Party      string
	Pattern    *regexp.Regexp
	NegateIf   *regexp.Regexp
	Scope      NegationScope
	Window     int
	Where      []string
	Suggestion string
}

// Matches reports whether the rule fires on the given clause text. A rule
// with a trailing/window negation fires when any trigger occurrence has no
// negation match in its search window.
func (r *Rule) Matches(raw string) bool {
	locs := r.Pattern.FindAllStringIndex(raw, -1)
	if locs == nil {
		return false
	}
	if r.NegateIf == nil {
		return true
	}
	if r.Scope == NegateAnywhere {
		return !r.NegateIf.MatchString(raw)
	}
	for _, loc := range locs {
		tail := raw[loc[1]:]
		if r.Scope == NegateWindow && r.Window > 0 && len(tail) > r.Window {
			tail = tail[:r.Window]
		}
		if !r.NegateIf.MatchString(tail) {
			return true
		}
	}
	return false
}

// InContext reports whether at least one of the rule's context keywords
// occurs (case-insensitively) in the clause text. Rules without keywords
// always apply.
func (r *Rule) InContext(raw string) bool {
	if len(r.Where) == 0 {
		return true
	}
	lower := strings.ToLower(raw)
	for _, w := range r.Where {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

// riskRules is the fixed catalog, applied in order. The patterns are
// case-insensitive and match across lines.
var riskRules = []Rule{
	{
		ID:       "uncapped_liability",
		Label:    "Uncapped Liability",
		Severity: SeverityHigh,
		Party:    "Vendor",
		Pattern:  regexp.MustCompile(`(?is)(unlimited|uncapped|no\s+cap).*liabilit(y|ies)|(?i)liability\s+shall\s+be\s+unlimited`),
		Where:    []string{"liability", "limitation", "limitation of liability"},
		Suggestion: "Cap aggregate liability (e.g., 12 months of fees) and exclude indirect damages " +
			"except carve-outs (IP, confidentiality).",
	},
	{
		ID:       "broad_indemnity",
		Label:    "Broad/Asymmetric Indemnity",
		Severity: SeverityMedium,
		Party:    "Customer",
		Pattern:  regexp.MustCompile(`(?is)(customer|licensee|employer).{0,40}shall\s+indemnif(y|ies).{0,60}(any|all)\s+claims`),
		Where:    []string{"indemnity", "indemnification"},
		Suggestion: "Narrow to third-party IP claims; make indemnity mutual; exclude misuse and " +
			"unauthorized modifications.",
	},
	{
		ID:         "ambiguous_t4c",
		Label:      "Ambiguous Termination for Convenience",
		Severity:   SeverityLow,
		Party:      "Shared",
		Pattern:    regexp.MustCompile(`(?i)terminate\s+for\s+convenience`),
		NegateIf:   regexp.MustCompile(`(?i)\d{1,2}\s*day`),
		Scope:      NegateTrailing,
		Where:      []string{"termination", "term", "termination for convenience"},
		Suggestion: "Define notice period (e.g., 30 days) and any early termination fees or specify none.",
	},
	{
		ID:         "narrow_force_majeure",
		Label:      "Narrow Force Majeure",
		Severity:   SeverityMedium,
		Party:      "Shared",
		Pattern:    regexp.MustCompile(`(?i)force\s+majeure`),
		NegateIf:   regexp.MustCompile(`(?i)epidemic|pandemic|government\s+restriction|quarantine`),
		Scope:      NegateTrailing,
		Where:      []string{"force majeure", "excusable delay"},
		Suggestion: "Include epidemics/pandemics and government restrictions; require notice and mitigation.",
	},
	{
		ID:       "payment_ambiguity",
		Label:    "Ambiguous Payment Schedule",
		Severity: SeverityHigh,
		Party:    "Contractor",
		Pattern:  regexp.MustCompile(`(?is)(payment|remittance|consideration).{0,80}(due|within)\s*(\d+)?\s*(days|day)?`),
		NegateIf: regexp.MustCompile(`(?i)milestone|stage|schedule|retention|bank\s+details|invoice\s+date|net\s+\d+`),
		Scope:    NegateAnywhere,
		Where:    []string{"payment", "commercials", "fees"},
		Suggestion: "Specify milestone schedule, due dates, invoice reference, bank details; define " +
			"retention and release trigger.",
	},
	{
		ID:         "uncapped_lds",
		Label:      "Uncapped Liquidated Damages",
		Severity:   SeverityHigh,
		Party:      "Employer",
		Pattern:    regexp.MustCompile(`(?is)(liquidated\s+damages|ld[’']?s?).{0,80}(unlimited|uncapped|no\s+cap)`),
		Where:      []string{"liquidated damages", "delay", "performance security"},
		Suggestion: "Introduce bilateral cap (e.g., 10% of Contract Price); state LDs are sole remedy for delay.",
	},
	{
		ID:         "confidentiality_no_carveout",
		Label:      "Confidentiality Missing Carve-outs",
		Severity:   SeverityLow,
		Party:      "Shared",
		Pattern:    regexp.MustCompile(`(?i)confidential(ity)?`),
		NegateIf:   regexp.MustCompile(`(?i)public|already\s+known|independent|third\s+party`),
		Scope:      NegateWindow,
		Window:     200,
		Where:      []string{"confidentiality", "nda"},
		Suggestion: "Add carve-outs: public/known, independently developed, or rightfully received from third parties.",
	},
	{
		ID:         "ip_assignment_asymmetry",
		Label:      "Asymmetric IP Assignment",
		Severity:   SeverityMedium,
		Party:      "Vendor",
		Pattern:    regexp.MustCompile(`(?is)(assign|transfer).{0,40}all\s+ip\s+rights`),
		NegateIf:   regexp.MustCompile(`(?i)license\s+back`),
		Scope:      NegateWindow,
		Window:     200,
		Where:      []string{"intellectual property", "ownership", "ip"},
		Suggestion: "Use license grant or assignment with license-back; clarify pre-existing IP ownership.",
	},
}

// Rules returns the catalog in application order.
func Rules() []Rule {
	out := make([]Rule, len(riskRules))
	copy(out, riskRules)
	return out
}
