package analysis

// Severity enum
type Severity string

const (
	SeverityHigh   Severity = "High"
	SeverityMedium Severity = "Medium"
	SeverityLow    Severity = "Low"
)

// SeverityCounts value object
type SeverityCounts struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
	Total  int `json:"total"`
}

// Section is one titled unit of contract text produced by segmentation.
// Raw holds title + body concatenated and is what the rules match against.
type Section struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Raw   string `json:"raw"`
}

// Issue is one detected risk instance tied to a clause and a rule.
// IDs are "<rule id>-<n>" with n a 1-based running counter per analysis.
type Issue struct {
	ID         string   `json:"id"`
	Clause     string   `json:"clause"`
	Issue      string   `json:"issue"`
	Risk       Severity `json:"risk"`
	Party      string   `json:"party"`
	Suggestion string   `json:"suggestion"`
}

// Result of one analysis run
type Result struct {
	Summary string         `json:"summary"`
	Counts  SeverityCounts `json:"counts"`
	Issues  []Issue        `json:"issues"`
}
