package models

// Insight is a generated advisory message derived from aggregated
// transaction data. Priority insights sort before non-priority ones;
// otherwise insertion order is preserved.
type Insight struct {
	Title    string      `json:"title"`
	Message  string      `json:"message"`
	Severity string      `json:"severity"`
	Priority bool        `json:"priority"`
	Source   string      `json:"source,omitempty"`
	Advice   []AdviceTip `json:"advice,omitempty"`
}

// AdviceTip is one sub-recommendation inside the consolidated personal
// advisor insight. Each tip carries its own reference link.
type AdviceTip struct {
	Title  string `json:"title"`
	Tip    string `json:"tip"`
	Source string `json:"source"`
}
