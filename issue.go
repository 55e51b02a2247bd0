package atomcss

// LinterName is the FromLinter value of every issue.
const LinterName = "atomcss"

// Issue represents a single linting violation in golangci-lint format
type Issue struct {
	FromLinter  string       `json:"FromLinter"`  // "atomcss"
	Text        string       `json:"Text"`        // "conflicting utilities \"p-2\", \"p-4\" (padding); use \"p-4\""
	Severity    string       `json:"Severity"`    // "", "warning", "error"
	Category    string       `json:"Category"`    // "conflict", "unknown", "token"
	SourceLines []string     `json:"SourceLines"` // Lines of code with issue
	Pos         IssuePos     `json:"Pos"`         // File location
	LineRange   *LineRange   `json:"LineRange"`   // Optional range
	Replacement *Replacement `json:"Replacement"` // Optional fix suggestion
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string `json:"Filename"` // "internal/web/features/home/page.templ"
	Line     int    `json:"Line"`     // 35
	Column   int    `json:"Column"`   // 15 (1-based, start of the class string)
}

// LineRange specifies a range of lines
type LineRange struct {
	From int `json:"From"`
	To   int `json:"To"`
}

// Replacement provides automated fix suggestion (future --fix flag)
type Replacement struct {
	NewText      string // merged class string: "px-2 p-4"
	InlineLength int    // Length of text to replace
}

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = ""
)

// Checks that produce issues, stored in Issue.Category
const (
	CheckConflict = "conflict"
	CheckUnknown  = "unknown"
	CheckToken    = "token"
)

// Issue texts
const (
	IssueConflict     = "conflicting utilities %s (%s); use %q"
	IssueUnknown      = "unknown utility %q"
	IssueInvalidToken = "design token %s"
)
