package finding

import "fmt"

// Severity represents the severity of a finding. The five values are a
// superset covering both profiles; a profile declares which ones it uses
// and how they are labelled.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ParseSeverity converts a severity name back to its value.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "info":
		return SeverityInfo, nil
	case "low":
		return SeverityLow, nil
	case "medium":
		return SeverityMedium, nil
	case "high":
		return SeverityHigh, nil
	case "critical":
		return SeverityCritical, nil
	default:
		return 0, fmt.Errorf("unknown severity %q", s)
	}
}

// Severities lists all severities from most to least severe, the order
// summaries are rendered in.
var Severities = []Severity{
	SeverityCritical,
	SeverityHigh,
	SeverityMedium,
	SeverityLow,
	SeverityInfo,
}

// Category represents the category of a rule
type Category string

const (
	CategorySecurity      Category = "security"
	CategoryBestPractice  Category = "best-practice"
	CategoryOptimization  Category = "optimization"
	CategoryDocumentation Category = "documentation"
)

// Categories lists all categories in report-section order.
var Categories = []Category{
	CategorySecurity,
	CategoryBestPractice,
	CategoryOptimization,
	CategoryDocumentation,
}

// Finding represents one reported rule violation or informational note.
type Finding struct {
	RuleID   string   // rule ID (e.g. SEC001)
	Category Category // rule category
	Severity Severity
	Message  string // fully rendered message
	Line     int    // 1-based source line, 0 for file-level findings
	Detail   string // optional remediation hint
}

func (f Finding) String() string {
	if f.Line > 0 {
		return fmt.Sprintf("[%s] %s: %s (line %d)", f.RuleID, f.Severity, f.Message, f.Line)
	}
	return fmt.Sprintf("[%s] %s: %s", f.RuleID, f.Severity, f.Message)
}
