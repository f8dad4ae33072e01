package profile

import (
	"strings"

	"github.com/dockvet/dockvet/internal/finding"
	"github.com/dockvet/dockvet/internal/rules"
)

// ExitRule maps a severity to a process exit code. The first rule whose
// severity has any findings wins; an empty match exits 0.
type ExitRule struct {
	Severity finding.Severity
	Code     int
}

// Profile is a named rule catalogue plus its severity labelling and exit-code
// table. The two built-in profiles deliberately keep divergent exit tables:
// unifying them would change CI gating for existing callers.
type Profile struct {
	Name      string
	Catalogue *rules.Catalogue

	labels map[finding.Severity]string
	exit   []ExitRule
}

// Label renders a severity the way this profile reports it.
func (p *Profile) Label(s finding.Severity) string {
	if l, ok := p.labels[s]; ok {
		return l
	}
	return strings.ToUpper(s.String())
}

// ExitCode computes the process exit code for a report. The report is always
// rendered before this runs; exit-code computation never suppresses output.
func (p *Profile) ExitCode(rep *finding.Report) int {
	for _, rule := range p.exit {
		if rep.Count(rule.Severity) > 0 {
			return rule.Code
		}
	}
	return 0
}

// GatingSeverities returns the severities that produce a non-zero exit.
func (p *Profile) GatingSeverities() []finding.Severity {
	out := make([]finding.Severity, 0, len(p.exit))
	for _, rule := range p.exit {
		out = append(out, rule.Severity)
	}
	return out
}

// ByName returns a built-in profile.
func ByName(name string) (*Profile, bool) {
	switch name {
	case "best-practices":
		return BestPractices(), true
	case "security":
		return Security(), true
	default:
		return nil, false
	}
}

// Names lists the built-in profile names.
func Names() []string {
	return []string{"best-practices", "security"}
}
