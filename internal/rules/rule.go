package rules

import (
	"github.com/dockvet/dockvet/internal/dockerfile"
	"github.com/dockvet/dockvet/internal/finding"
)

// Rule is the interface that all analysis rules implement. Rules are
// independent and side-effect-free: a rule reads only the instruction
// sequence and the shared Context, never another rule's output.
type Rule interface {
	// ID returns the unique rule identifier (e.g. SEC001)
	ID() string

	// Name returns a short kebab-case name for the rule
	Name() string

	// Description returns what the rule checks and why
	Description() string

	// Category returns the rule category
	Category() finding.Category

	// Severity returns the severity of this rule's findings
	Severity() finding.Severity

	// Check evaluates the rule and returns its findings
	Check(f *dockerfile.File, ctx *Context) []finding.Finding
}

// BaseRule provides the metadata half of a rule. The profile that assembles
// a catalogue chooses the ID and severity, so one predicate can gate
// differently in different profiles.
type BaseRule struct {
	RuleID          string
	RuleName        string
	RuleDescription string
	RuleCategory    finding.Category
	RuleSeverity    finding.Severity
}

func (r *BaseRule) ID() string                 { return r.RuleID }
func (r *BaseRule) Name() string               { return r.RuleName }
func (r *BaseRule) Description() string        { return r.RuleDescription }
func (r *BaseRule) Category() finding.Category { return r.RuleCategory }
func (r *BaseRule) Severity() finding.Severity { return r.RuleSeverity }

// Finding builds a finding carrying this rule's identity. Line 0 marks a
// file-level finding.
func (r *BaseRule) Finding(line int, msg string) finding.Finding {
	return finding.Finding{
		RuleID:   r.RuleID,
		Category: r.RuleCategory,
		Severity: r.RuleSeverity,
		Message:  msg,
		Line:     line,
	}
}

// FindingWithDetail is Finding plus a remediation hint.
func (r *BaseRule) FindingWithDetail(line int, msg, detail string) finding.Finding {
	f := r.Finding(line, msg)
	f.Detail = detail
	return f
}
