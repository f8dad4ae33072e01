package docs

import (
	"fmt"

	"github.com/dockvet/dockvet/internal/dockerfile"
	"github.com/dockvet/dockvet/internal/finding"
	"github.com/dockvet/dockvet/internal/rules"
)

// minInstructions is the size at which a Dockerfile without a single
// comment starts to count as undocumented.
const minInstructions = 10

// Undocumented nudges authors of larger Dockerfiles toward commenting.
// The parser keeps a comment census even though comments are stripped from
// the instruction sequence; this is the rule that consumes it.
type Undocumented struct {
	rules.BaseRule
}

func NewUndocumented(id string, sev finding.Severity) *Undocumented {
	return &Undocumented{BaseRule: rules.BaseRule{
		RuleID:          id,
		RuleName:        "undocumented-dockerfile",
		RuleDescription: "Larger Dockerfiles should carry comments explaining non-obvious steps.",
		RuleCategory:    finding.CategoryDocumentation,
		RuleSeverity:    sev,
	}}
}

func (r *Undocumented) Check(f *dockerfile.File, ctx *rules.Context) []finding.Finding {
	if ctx.Comments > 0 || len(f.Instructions) < minInstructions {
		return nil
	}
	return []finding.Finding{r.Finding(0,
		fmt.Sprintf("%d instructions without a single comment", len(f.Instructions)))}
}
