package optimization

import (
	"github.com/dockvet/dockvet/internal/dockerfile"
	"github.com/dockvet/dockvet/internal/finding"
	"github.com/dockvet/dockvet/internal/rules"
)

// MultiStage suggests multi-stage builds for single-stage files. Two or
// more FROM instructions is an explicit pass.
type MultiStage struct {
	rules.BaseRule
}

func NewMultiStage(id string, sev finding.Severity) *MultiStage {
	return &MultiStage{BaseRule: rules.BaseRule{
		RuleID:          id,
		RuleName:        "multi-stage-build",
		RuleDescription: "Multi-stage builds keep compilers and build artifacts out of the final image.",
		RuleCategory:    finding.CategoryOptimization,
		RuleSeverity:    sev,
	}}
}

func (r *MultiStage) Check(f *dockerfile.File, ctx *rules.Context) []finding.Finding {
	if !ctx.HasBaseImage || ctx.FromCount >= 2 {
		return nil
	}
	return []finding.Finding{r.FindingWithDetail(0,
		"single-stage build; consider a multi-stage build",
		"build in one stage and COPY --from it into a minimal runtime image")}
}
