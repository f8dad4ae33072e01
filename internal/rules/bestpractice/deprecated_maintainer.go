package bestpractice

import (
	"github.com/dockvet/dockvet/internal/dockerfile"
	"github.com/dockvet/dockvet/internal/finding"
	"github.com/dockvet/dockvet/internal/rules"
)

// DeprecatedMaintainer flags the MAINTAINER instruction, deprecated since
// Docker 1.13 in favor of a LABEL.
type DeprecatedMaintainer struct {
	rules.BaseRule
}

func NewDeprecatedMaintainer(id string, sev finding.Severity) *DeprecatedMaintainer {
	return &DeprecatedMaintainer{BaseRule: rules.BaseRule{
		RuleID:          id,
		RuleName:        "deprecated-maintainer",
		RuleDescription: "MAINTAINER is deprecated; use LABEL maintainer=... instead.",
		RuleCategory:    finding.CategoryBestPractice,
		RuleSeverity:    sev,
	}}
}

func (r *DeprecatedMaintainer) Check(f *dockerfile.File, ctx *rules.Context) []finding.Finding {
	var out []finding.Finding
	for _, m := range f.ByDirective("MAINTAINER") {
		out = append(out, r.FindingWithDetail(m.Line,
			"deprecated MAINTAINER instruction",
			`replace with LABEL maintainer="`+m.Args+`"`))
	}
	return out
}
