package bestpractice

import (
	"fmt"

	"github.com/dockvet/dockvet/internal/dockerfile"
	"github.com/dockvet/dockvet/internal/finding"
	"github.com/dockvet/dockvet/internal/rules"
)

// MultipleCmd flags more than one CMD. Docker silently uses only the last
// one; the earlier ones are dead weight and usually a merge mistake.
type MultipleCmd struct {
	rules.BaseRule
}

func NewMultipleCmd(id string, sev finding.Severity) *MultipleCmd {
	return &MultipleCmd{BaseRule: rules.BaseRule{
		RuleID:          id,
		RuleName:        "multiple-cmd",
		RuleDescription: "Only the last CMD takes effect; multiple CMD instructions indicate a mistake.",
		RuleCategory:    finding.CategoryBestPractice,
		RuleSeverity:    sev,
	}}
}

func (r *MultipleCmd) Check(f *dockerfile.File, ctx *rules.Context) []finding.Finding {
	cmds := f.ByDirective("CMD")
	if len(cmds) <= 1 {
		return nil
	}
	var out []finding.Finding
	for _, cmd := range cmds[:len(cmds)-1] {
		out = append(out, r.FindingWithDetail(cmd.Line,
			fmt.Sprintf("CMD is overridden by a later CMD on line %d", cmds[len(cmds)-1].Line),
			"keep a single CMD; use ENTRYPOINT if you need a fixed prefix"))
	}
	return out
}
