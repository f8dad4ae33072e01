package bestpractice

import (
	"strings"

	"github.com/dockvet/dockvet/internal/dockerfile"
	"github.com/dockvet/dockvet/internal/finding"
	"github.com/dockvet/dockvet/internal/rules"
)

// AptNoRecommends flags apt installs that pull in recommended packages.
type AptNoRecommends struct {
	rules.BaseRule
}

func NewAptNoRecommends(id string, sev finding.Severity) *AptNoRecommends {
	return &AptNoRecommends{BaseRule: rules.BaseRule{
		RuleID:          id,
		RuleName:        "apt-no-recommends",
		RuleDescription: "apt-get install without --no-install-recommends adds packages the image does not need.",
		RuleCategory:    finding.CategoryBestPractice,
		RuleSeverity:    sev,
	}}
}

func (r *AptNoRecommends) Check(f *dockerfile.File, ctx *rules.Context) []finding.Finding {
	var out []finding.Finding
	for _, run := range f.ByDirective("RUN") {
		if !hasAptInstall(run.Args) {
			continue
		}
		if strings.Contains(run.Args, "--no-install-recommends") {
			continue
		}
		out = append(out, r.FindingWithDetail(run.Line,
			"apt install without --no-install-recommends",
			"add --no-install-recommends to keep the image small"))
	}
	return out
}

func hasAptInstall(cmd string) bool {
	return strings.Contains(cmd, "apt-get install") || strings.Contains(cmd, "apt install")
}
