package bestpractice

import (
	"strings"

	"github.com/dockvet/dockvet/internal/dockerfile"
	"github.com/dockvet/dockvet/internal/finding"
	"github.com/dockvet/dockvet/internal/rules"
)

// AptCacheCleanup checks that a RUN installing with apt also removes the apt
// lists in the same instruction. A later RUN cannot shrink the layer the
// cache was written to.
type AptCacheCleanup struct {
	rules.BaseRule
}

func NewAptCacheCleanup(id string, sev finding.Severity) *AptCacheCleanup {
	return &AptCacheCleanup{BaseRule: rules.BaseRule{
		RuleID:          id,
		RuleName:        "apt-cache-cleanup",
		RuleDescription: "apt caches left in a layer inflate the image; clean /var/lib/apt/lists in the same RUN.",
		RuleCategory:    finding.CategoryBestPractice,
		RuleSeverity:    sev,
	}}
}

func (r *AptCacheCleanup) Check(f *dockerfile.File, ctx *rules.Context) []finding.Finding {
	var out []finding.Finding
	for _, run := range f.ByDirective("RUN") {
		if !hasAptInstall(run.Args) {
			continue
		}
		if strings.Contains(run.Args, "rm -rf /var/lib/apt/lists") {
			continue
		}
		out = append(out, r.FindingWithDetail(run.Line,
			"apt install without cache cleanup in the same layer",
			"append && rm -rf /var/lib/apt/lists/* to the same RUN"))
	}
	return out
}
