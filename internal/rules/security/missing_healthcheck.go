package security

import (
	"strings"

	"github.com/dockvet/dockvet/internal/dockerfile"
	"github.com/dockvet/dockvet/internal/finding"
	"github.com/dockvet/dockvet/internal/rules"
)

// MissingHealthcheck reports files without a HEALTHCHECK instruction.
// HEALTHCHECK NONE explicitly disables inherited checks and counts as
// missing.
type MissingHealthcheck struct {
	rules.BaseRule
}

func NewMissingHealthcheck(id string, sev finding.Severity) *MissingHealthcheck {
	return &MissingHealthcheck{BaseRule: rules.BaseRule{
		RuleID:          id,
		RuleName:        "missing-healthcheck",
		RuleDescription: "Without a HEALTHCHECK, orchestrators cannot detect an unhealthy container.",
		RuleCategory:    finding.CategorySecurity,
		RuleSeverity:    sev,
	}}
}

func (r *MissingHealthcheck) Check(f *dockerfile.File, ctx *rules.Context) []finding.Finding {
	for _, hc := range f.ByDirective("HEALTHCHECK") {
		if !strings.EqualFold(strings.TrimSpace(hc.Args), "NONE") {
			return nil
		}
	}
	return []finding.Finding{r.FindingWithDetail(0,
		"no HEALTHCHECK instruction found",
		"add e.g. HEALTHCHECK CMD curl -f http://localhost:8080/health || exit 1")}
}
