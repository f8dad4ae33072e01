package security

import (
	"fmt"

	"github.com/dockvet/dockvet/internal/dockerfile"
	"github.com/dockvet/dockvet/internal/finding"
	"github.com/dockvet/dockvet/internal/rules"
)

// NonRootUser checks whether the image runs as root. Only the last USER
// instruction counts: later USER overrides earlier, matching Docker's own
// semantics, so USER root followed by USER app is clean.
type NonRootUser struct {
	rules.BaseRule
}

// NewNonRootUser builds the rule under a profile-chosen ID and severity.
func NewNonRootUser(id string, sev finding.Severity) *NonRootUser {
	return &NonRootUser{BaseRule: rules.BaseRule{
		RuleID:          id,
		RuleName:        "non-root-user",
		RuleDescription: "Containers should not run as root. The effective user is set by the last USER instruction.",
		RuleCategory:    finding.CategorySecurity,
		RuleSeverity:    sev,
	}}
}

func (r *NonRootUser) Check(f *dockerfile.File, ctx *rules.Context) []finding.Finding {
	if ctx.FinalUser == "" {
		return []finding.Finding{r.FindingWithDetail(0,
			"container runs as root by default (no USER instruction)",
			"add a USER instruction with a non-root user, e.g. USER appuser")}
	}
	if ctx.FinalUser == "root" || ctx.FinalUser == "0" {
		return []finding.Finding{r.FindingWithDetail(ctx.FinalUserLine,
			fmt.Sprintf("container explicitly runs as root (USER %s)", ctx.FinalUser),
			"switch to a non-root user before the end of the Dockerfile")}
	}
	return nil
}
