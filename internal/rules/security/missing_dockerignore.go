package security

import (
	"github.com/dockvet/dockvet/internal/dockerfile"
	"github.com/dockvet/dockvet/internal/finding"
	"github.com/dockvet/dockvet/internal/rules"
)

// MissingDockerignore reports the absence of a sibling .dockerignore file.
// Without one the whole build context, secrets included, ships to the
// daemon and is one COPY away from the image.
type MissingDockerignore struct {
	rules.BaseRule
}

func NewMissingDockerignore(id string, sev finding.Severity) *MissingDockerignore {
	return &MissingDockerignore{BaseRule: rules.BaseRule{
		RuleID:          id,
		RuleName:        "missing-dockerignore",
		RuleDescription: "A .dockerignore keeps secrets, VCS metadata, and build artifacts out of the build context.",
		RuleCategory:    finding.CategorySecurity,
		RuleSeverity:    sev,
	}}
}

func (r *MissingDockerignore) Check(f *dockerfile.File, ctx *rules.Context) []finding.Finding {
	if ctx.HasDockerignore {
		return nil
	}
	return []finding.Finding{r.FindingWithDetail(0,
		"no .dockerignore file next to the Dockerfile",
		"add a .dockerignore excluding at least .git, .env, and local build output")}
}
