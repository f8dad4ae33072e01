package security

import (
	"fmt"

	"github.com/dockvet/dockvet/internal/dockerfile"
	"github.com/dockvet/dockvet/internal/finding"
	"github.com/dockvet/dockvet/internal/rules"
)

// UnpinnedBaseImage inspects only the first FROM instruction. A digest pin
// passes outright, as do trusted images and unexpanded variables; no tag and
// a literal latest tag are flagged with distinct messages.
type UnpinnedBaseImage struct {
	rules.BaseRule
}

func NewUnpinnedBaseImage(id string, sev finding.Severity) *UnpinnedBaseImage {
	return &UnpinnedBaseImage{BaseRule: rules.BaseRule{
		RuleID:          id,
		RuleName:        "pinned-base-image",
		RuleDescription: "Base images should be pinned to a specific tag or digest; latest makes builds unreproducible.",
		RuleCategory:    finding.CategorySecurity,
		RuleSeverity:    sev,
	}}
}

func (r *UnpinnedBaseImage) Check(f *dockerfile.File, ctx *rules.Context) []finding.Finding {
	if !ctx.HasBaseImage {
		return nil
	}
	ref := ctx.BaseImage
	if ref.Digest != "" || ref.IsVariable() {
		return nil
	}
	for _, trusted := range ctx.Config.TrustedImages {
		if ref.Image == trusted {
			return nil
		}
	}

	switch ref.Tag {
	case "":
		return []finding.Finding{r.FindingWithDetail(ctx.BaseImageLine,
			fmt.Sprintf("base image %s has no tag (implicitly uses latest)", ref.Image),
			fmt.Sprintf("pin a version, e.g. FROM %s:<version>", ref.Image))}
	case "latest":
		return []finding.Finding{r.FindingWithDetail(ctx.BaseImageLine,
			fmt.Sprintf("base image %s uses the latest tag", ref.Image),
			fmt.Sprintf("pin a version, e.g. FROM %s:<version>", ref.Image))}
	}
	return nil
}
