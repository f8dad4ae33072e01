package security

import (
	"fmt"
	"strings"

	"github.com/dockvet/dockvet/internal/dockerfile"
	"github.com/dockvet/dockvet/internal/finding"
	"github.com/dockvet/dockvet/internal/rules"
)

// AddRemoteURL flags ADD with a remote source. Downloads during build are
// unverified and uncacheable; RUN curl with checksum verification is safer.
type AddRemoteURL struct {
	rules.BaseRule
}

func NewAddRemoteURL(id string, sev finding.Severity) *AddRemoteURL {
	return &AddRemoteURL{BaseRule: rules.BaseRule{
		RuleID:          id,
		RuleName:        "add-remote-url",
		RuleDescription: "ADD from a URL downloads unverified content at build time.",
		RuleCategory:    finding.CategorySecurity,
		RuleSeverity:    sev,
	}}
}

func (r *AddRemoteURL) Check(f *dockerfile.File, ctx *rules.Context) []finding.Finding {
	var out []finding.Finding
	for _, add := range f.ByDirective("ADD") {
		for _, field := range add.Fields() {
			if strings.HasPrefix(field, "http://") || strings.HasPrefix(field, "https://") {
				out = append(out, r.FindingWithDetail(add.Line,
					fmt.Sprintf("ADD downloads %s at build time", field),
					"use RUN curl/wget with checksum verification, or ADD --checksum"))
			}
		}
	}
	return out
}
