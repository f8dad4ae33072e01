package bestpractice

import (
	"fmt"
	"strings"

	"github.com/dockvet/dockvet/internal/dockerfile"
	"github.com/dockvet/dockvet/internal/finding"
	"github.com/dockvet/dockvet/internal/rules"
)

// MissingWorkdir flags relative WORKDIR paths and files that copy content
// in without ever setting a working directory, both of which leave the
// destination dependent on base-image internals.
type MissingWorkdir struct {
	rules.BaseRule
}

func NewMissingWorkdir(id string, sev finding.Severity) *MissingWorkdir {
	return &MissingWorkdir{BaseRule: rules.BaseRule{
		RuleID:          id,
		RuleName:        "missing-workdir",
		RuleDescription: "WORKDIR should be absolute and set before files are copied into the image.",
		RuleCategory:    finding.CategoryBestPractice,
		RuleSeverity:    sev,
	}}
}

func (r *MissingWorkdir) Check(f *dockerfile.File, ctx *rules.Context) []finding.Finding {
	var out []finding.Finding

	workdirs := f.ByDirective("WORKDIR")
	for _, wd := range workdirs {
		path := strings.TrimSpace(wd.Args)
		if path == "" || strings.HasPrefix(path, "/") || strings.HasPrefix(path, "$") {
			continue
		}
		out = append(out, r.FindingWithDetail(wd.Line,
			fmt.Sprintf("relative WORKDIR %q", path),
			"use an absolute path, e.g. WORKDIR /app"))
	}

	if len(workdirs) == 0 {
		if copies := append(f.ByDirective("COPY"), f.ByDirective("ADD")...); len(copies) > 0 {
			out = append(out, r.FindingWithDetail(0,
				"files are copied into the image but no WORKDIR is set",
				"set WORKDIR /app (or similar) before COPY/ADD"))
		}
	}

	return out
}
