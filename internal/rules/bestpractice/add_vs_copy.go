package bestpractice

import (
	"strings"

	"github.com/dockvet/dockvet/internal/dockerfile"
	"github.com/dockvet/dockvet/internal/finding"
	"github.com/dockvet/dockvet/internal/rules"
)

var archiveSuffixes = []string{
	".tar", ".tar.gz", ".tgz", ".tar.bz2", ".tar.xz", ".txz", ".zip",
}

// AddVsCopy flags ADD used where COPY would do. ADD's extra behaviors
// (archive extraction, URL download) should be opted into, not stumbled
// into.
type AddVsCopy struct {
	rules.BaseRule
}

func NewAddVsCopy(id string, sev finding.Severity) *AddVsCopy {
	return &AddVsCopy{BaseRule: rules.BaseRule{
		RuleID:          id,
		RuleName:        "add-vs-copy",
		RuleDescription: "Use COPY for plain files; reserve ADD for archive extraction or checksummed downloads.",
		RuleCategory:    finding.CategoryBestPractice,
		RuleSeverity:    sev,
	}}
}

func (r *AddVsCopy) Check(f *dockerfile.File, ctx *rules.Context) []finding.Finding {
	var out []finding.Finding
	for _, add := range f.ByDirective("ADD") {
		if addHasReason(add) {
			continue
		}
		out = append(out, r.FindingWithDetail(add.Line,
			"ADD used for plain file copy",
			"replace with COPY; ADD is only needed for archives and URLs"))
	}
	return out
}

// addHasReason reports whether any source justifies ADD over COPY.
func addHasReason(add dockerfile.Instruction) bool {
	for _, field := range add.Fields() {
		if strings.HasPrefix(field, "http://") || strings.HasPrefix(field, "https://") {
			return true
		}
		for _, suffix := range archiveSuffixes {
			if strings.HasSuffix(field, suffix) {
				return true
			}
		}
	}
	return false
}
