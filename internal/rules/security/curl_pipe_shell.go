package security

import (
	"regexp"

	"github.com/dockvet/dockvet/internal/dockerfile"
	"github.com/dockvet/dockvet/internal/finding"
	"github.com/dockvet/dockvet/internal/rules"
)

var curlPipePattern = regexp.MustCompile(`\b(curl|wget)\b[^|;&]*\|\s*(sudo\s+)?(sh|bash|zsh)\b`)

// CurlPipeShell flags piping a download straight into a shell, which
// executes remote content without any verification.
type CurlPipeShell struct {
	rules.BaseRule
}

func NewCurlPipeShell(id string, sev finding.Severity) *CurlPipeShell {
	return &CurlPipeShell{BaseRule: rules.BaseRule{
		RuleID:          id,
		RuleName:        "curl-pipe-shell",
		RuleDescription: "Piping curl or wget output into a shell executes unverified remote code.",
		RuleCategory:    finding.CategorySecurity,
		RuleSeverity:    sev,
	}}
}

func (r *CurlPipeShell) Check(f *dockerfile.File, ctx *rules.Context) []finding.Finding {
	var out []finding.Finding
	for _, run := range f.ByDirective("RUN") {
		if curlPipePattern.MatchString(run.Args) {
			out = append(out, r.FindingWithDetail(run.Line,
				"download piped directly into a shell",
				"download to a file, verify its checksum, then execute it"))
		}
	}
	return out
}
