package security

import (
	"strings"

	"github.com/dockvet/dockvet/internal/dockerfile"
	"github.com/dockvet/dockvet/internal/finding"
	"github.com/dockvet/dockvet/internal/rules"
)

// SudoPresent flags sudo in RUN commands. RUN already executes as root, and
// sudo in images usually signals a copy-pasted host recipe.
type SudoPresent struct {
	rules.BaseRule
}

func NewSudoPresent(id string, sev finding.Severity) *SudoPresent {
	return &SudoPresent{BaseRule: rules.BaseRule{
		RuleID:          id,
		RuleName:        "sudo-present",
		RuleDescription: "sudo is unnecessary in RUN instructions; commands already execute as root.",
		RuleCategory:    finding.CategorySecurity,
		RuleSeverity:    sev,
	}}
}

func (r *SudoPresent) Check(f *dockerfile.File, ctx *rules.Context) []finding.Finding {
	var out []finding.Finding
	for _, run := range f.ByDirective("RUN") {
		if containsCommandWord(run.Args, "sudo") {
			out = append(out, r.FindingWithDetail(run.Line,
				"sudo used in RUN instruction",
				"drop sudo; RUN commands execute as root unless USER says otherwise"))
		}
	}
	return out
}

// containsCommandWord reports whether word appears as a standalone command
// token, not as a substring of another word.
func containsCommandWord(cmd, word string) bool {
	tokens := strings.FieldsFunc(cmd, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ';' || r == '&' || r == '|' || r == '\n'
	})
	for _, tok := range tokens {
		if tok == word {
			return true
		}
	}
	return false
}
