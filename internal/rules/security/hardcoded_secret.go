package security

import (
	"fmt"
	"strings"

	"github.com/dockvet/dockvet/internal/dockerfile"
	"github.com/dockvet/dockvet/internal/finding"
	"github.com/dockvet/dockvet/internal/rules"
)

// HardcodedSecret flags ENV/ARG assignments whose variable name looks like a
// credential and carries a non-empty value, and COPY/ADD instructions that
// pull in sensitive files. Values baked into the image stay visible in its
// history forever.
type HardcodedSecret struct {
	rules.BaseRule
}

func NewHardcodedSecret(id string, sev finding.Severity) *HardcodedSecret {
	return &HardcodedSecret{BaseRule: rules.BaseRule{
		RuleID:          id,
		RuleName:        "hardcoded-secret",
		RuleDescription: "Secrets must not be baked into the image via ENV, ARG, or COPY; they remain readable in the image history.",
		RuleCategory:    finding.CategorySecurity,
		RuleSeverity:    sev,
	}}
}

func (r *HardcodedSecret) Check(f *dockerfile.File, ctx *rules.Context) []finding.Finding {
	var out []finding.Finding

	for _, in := range f.Instructions {
		switch in.Directive {
		case "ENV", "ARG":
			for _, field := range in.Fields() {
				name, value, ok := strings.Cut(field, "=")
				if !ok || unquote(value) == "" {
					continue
				}
				if matchesSecretName(name, ctx.Config.SecretNamePatterns) {
					out = append(out, r.FindingWithDetail(in.Line,
						fmt.Sprintf("%s sets %s to a hardcoded value", in.Directive, name),
						"pass secrets at runtime or use BuildKit secret mounts (--mount=type=secret)"))
				}
			}
		case "COPY", "ADD":
			for _, src := range copySources(in) {
				if pattern := matchesSensitiveFile(src, ctx.Config.SensitiveCopyPatterns); pattern != "" {
					out = append(out, r.FindingWithDetail(in.Line,
						fmt.Sprintf("%s brings sensitive file %q into the image (matches %q)", in.Directive, src, pattern),
						"exclude credential files via .dockerignore and mount them at runtime"))
				}
			}
		}
	}

	return out
}

// matchesSecretName matches the variable name against the configured
// credential patterns, case-insensitively.
func matchesSecretName(name string, patterns []string) bool {
	name = strings.ToLower(name)
	for _, p := range patterns {
		if strings.Contains(name, strings.ToLower(p)) {
			return true
		}
	}
	return false
}

func matchesSensitiveFile(src string, patterns []string) string {
	for _, p := range patterns {
		if strings.Contains(src, p) {
			return p
		}
	}
	return ""
}

// copySources returns the source fields of a COPY/ADD instruction: every
// non-flag field except the destination.
func copySources(in dockerfile.Instruction) []string {
	var paths []string
	for _, field := range in.Fields() {
		if strings.HasPrefix(field, "--") {
			continue
		}
		paths = append(paths, field)
	}
	if len(paths) < 2 {
		return nil
	}
	return paths[:len(paths)-1]
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}
