package bestpractice

import (
	"fmt"
	"strings"

	"github.com/dockvet/dockvet/internal/dockerfile"
	"github.com/dockvet/dockvet/internal/finding"
	"github.com/dockvet/dockvet/internal/rules"
)

var installPrefixes = []string{
	"apt-get install", "apt install", "apk add", "yum install", "dnf install",
}

// UnnecessaryPackages flags installs of packages from the configured
// blocklist (editors, download tools, debug utilities). The list is
// operator-extensible via config, not baked into code.
type UnnecessaryPackages struct {
	rules.BaseRule
}

func NewUnnecessaryPackages(id string, sev finding.Severity) *UnnecessaryPackages {
	return &UnnecessaryPackages{BaseRule: rules.BaseRule{
		RuleID:          id,
		RuleName:        "unnecessary-packages",
		RuleDescription: "Editors and debug tools in a production image widen the attack surface and add weight.",
		RuleCategory:    finding.CategoryBestPractice,
		RuleSeverity:    sev,
	}}
}

func (r *UnnecessaryPackages) Check(f *dockerfile.File, ctx *rules.Context) []finding.Finding {
	var out []finding.Finding
	for _, run := range f.ByDirective("RUN") {
		if !isInstallCommand(run.Args) {
			continue
		}
		matched := matchPackages(run.Args, ctx.Config.UnnecessaryPackages)
		if len(matched) == 0 {
			continue
		}
		out = append(out, r.FindingWithDetail(run.Line,
			fmt.Sprintf("installs unnecessary packages: %s", strings.Join(matched, " ")),
			"drop them, or install in a build stage that is not shipped"))
	}
	return out
}

func isInstallCommand(cmd string) bool {
	for _, p := range installPrefixes {
		if strings.Contains(cmd, p) {
			return true
		}
	}
	return false
}

// matchPackages returns blocklisted packages appearing as standalone words
// in the command, in blocklist order for deterministic messages.
func matchPackages(cmd string, blocklist []string) []string {
	words := make(map[string]bool)
	for _, w := range strings.Fields(cmd) {
		words[w] = true
	}
	var matched []string
	for _, pkg := range blocklist {
		if words[pkg] {
			matched = append(matched, pkg)
		}
	}
	return matched
}
