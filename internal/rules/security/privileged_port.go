package security

import (
	"fmt"

	"github.com/dockvet/dockvet/internal/dockerfile"
	"github.com/dockvet/dockvet/internal/finding"
	"github.com/dockvet/dockvet/internal/rules"
)

// PrivilegedPort flags EXPOSE of ports below 1024, which require root to
// bind and so conflict with running as a non-root user.
type PrivilegedPort struct {
	rules.BaseRule
}

func NewPrivilegedPort(id string, sev finding.Severity) *PrivilegedPort {
	return &PrivilegedPort{BaseRule: rules.BaseRule{
		RuleID:          id,
		RuleName:        "privileged-port",
		RuleDescription: "Ports below 1024 require root privileges to bind; prefer an unprivileged port mapped at runtime.",
		RuleCategory:    finding.CategorySecurity,
		RuleSeverity:    sev,
	}}
}

func (r *PrivilegedPort) Check(f *dockerfile.File, ctx *rules.Context) []finding.Finding {
	var out []finding.Finding
	for _, expose := range f.ByDirective("EXPOSE") {
		for _, field := range expose.Fields() {
			port, ok := rules.ParsePort(field)
			if !ok || port >= 1024 {
				continue
			}
			out = append(out, r.FindingWithDetail(expose.Line,
				fmt.Sprintf("exposes privileged port %d", port),
				fmt.Sprintf("use a port >= 1024 and map it at runtime, e.g. -p %d:8080", port)))
		}
	}
	return out
}
