package report

import (
	"fmt"

	"github.com/dockvet/dockvet/internal/finding"
)

// GitHubReporter emits GitHub Actions workflow commands so findings show up
// as inline annotations on pull requests.
type GitHubReporter struct {
	cfg *Config
}

// Render writes one workflow command per finding.
func (r *GitHubReporter) Render(rep *finding.Report) error {
	w := r.cfg.Writer

	for _, f := range rep.Findings {
		if f.Line > 0 {
			fmt.Fprintf(w, "::%s file=%s,line=%d,title=%s::%s\n",
				githubLevel(f.Severity), rep.Filename, f.Line, f.RuleID, f.Message)
		} else {
			fmt.Fprintf(w, "::%s file=%s,title=%s::%s\n",
				githubLevel(f.Severity), rep.Filename, f.RuleID, f.Message)
		}
	}

	if rep.Total() > 0 {
		fmt.Fprintf(w, "::group::Summary\n")
		fmt.Fprintf(w, "Found %d issue(s) in %s\n", rep.Total(), rep.Filename)
		fmt.Fprintf(w, "::endgroup::\n")
	}

	return nil
}

func githubLevel(s finding.Severity) string {
	switch s {
	case finding.SeverityCritical, finding.SeverityHigh:
		return "error"
	case finding.SeverityMedium:
		return "warning"
	default:
		return "notice"
	}
}
