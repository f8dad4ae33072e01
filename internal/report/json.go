package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dockvet/dockvet/internal/finding"
)

// JSONReporter renders the machine-readable report form.
type JSONReporter struct {
	cfg *Config
}

// JSONOutput is the serialized report.
type JSONOutput struct {
	Filename string         `json:"filename"`
	Findings []JSONFinding  `json:"findings"`
	Summary  map[string]int `json:"summary"`
	Total    int            `json:"total"`
}

// JSONFinding is one serialized finding.
type JSONFinding struct {
	Rule     string `json:"rule"`
	Category string `json:"category"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     int    `json:"line,omitempty"`
	Detail   string `json:"detail,omitempty"`
}

// Render writes the report as indented JSON.
func (r *JSONReporter) Render(rep *finding.Report) error {
	out := JSONOutput{
		Filename: rep.Filename,
		Findings: make([]JSONFinding, 0, rep.Total()),
		Summary:  make(map[string]int),
		Total:    rep.Total(),
	}

	for _, s := range finding.Severities {
		if c := rep.Count(s); c > 0 {
			out.Summary[s.String()] = c
		}
	}

	for _, f := range rep.Findings {
		out.Findings = append(out.Findings, JSONFinding{
			Rule:     f.RuleID,
			Category: string(f.Category),
			Severity: f.Severity.String(),
			Message:  f.Message,
			Line:     f.Line,
			Detail:   f.Detail,
		})
	}

	enc := json.NewEncoder(r.cfg.Writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// DecodeJSON reads the machine-readable form back into a report. Findings
// and counts round-trip exactly; counts are re-derived from the finding
// list, which the summary mirrors.
func DecodeJSON(r io.Reader) (*finding.Report, error) {
	var out JSONOutput
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode report: %w", err)
	}

	findings := make([]finding.Finding, 0, len(out.Findings))
	for _, jf := range out.Findings {
		sev, err := finding.ParseSeverity(jf.Severity)
		if err != nil {
			return nil, fmt.Errorf("decode report: %w", err)
		}
		findings = append(findings, finding.Finding{
			RuleID:   jf.Rule,
			Category: finding.Category(jf.Category),
			Severity: sev,
			Message:  jf.Message,
			Line:     jf.Line,
			Detail:   jf.Detail,
		})
	}

	return finding.NewReport(out.Filename, findings), nil
}
