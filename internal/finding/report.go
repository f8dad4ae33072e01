package finding

// Report holds the findings of one analysis run in catalogue-declaration
// order, plus per-severity counts.
type Report struct {
	Filename string
	Findings []Finding
	counts   map[Severity]int
}

// NewReport builds a report from an ordered finding list. Counts are a pure
// reduce over the list; nothing mutates a report after construction.
func NewReport(filename string, findings []Finding) *Report {
	counts := make(map[Severity]int, len(Severities))
	for _, f := range findings {
		counts[f.Severity]++
	}
	return &Report{
		Filename: filename,
		Findings: findings,
		counts:   counts,
	}
}

// Count returns the number of findings at the given severity.
func (r *Report) Count(s Severity) int {
	return r.counts[s]
}

// Total returns the total number of findings.
func (r *Report) Total() int {
	return len(r.Findings)
}

// ByCategory returns findings of the given category, preserving order.
func (r *Report) ByCategory(c Category) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Category == c {
			out = append(out, f)
		}
	}
	return out
}
