// Package engine evaluates a rule catalogue against a parsed Dockerfile.
//
// Evaluation is deterministic: findings are ordered by catalogue declaration
// position, never by completion order, so sequential and parallel runs of
// the same input produce identical reports.
package engine

import (
	"fmt"
	"sync"

	"github.com/dockvet/dockvet/internal/config"
	"github.com/dockvet/dockvet/internal/dockerfile"
	"github.com/dockvet/dockvet/internal/finding"
	"github.com/dockvet/dockvet/internal/rules"
)

// parseRuleID identifies findings that surface tolerant parse notes.
const parseRuleID = "PARSE"

// Engine runs a catalogue's rules over parsed Dockerfiles.
type Engine struct {
	catalogue *rules.Catalogue
	workers   int
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers sets the number of evaluation workers. Values below 2 select
// the sequential path.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// New creates an Engine for the given catalogue.
func New(catalogue *rules.Catalogue, opts ...Option) *Engine {
	e := &Engine{
		catalogue: catalogue,
		workers:   1,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run computes the shared context, evaluates every rule, and aggregates the
// findings into a report. A rule that panics is contained: it contributes a
// single info-level finding naming the rule and the run continues, so one
// broken heuristic cannot blind the others.
func (e *Engine) Run(f *dockerfile.File, cfg *config.Config) *finding.Report {
	ctx := rules.NewContext(f, cfg)

	findings := noteFindings(f)

	rs := e.catalogue.Rules()
	perRule := make([][]finding.Finding, len(rs))

	if e.workers > 1 && len(rs) > 1 {
		e.runParallel(rs, f, ctx, perRule)
	} else {
		for i, r := range rs {
			perRule[i] = checkContained(r, f, ctx)
		}
	}

	for _, fs := range perRule {
		findings = append(findings, fs...)
	}

	return finding.NewReport(f.Name, findings)
}

// runParallel fans rules out over a worker pool. Results land in the slot
// matching the rule's catalogue position, restoring declaration order.
func (e *Engine) runParallel(rs []rules.Rule, f *dockerfile.File, ctx *rules.Context, perRule [][]finding.Finding) {
	workers := e.workers
	if workers > len(rs) {
		workers = len(rs)
	}

	jobs := make(chan int, len(rs))
	for i := range rs {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				perRule[i] = checkContained(rs[i], f, ctx)
			}
		}()
	}
	wg.Wait()
}

// checkContained runs one rule with panic containment.
func checkContained(r rules.Rule, f *dockerfile.File, ctx *rules.Context) (out []finding.Finding) {
	defer func() {
		if v := recover(); v != nil {
			out = []finding.Finding{{
				RuleID:   r.ID(),
				Category: r.Category(),
				Severity: finding.SeverityInfo,
				Message:  fmt.Sprintf("internal error in rule %s: %v", r.ID(), v),
			}}
		}
	}()
	return r.Check(f, ctx)
}

// noteFindings converts tolerant parse notes into low-severity findings so
// malformed input shows up in the report instead of aborting the run.
func noteFindings(f *dockerfile.File) []finding.Finding {
	var out []finding.Finding
	for _, note := range f.Notes {
		out = append(out, finding.Finding{
			RuleID:   parseRuleID,
			Category: finding.CategoryBestPractice,
			Severity: finding.SeverityLow,
			Message:  note.Message,
			Line:     note.Line,
		})
	}
	return out
}
