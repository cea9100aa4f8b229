package probe

import (
	"context"
	"fmt"
)

// Entry pairs a registered probe name with its result.
type Entry struct {
	Name   string      `json:"name"`
	Result CheckResult `json:"result"`
}

// Report is the ordered outcome of one registry run. It always holds exactly
// one entry per registered probe, in registration order.
type Report []Entry

// Healthy reports whether every probe passed.
func (r Report) Healthy() bool {
	for _, e := range r {
		if !e.Result.Passed {
			return false
		}
	}
	return true
}

// Failed counts the probes that did not pass.
func (r Report) Failed() int {
	n := 0
	for _, e := range r {
		if !e.Result.Passed {
			n++
		}
	}
	return n
}

// ExitCode maps the verdict to the orchestrator contract: 0 healthy, 1 not.
func (r Report) ExitCode() int {
	if r.Healthy() {
		return 0
	}
	return 1
}

// Registry holds named probes in registration order.
type Registry struct {
	entries []registered
}

type registered struct {
	name    string
	checker Checker
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (g *Registry) Register(name string, c Checker) {
	g.entries = append(g.entries, registered{name: name, checker: c})
}

func (g *Registry) Len() int {
	return len(g.entries)
}

// Run executes every probe in registration order, synchronously, with no
// retries. A failing probe never skips the ones after it, and a panicking
// probe is recorded as a failure instead of taking the whole run down.
func (g *Registry) Run(ctx context.Context) Report {
	report := make(Report, 0, len(g.entries))
	for _, e := range g.entries {
		report = append(report, Entry{Name: e.name, Result: runContained(ctx, e.checker)})
	}
	return report
}

func runContained(ctx context.Context, c Checker) (result CheckResult) {
	defer func() {
		if rec := recover(); rec != nil {
			result = CheckResult{Message: fmt.Sprintf("probe panicked: %v", rec)}
		}
	}()
	result = c.Check(ctx)
	if result.Message == "" {
		result.Message = "no detail reported"
	}
	return result
}
