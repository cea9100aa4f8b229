package probe

import "context"

// CheckResult holds the outcome of a single probe. Message is always set: it
// carries the success detail (version banner, elapsed seconds) or the failure
// cause (missing paths, timeout, captured stderr).
type CheckResult struct {
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// Checker is implemented by any health check (binary version, encoder
// support, mounted paths, package resolution, log recency). A Checker must
// never let a fault escape Check: every internal error is converted into a
// failing CheckResult.
type Checker interface {
	Check(ctx context.Context) CheckResult
}
