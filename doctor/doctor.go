// Package doctor runs preflight diagnostic checks against the AWS APIs
// the sync depends on, so credential or permission problems surface
// before a scheduled run fails half-way.
package doctor

import "context"

// Status is the outcome class of one check.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Result is the outcome of running a check.
type Result struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message"`
}

// Check is a single diagnostic probe.
type Check interface {
	Name() string
	Run(ctx context.Context) Result
}

// RunAll executes checks in order and collects their results.
func RunAll(ctx context.Context, checks []Check) []Result {
	results := make([]Result, len(checks))
	for i, check := range checks {
		results[i] = check.Run(ctx)
	}
	return results
}

// HasFailures reports whether any result failed.
func HasFailures(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFail {
			return true
		}
	}
	return false
}
