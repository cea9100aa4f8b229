package probe

import (
	"context"
	"fmt"
	"os"
	"time"
)

// LogFreshnessChecker treats a recently written converter log as evidence the
// service is alive and processing. This is the only probe whose outcome
// depends on the wall clock rather than static environment inspection.
type LogFreshnessChecker struct {
	Path   string
	MaxAge time.Duration
}

func NewLogFreshnessChecker(path string, maxAge time.Duration) *LogFreshnessChecker {
	return &LogFreshnessChecker{Path: path, MaxAge: maxAge}
}

func (l *LogFreshnessChecker) Check(ctx context.Context) CheckResult {
	info, err := os.Stat(l.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return CheckResult{Message: fmt.Sprintf("log file %s not found", l.Path)}
		}
		return CheckResult{Message: fmt.Sprintf("log file %s: %v", l.Path, err)}
	}

	age := time.Since(info.ModTime())
	if age < l.MaxAge {
		return CheckResult{Passed: true, Message: fmt.Sprintf("log updated %d seconds ago", int(age.Seconds()))}
	}
	return CheckResult{Message: fmt.Sprintf("log last updated %d minutes ago", int(age.Minutes()))}
}
