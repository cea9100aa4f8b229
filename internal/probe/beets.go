package probe

import (
	"context"
	"fmt"
	"time"
)

// BeetsChecker runs the tagging tool's own version command. Any non-zero exit
// fails with the captured stderr. The secondary config listing is best-effort
// diagnostics appended to the success message; it can never flip pass/fail.
type BeetsChecker struct {
	Binary  string
	Timeout time.Duration
}

func NewBeetsChecker(binary string, timeout time.Duration) *BeetsChecker {
	return &BeetsChecker{Binary: binary, Timeout: timeout}
}

func (b *BeetsChecker) Check(ctx context.Context) CheckResult {
	out, err := runCommand(ctx, b.Timeout, b.Binary, "--version")
	if err == errTimedOut {
		return CheckResult{Message: fmt.Sprintf("%s --version timed out after %s", b.Binary, b.Timeout)}
	}
	if err != nil {
		return CheckResult{Message: fmt.Sprintf("could not run %s: %v", b.Binary, err)}
	}
	if out.ExitCode != 0 {
		return CheckResult{Message: fmt.Sprintf("%s --version exited %d: %s", b.Binary, out.ExitCode, firstLine(out.Stderr))}
	}

	msg := firstLine(out.Stdout)
	if msg == "" {
		msg = b.Binary + " available"
	}
	if cfg, cerr := runCommand(ctx, b.Timeout, b.Binary, "config", "-p"); cerr == nil && cfg.ExitCode == 0 {
		if path := firstLine(cfg.Stdout); path != "" {
			msg = fmt.Sprintf("%s (config: %s)", msg, path)
		}
	}
	return CheckResult{Passed: true, Message: msg}
}
