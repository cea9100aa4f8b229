package probe

import (
	"context"
	"fmt"
	"time"

	"github.com/hashicorp/go-multierror"
)

// PackagesChecker verifies that every Python package the converter imports at
// runtime resolves under the container's interpreter. Like PathsChecker it
// accumulates all unresolvable names instead of stopping at the first.
type PackagesChecker struct {
	Interpreter string
	Packages    []string
	Timeout     time.Duration
}

func NewPackagesChecker(interpreter string, packages []string, timeout time.Duration) *PackagesChecker {
	return &PackagesChecker{Interpreter: interpreter, Packages: packages, Timeout: timeout}
}

func (p *PackagesChecker) Check(ctx context.Context) CheckResult {
	var errs *multierror.Error
	for _, pkg := range p.Packages {
		out, err := runCommand(ctx, p.Timeout, p.Interpreter, "-c", "import "+pkg)
		switch {
		case err == errTimedOut:
			errs = multierror.Append(errs, fmt.Errorf("import %s timed out", pkg))
		case err != nil:
			errs = multierror.Append(errs, fmt.Errorf("%s: %v", pkg, err))
		case out.ExitCode != 0:
			errs = multierror.Append(errs, fmt.Errorf("%s not installed", pkg))
		}
	}
	if errs != nil {
		errs.ErrorFormat = flatFormat
		return CheckResult{Message: errs.Error()}
	}
	return CheckResult{Passed: true, Message: fmt.Sprintf("all %d packages available", len(p.Packages))}
}
