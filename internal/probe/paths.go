package probe

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/sys/unix"
)

// PathMount pairs a required path with the human label used in messages.
type PathMount struct {
	Path  string
	Label string
}

// PathsChecker verifies every required mount exists and is read+write
// accessible. All broken paths are reported together so an operator sees the
// complete set of bad mounts in one run, not just the first.
type PathsChecker struct {
	Mounts []PathMount
}

func NewPathsChecker(mounts []PathMount) *PathsChecker {
	return &PathsChecker{Mounts: mounts}
}

func (p *PathsChecker) Check(ctx context.Context) CheckResult {
	var errs *multierror.Error
	for _, m := range p.Mounts {
		if _, err := os.Stat(m.Path); err != nil {
			if os.IsNotExist(err) {
				errs = multierror.Append(errs, fmt.Errorf("%s %s does not exist", m.Label, m.Path))
			} else {
				errs = multierror.Append(errs, fmt.Errorf("%s %s: %v", m.Label, m.Path, err))
			}
			continue
		}
		if err := unix.Access(m.Path, unix.R_OK|unix.W_OK); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s %s is not read/write accessible: %v", m.Label, m.Path, err))
		}
	}
	if errs != nil {
		errs.ErrorFormat = flatFormat
		return CheckResult{Message: errs.Error()}
	}
	return CheckResult{Passed: true, Message: fmt.Sprintf("all %d directories accessible", len(p.Mounts))}
}

// flatFormat keeps accumulated failures on one report line.
func flatFormat(es []error) string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d problems: %s", len(es), strings.Join(msgs, "; "))
}
