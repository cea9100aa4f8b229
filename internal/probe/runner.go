package probe

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds every external command a probe spawns.
const DefaultTimeout = 10 * time.Second

// errTimedOut distinguishes a hung command from one that exited non-zero.
var errTimedOut = errors.New("command timed out")

type cmdOutput struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// runCommand executes name with args under a wall-clock timeout. The child is
// killed and reaped when the deadline passes and the call returns errTimedOut;
// a spawn failure returns the underlying error. A non-zero exit is not an
// error here — callers decide what the exit code means.
func runCommand(ctx context.Context, timeout time.Duration, name string, args ...string) (cmdOutput, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(cctx, name, args...)
	// CommandContext only kills the direct child. A grandchild that inherited
	// the stdout/stderr pipes keeps them open, and Wait would block on them
	// past the deadline; WaitDelay forces the pipes closed instead.
	cmd.WaitDelay = time.Second
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := cmdOutput{Stdout: stdout.String(), Stderr: stderr.String()}

	if cctx.Err() == context.DeadlineExceeded {
		return out, errTimedOut
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.ExitCode = exitErr.ExitCode()
			return out, nil
		}
		return out, err
	}
	return out, nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
