package probe

import (
	"context"
	"fmt"
	"strings"
	"time"

	goversion "github.com/hashicorp/go-version"
)

// VersionChecker verifies that an external binary is installed and that its
// version banner carries the expected version marker.
type VersionChecker struct {
	Binary  string
	Arg     string // version-reporting argument
	Want    string // expected version substring, e.g. "7.1.2"
	Timeout time.Duration
}

func NewVersionChecker(binary, want string, timeout time.Duration) *VersionChecker {
	return &VersionChecker{Binary: binary, Arg: "-version", Want: want, Timeout: timeout}
}

func (v *VersionChecker) Check(ctx context.Context) CheckResult {
	out, err := runCommand(ctx, v.Timeout, v.Binary, v.Arg)
	if err == errTimedOut {
		return CheckResult{Message: fmt.Sprintf("%s %s timed out after %s", v.Binary, v.Arg, v.Timeout)}
	}
	if err != nil {
		return CheckResult{Message: fmt.Sprintf("could not run %s: %v", v.Binary, err)}
	}
	if out.ExitCode != 0 {
		return CheckResult{Message: fmt.Sprintf("%s exited %d: %s", v.Binary, out.ExitCode, firstLine(out.Stderr))}
	}

	banner := firstLine(out.Stdout)
	if !strings.Contains(banner, v.Want) {
		return CheckResult{Message: fmt.Sprintf("expected version %s, got %q", v.Want, banner)}
	}
	msg := banner
	if ver := bannerVersion(banner); ver != nil {
		msg = fmt.Sprintf("version %s (%s)", ver, banner)
	}
	return CheckResult{Passed: true, Message: msg}
}

// bannerVersion pulls the first token of the banner that parses as a semantic
// version, so "ffmpeg version 7.1.2-static Copyright ..." reports as 7.1.2.
func bannerVersion(banner string) *goversion.Version {
	for _, field := range strings.Fields(banner) {
		if ver, err := goversion.NewVersion(field); err == nil {
			return ver.Core()
		}
	}
	return nil
}

// EncoderChecker asks the media binary whether a named encoder is compiled
// in. Support is signalled purely by exit code; the help text varies between
// builds and is not inspected.
type EncoderChecker struct {
	Binary  string
	Encoder string
	Timeout time.Duration
}

func NewEncoderChecker(binary, encoder string, timeout time.Duration) *EncoderChecker {
	return &EncoderChecker{Binary: binary, Encoder: encoder, Timeout: timeout}
}

func (e *EncoderChecker) Check(ctx context.Context) CheckResult {
	out, err := runCommand(ctx, e.Timeout, e.Binary, "-h", "encoder="+e.Encoder)
	if err == errTimedOut {
		return CheckResult{Message: fmt.Sprintf("%s encoder query timed out after %s", e.Binary, e.Timeout)}
	}
	if err != nil {
		return CheckResult{Message: fmt.Sprintf("could not run %s: %v", e.Binary, err)}
	}
	if out.ExitCode != 0 {
		return CheckResult{Message: fmt.Sprintf("%s encoder not available (exit %d): %s", e.Encoder, out.ExitCode, firstLine(out.Stderr))}
	}
	return CheckResult{Passed: true, Message: fmt.Sprintf("%s encoder available", e.Encoder)}
}
