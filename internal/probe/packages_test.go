package probe

import (
	"context"
	"strings"
	"testing"
	"time"
)

// Stub interpreter: sees ("-c", "import <name>") and fails any name
// containing "missing".
const stubInterpreter = `case "$2" in *missing*) exit 1 ;; esac
exit 0`

func TestPackagesChecker_AllResolve(t *testing.T) {
	stub := writeStub(t, stubInterpreter)
	chk := NewPackagesChecker(stub, []string{"watchdog", "yaml", "mutagen"}, 2*time.Second)

	out := chk.Check(context.Background())
	if !out.Passed {
		t.Fatalf("want pass, got %+v", out)
	}
	if !strings.Contains(out.Message, "3") {
		t.Fatalf("message should count the packages, got %q", out.Message)
	}
}

func TestPackagesChecker_AccumulatesAllMissing(t *testing.T) {
	stub := writeStub(t, stubInterpreter)
	chk := NewPackagesChecker(stub, []string{"missing_one", "yaml", "missing_two"}, 2*time.Second)

	out := chk.Check(context.Background())
	if out.Passed {
		t.Fatalf("want failure, got %+v", out)
	}
	if !strings.Contains(out.Message, "missing_one") || !strings.Contains(out.Message, "missing_two") {
		t.Fatalf("both missing packages must be reported, got %q", out.Message)
	}
}

func TestPackagesChecker_MissingInterpreter(t *testing.T) {
	chk := NewPackagesChecker("/no/such/python", []string{"yaml"}, time.Second)

	out := chk.Check(context.Background())
	if out.Passed {
		t.Fatalf("want failure, got %+v", out)
	}
	if !strings.Contains(out.Message, "yaml") {
		t.Fatalf("message should name the unresolvable package, got %q", out.Message)
	}
}
