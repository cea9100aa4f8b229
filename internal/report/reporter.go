package report

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/audiobookforge/healthcheck/internal/probe"
)

const (
	glyphPass = "✔"
	glyphFail = "✖"
	ansiGreen = "\x1b[32m"
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// Reporter renders an aggregate report as plain lines. Color is cosmetic:
// glyphs and summary wording stay identical either way, so orchestrator-side
// log parsing never depends on the terminal.
type Reporter struct {
	Out   io.Writer
	Color bool
}

// New returns a Reporter for w, enabling color only when w is a terminal and
// NO_COLOR is unset.
func New(w io.Writer) *Reporter {
	color := false
	if f, ok := w.(*os.File); ok {
		color = os.Getenv("NO_COLOR") == "" && isatty.IsTerminal(f.Fd())
	}
	return &Reporter{Out: w, Color: color}
}

// Render prints the header, one line per probe in registration order, a blank
// line, and the summary verdict. It is a pure presentation transform: results
// are never re-evaluated or mutated.
func (r *Reporter) Render(rep probe.Report) {
	fmt.Fprintln(r.Out, "Audiobook converter health check")
	for _, e := range rep {
		fmt.Fprintf(r.Out, "%s %s: %s\n", r.glyph(e.Result.Passed), e.Name, e.Result.Message)
	}
	fmt.Fprintln(r.Out)
	if rep.Healthy() {
		fmt.Fprintf(r.Out, "%s all %d checks passed\n", r.glyph(true), len(rep))
	} else {
		fmt.Fprintf(r.Out, "%s %d of %d checks failed\n", r.glyph(false), rep.Failed(), len(rep))
	}
}

func (r *Reporter) glyph(passed bool) string {
	switch {
	case passed && r.Color:
		return ansiGreen + glyphPass + ansiReset
	case passed:
		return glyphPass
	case r.Color:
		return ansiRed + glyphFail + ansiReset
	default:
		return glyphFail
	}
}
