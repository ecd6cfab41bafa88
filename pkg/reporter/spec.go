package reporter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dkoosis/tapreport/pkg/runner"
)

// DefaultSlowThreshold marks tests whose duration deserves a callout.
const DefaultSlowThreshold = 75 * time.Millisecond

// SpecConfig configures the spec-style reporter.
type SpecConfig struct {
	Theme    Theme
	Slow     time.Duration // durations above this are flagged; 0 = default
	Humanize bool          // humanize machine-shaped test titles
	Width    int           // output width in cells; 0 = auto-detect
}

// Spec renders runner events as an indented spec-style tree: suite titles,
// one line per finished test, and an epilogue with counts and failure
// details. Feed it events via Handle, in emission order.
type Spec struct {
	w   io.Writer
	cfg SpecConfig

	stats    Stats
	depth    int
	failures []specFailure
}

type specFailure struct {
	test *runner.Test
	err  *runner.TestError
}

// NewSpec creates a spec reporter writing to w.
func NewSpec(w io.Writer, cfg SpecConfig) *Spec {
	if cfg.Slow <= 0 {
		cfg.Slow = DefaultSlowThreshold
	}
	if cfg.Width <= 0 {
		cfg.Width = terminalWidth(w)
	}
	return &Spec{w: w, cfg: cfg}
}

// Stats returns the counters accumulated so far.
func (r *Spec) Stats() Stats {
	return r.stats
}

// Handle consumes one runner event. It is the intended Subscribe target.
func (r *Spec) Handle(ev runner.Event) {
	r.stats.Observe(ev)
	th := r.cfg.Theme

	switch ev.Kind {
	case runner.EventStart:
		fmt.Fprintln(r.w)

	case runner.EventSuite:
		fmt.Fprintf(r.w, "%s%s\n", r.indent(), th.Title.Render(r.title(ev.Suite.Title)))
		r.depth++

	case runner.EventSuiteEnd:
		if r.depth > 0 {
			r.depth--
		}

	case runner.EventPass:
		line := th.Success.Render(th.Icons.Pass) + " " + th.Muted.Render(r.title(ev.Test.Title))
		if ev.Test.Duration > r.cfg.Slow {
			line += th.Failure.Render(fmt.Sprintf(" (%dms)", ev.Test.Duration.Milliseconds()))
		}
		r.printLine(line)

	case runner.EventFail:
		r.failures = append(r.failures, specFailure{test: ev.Test, err: ev.Err})
		line := th.Failure.Render(fmt.Sprintf("%s %d) %s",
			th.Icons.Fail, len(r.failures), r.title(ev.Test.Title)))
		r.printLine(line)

	case runner.EventPending:
		line := th.Pending.Render(th.Icons.Pending + " " + r.title(ev.Test.Title))
		r.printLine(line)

	case runner.EventBailout:
		r.printLine(th.Failure.Render("Bail out! " + strings.TrimSpace(ev.Text)))

	case runner.EventEnd:
		r.epilogue()
	}
}

func (r *Spec) indent() string {
	return strings.Repeat("  ", r.depth+1)
}

func (r *Spec) title(s string) string {
	s = strings.TrimSpace(s)
	if r.cfg.Humanize {
		s = humanizeTitle(s)
	}
	return s
}

func (r *Spec) printLine(line string) {
	fmt.Fprintf(r.w, "%s%s\n", r.indent(), truncate(line, r.cfg.Width))
}

// epilogue prints the run summary and per-failure detail.
func (r *Spec) epilogue() {
	th := r.cfg.Theme

	fmt.Fprintln(r.w)
	fmt.Fprintf(r.w, "  %s\n", th.Success.Render(
		fmt.Sprintf("%d passing (%s)", r.stats.Passes, formatDuration(r.stats.Duration))))
	if r.stats.Pending > 0 {
		fmt.Fprintf(r.w, "  %s\n", th.Pending.Render(fmt.Sprintf("%d pending", r.stats.Pending)))
	}
	if r.stats.Failures > 0 {
		fmt.Fprintf(r.w, "  %s\n", th.Failure.Render(fmt.Sprintf("%d failing", r.stats.Failures)))
	}
	fmt.Fprintln(r.w)

	for i, f := range r.failures {
		fmt.Fprintf(r.w, "  %d) %s:\n", i+1, f.test.FullTitle())
		if f.err == nil {
			continue
		}
		fmt.Fprintf(r.w, "     %s\n", th.Failure.Render("Error: "+f.err.Message))
		if f.err.ShowDiff {
			fmt.Fprintf(r.w, "     %s\n", th.Muted.Render(
				fmt.Sprintf("expected: %v, actual: %v", f.err.Expected, f.err.Actual)))
		}
		if f.err.Stack != "" {
			for _, line := range strings.Split(f.err.Stack, "\n") {
				fmt.Fprintf(r.w, "      %s\n", th.Muted.Render(line))
			}
		}
		fmt.Fprintln(r.w)
	}
}

// formatDuration renders d the way a human scans an epilogue: milliseconds
// below two seconds, otherwise seconds with one decimal.
func formatDuration(d time.Duration) string {
	if d < 2*time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
