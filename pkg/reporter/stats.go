package reporter

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/tapreport/pkg/runner"
)

// Stats accumulates lifecycle counts across a run.
type Stats struct {
	Suites   int
	Tests    int
	Passes   int
	Failures int
	Pending  int
	Duration time.Duration

	start time.Time
}

// Observe updates the counters for one event.
func (s *Stats) Observe(ev runner.Event) {
	switch ev.Kind {
	case runner.EventStart:
		s.start = time.Now()
	case runner.EventSuite:
		s.Suites++
	case runner.EventTest:
		s.Tests++
	case runner.EventPass:
		s.Passes++
	case runner.EventFail:
		s.Failures++
	case runner.EventPending:
		s.Pending++
	case runner.EventEnd:
		if !s.start.IsZero() {
			s.Duration = time.Since(s.start)
		}
	}
}

// OK reports whether the run had no failures.
func (s *Stats) OK() bool {
	return s.Failures == 0
}

var titleCaser = cases.Title(language.English)

// humanizeTitle turns machine-shaped test names ("parses_empty_input") into
// readable titles ("Parses Empty Input"). Names that already contain spaces
// are left alone apart from casing.
func humanizeTitle(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "_", " "))
}
