package runner

import (
	"strings"
	"time"

	"github.com/dkoosis/tapreport/pkg/tap"
)

// Test is the object-model record for one non-suppressed result line.
type Test struct {
	Result   tap.Result
	Title    string
	Duration time.Duration
	Suite    *Suite // owning suite, nil for top-level tests

	group *group
}

func newTest(res tap.Result, g *group) *Test {
	return &Test{
		Result:   res,
		Title:    res.Name,
		Duration: time.Duration(res.Time * float64(time.Millisecond)),
		Suite:    g.suite,
		group:    g,
	}
}

// FullTitle joins the enclosing group names and the test title with spaces.
func (t *Test) FullTitle() string {
	title := strings.TrimSpace(t.Title)
	if t.group == nil {
		return title
	}
	return joinTitles(t.group.fullName(), title)
}

// Pending reports whether the underlying result was skip- or todo-flagged.
func (t *Test) Pending() bool {
	return t.Result.Skip || t.Result.Todo
}
