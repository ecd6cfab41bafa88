package runner

import (
	"strings"

	"github.com/dkoosis/tapreport/pkg/tap"
)

// subtestMarker is the comment form that names a nested group. The marker is
// case-sensitive with exactly one space after the colon.
const subtestMarker = "# Subtest: "

// group tracks translator state for one nesting level of the protocol. The
// root group has no parent and is created with the Runner; every other group
// is created when its sub-stream opens. Parent references are navigational
// only; ownership flows strictly downward.
type group struct {
	r      *Runner
	parent *group

	name      string // inferred from the subtest comment, mutable until announced
	announced bool   // a Suite has been emitted for this group
	recorded  bool   // a result has been observed at or below this level
	doing     *group // in-progress child, at most one at a time
	suite     *Suite // set when announced
}

// fullName joins the ancestor group names with spaces.
func (g *group) fullName() string {
	name := strings.TrimSpace(g.name)
	if g.parent == nil {
		return name
	}
	return joinTitles(g.parent.fullName(), name)
}

// onComment captures the group name from the subtest announcement. The first
// match wins; later matches and anything after announcement are ignored.
func (g *group) onComment(text string) {
	if g.announced || g.name != "" {
		return
	}
	line := strings.TrimRight(text, "\r\n")
	if rest, ok := strings.CutPrefix(line, subtestMarker); ok {
		g.name = strings.TrimSpace(rest)
	}
}

// onChild handles a nested sub-stream opening under this group. A group that
// contains a child always has at least one result pending (the child's
// trailing marker), so the suite is announced immediately.
func (g *group) onChild(s tap.Stream) {
	child := &group{r: g.r, parent: g}
	g.r.attach(s, child)

	g.announce()
	g.recorded = true
	g.doing = child
}

// onAssert handles one result line at this level.
func (g *group) onAssert(res tap.Result) {
	g.announce()

	// The protocol closes a nested group with a trailing result at the
	// parent level repeating the group's name. That line was already
	// reported as the child's suite; consume it silently. Matching is by
	// name only, so duplicate sibling names can mis-suppress (see DESIGN.md).
	if d := g.doing; d != nil && d.recorded && d.name == res.Name {
		g.doing = nil
		return
	}

	g.recorded = true
	g.doing = nil
	g.emitTest(res)
}

// onComplete handles this level's sub-stream finishing. Only the root's
// completion ends the run; nested completions close their suite if one was
// announced.
func (g *group) onComplete(tap.FinalSummary) {
	if g.suite != nil {
		g.r.emit(Event{Kind: EventSuiteEnd, Suite: g.suite})
	}
	if g.parent == nil {
		g.r.emit(Event{Kind: EventEnd})
	}
}

// announce materializes the Suite for this group and emits the suite event.
// No-op for the root (top-level tests are never wrapped in a suite), for
// unnamed groups, and for groups already announced.
func (g *group) announce() {
	if g.announced || g.parent == nil || g.name == "" {
		return
	}
	g.announced = true

	s := &Suite{Title: g.name}
	if g.parent.suite != nil {
		s.Parent = g.parent.suite
		g.parent.suite.Suites = append(g.parent.suite.Suites, s)
	}
	g.suite = s
	g.r.emit(Event{Kind: EventSuite, Suite: s})
}

// emitTest runs the fixed test lifecycle for one non-suppressed result:
// test, then exactly one of pending/pass/fail, then test end.
func (g *group) emitTest(res tap.Result) {
	t := newTest(res, g)
	if g.suite != nil {
		g.suite.Tests = append(g.suite.Tests, t)
	}

	g.r.emit(Event{Kind: EventTest, Test: t})
	switch {
	case res.Skip || res.Todo:
		g.r.emit(Event{Kind: EventPending, Test: t})
	case res.OK:
		g.r.emit(Event{Kind: EventPass, Test: t})
	default:
		g.r.emit(Event{Kind: EventFail, Test: t, Err: synthesizeError(res)})
	}
	g.r.emit(Event{Kind: EventTestEnd, Test: t})
}
