package reporter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/tapreport/pkg/runner"
	"github.com/dkoosis/tapreport/pkg/tap"
)

// collectEvents runs the script through a Runner and returns every event.
func collectEvents(t *testing.T, script *tap.Script) []runner.Event {
	t.Helper()
	var events []runner.Event
	r := runner.New(script)
	r.Subscribe(func(ev runner.Event) { events = append(events, ev) })
	require.NoError(t, r.End())
	return events
}

func TestLiveModel_TracksRun(t *testing.T) {
	script := tap.NewScript()
	script.Assert(tap.Result{Name: "first", OK: true, Number: 1}).
		Assert(tap.Result{Name: "second", OK: false, Number: 2}).
		Complete(tap.FinalSummary{OK: false})

	events := collectEvents(t, script)

	m := NewLiveModel(nil, MonoTheme())
	var quit bool
	for _, ev := range events {
		updated, cmd := m.Update(liveEventMsg(ev))
		m = updated.(LiveModel)
		if ev.Kind == runner.EventTest {
			assert.Contains(t, m.View(), ev.Test.Title)
		}
		if ev.Kind == runner.EventEnd {
			quit = cmd != nil
		}
	}

	assert.True(t, quit, "end event should quit the program")

	view := m.View()
	assert.Contains(t, view, "+ 1")
	assert.Contains(t, view, "x 1")
	assert.Contains(t, view, "second", "failed test listed in final view")
	assert.False(t, strings.Contains(view, "first"), "passing test not listed in final view")
}

func TestLiveModel_ChannelCloseQuits(t *testing.T) {
	ch := make(chan runner.Event)
	close(ch)

	m := NewLiveModel(ch, MonoTheme())
	msg := m.Init()
	require.NotNil(t, msg)

	_, cmd := m.Update(liveDoneMsg{})
	assert.NotNil(t, cmd, "done message should quit")
}
