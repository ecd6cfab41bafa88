package reporter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dkoosis/tapreport/pkg/runner"
)

// LiveModel is a bubbletea model showing run progress: a spinner, rolling
// pass/fail/pending tallies, and the test currently in flight. It consumes
// runner events from a channel; close the channel (or emit end) to let the
// program finish.
type LiveModel struct {
	events  <-chan runner.Event
	theme   Theme
	spinner spinner.Model

	stats   Stats
	current string // full title of the test in flight
	failed  []string
	done    bool
}

// NewLiveModel creates a live progress model fed by events.
func NewLiveModel(events <-chan runner.Event, theme Theme) LiveModel {
	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = theme.Pending
	return LiveModel{events: events, theme: theme, spinner: sp}
}

// RunLive drives a LiveModel in a terminal program until the run ends.
func RunLive(events <-chan runner.Event, theme Theme) (Stats, error) {
	program := tea.NewProgram(NewLiveModel(events, theme))
	final, err := program.Run()
	if err != nil {
		return Stats{}, fmt.Errorf("running live reporter: %w", err)
	}
	return final.(LiveModel).stats, nil
}

type liveEventMsg runner.Event
type liveDoneMsg struct{}

func (m LiveModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.nextEvent())
}

func (m LiveModel) nextEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return liveDoneMsg{}
		}
		return liveEventMsg(ev)
	}
}

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case liveEventMsg:
		m.apply(runner.Event(msg))
		if m.done {
			return m, tea.Quit
		}
		return m, m.nextEvent()

	case liveDoneMsg:
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m *LiveModel) apply(ev runner.Event) {
	m.stats.Observe(ev)
	switch ev.Kind {
	case runner.EventTest:
		m.current = ev.Test.FullTitle()
	case runner.EventFail:
		m.failed = append(m.failed, ev.Test.FullTitle())
	case runner.EventTestEnd:
		m.current = ""
	case runner.EventEnd:
		m.done = true
	}
}

func (m LiveModel) View() string {
	th := m.theme
	var sb strings.Builder

	tally := fmt.Sprintf("%s %s  %s  %s",
		th.Success.Render(fmt.Sprintf("%s %d", th.Icons.Pass, m.stats.Passes)),
		th.Failure.Render(fmt.Sprintf("%s %d", th.Icons.Fail, m.stats.Failures)),
		th.Pending.Render(fmt.Sprintf("%s %d", th.Icons.Pending, m.stats.Pending)),
		th.Muted.Render(fmt.Sprintf("%d suites", m.stats.Suites)))

	if m.done {
		sb.WriteString(tally + "\n")
		for _, name := range m.failed {
			sb.WriteString("  " + th.Failure.Render(th.Icons.Fail+" "+name) + "\n")
		}
		return sb.String()
	}

	sb.WriteString(m.spinner.View() + " " + tally + "\n")
	if m.current != "" {
		sb.WriteString("  " + th.Muted.Render(th.Icons.Bullet+" "+truncate(m.current, 70)) + "\n")
	}
	return sb.String()
}
