package runner

import "github.com/dkoosis/tapreport/pkg/tap"

// EventKind identifies one lifecycle or pass-through event.
type EventKind int

const (
	EventStart EventKind = iota
	EventVersion
	EventSuite
	EventTest
	EventPending
	EventPass
	EventFail
	EventTestEnd
	EventSuiteEnd
	EventEnd

	// Pass-through structural events from the protocol parser.
	EventPlan
	EventComment
	EventExtra
	EventBailout

	// Generic stream lifecycle, proxied as-is.
	EventPipe
	EventPrefinish
	EventFinish
	EventUnpipe
	EventClose
)

var eventKindNames = map[EventKind]string{
	EventStart:     "start",
	EventVersion:   "version",
	EventSuite:     "suite",
	EventTest:      "test",
	EventPending:   "pending",
	EventPass:      "pass",
	EventFail:      "fail",
	EventTestEnd:   "test end",
	EventSuiteEnd:  "suite end",
	EventEnd:       "end",
	EventPlan:      "plan",
	EventComment:   "comment",
	EventExtra:     "extra",
	EventBailout:   "bailout",
	EventPipe:      "pipe",
	EventPrefinish: "prefinish",
	EventFinish:    "finish",
	EventUnpipe:    "unpipe",
	EventClose:     "close",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Event is a single emission from the Runner. Only the fields implied by
// Kind are populated: Suite for suite events, Test for the test lifecycle
// (plus Err on failures), Version/Plan/Text for the pass-through structural
// events, and Arg for pipe/unpipe sources.
type Event struct {
	Kind    EventKind
	Suite   *Suite
	Test    *Test
	Err     *TestError
	Version string
	Plan    tap.Plan
	Text    string
	Arg     any
}
