// Package runner translates the protocol parser's structural events into the
// flat lifecycle vocabulary a conventional test reporter consumes: start,
// suite, test, pending/pass/fail, test end, suite end, end. Nested
// sub-streams are tracked by a tree of per-level state machines that infer
// suites lazily and suppress the protocol's trailing group markers.
package runner

import (
	"io"

	"github.com/dkoosis/tapreport/pkg/tap"
)

// Runner is the translator facade. It owns the root group, forwards raw
// input to the parser, and republishes every event to subscribers in the
// order it occurred. All emission is synchronous; subscribers run on the
// caller's goroutine.
type Runner struct {
	parser  tap.Parser
	root    *group
	started bool
	subs    []func(Event)
	errOut  io.Writer
}

// New wires a Runner to the given parser and attaches the full event set,
// recursively re-attaching as child sub-streams are announced.
func New(parser tap.Parser) *Runner {
	r := &Runner{parser: parser, errOut: io.Discard}
	r.root = &group{r: r}
	r.attach(parser, r.root)
	return r
}

// Subscribe registers fn to receive every emitted event. Subscribers are
// invoked in registration order.
func (r *Runner) Subscribe(fn func(Event)) {
	r.subs = append(r.subs, fn)
}

// SetErrOutput directs bail-out reasons and extra diagnostic text to w,
// verbatim, in addition to the corresponding events. Defaults to io.Discard.
func (r *Runner) SetErrOutput(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	r.errOut = w
}

// Write forwards raw protocol bytes to the parser, emitting the one-time
// start event before the first chunk. The return values are the parser's
// backpressure signal, passed through unchanged.
func (r *Runner) Write(p []byte) (int, error) {
	r.start()
	return r.parser.Write(p)
}

// End signals end-of-input to the parser. The terminal end event follows
// from the root group's completion, not from End itself.
func (r *Runner) End() error {
	r.start()
	return r.parser.End()
}

func (r *Runner) start() {
	if r.started {
		return
	}
	r.started = true
	r.emit(Event{Kind: EventStart})
}

func (r *Runner) emit(ev Event) {
	for _, fn := range r.subs {
		fn(ev)
	}
}

// attach wires one stream level to its group. Child streams are attached
// recursively with a fresh group one level deeper.
func (r *Runner) attach(s tap.Stream, g *group) {
	h := tap.Handler{
		Plan: func(p tap.Plan) {
			r.emit(Event{Kind: EventPlan, Plan: p})
		},
		Comment: func(text string) {
			g.onComment(text)
			r.emit(Event{Kind: EventComment, Text: text})
		},
		Extra: func(text string) {
			_, _ = io.WriteString(r.errOut, text)
			r.emit(Event{Kind: EventExtra, Text: text})
		},
		Bailout: func(reason string) {
			_, _ = io.WriteString(r.errOut, reason)
			r.emit(Event{Kind: EventBailout, Text: reason})
		},
		Assert:   g.onAssert,
		Child:    g.onChild,
		Complete: g.onComplete,

		Prefinish: func() { r.emit(Event{Kind: EventPrefinish}) },
		Finish:    func() { r.emit(Event{Kind: EventFinish}) },
		Close:     func() { r.emit(Event{Kind: EventClose}) },
		Pipe:      func(src any) { r.emit(Event{Kind: EventPipe, Arg: src}) },
		Unpipe:    func(src any) { r.emit(Event{Kind: EventUnpipe, Arg: src}) },
	}

	// The protocol version is only meaningful at the top level.
	if g.parent == nil {
		h.Version = func(v string) {
			r.emit(Event{Kind: EventVersion, Version: v})
		}
	}

	s.Attach(h)
}
