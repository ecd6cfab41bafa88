package tap

// ScriptStream is a pre-recorded event sequence implementing Stream. Builder
// methods append events; Replay delivers them, in order, to whatever Handler
// was attached. Child steps hand the attached consumer a nested ScriptStream
// and then replay it before the parent sequence continues, matching the
// strictly ordered delivery of a real line-protocol parser.
type ScriptStream struct {
	handler Handler
	steps   []func()
}

// NewScriptStream returns an empty sub-stream script for use with Child.
func NewScriptStream() *ScriptStream {
	return &ScriptStream{}
}

// Attach registers the consumer's callbacks. The last Handler attached wins.
func (s *ScriptStream) Attach(h Handler) {
	s.handler = h
}

// Replay delivers every recorded event to the attached Handler.
func (s *ScriptStream) Replay() {
	for _, step := range s.steps {
		step()
	}
}

// Version records a protocol version line.
func (s *ScriptStream) Version(v string) *ScriptStream {
	s.steps = append(s.steps, func() {
		if s.handler.Version != nil {
			s.handler.Version(v)
		}
	})
	return s
}

// Plan records a plan line.
func (s *ScriptStream) Plan(p Plan) *ScriptStream {
	s.steps = append(s.steps, func() {
		if s.handler.Plan != nil {
			s.handler.Plan(p)
		}
	})
	return s
}

// Comment records a comment line.
func (s *ScriptStream) Comment(text string) *ScriptStream {
	s.steps = append(s.steps, func() {
		if s.handler.Comment != nil {
			s.handler.Comment(text)
		}
	})
	return s
}

// Extra records non-protocol diagnostic text.
func (s *ScriptStream) Extra(text string) *ScriptStream {
	s.steps = append(s.steps, func() {
		if s.handler.Extra != nil {
			s.handler.Extra(text)
		}
	})
	return s
}

// Bailout records a bail-out line.
func (s *ScriptStream) Bailout(reason string) *ScriptStream {
	s.steps = append(s.steps, func() {
		if s.handler.Bailout != nil {
			s.handler.Bailout(reason)
		}
	})
	return s
}

// Assert records an assertion line.
func (s *ScriptStream) Assert(res Result) *ScriptStream {
	s.steps = append(s.steps, func() {
		if s.handler.Assert != nil {
			s.handler.Assert(res)
		}
	})
	return s
}

// Child records the opening of a nested sub-stream. The child is announced
// first so the consumer can attach, then fully replayed.
func (s *ScriptStream) Child(child *ScriptStream) *ScriptStream {
	s.steps = append(s.steps, func() {
		if s.handler.Child != nil {
			s.handler.Child(child)
		}
		child.Replay()
	})
	return s
}

// Complete records the end of this stream level.
func (s *ScriptStream) Complete(sum FinalSummary) *ScriptStream {
	s.steps = append(s.steps, func() {
		if s.handler.Complete != nil {
			s.handler.Complete(sum)
		}
	})
	return s
}

// Script is an in-memory Parser that replays its recorded sequence when the
// input is ended. Write accepts and discards raw bytes; the script, not the
// byte stream, is the source of events.
type Script struct {
	ScriptStream
	ended bool
}

// NewScript returns an empty root script.
func NewScript() *Script {
	return &Script{}
}

func (p *Script) Write(b []byte) (int, error) {
	return len(b), nil
}

// End replays the recorded sequence once.
func (p *Script) End() error {
	if p.ended {
		return nil
	}
	p.ended = true
	p.Replay()
	return nil
}
