// Package tap defines the boundary to the line-protocol parser that feeds
// the translator. The parser itself is an external collaborator; this package
// only describes the event surface one parser level exposes, the records it
// delivers, and a scripted in-memory implementation for embedding and tests.
package tap

// Result is a single assertion line as delivered by the protocol parser.
type Result struct {
	Name   string
	OK     bool
	Number int
	Skip   bool
	Todo   bool
	Time   float64 // milliseconds, zero when the parser reported none
	Diag   map[string]any
}

// Plan is the declared test range for one stream level.
type Plan struct {
	Start   int
	End     int
	Comment string
}

// FinalSummary describes a completed (sub)stream.
type FinalSummary struct {
	OK    bool
	Count int
	Pass  int
	Fail  int
	Plan  Plan
}

// Handler is the full callback set one stream level can deliver. Nil fields
// are skipped by conforming parsers.
type Handler struct {
	Version  func(version string)
	Plan     func(p Plan)
	Comment  func(text string)
	Extra    func(text string)
	Bailout  func(reason string)
	Assert   func(res Result)
	Child    func(s Stream)
	Complete func(sum FinalSummary)

	// Generic stream lifecycle, proxied with original payloads.
	Pipe      func(src any)
	Prefinish func()
	Finish    func()
	Unpipe    func(src any)
	Close     func()
}

// Stream is the event surface of one nesting level of the protocol parser.
// Child sub-streams announced via Handler.Child expose the same surface and
// must be attached recursively by the consumer.
type Stream interface {
	Attach(h Handler)
}

// Parser is the root collaborator: a Stream that also accepts raw protocol
// input. Write's return values are the parser's backpressure signal.
type Parser interface {
	Stream
	Write(p []byte) (int, error)
	End() error
}
