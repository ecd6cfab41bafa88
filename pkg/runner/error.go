package runner

import (
	"fmt"
	"strings"

	"github.com/dkoosis/tapreport/pkg/tap"
)

// TestError is the normalized failure payload carried by fail events.
// Actual and Expected are only meaningful when the matching Has flag is set;
// the diagnostic values themselves may legitimately be nil or zero.
type TestError struct {
	Message     string
	Stack       string
	Actual      any
	Expected    any
	HasActual   bool
	HasExpected bool
	ShowDiff    bool
}

func (e *TestError) Error() string {
	return "Error: " + e.Message
}

// synthesizeError builds a TestError from a failed result's diagnostics.
// It never fails: missing or malformed diagnostic fields degrade to
// placeholders rather than errors.
func synthesizeError(res tap.Result) *TestError {
	if v, ok := res.Diag["error"]; ok {
		// Pre-built error values pass through unchanged.
		if te, ok := v.(*TestError); ok {
			return te
		}
		return &TestError{Message: fmt.Sprint(v)}
	}

	msg := strings.TrimPrefix(res.Name, "Error: ")
	if res.Name == "" {
		msg = "(unnamed error)"
	}
	err := &TestError{Message: msg}

	switch stack := res.Diag["stack"].(type) {
	case string:
		err.Stack = stack
	case []string:
		err.Stack = stackFromFrames(msg, stack)
	case []any:
		frames := make([]string, 0, len(stack))
		for _, f := range stack {
			frames = append(frames, fmt.Sprint(f))
		}
		err.Stack = stackFromFrames(msg, frames)
	}

	// Presence, not truthiness: a found/wanted of nil or zero still counts.
	if v, ok := res.Diag["found"]; ok {
		err.Actual = v
		err.HasActual = true
	}
	if v, ok := res.Diag["wanted"]; ok {
		err.Expected = v
		err.HasExpected = true
	}
	err.ShowDiff = err.HasActual && err.HasExpected

	return err
}

// stackFromFrames renders a frame list as a conventional stack trace headed
// by the error's string form.
func stackFromFrames(msg string, frames []string) string {
	var sb strings.Builder
	sb.WriteString("Error: ")
	sb.WriteString(msg)
	for _, f := range frames {
		sb.WriteString("\n    at ")
		sb.WriteString(strings.TrimSpace(f))
	}
	return sb.String()
}
