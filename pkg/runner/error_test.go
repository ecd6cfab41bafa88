package runner

import (
	"testing"

	"github.com/dkoosis/tapreport/pkg/tap"
)

func TestSynthesizeError_FoundAndWanted(t *testing.T) {
	err := synthesizeError(tap.Result{
		Name: "numbers differ",
		Diag: map[string]any{"found": 1, "wanted": 2},
	})

	if !err.HasActual || err.Actual != 1 {
		t.Errorf("actual: got %v (present=%t), want 1", err.Actual, err.HasActual)
	}
	if !err.HasExpected || err.Expected != 2 {
		t.Errorf("expected: got %v (present=%t), want 2", err.Expected, err.HasExpected)
	}
	if !err.ShowDiff {
		t.Error("expected ShowDiff with both found and wanted present")
	}
}

func TestSynthesizeError_PresenceNotTruthiness(t *testing.T) {
	err := synthesizeError(tap.Result{
		Name: "nil vs zero",
		Diag: map[string]any{"found": nil, "wanted": 0},
	})

	if !err.HasActual {
		t.Error("nil found should still count as present")
	}
	if !err.HasExpected {
		t.Error("zero wanted should still count as present")
	}
	if !err.ShowDiff {
		t.Error("expected ShowDiff")
	}
}

func TestSynthesizeError_OnlyFoundNoDiff(t *testing.T) {
	err := synthesizeError(tap.Result{
		Name: "half",
		Diag: map[string]any{"found": "x"},
	})

	if !err.HasActual || err.HasExpected {
		t.Errorf("presence flags: actual=%t expected=%t", err.HasActual, err.HasExpected)
	}
	if err.ShowDiff {
		t.Error("ShowDiff must require both sides")
	}
}

func TestSynthesizeError_StackString(t *testing.T) {
	err := synthesizeError(tap.Result{
		Name: "fails",
		Diag: map[string]any{"stack": "boom"},
	})

	if err.Stack != "boom" {
		t.Errorf("stack: got %q, want %q", err.Stack, "boom")
	}
}

func TestSynthesizeError_StackListWithPrefixStripped(t *testing.T) {
	err := synthesizeError(tap.Result{
		Name: "Error: x",
		Diag: map[string]any{"stack": []string{"a", "b"}},
	})

	if err.Message != "x" {
		t.Errorf("message: got %q, want %q", err.Message, "x")
	}
	want := "Error: x\n    at a\n    at b"
	if err.Stack != want {
		t.Errorf("stack:\n got  %q\n want %q", err.Stack, want)
	}
}

func TestSynthesizeError_StackListOfAny(t *testing.T) {
	// YAML diagnostics decode sequences as []any.
	err := synthesizeError(tap.Result{
		Name: "boom",
		Diag: map[string]any{"stack": []any{"f1", "f2"}},
	})

	want := "Error: boom\n    at f1\n    at f2"
	if err.Stack != want {
		t.Errorf("stack:\n got  %q\n want %q", err.Stack, want)
	}
}

func TestSynthesizeError_EmptyNamePlaceholder(t *testing.T) {
	err := synthesizeError(tap.Result{Name: ""})

	if err.Message != "(unnamed error)" {
		t.Errorf("message: got %q", err.Message)
	}
}

func TestSynthesizeError_PrebuiltPassThrough(t *testing.T) {
	prebuilt := &TestError{Message: "kept as-is", Stack: "somewhere"}
	err := synthesizeError(tap.Result{
		Name: "ignored",
		Diag: map[string]any{"error": prebuilt},
	})

	if err != prebuilt {
		t.Error("pre-built error should pass through unchanged")
	}
}

func TestSynthesizeError_ForeignErrorValue(t *testing.T) {
	err := synthesizeError(tap.Result{
		Name: "ignored",
		Diag: map[string]any{"error": "string payload"},
	})

	if err.Message != "string payload" {
		t.Errorf("message: got %q", err.Message)
	}
}

func TestSynthesizeError_NoDiag(t *testing.T) {
	err := synthesizeError(tap.Result{Name: "plain failure"})

	if err.Message != "plain failure" {
		t.Errorf("message: got %q", err.Message)
	}
	if err.Stack != "" || err.HasActual || err.HasExpected || err.ShowDiff {
		t.Error("expected bare error for missing diagnostics")
	}
}
