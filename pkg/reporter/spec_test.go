package reporter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/tapreport/pkg/runner"
	"github.com/dkoosis/tapreport/pkg/tap"
)

func runSpec(t *testing.T, script *tap.Script, cfg SpecConfig) (*Spec, string) {
	t.Helper()
	var buf bytes.Buffer
	rep := NewSpec(&buf, cfg)
	r := runner.New(script)
	r.Subscribe(rep.Handle)
	require.NoError(t, r.End())
	return rep, buf.String()
}

func TestSpec_RendersSuiteTree(t *testing.T) {
	child := tap.NewScriptStream()
	child.Comment("# Subtest: parser\n").
		Assert(tap.Result{Name: "accepts empty input", OK: true, Number: 1}).
		Assert(tap.Result{Name: "rejects garbage", OK: false, Number: 2}).
		Assert(tap.Result{Name: "windows support", OK: true, Skip: true, Number: 3}).
		Complete(tap.FinalSummary{OK: false})

	script := tap.NewScript()
	script.Child(child).
		Assert(tap.Result{Name: "parser", OK: false, Number: 1}).
		Complete(tap.FinalSummary{OK: false})

	rep, out := runSpec(t, script, SpecConfig{Theme: MonoTheme(), Width: 120})

	assert.Contains(t, out, "  parser\n")
	assert.Contains(t, out, "    + accepts empty input")
	assert.Contains(t, out, "    x 1) rejects garbage")
	assert.Contains(t, out, "    - windows support")

	stats := rep.Stats()
	assert.Equal(t, 1, stats.Suites)
	assert.Equal(t, 3, stats.Tests)
	assert.Equal(t, 1, stats.Passes)
	assert.Equal(t, 1, stats.Failures)
	assert.Equal(t, 1, stats.Pending)
}

func TestSpec_EpilogueListsFailures(t *testing.T) {
	script := tap.NewScript()
	script.Assert(tap.Result{
		Name:   "values differ",
		OK:     false,
		Number: 1,
		Diag:   map[string]any{"found": 1, "wanted": 2, "stack": "at compare.go:10"},
	}).Complete(tap.FinalSummary{OK: false})

	_, out := runSpec(t, script, SpecConfig{Theme: MonoTheme(), Width: 120})

	assert.Contains(t, out, "1 failing")
	assert.Contains(t, out, "1) values differ:")
	assert.Contains(t, out, "Error: values differ")
	assert.Contains(t, out, "expected: 2, actual: 1")
	assert.Contains(t, out, "at compare.go:10")
}

func TestSpec_SlowTestFlagged(t *testing.T) {
	script := tap.NewScript()
	script.Assert(tap.Result{Name: "sluggish", OK: true, Number: 1, Time: 500}).
		Assert(tap.Result{Name: "snappy", OK: true, Number: 2, Time: 1}).
		Complete(tap.FinalSummary{OK: true})

	_, out := runSpec(t, script, SpecConfig{Theme: MonoTheme(), Width: 120})

	assert.Contains(t, out, "+ sluggish (500ms)")
	assert.NotContains(t, out, "snappy (")
}

func TestSpec_HumanizedTitles(t *testing.T) {
	script := tap.NewScript()
	script.Assert(tap.Result{Name: "parses_empty_input", OK: true, Number: 1}).
		Complete(tap.FinalSummary{OK: true})

	_, out := runSpec(t, script, SpecConfig{Theme: MonoTheme(), Humanize: true, Width: 120})

	assert.Contains(t, out, "+ Parses Empty Input")
}

func TestSpec_BailoutRendered(t *testing.T) {
	script := tap.NewScript()
	script.Assert(tap.Result{Name: "a", OK: true, Number: 1}).
		Bailout("out of disk\n").
		Complete(tap.FinalSummary{OK: false})

	_, out := runSpec(t, script, SpecConfig{Theme: MonoTheme(), Width: 120})

	assert.Contains(t, out, "Bail out! out of disk")
}

func TestHumanizeTitle(t *testing.T) {
	assert.Equal(t, "Parses Empty Input", humanizeTitle("parses_empty_input"))
	assert.Equal(t, "Already Spaced", humanizeTitle("already spaced"))
}

func TestAutoTheme_MonoForNonTerminals(t *testing.T) {
	assert.Equal(t, "mono", AutoTheme(&bytes.Buffer{}).Name)
}

func TestTruncateAndPad(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "ab…", truncate("abcdef", 3))
	assert.Equal(t, "ab   ", padRight("ab", 5))
}
