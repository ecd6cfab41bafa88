package reporter

import (
	"io"
	"os"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// AutoTheme picks the default theme for terminals and the monochrome theme
// for pipes and files.
func AutoTheme(w io.Writer) Theme {
	if isTTY(w) {
		return DefaultTheme()
	}
	return MonoTheme()
}

// isTTY reports whether w is a terminal.
func isTTY(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// terminalWidth returns the terminal width of w, or 80 when w is not a
// terminal or its size cannot be determined.
func terminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if width, _, err := term.GetSize(int(f.Fd())); err == nil && width > 0 {
			return width
		}
	}
	return 80
}

// truncate shortens s to at most max display cells, ellipsized. Uses
// go-runewidth for accurate handling of East Asian Wide characters.
func truncate(s string, max int) string {
	if max <= 0 || runewidth.StringWidth(s) <= max {
		return s
	}
	return runewidth.Truncate(s, max, "…")
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
