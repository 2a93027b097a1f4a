package util

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// Terminal colour sequences
const (
	ColorReset  = "\033[0m"
	ColorCyan   = "\033[36m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorRed    = "\033[31m"
	ColorGray   = "\033[90m"
	ColorBold   = "\033[1m"
)

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// Colour modes accepted by the --color flag
const (
	ColorModeAuto   = "auto"
	ColorModeAlways = "always"
	ColorModeNever  = "never"
)

// GetDisplayWidth calculates the display width of a string, accounting for wide runes
func GetDisplayWidth(text string) int {
	return runewidth.StringWidth(text)
}

// PadString pads s with spaces to the given display width.
func PadString(s string, width int, leftAlign bool) string {
	actual := GetDisplayWidth(s)
	if actual >= width {
		return s
	}

	padding := strings.Repeat(" ", width-actual)
	if leftAlign {
		return s + padding
	}
	return padding + s
}

// Truncate shortens s to at most width display columns, marking the cut with "...".
func Truncate(s string, width int) string {
	if width <= 0 || GetDisplayWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

// IsTerminal reports whether w is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ColorEnabled resolves a colour mode against the destination writer.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case ColorModeAlways:
		return true
	case ColorModeNever:
		return false
	default:
		return IsTerminal(w)
	}
}

// Colorize wraps text in the given colour sequence when enabled.
func Colorize(text, color string, enabled bool) string {
	if !enabled || color == "" {
		return text
	}
	return fmt.Sprintf("%s%s%s", color, text, ColorReset)
}

// StripANSI removes ANSI escape sequences from s.
func StripANSI(s string) string {
	return ansiEscape.ReplaceAllString(s, "")
}
