// Package term colors terminal output with 256-color ANSI escapes.
package term

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Color is an ANSI foreground escape sequence.
type Color string

const (
	Blue       Color = "\x1b[38;5;81m"
	Green      Color = "\x1b[38;5;47m"
	LightGreen Color = "\x1b[38;5;156m"
	Orange     Color = "\x1b[38;5;214m"
	Red        Color = "\x1b[38;5;203m"
	BrightRed  Color = "\x1b[1;38;5;203m"
	Yellow     Color = "\x1b[38;5;227m"
	Purple     Color = "\x1b[38;5;135m"
	White      Color = "\x1b[38;5;231m"
)

const (
	reset     = "\x1b[0m"
	underline = "\x1b[4m"
)

// Painter applies styling when enabled and passes text through untouched
// otherwise.
type Painter struct {
	enabled bool
}

// NewPainter resolves the configured color mode ("auto", "always" or "never")
// against the output terminal. In auto mode color is on iff out is a terminal
// and NO_COLOR is unset.
func NewPainter(mode string, out *os.File) Painter {
	switch mode {
	case "always":
		return Painter{enabled: true}
	case "never":
		return Painter{enabled: false}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Painter{enabled: false}
	}
	fd := out.Fd()
	return Painter{enabled: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)}
}

// Paint wraps s in the color's escape sequence.
func (p Painter) Paint(s string, c Color) string {
	if !p.enabled {
		return s
	}
	return string(c) + s + reset
}

// Underline underlines s.
func (p Painter) Underline(s string) string {
	if !p.enabled {
		return s
	}
	return underline + s + reset
}
