// Package terminal wraps the few terminal queries the text renderer needs.
package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24

	// MaxWidth caps the layout width on very wide terminals.
	MaxWidth = 100
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the layout width: the terminal width capped at MaxWidth.
func GetWidth() int {
	width, _ := GetSize()
	return min(width, MaxWidth)
}

// Clear clears the screen and homes the cursor when stdout is a terminal.
func Clear(w io.Writer) {
	if !IsTerminal(os.Stdout) {
		return
	}
	fmt.Fprint(w, "\033[H\033[2J")
}
