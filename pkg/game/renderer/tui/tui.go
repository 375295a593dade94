// Package tui is the terminal renderer: the board is printed top to bottom
// and commands are typed at a prompt.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"

	"escaperoom/pkg/engine/input"
	"escaperoom/pkg/engine/terminal"
	"escaperoom/pkg/game/locale"
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/state"
)

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out   io.Writer
	width func() int

	colorSubtle color.Style
	colorTitle  color.Style
	colorAction color.Style
	colorOn     color.Style
	colorOff    color.Style
}

// New creates a new TUI renderer writing to stdout
func New() *TUIRenderer {
	return &TUIRenderer{out: os.Stdout, width: terminal.GetWidth}
}

// NewWithWriter creates a TUI renderer with a fixed width writing to w.
func NewWithWriter(w io.Writer, width int) *TUIRenderer {
	return &TUIRenderer{out: w, width: func() int { return width }}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	renderer.InitColors()
	t.colorSubtle = renderer.Styles[renderer.StyleSubtle]
	t.colorTitle = renderer.Styles[renderer.StyleTitle]
	t.colorAction = renderer.Styles[renderer.StyleAction]
	t.colorOn = color.Style{color.FgGreen, color.OpBold}
	t.colorOff = color.Style{color.FgGray}
}

// Clear clears the terminal screen
func (t *TUIRenderer) Clear() {
	terminal.Clear(t.out)
}

// GetInput reads a command from the terminal and returns a high-level Intent.
func (t *TUIRenderer) GetInput() input.Intent {
	return input.ReadIntent()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	return renderer.ANSIStyle(text, style)
}

// FormatText formats a message with the markup system
func (t *TUIRenderer) FormatText(msg string, args ...any) string {
	return renderer.ApplyMarkup(t.StyleText, msg, args...)
}

// ShowMessage displays a message to the user
func (t *TUIRenderer) ShowMessage(msg string) {
	fmt.Fprintln(t.out, t.FormatText("%s", msg))
}

// GetViewportSize returns the terminal dimensions
func (t *TUIRenderer) GetViewportSize() (rows, cols int) {
	_, rows = terminal.GetSize()
	return rows, t.width()
}

// RenderFrame renders a complete game frame
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	v := renderer.BuildView(g)
	width := t.width()

	fmt.Fprintln(t.out, renderer.Center(t.colorTitle.Sprint(v.Title), width))
	fmt.Fprintln(t.out, renderer.Center(t.StyleText(v.Banner.Text, v.Banner.Style), width))
	fmt.Fprintln(t.out)

	t.printStatus(v, width)
	t.printTools(v, width)

	t.printSection(locale.Get("INVENTORY"), v.Inventory, width)
	t.printSection(activeToolLabel(v), v.Panel, width)
	t.printSection(locale.Get("CONSOLE"), v.Console, width)
	t.printSection(locale.Get("NOTES"), v.Notes, width)

	fmt.Fprintln(t.out, t.colorSubtle.Sprint(renderer.Rule("", width)))
	fmt.Fprintf(t.out, "%s> ", v.Prompt)
}

func activeToolLabel(v renderer.View) string {
	for _, tool := range v.Tools {
		if tool.Active {
			return tool.Label
		}
	}
	return ""
}

// printStatus prints the status dots on one centered line
func (t *TUIRenderer) printStatus(v renderer.View, width int) {
	parts := make([]string, 0, len(v.Status))
	for _, s := range v.Status {
		if s.On {
			parts = append(parts, t.colorOn.Sprint(renderer.IconLightOn)+" "+s.Label)
		} else {
			parts = append(parts, t.colorOff.Sprint(renderer.IconLightOff)+" "+t.colorSubtle.Sprint(s.Label))
		}
	}
	fmt.Fprintln(t.out, renderer.Center(strings.Join(parts, "   "), width))
}

// printTools prints the debug tools with the command that opens each one
func (t *TUIRenderer) printTools(v renderer.View, width int) {
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(renderer.Rule(locale.Get("TOOLS"), width)))
	line := ""
	for _, tool := range v.Tools {
		label := tool.Label
		switch {
		case tool.Locked:
			label = t.colorSubtle.Sprint(label + " " + renderer.IconLocked)
		case tool.Active:
			label = t.StyleText(label, renderer.StyleFocus)
		}
		part := t.colorAction.Sprint("["+tool.Command+"]") + " " + label
		if line != "" && renderer.VisibleLen(line)+2+renderer.VisibleLen(part) > width {
			fmt.Fprintln(t.out, line)
			line = ""
		}
		if line == "" {
			line = "  " + part
		} else {
			line += "  " + part
		}
	}
	if line != "" {
		fmt.Fprintln(t.out, line)
	}
}

// printSection prints a ruled section; long lines are wrapped to the width
func (t *TUIRenderer) printSection(title string, lines []renderer.Line, width int) {
	fmt.Fprintln(t.out, t.colorSubtle.Sprint(renderer.Rule(title, width)))
	for _, l := range lines {
		for _, part := range renderer.Wrap(l.Text, width-2) {
			fmt.Fprintln(t.out, "  "+t.StyleText(part, l.Style))
		}
	}
}
