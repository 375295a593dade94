package renderer

import (
	engineinput "escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/state"
)

// Version information, set at build time with -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleTitle
	StyleInfo
	StyleSubtle
	StyleWarn
	StyleError
	StyleSuccess
	StyleCode
	StyleAction
	StyleFocus
)

// KindStyle returns the style a console line of kind is drawn with.
func KindStyle(kind state.MessageKind) TextStyle {
	switch kind {
	case state.KindMuted:
		return StyleSubtle
	case state.KindWarn:
		return StyleWarn
	case state.KindError:
		return StyleError
	case state.KindSuccess:
		return StyleSuccess
	}
	return StyleInfo
}

// Renderer defines the interface for game rendering backends
// Implementations can include TUI (terminal), Ebiten, etc.
type Renderer interface {
	// Init initializes the renderer (colors, fonts, window, etc.)
	Init()

	// Clear clears the display
	Clear()

	// RenderFrame renders a complete game frame
	// This includes the status board, the open panel, the console and the prompt
	RenderFrame(g *state.Game)

	// GetInput blocks until the player produces an intent
	GetInput() engineinput.Intent

	// StyleText applies a style to text and returns the styled string
	// For TUI this applies ANSI colors, for GUI it may return the text unchanged
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)

	// GetViewportSize returns the current viewport dimensions (rows, cols)
	GetViewportSize() (rows, cols int)
}

// Current holds the active renderer instance
var Current Renderer

// SetRenderer sets the active renderer
func SetRenderer(r Renderer) {
	Current = r
}

// Init initializes the current renderer
func Init() {
	if Current != nil {
		Current.Init()
	}
}

// Clear clears the display using the current renderer
func Clear() {
	if Current != nil {
		Current.Clear()
	}
}

// RenderFrame renders a complete game frame
func RenderFrame(g *state.Game) {
	if Current != nil {
		Current.RenderFrame(g)
	}
}

// GetInput gets the next intent from the current renderer. Without a
// renderer there is nobody to ask, so the answer is to quit.
func GetInput() engineinput.Intent {
	if Current != nil {
		return Current.GetInput()
	}
	return engineinput.Intent{Action: engineinput.ActionQuit}
}

// StyleText applies a style to text
func StyleText(text string, style TextStyle) string {
	if Current != nil {
		return Current.StyleText(text, style)
	}
	return text
}

// StyledSubtle is StyleText with StyleSubtle.
func StyledSubtle(text string) string {
	return StyleText(text, StyleSubtle)
}

// FormatText formats a message with markup
func FormatText(msg string, args ...any) string {
	if Current != nil {
		return Current.FormatText(msg, args...)
	}
	return StripMarkup(msg, args...)
}

// ShowMessage displays msg with the current renderer
func ShowMessage(msg string) {
	if Current != nil {
		Current.ShowMessage(msg)
	}
}

// GetViewportSize returns viewport dimensions
func GetViewportSize() (rows, cols int) {
	if Current != nil {
		return Current.GetViewportSize()
	}
	return 24, 80 // sensible defaults
}
