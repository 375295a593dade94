package input

import (
	"sort"
	"strings"
	"time"
)

// Device represents a physical input source.
type Device int

const (
	DeviceUnknown Device = iota
	DeviceKeyboard
	DeviceGamepad
	DeviceTerminal
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Navigation (arrows, d-pad): menus, dial focus and dial value
	ActionUp
	ActionDown
	ActionLeft
	ActionRight

	// Tool panels
	ActionOpenLogs
	ActionOpenCode
	ActionOpenConfig
	ActionOpenRestart

	// Code editor and safe
	ActionFixLine
	ActionCheckCode
	ActionClearCode
	ActionToggleTips
	ActionSafeCode

	// System config
	ActionDialUp
	ActionDialDown
	ActionVerifyConfig
	ActionResetDials

	// Restart panel
	ActionPressButton
	ActionResetSequence
	ActionExecuteRestart

	// Notes
	ActionNote
	ActionNotes

	// Meta / UI
	ActionResetGame
	ActionHint
	ActionQuit
	ActionScreenshot
	ActionDump
	ActionOpenMenu
	ActionAction // Generic "action/confirm" (e.g., Enter/A)
)

// Intent is the 4th‑layer, high‑level description of what the player wants to do.
// Text is everything typed after the command word, trimmed; Args is Text split
// on whitespace.
type Intent struct {
	Action Action
	Args   []string
	Text   string
}

// Arg returns the i-th argument or "".
func (i Intent) Arg(n int) string {
	if n < 0 || n >= len(i.Args) {
		return ""
	}
	return i.Args[n]
}

// RawInput is the 1st‑layer event emitted directly from an input device.
// Code is a device‑specific identifier (e.g. "arrow_up", "gamepad_dpad_up") or
// the first word of a typed command; Text holds the rest of a typed line.
type RawInput struct {
	Device    Device
	Code      string
	Text      string
	Timestamp time.Time
}

// FromLine splits a typed line into a raw input: the first word becomes the
// code, the remainder keeps its spacing and case.
func FromLine(device Device, line string) RawInput {
	line = strings.TrimSpace(line)
	if line == "" {
		return RawInput{Device: device, Code: "enter", Timestamp: time.Now()}
	}
	code, rest, _ := strings.Cut(line, " ")
	return RawInput{
		Device:    device,
		Code:      strings.ToLower(code),
		Text:      strings.TrimSpace(rest),
		Timestamp: time.Now(),
	}
}

// DebouncedInput is the 2nd‑layer representation after debouncing/deduplication.
// For this turn‑based game, we treat each RawInput as already debounced by
// the underlying libraries (Ebiten, terminal raw mode), but keep a distinct
// type to make the layering explicit.
type DebouncedInput struct {
	Device Device
	Code   string
	Text   string
}

// NewDebouncedInput converts a raw event to a debounced event.
func NewDebouncedInput(raw RawInput) DebouncedInput {
	return DebouncedInput{
		Device: raw.Device,
		Code:   raw.Code,
		Text:   raw.Text,
	}
}

// bindings maps raw codes to actions (3rd-layer bindings).
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Navigation
	"arrow_up":    ActionUp,
	"arrow_down":  ActionDown,
	"arrow_left":  ActionLeft,
	"arrow_right": ActionRight,

	// Tool panels
	"logs":    ActionOpenLogs,
	"code":    ActionOpenCode,
	"config":  ActionOpenConfig,
	"restart": ActionOpenRestart,

	// Code editor and safe
	"fix":   ActionFixLine,
	"check": ActionCheckCode,
	"clear": ActionClearCode,
	"tips":  ActionToggleTips,
	"tip":   ActionToggleTips,
	"safe":  ActionSafeCode,
	"open":  ActionSafeCode,

	// Dials
	"up":         ActionDialUp,
	"+":          ActionDialUp,
	"down":       ActionDialDown,
	"-":          ActionDialDown,
	"verify":     ActionVerifyConfig,
	"dial-reset": ActionResetDials,

	// Restart panel
	"press":     ActionPressButton,
	"p":         ActionPressButton,
	"seq-reset": ActionResetSequence,
	"execute":   ActionExecuteRestart,
	"run":       ActionExecuteRestart,

	// Notes
	"note":  ActionNote,
	"notes": ActionNotes,

	// Help / hint
	"?":    ActionHint,
	"hint": ActionHint,
	"help": ActionHint,

	// Quit
	"quit": ActionQuit,
	"q":    ActionQuit,
	"exit": ActionQuit,

	"reset":      ActionResetGame,
	"screenshot": ActionScreenshot,
	"dump":       ActionDump,

	// Menu
	"menu":   ActionOpenMenu,
	"escape": ActionOpenMenu,
	"f10":    ActionOpenMenu,

	// Controller/gamepad specific bindings
	"gamepad_dpad_up":    ActionUp,
	"gamepad_dpad_down":  ActionDown,
	"gamepad_dpad_left":  ActionLeft,
	"gamepad_dpad_right": ActionRight,
	"gamepad_a":          ActionAction, // A button / Cross
	"gamepad_b":          ActionOpenMenu,
	"gamepad_start":      ActionOpenMenu,

	// Generic action/confirm inputs
	"enter":  ActionAction,
	"action": ActionAction,
}

// MapToIntent is the 3rd+4th layer: it applies the current bindings to a
// debounced input and returns a high‑level Intent.
func MapToIntent(ev DebouncedInput) Intent {
	act, ok := bindings[ev.Code]
	if !ok {
		return Intent{Action: ActionNone, Text: strings.TrimSpace(ev.Code + " " + ev.Text)}
	}
	return Intent{Action: act, Args: strings.Fields(ev.Text), Text: ev.Text}
}

// ParseLine runs a typed line through every layer.
func ParseLine(device Device, line string) Intent {
	return MapToIntent(NewDebouncedInput(FromLine(device, line)))
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionOpenLogs:
		return "Error Logs"
	case ActionOpenCode:
		return "Code Editor"
	case ActionOpenConfig:
		return "System Config"
	case ActionOpenRestart:
		return "Restart Panel"
	case ActionFixLine:
		return "Fix Line"
	case ActionCheckCode:
		return "Check Code"
	case ActionClearCode:
		return "Reset Code"
	case ActionToggleTips:
		return "Tips"
	case ActionSafeCode:
		return "Open Safe"
	case ActionDialUp:
		return "Dial Up"
	case ActionDialDown:
		return "Dial Down"
	case ActionVerifyConfig:
		return "Verify Config"
	case ActionResetDials:
		return "Reset Dials"
	case ActionPressButton:
		return "Press Button"
	case ActionResetSequence:
		return "Reset Sequence"
	case ActionExecuteRestart:
		return "Execute Restart"
	case ActionNote:
		return "Add Note"
	case ActionNotes:
		return "Notes"
	case ActionResetGame:
		return "Reset Game"
	case ActionHint:
		return "Hint"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	case ActionDump:
		return "Dump State"
	case ActionOpenMenu:
		return "Open Menu"
	case ActionAction:
		return "Action"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	// Ensure stable ordering of codes within each action so UI doesn't flicker.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
