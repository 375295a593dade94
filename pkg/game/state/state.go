package state

import (
	"escaperoom/pkg/game/config"
	"escaperoom/pkg/game/entities"
)

// MessageKind classifies a console line so renderers can colour it.
type MessageKind int

// Console line kinds
const (
	KindInfo MessageKind = iota
	KindMuted
	KindWarn
	KindError
	KindSuccess
)

// String returns the kind's name, used as a CSS class by the HTML screenshot.
func (k MessageKind) String() string {
	switch k {
	case KindMuted:
		return "muted"
	case KindWarn:
		return "warn"
	case KindError:
		return "error"
	case KindSuccess:
		return "success"
	}
	return "info"
}

// Message is one console line.
type Message struct {
	Text string
	Kind MessageKind
}

// Panel is the tool panel currently shown on the board.
type Panel int

// Panels, in the order of the tool buttons
const (
	PanelNone Panel = iota
	PanelLogs
	PanelCode
	PanelConfig
	PanelRestart
)

// String returns the panel's command name.
func (p Panel) String() string {
	switch p {
	case PanelLogs:
		return "logs"
	case PanelCode:
		return "code"
	case PanelConfig:
		return "config"
	case PanelRestart:
		return "restart"
	}
	return "none"
}

// MaxMessages is the number of console lines kept.
const MaxMessages = 12

// Game holds the progress of one play session together with everything the
// presentation layer needs: the open panel, drafts, notes and the console.
type Game struct {
	Config config.GameConfig

	Progress *Progress

	Messages []Message

	Hints []string

	// Panel is the open tool panel.
	Panel Panel

	// CodeDrafts are the player's edits in the code editor before "check".
	CodeDrafts entities.CodeFixes

	// FailedLines are the lines rejected by the last code check.
	FailedLines []int

	// FocusDial is the dial adjusted by the arrow keys.
	FocusDial int

	// TipsShown toggles the hint box of the open panel.
	TipsShown bool

	Notes string

	GameComplete bool

	QuitToTitle bool

	// Quit asks the main loop to leave the game.
	Quit bool
}

// NewGame creates a new game instance for cfg.
func NewGame(cfg config.GameConfig) *Game {
	return &Game{
		Config:   cfg,
		Progress: NewProgress(),
		Messages: make([]Message, 0),
	}
}

// AddMessage adds a line to the console
func (g *Game) AddMessage(kind MessageKind, text string) {
	g.Messages = append(g.Messages, Message{Text: text, Kind: kind})

	if len(g.Messages) > MaxMessages {
		g.Messages = g.Messages[len(g.Messages)-MaxMessages:]
	}
}

// ClearMessages clears the console
func (g *Game) ClearMessages() {
	g.Messages = make([]Message, 0)
}

// AddHint adds a hint to the game
func (g *Game) AddHint(hint string) {
	g.Hints = append(g.Hints, hint)
}

// ResetSession clears the UI state that belongs to a run. Progress is reset
// separately by its owner.
func (g *Game) ResetSession() {
	g.Panel = PanelNone
	g.CodeDrafts = entities.CodeFixes{}
	g.FailedLines = nil
	g.FocusDial = 0
	g.TipsShown = false
	g.Hints = nil
	g.GameComplete = false
}
