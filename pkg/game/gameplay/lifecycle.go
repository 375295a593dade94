package gameplay

import (
	"escaperoom/pkg/game/config"
	"escaperoom/pkg/game/notes"
	"escaperoom/pkg/game/state"
)

// BuildGame creates a new game for cfg with the start-up console lines.
func BuildGame(cfg config.GameConfig) *state.Game {
	g := state.NewGame(cfg)
	ShowBootMessages(g)
	return g
}

// NewSession builds a game and its controller, and loads the saved notes.
func NewSession(cfg config.GameConfig, store notes.Store, prefs *config.Preferences) *Controller {
	c := NewController(BuildGame(cfg))
	c.Notes = store
	c.Preferences = prefs
	c.LoadNotes()
	return c
}

// ShowBootMessages clears the console and writes the start-up lines.
func ShowBootMessages(g *state.Game) {
	g.ClearMessages()
	logMessage(g, state.KindInfo, "BOOT_DEBUG_MODE")
	logMessage(g, state.KindMuted, "BOOT_STARTED")
	logMessage(g, state.KindError, "BOOT_AI_OFFLINE")
	logMessage(g, state.KindError, "BOOT_CRITICAL")
	logMessage(g, state.KindMuted, "BOOT_START_HINT")
}
