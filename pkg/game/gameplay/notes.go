package gameplay

import (
	"context"
	"log"
	"strings"
	"time"

	"escaperoom/pkg/game/notes"
	"escaperoom/pkg/game/state"
)

const notesTimeout = 2 * time.Second

// LoadNotes fills the notes field from the store. Failures are logged and
// leave the field empty.
func (c *Controller) LoadNotes() {
	if c.Notes == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), notesTimeout)
	defer cancel()

	text, err := notes.LoadText(ctx, c.Notes)
	if err != nil {
		log.Printf("loading notes: %v", err)
		return
	}
	c.g.Notes = text
}

// AddNote appends a line to the notes and saves them.
func (c *Controller) AddNote(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		logMessage(c.g, state.KindWarn, "MISSING_ARGUMENT", "note <text>")
		return
	}
	if c.g.Notes != "" {
		c.g.Notes += "\n"
	}
	c.g.Notes += text
	if c.saveNotes() {
		logMessage(c.g, state.KindMuted, "NOTES_SAVED")
	}
}

// ClearNotes empties the notes and saves them.
func (c *Controller) ClearNotes() {
	c.g.Notes = ""
	if c.saveNotes() {
		logMessage(c.g, state.KindWarn, "NOTES_CLEARED")
	}
}

// ShowNotes writes the notes to the console.
func (c *Controller) ShowNotes() {
	if c.g.Notes == "" {
		logMessage(c.g, state.KindMuted, "NOTES_EMPTY")
		return
	}
	for _, line := range strings.Split(c.g.Notes, "\n") {
		logf(c.g, state.KindInfo, "%s", line)
	}
}

// saveNotes never touches puzzle state; a failing store only costs the note.
func (c *Controller) saveNotes() bool {
	if c.Notes == nil {
		return true
	}
	ctx, cancel := context.WithTimeout(context.Background(), notesTimeout)
	defer cancel()

	if err := c.Notes.Save(ctx, notes.Key, c.g.Notes); err != nil {
		log.Printf("saving notes: %v", err)
		logMessage(c.g, state.KindError, "NOTES_SAVE_FAILED")
		return false
	}
	return true
}
