package ebiten

import (
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/state"
)

// RenderFrame captures a snapshot of the board for the next Draw call.
// The view is built here, on the game goroutine, so Draw never reads the
// game state directly.
func (e *EbitenRenderer) RenderFrame(g *state.Game) {
	var view renderer.View
	if g != nil {
		view = renderer.BuildView(g)
	}

	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()
	e.snapshot = renderSnapshot{valid: g != nil, view: view}
}

// currentSnapshot returns copies of everything Draw needs
func (e *EbitenRenderer) currentSnapshot() (renderSnapshot, menuOverlay, toast) {
	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()
	return e.snapshot, e.menu, e.message
}
