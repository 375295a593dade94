// Package menu provides a generic menu system for the game.
package menu

import (
	"fmt"

	engineinput "escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/state"
)

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// MenuHandler handles menu item selection and activation.
type MenuHandler interface {
	// OnSelect is called when an item is selected (navigated to).
	OnSelect(item MenuItem, index int)

	// OnActivate is called when an item is activated (e.g., Enter pressed).
	// Returns true if the menu should close, and any help text to display.
	OnActivate(item MenuItem, index int) (shouldClose bool, helpText string)
	// OnExit is called when the menu is exited.
	OnExit()
	// GetTitle returns the menu title.
	GetTitle() string
	// GetInstructions returns the menu instructions.
	GetInstructions(selected MenuItem) string
	// ShouldCloseOnAnyAction returns true if the menu should close on any action (not just menu/quit).
	ShouldCloseOnAnyAction() bool
}

// DynamicMenuHandler extends MenuHandler with dynamic menu items.
// RunMenuDynamic calls GetMenuItems each loop iteration so the menu can refresh.
type DynamicMenuHandler interface {
	MenuHandler
	GetMenuItems() []MenuItem
}

// MenuRenderer is an optional interface for renderers that can draw
// a full-screen menu overlay on top of the board.
type MenuRenderer interface {
	// RenderMenu draws the menu overlay with the given items, selected index, help text, and title.
	RenderMenu(g *state.Game, items []MenuItem, selected int, helpText string, title string)
	// ClearMenu hides any active menu overlay.
	ClearMenu()
}

// staticHandler adapts a fixed item list to DynamicMenuHandler.
type staticHandler struct {
	MenuHandler
	items []MenuItem
}

func (s staticHandler) GetMenuItems() []MenuItem {
	return s.items
}

// RunMenu runs a generic menu with the given items and handler.
func RunMenu(g *state.Game, items []MenuItem, handler MenuHandler) {
	RunMenuDynamic(g, staticHandler{MenuHandler: handler, items: items})
}

// RunMenuDynamic runs a menu whose items can change. The handler's GetMenuItems
// is called each loop iteration so the menu content can refresh (e.g. after a
// language switch).
func RunMenuDynamic(g *state.Game, handler DynamicMenuHandler) {
	selected := -1
	helpText := ""

	for {
		items := handler.GetMenuItems()
		if len(items) == 0 {
			closeMenu(g, handler)
			return
		}

		// Find first selectable item, or keep current if still valid
		if selected < 0 || selected >= len(items) || !items[selected].IsSelectable() {
			selected = firstSelectable(items)
		}

		// Use renderer-native, full-screen overlay (Ebiten).
		if mr, ok := renderer.Current.(MenuRenderer); ok {
			mr.RenderMenu(g, items, selected, helpText, handler.GetTitle())
		} else {
			renderMenuFallback(g, items, selected, helpText, handler)
		}

		intent := renderer.GetInput()

		// Check if handler wants to close on any action (except navigation)
		if handler.ShouldCloseOnAnyAction() && intent.Action != engineinput.ActionNone &&
			!isNavigation(intent.Action) {
			closeMenu(g, handler)
			return
		}

		switch intent.Action {
		case engineinput.ActionUp, engineinput.ActionDialUp:
			if next := step(items, selected, -1); next != selected {
				selected = next
				helpText = ""
				handler.OnSelect(items[selected], selected)
			}
		case engineinput.ActionDown, engineinput.ActionDialDown:
			if next := step(items, selected, 1); next != selected {
				selected = next
				helpText = ""
				handler.OnSelect(items[selected], selected)
			}
		case engineinput.ActionAction:
			if selected >= 0 && selected < len(items) && items[selected].IsSelectable() {
				shouldClose, newHelpText := handler.OnActivate(items[selected], selected)
				helpText = newHelpText
				if shouldClose {
					closeMenu(g, handler)
					return
				}
			}
		case engineinput.ActionOpenMenu, engineinput.ActionQuit:
			closeMenu(g, handler)
			return
		default:
			// Ignore other actions while in menu
		}
	}
}

func isNavigation(a engineinput.Action) bool {
	switch a {
	case engineinput.ActionUp, engineinput.ActionDown, engineinput.ActionDialUp, engineinput.ActionDialDown:
		return true
	}
	return false
}

func closeMenu(g *state.Game, handler MenuHandler) {
	g.ClearMessages()
	if mr, ok := renderer.Current.(MenuRenderer); ok {
		mr.ClearMenu()
	}
	handler.OnExit()
}

func firstSelectable(items []MenuItem) int {
	for i, item := range items {
		if item.IsSelectable() {
			return i
		}
	}
	return 0
}

// step moves the selection by dir to the next selectable item, wrapping
// around at both ends.
func step(items []MenuItem, selected, dir int) int {
	n := len(items)
	for i := 1; i < n; i++ {
		idx := ((selected+dir*i)%n + n) % n
		if items[idx].IsSelectable() {
			return idx
		}
	}
	return selected
}

// renderMenuFallback renders the menu in the message log as a fallback.
// This is what the terminal renderer shows.
func renderMenuFallback(g *state.Game, items []MenuItem, selected int, helpText string, handler MenuHandler) {
	g.ClearMessages()
	logMessage(g, state.KindInfo, "=== %s ===", handler.GetTitle())

	versionText := fmt.Sprintf("Version: %s", renderer.Version)
	if renderer.Commit != "unknown" && len(renderer.Commit) >= 7 {
		versionText += fmt.Sprintf(" (%s)", renderer.Commit[:7])
	}
	logMessage(g, state.KindMuted, "%s", versionText)

	var selectedItem MenuItem
	if selected >= 0 && selected < len(items) {
		selectedItem = items[selected]
	}
	if instructions := handler.GetInstructions(selectedItem); instructions != "" {
		logMessage(g, state.KindMuted, "%s", instructions)
	}

	if helpText != "" {
		logMessage(g, state.KindSuccess, "%s", helpText)
	} else if selectedItem != nil && selectedItem.GetHelpText() != "" {
		logMessage(g, state.KindMuted, "%s", selectedItem.GetHelpText())
	}

	// Only as many items as the console keeps, scrolled to the selection.
	first, last := visibleRange(len(items), selected, state.MaxMessages-len(g.Messages))
	for i := first; i < last; i++ {
		item := items[i]
		prefix := "  "
		kind := state.KindInfo
		if i == selected {
			prefix = renderer.IconFocus + " "
			kind = state.KindSuccess
		}
		if !item.IsSelectable() {
			kind = state.KindMuted
		}
		logMessage(g, kind, "%s%s", prefix, item.GetLabel())
	}

	renderer.RenderFrame(g)
}

func visibleRange(n, selected, room int) (first, last int) {
	if room < 1 {
		room = 1
	}
	if n <= room {
		return 0, n
	}
	first = selected - room/2
	first = max(0, min(first, n-room))
	return first, first + room
}

// logMessage adds a formatted line to the console.
func logMessage(g *state.Game, kind state.MessageKind, msg string, a ...any) {
	g.AddMessage(kind, fmt.Sprintf(msg, a...))
}
