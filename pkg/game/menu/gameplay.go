package menu

import (
	"escaperoom/pkg/game/locale"
)

// GameplayMenuAction represents the action type for gameplay menu items.
type GameplayMenuAction int

const (
	GameplayMenuActionResume GameplayMenuAction = iota
	GameplayMenuActionReset
	GameplayMenuActionLanguage
	GameplayMenuActionControls
	GameplayMenuActionQuitToTitle
)

// GameplayMenuItem represents a menu item in the gameplay menu.
type GameplayMenuItem struct {
	Label  string
	Action GameplayMenuAction
}

// GetLabel returns the display label for this menu item.
func (m *GameplayMenuItem) GetLabel() string {
	return m.Label
}

// IsSelectable returns whether this item can be selected.
func (m *GameplayMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (m *GameplayMenuItem) GetHelpText() string {
	switch m.Action {
	case GameplayMenuActionResume:
		return locale.Get("MENU_RESUME_HELP")
	case GameplayMenuActionReset:
		return locale.Get("MENU_RESET_HELP")
	case GameplayMenuActionLanguage:
		return locale.Get("MENU_LANGUAGE_HELP")
	case GameplayMenuActionControls:
		return locale.Get("MENU_CONTROLS_HELP")
	case GameplayMenuActionQuitToTitle:
		return locale.Get("MENU_TO_TITLE_HELP")
	default:
		return ""
	}
}

// GameplayMenuHandler handles the in-game menu. Switching the language and
// showing the controls keep the menu open; the other items close it.
type GameplayMenuHandler struct {
	selectedAction GameplayMenuAction
	onLanguage     func()
}

// NewGameplayMenuHandler creates a new gameplay menu handler. onLanguage is
// called when the language item is activated.
func NewGameplayMenuHandler(onLanguage func()) *GameplayMenuHandler {
	return &GameplayMenuHandler{
		selectedAction: GameplayMenuActionResume,
		onLanguage:     onLanguage,
	}
}

// GetTitle returns the menu title.
func (h *GameplayMenuHandler) GetTitle() string {
	return locale.Get("MENU_PAUSED")
}

// GetInstructions returns the menu instructions.
func (h *GameplayMenuHandler) GetInstructions(selected MenuItem) string {
	return locale.Get("MENU_INSTRUCTIONS")
}

// OnSelect is called when an item is selected.
func (h *GameplayMenuHandler) OnSelect(item MenuItem, index int) {}

// OnActivate is called when an item is activated.
func (h *GameplayMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	gameplayItem, ok := item.(*GameplayMenuItem)
	if !ok {
		return false, ""
	}

	switch gameplayItem.Action {
	case GameplayMenuActionLanguage:
		if h.onLanguage != nil {
			h.onLanguage()
		}
		return false, locale.Getf("LANGUAGE_CHANGED", locale.Name(locale.Current()))
	case GameplayMenuActionControls:
		RunControlsMenu()
		return false, ""
	}

	h.selectedAction = gameplayItem.Action
	return true, ""
}

// OnExit is called when the menu is exited.
func (h *GameplayMenuHandler) OnExit() {}

// ShouldCloseOnAnyAction returns true if the menu should close on any action.
func (h *GameplayMenuHandler) ShouldCloseOnAnyAction() bool {
	return false // Gameplay menu only closes on activation or quit
}

// GetSelectedAction returns the activated action. Leaving the menu without
// activating anything resumes the game.
func (h *GameplayMenuHandler) GetSelectedAction() GameplayMenuAction {
	return h.selectedAction
}

// GetMenuItems returns the menu items for the gameplay menu, labelled in the
// current language.
func (h *GameplayMenuHandler) GetMenuItems() []MenuItem {
	return []MenuItem{
		&GameplayMenuItem{Label: locale.Get("MENU_RESUME"), Action: GameplayMenuActionResume},
		&GameplayMenuItem{Label: locale.Get("MENU_RESET"), Action: GameplayMenuActionReset},
		&GameplayMenuItem{Label: locale.Getf("MENU_LANGUAGE", locale.Name(locale.Current())), Action: GameplayMenuActionLanguage},
		&GameplayMenuItem{Label: locale.Get("MENU_CONTROLS"), Action: GameplayMenuActionControls},
		&GameplayMenuItem{Label: locale.Get("MENU_TO_TITLE"), Action: GameplayMenuActionQuitToTitle},
	}
}
