package menu

import (
	"escaperoom/pkg/game/config"
	"escaperoom/pkg/game/locale"
	"escaperoom/pkg/game/state"
)

// MainMenuAction represents the action type for main menu items.
type MainMenuAction int

const (
	MainMenuActionStart MainMenuAction = iota
	MainMenuActionLanguage
	MainMenuActionControls
	MainMenuActionQuit
)

// MainMenuItem represents a menu item in the main menu.
type MainMenuItem struct {
	Label  string
	Action MainMenuAction
}

// GetLabel returns the display label for this menu item.
func (m *MainMenuItem) GetLabel() string {
	return m.Label
}

// IsSelectable returns whether this item can be selected.
func (m *MainMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (m *MainMenuItem) GetHelpText() string {
	switch m.Action {
	case MainMenuActionStart:
		return locale.Get("MENU_START_HELP")
	case MainMenuActionLanguage:
		return locale.Get("MENU_LANGUAGE_HELP")
	case MainMenuActionControls:
		return locale.Get("MENU_CONTROLS_HELP")
	case MainMenuActionQuit:
		return locale.Get("MENU_QUIT_HELP")
	default:
		return ""
	}
}

// MainMenuHandler handles the main menu.
type MainMenuHandler struct {
	selectedAction MainMenuAction
	onLanguage     func()
}

// NewMainMenuHandler creates a new main menu handler. onLanguage is called
// when the language item is activated.
func NewMainMenuHandler(onLanguage func()) *MainMenuHandler {
	return &MainMenuHandler{
		selectedAction: MainMenuActionQuit,
		onLanguage:     onLanguage,
	}
}

// GetTitle returns the menu title.
func (h *MainMenuHandler) GetTitle() string {
	return locale.Get("GAME_TITLE")
}

// GetInstructions returns the menu instructions.
func (h *MainMenuHandler) GetInstructions(selected MenuItem) string {
	return locale.Get("MENU_INSTRUCTIONS")
}

// OnSelect is called when an item is selected.
func (h *MainMenuHandler) OnSelect(item MenuItem, index int) {}

// OnActivate is called when an item is activated.
func (h *MainMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	mainItem, ok := item.(*MainMenuItem)
	if !ok {
		return false, ""
	}

	switch mainItem.Action {
	case MainMenuActionLanguage:
		if h.onLanguage != nil {
			h.onLanguage()
		}
		return false, locale.Getf("LANGUAGE_CHANGED", locale.Name(locale.Current()))
	case MainMenuActionControls:
		RunControlsMenu()
		return false, ""
	}

	h.selectedAction = mainItem.Action
	return true, ""
}

// OnExit is called when the menu is exited.
func (h *MainMenuHandler) OnExit() {}

// ShouldCloseOnAnyAction returns true if the menu should close on any action.
func (h *MainMenuHandler) ShouldCloseOnAnyAction() bool {
	return false // Main menu only closes on activation or quit
}

// GetSelectedAction returns the activated action. Leaving the main menu
// without activating anything quits.
func (h *MainMenuHandler) GetSelectedAction() MainMenuAction {
	return h.selectedAction
}

// GetMenuItems returns the menu items for the main menu.
func (h *MainMenuHandler) GetMenuItems() []MenuItem {
	return []MenuItem{
		&MainMenuItem{Label: locale.Get("MENU_START"), Action: MainMenuActionStart},
		&MainMenuItem{Label: locale.Getf("MENU_LANGUAGE", locale.Name(locale.Current())), Action: MainMenuActionLanguage},
		&MainMenuItem{Label: locale.Get("MENU_CONTROLS"), Action: MainMenuActionControls},
		&MainMenuItem{Label: locale.Get("MENU_QUIT"), Action: MainMenuActionQuit},
	}
}

// RunMainMenu runs the main menu and returns the selected action.
// Returns MainMenuActionQuit if the player left the menu.
func RunMainMenu(onLanguage func()) MainMenuAction {
	// A minimal game for the menu, needed for rendering.
	g := state.NewGame(config.Default())

	handler := NewMainMenuHandler(onLanguage)
	RunMenuDynamic(g, handler)
	return handler.GetSelectedAction()
}
