package menu

import (
	"fmt"
	"strings"

	engineinput "escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/config"
	"escaperoom/pkg/game/locale"
	"escaperoom/pkg/game/state"
)

// BindingMenuItem shows the keys and commands bound to one action.
type BindingMenuItem struct {
	Action engineinput.Action
	Codes  []string
}

// GetLabel returns the display label for this binding menu item.
func (b *BindingMenuItem) GetLabel() string {
	codeText := strings.Join(b.Codes, ", ")
	if codeText == "" {
		codeText = locale.Get("CONTROLS_UNBOUND")
	}
	return fmt.Sprintf("%-16s %s", engineinput.ActionName(b.Action), codeText)
}

// IsSelectable returns whether this binding can be selected.
func (b *BindingMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this binding.
func (b *BindingMenuItem) GetHelpText() string {
	return ""
}

// BindingsMenuHandler lists the bindings of the actions a player uses.
type BindingsMenuHandler struct {
	actions []engineinput.Action
}

// NewBindingsMenuHandler creates a new bindings menu handler.
func NewBindingsMenuHandler() *BindingsMenuHandler {
	return &BindingsMenuHandler{
		actions: []engineinput.Action{
			engineinput.ActionOpenLogs,
			engineinput.ActionOpenCode,
			engineinput.ActionFixLine,
			engineinput.ActionCheckCode,
			engineinput.ActionToggleTips,
			engineinput.ActionSafeCode,
			engineinput.ActionOpenConfig,
			engineinput.ActionDialUp,
			engineinput.ActionDialDown,
			engineinput.ActionVerifyConfig,
			engineinput.ActionOpenRestart,
			engineinput.ActionPressButton,
			engineinput.ActionExecuteRestart,
			engineinput.ActionNote,
			engineinput.ActionHint,
			engineinput.ActionOpenMenu,
			engineinput.ActionQuit,
		},
	}
}

// GetTitle returns the menu title.
func (h *BindingsMenuHandler) GetTitle() string {
	return locale.Get("CONTROLS_TITLE")
}

// GetInstructions returns the menu instructions.
func (h *BindingsMenuHandler) GetInstructions(selected MenuItem) string {
	return locale.Get("MENU_BACK_INSTRUCTIONS")
}

// OnSelect is called when an item is selected.
func (h *BindingsMenuHandler) OnSelect(item MenuItem, index int) {}

// OnActivate is called when an item is activated.
func (h *BindingsMenuHandler) OnActivate(item MenuItem, index int) (shouldClose bool, helpText string) {
	return false, ""
}

// OnExit is called when the menu is exited.
func (h *BindingsMenuHandler) OnExit() {}

// ShouldCloseOnAnyAction returns true if the menu should close on any action.
func (h *BindingsMenuHandler) ShouldCloseOnAnyAction() bool {
	return false // Bindings menu only closes on menu/quit actions
}

// GetMenuItems returns the menu items for the bindings menu.
func (h *BindingsMenuHandler) GetMenuItems() []MenuItem {
	byAction := engineinput.GetBindingsByAction()
	items := make([]MenuItem, len(h.actions))
	for i, action := range h.actions {
		items[i] = &BindingMenuItem{Action: action, Codes: byAction[action]}
	}
	return items
}

// RunControlsMenu shows the bindings until the player leaves the menu.
func RunControlsMenu() {
	g := state.NewGame(config.Default())
	RunMenuDynamic(g, NewBindingsMenuHandler())
}
