package gameplay

import (
	"log"

	"escaperoom/pkg/game/locale"
	gamemenu "escaperoom/pkg/game/menu"
	"escaperoom/pkg/game/state"
)

// RunGameplayMenu presents the in-game menu: resume, start over, language and
// quit to title.
func RunGameplayMenu(c *Controller) {
	handler := gamemenu.NewGameplayMenuHandler(func() {
		c.SwitchLanguage(locale.Next(locale.Current()))
	})
	gamemenu.RunMenuDynamic(c.g, handler)

	switch handler.GetSelectedAction() {
	case gamemenu.GameplayMenuActionReset:
		c.ResetAll()
	case gamemenu.GameplayMenuActionQuitToTitle:
		c.g.QuitToTitle = true
	}
}

// SwitchLanguage loads another catalog and stores the choice in the
// preferences when there are any.
func (c *Controller) SwitchLanguage(lang string) {
	if err := locale.Load(lang); err != nil {
		log.Printf("loading language %s: %v", lang, err)
		return
	}
	logMessage(c.g, state.KindInfo, "LANGUAGE_CHANGED", locale.Name(locale.Current()))
	if c.Preferences == nil {
		return
	}
	if err := c.Preferences.SetLanguage(locale.Current()); err != nil {
		log.Printf("saving language preference: %v", err)
		logMessage(c.g, state.KindWarn, "LANGUAGE_SAVE_FAILED")
	}
}
