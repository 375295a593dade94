package ebiten

import (
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	gamemenu "escaperoom/pkg/game/menu"
	"escaperoom/pkg/game/state"
)

// RenderMenu implements gamemenu.MenuRenderer for Ebiten.
// It captures the current frame and marks the menu overlay as active.
func (e *EbitenRenderer) RenderMenu(g *state.Game, items []gamemenu.MenuItem, selected int, helpText string, title string) {
	// Keep the board behind the menu up to date
	e.RenderFrame(g)

	lines := make([]menuLine, len(items))
	for i, item := range items {
		lines[i] = menuLine{label: item.GetLabel(), selectable: item.IsSelectable()}
	}

	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()
	e.menu = menuOverlay{
		active:   true,
		items:    lines,
		selected: selected,
		helpText: helpText,
		title:    title,
	}
}

// ClearMenu hides the menu overlay.
func (e *EbitenRenderer) ClearMenu() {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()
	e.menu = menuOverlay{}
}

// drawMenuOverlay dims the board and draws the menu in a centered box with
// a highlight bar on the selected entry.
func (e *EbitenRenderer) drawMenuOverlay(screen *ebiten.Image, m menuOverlay, screenWidth, screenHeight int) {
	vector.DrawFilledRect(screen, 0, 0, float32(screenWidth), float32(screenHeight), colorOverlay, false)

	cols := columns(e.textWidth(m.title, e.getSansBoldTitleFontFace()))
	for _, item := range m.items {
		cols = max(cols, utf8.RuneCountInString(printable(item.label))+2)
	}
	cols = min(max(cols, 40), columns(screenWidth-margin*4))
	help := wrapText(m.helpText, cols)

	// Keep the selected item in view when the list is taller than the window
	room := max((screenHeight-margin*8)/lineHeight-len(help)-3, 1)
	first, last := 0, len(m.items)
	if len(m.items) > room {
		first = min(max(m.selected-room/2, 0), len(m.items)-room)
		last = first + room
	}

	boxWidth := int(float64(cols)*cellWidth()) + margin*4
	boxHeight := (last-first+len(help)+3)*lineHeight + margin*2
	x := (screenWidth - boxWidth) / 2
	y := max((screenHeight-boxHeight)/2, margin)

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(boxWidth), float32(boxHeight), colorPanelBackground, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(boxWidth), float32(boxHeight), 2, colorTitle, false)

	ty := y + margin
	e.drawCentered(screen, m.title, x, ty, boxWidth, colorTitle)
	ty += lineHeight * 2

	for i := first; i < last; i++ {
		item := m.items[i]
		clr := colorText
		switch {
		case i == m.selected:
			vector.DrawFilledRect(screen, float32(x+margin), float32(ty-1), float32(boxWidth-margin*2), lineHeight+2, colorFocusBackground, false)
			clr = colorTitle
		case !item.selectable:
			clr = colorSubtle
		}
		prefix := "  "
		if i == m.selected {
			prefix = "> "
		}
		e.drawText(screen, prefix+item.label, x+margin*2, ty, clr)
		ty += lineHeight
	}

	ty += lineHeight
	for _, l := range help {
		e.drawText(screen, l, x+margin*2, ty, colorSubtle)
		ty += lineHeight
	}
}
