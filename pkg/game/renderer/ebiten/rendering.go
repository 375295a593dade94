package ebiten

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"escaperoom/pkg/game/locale"
	"escaperoom/pkg/game/renderer"
)

// Draw renders the board to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	if !e.fontsLoaded() {
		// Nothing can be drawn without fonts
		return
	}

	snap, menu, msg := e.currentSnapshot()
	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()

	if snap.valid {
		e.drawBoard(screen, snap.view, screenWidth, screenHeight)
	} else {
		e.drawCentered(screen, locale.Get("GAME_TITLE"), 0, screenHeight/3, screenWidth, colorTitle)
	}

	if menu.active {
		e.drawMenuOverlay(screen, menu, screenWidth, screenHeight)
	}

	if msg.text != "" && time.Now().UnixMilli() < msg.expiresAt {
		e.drawToast(screen, msg.text, screenWidth)
	}
}

// drawBoard lays the view out top to bottom: header, status lights, tools,
// then the tool panel beside inventory and notes, and the console with the
// command line at the bottom.
func (e *EbitenRenderer) drawBoard(screen *ebiten.Image, v renderer.View, screenWidth, screenHeight int) {
	y := margin
	e.drawCentered(screen, v.Title, 0, y, screenWidth, colorTitle)
	y += lineHeight
	e.drawCentered(screen, v.Banner.Text, 0, y, screenWidth, styleColor(v.Banner.Style))
	y += lineHeight + 4

	y = e.drawStatus(screen, v.Status, y, screenWidth)
	y = e.drawTools(screen, v.Tools, y, screenWidth)

	bottomHeight := (consoleRows+2)*lineHeight + margin*2
	bodyTop := y + 4
	bodyHeight := screenHeight - bodyTop - bottomHeight
	leftWidth := (screenWidth - margin*3) * 3 / 5
	rightX := margin*2 + leftWidth
	rightWidth := screenWidth - rightX - margin

	vector.DrawFilledRect(screen, float32(margin), float32(bodyTop), float32(leftWidth), float32(bodyHeight), colorPanelBackground, false)
	vector.StrokeRect(screen, float32(margin), float32(bodyTop), float32(leftWidth), float32(bodyHeight), 1, colorBorder, false)
	e.drawLines(screen, v.Panel, margin*2, bodyTop+margin, leftWidth-margin*2, bodyHeight-margin*2, false)

	ry := e.drawSection(screen, locale.Get("INVENTORY"), v.Inventory, rightX, bodyTop, rightWidth, bodyHeight/3)
	e.drawSection(screen, locale.Get("NOTES"), v.Notes, rightX, ry, rightWidth, bodyTop+bodyHeight-ry)

	consoleTop := screenHeight - bottomHeight + margin
	e.drawSection(screen, locale.Get("CONSOLE"), v.Console, margin, consoleTop, screenWidth-margin*2, (consoleRows+1)*lineHeight)
	e.drawPrompt(screen, v.Prompt, screenHeight-margin-lineHeight)
}

// drawStatus draws the status lights centered on one row and returns the next y
func (e *EbitenRenderer) drawStatus(screen *ebiten.Image, lights []renderer.StatusLight, y, screenWidth int) int {
	const gap = 24
	face := e.getSansFontFace()
	total := 0
	for i, s := range lights {
		if i > 0 {
			total += gap
		}
		total += lineHeight + e.textWidth(s.Label, face)
	}

	x := max((screenWidth-total)/2, margin)
	for _, s := range lights {
		clr, labelColor := colorLightOff, colorSubtle
		if s.On {
			clr, labelColor = colorSuccess, colorText
		}
		vector.DrawFilledCircle(screen, float32(x+5), float32(y+lineHeight/2), 4, clr, true)
		e.drawTextWithFace(screen, s.Label, x+lineHeight, y, labelColor, face)
		x += lineHeight + e.textWidth(s.Label, face) + gap
	}
	return y + lineHeight + 6
}

// drawTools draws one box per debug tool, wrapping to more rows when the
// window is narrow, and returns the next y
func (e *EbitenRenderer) drawTools(screen *ebiten.Image, tools []renderer.Tool, y, screenWidth int) int {
	const boxHeight = lineHeight + 6
	face := e.getSansFontFace()
	pad := int(cellWidth())
	x := margin
	for _, t := range tools {
		label := "[" + t.Command + "] " + t.Label
		if t.Locked {
			label += " " + renderer.IconLocked
		}
		w := e.textWidth(label, face) + pad*2
		if x > margin && x+w > screenWidth-margin {
			x = margin
			y += boxHeight + 4
		}

		bg, fg := colorPanelBackground, colorText
		switch {
		case t.Active:
			bg, fg = colorFocusBackground, colorTitle
		case t.Locked:
			fg = colorSubtle
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), boxHeight, bg, false)
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), boxHeight, 1, colorBorder, false)
		e.drawTextWithFace(screen, label, x+pad, y+3, fg, face)
		x += w + 6
	}
	return y + boxHeight + 4
}

// drawSection draws a titled list of lines and returns the y below it
func (e *EbitenRenderer) drawSection(screen *ebiten.Image, title string, lines []renderer.Line, x, y, width, height int) int {
	e.drawText(screen, title, x, y, colorSubtle)
	vector.StrokeLine(screen, float32(x), float32(y+lineHeight), float32(x+width), float32(y+lineHeight), 1, colorBorder, false)
	used := e.drawLines(screen, lines, x, y+lineHeight+2, width, height-lineHeight-2, true)
	return y + lineHeight + 2 + used + margin
}

// drawLines wraps lines to width and draws as many as fit in height. With
// tail set the last lines are kept instead of the first. It returns the
// height used.
func (e *EbitenRenderer) drawLines(screen *ebiten.Image, lines []renderer.Line, x, y, width, height int, tail bool) int {
	type row struct {
		text  string
		style renderer.TextStyle
	}
	var rows []row
	for _, l := range lines {
		for _, part := range wrapText(l.Text, columns(width)) {
			rows = append(rows, row{part, l.Style})
		}
	}

	room := max(height/lineHeight, 0)
	if len(rows) > room {
		if tail {
			rows = rows[len(rows)-room:]
		} else {
			rows = rows[:room]
		}
	}
	for i, r := range rows {
		e.drawText(screen, r.text, x, y+i*lineHeight, styleColor(r.style))
	}
	return len(rows) * lineHeight
}

// drawPrompt draws the command line with a blinking cursor
func (e *EbitenRenderer) drawPrompt(screen *ebiten.Image, prompt string, y int) {
	text := prompt + "> " + string(e.line)
	if (e.ticks/30)%2 == 0 {
		text += "_"
	}
	e.drawText(screen, text, margin, y, colorAction)
}

// drawToast draws a transient message in the top right corner
func (e *EbitenRenderer) drawToast(screen *ebiten.Image, msg string, screenWidth int) {
	face := e.getSansFontFace()
	pad := int(cellWidth())
	w := e.textWidth(msg, face) + pad*2
	x := screenWidth - w - margin
	vector.DrawFilledRect(screen, float32(x), float32(margin), float32(w), lineHeight+6, colorFocusBackground, false)
	e.drawTextWithFace(screen, msg, x+pad, margin+3, colorText, face)
}
