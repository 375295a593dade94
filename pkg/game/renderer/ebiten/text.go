package ebiten

import (
	"image/color"
	"math"
	"strings"

	ansi "github.com/gookit/color"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"escaperoom/pkg/game/renderer"
)

// The Go fonts have no glyphs for these board symbols
var glyphReplacer = strings.NewReplacer(
	renderer.IconFocus, "►",
	renderer.IconLocked, "#",
	renderer.IconKey, "k",
	renderer.IconBroken, "x",
	"✓", "v",
	"\t", "    ",
)

// printable strips terminal color codes and swaps symbols the fonts lack
func printable(s string) string {
	return glyphReplacer.Replace(ansi.ClearCode(s))
}

// wrapText wraps text to cols columns
func wrapText(s string, cols int) []string {
	return renderer.Wrap(printable(s), max(cols, 1))
}

// drawText prints one line of monospace text with its top left corner at (x, y)
func (e *EbitenRenderer) drawText(screen *ebiten.Image, s string, x, y int, clr color.Color) {
	e.drawTextWithFace(screen, s, x, y, clr, e.getMonoFontFace())
}

func (e *EbitenRenderer) drawTextWithFace(screen *ebiten.Image, s string, x, y int, clr color.Color, face *text.GoTextFace) {
	s = printable(s)
	if s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

// drawCentered prints s in the bold title face, centered within [x, x+width)
func (e *EbitenRenderer) drawCentered(screen *ebiten.Image, s string, x, y, width int, clr color.Color) {
	face := e.getSansBoldTitleFontFace()
	w := e.textWidth(s, face)
	e.drawTextWithFace(screen, s, x+max((width-w)/2, 0), y, clr, face)
}

// textWidth returns the width of s in face, rounded up to whole pixels
func (e *EbitenRenderer) textWidth(s string, face *text.GoTextFace) int {
	w, _ := text.Measure(printable(s), face, 0)
	return int(math.Ceil(w))
}
