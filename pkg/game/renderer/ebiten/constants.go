package ebiten

import (
	"image/color"

	"escaperoom/pkg/game/renderer"
)

// Color palette for the window
var (
	colorBackground      = color.RGBA{15, 23, 42, 255}    // Slate night
	colorPanelBackground = color.RGBA{17, 24, 39, 255}    // Darker for the tool panel
	colorBorder          = color.RGBA{51, 65, 85, 255}    // Slate border
	colorFocusBackground = color.RGBA{30, 58, 95, 255}    // Active tool and selected menu item
	colorOverlay         = color.RGBA{0, 0, 0, 170}       // Dims the board behind menus
	colorText            = color.RGBA{226, 232, 240, 255} // Soft off-white
	colorTitle           = color.RGBA{56, 189, 248, 255}  // Sky blue
	colorInfo            = color.RGBA{96, 165, 250, 255}  // Blue
	colorSubtle          = color.RGBA{100, 116, 139, 255} // Gray
	colorWarn            = color.RGBA{250, 204, 21, 255}  // Yellow
	colorDenied          = color.RGBA{239, 68, 68, 255}   // Red
	colorSuccess         = color.RGBA{34, 197, 94, 255}   // Green
	colorCode            = color.RGBA{192, 132, 252, 255} // Purple
	colorAction          = color.RGBA{232, 121, 249, 255} // Pink-purple
	colorLightOff        = color.RGBA{71, 85, 105, 255}   // Unlit status dot
)

// styleColors maps text styles to window colors
var styleColors = map[renderer.TextStyle]color.RGBA{
	renderer.StyleNormal:  colorText,
	renderer.StyleTitle:   colorTitle,
	renderer.StyleInfo:    colorInfo,
	renderer.StyleSubtle:  colorSubtle,
	renderer.StyleWarn:    colorWarn,
	renderer.StyleError:   colorDenied,
	renderer.StyleSuccess: colorSuccess,
	renderer.StyleCode:    colorCode,
	renderer.StyleAction:  colorAction,
	renderer.StyleFocus:   colorTitle,
}

func styleColor(style renderer.TextStyle) color.RGBA {
	if c, ok := styleColors[style]; ok {
		return c
	}
	return colorText
}

// Text metrics in logical pixels. Go Mono advances every glyph by 0.6em.
const (
	baseFontSize = 13
	monoAdvance  = 0.6
	lineHeight   = 18
)

const (
	defaultWindowWidth  = 1100
	defaultWindowHeight = 760

	minScreenWidth  = 480
	minScreenHeight = 320

	margin       = 8
	consoleRows  = 5
	maxLineRunes = 64
	toastMillis  = 3000
)

const (
	keyRepeatInitialDelay = 500 // Initial delay before first repeat (milliseconds)
	keyRepeatInterval     = 100 // Interval between repeat events (milliseconds)
)
