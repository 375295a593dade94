package ebiten

import (
	"sync"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	engineinput "escaperoom/pkg/engine/input"
	gamemenu "escaperoom/pkg/game/menu"
	"escaperoom/pkg/game/renderer"
)

// renderSnapshot holds a consistent copy of the board for Draw.
// It is written by the game goroutine and read by the Ebiten goroutine.
type renderSnapshot struct {
	valid bool
	view  renderer.View
}

// menuOverlay is the state of the generic menu drawn over the board
type menuOverlay struct {
	active   bool
	items    []menuLine
	selected int
	helpText string
	title    string
}

// menuLine is a menu item reduced to what Draw needs
type menuLine struct {
	label      string
	selectable bool
}

// toast is a short-lived message shown in the corner of the window
type toast struct {
	text      string
	expiresAt int64 // Unix milliseconds
}

// keyRepeatInfo tracks the repeat state for a key or button
type keyRepeatInfo struct {
	firstPressed int64 // Timestamp when first pressed (milliseconds)
	lastRepeat   int64 // Timestamp when last repeat event was sent (milliseconds)
}

// EbitenRenderer is the Ebiten-based window renderer
type EbitenRenderer struct {
	// Window size in device-independent pixels
	windowWidth  int
	windowHeight int

	// Logical screen size, set by Layout
	screenWidth  int
	screenHeight int

	snapshot      renderSnapshot
	menu          menuOverlay
	message       toast
	snapshotMutex sync.RWMutex

	// Input channel for communication between Ebiten and game loop
	inputChan chan engineinput.Intent

	// Typed command line; only touched on the Ebiten goroutine
	line  []rune
	ticks int

	// Maps key/button codes to their repeat state
	keyRepeatState map[string]keyRepeatInfo

	// Font sources are parsed once by Init; faces are built on first use
	monoFontSource     *text.GoTextFaceSource // Monospace for the board, console and prompt
	sansFontSource     *text.GoTextFaceSource // Sans-serif for status lights and tools
	sansBoldFontSource *text.GoTextFaceSource // Bold for titles

	cachedMonoFace          *text.GoTextFace
	cachedSansFace          *text.GoTextFace
	cachedSansBoldTitleFace *text.GoTextFace

	// quit is set when the game loop has finished; done is closed when the
	// window has gone away.
	quit atomic.Bool
	done chan struct{}

	windowOpenedLogged bool
}

var (
	_ renderer.Renderer     = (*EbitenRenderer)(nil)
	_ gamemenu.MenuRenderer = (*EbitenRenderer)(nil)
	_ ebiten.Game           = (*EbitenRenderer)(nil)
)
