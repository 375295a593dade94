// Package ebiten provides an Ebiten-based window renderer for the escape room.
// Ebiten is a 2D game library for Go: https://ebiten.org/
//
// The game loop runs on its own goroutine and talks to the window through
// RenderFrame (board snapshots) and GetInput (a channel of intents). Ebiten
// owns the main goroutine, see Run.
package ebiten

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	engineinput "escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/locale"
	"escaperoom/pkg/game/renderer"
)

// New creates a new Ebiten renderer
func New() *EbitenRenderer {
	return &EbitenRenderer{
		windowWidth:    defaultWindowWidth,
		windowHeight:   defaultWindowHeight,
		screenWidth:    defaultWindowWidth,
		screenHeight:   defaultWindowHeight,
		inputChan:      make(chan engineinput.Intent, 16),
		keyRepeatState: make(map[string]keyRepeatInfo),
		done:           make(chan struct{}),
	}
}

// Init sets up the window
func (e *EbitenRenderer) Init() {
	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(locale.Get("GAME_TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := e.loadFonts(); err != nil {
		log.Printf("Cannot load fonts: %v", err)
	}
}

// Clear is a no-op: every Draw starts from an empty screen.
func (e *EbitenRenderer) Clear() {}

// GetInput blocks until the window produces an intent. Once the window has
// closed it returns ActionQuit.
func (e *EbitenRenderer) GetInput() engineinput.Intent {
	select {
	case intent := <-e.inputChan:
		return intent
	case <-e.done:
		return engineinput.Intent{Action: engineinput.ActionQuit}
	}
}

// StyleText returns text unchanged; colors are applied per line in Draw.
func (e *EbitenRenderer) StyleText(text string, style renderer.TextStyle) string {
	return text
}

// FormatText resolves the markup to plain text
func (e *EbitenRenderer) FormatText(msg string, args ...any) string {
	return renderer.StripMarkup(msg, args...)
}

// ShowMessage displays a message in the corner of the window for a few seconds
func (e *EbitenRenderer) ShowMessage(msg string) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()
	e.message = toast{
		text:      e.FormatText("%s", msg),
		expiresAt: time.Now().UnixMilli() + toastMillis,
	}
}

// GetViewportSize returns the window size in text rows and columns
func (e *EbitenRenderer) GetViewportSize() (rows, cols int) {
	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()
	return e.screenHeight / lineHeight, columns(e.screenWidth)
}

// Run starts gameLoop on its own goroutine and runs the Ebiten loop on the
// calling goroutine until the game loop returns or the window is closed.
// It must be called from main.
func (e *EbitenRenderer) Run(gameLoop func()) error {
	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		gameLoop()
		e.quit.Store(true)
	}()

	err := ebiten.RunGame(e)
	close(e.done)
	<-loopDone
	return err
}

// Layout returns the logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := max(outsideWidth, minScreenWidth)
	h := max(outsideHeight, minScreenHeight)

	e.snapshotMutex.Lock()
	e.windowWidth, e.windowHeight = outsideWidth, outsideHeight
	e.screenWidth, e.screenHeight = w, h
	e.snapshotMutex.Unlock()

	return w, h
}
