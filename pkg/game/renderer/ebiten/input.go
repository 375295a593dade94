package ebiten

import (
	"fmt"
	"log"
	"time"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "escaperoom/pkg/engine/input"
)

// Update handles input (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		log.Printf("Main window opened successfully (%dx%d)", w, h)
	}

	if e.quit.Load() {
		return ebiten.Termination
	}
	e.ticks++

	// Check for gamepad input first, then fall back to keyboard (raw layer)
	if intent := e.checkGamepadInput(); intent.Action != engineinput.ActionNone {
		e.send(intent)
	} else if intent, ok := e.checkInput(); ok {
		e.send(intent)
	}
	return nil
}

// send hands an intent to the game loop without blocking the window
func (e *EbitenRenderer) send(intent engineinput.Intent) {
	select {
	case e.inputChan <- intent:
	default:
		// Channel full, drop input
	}
}

func (e *EbitenRenderer) menuActive() bool {
	e.snapshotMutex.RLock()
	defer e.snapshotMutex.RUnlock()
	return e.menu.active
}

// shouldRepeatKey checks if a key/button should trigger (initial press or repeat)
func (e *EbitenRenderer) shouldRepeatKey(pressed bool, code string) bool {
	now := time.Now().UnixMilli()
	state, exists := e.keyRepeatState[code]

	if !pressed {
		delete(e.keyRepeatState, code)
		return false
	}
	if !exists {
		e.keyRepeatState[code] = keyRepeatInfo{firstPressed: now, lastRepeat: now}
		return true
	}
	if now-state.firstPressed >= keyRepeatInitialDelay && now-state.lastRepeat >= keyRepeatInterval {
		state.lastRepeat = now
		e.keyRepeatState[code] = state
		return true
	}
	return false
}

// gamepadButtons maps the usual XInput-style button indices to raw codes.
// Mappings may vary between devices and platforms.
var gamepadButtons = []struct {
	button ebiten.GamepadButton
	code   string
	repeat bool
}{
	{ebiten.GamepadButton11, "gamepad_dpad_up", true},
	{ebiten.GamepadButton12, "gamepad_dpad_right", true},
	{ebiten.GamepadButton13, "gamepad_dpad_down", true},
	{ebiten.GamepadButton14, "gamepad_dpad_left", true},
	{ebiten.GamepadButton0, "gamepad_a", false},
	{ebiten.GamepadButton1, "gamepad_b", false},
	{ebiten.GamepadButton7, "gamepad_start", false},
}

// checkGamepadInput checks for controller input and returns the corresponding Intent.
func (e *EbitenRenderer) checkGamepadInput() engineinput.Intent {
	var ids []ebiten.GamepadID
	ids = ebiten.AppendGamepadIDs(ids)

	for _, id := range ids {
		// Left stick, with a dead zone against drift
		const deadZone = 0.5
		stickX := ebiten.GamepadAxisValue(id, 0)
		stickY := ebiten.GamepadAxisValue(id, 1)
		sticks := []struct {
			held bool
			dir  string
		}{
			{stickY < -deadZone, "up"},
			{stickY > deadZone, "down"},
			{stickX < -deadZone, "left"},
			{stickX > deadZone, "right"},
		}
		for _, s := range sticks {
			if e.shouldRepeatKey(s.held, fmt.Sprintf("gamepad_%d_stick_%s", id, s.dir)) {
				return gamepadIntent("gamepad_dpad_" + s.dir)
			}
		}

		for _, b := range gamepadButtons {
			if b.repeat {
				code := fmt.Sprintf("gamepad_%d_%d", id, b.button)
				if e.shouldRepeatKey(ebiten.IsGamepadButtonPressed(id, b.button), code) {
					return gamepadIntent(b.code)
				}
				continue
			}
			if inpututil.IsGamepadButtonJustPressed(id, b.button) {
				return gamepadIntent(b.code)
			}
		}
	}

	return engineinput.Intent{Action: engineinput.ActionNone}
}

func gamepadIntent(code string) engineinput.Intent {
	return engineinput.MapToIntent(engineinput.NewDebouncedInput(engineinput.RawInput{
		Device:    engineinput.DeviceGamepad,
		Code:      code,
		Timestamp: time.Now(),
	}))
}

// checkInput reads the keyboard. Typed characters build a command line that
// is submitted with Enter; arrows act immediately while the line is empty.
func (e *EbitenRenderer) checkInput() (engineinput.Intent, bool) {
	inMenu := e.menuActive()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		if len(e.line) > 0 && !inMenu {
			e.line = e.line[:0]
			return engineinput.Intent{}, false
		}
		return engineinput.ParseLine(engineinput.DeviceKeyboard, "escape"), true
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyKPEnter) {
		line := string(e.line)
		e.line = e.line[:0]
		if inMenu {
			line = ""
		}
		return engineinput.ParseLine(engineinput.DeviceKeyboard, line), true
	}

	if inMenu {
		e.line = e.line[:0]
	} else {
		e.line = appendTyped(e.line, ebiten.AppendInputChars(nil))
		if e.shouldRepeatKey(ebiten.IsKeyPressed(ebiten.KeyBackspace), "key_backspace") && len(e.line) > 0 {
			e.line = e.line[:len(e.line)-1]
		}
	}

	if len(e.line) > 0 {
		return engineinput.Intent{}, false
	}
	arrows := []struct {
		key  ebiten.Key
		code string
	}{
		{ebiten.KeyArrowUp, "arrow_up"},
		{ebiten.KeyArrowDown, "arrow_down"},
		{ebiten.KeyArrowLeft, "arrow_left"},
		{ebiten.KeyArrowRight, "arrow_right"},
	}
	for _, a := range arrows {
		if e.shouldRepeatKey(ebiten.IsKeyPressed(a.key), "key_"+a.code) {
			return engineinput.ParseLine(engineinput.DeviceKeyboard, a.code), true
		}
	}
	return engineinput.Intent{}, false
}

// appendTyped adds printable characters to the command line, up to maxLineRunes
func appendTyped(line, typed []rune) []rune {
	for _, r := range typed {
		if len(line) >= maxLineRunes {
			break
		}
		if unicode.IsPrint(r) {
			line = append(line, r)
		}
	}
	return line
}
