package menu

import (
	"os"
	"strings"
	"testing"

	engineinput "escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/config"
	"escaperoom/pkg/game/locale"
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/state"
)

func TestMain(m *testing.M) {
	if err := locale.Load("en"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// scriptedRenderer replays a fixed list of intents and quits when it runs out.
type scriptedRenderer struct {
	intents []engineinput.Intent
	frames  int
	menus   int
	cleared int
}

func script(actions ...engineinput.Action) *scriptedRenderer {
	r := &scriptedRenderer{}
	for _, a := range actions {
		r.intents = append(r.intents, engineinput.Intent{Action: a})
	}
	return r
}

func (r *scriptedRenderer) Init()                     {}
func (r *scriptedRenderer) Clear()                    {}
func (r *scriptedRenderer) RenderFrame(g *state.Game) { r.frames++ }
func (r *scriptedRenderer) GetInput() engineinput.Intent {
	if len(r.intents) == 0 {
		return engineinput.Intent{Action: engineinput.ActionQuit}
	}
	next := r.intents[0]
	r.intents = r.intents[1:]
	return next
}
func (r *scriptedRenderer) StyleText(text string, _ renderer.TextStyle) string { return text }
func (r *scriptedRenderer) FormatText(msg string, args ...any) string {
	return renderer.StripMarkup(msg, args...)
}
func (r *scriptedRenderer) ShowMessage(string)                 {}
func (r *scriptedRenderer) GetViewportSize() (rows, cols int) { return 24, 80 }

// overlayRenderer also draws menus itself.
type overlayRenderer struct {
	*scriptedRenderer
}

func (r overlayRenderer) RenderMenu(g *state.Game, items []MenuItem, selected int, helpText, title string) {
	r.menus++
}
func (r overlayRenderer) ClearMenu() { r.cleared++ }

func useRenderer(t *testing.T, r renderer.Renderer) {
	t.Helper()
	prev := renderer.Current
	renderer.SetRenderer(r)
	t.Cleanup(func() { renderer.SetRenderer(prev) })
}

func TestGameplayMenu_EscapeResumes(t *testing.T) {
	useRenderer(t, script(engineinput.ActionDown, engineinput.ActionDown, engineinput.ActionOpenMenu))

	h := NewGameplayMenuHandler(nil)
	RunMenuDynamic(state.NewGame(config.Default()), h)

	if got := h.GetSelectedAction(); got != GameplayMenuActionResume {
		t.Errorf("GetSelectedAction() = %v, want resume after leaving the menu", got)
	}
}

func TestGameplayMenu_ActivateReset(t *testing.T) {
	useRenderer(t, script(engineinput.ActionDown, engineinput.ActionAction))

	h := NewGameplayMenuHandler(nil)
	RunMenuDynamic(state.NewGame(config.Default()), h)

	if got := h.GetSelectedAction(); got != GameplayMenuActionReset {
		t.Errorf("GetSelectedAction() = %v, want reset", got)
	}
}

func TestGameplayMenu_LanguageKeepsMenuOpen(t *testing.T) {
	// Down twice to the language item, switch, then wrap upwards to the
	// last item and activate it.
	useRenderer(t, script(
		engineinput.ActionDown, engineinput.ActionDown, engineinput.ActionAction,
		engineinput.ActionUp, engineinput.ActionUp, engineinput.ActionUp, engineinput.ActionAction,
	))

	calls := 0
	h := NewGameplayMenuHandler(func() { calls++ })
	RunMenuDynamic(state.NewGame(config.Default()), h)

	if calls != 1 {
		t.Errorf("language callback called %d times, want 1", calls)
	}
	if got := h.GetSelectedAction(); got != GameplayMenuActionQuitToTitle {
		t.Errorf("GetSelectedAction() = %v, want quit to title", got)
	}
}

func TestRunMenu_FallbackWritesConsole(t *testing.T) {
	r := script(engineinput.ActionDialDown)
	useRenderer(t, r)

	g := state.NewGame(config.Default())
	h := NewMainMenuHandler(nil)
	handler := &recordingHandler{MainMenuHandler: h}
	RunMenu(g, h.GetMenuItems(), handler)

	if r.frames != 2 {
		t.Errorf("frames rendered = %d, want 2", r.frames)
	}
	if handler.selected != 1 {
		t.Errorf("selected index = %d, want 1 after moving down", handler.selected)
	}
	if !handler.exited {
		t.Error("OnExit not called")
	}
	if len(g.Messages) != 0 {
		t.Errorf("console not cleared after the menu: %v", g.Messages)
	}
	if got := h.GetSelectedAction(); got != MainMenuActionQuit {
		t.Errorf("main menu action = %v, want quit when left", got)
	}
}

type recordingHandler struct {
	*MainMenuHandler
	selected int
	exited   bool
}

func (h *recordingHandler) OnSelect(item MenuItem, index int) { h.selected = index }
func (h *recordingHandler) OnExit()                           { h.exited = true }

func TestRunMenu_Overlay(t *testing.T) {
	r := overlayRenderer{script(engineinput.ActionAction)}
	useRenderer(t, r)

	h := NewMainMenuHandler(nil)
	RunMenuDynamic(state.NewGame(config.Default()), h)

	if r.menus != 1 || r.cleared != 1 || r.frames != 0 {
		t.Errorf("menus=%d cleared=%d frames=%d, want 1 1 0", r.menus, r.cleared, r.frames)
	}
	if got := h.GetSelectedAction(); got != MainMenuActionStart {
		t.Errorf("main menu action = %v, want start", got)
	}
}

func TestStep(t *testing.T) {
	items := []MenuItem{
		&GameplayMenuItem{Label: "a"},
		&BindingMenuItem{},
		&GameplayMenuItem{Label: "c"},
	}
	if got := step(items, 0, -1); got != 2 {
		t.Errorf("step up from 0 = %d, want 2", got)
	}
	if got := step(items, 2, 1); got != 0 {
		t.Errorf("step down from 2 = %d, want 0", got)
	}
}

func TestVisibleRange(t *testing.T) {
	tests := []struct {
		n, selected, room int
		first, last       int
	}{
		{4, 0, 10, 0, 4},
		{20, 0, 8, 0, 8},
		{20, 10, 8, 6, 14},
		{20, 19, 8, 12, 20},
	}
	for _, tt := range tests {
		first, last := visibleRange(tt.n, tt.selected, tt.room)
		if first != tt.first || last != tt.last {
			t.Errorf("visibleRange(%d, %d, %d) = %d, %d, want %d, %d",
				tt.n, tt.selected, tt.room, first, last, tt.first, tt.last)
		}
	}
}

func TestBindingsMenu_ListsCommands(t *testing.T) {
	items := NewBindingsMenuHandler().GetMenuItems()
	for _, item := range items {
		b := item.(*BindingMenuItem)
		if b.Action == engineinput.ActionExecuteRestart {
			if !strings.Contains(item.GetLabel(), "execute, run") {
				t.Errorf("label = %q, want execute, run", item.GetLabel())
			}
			return
		}
	}
	t.Error("execute action not listed")
}
