package tui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/gookit/color"

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

func render(t *testing.T, g *state.Game) string {
	t.Helper()
	var buf bytes.Buffer
	r := NewWithWriter(&buf, 60)
	r.Init()
	r.RenderFrame(g)
	return color.ClearCode(buf.String())
}

func TestRenderFrame_NewGame(t *testing.T) {
	g := state.NewGame(config.Default())
	g.AddMessage(state.KindError, "AI Core: OFFLINE")

	out := render(t, g)
	for _, want := range []string{
		"AI System Escape Room",
		"SYSTEM STATUS:",
		"[logs] Error Logs",
		"[code] Code Editor " + renderer.IconLocked,
		"AI Core: OFFLINE",
		"Command> ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("frame missing %q:\n%s", want, out)
		}
	}
}

func TestRenderFrame_WrapsPanel(t *testing.T) {
	g := state.NewGame(config.Default())
	g.Panel = state.PanelLogs

	for _, line := range strings.Split(render(t, g), "\n") {
		if renderer.VisibleLen(line) > 60 {
			t.Errorf("line wider than 60 columns: %q", line)
		}
	}
}

func TestFormatText(t *testing.T) {
	r := NewWithWriter(&bytes.Buffer{}, 80)
	r.Init()

	got := color.ClearCode(r.FormatText("type ACTION{logs} to read %s", "T{LOGS_TITLE}"))
	if got != "type logs to read Error Logs" {
		t.Errorf("FormatText = %q", got)
	}
}
