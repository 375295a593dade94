package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"escaperoom/pkg/game/config"
	"escaperoom/pkg/game/locale"
	"escaperoom/pkg/game/state"
)

func TestMain(m *testing.M) {
	if err := locale.Load("en"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func TestParseStage(t *testing.T) {
	tests := []struct {
		in   string
		want state.Stage
		ok   bool
	}{
		{"config", state.StageConfig, true},
		{"code-fix", state.StageCodeFix, true},
		{" RESTART ", state.StageRestart, true},
		{"complete", state.StageComplete, true},
		{"boss", state.StageLogs, false},
	}
	for _, tt := range tests {
		got, ok := ParseStage(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseStage(%q) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSkipToStage(t *testing.T) {
	for s := state.StageLogs; s <= state.StageComplete; s++ {
		t.Run(s.String(), func(t *testing.T) {
			g := state.NewGame(config.Default())
			SkipToStage(g, s)

			want := s
			if s == state.StageAccessKey {
				want = state.StageConfig
			}
			if got := g.Progress.Stage(); got != want {
				t.Errorf("Stage() = %v, want %v", got, want)
			}
			if !g.Progress.Consistent() {
				t.Errorf("progress inconsistent: %+v", g.Progress)
			}
			if g.GameComplete != (s == state.StageComplete) {
				t.Errorf("GameComplete = %v", g.GameComplete)
			}
		})
	}
}

func TestWriteState(t *testing.T) {
	g := state.NewGame(config.Default())
	SkipToStage(g, state.StageRestart)
	g.AddMessage(state.KindWarn, "\x1b[33mcareful\x1b[0m")

	var buf bytes.Buffer
	if err := WriteState(&buf, g); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"stage: RESTART", "config_set: true", "dial_values: [4 0 2]", "[warn] careful"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
}

func TestDumpStateToFile(t *testing.T) {
	dir := t.TempDir()
	path, err := DumpStateToFile(state.NewGame(config.Default()), dir)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "state.txt" {
		t.Errorf("path = %s, want state.txt", path)
	}
	data, err := os.ReadFile(path)
	if err != nil || !strings.Contains(string(data), "stage: LOGS") {
		t.Errorf("dump = %q, %v", data, err)
	}
}

func TestSaveScreenshotHTML(t *testing.T) {
	g := state.NewGame(config.Default())
	SkipToStage(g, state.StageConfig)
	g.Panel = state.PanelConfig
	g.Notes = "<serial> 0402"

	path, err := SaveScreenshotHTML(g, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(filepath.Base(path), "screenshot-") || filepath.Ext(path) != ".html" {
		t.Errorf("path = %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	html := string(data)
	for _, want := range []string{"AI System Escape Room", "AK-2024-0402", "&lt;serial&gt; 0402", `class="line focus"`} {
		if !strings.Contains(html, want) {
			t.Errorf("screenshot missing %q", want)
		}
	}
}
