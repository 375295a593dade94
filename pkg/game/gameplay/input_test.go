package gameplay

import (
	"reflect"
	"testing"

	engineinput "escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/locale"
	"escaperoom/pkg/game/state"
)

func typeLine(c *Controller, line string) {
	c.ProcessIntent(engineinput.ParseLine(engineinput.DeviceTerminal, line))
}

func lastMessage(t *testing.T, c *Controller) string {
	t.Helper()
	msgs := c.g.Messages
	if len(msgs) == 0 {
		t.Fatal("console is empty")
	}
	return msgs[len(msgs)-1].Text
}

func TestFixCommand(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantMsg  string
		wantLine int
		wantText string
	}{
		{"sets draft", "fix 3 const status = 'active';", locale.Getf("CODE_DRAFT_SET", 3), 3, "const status = 'active';"},
		{"unknown line", "fix 5 return;", locale.Getf("CODE_UNKNOWN_LINE", "5", "3, 4, 9, 10"), 0, ""},
		{"not a number", "fix three x", locale.Getf("CODE_UNKNOWN_LINE", "three", "3, 4, 9, 10"), 0, ""},
		{"missing text", "fix 4", locale.Getf("MISSING_ARGUMENT", "fix <line> <text>"), 0, ""},
		{"missing everything", "fix", locale.Getf("MISSING_ARGUMENT", "fix <line> <text>"), 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t)
			advanceTo(t, c, state.StageCodeFix)

			typeLine(c, tt.line)
			if got := lastMessage(t, c); got != tt.wantMsg {
				t.Errorf("console = %q, want %q", got, tt.wantMsg)
			}
			if tt.wantLine == 0 {
				if c.g.CodeDrafts != (entities.CodeFixes{}) {
					t.Errorf("drafts changed to %+v", c.g.CodeDrafts)
				}
				return
			}
			if got := c.g.CodeDrafts.ForLine(tt.wantLine); got != tt.wantText {
				t.Errorf("draft line %d = %q, want %q", tt.wantLine, got, tt.wantText)
			}
			if c.g.Panel != state.PanelCode {
				t.Errorf("panel = %v, want code", c.g.Panel)
			}
		})
	}
}

func TestFixCommandBeforeLogs(t *testing.T) {
	c := newTestController(t)
	typeLine(c, "fix 3 const status = 'active';")
	if got, want := lastMessage(t, c), locale.Get("CODE_LOCKED"); got != want {
		t.Errorf("console = %q, want %q", got, want)
	}
	if c.g.CodeDrafts != (entities.CodeFixes{}) {
		t.Errorf("drafts changed to %+v", c.g.CodeDrafts)
	}
}

func TestCheckAfterCodeFixed(t *testing.T) {
	c := newTestController(t)
	advanceTo(t, c, state.StageSafe)
	c.g.CodeDrafts = entities.CodeFixes{Line3: "broken"}
	c.g.Panel = state.PanelLogs

	typeLine(c, "check")
	if got, want := lastMessage(t, c), locale.Get("CODE_ALREADY_FIXED"); got != want {
		t.Errorf("console = %q, want %q", got, want)
	}
	if !c.g.Progress.CodeFixed {
		t.Error("code no longer fixed")
	}
	if c.g.Panel != state.PanelLogs {
		t.Errorf("panel = %v, want logs unchanged", c.g.Panel)
	}
}

func TestDialCommands(t *testing.T) {
	tests := []struct {
		line      string
		wantDials entities.DialBank
		wantMsg   string
	}{
		{"up 2", entities.DialBank{0, 1, 0}, ""},
		{"+ 3", entities.DialBank{0, 0, 1}, ""},
		{"up", entities.DialBank{1, 0, 0}, ""},
		{"up 0", entities.DialBank{}, locale.Getf("DIAL_INVALID", "0")},
		{"up 4", entities.DialBank{}, locale.Getf("DIAL_INVALID", "4")},
		{"down x", entities.DialBank{}, locale.Getf("DIAL_INVALID", "x")},
		{"down -1", entities.DialBank{}, locale.Getf("DIAL_INVALID", "-1")},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			c := newTestController(t)
			advanceTo(t, c, state.StageConfig)

			typeLine(c, tt.line)
			if c.g.Progress.DialValues != tt.wantDials {
				t.Errorf("dials = %v, want %v", c.g.Progress.DialValues, tt.wantDials)
			}
			if tt.wantMsg != "" {
				if got := lastMessage(t, c); got != tt.wantMsg {
					t.Errorf("console = %q, want %q", got, tt.wantMsg)
				}
			}
		})
	}
}

func TestDialCommandWithoutAccessKey(t *testing.T) {
	c := newTestController(t)
	advanceTo(t, c, state.StageSafe)

	typeLine(c, "up 1")
	if got, want := lastMessage(t, c), locale.Get("CONFIG_LOCKED"); got != want {
		t.Errorf("console = %q, want %q", got, want)
	}
	if c.g.Progress.DialValues != (entities.DialBank{}) {
		t.Errorf("dials = %v, want untouched", c.g.Progress.DialValues)
	}
}

func TestArrowKeysMoveDialFocus(t *testing.T) {
	c := newTestController(t)
	advanceTo(t, c, state.StageConfig)
	c.OpenPanel(state.PanelConfig)

	steps := []struct {
		code      string
		wantFocus int
	}{
		{"arrow_left", 2},
		{"arrow_left", 1},
		{"arrow_right", 2},
		{"arrow_right", 0},
		{"gamepad_dpad_right", 1},
	}
	for _, s := range steps {
		typeLine(c, s.code)
		if c.g.FocusDial != s.wantFocus {
			t.Fatalf("after %s focus = %d, want %d", s.code, c.g.FocusDial, s.wantFocus)
		}
	}

	typeLine(c, "arrow_up")
	if got := c.g.Progress.DialValues; got != (entities.DialBank{0, 1, 0}) {
		t.Errorf("arrow_up on dial 2: dials = %v", got)
	}
}

func TestArrowKeysIgnoredOutsideConfigPanel(t *testing.T) {
	c := newTestController(t)
	advanceTo(t, c, state.StageConfig)
	c.OpenPanel(state.PanelLogs)

	for _, code := range []string{"arrow_right", "arrow_up"} {
		typeLine(c, code)
	}
	if c.g.FocusDial != 0 || c.g.Progress.DialValues != (entities.DialBank{}) {
		t.Errorf("focus = %d dials = %v, want untouched", c.g.FocusDial, c.g.Progress.DialValues)
	}
}

func TestPressCommand(t *testing.T) {
	c := newTestController(t)
	advanceTo(t, c, state.StageRestart)

	typeLine(c, "press init verify restart init")
	want := []string{"INIT", "VERIFY", "RESTART"}
	if got := c.g.Progress.EnteredButtonSequence; !reflect.DeepEqual(got, want) {
		t.Errorf("sequence = %v, want %v", got, want)
	}
	if got, want := lastMessage(t, c), locale.Get("RESTART_FULL"); got != want {
		t.Errorf("console = %q, want %q", got, want)
	}
	if c.g.Panel != state.PanelRestart {
		t.Errorf("panel = %v, want restart", c.g.Panel)
	}
}

func TestPressCommandStopsAtUnknownButton(t *testing.T) {
	c := newTestController(t)
	advanceTo(t, c, state.StageRestart)

	typeLine(c, "p init reboot verify")
	if got := c.g.Progress.EnteredButtonSequence; !reflect.DeepEqual(got, []string{"INIT"}) {
		t.Errorf("sequence = %v, want [INIT]", got)
	}
	if got, want := lastMessage(t, c), locale.Getf("RESTART_UNKNOWN_BUTTON", "reboot"); got != want {
		t.Errorf("console = %q, want %q", got, want)
	}
}

func TestPressCommandBeforeConfigSet(t *testing.T) {
	c := newTestController(t)
	advanceTo(t, c, state.StageConfig)

	typeLine(c, "press INIT")
	if got, want := lastMessage(t, c), locale.Get("RESTART_LOCKED"); got != want {
		t.Errorf("console = %q, want %q", got, want)
	}
	if n := len(c.g.Progress.EnteredButtonSequence); n != 0 {
		t.Errorf("recorded %d presses while locked", n)
	}
}

func TestSafeCommandInputLimit(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantOpen bool
	}{
		{"exact", "safe 404500timeout", true},
		// Only the first 15 characters reach the lock; the rest is trailing space and junk.
		{"cut at limit", "safe 404500TIMEOUT  JUNK", true},
		{"junk inside limit", "safe 404500TIMEOUTJUNK", false},
		{"prefix", "safe X404500TIMEOUT", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(t)
			advanceTo(t, c, state.StageSafe)

			typeLine(c, tt.line)
			if c.g.Progress.SafeOpen != tt.wantOpen {
				t.Errorf("SafeOpen = %v, want %v", c.g.Progress.SafeOpen, tt.wantOpen)
			}
		})
	}
}

func TestSafeCommandWithoutCode(t *testing.T) {
	c := newTestController(t)
	advanceTo(t, c, state.StageSafe)

	typeLine(c, "safe")
	if got, want := lastMessage(t, c), locale.Getf("MISSING_ARGUMENT", "safe <code>"); got != want {
		t.Errorf("console = %q, want %q", got, want)
	}
}

func TestUnknownCommand(t *testing.T) {
	c := newTestController(t)
	typeLine(c, "dance wildly")
	if got, want := lastMessage(t, c), locale.Getf("UNKNOWN_COMMAND", "dance wildly"); got != want {
		t.Errorf("console = %q, want %q", got, want)
	}
}

func TestQuitCommand(t *testing.T) {
	c := newTestController(t)
	typeLine(c, "quit")
	if !c.g.Quit {
		t.Error("quit did not set Game.Quit")
	}
}

func TestNotesCommandPrintsLinesVerbatim(t *testing.T) {
	c := newTestController(t)
	typeLine(c, "note cpu at 100% %s")
	typeLine(c, "notes")
	if got, want := lastMessage(t, c), "cpu at 100% %s"; got != want {
		t.Errorf("console = %q, want %q", got, want)
	}
}
