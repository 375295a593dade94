package input

import (
	"reflect"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line   string
		action Action
		args   []string
		text   string
	}{
		{"", ActionAction, nil, ""},
		{"logs", ActionOpenLogs, nil, ""},
		{"  LOGS  ", ActionOpenLogs, nil, ""},
		{"fix 3 const status = 'active';", ActionFixLine, []string{"3", "const", "status", "=", "'active';"}, "3 const status = 'active';"},
		{"safe 404500timeout", ActionSafeCode, []string{"404500timeout"}, "404500timeout"},
		{"press INIT", ActionPressButton, []string{"INIT"}, "INIT"},
		{"arrow_left", ActionLeft, nil, ""},
		{"notes clear", ActionNotes, []string{"clear"}, "clear"},
	}
	for _, tt := range tests {
		got := ParseLine(DeviceTerminal, tt.line)
		if got.Action != tt.action {
			t.Errorf("ParseLine(%q).Action = %v, want %v", tt.line, ActionName(got.Action), ActionName(tt.action))
		}
		if len(tt.args) > 0 && !reflect.DeepEqual(got.Args, tt.args) {
			t.Errorf("ParseLine(%q).Args = %q, want %q", tt.line, got.Args, tt.args)
		}
		if got.Text != tt.text {
			t.Errorf("ParseLine(%q).Text = %q, want %q", tt.line, got.Text, tt.text)
		}
	}
}

func TestParseLine_UnknownCommandKeepsText(t *testing.T) {
	got := ParseLine(DeviceTerminal, "dance wildly")
	if got.Action != ActionNone {
		t.Errorf("Action = %v, want None", ActionName(got.Action))
	}
	if got.Text != "dance wildly" {
		t.Errorf("Text = %q, want %q", got.Text, "dance wildly")
	}
}

func TestIntentArg(t *testing.T) {
	i := Intent{Args: []string{"a", "b"}}
	if i.Arg(1) != "b" || i.Arg(2) != "" || i.Arg(-1) != "" {
		t.Errorf("Arg returned %q %q %q", i.Arg(1), i.Arg(2), i.Arg(-1))
	}
}

func TestGetBindingsByAction(t *testing.T) {
	got := GetBindingsByAction()[ActionExecuteRestart]
	want := []string{"execute", "run"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("bindings for execute = %v, want %v", got, want)
	}
	for act := range GetBindingsByAction() {
		if ActionName(act) == "None" {
			t.Errorf("action %d has bindings but no name", act)
		}
	}
}
