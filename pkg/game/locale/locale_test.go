package locale

import (
	"regexp"
	"testing"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		prefs []string
		want  string
	}{
		{nil, "nl"},
		{[]string{""}, "nl"},
		{[]string{"C"}, "nl"},
		{[]string{"en"}, "en"},
		{[]string{"en_GB.UTF-8"}, "en"},
		{[]string{"nl-BE"}, "nl"},
		{[]string{"", "en-US"}, "en"},
		{[]string{"fr"}, "nl"},
	}
	for _, tt := range tests {
		if got := Match(tt.prefs...); got != tt.want {
			t.Errorf("Match(%q) = %q, want %q", tt.prefs, got, tt.want)
		}
	}
}

func TestLoadAndGet(t *testing.T) {
	if err := Load("nl"); err != nil {
		t.Fatalf("Load(nl) error = %v", err)
	}
	if Current() != "nl" {
		t.Errorf("Current() = %q, want nl", Current())
	}
	if got := Get("BOOT_STARTED"); got != "Systeem gestart..." {
		t.Errorf("Get(BOOT_STARTED) = %q", got)
	}
	if got := Getf("LOGS_DETECTED", 3); got != "3 kritieke fouten gedetecteerd:" {
		t.Errorf("Getf(LOGS_DETECTED, 3) = %q", got)
	}

	if err := Load("en-GB"); err != nil {
		t.Fatalf("Load(en-GB) error = %v", err)
	}
	if got := Get("SAFE_WRONG"); got != "✗ Wrong code. Try again." {
		t.Errorf("Get(SAFE_WRONG) = %q", got)
	}
	if got := Get("NO_SUCH_KEY"); got != "NO_SUCH_KEY" {
		t.Errorf("Get(NO_SUCH_KEY) = %q, want the key back", got)
	}
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	msgid := regexp.MustCompile(`(?m)^msgid "([A-Z0-9_]+)"$`)
	keys := func(code string) map[string]bool {
		data, err := catalogs.ReadFile("po/" + code + ".po")
		if err != nil {
			t.Fatalf("reading %s catalog: %v", code, err)
		}
		out := map[string]bool{}
		for _, m := range msgid.FindAllStringSubmatch(string(data), -1) {
			out[m[1]] = true
		}
		return out
	}

	nl, en := keys("nl"), keys("en")
	for k := range nl {
		if !en[k] {
			t.Errorf("key %s missing from en catalog", k)
		}
	}
	for k := range en {
		if !nl[k] {
			t.Errorf("key %s missing from nl catalog", k)
		}
	}
}

func TestNext(t *testing.T) {
	if Next("nl") != "en" || Next("en") != "nl" || Next("xx") != "nl" {
		t.Errorf("Next cycle = %s %s %s", Next("nl"), Next("en"), Next("xx"))
	}
}
