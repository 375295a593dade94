package entities

import (
	"reflect"
	"testing"
)

var correctFixes = CodeFixes{
	Line3:  "const status = 'active';",
	Line4:  "if (status === 'active')",
	Line9:  "console.error('Error:', err);",
	Line10: "console.error('Error:', err)",
}

func TestCheckCodeFixes_AllCorrect(t *testing.T) {
	failed := CheckCodeFixes(correctFixes)
	if failed.Size() != 0 {
		t.Errorf("CheckCodeFixes(correct) failed lines = %v, want none", SortedLines(failed))
	}
}

func TestCheckCodeFixes_EmptySubmissionFailsEveryLine(t *testing.T) {
	got := SortedLines(CheckCodeFixes(CodeFixes{}))
	want := []int{3, 4, 9, 10}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CheckCodeFixes(empty) = %v, want %v", got, want)
	}
}

func TestCodeFixRules(t *testing.T) {
	tests := []struct {
		line  int
		input string
		want  bool
	}{
		{3, "const status = 'active';", true},
		{3, "const status = 'active'", false},
		{3, "  status active ;  ", true},
		{3, "const state = 'active';", false},
		{4, "if (status === 'active')", true},
		{4, "if (status == 'active')", false},
		{4, "===statusactive", true},
		{9, "console.error('Error:', err);", true},
		{9, "console.log('Error:', err);", true},
		{9, "console.log('Error:', err)", false},
		{9, "console.warn('Error:', err);", false},
		{10, "console.error('Error:', err)", true},
		{10, "console.log('Error:', err)", false},
		// "console.error" contains "err", so the second clause never decides.
		{10, "console.error('Oops')", true},
		{10, "console.log(err)", false},
	}
	for _, tt := range tests {
		got := CodeFixRules[tt.line].Accepts(tt.input)
		if got != tt.want {
			t.Errorf("rule %d Accepts(%q) = %v, want %v", tt.line, tt.input, got, tt.want)
		}
	}
}

func TestCheckCodeFixes_ReportsOnlyBrokenLines(t *testing.T) {
	fixes := correctFixes.WithLine(LineStatusSemicolon, "const status = 'active'")
	fixes = fixes.WithLine(LineHandlerError, "console.log('Error:', err)")

	got := SortedLines(CheckCodeFixes(fixes))
	want := []int{3, 10}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("failed lines = %v, want %v", got, want)
	}
}

func TestCodeFixes_WithLineUnknownLine(t *testing.T) {
	got := correctFixes.WithLine(5, "x")
	if got != correctFixes {
		t.Errorf("WithLine(5) changed fixes: %+v", got)
	}
	if correctFixes.ForLine(5) != "" {
		t.Errorf("ForLine(5) = %q, want empty", correctFixes.ForLine(5))
	}
}

func TestSafeLock_CheckCode(t *testing.T) {
	safe := NewSafeLock("404500TIMEOUT", 15)
	tests := map[string]bool{
		"404500TIMEOUT":       true,
		"404500timeout":       true,
		"  404500TimeOut \n":  true,
		"404500":              false,
		"ERR_404ERR_500":      false,
		"":                    false,
		"404500TIMEOUT extra": false,
	}
	for input, want := range tests {
		if got := safe.CheckCode(input); got != want {
			t.Errorf("CheckCode(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestSafeLock_Clamp(t *testing.T) {
	safe := NewSafeLock("X", 4)
	if got := safe.Clamp("abcdef"); got != "abcd" {
		t.Errorf("Clamp(abcdef) = %q, want abcd", got)
	}
	if got := safe.Clamp("ab"); got != "ab" {
		t.Errorf("Clamp(ab) = %q, want ab", got)
	}
	unlimited := NewSafeLock("X", 0)
	if got := unlimited.Clamp("abcdef"); got != "abcdef" {
		t.Errorf("unlimited Clamp(abcdef) = %q", got)
	}
}
