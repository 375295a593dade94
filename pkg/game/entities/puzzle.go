// Package entities contains the puzzle pieces of the AI system escape room.
package entities

import (
	"sort"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// Lines that the code-fix puzzle asks the player to repair.
const (
	LineStatusSemicolon = 3
	LineStrictEquals    = 4
	LineHandlerLog      = 9
	LineHandlerError    = 10
)

// FixLines lists the repaired lines in the order they are shown.
var FixLines = []int{LineStatusSemicolon, LineStrictEquals, LineHandlerLog, LineHandlerError}

// CodeFixRule accepts a submitted line when it contains every substring in All
// and, if Any is non-empty, at least one substring in Any.
// Matching is deliberately by substring, not by parsing the code.
type CodeFixRule struct {
	Line int
	All  []string
	Any  []string
}

// Accepts reports whether the (trimmed) submission satisfies the rule.
func (r CodeFixRule) Accepts(submission string) bool {
	s := strings.TrimSpace(submission)
	for _, want := range r.All {
		if !strings.Contains(s, want) {
			return false
		}
	}
	if len(r.Any) == 0 {
		return true
	}
	for _, want := range r.Any {
		if strings.Contains(s, want) {
			return true
		}
	}
	return false
}

// CodeFixRules are the acceptance rules per line.
var CodeFixRules = map[int]CodeFixRule{
	LineStatusSemicolon: {Line: LineStatusSemicolon, All: []string{";", "status", "active"}},
	LineStrictEquals:    {Line: LineStrictEquals, All: []string{"===", "status", "active"}},
	LineHandlerLog:      {Line: LineHandlerLog, All: []string{";"}, Any: []string{"console.error", "console.log"}},
	LineHandlerError:    {Line: LineHandlerError, All: []string{"console.error", "err"}},
}

// CodeFixes holds the player's submission for each repaired line.
type CodeFixes struct {
	Line3  string
	Line4  string
	Line9  string
	Line10 string
}

// ForLine returns the submission for a line number, or "" for an unknown line.
func (f CodeFixes) ForLine(line int) string {
	switch line {
	case LineStatusSemicolon:
		return f.Line3
	case LineStrictEquals:
		return f.Line4
	case LineHandlerLog:
		return f.Line9
	case LineHandlerError:
		return f.Line10
	}
	return ""
}

// WithLine returns a copy of f with the submission for line replaced.
// Unknown lines leave f unchanged.
func (f CodeFixes) WithLine(line int, text string) CodeFixes {
	switch line {
	case LineStatusSemicolon:
		f.Line3 = text
	case LineStrictEquals:
		f.Line4 = text
	case LineHandlerLog:
		f.Line9 = text
	case LineHandlerError:
		f.Line10 = text
	}
	return f
}

// CheckCodeFixes runs every rule and returns the set of lines that failed.
// All lines are always checked so the player sees every remaining mistake.
func CheckCodeFixes(f CodeFixes) mapset.Set[int] {
	failed := mapset.New[int]()
	for _, line := range FixLines {
		if !CodeFixRules[line].Accepts(f.ForLine(line)) {
			failed.Put(line)
		}
	}
	return failed
}

// SortedLines returns the members of a line set in ascending order.
func SortedLines(lines mapset.Set[int]) []int {
	out := make([]int, 0, lines.Size())
	lines.Each(func(line int) {
		out = append(out, line)
	})
	sort.Ints(out)
	return out
}
