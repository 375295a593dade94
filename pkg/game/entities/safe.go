package entities

import "strings"

// SafeLock is the safe holding the access key. It opens with the code built from
// the error log.
type SafeLock struct {
	Code      string
	MaxLength int // input field limit; 0 means unlimited
}

// NewSafeLock creates a safe opened by code.
func NewSafeLock(code string, maxLength int) *SafeLock {
	return &SafeLock{Code: code, MaxLength: maxLength}
}

// NormalizeCode trims and upper-cases an entered code.
func NormalizeCode(input string) string {
	return strings.ToUpper(strings.TrimSpace(input))
}

// CheckCode reports whether input opens the safe. Comparison ignores case and
// surrounding whitespace.
func (s *SafeLock) CheckCode(input string) bool {
	return NormalizeCode(input) == NormalizeCode(s.Code)
}

// Clamp cuts input to the input field limit, the way the safe's keypad only
// accepts MaxLength characters.
func (s *SafeLock) Clamp(input string) string {
	if s.MaxLength <= 0 {
		return input
	}
	r := []rune(input)
	if len(r) > s.MaxLength {
		return string(r[:s.MaxLength])
	}
	return input
}
