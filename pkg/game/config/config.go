// Package config holds the puzzle constants of the escape room and the player's
// preferences.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// DialCount is the number of dials on the restart timer.
const DialCount = 3

// ButtonCount is the number of presses in a restart sequence.
const ButtonCount = 3

// ErrInvalid is wrapped by every validation problem reported by Validate.
var ErrInvalid = errors.New("invalid game config")

// ErrorEntry is one entry on the error log panel.
type ErrorEntry struct {
	Code      string `yaml:"code"`
	Message   string `yaml:"message"`
	Timestamp string `yaml:"timestamp"`
}

// CodeError describes one broken line shown in the code editor.
type CodeError struct {
	Line     int    `yaml:"line"`
	Original string `yaml:"original"`
	Fixed    string `yaml:"fixed"`
	Hint     string `yaml:"hint"` // message key
}

// GameConfig holds the answers and display data for one escape room.
// It is built once at startup and never mutated afterwards.
type GameConfig struct {
	ErrorSequence []string     `yaml:"error_sequence"`
	ErrorLog      []ErrorEntry `yaml:"error_log"`
	CodeErrors    []CodeError  `yaml:"code_errors"`

	SafeCode          string `yaml:"safe_code"`
	SafeCodeMaxLength int    `yaml:"safe_code_max_length"`
	AccessKeySerial   string `yaml:"access_key_serial"`

	RestartDialSequence   [DialCount]int      `yaml:"restart_dial_sequence"`
	RestartButtonSequence [ButtonCount]string `yaml:"restart_button_sequence"`
	RestartPanelLayout    [ButtonCount]string `yaml:"restart_panel_layout"`
}

// Default returns the configuration of the original AI system escape room.
func Default() GameConfig {
	return GameConfig{
		ErrorSequence: []string{"ERR_404", "ERR_500", "ERR_TIMEOUT"},
		ErrorLog: []ErrorEntry{
			{Code: "ERR_404", Message: "AI Core initialization failed", Timestamp: "2024-01-15 14:32:11"},
			{Code: "ERR_500", Message: "Database connection timeout", Timestamp: "2024-01-15 14:32:45"},
			{Code: "ERR_TIMEOUT", Message: "System resource exhaustion", Timestamp: "2024-01-15 14:33:02"},
		},
		CodeErrors: []CodeError{
			{Line: 3, Original: "const status = 'active'", Fixed: "const status = 'active';", Hint: "HINT_LINE_3"},
			{Line: 4, Original: "if (status == 'active')", Fixed: "if (status === 'active')", Hint: "HINT_LINE_4"},
			{Line: 9, Original: "console.log('Error:', err)", Fixed: "console.error('Error:', err);", Hint: "HINT_LINE_9"},
			{Line: 10, Original: "console.log('Error:', err)", Fixed: "console.error('Error:', err)", Hint: "HINT_LINE_10"},
		},
		SafeCode:              "404500TIMEOUT",
		SafeCodeMaxLength:     15,
		AccessKeySerial:       "AK-2024-0402",
		RestartDialSequence:   [DialCount]int{4, 0, 2},
		RestartButtonSequence: [ButtonCount]string{"INIT", "VERIFY", "RESTART"},
		RestartPanelLayout:    [ButtonCount]string{"VERIFY", "RESTART", "INIT"},
	}
}

// DeriveSafeCode joins the error codes with their ERR_ prefix removed,
// e.g. ERR_404, ERR_500, ERR_TIMEOUT -> 404500TIMEOUT.
func DeriveSafeCode(errorSequence []string) string {
	var b strings.Builder
	for _, code := range errorSequence {
		b.WriteString(strings.TrimPrefix(strings.TrimSpace(code), "ERR_"))
	}
	return strings.ToUpper(b.String())
}

// Validate reports every problem found in the configuration.
func (c GameConfig) Validate() error {
	var errs []error
	invalid := func(format string, a ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, a...)))
	}

	if len(c.ErrorSequence) == 0 {
		invalid("error_sequence is empty")
	}
	if strings.TrimSpace(c.SafeCode) == "" {
		invalid("safe_code is empty")
	}
	if c.SafeCodeMaxLength > 0 && len(strings.TrimSpace(c.SafeCode)) > c.SafeCodeMaxLength {
		invalid("safe_code is longer than %d characters", c.SafeCodeMaxLength)
	}
	for i, v := range c.RestartDialSequence {
		if v < 0 || v > 9 {
			invalid("restart_dial_sequence[%d] = %d, must be a digit", i, v)
		}
	}

	layout := mapset.New[string]()
	for _, label := range c.RestartPanelLayout {
		layout.Put(label)
	}
	for i, label := range c.RestartButtonSequence {
		if strings.TrimSpace(label) == "" {
			invalid("restart_button_sequence[%d] is empty", i)
			continue
		}
		if !layout.Has(label) {
			invalid("restart button %q is missing from restart_panel_layout", label)
		}
	}

	return errors.Join(errs...)
}

// PanelLabels returns the distinct restart button labels in display order.
func (c GameConfig) PanelLabels() []string {
	seen := mapset.New[string]()
	var labels []string
	for _, label := range c.RestartPanelLayout {
		if label == "" || seen.Has(label) {
			continue
		}
		seen.Put(label)
		labels = append(labels, label)
	}
	return labels
}
