package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/state"
)

const stateDumpFilename = "state.txt"

// DumpStateToFile writes a debug dump to state.txt in dir (the working
// directory when empty): progress gates, puzzle inputs, configuration and the
// console. The format is sections of key: value lines.
func DumpStateToFile(g *state.Game, dir string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, stateDumpFilename))
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteState(f, g); err != nil {
		return "", fmt.Errorf("writing state dump: %w", err)
	}
	return absPath, nil
}

// WriteState writes the dump of DumpStateToFile to w.
func WriteState(w io.Writer, g *state.Game) error {
	p := g.Progress
	cfg := g.Config
	var b strings.Builder

	fmt.Fprintln(&b, "=== STATE DUMP ===")
	fmt.Fprintln(&b, "")
	fmt.Fprintln(&b, "--- Progress ---")
	fmt.Fprintf(&b, "stage: %s\n", p.Stage())
	fmt.Fprintf(&b, "error_logs_read: %v\n", p.ErrorLogsRead)
	fmt.Fprintf(&b, "code_fixed: %v\n", p.CodeFixed)
	fmt.Fprintf(&b, "safe_open: %v\n", p.SafeOpen)
	fmt.Fprintf(&b, "has_access_key: %v\n", p.HasAccessKey)
	fmt.Fprintf(&b, "config_set: %v\n", p.ConfigSet)
	fmt.Fprintf(&b, "system_restarted: %v\n", p.SystemRestarted)
	fmt.Fprintf(&b, "consistent: %v\n", p.Consistent())
	fmt.Fprintln(&b, "")

	fmt.Fprintln(&b, "--- Inputs ---")
	fmt.Fprintf(&b, "code_fix_attempts: %d\n", p.CodeFixAttempts)
	for _, line := range entities.FixLines {
		fmt.Fprintf(&b, "draft_line_%d: %q\n", line, g.CodeDrafts.ForLine(line))
	}
	fmt.Fprintf(&b, "failed_lines: %v\n", g.FailedLines)
	fmt.Fprintf(&b, "dial_values: %v\n", p.DialValues)
	fmt.Fprintf(&b, "focus_dial: %d\n", g.FocusDial)
	fmt.Fprintf(&b, "button_sequence: %s\n", entities.FormatSequence(p.EnteredButtonSequence))
	fmt.Fprintf(&b, "panel: %s\n", g.Panel)
	fmt.Fprintln(&b, "")

	fmt.Fprintln(&b, "--- Configuration ---")
	fmt.Fprintf(&b, "error_sequence: %s\n", strings.Join(cfg.ErrorSequence, ","))
	fmt.Fprintf(&b, "safe_code: %s\n", cfg.SafeCode)
	fmt.Fprintf(&b, "access_key_serial: %s\n", cfg.AccessKeySerial)
	fmt.Fprintf(&b, "restart_dial_sequence: %v\n", cfg.RestartDialSequence)
	fmt.Fprintf(&b, "restart_button_sequence: %s\n", strings.Join(cfg.RestartButtonSequence[:], ","))
	fmt.Fprintf(&b, "restart_panel_layout: %s\n", strings.Join(cfg.RestartPanelLayout[:], ","))
	fmt.Fprintln(&b, "")

	fmt.Fprintln(&b, "--- Console ---")
	for _, m := range g.Messages {
		fmt.Fprintf(&b, "[%s] %s\n", m.Kind, stripANSI(m.Text))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
