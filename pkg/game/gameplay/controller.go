// Package gameplay drives the puzzle progression of the escape room and maps
// player intents onto it.
package gameplay

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"escaperoom/pkg/game/config"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/locale"
	"escaperoom/pkg/game/notes"
	"escaperoom/pkg/game/state"
)

// Reason is one failed sub-check, kept as a message key so it can be shown in
// the active language.
type Reason struct {
	Key  string
	Args []any
}

func (r Reason) String() string {
	return locale.Getf(r.Key, r.Args...)
}

// ValidationFailed is the only error a puzzle submission produces. It is
// always recoverable; the player may retry without limit.
type ValidationFailed struct {
	Stage   state.Stage
	Reasons []Reason
}

func (e *ValidationFailed) Error() string {
	parts := make([]string, len(e.Reasons))
	for i, r := range e.Reasons {
		parts[i] = r.String()
	}
	return locale.Getf("VALIDATION_FAILED", e.Stage.String(), strings.Join(parts, "; "))
}

// Has reports whether a reason with key is present.
func (e *ValidationFailed) Has(key string) bool {
	for _, r := range e.Reasons {
		if r.Key == key {
			return true
		}
	}
	return false
}

// Result is the outcome of a puzzle submission. Stage is the stage reached
// (on success) or the stage the submission belongs to (on failure).
type Result struct {
	Success bool
	Stage   state.Stage
	Err     error
}

// CodeFixResult adds the lines that failed their rule.
type CodeFixResult struct {
	Result
	FailedChecks mapset.Set[int]
}

// ButtonResult is the outcome of pressing a restart button.
type ButtonResult struct {
	Accepted bool
	Sequence []string
}

// Controller is the puzzle progression state machine. It owns the progress
// of one session and writes console lines for every operation.
type Controller struct {
	g     *state.Game
	safe  *entities.SafeLock
	panel *entities.ButtonPanel

	// Notes persists the notes field; nil keeps notes in memory only.
	Notes notes.Store

	// Preferences receives language changes from the menu; may be nil.
	Preferences *config.Preferences
}

// NewController creates a controller for g using g's configuration.
func NewController(g *state.Game) *Controller {
	return &Controller{
		g:     g,
		safe:  entities.NewSafeLock(g.Config.SafeCode, g.Config.SafeCodeMaxLength),
		panel: entities.NewButtonPanel(g.Config.PanelLabels()),
	}
}

// Game returns the game the controller drives.
func (c *Controller) Game() *state.Game {
	return c.g
}

// Stage returns the current stage.
func (c *Controller) Stage() state.Stage {
	return c.g.Progress.Stage()
}

func (c *Controller) locked(stage state.Stage, key string) Result {
	logMessage(c.g, state.KindWarn, key)
	return Result{Stage: stage, Err: &ValidationFailed{Stage: stage, Reasons: []Reason{{Key: key}}}}
}

// ViewLogs marks the error logs as read. The log lines are written to the
// console the first time only.
func (c *Controller) ViewLogs() {
	p := c.g.Progress
	if p.ErrorLogsRead {
		return
	}
	p.ErrorLogsRead = true

	logMessage(c.g, state.KindInfo, "LOGS_LOADED")
	logMessage(c.g, state.KindError, "LOGS_DETECTED", len(c.g.Config.ErrorLog))
	for _, e := range c.g.Config.ErrorLog {
		logMessage(c.g, state.KindError, "LOGS_ENTRY", e.Code, e.Message)
	}
	logMessage(c.g, state.KindSuccess, "LOGS_NOTED")
}

// SubmitCodeFixes checks all four repaired lines at once. A failure counts an
// attempt and reports every failing line.
func (c *Controller) SubmitCodeFixes(fixes entities.CodeFixes) CodeFixResult {
	p := c.g.Progress
	if !p.ErrorLogsRead {
		return CodeFixResult{
			Result:       c.locked(state.StageCodeFix, "REASON_LOCKED_LOGS"),
			FailedChecks: mapset.New[int](),
		}
	}

	failed := entities.CheckCodeFixes(fixes)
	if failed.Size() == 0 {
		p.CodeFixed = true
		c.g.FailedLines = nil
		logMessage(c.g, state.KindSuccess, "CODE_FIXED")
		logMessage(c.g, state.KindSuccess, "CODE_SAFE_ACCESS")
		return CodeFixResult{
			Result:       Result{Success: true, Stage: p.Stage()},
			FailedChecks: failed,
		}
	}

	p.CodeFixAttempts++
	lines := entities.SortedLines(failed)
	c.g.FailedLines = lines

	reasons := make([]Reason, 0, len(lines))
	logMessage(c.g, state.KindError, "CODE_NOT_FIXED")
	for _, line := range lines {
		r := Reason{Key: c.hintKey(line)}
		reasons = append(reasons, r)
		logf(c.g, state.KindWarn, "  • %s", r.String())
	}

	return CodeFixResult{
		Result: Result{
			Stage: state.StageCodeFix,
			Err:   &ValidationFailed{Stage: state.StageCodeFix, Reasons: reasons},
		},
		FailedChecks: failed,
	}
}

func (c *Controller) hintKey(line int) string {
	for _, ce := range c.g.Config.CodeErrors {
		if ce.Line == line && ce.Hint != "" {
			return ce.Hint
		}
	}
	return fmt.Sprintf("HINT_LINE_%d", line)
}

// SubmitSafeCode opens the safe when code matches, ignoring case and
// surrounding whitespace. Opening the safe also hands over the access key.
func (c *Controller) SubmitSafeCode(code string) Result {
	p := c.g.Progress
	if !p.CodeFixed {
		return c.locked(state.StageSafe, "REASON_LOCKED_CODE")
	}

	if !c.safe.CheckCode(code) {
		logMessage(c.g, state.KindError, "SAFE_WRONG")
		return Result{
			Stage: state.StageSafe,
			Err:   &ValidationFailed{Stage: state.StageSafe, Reasons: []Reason{{Key: "REASON_WRONG_CODE"}}},
		}
	}

	p.SafeOpen = true
	p.HasAccessKey = true
	logMessage(c.g, state.KindSuccess, "SAFE_OPENED")
	return Result{Success: true, Stage: state.StageAccessKey}
}

// DialKey returns the message key naming dial index.
func DialKey(index int) string {
	switch index {
	case 0:
		return "DIAL_HOURS"
	case 1:
		return "DIAL_MINUTES"
	}
	return "DIAL_SECONDS"
}

// AdjustDial turns one dial by +1 or -1 with wraparound and returns its new
// value. An error is returned only for an index or delta out of range.
func (c *Controller) AdjustDial(index, delta int) (int, error) {
	v, err := c.g.Progress.DialValues.Step(index, delta)
	if err != nil {
		return 0, err
	}
	logMessage(c.g, state.KindMuted, "DIAL_CHANGED", strings.ToLower(locale.Get(DialKey(index))), v)
	return v, nil
}

// ResetDials sets every dial back to 0.
func (c *Controller) ResetDials() {
	c.g.Progress.DialValues.Reset()
	logMessage(c.g, state.KindWarn, "CONFIG_RESET")
}

// SubmitConfig checks the dials against the restart timer.
func (c *Controller) SubmitConfig() Result {
	p := c.g.Progress
	if !p.HasAccessKey {
		return c.locked(state.StageConfig, "REASON_LOCKED_KEY")
	}

	want := c.g.Config.RestartDialSequence
	if p.DialValues.Matches(want) {
		p.ConfigSet = true
		logMessage(c.g, state.KindSuccess, "CONFIG_OK")
		logMessage(c.g, state.KindSuccess, "CONFIG_READY")
		return Result{Success: true, Stage: p.Stage()}
	}

	var reasons []Reason
	for i, v := range p.DialValues {
		if v != want[i] {
			reasons = append(reasons, Reason{Key: "REASON_DIAL_MISMATCH", Args: []any{locale.Get(DialKey(i))}})
		}
	}
	logMessage(c.g, state.KindError, "CONFIG_WRONG")
	return Result{
		Stage: state.StageConfig,
		Err:   &ValidationFailed{Stage: state.StageConfig, Reasons: reasons},
	}
}

// PressRestartButton records one press. Presses are ignored once three are
// recorded and for labels the panel does not have.
func (c *Controller) PressRestartButton(label string) ButtonResult {
	p := c.g.Progress
	seq, ok := c.panel.Press(p.EnteredButtonSequence, label)
	switch {
	case ok:
		p.EnteredButtonSequence = seq
		logMessage(c.g, state.KindInfo, "RESTART_PRESSED", entities.NormalizeLabel(label))
	case !c.panel.HasButton(label):
		logMessage(c.g, state.KindWarn, "RESTART_UNKNOWN_BUTTON", strings.TrimSpace(label))
	default:
		logMessage(c.g, state.KindWarn, "RESTART_FULL")
	}

	out := make([]string, len(p.EnteredButtonSequence))
	copy(out, p.EnteredButtonSequence)
	return ButtonResult{Accepted: ok, Sequence: out}
}

// ResetRestartSequence clears the recorded presses.
func (c *Controller) ResetRestartSequence() {
	c.g.Progress.EnteredButtonSequence = []string{}
	logMessage(c.g, state.KindWarn, "RESTART_SEQ_RESET")
}

// SubmitRestart checks the recorded presses against the restart sequence.
func (c *Controller) SubmitRestart() Result {
	p := c.g.Progress
	if !p.ConfigSet {
		return c.locked(state.StageRestart, "REASON_LOCKED_CONFIG")
	}

	if entities.SequenceMatches(p.EnteredButtonSequence, c.g.Config.RestartButtonSequence) {
		p.SystemRestarted = true
		c.g.GameComplete = true
		logMessage(c.g, state.KindSuccess, "RESTART_OK")
		logMessage(c.g, state.KindInfo, "RESTART_REBOOTING")
		logMessage(c.g, state.KindSuccess, "RESTART_ONLINE")
		logMessage(c.g, state.KindSuccess, "RESTART_ALL_OK")
		logMessage(c.g, state.KindSuccess, "RESTART_COMPLETE")
		return Result{Success: true, Stage: state.StageComplete}
	}

	reason := Reason{Key: "REASON_SEQUENCE_ORDER"}
	if n := len(p.EnteredButtonSequence); n != entities.SequenceLength {
		reason = Reason{Key: "REASON_SEQUENCE_SHORT", Args: []any{n, entities.SequenceLength}}
	}
	logMessage(c.g, state.KindError, "RESTART_WRONG")
	return Result{
		Stage: state.StageRestart,
		Err:   &ValidationFailed{Stage: state.StageRestart, Reasons: []Reason{reason}},
	}
}

// ResetAll puts the progress and the session's UI state back to the start.
// The configuration and the notes are kept.
func (c *Controller) ResetAll() {
	c.g.Progress.Reset()
	c.g.ResetSession()
	c.g.ClearMessages()
	logMessage(c.g, state.KindWarn, "RESET_SYSTEM")
	logMessage(c.g, state.KindMuted, "RESET_START_HINT")
}

// logMessage adds the translation of key, filled with args, to the game's console.
func logMessage(g *state.Game, kind state.MessageKind, key string, args ...any) {
	g.AddMessage(kind, locale.Getf(key, args...))
}

// logf adds an already translated line to the game's console.
func logf(g *state.Game, kind state.MessageKind, format string, a ...any) {
	g.AddMessage(kind, fmt.Sprintf(format, a...))
}
