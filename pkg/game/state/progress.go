package state

import "escaperoom/pkg/game/entities"

// Stage is one of the ordered puzzle phases.
type Stage int

// Stages, in unlock order
const (
	StageLogs Stage = iota
	StageCodeFix
	StageSafe
	StageAccessKey
	StageConfig
	StageRestart
	StageComplete
)

var stageNames = [...]string{
	StageLogs:      "LOGS",
	StageCodeFix:   "CODE_FIX",
	StageSafe:      "SAFE",
	StageAccessKey: "ACCESS_KEY",
	StageConfig:    "CONFIG",
	StageRestart:   "RESTART",
	StageComplete:  "COMPLETE",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "UNKNOWN"
	}
	return stageNames[s]
}

// Progress is the mutable state of one session: six gates that only ever go
// from false to true, plus the working values of the puzzles.
type Progress struct {
	ErrorLogsRead   bool
	CodeFixed       bool
	SafeOpen        bool
	HasAccessKey    bool
	ConfigSet       bool
	SystemRestarted bool

	DialValues            entities.DialBank
	EnteredButtonSequence []string
	CodeFixAttempts       int
}

// NewProgress returns progress at the start of a session.
func NewProgress() *Progress {
	p := &Progress{}
	p.Reset()
	return p
}

// Reset puts every field back to its default.
func (p *Progress) Reset() {
	*p = Progress{EnteredButtonSequence: []string{}}
}

// Stage derives the current stage from the first unset gate. The access key
// stage has no guard of its own, so holding the key already reports CONFIG.
func (p *Progress) Stage() Stage {
	switch {
	case !p.ErrorLogsRead:
		return StageLogs
	case !p.CodeFixed:
		return StageCodeFix
	case !p.SafeOpen || !p.HasAccessKey:
		return StageSafe
	case !p.ConfigSet:
		return StageConfig
	case !p.SystemRestarted:
		return StageRestart
	}
	return StageComplete
}

// Gates returns the six gates in unlock order.
func (p *Progress) Gates() [6]bool {
	return [6]bool{p.ErrorLogsRead, p.CodeFixed, p.SafeOpen, p.HasAccessKey, p.ConfigSet, p.SystemRestarted}
}

// Consistent reports whether the gate implications hold.
func (p *Progress) Consistent() bool {
	if p.HasAccessKey && !(p.CodeFixed && p.SafeOpen) {
		return false
	}
	if p.ConfigSet && !p.HasAccessKey {
		return false
	}
	if p.SystemRestarted && !p.ConfigSet {
		return false
	}
	return len(p.EnteredButtonSequence) <= entities.SequenceLength
}
