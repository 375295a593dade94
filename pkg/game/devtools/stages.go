package devtools

import (
	"strings"

	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/state"
)

// ParseStage returns the stage named name (e.g. "config" or "CODE_FIX").
func ParseStage(name string) (state.Stage, bool) {
	name = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(name), "-", "_"))
	for s := state.StageLogs; s <= state.StageComplete; s++ {
		if s.String() == name {
			return s, true
		}
	}
	return state.StageLogs, false
}

// SkipToStage starts the session at stage for testing: every gate before it
// is set and the inputs of the solved puzzles hold their solutions. The
// access key comes with the safe, so ACCESS_KEY lands on CONFIG.
func SkipToStage(g *state.Game, stage state.Stage) {
	p := g.Progress
	p.Reset()
	g.ResetSession()

	if stage > state.StageLogs {
		p.ErrorLogsRead = true
	}
	if stage > state.StageCodeFix {
		for _, ce := range g.Config.CodeErrors {
			g.CodeDrafts = g.CodeDrafts.WithLine(ce.Line, ce.Fixed)
		}
		p.CodeFixed = true
	}
	if stage > state.StageSafe {
		p.SafeOpen = true
		p.HasAccessKey = true
	}
	if stage > state.StageConfig {
		p.DialValues = entities.DialBank(g.Config.RestartDialSequence)
		p.ConfigSet = true
	}
	if stage > state.StageRestart {
		p.EnteredButtonSequence = append([]string{}, g.Config.RestartButtonSequence[:]...)
		p.SystemRestarted = true
		g.GameComplete = true
	}
}
