package gameplay

import (
	"escaperoom/pkg/game/locale"
	"escaperoom/pkg/game/state"
)

// StageHintKey returns the message key telling the player what to do at stage.
func StageHintKey(stage state.Stage) string {
	switch stage {
	case state.StageLogs:
		return "HINT_STAGE_LOGS"
	case state.StageCodeFix:
		return "HINT_STAGE_CODE_FIX"
	case state.StageSafe, state.StageAccessKey:
		return "HINT_STAGE_SAFE"
	case state.StageConfig:
		return "HINT_STAGE_CONFIG"
	case state.StageRestart:
		return "HINT_STAGE_RESTART"
	}
	return "HINT_STAGE_COMPLETE"
}

// ShowHint writes the hint for the current stage and the command list to the
// console, followed by the puzzle hints unlocked so far.
func ShowHint(g *state.Game) {
	collectHints(g)
	logMessage(g, state.KindInfo, StageHintKey(g.Progress.Stage()))
	logMessage(g, state.KindMuted, "COMMANDS")
	for _, h := range g.Hints {
		logf(g, state.KindMuted, "%s", h)
	}
}

// collectHints fills g.Hints with the puzzle hints unlocked so far.
func collectHints(g *state.Game) {
	g.Hints = nil
	p := g.Progress
	if p.ErrorLogsRead {
		g.AddHint(locale.Get("LOGS_HINT"))
	}
	if p.HasAccessKey {
		g.AddHint(locale.Get("KEY_HINT"))
	}
}
