package gameplay

import (
	"slices"
	"strconv"
	"strings"

	engineinput "escaperoom/pkg/engine/input"
	"escaperoom/pkg/game/devtools"
	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input system.
func (c *Controller) ProcessIntent(intent engineinput.Intent) {
	g := c.g
	p := g.Progress

	switch intent.Action {
	case engineinput.ActionNone:
		if intent.Text != "" {
			logMessage(g, state.KindWarn, "UNKNOWN_COMMAND", intent.Text)
		}
		return

	case engineinput.ActionAction:
		return

	case engineinput.ActionOpenMenu:
		RunGameplayMenu(c)
		return

	case engineinput.ActionHint:
		ShowHint(g)
		return

	case engineinput.ActionQuit:
		g.Quit = true
		return

	case engineinput.ActionScreenshot:
		filename, err := devtools.SaveScreenshotHTML(g, "")
		if err != nil {
			logMessage(g, state.KindError, "SCREENSHOT_FAILED", err.Error())
		} else {
			logMessage(g, state.KindInfo, "SCREENSHOT_SAVED", filename)
		}
		return

	case engineinput.ActionDump:
		path, err := devtools.DumpStateToFile(g, "")
		if err != nil {
			logMessage(g, state.KindError, "DUMP_FAILED", err.Error())
		} else {
			logMessage(g, state.KindInfo, "DUMP_SAVED", path)
		}
		return

	case engineinput.ActionResetGame:
		c.ResetAll()
		return

	case engineinput.ActionOpenLogs:
		c.OpenPanel(state.PanelLogs)
		return

	case engineinput.ActionOpenCode:
		c.OpenPanel(state.PanelCode)
		return

	case engineinput.ActionOpenConfig:
		c.OpenPanel(state.PanelConfig)
		return

	case engineinput.ActionOpenRestart:
		c.OpenPanel(state.PanelRestart)
		return

	case engineinput.ActionFixLine:
		c.setDraft(intent.Text)
		return

	case engineinput.ActionCheckCode:
		if p.CodeFixed {
			logMessage(g, state.KindMuted, "CODE_ALREADY_FIXED")
			return
		}
		g.Panel = state.PanelCode
		c.SubmitCodeFixes(g.CodeDrafts)
		return

	case engineinput.ActionClearCode:
		g.CodeDrafts = entities.CodeFixes{}
		g.FailedLines = nil
		logMessage(g, state.KindWarn, "CODE_RESET")
		return

	case engineinput.ActionToggleTips:
		if g.Panel != state.PanelCode && g.Panel != state.PanelConfig {
			logMessage(g, state.KindMuted, "TIPS_NONE")
			return
		}
		g.TipsShown = !g.TipsShown
		if g.TipsShown {
			logMessage(g, state.KindMuted, "TIPS_SHOWN")
		} else {
			logMessage(g, state.KindMuted, "TIPS_HIDDEN")
		}
		return

	case engineinput.ActionSafeCode:
		if intent.Text == "" {
			logMessage(g, state.KindWarn, "MISSING_ARGUMENT", "safe <code>")
			return
		}
		if p.SafeOpen {
			logMessage(g, state.KindMuted, "SAFE_ALREADY_OPEN")
			return
		}
		c.SubmitSafeCode(c.safe.Clamp(intent.Text))
		return

	case engineinput.ActionDialUp, engineinput.ActionDialDown:
		delta := 1
		if intent.Action == engineinput.ActionDialDown {
			delta = -1
		}
		index := g.FocusDial
		if arg := intent.Arg(0); arg != "" {
			n, err := strconv.Atoi(arg)
			if err != nil || n < 1 || n > entities.DialCount {
				logMessage(g, state.KindWarn, "DIAL_INVALID", arg)
				return
			}
			index = n - 1
		}
		c.turnDial(index, delta)
		return

	case engineinput.ActionUp, engineinput.ActionDown:
		if g.Panel != state.PanelConfig {
			return
		}
		delta := 1
		if intent.Action == engineinput.ActionDown {
			delta = -1
		}
		c.turnDial(g.FocusDial, delta)
		return

	case engineinput.ActionLeft, engineinput.ActionRight:
		if g.Panel != state.PanelConfig {
			return
		}
		step := 1
		if intent.Action == engineinput.ActionLeft {
			step = entities.DialCount - 1
		}
		g.FocusDial = (g.FocusDial + step) % entities.DialCount
		return

	case engineinput.ActionVerifyConfig:
		if p.ConfigSet {
			logMessage(g, state.KindSuccess, "CONFIG_DONE")
			return
		}
		g.Panel = state.PanelConfig
		c.SubmitConfig()
		return

	case engineinput.ActionResetDials:
		if !p.HasAccessKey {
			logMessage(g, state.KindWarn, "CONFIG_LOCKED")
			return
		}
		c.ResetDials()
		return

	case engineinput.ActionPressButton:
		if !p.ConfigSet {
			logMessage(g, state.KindWarn, "RESTART_LOCKED")
			return
		}
		if len(intent.Args) == 0 {
			logMessage(g, state.KindWarn, "MISSING_ARGUMENT", "press <"+strings.Join(g.Config.PanelLabels(), "|")+">")
			return
		}
		g.Panel = state.PanelRestart
		for _, label := range intent.Args {
			if !c.PressRestartButton(label).Accepted {
				break
			}
		}
		return

	case engineinput.ActionResetSequence:
		c.ResetRestartSequence()
		return

	case engineinput.ActionExecuteRestart:
		if p.SystemRestarted {
			logMessage(g, state.KindSuccess, "HINT_STAGE_COMPLETE")
			return
		}
		g.Panel = state.PanelRestart
		c.SubmitRestart()
		return

	case engineinput.ActionNote:
		c.AddNote(intent.Text)
		return

	case engineinput.ActionNotes:
		if strings.EqualFold(intent.Arg(0), "clear") {
			c.ClearNotes()
			return
		}
		c.ShowNotes()
		return
	}

	logMessage(g, state.KindWarn, "UNKNOWN_COMMAND", engineinput.ActionName(intent.Action))
}

// OpenPanel shows a tool panel. Locked panels explain what has to be done
// first; opening the logs panel reads the logs.
func (c *Controller) OpenPanel(panel state.Panel) {
	g := c.g
	p := g.Progress
	if g.Panel != panel {
		g.TipsShown = false
	}
	g.Panel = panel

	switch panel {
	case state.PanelLogs:
		c.ViewLogs()
	case state.PanelCode:
		if !p.ErrorLogsRead {
			logMessage(g, state.KindWarn, "CODE_LOCKED")
			return
		}
		if p.CodeFixed {
			return
		}
		lines := make([]string, len(entities.FixLines))
		for i, l := range entities.FixLines {
			lines[i] = strconv.Itoa(l)
		}
		logMessage(g, state.KindInfo, "CODE_OPENED")
		logMessage(g, state.KindWarn, "CODE_ERRORS_FOUND", len(lines), strings.Join(lines, ", "))
	case state.PanelConfig:
		if !p.HasAccessKey {
			logMessage(g, state.KindWarn, "CONFIG_LOCKED")
			return
		}
		if p.ConfigSet {
			return
		}
		logMessage(g, state.KindInfo, "CONFIG_OPENED")
		logMessage(g, state.KindMuted, "CONFIG_TIMER_NEEDED")
	case state.PanelRestart:
		if !p.ConfigSet {
			logMessage(g, state.KindWarn, "RESTART_LOCKED")
			return
		}
		if p.SystemRestarted {
			return
		}
		logMessage(g, state.KindInfo, "RESTART_OPENED")
		logMessage(g, state.KindMuted, "RESTART_PROMPT")
	}
}

// setDraft handles "fix <line> <text>".
func (c *Controller) setDraft(text string) {
	g := c.g
	if !g.Progress.ErrorLogsRead {
		logMessage(g, state.KindWarn, "CODE_LOCKED")
		return
	}

	lineArg, code, _ := strings.Cut(strings.TrimSpace(text), " ")
	code = strings.TrimSpace(code)
	if lineArg == "" || code == "" {
		logMessage(g, state.KindWarn, "MISSING_ARGUMENT", "fix <line> <text>")
		return
	}

	line, err := strconv.Atoi(lineArg)
	if err != nil || !slices.Contains(entities.FixLines, line) {
		valid := make([]string, len(entities.FixLines))
		for i, l := range entities.FixLines {
			valid[i] = strconv.Itoa(l)
		}
		logMessage(g, state.KindWarn, "CODE_UNKNOWN_LINE", lineArg, strings.Join(valid, ", "))
		return
	}

	g.Panel = state.PanelCode
	g.CodeDrafts = g.CodeDrafts.WithLine(line, code)
	logMessage(g, state.KindMuted, "CODE_DRAFT_SET", line)
}

// turnDial adjusts a dial from the config panel, which needs the access key.
func (c *Controller) turnDial(index, delta int) {
	g := c.g
	if !g.Progress.HasAccessKey {
		logMessage(g, state.KindWarn, "CONFIG_LOCKED")
		return
	}
	g.Panel = state.PanelConfig
	g.FocusDial = index
	c.AdjustDial(index, delta)
}
