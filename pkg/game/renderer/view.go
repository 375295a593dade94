package renderer

import (
	"fmt"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"escaperoom/pkg/game/entities"
	"escaperoom/pkg/game/locale"
	"escaperoom/pkg/game/state"
)

// Line is one line of text with the style it is drawn in.
type Line struct {
	Text  string
	Style TextStyle
}

// StatusLight is one of the status dots on the board.
type StatusLight struct {
	Label string
	On    bool
}

// Tool is a debug tool button: the command that opens it and its label.
type Tool struct {
	Command string
	Label   string
	Locked  bool
	Active  bool
}

// View is everything a backend draws for one frame, already translated.
type View struct {
	Title     string
	Banner    Line
	Status    []StatusLight
	Tools     []Tool
	Inventory []Line
	Panel     []Line
	Console   []Line
	Notes     []Line
	Prompt    string
	Complete  bool
}

// ProgramLine is a line of the program shown in the code editor.
type ProgramLine struct {
	Number int
	Text   string
}

// programListing is the program in the code editor. The broken lines are
// filled in from the game configuration.
var programListing = []ProgramLine{
	{1, "// AI Core Initialization Function"},
	{2, "function initAI() {"},
	{3, ""},
	{4, ""},
	{5, "    console.log('AI initialized');"},
	{6, "  }"},
	{7, "}"},
	{8, "function handleError(err) {"},
	{9, ""},
	{10, ""},
	{11, "}"},
}

// Program returns the code editor listing for g's configuration.
func Program(g *state.Game) []ProgramLine {
	out := make([]ProgramLine, len(programListing))
	copy(out, programListing)
	for i, pl := range out {
		if pl.Text != "" {
			continue
		}
		for _, ce := range g.Config.CodeErrors {
			if ce.Line == pl.Number {
				out[i].Text = "  " + ce.Original
				if pl.Number == entities.LineStrictEquals {
					out[i].Text += " {"
				}
			}
		}
	}
	return out
}

// BuildView turns the game state into a frame for the backends.
func BuildView(g *state.Game) View {
	p := g.Progress
	v := View{
		Title:    locale.Get("GAME_TITLE"),
		Banner:   banner(p),
		Prompt:   locale.Get("INPUT_PROMPT"),
		Complete: g.GameComplete,
		Status: []StatusLight{
			{Label: locale.Get("STATUS_AI"), On: p.SystemRestarted},
			{Label: locale.Get("STATUS_LOGS"), On: p.ErrorLogsRead},
			{Label: locale.Get("STATUS_CODE"), On: p.CodeFixed},
			{Label: locale.Get("STATUS_RESTART"), On: p.ConfigSet},
		},
	}

	locked := lockedPanels(p)
	for _, t := range []struct {
		panel   state.Panel
		command string
		key     string
	}{
		{state.PanelLogs, "logs", "TOOL_LOGS"},
		{state.PanelCode, "code", "TOOL_CODE"},
		{state.PanelConfig, "config", "TOOL_CONFIG"},
		{state.PanelRestart, "restart", "TOOL_RESTART"},
	} {
		v.Tools = append(v.Tools, Tool{
			Command: t.command,
			Label:   locale.Get(t.key),
			Locked:  locked.Has(t.panel),
			Active:  g.Panel == t.panel,
		})
	}

	if p.HasAccessKey {
		v.Inventory = []Line{
			{IconKey + " " + locale.Get("ACCESS_KEY"), StyleSuccess},
			{locale.Getf("SERIAL_NUMBER", g.Config.AccessKeySerial), StyleSubtle},
		}
	} else {
		v.Inventory = []Line{{locale.Get("INVENTORY_EMPTY"), StyleSubtle}}
	}

	v.Panel = PanelLines(g)

	for _, m := range g.Messages {
		v.Console = append(v.Console, Line{m.Text, KindStyle(m.Kind)})
	}

	if g.Notes == "" {
		v.Notes = []Line{{locale.Get("NOTES_EMPTY"), StyleSubtle}}
	} else {
		for _, n := range strings.Split(g.Notes, "\n") {
			v.Notes = append(v.Notes, Line{n, StyleNormal})
		}
	}
	return v
}

func banner(p *state.Progress) Line {
	label := locale.Get("BANNER_LABEL") + " "
	switch {
	case p.SystemRestarted:
		return Line{label + locale.Get("BANNER_ONLINE"), StyleSuccess}
	case p.ConfigSet:
		return Line{label + locale.Get("BANNER_CONFIG"), StyleWarn}
	}
	return Line{label + locale.Get("BANNER_OFFLINE"), StyleError}
}

// lockedPanels returns the tool panels whose prerequisite gate is unset.
func lockedPanels(p *state.Progress) mapset.Set[state.Panel] {
	locked := mapset.New[state.Panel]()
	if !p.ErrorLogsRead {
		locked.Put(state.PanelCode)
	}
	if !p.HasAccessKey {
		locked.Put(state.PanelConfig)
	}
	if !p.ConfigSet {
		locked.Put(state.PanelRestart)
	}
	return locked
}

// PanelLines returns the content of the open tool panel. After completion
// the success screen replaces every panel.
func PanelLines(g *state.Game) []Line {
	if g.GameComplete {
		return []Line{
			{locale.Get("SUCCESS_TITLE"), StyleSuccess},
			{locale.Get("SUCCESS_TEXT"), StyleNormal},
			{locale.Get("PLAY_AGAIN"), StyleSubtle},
		}
	}

	switch g.Panel {
	case state.PanelLogs:
		return logsPanel(g)
	case state.PanelCode:
		return codePanel(g)
	case state.PanelConfig:
		return configPanel(g)
	case state.PanelRestart:
		return restartPanel(g)
	}
	return []Line{
		{locale.Get("WELCOME_TITLE"), StyleTitle},
		{locale.Get("WELCOME_TEXT"), StyleNormal},
	}
}

func logsPanel(g *state.Game) []Line {
	lines := []Line{
		{locale.Get("LOGS_TITLE"), StyleTitle},
		{locale.Get("LOGS_DESCRIPTION"), StyleSubtle},
	}
	for _, e := range g.Config.ErrorLog {
		lines = append(lines,
			Line{"", StyleNormal},
			Line{locale.Getf("ERROR_CODE_LABEL", e.Code), StyleError},
			Line{locale.Getf("TIMESTAMP_LABEL", e.Timestamp), StyleSubtle},
			Line{e.Message, StyleNormal},
		)
	}
	return append(lines, Line{"", StyleNormal}, Line{locale.Get("LOGS_HINT"), StyleInfo})
}

func codePanel(g *state.Game) []Line {
	p := g.Progress
	lines := []Line{{locale.Get("CODE_TITLE"), StyleTitle}}
	if !p.ErrorLogsRead {
		return append(lines, Line{locale.Get("CODE_LOCKED"), StyleWarn})
	}
	if p.CodeFixed {
		lines = append(lines, Line{locale.Get("CODE_FIXED"), StyleSuccess}, Line{"", StyleNormal})
		return append(lines, safePanel(g)...)
	}

	lines = append(lines, Line{locale.Getf("CODE_DESCRIPTION", len(entities.FixLines)), StyleSubtle}, Line{"", StyleNormal})

	failed := mapset.New[int]()
	for _, l := range g.FailedLines {
		failed.Put(l)
	}
	for _, pl := range Program(g) {
		text := fmt.Sprintf("%2d  %s", pl.Number, pl.Text)
		style := StyleCode
		if _, ok := entities.CodeFixRules[pl.Number]; ok {
			text = fmt.Sprintf("%2d %s%s", pl.Number, IconBroken, pl.Text)
			style = StyleWarn
			if failed.Has(pl.Number) {
				style = StyleError
			}
		}
		lines = append(lines, Line{text, style})
	}

	if g.TipsShown {
		lines = append(lines, Line{"", StyleNormal}, Line{locale.Get("TIPS_CODE_TITLE"), StyleInfo})
		for _, line := range entities.FixLines {
			lines = append(lines, Line{"  • " + locale.Get(fmt.Sprintf("HINT_LINE_%d", line)), StyleInfo})
		}
	}

	lines = append(lines, Line{"", StyleNormal})
	for _, line := range entities.FixLines {
		draft := g.CodeDrafts.ForLine(line)
		style := StyleCode
		if draft == "" {
			draft = "—"
			style = StyleSubtle
		}
		if failed.Has(line) {
			style = StyleError
		}
		lines = append(lines, Line{locale.Getf("CODE_DRAFT_LABEL", line) + " " + draft, style})
	}
	return lines
}

func safePanel(g *state.Game) []Line {
	p := g.Progress
	if !p.SafeOpen {
		return []Line{
			{locale.Get("SAFE_TITLE"), StyleTitle},
			{locale.Get("SAFE_DESCRIPTION"), StyleNormal},
			{locale.Get("SAFE_LABEL"), StyleSubtle},
		}
	}
	return []Line{
		{locale.Get("SAFE_OPENED"), StyleSuccess},
		{"", StyleNormal},
		{locale.Get("KEY_TITLE"), StyleTitle},
		{locale.Getf("KEY_DESCRIPTION", g.Config.AccessKeySerial), StyleNormal},
		{locale.Get("KEY_HINT"), StyleInfo},
	}
}

func configPanel(g *state.Game) []Line {
	p := g.Progress
	lines := []Line{{locale.Get("CONFIG_TITLE"), StyleTitle}}
	if !p.HasAccessKey {
		return append(lines, Line{locale.Get("CONFIG_LOCKED"), StyleWarn})
	}
	if p.ConfigSet {
		return append(lines, Line{locale.Get("CONFIG_DONE"), StyleSuccess})
	}

	lines = append(lines, Line{locale.Get("CONFIG_DESCRIPTION"), StyleSubtle}, Line{"", StyleNormal})
	for i, value := range p.DialValues {
		text := fmt.Sprintf("  %d. %-8s [ %d ]", i+1, locale.Get(dialKey(i)), value)
		style := StyleNormal
		if i == g.FocusDial {
			text = IconFocus + text[1:]
			style = StyleFocus
		}
		lines = append(lines, Line{text, style})
	}

	if g.TipsShown {
		want := g.Config.RestartDialSequence
		lines = append(lines,
			Line{"", StyleNormal},
			Line{locale.Getf("KEY_EXAMPLE", "0305", 3, 0, 5), StyleInfo},
			Line{locale.Getf("CONFIG_TIP", g.Config.AccessKeySerial, want[0], want[1], want[2]), StyleInfo},
		)
	}
	return lines
}

func dialKey(index int) string {
	switch index {
	case 0:
		return "DIAL_HOURS"
	case 1:
		return "DIAL_MINUTES"
	}
	return "DIAL_SECONDS"
}

func restartPanel(g *state.Game) []Line {
	p := g.Progress
	lines := []Line{{locale.Get("RESTART_TITLE"), StyleTitle}}
	if !p.ConfigSet {
		return append(lines, Line{locale.Get("RESTART_LOCKED"), StyleWarn})
	}

	lines = append(lines, Line{locale.Get("RESTART_DESCRIPTION"), StyleSubtle}, Line{"", StyleNormal})

	buttons := make([]string, 0, len(g.Config.RestartPanelLayout))
	for _, label := range g.Config.RestartPanelLayout {
		buttons = append(buttons, "[ "+label+" ]")
	}
	lines = append(lines, Line{"  " + strings.Join(buttons, "  "), StyleAction}, Line{"", StyleNormal})

	for i := range entities.SequenceLength {
		entry := "—"
		style := StyleSubtle
		if i < len(p.EnteredButtonSequence) {
			entry = p.EnteredButtonSequence[i]
			style = StyleNormal
		}
		lines = append(lines, Line{locale.Getf("RESTART_STEP", i+1) + ": " + entry, style})
	}
	return append(lines,
		Line{"", StyleNormal},
		Line{locale.Get("SEQUENCE_LABEL") + " " + entities.FormatSequence(p.EnteredButtonSequence), StyleInfo},
	)
}
