package renderer

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/gookit/color"

	"escaperoom/pkg/game/locale"
)

// Icons used by the text backends.
const (
	IconLightOn  = "●"
	IconLightOff = "○"
	IconLocked   = "🔒"
	IconFocus    = "▶"
	IconBroken   = "✗"
	IconKey      = "⚷"
)

// Styles holds the ANSI style of every TextStyle.
var Styles map[TextStyle]color.Style

var regexpStringFunctions = regexp.MustCompile(`([A-Z]+){([^{}]+)}`)

// InitColors initializes the color styles
func InitColors() {
	Styles = map[TextStyle]color.Style{
		StyleNormal:  {},
		StyleTitle:   {color.FgCyan, color.OpBold},
		StyleInfo:    {color.FgBlue},
		StyleSubtle:  {color.FgGray},
		StyleWarn:    {color.FgYellow},
		StyleError:   {color.FgRed, color.OpBold},
		StyleSuccess: {color.FgGreen, color.OpBold},
		StyleCode:    {color.FgMagenta},
		StyleAction:  {color.FgMagenta, color.OpBold},
		StyleFocus:   {color.FgBlack, color.BgCyan, color.OpBold},
	}
}

// ANSIStyle renders text with the ANSI style of style.
func ANSIStyle(text string, style TextStyle) string {
	if Styles == nil {
		InitColors()
	}
	s, ok := Styles[style]
	if !ok || len(s) == 0 {
		return text
	}
	return s.Sprint(text)
}

// ApplyMarkup formats msg and replaces the markup functions in it:
// ACTION{x}, CODE{x}, OK{x}, ERR{x}, SUBTLE{x} style their operand and T{KEY}
// translates a message key. style is called for every styled operand.
func ApplyMarkup(style func(string, TextStyle) string, msg string, a ...any) string {
	ret := msg
	if len(a) > 0 {
		ret = fmt.Sprintf(msg, a...)
	}

	return regexpStringFunctions.ReplaceAllStringFunc(ret, func(match string) string {
		m := regexpStringFunctions.FindStringSubmatch(match)
		function, operand := m[1], m[2]

		switch function {
		case "T":
			return locale.Get(operand)
		case "ACTION":
			return style(operand, StyleAction)
		case "CODE":
			return style(operand, StyleCode)
		case "OK":
			return style(operand, StyleSuccess)
		case "ERR":
			return style(operand, StyleError)
		case "SUBTLE":
			return style(operand, StyleSubtle)
		}
		return match
	})
}

// StripMarkup is ApplyMarkup without any styling.
func StripMarkup(msg string, a ...any) string {
	return ApplyMarkup(func(s string, _ TextStyle) string { return s }, msg, a...)
}

// VisibleLen returns the number of runes in s that take up a column,
// ignoring ANSI escape codes.
func VisibleLen(s string) int {
	return utf8.RuneCountInString(color.ClearCode(s))
}

// Center pads s on the left so it is centered in width columns.
func Center(s string, width int) string {
	pad := (width - VisibleLen(s)) / 2
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}

// Rule returns a horizontal line width columns wide with label in the middle.
func Rule(label string, width int) string {
	if label == "" {
		return strings.Repeat("─", max(width, 1))
	}
	label = " " + label + " "
	side := (width - VisibleLen(label)) / 2
	if side < 1 {
		side = 1
	}
	rest := width - side - VisibleLen(label)
	if rest < 1 {
		rest = 1
	}
	return strings.Repeat("─", side) + label + strings.Repeat("─", rest)
}

// Wrap breaks text into lines of at most width runes at word boundaries.
func Wrap(text string, width int) []string {
	if width <= 0 || utf8.RuneCountInString(text) <= width {
		return []string{text}
	}

	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && utf8.RuneCountInString(cur.String())+1+utf8.RuneCountInString(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}
