// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"escaperoom/pkg/game/locale"
	"escaperoom/pkg/game/renderer"
	"escaperoom/pkg/game/state"
)

// styleClass maps a text style to its CSS class in the screenshot.
var styleClass = map[renderer.TextStyle]string{
	renderer.StyleNormal:  "normal",
	renderer.StyleTitle:   "title",
	renderer.StyleInfo:    "info",
	renderer.StyleSubtle:  "muted",
	renderer.StyleWarn:    "warn",
	renderer.StyleError:   "error",
	renderer.StyleSuccess: "success",
	renderer.StyleCode:    "code",
	renderer.StyleAction:  "action",
	renderer.StyleFocus:   "focus",
}

// SaveScreenshotHTML saves the current board as an HTML file in dir (the
// working directory when empty) and returns its path.
func SaveScreenshotHTML(g *state.Game, dir string) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	filename := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", timestamp))

	v := renderer.BuildView(g)

	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>` + html.EscapeString(v.Title) + ` - Screenshot</title>
    <style>
        body {
            background-color: #0f172a;
            color: #e2e8f0;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header { color: #38bdf8; font-size: 18px; margin-bottom: 10px; }
        .banner { padding: 8px; margin-bottom: 12px; border-radius: 6px; background-color: #1e293b; }
        .status span { margin-right: 16px; }
        .on { color: #22c55e; }
        .off { color: #64748b; }
        .tools { margin: 12px 0; }
        .tool { display: inline-block; margin-right: 12px; padding: 4px 8px; border: 1px solid #334155; border-radius: 4px; }
        .tool.active { border-color: #38bdf8; }
        .tool.locked { color: #64748b; }
        .panel {
            background-color: #111827;
            padding: 20px;
            border-radius: 8px;
            display: inline-block;
            min-width: 600px;
            margin: 12px 0;
        }
        .line { white-space: pre; line-height: 1.4; }
        .section { margin-top: 16px; border-top: 1px solid #334155; padding-top: 8px; }
        .normal { color: #e2e8f0; }
        .title { color: #38bdf8; font-weight: bold; }
        .info { color: #60a5fa; }
        .muted { color: #64748b; }
        .warn { color: #facc15; }
        .error { color: #ef4444; font-weight: bold; }
        .success { color: #22c55e; font-weight: bold; }
        .code { color: #c084fc; }
        .action { color: #e879f9; font-weight: bold; }
        .focus { color: #0f172a; background-color: #38bdf8; }
    </style>
</head>
<body>
`)

	fmt.Fprintf(&b, `    <div class="header">%s</div>`+"\n", html.EscapeString(v.Title))
	fmt.Fprintf(&b, `    <div class="banner %s">%s</div>`+"\n", styleClass[v.Banner.Style], html.EscapeString(v.Banner.Text))

	b.WriteString(`    <div class="status">`)
	for _, s := range v.Status {
		icon, class := renderer.IconLightOff, "off"
		if s.On {
			icon, class = renderer.IconLightOn, "on"
		}
		fmt.Fprintf(&b, `<span class="%s">%s %s</span>`, class, icon, html.EscapeString(s.Label))
	}
	b.WriteString("</div>\n")

	b.WriteString(`    <div class="tools">`)
	for _, t := range v.Tools {
		class := "tool"
		if t.Active {
			class += " active"
		}
		label := t.Label
		if t.Locked {
			class += " locked"
			label += " (" + locale.Get("LOCKED") + ")"
		}
		fmt.Fprintf(&b, `<span class="%s">%s</span>`, class, html.EscapeString(label))
	}
	b.WriteString("</div>\n")

	b.WriteString(`    <div class="panel">` + "\n")
	writeLines(&b, v.Panel)
	b.WriteString("    </div>\n")

	writeSection(&b, locale.Get("INVENTORY"), v.Inventory)
	writeSection(&b, locale.Get("CONSOLE"), v.Console)
	writeSection(&b, locale.Get("NOTES"), v.Notes)

	b.WriteString(`</body>
</html>
`)

	if err := os.WriteFile(filename, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing screenshot: %w", err)
	}
	return filename, nil
}

func writeSection(b *strings.Builder, title string, lines []renderer.Line) {
	b.WriteString(`    <div class="section">` + "\n")
	fmt.Fprintf(b, `        <div class="line title">%s</div>`+"\n", html.EscapeString(title))
	writeLines(b, lines)
	b.WriteString("    </div>\n")
}

func writeLines(b *strings.Builder, lines []renderer.Line) {
	for _, l := range lines {
		text := stripANSI(l.Text)
		if text == "" {
			text = " "
		}
		fmt.Fprintf(b, `        <div class="line %s">%s</div>`+"\n", styleClass[l.Style], html.EscapeString(text))
	}
}

// stripANSI removes ANSI escape codes from a string
func stripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
