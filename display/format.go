package display

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"

	"treefetch/sysinfo"
)

// Format renders one fact line: bullet, key padded to KeyWidth columns, value.
func (t Theme) Format(key, value string) string {
	padded := runewidth.FillRight(key, t.KeyWidth)
	return t.Accent.Render(t.Bullet) + t.Key.Render(" "+padded) + " " + value
}

// Identity renders "user@host" with all whitespace removed.
func (t Theme) Identity(user, host string) string {
	return t.Host.Render(stripSpace(user)) + t.Bold.Render("@") + t.Host.Render(stripSpace(host))
}

// Separator renders a rule of len(user)+1+len(host) glyphs. Lengths are in
// bytes of the text as read, so a hostname file's trailing newline counts.
func (t Theme) Separator(user, host string) string {
	n := len(user) + 1 + len(host)
	return t.Trunk.Render(strings.Repeat(t.Rule, n))
}

// Lines builds the fact column for report. The identity line and its
// separator appear only when the hostname was read.
func Lines(report *sysinfo.Report, t Theme) []string {
	var lines []string
	if id := report.Identity; id != nil {
		lines = append(lines,
			t.Identity(id.Username, id.Hostname),
			t.Separator(id.Username, id.RawHostname),
		)
	}
	for _, f := range report.Facts {
		lines = append(lines, t.Format(f.Key, f.Value))
	}
	return lines
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
