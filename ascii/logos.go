// Package ascii provides the tree logo drawn to the left of the facts.
// Lines are styled with the display Theme so colors follow the user's palette.
package ascii

import (
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"

	"treefetch/display"
)

// margin is the blank space kept between the widest row and the facts.
const margin = 3

const crown = `
     /\*\
    /\O\*\
   /*/\/\/\
  /\O\/\*\/\
 /\*\/\*\/\/\
 |O\/\/*/\/O|
`

const trunk = `
      ||
      ||
`

// Tree returns the logo as styled lines of equal visible width. The crown is
// drawn in the accent color and the trunk in the trunk color.
func Tree(t display.Theme) []string {
	crownRows := SplitLines(crown)
	trunkRows := SplitLines(trunk)

	width := 0
	for _, row := range slices.Concat(crownRows, trunkRows) {
		width = max(width, runewidth.StringWidth(row))
	}
	width += margin

	lines := make([]string, 0, len(crownRows)+len(trunkRows))
	for _, row := range crownRows {
		lines = append(lines, t.Accent.Render(runewidth.FillRight(row, width)))
	}
	for _, row := range trunkRows {
		lines = append(lines, t.Trunk.Render(runewidth.FillRight(row, width)))
	}
	return lines
}

// SplitLines splits art into rows, dropping the blank first and last lines
// of a raw string literal and any trailing whitespace. Leading spaces are
// part of the drawing and are kept.
func SplitLines(art string) []string {
	art = strings.Trim(strings.ReplaceAll(art, "\r\n", "\n"), "\n")
	if art == "" {
		return nil
	}

	rows := strings.Split(art, "\n")
	for i, row := range rows {
		rows[i] = strings.TrimRight(row, " \t")
	}
	return rows
}

// Pad right-pads every line to the widest visible width plus gap spaces so
// the next column starts at the same position on each row.
//
// Parameters:
//   - lines: Styled logo lines (may contain ANSI color codes)
//   - gap: Extra spaces appended after the widest line
//
// Returns:
//   - A new slice; lines itself is not modified
func Pad(lines []string, gap int) []string {
	logoWidth := 0
	for _, line := range lines {
		logoWidth = max(logoWidth, display.VisibleWidth(line))
	}

	padded := make([]string, len(lines))
	for i, line := range lines {
		padded[i] = line + strings.Repeat(" ", logoWidth-display.VisibleWidth(line)+max(gap, 0))
	}
	return padded
}
