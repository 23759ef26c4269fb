package display

import (
	"bufio"
	"io"
	"regexp"

	"github.com/mattn/go-runewidth"
)

// ansiRegex matches ANSI escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Compose writes left and right side by side, one row per index up to the
// longer of the two. Missing cells print nothing; no separator is added, so
// any spacing must already be part of the left lines.
func Compose(w io.Writer, left, right []string) error {
	bw := bufio.NewWriter(w)

	rows := max(len(left), len(right))
	for i := 0; i < rows; i++ {
		if i < len(left) {
			bw.WriteString(left[i])
		}
		if i < len(right) {
			bw.WriteString(right[i])
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// VisibleWidth returns the display width of s excluding ANSI escape sequences.
// Wide runes count as two columns.
func VisibleWidth(s string) int {
	return runewidth.StringWidth(StripANSI(s))
}

// StripANSI removes color and style escape sequences from s.
func StripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}
