package sysinfo

import (
	"fmt"
	"strconv"

	"github.com/dlclark/regexp2"
)

// Match holds every named group of a successful extraction.
type Match map[string]string

// Pattern is a compiled free-spacing expression with named groups.
// Whitespace and #-comments in the expression are ignored.
type Pattern struct {
	re    *regexp2.Regexp
	names []string
}

// MustCompile compiles expr or panics. Patterns are constants, so a compile
// failure is a bug rather than a runtime condition.
func MustCompile(expr string) *Pattern {
	re, err := regexp2.Compile(expr, regexp2.IgnorePatternWhitespace)
	if err != nil {
		panic(fmt.Sprintf("sysinfo: invalid pattern %q: %v", expr, err))
	}

	var names []string
	for _, name := range re.GetGroupNames() {
		if _, err := strconv.Atoi(name); err == nil {
			continue
		}
		names = append(names, name)
	}
	return &Pattern{re: re, names: names}
}

// Names returns the named groups of the pattern in declaration order.
func (p *Pattern) Names() []string {
	return p.names
}

// Extract searches text for the first match. On success every named group is
// present in the returned Match; otherwise ok is false.
func (p *Pattern) Extract(text string) (Match, bool) {
	m, err := p.re.FindStringMatch(text)
	if err != nil || m == nil {
		return nil, false
	}

	fields := make(Match, len(p.names))
	for _, name := range p.names {
		if g := m.GroupByName(name); g != nil {
			fields[name] = g.String()
		} else {
			fields[name] = ""
		}
	}
	return fields, true
}
