// Package sysinfo gathers the host facts shown beside the logo. Each fact is
// read from a Source as raw text, extracted with a named-group Pattern and
// formatted into a short value.
package sysinfo

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// Fact keys, in display order.
const (
	FactIdentity = "identity"
	FactOS       = "os"
	FactKernel   = "kernel"
	FactShell    = "shell"
	FactUptime   = "uptime"
	FactMemory   = "memory"
)

// FactKeys lists every fact that can be hidden.
var FactKeys = []string{FactIdentity, FactOS, FactKernel, FactShell, FactUptime, FactMemory}

// Fact is one formatted piece of host information.
type Fact struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Identity is the user@host pair shown above the facts.
type Identity struct {
	// Username is the USER environment variable, possibly empty.
	Username string `json:"username" yaml:"username"`

	// Hostname is the hostname file with surrounding whitespace trimmed.
	Hostname string `json:"hostname" yaml:"hostname"`

	// RawHostname is the file content as read, trailing newline included.
	// The separator rule is measured from it.
	RawHostname string `json:"-" yaml:"-"`
}

// Report is the result of one collection pass.
type Report struct {
	// Identity is nil when the hostname file could not be read or the
	// identity fact is hidden.
	Identity *Identity `json:"identity,omitempty" yaml:"identity,omitempty"`

	// Facts are the facts that were found, in display order.
	Facts []Fact `json:"facts" yaml:"facts"`
}

// Collector runs the fixed fact sequence against a Source.
type Collector struct {
	Source Source

	// Getenv and ReadFile default to os.Getenv and os.ReadFile.
	Getenv   func(string) string
	ReadFile func(string) ([]byte, error)

	// HostnameFile defaults to /etc/hostname.
	HostnameFile string

	// Hide lists fact keys to leave out.
	Hide []string

	Logger zerolog.Logger
}

// NewCollector returns a Collector reading from the live environment.
func NewCollector(source Source, logger zerolog.Logger) *Collector {
	return &Collector{
		Source:       source,
		Getenv:       os.Getenv,
		ReadFile:     os.ReadFile,
		HostnameFile: "/etc/hostname",
		Logger:       logger,
	}
}

type step struct {
	key     string
	read    func(context.Context) (string, error)
	pattern *Pattern
	value   func(Match) (string, error)
}

func (c *Collector) steps() []step {
	return []step{
		{
			key:     FactOS,
			read:    c.Source.Release,
			pattern: distroPattern,
			value:   func(m Match) (string, error) { return m["distro_name"], nil },
		},
		{
			key:     FactKernel,
			read:    c.Source.Uname,
			pattern: kernelPattern,
			value:   func(m Match) (string, error) { return m["kernel_version"], nil },
		},
		{
			key: FactShell,
			read: func(context.Context) (string, error) {
				return strings.TrimSpace(c.getenv("SHELL")), nil
			},
			pattern: shellPattern,
			value:   func(m Match) (string, error) { return m["shell_name"], nil },
		},
		{
			key:     FactUptime,
			read:    c.Source.Uptime,
			pattern: uptimePattern,
			value: func(m Match) (string, error) {
				secs, err := ParseSeconds(m["uptime_seconds"])
				if err != nil {
					return "", err
				}
				return FormatUptime(secs), nil
			},
		},
		{
			key:     FactMemory,
			read:    c.Source.Memory,
			pattern: memoryPattern,
			value:   func(m Match) (string, error) { return FormatMemory(m["used"], m["total"]), nil },
		},
	}
}

// Collect gathers every fact in order. A fact that cannot be found is left
// out and the remaining ones are still attempted. Only invariant violations,
// such as non-UTF-8 command output, return an error.
func (c *Collector) Collect(ctx context.Context) (*Report, error) {
	report := &Report{Facts: []Fact{}}

	if !c.hidden(FactIdentity) {
		report.Identity = c.readIdentity()
	}

	for _, s := range c.steps() {
		if c.hidden(s.key) {
			continue
		}

		text, err := s.read(ctx)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", s.key, err)
		}

		m, ok := s.pattern.Extract(text)
		if !ok {
			c.Logger.Debug().Str("fact", s.key).Msg("No match, skipping fact")
			continue
		}

		value, err := s.value(m)
		if err != nil {
			return nil, fmt.Errorf("format %s: %w", s.key, err)
		}
		report.Facts = append(report.Facts, Fact{Key: s.key, Value: value})
	}

	return report, nil
}

// readIdentity returns nil when the hostname file is missing, unreadable or
// not UTF-8 text.
func (c *Collector) readIdentity() *Identity {
	readFile := c.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}
	path := c.HostnameFile
	if path == "" {
		path = "/etc/hostname"
	}

	data, err := readFile(path)
	if err != nil {
		c.Logger.Debug().Err(err).Str("path", path).Msg("Hostname unavailable, skipping identity")
		return nil
	}
	if !utf8.Valid(data) {
		c.Logger.Debug().Str("path", path).Msg("Hostname is not UTF-8, skipping identity")
		return nil
	}

	raw := string(data)
	return &Identity{
		Username:    c.getenv("USER"),
		Hostname:    strings.TrimSpace(raw),
		RawHostname: raw,
	}
}

func (c *Collector) getenv(key string) string {
	if c.Getenv == nil {
		return os.Getenv(key)
	}
	return c.Getenv(key)
}

func (c *Collector) hidden(key string) bool {
	return slices.Contains(c.Hide, key)
}
