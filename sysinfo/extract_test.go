package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternsExtract(t *testing.T) {
	tests := []struct {
		name    string
		pattern *Pattern
		text    string
		want    Match
	}{
		{
			name:    "quoted distro description",
			pattern: distroPattern,
			text:    "DISTRIB_ID=Ubuntu\nDISTRIB_DESCRIPTION=\"Ubuntu 22.04 LTS\"\nNAME=\"Ubuntu\"",
			want:    Match{"distro_name": "Ubuntu 22.04 LTS"},
		},
		{
			name:    "distro description with trailing newline",
			pattern: distroPattern,
			text:    "DISTRIB_DESCRIPTION=\"Ubuntu 22.04 LTS\"\n",
			want:    Match{"distro_name": "Ubuntu 22.04 LTS"},
		},
		{
			name:    "unquoted distro description at end of text",
			pattern: distroPattern,
			text:    "DISTRIB_DESCRIPTION=Mint",
			want:    Match{"distro_name": "Mint"},
		},
		{
			name:    "kernel",
			pattern: kernelPattern,
			text:    "Linux 6.1.0-x86_64",
			want:    Match{"kernel_name": "Linux", "kernel_version": "6.1.0-x86_64"},
		},
		{
			name:    "kernel from uname -mrs",
			pattern: kernelPattern,
			text:    "Linux 6.8.0-45-generic x86_64",
			want:    Match{"kernel_name": "Linux", "kernel_version": "6.8.0-45-generic"},
		},
		{
			name:    "shell",
			pattern: shellPattern,
			text:    "/usr/bin/zsh",
			want:    Match{"shell_name": "zsh"},
		},
		{
			name:    "bare shell name",
			pattern: shellPattern,
			text:    "fish",
			want:    Match{"shell_name": "fish"},
		},
		{
			name:    "uptime",
			pattern: uptimePattern,
			text:    "7325.44 1200.0",
			want:    Match{"uptime_seconds": "7325"},
		},
		{
			name:    "memory",
			pattern: memoryPattern,
			text: "               total        used        free      shared  buff/cache   available\n" +
				"Mem:          7982        3211         120\n" +
				"Swap:         2047           0        2047",
			want: Match{"total": "7982", "used": "3211"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.pattern.Extract(tt.text)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPatternsNoMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern *Pattern
		text    string
	}{
		{"os-release without lsb fields", distroPattern, "NAME=\"Arch Linux\"\nPRETTY_NAME=\"Arch Linux\""},
		{"empty uname", kernelPattern, ""},
		{"single uname token", kernelPattern, "Linux"},
		{"empty shell", shellPattern, ""},
		{"shell path ending in slash", shellPattern, "/bin/"},
		{"uptime without fraction", uptimePattern, "7325"},
		{"uptime not at start", uptimePattern, "up 7325.44"},
		{"memory missing used column", memoryPattern, "Mem: 7982"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.pattern.Extract(tt.text)
			assert.False(t, ok)
			assert.Nil(t, got)
		})
	}
}

func TestPatternNamesAndComments(t *testing.T) {
	p := MustCompile(`
		(?<first>[a-z]+)   # a word
		\s*
		(?<second>[0-9]+)? # optional digits
	`)
	assert.Equal(t, []string{"first", "second"}, p.Names())

	m, ok := p.Extract("abc")
	require.True(t, ok)
	assert.Equal(t, Match{"first": "abc", "second": ""}, m)
}

func TestMustCompilePanicsOnInvalidPattern(t *testing.T) {
	assert.Panics(t, func() { MustCompile(`(?<unclosed>`) })
}
