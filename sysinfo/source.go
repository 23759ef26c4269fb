package sysinfo

import (
	"context"
	"errors"
)

// ErrUnsupported is returned when a source is not available on this platform.
var ErrUnsupported = errors.New("source not supported on this platform")

// Source produces the raw text each fact is extracted from. An empty string
// means the fact is absent; an error is fatal.
type Source interface {
	// Release returns the concatenated /etc/*-release files.
	Release(ctx context.Context) (string, error)
	// Uname returns "sysname release machine", as printed by uname -mrs.
	Uname(ctx context.Context) (string, error)
	// Uptime returns the contents of /proc/uptime.
	Uptime(ctx context.Context) (string, error)
	// Memory returns free -m style output with a "Mem:" line.
	Memory(ctx context.Context) (string, error)
}

// CommandSource reads every fact by running the usual system utilities.
type CommandSource struct {
	Runner Runner
}

// NewCommandSource returns a CommandSource backed by runner.
func NewCommandSource(runner Runner) *CommandSource {
	return &CommandSource{Runner: runner}
}

// Release returns the concatenated /etc/*-release files.
func (s *CommandSource) Release(ctx context.Context) (string, error) {
	return s.Runner.Run(ctx, "/bin/sh", "-c", "cat /etc/*-release")
}

// Uname returns the kernel name, release and machine from uname -mrs.
func (s *CommandSource) Uname(ctx context.Context) (string, error) {
	return s.Runner.Run(ctx, "uname", "-mrs")
}

// Uptime returns the contents of /proc/uptime.
func (s *CommandSource) Uptime(ctx context.Context) (string, error) {
	return s.Runner.Run(ctx, "cat", "/proc/uptime")
}

// Memory returns the output of free -m.
func (s *CommandSource) Memory(ctx context.Context) (string, error) {
	return s.Runner.Run(ctx, "free", "-m")
}
