//go:build unix

package sysinfo

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"golang.org/x/sys/unix"
)

const mebibyte = 1024 * 1024

// NativeSource reads facts through system calls and gopsutil instead of
// spawning processes. Its output has the same shape as CommandSource's so the
// same patterns apply.
type NativeSource struct {
	// ReleaseGlob selects the release files. Defaults to /etc/*-release.
	ReleaseGlob string

	Logger zerolog.Logger
}

// NewNativeSource returns a NativeSource reading /etc/*-release.
func NewNativeSource(logger zerolog.Logger) (*NativeSource, error) {
	return &NativeSource{ReleaseGlob: "/etc/*-release", Logger: logger}, nil
}

// Release concatenates the release files in lexical order, as cat would.
func (s *NativeSource) Release(ctx context.Context) (string, error) {
	paths, err := filepath.Glob(s.ReleaseGlob)
	if err != nil {
		return "", fmt.Errorf("glob %s: %w", s.ReleaseGlob, err)
	}

	var b strings.Builder
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			s.Logger.Debug().Err(err).Str("path", path).Msg("Skipping unreadable release file")
			continue
		}
		b.Write(data)
	}
	return strings.TrimSpace(b.String()), nil
}

// Uname formats utsname like uname -mrs. A failed call is an absent fact.
func (s *NativeSource) Uname(ctx context.Context) (string, error) {
	var u unix.Utsname
	if err := unix.Uname(&u); err != nil {
		s.Logger.Debug().Err(err).Msg("uname failed")
		return "", nil
	}
	return fmt.Sprintf("%s %s %s",
		unix.ByteSliceToString(u.Sysname[:]),
		unix.ByteSliceToString(u.Release[:]),
		unix.ByteSliceToString(u.Machine[:]),
	), nil
}

// Uptime reports whole seconds with a fractional part so the /proc/uptime
// pattern matches it.
func (s *NativeSource) Uptime(ctx context.Context) (string, error) {
	secs, err := host.UptimeWithContext(ctx)
	if err != nil {
		s.Logger.Debug().Err(err).Msg("Uptime unavailable")
		return "", nil
	}
	return fmt.Sprintf("%d.00", secs), nil
}

// Memory formats virtual memory in MiB as a "Mem:" row of free -m.
func (s *NativeSource) Memory(ctx context.Context) (string, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		s.Logger.Debug().Err(err).Msg("Memory statistics unavailable")
		return "", nil
	}
	return fmt.Sprintf("Mem: %d %d %d",
		vm.Total/mebibyte, vm.Used/mebibyte, vm.Free/mebibyte), nil
}
