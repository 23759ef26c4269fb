package sysinfo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// ErrInvalidOutput is returned when a command writes something that is not
// UTF-8 text to stdout. Every pattern assumes text, so callers treat it as fatal.
var ErrInvalidOutput = errors.New("command output is not valid UTF-8")

// Runner runs an external command and returns its trimmed standard output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// ExecRunner runs commands with os/exec.
//
// Standard error and the exit status are ignored: a failing command simply
// produces text that later fails to match. A command that cannot be started
// at all yields empty output.
type ExecRunner struct {
	// Timeout bounds each command. Zero means wait forever.
	Timeout time.Duration

	Logger zerolog.Logger
}

// NewExecRunner returns an ExecRunner with the given timeout.
func NewExecRunner(timeout time.Duration, logger zerolog.Logger) *ExecRunner {
	return &ExecRunner{Timeout: timeout, Logger: logger}
}

// Run executes name with args, blocking until it exits.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	r.Logger.Debug().Str("command", name).Strs("args", args).Msg("Executing command")

	var stdout bytes.Buffer
	c := exec.CommandContext(ctx, name, args...)
	c.Stdout = &stdout
	if r.Timeout > 0 {
		// Grandchildren may keep stdout open after the child is killed.
		c.WaitDelay = r.Timeout
	}

	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			r.Logger.Debug().Err(err).Str("command", name).Msg("Command could not be started")
			return "", nil
		}
		r.Logger.Debug().Int("exit_code", exitErr.ExitCode()).Str("command", name).Msg("Command exited non-zero")
	}

	out := stdout.Bytes()
	if !utf8.Valid(out) {
		return "", fmt.Errorf("%w: %s %s", ErrInvalidOutput, name, strings.Join(args, " "))
	}
	return strings.TrimSpace(string(out)), nil
}
