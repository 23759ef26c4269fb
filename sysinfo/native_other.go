//go:build !unix

package sysinfo

import (
	"context"

	"github.com/rs/zerolog"
)

// NativeSource is only available on unix platforms.
type NativeSource struct {
	ReleaseGlob string
	Logger      zerolog.Logger
}

// NewNativeSource always fails on this platform.
func NewNativeSource(logger zerolog.Logger) (*NativeSource, error) {
	return nil, ErrUnsupported
}

func (s *NativeSource) Release(ctx context.Context) (string, error) { return "", ErrUnsupported }
func (s *NativeSource) Uname(ctx context.Context) (string, error) { return "", ErrUnsupported }
func (s *NativeSource) Uptime(ctx context.Context) (string, error) { return "", ErrUnsupported }
func (s *NativeSource) Memory(ctx context.Context) (string, error) { return "", ErrUnsupported }
