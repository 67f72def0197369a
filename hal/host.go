//go:build !tinygo

package hal

import (
	"fmt"

	"go.uber.org/zap"
)

// HostConfig describes the emulated panel and the host loop.
type HostConfig struct {
	Width  int
	Height int
	Zoom   int
	Hz     int
	Ticks  uint64 // headless only; 0 runs until cancelled
	Log    *zap.Logger
}

// AppFactory builds the per-tick step function for a HAL.
type AppFactory func(HAL) (func() error, error)

// New returns a host HAL backed by an in-memory panel.
func New(cfg HostConfig) *Memory {
	return NewMemory(cfg.Width, cfg.Height, NewZapLogger(cfg.Log))
}

func (cfg HostConfig) validate() error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid panel size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Hz <= 0 {
		return fmt.Errorf("invalid hz: %d", cfg.Hz)
	}
	return nil
}

type zapLogger struct {
	l *zap.Logger
}

// NewZapLogger adapts a zap logger to the HAL line logger. nil means no output.
func NewZapLogger(l *zap.Logger) Logger {
	if l == nil {
		l = zap.NewNop()
	}
	return zapLogger{l: l.WithOptions(zap.AddCallerSkip(1))}
}

func (z zapLogger) WriteLineString(s string) {
	z.l.Info(s)
}
