//go:build !tinygo

package hal

import (
	"context"
	"time"
)

// RunHeadless drives the app from a ticker without opening a window.
// It returns when ctx is done or after cfg.Ticks steps.
func RunHeadless(ctx context.Context, cfg HostConfig, newApp AppFactory) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	h := New(cfg)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
			if err := step(); err != nil {
				return err
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}
