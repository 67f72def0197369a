//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"cubespin/app"
	"cubespin/hal"
	"cubespin/internal/buildinfo"
	"cubespin/internal/config"
	"cubespin/internal/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func main() {
	var flags config.Flags
	var headless bool
	var ticks uint64
	flags.Register(flag.CommandLine)
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run forever).")
	flag.Parse()

	cfg, err := config.Load(flags.Config, &flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	appCfg, err := app.ConfigFrom(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.LogFile).
		With(zap.String("run", uuid.NewString()))
	defer func() { _ = log.Sync() }()
	log.Info("starting",
		zap.String("version", buildinfo.Long()),
		zap.String("shape", cfg.Render.Shape),
		zap.Int("hz", cfg.Render.Hz),
		zap.Bool("headless", headless),
	)

	hostCfg := hal.HostConfig{
		Width:  cfg.Display.Width,
		Height: cfg.Display.Height,
		Zoom:   cfg.Display.Zoom,
		Hz:     cfg.Render.Hz,
		Ticks:  ticks,
		Log:    log,
	}
	newApp := func(h hal.HAL) (func() error, error) {
		return app.NewWithConfig(h, appCfg)
	}

	if headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		err = hal.RunHeadless(ctx, hostCfg, newApp)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	} else {
		err = hal.RunWindow(hostCfg, newApp)
	}
	if err != nil {
		log.Error("exited", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}
