//go:build !tinygo

// Command framegrab renders frames offline and writes them as BMP files.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"cubespin/app"
	"cubespin/display"
	"cubespin/hal"
	"cubespin/internal/config"
	"cubespin/internal/logger"

	"golang.org/x/image/bmp"
)

func main() {
	var flags config.Flags
	var frames int
	var outDir string
	flags.Register(flag.CommandLine)
	flag.IntVar(&frames, "frames", 30, "Number of frames to render.")
	flag.StringVar(&outDir, "out", "frames", "Output directory.")
	flag.Parse()

	if frames <= 0 {
		fmt.Fprintln(os.Stderr, "error: -frames must be positive")
		os.Exit(2)
	}
	if outDir == "" {
		fmt.Fprintln(os.Stderr, "error: -out is required")
		os.Exit(2)
	}

	cfg, err := config.Load(flags.Config, &flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if err := run(cfg, frames, outDir); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, frames int, outDir string) error {
	appCfg, err := app.ConfigFrom(cfg)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create %q: %w", outDir, err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.LogFile)
	defer func() { _ = log.Sync() }()

	w, h := cfg.Display.Width, cfg.Display.Height
	mem := hal.NewMemory(w, h, hal.NewZapLogger(log))
	sys, err := app.New(mem, appCfg)
	if err != nil {
		return err
	}

	frame := display.NewMono(w, h, nil)
	for i := 0; i < frames; i++ {
		if err := sys.Step(); err != nil {
			return err
		}
		mem.Snapshot(frame)
		if err := writeBMP(filepath.Join(outDir, fmt.Sprintf("frame_%04d.bmp", i)), frame); err != nil {
			return err
		}
	}
	if st := sys.State(); st.Faults > 0 {
		return fmt.Errorf("%d of %d frames faulted", st.Faults, frames)
	}
	return nil
}

func writeBMP(path string, frame *display.Mono) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	if err := bmp.Encode(f, frame.Paletted()); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %q: %w", path, err)
	}
	return f.Close()
}
