//go:build !tinygo

package main

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"cubespin/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestRunWritesFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	cfg := config.Default()
	cfg.Logging.Level = "error"

	require.NoError(t, run(cfg, 3, dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "frame_0000.bmp", entries[0].Name())
	assert.Equal(t, "frame_0002.bmp", entries[2].Name())

	f, err := os.Open(filepath.Join(dir, "frame_0000.bmp"))
	require.NoError(t, err)
	defer f.Close()
	img, err := bmp.Decode(f)
	require.NoError(t, err)

	assert.Equal(t, 128, img.Bounds().Dx())
	assert.Equal(t, 64, img.Bounds().Dy())

	white := color.RGBAModel.Convert(color.White)
	black := color.RGBAModel.Convert(color.Black)
	assert.Equal(t, white, color.RGBAModel.Convert(img.At(84, 52)))
	assert.Equal(t, black, color.RGBAModel.Convert(img.At(0, 0)))
}

func TestRunRejectsUnknownShape(t *testing.T) {
	cfg := config.Default()
	cfg.Render.Shape = "torus"
	assert.Error(t, run(cfg, 1, t.TempDir()))
}
