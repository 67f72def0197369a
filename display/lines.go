// Package display connects the wireframe pipeline to tinygo display drivers.
package display

import (
	"image/color"
	"math"

	"cubespin/wireframe"

	"tinygo.org/x/drivers"
)

var (
	ColorOn  = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorOff = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
)

// Lines draws wireframe lines on any drivers.Displayer.
//
// Pixels outside the int16 range a Displayer can address are dropped; everything
// else is passed to SetPixel, which is expected to clip.
type Lines struct {
	d drivers.Displayer
}

func NewLines(d drivers.Displayer) *Lines {
	return &Lines{d: d}
}

// Displayer returns the wrapped display.
func (l *Lines) Displayer() drivers.Displayer { return l.d }

func (l *Lines) Size() (w, h int) {
	if l.d == nil {
		return 0, 0
	}
	x, y := l.d.Size()
	return int(x), int(y)
}

// DrawLine rasterizes a line with Bresenham's algorithm, endpoints included.
func (l *Lines) DrawLine(x0, y0, x1, y1 int, c wireframe.Color) {
	if l.d == nil {
		return
	}
	rgba := ColorOff
	if c == wireframe.On {
		rgba = ColorOn
	}

	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		l.setPixel(x0, y0, rgba)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (l *Lines) setPixel(x, y int, c color.RGBA) {
	if x < math.MinInt16 || x > math.MaxInt16 || y < math.MinInt16 || y > math.MaxInt16 {
		return
	}
	l.d.SetPixel(int16(x), int16(y), c)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
