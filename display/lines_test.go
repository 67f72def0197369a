package display

import (
	"image/color"
	"testing"

	"cubespin/wireframe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pixelLog struct {
	w, h int16
	set  [][2]int16
}

func (p *pixelLog) Size() (int16, int16) { return p.w, p.h }
func (p *pixelLog) SetPixel(x, y int16, c color.RGBA) {
	p.set = append(p.set, [2]int16{x, y})
}
func (p *pixelLog) Display() error { return nil }

func TestLinesSize(t *testing.T) {
	l := NewLines(NewMono(128, 64, nil))
	w, h := l.Size()
	assert.Equal(t, 128, w)
	assert.Equal(t, 64, h)

	w, h = NewLines(nil).Size()
	assert.Zero(t, w)
	assert.Zero(t, h)
}

func TestDrawLineHorizontal(t *testing.T) {
	m := NewMono(16, 8, nil)
	NewLines(m).DrawLine(2, 3, 9, 3, wireframe.On)

	for x := 0; x < 16; x++ {
		assert.Equal(t, x >= 2 && x <= 9, m.Pixel(x, 3), "x=%d", x)
	}
	assert.Equal(t, 8, m.Lit())
}

func TestDrawLineDiagonalBothDirections(t *testing.T) {
	for _, pts := range [][4]int{{0, 0, 7, 7}, {7, 7, 0, 0}} {
		m := NewMono(8, 8, nil)
		NewLines(m).DrawLine(pts[0], pts[1], pts[2], pts[3], wireframe.On)
		for i := 0; i < 8; i++ {
			require.True(t, m.Pixel(i, i), "(%d,%d)", i, i)
		}
		require.Equal(t, 8, m.Lit())
	}
}

func TestDrawLineSinglePoint(t *testing.T) {
	log := &pixelLog{w: 10, h: 10}
	NewLines(log).DrawLine(4, 5, 4, 5, wireframe.On)
	assert.Equal(t, [][2]int16{{4, 5}}, log.set)
}

func TestDrawLineSteep(t *testing.T) {
	log := &pixelLog{w: 10, h: 10}
	NewLines(log).DrawLine(0, 0, 2, 6, wireframe.On)

	require.Len(t, log.set, 7)
	assert.Equal(t, [2]int16{0, 0}, log.set[0])
	assert.Equal(t, [2]int16{2, 6}, log.set[6])
	for i := 1; i < len(log.set); i++ {
		assert.Equal(t, log.set[i-1][1]+1, log.set[i][1])
	}
}

func TestDrawLineLeavesClippingToDisplay(t *testing.T) {
	log := &pixelLog{w: 4, h: 4}
	NewLines(log).DrawLine(-2, 1, 5, 1, wireframe.On)
	assert.Len(t, log.set, 8)
	assert.Equal(t, [2]int16{-2, 1}, log.set[0])

	m := NewMono(4, 4, nil)
	NewLines(m).DrawLine(-2, 1, 5, 1, wireframe.On)
	assert.Equal(t, 4, m.Lit())
}

func TestDrawLineDropsBeyondInt16(t *testing.T) {
	log := &pixelLog{w: 4, h: 4}
	NewLines(log).DrawLine(40000, 0, 40002, 0, wireframe.On)
	assert.Empty(t, log.set)
}

func TestDrawLineOffClears(t *testing.T) {
	m := NewMono(8, 8, nil)
	l := NewLines(m)
	l.DrawLine(0, 4, 7, 4, wireframe.On)
	l.DrawLine(2, 4, 5, 4, wireframe.Off)

	assert.True(t, m.Pixel(1, 4))
	assert.False(t, m.Pixel(3, 4))
	assert.True(t, m.Pixel(6, 4))
	assert.Equal(t, 4, m.Lit())
}

func TestCubeOnMono(t *testing.T) {
	m := NewMono(128, 64, nil)
	o := wireframe.NewObject(wireframe.Cube())
	o.Scale = 20

	o.Render(NewLines(m))

	// Front and back faces coincide at rest: a 41x41 square outline.
	assert.True(t, m.Pixel(84, 52))
	assert.True(t, m.Pixel(44, 12))
	assert.True(t, m.Pixel(64, 12))
	assert.False(t, m.Pixel(64, 32))
	assert.Equal(t, 4*40, m.Lit())
}
