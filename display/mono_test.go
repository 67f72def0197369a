package display

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonoSetPixel(t *testing.T) {
	m := NewMono(128, 64, nil)
	x, y := m.Size()
	assert.Equal(t, int16(128), x)
	assert.Equal(t, int16(64), y)

	m.SetPixel(0, 0, ColorOn)
	m.SetPixel(127, 63, ColorOn)
	m.SetPixel(128, 0, ColorOn)
	m.SetPixel(-1, 5, ColorOn)
	m.SetPixel(3, 64, ColorOn)

	assert.True(t, m.Pixel(0, 0))
	assert.True(t, m.Pixel(127, 63))
	assert.False(t, m.Pixel(128, 0))
	assert.Equal(t, 2, m.Lit())

	m.SetPixel(0, 0, ColorOff)
	assert.False(t, m.Pixel(0, 0))
}

func TestMonoClear(t *testing.T) {
	m := NewMono(10, 3, nil)
	for x := int16(0); x < 10; x++ {
		m.SetPixel(x, 2, ColorOn)
	}
	require.Equal(t, 10, m.Lit())
	m.Clear()
	assert.Zero(t, m.Lit())
}

func TestMonoDisplayCallsPresent(t *testing.T) {
	var got *Mono
	m := NewMono(8, 8, func(m *Mono) error {
		got = m
		return nil
	})
	require.NoError(t, m.Display())
	assert.Same(t, m, got)

	boom := errors.New("bus error")
	m = NewMono(8, 8, func(*Mono) error { return boom })
	assert.ErrorIs(t, m.Display(), boom)

	assert.NoError(t, NewMono(8, 8, nil).Display())
}

func TestMonoCopyAndExport(t *testing.T) {
	m := NewMono(4, 2, nil)
	m.SetPixel(1, 0, ColorOn)
	m.SetPixel(3, 1, ColorOn)

	dst := NewMono(4, 2, nil)
	m.CopyTo(dst)
	assert.True(t, dst.Pixel(1, 0))
	assert.True(t, dst.Pixel(3, 1))
	assert.Equal(t, 2, dst.Lit())

	p := m.Paletted()
	assert.Equal(t, uint8(1), p.ColorIndexAt(1, 0))
	assert.Equal(t, uint8(0), p.ColorIndexAt(0, 0))

	rgba := make([]byte, 4*2*4)
	m.ExpandRGBA(rgba, ColorOn, ColorOff)
	assert.Equal(t, []byte{0, 0, 0, 0xFF}, rgba[0:4])
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, rgba[4:8])
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, rgba[28:32])
}
