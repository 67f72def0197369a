package display

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers/pixel"
)

// Mono is an in-memory 1bpp display.
//
// It implements drivers.Displayer. Display() calls the present hook, if any.
type Mono struct {
	img     pixel.Image[pixel.Monochrome]
	w, h    int
	present func(*Mono) error
}

// NewMono allocates a width×height monochrome buffer. present may be nil.
//
// Both sizes must be positive and fit in an int16.
func NewMono(width, height int, present func(*Mono) error) *Mono {
	return &Mono{
		img:     pixel.NewImage[pixel.Monochrome](width, height),
		w:       width,
		h:       height,
		present: present,
	}
}

func (m *Mono) Size() (x, y int16) { return int16(m.w), int16(m.h) }

// SetPixel lights the pixel for any non-black color. Out of range pixels are ignored.
func (m *Mono) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || int(x) >= m.w || int(y) >= m.h {
		return
	}
	m.img.Set(int(x), int(y), pixel.Monochrome(c.R != 0 || c.G != 0 || c.B != 0))
}

func (m *Mono) Display() error {
	if m.present == nil {
		return nil
	}
	return m.present(m)
}

// Clear turns every pixel off.
func (m *Mono) Clear() { clear(m.img.RawBuffer()) }

// Pixel reports whether the pixel is lit. Out of range pixels are off.
func (m *Mono) Pixel(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return bool(m.img.Get(x, y))
}

// Lit counts lit pixels.
func (m *Mono) Lit() int {
	n := 0
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if m.img.Get(x, y) {
				n++
			}
		}
	}
	return n
}

// CopyTo copies the pixels into dst, which must have the same size.
func (m *Mono) CopyTo(dst *Mono) {
	copy(dst.img.RawBuffer(), m.img.RawBuffer())
}

// Paletted returns a black/white image of the current contents.
func (m *Mono) Paletted() *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, m.w, m.h), color.Palette{ColorOff, ColorOn})
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			if m.img.Get(x, y) {
				img.SetColorIndex(x, y, 1)
			}
		}
	}
	return img
}

// ExpandRGBA writes the pixels as RGBA into dst (len >= w*h*4).
func (m *Mono) ExpandRGBA(dst []byte, on, off color.RGBA) {
	i := 0
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			c := off
			if m.img.Get(x, y) {
				c = on
			}
			dst[i+0] = c.R
			dst[i+1] = c.G
			dst[i+2] = c.B
			dst[i+3] = c.A
			i += 4
		}
	}
}
