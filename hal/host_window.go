//go:build !tinygo && cgo

package hal

import (
	"cubespin/display"
	"cubespin/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window showing the panel and forwarding arrow keys.
// It blocks until the window closes or a step fails.
func RunWindow(cfg HostConfig, newApp AppFactory) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	if cfg.Zoom <= 0 {
		cfg.Zoom = 1
	}

	h := New(cfg)
	step, err := newApp(h)
	if err != nil {
		return err
	}

	g := &hostGame{
		mem:   h,
		kbd:   h.kbd,
		step:  step,
		w:     cfg.Width,
		h:     cfg.Height,
		frame: display.NewMono(cfg.Width, cfg.Height, nil),
	}
	ebiten.SetWindowTitle("cubespin (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(cfg.Width*cfg.Zoom, cfg.Height*cfg.Zoom)
	ebiten.SetTPS(cfg.Hz)
	return ebiten.RunGame(g)
}

type hostGame struct {
	mem   *Memory
	kbd   *chanKeyboard
	step  func() error
	w, h  int
	frame *display.Mono
	fbImg *ebiten.Image
	pix   []byte
}

func (g *hostGame) Update() error {
	pollKeys(g.kbd)
	return g.step()
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(g.w, g.h)
		g.pix = make([]byte, g.w*g.h*4)
	}

	g.mem.Snapshot(g.frame)
	g.frame.ExpandRGBA(g.pix, display.ColorOn, display.ColorOff)
	g.fbImg.WritePixels(g.pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
