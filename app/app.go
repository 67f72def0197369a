package app

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"cubespin/display"
	"cubespin/hal"
	"cubespin/internal/buildinfo"
	"cubespin/internal/config"
	"cubespin/wireframe"
)

// Config is a render configuration with every name resolved.
type Config struct {
	Shape   wireframe.Shape
	Scale   float64
	Spin    wireframe.Vec3
	Rotator wireframe.Rotator
	Angles  wireframe.AnglePolicy
	Overlay bool
}

// ConfigFrom resolves the shape, rotator and angle policy named in c.
func ConfigFrom(c *config.Config) (Config, error) {
	shape, err := wireframe.ShapeByName(c.Render.Shape)
	if err != nil {
		return Config{}, err
	}
	rot, ok := wireframe.RotatorByName(c.Render.Rotator)
	if !ok {
		return Config{}, fmt.Errorf("unknown rotator %q", c.Render.Rotator)
	}
	angles, err := wireframe.ParseAnglePolicy(c.Render.Angles)
	if err != nil {
		return Config{}, err
	}
	return Config{
		Shape:   shape,
		Scale:   c.Render.Scale,
		Spin:    c.Render.SpinVec(),
		Rotator: rot,
		Angles:  angles,
		Overlay: c.Render.Overlay,
	}, nil
}

// System owns one spinning object and the panel it is drawn on.
//
// Every change to the object goes through mu, so a frame never mixes
// geometry from two different states.
type System struct {
	mu sync.Mutex

	log     hal.Logger
	fb      hal.Framebuffer
	kbd     hal.Keyboard
	surface *display.Lines
	obj     *wireframe.Object

	spin    wireframe.Vec3
	overlay bool
	paused  bool
	frame   uint64
	faults  uint64
}

// New validates the shape and builds a System on h.
func New(h hal.HAL, cfg Config) (*System, error) {
	if err := cfg.Shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, errors.New("no framebuffer")
	}
	fb := disp.Framebuffer()

	obj := wireframe.NewObject(cfg.Shape)
	obj.Scale = cfg.Scale
	obj.SetRotator(cfg.Rotator)
	obj.SetAnglePolicy(cfg.Angles)

	var kbd hal.Keyboard
	if in := h.Input(); in != nil {
		kbd = in.Keyboard()
	}

	s := &System{
		log:     h.Logger(),
		fb:      fb,
		kbd:     kbd,
		surface: display.NewLines(fb),
		obj:     obj,
		spin:    cfg.Spin,
		overlay: cfg.Overlay,
	}
	w, ht := s.surface.Size()
	s.logf("cubespin %s: %d vertices, %d edges, scale %g, spin %v, angles %s, panel %dx%d",
		buildinfo.Short(), len(cfg.Shape.Vertices), len(cfg.Shape.Edges), cfg.Scale, cfg.Spin, cfg.Angles, w, ht)
	return s, nil
}

// NewWithConfig returns the per-tick step function used by the host runners.
func NewWithConfig(h hal.HAL, cfg Config) (func() error, error) {
	s, err := New(h, cfg)
	if err != nil {
		return nil, err
	}
	return s.Step, nil
}

// Run steps the system hz times a second forever (TinyGo entrypoint).
func Run(h hal.HAL, cfg Config, hz int) {
	s, err := New(h, cfg)
	if err != nil {
		h.Logger().WriteLineString("cubespin: " + err.Error())
		select {}
	}

	t := time.NewTicker(time.Second / time.Duration(hz))
	defer t.Stop()
	for range t.C {
		if err := s.Step(); err != nil {
			s.log.WriteLineString(err.Error())
		}
	}
}

// Step runs one tick: input, clear, render, overlay, present, spin.
//
// A panic while rendering is logged and the frame is not presented; the
// object still spins so the next tick carries on.
func (s *System) Step() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.handleKeys()

	s.fb.Clear()
	var err error
	if s.renderSafe() {
		if s.overlay {
			s.drawOverlay()
		}
		if perr := s.fb.Display(); perr != nil {
			err = fmt.Errorf("present frame %d: %w", s.frame, perr)
		}
	}

	if !s.paused {
		s.obj.Spin(s.spin)
	}
	s.frame++
	return err
}

// Update runs fn with exclusive access to the object, between ticks.
func (s *System) Update(fn func(o *wireframe.Object)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.obj)
}

// State is a point-in-time copy of the System's counters and controls.
type State struct {
	Frame    uint64
	Faults   uint64
	Paused   bool
	Rotation wireframe.Vec3
	Scale    float64
	Spin     wireframe.Vec3
}

func (s *System) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Frame:    s.frame,
		Faults:   s.faults,
		Paused:   s.paused,
		Rotation: s.obj.Rotation,
		Scale:    s.obj.Scale,
		Spin:     s.spin,
	}
}

func (s *System) logf(format string, args ...any) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(fmt.Sprintf(format, args...))
}
