package app

import (
	"cubespin/hal"
	"cubespin/wireframe"
)

const (
	scaleStep = 1
	spinStep  = 0.01
)

// handleKeys drains pending key events without blocking.
func (s *System) handleKeys() {
	if s.kbd == nil {
		return
	}
	ch := s.kbd.Events()
	for {
		select {
		case ev := <-ch:
			if ev.Press {
				s.handleKey(ev.Code)
			}
		default:
			return
		}
	}
}

func (s *System) handleKey(code hal.KeyCode) {
	switch code {
	case hal.KeyUp:
		s.obj.Scale += scaleStep
	case hal.KeyDown:
		s.obj.Scale -= scaleStep
		if s.obj.Scale < 0 {
			s.obj.Scale = 0
		}
	case hal.KeyLeft:
		s.spin.Y -= spinStep
	case hal.KeyRight:
		s.spin.Y += spinStep
	case hal.KeyEnter:
		s.paused = !s.paused
		s.logf("cubespin: paused=%t at frame %d", s.paused, s.frame)
	case hal.KeyHome:
		s.obj.Rotation = wireframe.Vec3{}
	}
}
