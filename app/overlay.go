package app

import (
	"fmt"

	"cubespin/display"
	"cubespin/internal/buildinfo"

	"tinygo.org/x/tinyfont"
)

var overlayFont = &tinyfont.TomThumb

const overlayLineHeight = 6

// drawOverlay writes the build id, frame number and angles in the top-left corner.
func (s *System) drawOverlay() {
	r := s.obj.Rotation
	lines := [...]string{
		fmt.Sprintf("%s #%d", buildinfo.Short(), s.frame),
		fmt.Sprintf("%.2f %.2f %.2f", r.X, r.Y, r.Z),
	}
	for i, line := range lines {
		tinyfont.WriteLine(s.fb, overlayFont, 0, int16((i+1)*overlayLineHeight), line, display.ColorOn)
	}
}
