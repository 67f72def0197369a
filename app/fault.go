package app

import (
	"strings"
)

// renderSafe renders the object, turning a panic into a logged fault.
func (s *System) renderSafe() (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			s.faults++
			s.reportFault(r)
			ok = false
		}
	}()
	s.obj.Render(s.surface)
	return true
}

// reportFault logs the panic value. The stack is logged for the first fault only.
func (s *System) reportFault(v any) {
	s.logf("cubespin fault: frame=%d faults=%d panic=%v", s.frame, s.faults, v)
	if s.faults > 1 || s.log == nil {
		return
	}
	for _, line := range strings.Split(string(captureStack()), "\n") {
		if line == "" {
			continue
		}
		s.log.WriteLineString(line)
	}
}
