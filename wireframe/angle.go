package wireframe

import (
	"fmt"
	"math"
)

// AnglePolicy decides what Spin does with accumulated rotation.
type AnglePolicy uint8

const (
	// AngleUnbounded lets angles grow forever. Trig precision degrades slowly
	// over very long runs.
	AngleUnbounded AnglePolicy = iota
	// AngleWrap keeps each angle in [0, 2π).
	AngleWrap
)

func (p AnglePolicy) String() string {
	switch p {
	case AngleUnbounded:
		return "unbounded"
	case AngleWrap:
		return "wrap"
	}
	return fmt.Sprintf("AnglePolicy(%d)", uint8(p))
}

// ParseAnglePolicy parses "unbounded" or "wrap". Empty means unbounded.
func ParseAnglePolicy(s string) (AnglePolicy, error) {
	switch s {
	case "", "unbounded":
		return AngleUnbounded, nil
	case "wrap":
		return AngleWrap, nil
	}
	return 0, fmt.Errorf("unknown angle policy %q", s)
}

// Apply returns angles after the policy.
func (p AnglePolicy) Apply(angles Vec3) Vec3 {
	if p != AngleWrap {
		return angles
	}
	return Vec3{X: wrapAngle(angles.X), Y: wrapAngle(angles.Y), Z: wrapAngle(angles.Z)}
}

func wrapAngle(a float64) float64 {
	const twoPi = 2 * math.Pi
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	// -tiny + 2π rounds up to 2π.
	if a >= twoPi {
		a = 0
	}
	return a
}
