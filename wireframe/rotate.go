package wireframe

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Rotator rotates v by the Euler angles (radians about X, Y and Z).
type Rotator func(v, angles Vec3) Vec3

// Rotate applies three axis rotations in sequence: X, then Y on the result, then Z.
//
// Angles are used as given; no wrapping is done here.
func Rotate(v, angles Vec3) Vec3 {
	v = RotateX(v, angles.X)
	v = RotateY(v, angles.Y)
	return RotateZ(v, angles.Z)
}

func RotateX(v Vec3, rad float64) Vec3 {
	s, c := math.Sin(rad), math.Cos(rad)
	return Vec3{
		X: v.X,
		Y: v.Y*c - v.Z*s,
		Z: v.Y*s + v.Z*c,
	}
}

func RotateY(v Vec3, rad float64) Vec3 {
	s, c := math.Sin(rad), math.Cos(rad)
	return Vec3{
		X: v.Z*s + v.X*c,
		Y: v.Y,
		Z: v.Z*c - v.X*s,
	}
}

func RotateZ(v Vec3, rad float64) Vec3 {
	s, c := math.Sin(rad), math.Cos(rad)
	return Vec3{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
		Z: v.Z,
	}
}

// RotationMatrix returns Rz·Ry·Rx, the single matrix equivalent of Rotate.
func RotationMatrix(angles Vec3) mgl64.Mat3 {
	rx := mgl64.Rotate3DX(angles.X)
	ry := mgl64.Rotate3DY(angles.Y)
	rz := mgl64.Rotate3DZ(angles.Z)
	return rz.Mul3(ry).Mul3(rx)
}

// RotateComposed rotates v through RotationMatrix. It matches Rotate up to
// floating-point rounding, not bit for bit.
func RotateComposed(v, angles Vec3) Vec3 {
	r := RotationMatrix(angles).Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return Vec3{X: r[0], Y: r[1], Z: r[2]}
}

// RotatorByName maps a configuration name to a Rotator.
func RotatorByName(name string) (Rotator, bool) {
	switch name {
	case "", "sequential":
		return Rotate, true
	case "matrix":
		return RotateComposed, true
	}
	return nil, false
}
