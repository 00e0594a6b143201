// Package math provides the small scalar and vector helpers the shading math
// is written in. Vector types come from mgl32; this package only adds the
// GLSL-style functions mgl32 lacks.
package math

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Smoothstep is the GLSL smoothstep: a cubic Hermite ramp from 0 at edge0 to
// 1 at edge1. Outside the edges the result is clamped.
func Smoothstep(edge0, edge1, x float32) float32 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// Mix is the GLSL mix: a + (b-a)*t, unclamped.
func Mix(a, b, t float32) float32 {
	return a + (b-a)*t
}

// MixVec3 linearly interpolates between two vectors.
func MixVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

// Abs returns |x|.
func Abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// Sin is float32 sine.
func Sin(x float32) float32 {
	return float32(gomath.Sin(float64(x)))
}

// Pow is float32 power.
func Pow(x, y float32) float32 {
	return float32(gomath.Pow(float64(x), float64(y)))
}

// Hex converts a 0xRRGGBB value to a linear 0..1 RGB vector (no gamma).
func Hex(rgb uint32) mgl32.Vec3 {
	return mgl32.Vec3{
		float32((rgb>>16)&0xff) / 255.0,
		float32((rgb>>8)&0xff) / 255.0,
		float32(rgb&0xff) / 255.0,
	}
}
