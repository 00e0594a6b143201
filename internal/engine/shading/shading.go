// Package shading is the CPU reference of the brain's fragment stage: a
// height-driven two-colour blend, a fixed-axis rim light and a sweeping
// scanline.
package shading

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/cyberkunju/cortex/pkg/math"
)

// Params holds the shading constants.
type Params struct {
	BaseColor  mgl32.Vec3 // sulci, darkened by BaseDim
	RidgeColor mgl32.Vec3 // gyri
	BaseDim    float32

	LowHeight  float32 // height mapped to pure base
	HighHeight float32 // height mapped to pure ridge

	// The rim term uses a fixed forward axis, not the true view vector.
	RimAxis     mgl32.Vec3
	RimTint     mgl32.Vec3
	RimStrength float32
	RimPower    float32

	ScanFrequency float32 // per pixel row
	ScanSpeed     float32 // radians per second
	ScanThreshold float32
	ScanBoost     float32
}

// Default returns the neon purple/cyan palette.
func Default() Params {
	return Params{
		BaseColor:     math.Hex(0xbd00ff),
		RidgeColor:    math.Hex(0x00f3ff),
		BaseDim:       0.2,
		LowHeight:     -0.2,
		HighHeight:    0.4,
		RimAxis:       mgl32.Vec3{0, 0, 1},
		RimTint:       mgl32.Vec3{0.5, 0.8, 1.0},
		RimStrength:   0.5,
		RimPower:      3,
		ScanFrequency: 0.1,
		ScanSpeed:     5,
		ScanThreshold: 0.95,
		ScanBoost:     0.2,
	}
}

// Fragment is the per-pixel input.
type Fragment struct {
	Normal  mgl32.Vec3 // interpolated, object space
	Height  float32
	ScreenY float32 // window row, 0 at the bottom as in gl_FragCoord
}

// MixStrength maps height to the base/ridge blend factor in [0, 1].
func (p Params) MixStrength(height float32) float32 {
	return math.Smoothstep(p.LowHeight, p.HighHeight, height)
}

// Albedo is the height blend alone.
func (p Params) Albedo(height float32) mgl32.Vec3 {
	return math.MixVec3(p.BaseColor.Mul(p.BaseDim), p.RidgeColor, p.MixStrength(height))
}

// Fresnel is the rim factor: 0 facing the axis, 1 perpendicular to it.
func (p Params) Fresnel(normal mgl32.Vec3) float32 {
	return math.Pow(1-math.Abs(normal.Dot(p.RimAxis)), p.RimPower)
}

// Scanline reports whether the glitch line covers row y at time t.
func (p Params) Scanline(y float32, t float64) bool {
	phase := float64(y)*float64(p.ScanFrequency) - t*float64(p.ScanSpeed)
	return gomath.Sin(phase) > float64(p.ScanThreshold)
}

// Shade computes the final opaque colour. The result is not clamped.
func (p Params) Shade(f Fragment, t float64) mgl32.Vec3 {
	c := p.Albedo(f.Height)
	c = c.Add(p.RimTint.Mul(p.Fresnel(f.Normal) * p.RimStrength))
	if p.Scanline(f.ScreenY, t) {
		c = c.Add(mgl32.Vec3{p.ScanBoost, p.ScanBoost, p.ScanBoost})
	}
	return c
}
