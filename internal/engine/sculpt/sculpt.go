// Package sculpt turns a sphere into a brain-like shape by pushing vertices
// along their normals with two bands of noise, then carving a midline
// fissure and flattening the underside.
package sculpt

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/cyberkunju/cortex/internal/engine/mesh"
	"github.com/cyberkunju/cortex/internal/engine/noise"
	"github.com/cyberkunju/cortex/pkg/math"
)

// TimeWrap is the period time is folded into before it drifts the noise.
// OpenSimplex floors its coordinates to int32, so unbounded time would push
// every sample past the lattice and flatten the folds. The brain shader
// receives time wrapped by the same period.
const TimeWrap = 4096.0

// WrapTime folds t into [0, TimeWrap).
func WrapTime(t float64) float64 {
	w := gomath.Mod(t, TimeWrap)
	if w < 0 {
		w += TimeWrap
	}
	return w
}

// Band is one noise octave: the field is sampled at p*Frequency + t*Drift.
type Band struct {
	Frequency float64
	Drift     float64
	Weight    float32
}

// Params holds the sculpting constants. The brain vertex shader receives the
// same values as uniforms.
type Params struct {
	ScaleX float32 // lateral narrowing
	ScaleZ float32 // front-to-back elongation

	Large Band
	Fine  Band

	FissureWidth float32 // |x| beyond which noise is unmasked
	FissureDepth float32 // max sideways push at the midline

	FloorY    float32 // below this height noise is damped
	FloorDamp float32

	Amplitude float32 // final scale of the push along the normal
}

// Default returns the brain's sculpting constants.
func Default() Params {
	return Params{
		ScaleX:       0.75,
		ScaleZ:       1.2,
		Large:        Band{Frequency: 3, Drift: 0.1, Weight: 0.4},
		Fine:         Band{Frequency: 8, Drift: -0.05, Weight: 0.15},
		FissureWidth: 0.2,
		FissureDepth: 0.05,
		FloorY:       -0.5,
		FloorDamp:    0.2,
		Amplitude:    0.3,
	}
}

// Result is a sculpted vertex.
type Result struct {
	Position mgl32.Vec3
	Height   float32 // signed displacement, fed to shading
}

// Sculptor applies Params with a noise field. It holds no per-frame state.
type Sculptor struct {
	params Params
	field  noise.Field
}

// New creates a sculptor.
func New(field noise.Field, params Params) *Sculptor {
	return &Sculptor{params: params, field: field}
}

// Params returns the sculptor's constants.
func (s *Sculptor) Params() Params {
	return s.params
}

// Ellipsoid applies the anisotropic base scale.
func (s *Sculptor) Ellipsoid(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{p[0] * s.params.ScaleX, p[1], p[2] * s.params.ScaleZ}
}

// Sample returns the weighted two-band noise at an already scaled point,
// before any masking. t is wrapped with WrapTime.
func (s *Sculptor) Sample(p mgl32.Vec3, t float64) float32 {
	t = WrapTime(t)
	return s.band(s.params.Large, p, t) + s.band(s.params.Fine, p, t)
}

func (s *Sculptor) band(b Band, p mgl32.Vec3, t float64) float32 {
	off := t * b.Drift
	v := s.field.Eval3(
		float64(p[0])*b.Frequency+off,
		float64(p[1])*b.Frequency+off,
		float64(p[2])*b.Frequency+off,
	)
	return float32(v) * b.Weight
}

// SplitFactor is 0 on the midline and 1 once |x| passes the fissure width.
func (s *Sculptor) SplitFactor(x float32) float32 {
	return math.Smoothstep(0, s.params.FissureWidth, math.Abs(x))
}

// Apply sculpts one vertex at time t.
func (s *Sculptor) Apply(v mesh.Vertex, t float64) Result {
	p := s.Ellipsoid(v.Position)
	d := s.Sample(p, t)

	split := s.SplitFactor(p[0])
	d *= split
	push := s.params.FissureDepth
	if p[0] > 0 {
		push = -push
	}
	p[0] += push * (1 - split)

	if p[1] < s.params.FloorY {
		d *= s.params.FloorDamp
	}

	return Result{
		Position: p.Add(v.Normal.Mul(d * s.params.Amplitude)),
		Height:   d,
	}
}

// ApplyAll sculpts every vertex into dst, reusing its capacity.
func (s *Sculptor) ApplyAll(dst []Result, verts []mesh.Vertex, t float64) []Result {
	dst = dst[:0]
	for _, v := range verts {
		dst = append(dst, s.Apply(v, t))
	}
	return dst
}
