// Package noise provides the smooth 3D gradient noise used to fold the brain
// surface.
package noise

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/ojrac/opensimplex-go"
)

// DefaultSeed is the seed used when none is configured.
const DefaultSeed int64 = 0x6b756e6a75

// Field is a deterministic scalar field over 3D space.
// Implementations must be pure: equal inputs give equal outputs.
// Coordinates are float64 so time-drifted samples keep their precision.
type Field interface {
	Eval3(x, y, z float64) float64
}

// Simplex is OpenSimplex noise. Output lies in roughly [-1, 1] and is C1
// continuous with no period, so large inputs stay seamless.
type Simplex struct {
	seed int64
	gen  opensimplex.Noise
}

// NewSimplex creates a simplex field for the given seed.
func NewSimplex(seed int64) *Simplex {
	return &Simplex{
		seed: seed,
		gen:  opensimplex.New(seed),
	}
}

// Seed returns the seed the field was built with.
func (s *Simplex) Seed() int64 {
	return s.seed
}

// Eval3 samples the field.
func (s *Simplex) Eval3(x, y, z float64) float64 {
	return s.gen.Eval3(x, y, z)
}

// At samples the field at a float32 point.
func At(f Field, p mgl32.Vec3) float32 {
	return float32(f.Eval3(float64(p[0]), float64(p[1]), float64(p[2])))
}

// Constant returns the same value everywhere. It isolates the shaping
// rules from the noise in tests and previews.
type Constant float64

// Eval3 returns c.
func (c Constant) Eval3(_, _, _ float64) float64 {
	return float64(c)
}
