// Package postfx is the post-processing chain: bloom, chromatic aberration,
// film grain and vignette. The per-pixel maths lives here as plain functions;
// the shaders in scene/shaders compute the same thing on the GPU.
package postfx

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/cyberkunju/cortex/pkg/math"
)

// BlurTaps is the number of one-sided gaussian weights, centre included.
const BlurTaps = 5

// Params configures the chain.
type Params struct {
	Enabled bool

	BloomIntensity float32
	BloomThreshold float32 // luminance where bloom starts
	BloomSmoothing float32 // width of the threshold ramp
	BloomRadius    float32 // 0..1, widens the blur kernel
	BloomPasses    int     // horizontal+vertical blur pairs

	Aberration mgl32.Vec2 // UV offset of the red and blue channels

	GrainOpacity float32

	VignetteOffset   float32
	VignetteDarkness float32
}

// Default returns the scene's post settings.
func Default() Params {
	return Params{
		Enabled:          true,
		BloomIntensity:   1.0,
		BloomThreshold:   0.2,
		BloomSmoothing:   0.025,
		BloomRadius:      0.5,
		BloomPasses:      3,
		Aberration:       mgl32.Vec2{0.002, 0.002},
		GrainOpacity:     0.15,
		VignetteOffset:   0.1,
		VignetteDarkness: 1.1,
	}
}

// Luminance is the Rec. 709 luma of a linear colour.
func Luminance(c mgl32.Vec3) float32 {
	return c.Dot(mgl32.Vec3{0.2126, 0.7152, 0.0722})
}

// BrightPass returns the part of c that feeds the bloom blur.
func (p Params) BrightPass(c mgl32.Vec3) mgl32.Vec3 {
	return c.Mul(math.Smoothstep(p.BloomThreshold, p.BloomThreshold+p.BloomSmoothing, Luminance(c)))
}

// BlurSpread is the distance in texels between blur taps.
func (p Params) BlurSpread() float32 {
	return 1 + 2*math.Clamp(p.BloomRadius, 0, 1)
}

// BlurWeights returns normalised one-sided gaussian weights: w[0] is the
// centre tap and w[0] + 2*(w[1]+...+w[n-1]) == 1.
func BlurWeights() [BlurTaps]float32 {
	const sigma = 2.0
	var w [BlurTaps]float32
	var sum float64
	for i := 0; i < BlurTaps; i++ {
		g := gomath.Exp(-float64(i*i) / (2 * sigma * sigma))
		w[i] = float32(g)
		if i == 0 {
			sum += g
		} else {
			sum += 2 * g
		}
	}
	for i := range w {
		w[i] = float32(float64(w[i]) / sum)
	}
	return w
}

// Screen blends noise over c with the screen operator at the grain opacity.
func (p Params) Screen(c mgl32.Vec3, noise float32) mgl32.Vec3 {
	var s mgl32.Vec3
	for i := range c {
		s[i] = 1 - (1-math.Clamp(c[i], 0, 1))*(1-noise)
	}
	return math.MixVec3(c, s, p.GrainOpacity)
}

// Vignette returns the darkening factor at uv (0..1, centre at 0.5).
func (p Params) Vignette(uv mgl32.Vec2) float32 {
	d := uv.Sub(mgl32.Vec2{0.5, 0.5}).Len()
	return math.Smoothstep(0.8, p.VignetteOffset*0.799, d*(p.VignetteDarkness+p.VignetteOffset))
}
