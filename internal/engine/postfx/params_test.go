package postfx

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestDefaultParams(t *testing.T) {
	p := Default()
	assert.True(t, p.Enabled)
	assert.InDelta(t, 1.0, p.BloomIntensity, 1e-6)
	assert.InDelta(t, 0.2, p.BloomThreshold, 1e-6)
	assert.InDelta(t, 0.5, p.BloomRadius, 1e-6)
	assert.Equal(t, mgl32.Vec2{0.002, 0.002}, p.Aberration)
	assert.InDelta(t, 0.15, p.GrainOpacity, 1e-6)
	assert.InDelta(t, 0.1, p.VignetteOffset, 1e-6)
	assert.InDelta(t, 1.1, p.VignetteDarkness, 1e-6)
}

func TestLuminance(t *testing.T) {
	assert.InDelta(t, 1, Luminance(mgl32.Vec3{1, 1, 1}), 1e-6)
	assert.InDelta(t, 0, Luminance(mgl32.Vec3{}), 1e-6)
	assert.Greater(t, Luminance(mgl32.Vec3{0, 1, 0}), Luminance(mgl32.Vec3{1, 0, 1}))
}

func TestBrightPass(t *testing.T) {
	p := Default()

	dark := mgl32.Vec3{0.1, 0.1, 0.1}
	assert.Equal(t, mgl32.Vec3{}, p.BrightPass(dark), "below threshold contributes nothing")

	cyan := mgl32.Vec3{0, 243.0 / 255.0, 1}
	assert.True(t, p.BrightPass(cyan).ApproxEqual(cyan), "ridge cyan passes in full")

	// Half-way up the smoothing ramp.
	mid := mgl32.Vec3{0.2125, 0.2125, 0.2125}
	assert.InDelta(t, 0.5*0.2125, p.BrightPass(mid)[0], 1e-4)
}

func TestBlurWeights(t *testing.T) {
	w := BlurWeights()
	sum := w[0]
	for i := 1; i < BlurTaps; i++ {
		assert.Less(t, w[i], w[i-1], "weights fall off from the centre")
		sum += 2 * w[i]
	}
	assert.InDelta(t, 1, sum, 1e-5)
}

func TestBlurSpread(t *testing.T) {
	p := Default()
	assert.InDelta(t, 2, p.BlurSpread(), 1e-6)
	p.BloomRadius = 5
	assert.InDelta(t, 3, p.BlurSpread(), 1e-6)
	p.BloomRadius = -1
	assert.InDelta(t, 1, p.BlurSpread(), 1e-6)
}

func TestScreen(t *testing.T) {
	p := Default()
	c := mgl32.Vec3{0.2, 0.4, 0.6}

	assert.True(t, p.Screen(c, 0).ApproxEqual(c), "black noise leaves the colour alone")

	white := p.Screen(c, 1)
	for i := range c {
		assert.InDelta(t, c[i]+(1-c[i])*0.15, white[i], 1e-5)
	}

	p.GrainOpacity = 0
	assert.True(t, p.Screen(c, 0.7).ApproxEqual(c))
}

func TestVignette(t *testing.T) {
	p := Default()
	assert.InDelta(t, 1, p.Vignette(mgl32.Vec2{0.5, 0.5}), 1e-6, "centre untouched")
	assert.InDelta(t, 0, p.Vignette(mgl32.Vec2{0, 0}), 1e-6, "corners black")

	prev := float32(2)
	for x := float32(0.5); x >= 0; x -= 0.05 {
		v := p.Vignette(mgl32.Vec2{x, 0.5})
		assert.LessOrEqual(t, v, prev, "darkens toward the edge")
		prev = v
	}
}
