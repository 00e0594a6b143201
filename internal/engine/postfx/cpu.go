package postfx

import (
	"image"
	"image/color"
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/cyberkunju/cortex/pkg/math"
)

// GrainNoise is the per-pixel grain value at uv for time t, the same hash
// the composite shader uses.
func GrainNoise(uv mgl32.Vec2, t float64) float32 {
	_, frac := gomath.Modf(gomath.Mod(t, grainPeriod))
	s := 1 + frac
	d := float64(uv[0])*s*12.9898 + float64(uv[1])*s*78.233
	_, f := gomath.Modf(gomath.Sin(d) * 43758.5453)
	if f < 0 {
		f++
	}
	return float32(f)
}

// buffer is a linear float image with clamp-to-edge sampling.
type buffer struct {
	w, h int
	px   []mgl32.Vec3
}

func newBuffer(w, h int) *buffer {
	return &buffer{w: w, h: h, px: make([]mgl32.Vec3, w*h)}
}

func (b *buffer) at(x, y int) mgl32.Vec3 {
	x = max(0, min(b.w-1, x))
	y = max(0, min(b.h-1, y))
	return b.px[y*b.w+x]
}

// sample reads the texel under uv with nearest filtering.
func (b *buffer) sample(uv mgl32.Vec2) mgl32.Vec3 {
	return b.at(int(uv[0]*float32(b.w)), int(uv[1]*float32(b.h)))
}

// blur runs one separable gaussian pass along (dx, dy).
func (b *buffer) blur(dx, dy int, spread float32, weights [BlurTaps]float32) *buffer {
	out := newBuffer(b.w, b.h)
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			sum := b.at(x, y).Mul(weights[0])
			for i := 1; i < BlurTaps; i++ {
				o := int(gomath.Round(float64(float32(i) * spread)))
				sum = sum.Add(b.at(x+dx*o, y+dy*o).Mul(weights[i]))
				sum = sum.Add(b.at(x-dx*o, y-dy*o).Mul(weights[i]))
			}
			out.px[y*b.w+x] = sum
		}
	}
	return out
}

// Apply runs the chain over img in place at time t. It is the CPU
// counterpart of Chain and is used for stills. The blur runs at full
// resolution, so bloom is slightly tighter than on the GPU.
func (p Params) Apply(img *image.RGBA, t float64) {
	if !p.Enabled {
		return
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return
	}

	// Image rows run top-down; uv.y runs bottom-up as in GL.
	src := newBuffer(w, h)
	bright := newBuffer(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := img.RGBAAt(bounds.Min.X+x, bounds.Min.Y+h-1-y)
			v := mgl32.Vec3{float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255}
			src.px[y*w+x] = v
			bright.px[y*w+x] = p.BrightPass(v)
		}
	}

	weights := BlurWeights()
	for i := 0; i < p.BloomPasses; i++ {
		bright = bright.blur(1, 0, p.BlurSpread(), weights)
		bright = bright.blur(0, 1, p.BlurSpread(), weights)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			uv := mgl32.Vec2{(float32(x) + 0.5) / float32(w), (float32(y) + 0.5) / float32(h)}
			ru, bu := uv.Add(p.Aberration), uv.Sub(p.Aberration)

			c := mgl32.Vec3{
				src.sample(ru)[0] + bright.sample(ru)[0]*p.BloomIntensity,
				src.sample(uv)[1] + bright.sample(uv)[1]*p.BloomIntensity,
				src.sample(bu)[2] + bright.sample(bu)[2]*p.BloomIntensity,
			}
			c = p.Screen(c, GrainNoise(uv, t))
			c = c.Mul(p.Vignette(uv))

			img.SetRGBA(bounds.Min.X+x, bounds.Min.Y+h-1-y, color.RGBA{
				R: toByte(c[0]),
				G: toByte(c[1]),
				B: toByte(c[2]),
				A: 255,
			})
		}
	}
}

func toByte(v float32) uint8 {
	return uint8(math.Clamp(v, 0, 1)*255 + 0.5)
}
