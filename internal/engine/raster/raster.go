// Package raster is a CPU rasterizer that renders the sculpted brain with
// the reference shading. It backs the headless still renderer and lets the
// numeric core be checked pixel by pixel without a GPU.
package raster

import (
	"image"
	"image/color"
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/cyberkunju/cortex/internal/engine/lighting"
	"github.com/cyberkunju/cortex/internal/engine/mesh"
	"github.com/cyberkunju/cortex/internal/engine/sculpt"
	"github.com/cyberkunju/cortex/internal/engine/shading"
	"github.com/cyberkunju/cortex/pkg/math"
)

// Stats counts work done since the last Clear.
type Stats struct {
	Triangles int // submitted
	Clipped   int // dropped for touching the near plane
	Fragments int // passed the depth test
}

// Renderer owns a colour image and a depth buffer.
type Renderer struct {
	width, height int
	img           *image.RGBA
	depth         []float32
	background    mgl32.Vec3
	stats         Stats

	sculpted []sculpt.Result
}

// New creates a renderer cleared to background.
func New(width, height int, background mgl32.Vec3) *Renderer {
	width, height = max(width, 1), max(height, 1)
	r := &Renderer{
		width:      width,
		height:     height,
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		depth:      make([]float32, width*height),
		background: background,
	}
	r.Clear()
	return r
}

// Size returns the image dimensions.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Aspect returns width / height.
func (r *Renderer) Aspect() float32 {
	return float32(r.width) / float32(r.height)
}

// Image returns the colour buffer. It is overwritten by later draws.
func (r *Renderer) Image() *image.RGBA {
	return r.img
}

// Stats returns the counters since the last Clear.
func (r *Renderer) Stats() Stats {
	return r.stats
}

// Depth returns the stored NDC depth at pixel (x, y), +Inf if empty.
func (r *Renderer) Depth(x, y int) float32 {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return float32(gomath.Inf(1))
	}
	return r.depth[y*r.width+x]
}

// Clear resets colour, depth and stats.
func (r *Renderer) Clear() {
	bg := toRGBA(r.background)
	for y := 0; y < r.height; y++ {
		for x := 0; x < r.width; x++ {
			r.img.SetRGBA(x, y, bg)
		}
	}
	inf := float32(gomath.Inf(1))
	for i := range r.depth {
		r.depth[i] = inf
	}
	r.stats = Stats{}
}

// vertex is a clip-space vertex with the attributes the shaders interpolate.
type vertex struct {
	clip   mgl32.Vec4
	normal mgl32.Vec3
	height float32
	light  mgl32.Vec3
}

// fragmentFunc shades one covered pixel. screenY counts from the bottom.
type fragmentFunc func(normal mgl32.Vec3, height float32, light mgl32.Vec3, screenY float32) mgl32.Vec3

// DrawBrain sculpts base at time t on the CPU and rasterizes it double
// sided with params.Shade per pixel.
func (r *Renderer) DrawBrain(s *sculpt.Sculptor, base *mesh.Mesh, params shading.Params, model, viewProj mgl32.Mat4, t float64) {
	r.sculpted = s.ApplyAll(r.sculpted, base.Vertices, t)
	mvp := viewProj.Mul4(model)

	shade := func(n mgl32.Vec3, h float32, _ mgl32.Vec3, screenY float32) mgl32.Vec3 {
		return params.Shade(shading.Fragment{Normal: n, Height: h, ScreenY: screenY}, t)
	}

	var tri [3]vertex
	for i := 0; i+2 < len(r.sculpted); i += 3 {
		for k := 0; k < 3; k++ {
			res := r.sculpted[i+k]
			tri[k] = vertex{
				clip:   mvp.Mul4x1(res.Position.Vec4(1)),
				normal: base.Vertices[i+k].Normal, // the fragment stage sees the unsculpted normal
				height: res.Height,
			}
		}
		r.drawTriangle(tri, shade)
	}
}

// DrawLit rasterizes m in a flat colour lit per vertex by rig.
func (r *Renderer) DrawLit(m *mesh.Mesh, albedo mgl32.Vec3, rig *lighting.Rig, model, viewProj mgl32.Mat4) {
	mvp := viewProj.Mul4(model)
	normalMat := model.Mat3()

	shade := func(_ mgl32.Vec3, _ float32, light mgl32.Vec3, _ float32) mgl32.Vec3 {
		return mgl32.Vec3{albedo[0] * light[0], albedo[1] * light[1], albedo[2] * light[2]}
	}

	var tri [3]vertex
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		for k := 0; k < 3; k++ {
			v := m.Vertices[i+k]
			world := model.Mul4x1(v.Position.Vec4(1)).Vec3()
			n := normalMat.Mul3x1(v.Normal).Normalize()
			tri[k] = vertex{
				clip:  mvp.Mul4x1(v.Position.Vec4(1)),
				light: rig.Irradiance(world, n),
			}
		}
		r.drawTriangle(tri, shade)
	}
}

// nearW is the smallest clip w accepted. Triangles crossing it are dropped
// rather than clipped; the scene never brings geometry that close.
const nearW = 1e-3

func (r *Renderer) drawTriangle(tri [3]vertex, shade fragmentFunc) {
	r.stats.Triangles++

	var sx, sy, sz, invW [3]float32
	for k := 0; k < 3; k++ {
		c := tri[k].clip
		if c[3] < nearW {
			r.stats.Clipped++
			return
		}
		invW[k] = 1 / c[3]
		ndcX, ndcY := c[0]*invW[k], c[1]*invW[k]
		sx[k] = (ndcX + 1) * 0.5 * float32(r.width)
		sy[k] = (1 - ndcY) * 0.5 * float32(r.height)
		sz[k] = c[2] * invW[k]
	}

	area := edge(sx[0], sy[0], sx[1], sy[1], sx[2], sy[2])
	if area == 0 {
		return
	}

	minX := max(0, int(gomath.Floor(float64(min(sx[0], sx[1], sx[2])))))
	maxX := min(r.width-1, int(gomath.Ceil(float64(max(sx[0], sx[1], sx[2])))))
	minY := max(0, int(gomath.Floor(float64(min(sy[0], sy[1], sy[2])))))
	maxY := min(r.height-1, int(gomath.Ceil(float64(max(sy[0], sy[1], sy[2])))))

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5

			// Dividing by the signed area makes the weights positive inside
			// the triangle for either winding, so back faces are drawn too.
			b0 := edge(sx[1], sy[1], sx[2], sy[2], px, py) / area
			b1 := edge(sx[2], sy[2], sx[0], sy[0], px, py) / area
			b2 := 1 - b0 - b1
			if b0 < 0 || b1 < 0 || b2 < 0 {
				continue
			}

			z := b0*sz[0] + b1*sz[1] + b2*sz[2]
			if z < -1 || z > 1 {
				continue
			}
			idx := y*r.width + x
			if z >= r.depth[idx] {
				continue
			}

			// Perspective-correct attribute weights.
			w0, w1, w2 := b0*invW[0], b1*invW[1], b2*invW[2]
			norm := 1 / (w0 + w1 + w2)
			w0, w1, w2 = w0*norm, w1*norm, w2*norm

			n := tri[0].normal.Mul(w0).Add(tri[1].normal.Mul(w1)).Add(tri[2].normal.Mul(w2))
			h := tri[0].height*w0 + tri[1].height*w1 + tri[2].height*w2
			l := tri[0].light.Mul(w0).Add(tri[1].light.Mul(w1)).Add(tri[2].light.Mul(w2))

			screenY := float32(r.height-y) - 0.5
			r.depth[idx] = z
			r.img.SetRGBA(x, y, toRGBA(shade(n, h, l, screenY)))
			r.stats.Fragments++
		}
	}
}

// edge is twice the signed area of (a, b, p).
func edge(ax, ay, bx, by, px, py float32) float32 {
	return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
}

func toRGBA(c mgl32.Vec3) color.RGBA {
	return color.RGBA{
		R: uint8(math.Clamp(c[0], 0, 1)*255 + 0.5),
		G: uint8(math.Clamp(c[1], 0, 1)*255 + 0.5),
		B: uint8(math.Clamp(c[2], 0, 1)*255 + 0.5),
		A: 255,
	}
}
