package sculpt

import (
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyberkunju/cortex/internal/engine/mesh"
	"github.com/cyberkunju/cortex/internal/engine/noise"
)

func vertex(p mgl32.Vec3) mesh.Vertex {
	return mesh.Vertex{Position: p, Normal: p.Normalize()}
}

func TestMidlineSuppressed(t *testing.T) {
	fields := map[string]noise.Field{
		"constant max": noise.Constant(1),
		"constant min": noise.Constant(-1),
		"simplex":      noise.NewSimplex(noise.DefaultSeed),
	}
	for name, f := range fields {
		t.Run(name, func(t *testing.T) {
			s := New(f, Default())
			for _, tm := range []float64{0, 1.5, 1e6} {
				for _, yz := range [][2]float32{{1, 0}, {0.3, 0.9}, {-0.9, 0.3}} {
					v := vertex(mgl32.Vec3{0, yz[0], yz[1]})
					r := s.Apply(v, tm)
					assert.Equal(t, float32(0), r.Height, "midline must have zero displacement")
					assert.InDelta(t, 0.05, r.Position[0], 1e-6, "midline groove push")
				}
			}
		})
	}
}

func TestSplitFactor(t *testing.T) {
	s := New(noise.Constant(0), Default())
	assert.Equal(t, float32(0), s.SplitFactor(0))
	assert.Equal(t, float32(1), s.SplitFactor(0.2))
	assert.Equal(t, float32(1), s.SplitFactor(-0.5))
	assert.InDelta(t, 0.5, s.SplitFactor(-0.1), 1e-6)
}

func TestGrooveDirection(t *testing.T) {
	s := New(noise.Constant(0), Default())

	right := s.Apply(vertex(mgl32.Vec3{0.08, 1, 0}), 0)
	left := s.Apply(vertex(mgl32.Vec3{-0.08, 1, 0}), 0)
	assert.Less(t, right.Position[0], float32(0.08*0.75), "right side pushed toward the midline")
	assert.Greater(t, left.Position[0], float32(-0.08*0.75), "left side pushed toward the midline")

	far := s.Apply(vertex(mgl32.Vec3{1, 0, 0}), 0)
	assert.Equal(t, float32(0.75), far.Position[0], "no push past the fissure width")
}

func TestFloorDamping(t *testing.T) {
	s := New(noise.NewSimplex(noise.DefaultSeed), Default())
	rng := rand.New(rand.NewSource(3))

	for i := 0; i < 2000; i++ {
		p := mgl32.Vec3{
			rng.Float32()*3.6 - 1.8,
			-0.5 - rng.Float32()*1.3 - 1e-3,
			rng.Float32()*3.6 - 1.8,
		}
		tm := rng.Float64() * 100
		r := s.Apply(vertex(p), tm)

		scaled := s.Ellipsoid(p)
		undamped := s.Sample(scaled, tm) * s.SplitFactor(scaled[0])
		require.LessOrEqual(t, abs(r.Height), 0.2*abs(undamped)+1e-6, "point %v", p)
	}
}

func TestFloorThreshold(t *testing.T) {
	s := New(noise.Constant(1), Default())
	above := s.Apply(vertex(mgl32.Vec3{1, -0.49, 0}), 0)
	below := s.Apply(vertex(mgl32.Vec3{1, -0.51, 0}), 0)
	assert.InDelta(t, 0.55, above.Height, 1e-6)
	assert.InDelta(t, 0.11, below.Height, 1e-6)
}

func TestPushAlongNormal(t *testing.T) {
	s := New(noise.Constant(1), Default())
	v := mesh.Vertex{Position: mgl32.Vec3{1.8, 0, 0}, Normal: mgl32.Vec3{1, 0, 0}}
	r := s.Apply(v, 0)
	// 1.8*0.75 plus 0.55 * 0.3 along +X.
	assert.InDelta(t, 1.35+0.165, r.Position[0], 1e-5)
	assert.Equal(t, float32(0), r.Position[1])
}

func TestTimeDrift(t *testing.T) {
	s := New(noise.NewSimplex(noise.DefaultSeed), Default())
	v := vertex(mgl32.Vec3{1.2, 0.4, 0.9})
	a := s.Apply(v, 0)
	b := s.Apply(v, 0)
	c := s.Apply(v, 5)
	assert.Equal(t, a, b, "pure in (vertex, time)")
	assert.NotEqual(t, a.Height, c.Height, "folds drift with time")
}

func TestLargeTimeStable(t *testing.T) {
	s := New(noise.NewSimplex(noise.DefaultSeed), Default())
	v := vertex(mgl32.Vec3{1.2, 0.4, 0.9})
	for _, tm := range []float64{1e5, 1e7, 1e9, 1e12, 1e15, 1e18} {
		r := s.Apply(v, tm)
		assert.False(t, r.Position.Len() > 10 || r.Position.Len() != r.Position.Len(), "unstable at t=%v", tm)
		assert.LessOrEqual(t, abs(r.Height), float32(0.56))
	}
}

func TestLargeTimeKeepsFolds(t *testing.T) {
	s := New(noise.NewSimplex(noise.DefaultSeed), Default())
	v := vertex(mgl32.Vec3{1.2, 0.4, 0.9})

	// Each wraps to a different point in the period: 1025.5, 100.25, 2000.75.
	times := []float64{1e10 + 1.5, 1e12 + 100.25, 1e15 + 2000.75}
	heights := make(map[float32]bool)
	for _, tm := range times {
		r := s.Apply(v, tm)
		assert.Equal(t, s.Apply(v, WrapTime(tm)), r, "t=%v matches its wrapped time", tm)
		assert.NotZero(t, r.Height, "folds flattened at t=%v", tm)
		heights[r.Height] = true
	}
	assert.Len(t, heights, len(times), "folds still drift at large t")
}

func TestWrapTime(t *testing.T) {
	assert.Equal(t, 0.0, WrapTime(0))
	assert.Equal(t, 1.25, WrapTime(TimeWrap+1.25))
	assert.Equal(t, TimeWrap-1, WrapTime(-1), "negative time wraps into the period")
	w := WrapTime(1e18 + 3)
	assert.True(t, w >= 0 && w < TimeWrap, "got %v", w)
}

func TestApplyAllReusesBuffer(t *testing.T) {
	s := New(noise.NewSimplex(1), Default())
	m := mesh.Icosphere(1.8, 2)
	buf := make([]Result, 0, len(m.Vertices))
	out := s.ApplyAll(buf, m.Vertices, 1)
	require.Len(t, out, len(m.Vertices))
	assert.Equal(t, s.Apply(m.Vertices[7], 1), out[7])
	assert.Equal(t, &buf[:1][0], &out[0], "expected in-place reuse")
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
