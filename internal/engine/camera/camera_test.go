package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyberkunju/cortex/internal/section"
)

func TestNewRigStartsSettled(t *testing.T) {
	r := NewRig(section.Intro)
	assert.Equal(t, mgl32.Vec3{0, 0, 6}, r.Position())
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, r.Target().LookAt)
	assert.True(t, r.Converged(1e-6))

	r.Step()
	assert.Equal(t, mgl32.Vec3{0, 0, 6}, r.Position(), "a settled rig stays put")
}

func TestNewRigInvalidSection(t *testing.T) {
	r := NewRig(section.Section(42))
	assert.Equal(t, section.Intro, r.Section())
}

func TestFirstFrameAfterTransition(t *testing.T) {
	r := NewRig(section.Intro)
	require.True(t, r.Select(section.About))
	assert.Equal(t, mgl32.Vec3{4, 1, 4}, r.Target().Position)

	r.Step()
	// (0,0,6) + 0.04*((4,1,4)-(0,0,6))
	want := mgl32.Vec3{0.16, 0.04, 5.92}
	assert.True(t, r.Position().ApproxEqualThreshold(want, 1e-5), "got %v, want %v", r.Position(), want)
}

func TestTourConvergesWithoutOvershoot(t *testing.T) {
	r := NewRig(section.Intro)
	tour := []section.Section{section.About, section.Projects, section.Contact, section.Intro}

	for _, s := range tour {
		r.Select(s)
		goal := r.Target().Position
		start := r.Position()
		prev := r.Distance()

		// About -> Projects is the longest hop at 7.68 units; 0.96^175 takes
		// it below 0.01.
		for frame := 0; frame < 175; frame++ {
			r.Step()
			d := r.Distance()
			require.LessOrEqual(t, d, prev, "%v frame %d moved away from the target", s, frame)
			prev = d

			// Each component stays between where it started and the goal.
			p := r.Position()
			for i := 0; i < 3; i++ {
				lo, hi := start[i], goal[i]
				if lo > hi {
					lo, hi = hi, lo
				}
				require.True(t, p[i] >= lo-1e-5 && p[i] <= hi+1e-5,
					"%v frame %d overshot on axis %d: %v not in [%v, %v]", s, frame, i, p[i], lo, hi)
			}
		}
		assert.Less(t, r.Distance(), float32(0.01), "%v did not converge", s)
		assert.Equal(t, Targets[s].LookAt, r.Target().LookAt, "look-at snaps immediately")
	}
}

func TestLongestHopFrameCount(t *testing.T) {
	r := NewRig(section.About)
	r.Select(section.Projects)
	assert.InDelta(t, 7.681, r.Distance(), 1e-3)

	frames := 0
	for r.Distance() >= 0.01 {
		r.Step()
		frames++
		require.Less(t, frames, 1000)
	}
	assert.InDelta(t, 163, frames, 1, "ln(768)/-ln(0.96)")
}

func TestSelectIdempotent(t *testing.T) {
	r := NewRig(section.Intro)
	r.Select(section.Projects)
	for i := 0; i < 10; i++ {
		r.Step()
	}
	before := r.Target()
	pos := r.Position()

	assert.False(t, r.Select(section.Projects), "re-selecting is a no-op")
	assert.Equal(t, before, r.Target())
	assert.Equal(t, pos, r.Position(), "no jump in camera motion")

	r.Step()
	want := pos.Add(before.Position.Sub(pos).Mul(DefaultEase))
	assert.True(t, r.Position().ApproxEqualThreshold(want, 1e-6))
}

func TestSelectInvalidIgnored(t *testing.T) {
	r := NewRig(section.About)
	assert.False(t, r.Select(section.Count))
	assert.Equal(t, section.About, r.Section())
}

func TestSetEase(t *testing.T) {
	r := NewRig(section.Intro)
	r.SetEase(0)
	r.SetEase(2)
	r.Select(section.Contact)
	r.Step()
	assert.InDelta(t, 6.08, r.Position()[2], 1e-5, "invalid ease values are ignored")

	r.SetEase(1)
	r.Step()
	assert.True(t, r.Position().ApproxEqualThreshold(mgl32.Vec3{0, 0, 8}, 1e-6))
}

func TestViewMatrixLooksAtTarget(t *testing.T) {
	r := NewRig(section.Projects)
	view := r.ViewMatrix()
	look := view.Mul4x1(r.Target().LookAt.Vec4(1))
	// The look-at point sits on the view axis, in front of the camera.
	assert.InDelta(t, 0, look[0], 1e-4)
	assert.InDelta(t, 0, look[1], 1e-4)
	assert.Less(t, look[2], float32(0))
}

func TestProjection(t *testing.T) {
	r := NewRig(section.Intro)
	want := mgl32.Perspective(mgl32.DegToRad(45), 16.0/9.0, 0.1, 100)
	assert.Equal(t, want, r.Projection(16.0/9.0))
	assert.Equal(t, mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 100), r.Projection(0))
}
