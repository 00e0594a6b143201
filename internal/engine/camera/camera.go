// Package camera provides the section-driven camera rig.
package camera

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/cyberkunju/cortex/internal/section"
	"github.com/cyberkunju/cortex/pkg/math"
)

// Target is where the camera should end up and what it looks at.
type Target struct {
	Position mgl32.Vec3
	LookAt   mgl32.Vec3
}

// Targets maps every section to its framing.
var Targets = [section.Count]Target{
	section.Intro:    {Position: mgl32.Vec3{0, 0, 6}, LookAt: mgl32.Vec3{0, 0, 0}},
	section.About:    {Position: mgl32.Vec3{4, 1, 4}, LookAt: mgl32.Vec3{0, 0, 0}},
	section.Projects: {Position: mgl32.Vec3{-3, -2, 5}, LookAt: mgl32.Vec3{0, 1, 0}},
	section.Contact:  {Position: mgl32.Vec3{0, 0, 8}, LookAt: mgl32.Vec3{0, 0, 0}},
}

// Lens holds the projection settings.
type Lens struct {
	FovY float32 // degrees
	Near float32
	Far  float32
}

// DefaultLens matches the scene's 45° perspective.
func DefaultLens() Lens {
	return Lens{FovY: 45, Near: 0.1, Far: 100}
}

// DefaultEase is the fraction of the remaining distance covered per frame.
const DefaultEase = 0.04

// Rig eases the camera position toward the active section's target once
// per frame. The look-at point is not eased.
type Rig struct {
	section  section.Section
	target   Target
	position mgl32.Vec3
	ease     float32
	lens     Lens
}

// NewRig creates a rig that starts settled on the given section.
func NewRig(start section.Section) *Rig {
	if !start.Valid() {
		start = section.Intro
	}
	t := Targets[start]
	return &Rig{
		section:  start,
		target:   t,
		position: t.Position,
		ease:     DefaultEase,
		lens:     DefaultLens(),
	}
}

// SetEase overrides the per-frame ease factor. Values outside (0, 1] are ignored.
func (r *Rig) SetEase(f float32) {
	if f > 0 && f <= 1 {
		r.ease = f
	}
}

// SetLens overrides the projection settings.
func (r *Rig) SetLens(l Lens) {
	r.lens = l
}

// Select switches the target to s. Re-selecting the active section is a
// no-op; invalid sections are ignored. Returns true if the target changed.
func (r *Rig) Select(s section.Section) bool {
	if !s.Valid() || s == r.section {
		return false
	}
	r.section = s
	r.target = Targets[s]
	return true
}

// Step advances the ease by one frame.
func (r *Rig) Step() {
	r.position = math.MixVec3(r.position, r.target.Position, r.ease)
}

// Section returns the active section.
func (r *Rig) Section() section.Section {
	return r.section
}

// Target returns the current goal.
func (r *Rig) Target() Target {
	return r.target
}

// Position returns the current eased camera position.
func (r *Rig) Position() mgl32.Vec3 {
	return r.position
}

// Distance returns how far the camera is from its target position.
func (r *Rig) Distance() float32 {
	return r.target.Position.Sub(r.position).Len()
}

// Converged reports whether the camera is within eps of its target.
func (r *Rig) Converged(eps float32) bool {
	return r.Distance() < eps
}

// ViewMatrix returns the view matrix looking from the eased position at the
// target's look-at point.
func (r *Rig) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(r.position, r.target.LookAt, mgl32.Vec3{0, 1, 0})
}

// Projection returns the perspective matrix for the given aspect ratio.
func (r *Rig) Projection(aspect float32) mgl32.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mgl32.Perspective(mgl32.DegToRad(r.lens.FovY), aspect, r.lens.Near, r.lens.Far)
}

// ViewProjection returns Projection(aspect) * ViewMatrix().
func (r *Rig) ViewProjection(aspect float32) mgl32.Mat4 {
	return r.Projection(aspect).Mul4(r.ViewMatrix())
}
