package scene

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/cyberkunju/cortex/internal/engine/sculpt"
)

// GroupTilt tilts the whole brain group forward so the fissure is visible
// from the default camera.
const GroupTilt = 0.3

// TimeWrapSeconds bounds the time uploaded to shaders. A float32 holding a
// few hours of seconds loses the sub-millisecond steps the noise drift needs.
// It matches the CPU sculptor's wrap so both paths see the same folds.
const TimeWrapSeconds = sculpt.TimeWrap

// CoreScale is the uniform scale of the inner glow sphere.
const CoreScale = 1.5

// GroupMatrix is the fixed tilt shared by the brain and the core.
func GroupMatrix() mgl32.Mat4 {
	return mgl32.HomogRotate3DX(GroupTilt)
}

// BrainMatrix is the brain's model matrix at time t: the group tilt, a slow
// spin about Y and a slight sway about Z.
func BrainMatrix(t float64) mgl32.Mat4 {
	spin := float32(t * 0.1)
	sway := float32(gomath.Sin(t*0.2) * 0.05)
	return GroupMatrix().
		Mul4(mgl32.HomogRotate3DY(spin)).
		Mul4(mgl32.HomogRotate3DZ(sway))
}

// CoreMatrix is the core's model matrix; the core does not spin.
func CoreMatrix() mgl32.Mat4 {
	return GroupMatrix().Mul4(mgl32.Scale3D(CoreScale, CoreScale, CoreScale))
}

// ShaderTime is t wrapped for upload.
func ShaderTime(t float64) float32 {
	return float32(sculpt.WrapTime(t))
}
