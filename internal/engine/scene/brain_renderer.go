package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/cyberkunju/cortex/internal/engine/mesh"
	"github.com/cyberkunju/cortex/internal/engine/scene/shaders"
	"github.com/cyberkunju/cortex/internal/engine/sculpt"
	"github.com/cyberkunju/cortex/internal/engine/shader"
	"github.com/cyberkunju/cortex/internal/engine/shading"
)

// BrainRenderer draws the sculpted icosphere. The sculpting runs in the
// vertex shader; the mesh itself never changes after upload.
type BrainRenderer struct {
	program *shader.Program
	mesh    *gpuMesh
}

// NewBrainRenderer compiles the brain program, uploads the base mesh and
// sets the constant uniforms.
func NewBrainRenderer(base *mesh.Mesh, sp sculpt.Params, hp shading.Params) (*BrainRenderer, error) {
	program, err := shader.New("brain", shaders.BrainVertexShader, shaders.BrainFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("brain shader: %w", err)
	}
	br := &BrainRenderer{program: program, mesh: uploadMesh(base)}

	program.Use()
	program.SetVec2("uAxisScale", mgl32.Vec2{sp.ScaleX, sp.ScaleZ})
	program.SetVec3("uLargeBand", bandUniform(sp.Large))
	program.SetVec3("uFineBand", bandUniform(sp.Fine))
	program.SetVec2("uFissure", mgl32.Vec2{sp.FissureWidth, sp.FissureDepth})
	program.SetVec2("uFloor", mgl32.Vec2{sp.FloorY, sp.FloorDamp})
	program.SetFloat("uAmplitude", sp.Amplitude)

	program.SetVec3("uBaseColor", hp.BaseColor)
	program.SetVec3("uRidgeColor", hp.RidgeColor)
	program.SetFloat("uBaseDim", hp.BaseDim)
	program.SetVec2("uHeightRange", mgl32.Vec2{hp.LowHeight, hp.HighHeight})
	program.SetVec3("uRimAxis", hp.RimAxis)
	program.SetVec3("uRimTint", hp.RimTint)
	program.SetVec2("uRim", mgl32.Vec2{hp.RimStrength, hp.RimPower})
	gl.Uniform4f(program.Uniform("uScan"), hp.ScanFrequency, hp.ScanSpeed, hp.ScanThreshold, hp.ScanBoost)
	gl.UseProgram(0)

	return br, nil
}

func bandUniform(b sculpt.Band) mgl32.Vec3 {
	return mgl32.Vec3{float32(b.Frequency), float32(b.Drift), b.Weight}
}

// Render draws the brain double sided.
func (br *BrainRenderer) Render(model, view, proj mgl32.Mat4, t float64) {
	gl.Disable(gl.CULL_FACE)

	br.program.Use()
	br.program.SetMat4("uModel", model)
	br.program.SetMat4("uView", view)
	br.program.SetMat4("uProjection", proj)
	br.program.SetFloat("uTime", ShaderTime(t))
	br.mesh.draw()
}

// VertexCount returns the number of uploaded vertices.
func (br *BrainRenderer) VertexCount() int {
	return int(br.mesh.count)
}

// Destroy releases GL resources.
func (br *BrainRenderer) Destroy() {
	br.mesh.destroy()
	br.program.Destroy()
}
