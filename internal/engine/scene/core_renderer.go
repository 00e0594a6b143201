package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/cyberkunju/cortex/internal/engine/lighting"
	"github.com/cyberkunju/cortex/internal/engine/mesh"
	"github.com/cyberkunju/cortex/internal/engine/scene/shaders"
	"github.com/cyberkunju/cortex/internal/engine/shader"
)

// Core sphere tessellation.
const (
	coreWidthSegments  = 32
	coreHeightSegments = 32
)

// CoreRenderer draws the lit inner sphere.
type CoreRenderer struct {
	program *shader.Program
	mesh    *gpuMesh
	color   mgl32.Vec3
}

// NewCoreRenderer compiles the core program and builds the unit sphere.
func NewCoreRenderer(color mgl32.Vec3) (*CoreRenderer, error) {
	program, err := shader.New("core", shaders.CoreVertexShader, shaders.CoreFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("core shader: %w", err)
	}
	sphere := mesh.UVSphere(1, coreWidthSegments, coreHeightSegments)
	return &CoreRenderer{program: program, mesh: uploadMesh(sphere), color: color}, nil
}

// Render draws the core lit by rig.
func (cr *CoreRenderer) Render(model, view, proj mgl32.Mat4, rig *lighting.Rig) {
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	cr.program.Use()
	cr.program.SetMat4("uModel", model)
	cr.program.SetMat4("uView", view)
	cr.program.SetMat4("uProjection", proj)
	cr.program.SetVec3("uColor", cr.color)
	cr.program.SetFloat("uAmbient", rig.Ambient)
	cr.program.SetInt("uLightCount", int32(rig.Count()))
	cr.program.SetVec3Array("uLightPositions", rig.Positions())
	cr.program.SetVec3Array("uLightColors", rig.Colors())
	cr.mesh.draw()

	gl.Disable(gl.CULL_FACE)
}

// Destroy releases GL resources.
func (cr *CoreRenderer) Destroy() {
	cr.mesh.destroy()
	cr.program.Destroy()
}
