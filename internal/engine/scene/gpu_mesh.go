package scene

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/cyberkunju/cortex/internal/engine/mesh"
)

const vertexStride = 6 * 4 // pos(3) + normal(3), float32

// gpuMesh is a non-indexed triangle list uploaded once.
type gpuMesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

func uploadMesh(m *mesh.Mesh) *gpuMesh {
	data := m.Interleave()
	g := &gpuMesh{count: int32(len(m.Vertices))}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	if len(data) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	}

	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, vertexStride, 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, vertexStride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return g
}

func (g *gpuMesh) draw() {
	gl.BindVertexArray(g.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, g.count)
	gl.BindVertexArray(0)
}

func (g *gpuMesh) destroy() {
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
		g.vbo = 0
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
}
