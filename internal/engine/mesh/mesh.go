// Package mesh builds the base geometry the brain is sculpted from.
package mesh

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Vertex is an immutable base-mesh vertex.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3 // unit length, object space
}

// Mesh is a non-indexed triangle list: every three vertices form a triangle.
type Mesh struct {
	Vertices []Vertex
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Vertices) / 3
}

// Interleave packs the mesh as pos(3) + normal(3) floats per vertex for GPU upload.
func (m *Mesh) Interleave() []float32 {
	out := make([]float32, 0, len(m.Vertices)*6)
	for _, v := range m.Vertices {
		out = append(out,
			v.Position[0], v.Position[1], v.Position[2],
			v.Normal[0], v.Normal[1], v.Normal[2],
		)
	}
	return out
}

// Bounds returns the axis-aligned bounds of the mesh.
func (m *Mesh) Bounds() (lo, hi mgl32.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	lo, hi = m.Vertices[0].Position, m.Vertices[0].Position
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			lo[i] = float32(gomath.Min(float64(lo[i]), float64(v.Position[i])))
			hi[i] = float32(gomath.Max(float64(hi[i]), float64(v.Position[i])))
		}
	}
	return lo, hi
}
