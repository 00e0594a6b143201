package mesh

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// IcosahedronFaces is the number of faces of the base icosahedron.
const IcosahedronFaces = 20

var (
	phi = float32((1 + gomath.Sqrt(5)) / 2)

	icoVertices = [12]mgl32.Vec3{
		{-1, phi, 0}, {1, phi, 0}, {-1, -phi, 0}, {1, -phi, 0},
		{0, -1, phi}, {0, 1, phi}, {0, -1, -phi}, {0, 1, -phi},
		{phi, 0, -1}, {phi, 0, 1}, {-phi, 0, -1}, {-phi, 0, 1},
	}

	icoFaces = [IcosahedronFaces][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
)

// IcosphereVertexCount returns the vertex count of an icosphere with the
// given detail: each face is cut into (detail+1)^2 triangles.
func IcosphereVertexCount(detail int) int {
	cols := detail + 1
	return IcosahedronFaces * cols * cols * 3
}

// IcosphereBuilder subdivides the icosahedron face by face so a caller can
// spread construction of a dense sphere over several frames.
type IcosphereBuilder struct {
	radius float32
	detail int
	face   int
	mesh   Mesh
}

// NewIcosphereBuilder prepares a builder. Negative detail is treated as 0.
func NewIcosphereBuilder(radius float32, detail int) *IcosphereBuilder {
	if detail < 0 {
		detail = 0
	}
	return &IcosphereBuilder{
		radius: radius,
		detail: detail,
		mesh:   Mesh{Vertices: make([]Vertex, 0, IcosphereVertexCount(detail))},
	}
}

// Step subdivides up to n more faces. Returns true once every face is done.
func (b *IcosphereBuilder) Step(n int) bool {
	for ; n > 0 && b.face < IcosahedronFaces; n-- {
		f := icoFaces[b.face]
		b.subdivide(icoVertices[f[0]], icoVertices[f[1]], icoVertices[f[2]])
		b.face++
	}
	return b.Done()
}

// Done reports whether every face has been subdivided.
func (b *IcosphereBuilder) Done() bool {
	return b.face >= IcosahedronFaces
}

// Progress returns completion in [0, 1].
func (b *IcosphereBuilder) Progress() float32 {
	return float32(b.face) / IcosahedronFaces
}

// Mesh returns the mesh built so far.
func (b *IcosphereBuilder) Mesh() *Mesh {
	return &b.mesh
}

// subdivide splits triangle (a, b, c) into a (detail+1)-row grid and projects
// every grid point onto the sphere.
func (b *IcosphereBuilder) subdivide(a, bb, c mgl32.Vec3) {
	cols := b.detail + 1

	grid := make([][]mgl32.Vec3, cols+1)
	for i := 0; i <= cols; i++ {
		t := float32(i) / float32(cols)
		aj := lerp(a, c, t)
		bj := lerp(bb, c, t)
		rows := cols - i
		grid[i] = make([]mgl32.Vec3, rows+1)
		for j := 0; j <= rows; j++ {
			if j == 0 && i == cols {
				grid[i][j] = aj
			} else {
				grid[i][j] = lerp(aj, bj, float32(j)/float32(rows))
			}
		}
	}

	for i := 0; i < cols; i++ {
		for j := 0; j < 2*(cols-i)-1; j++ {
			k := j / 2
			if j%2 == 0 {
				b.push(grid[i][k+1], grid[i+1][k], grid[i][k])
			} else {
				b.push(grid[i][k+1], grid[i+1][k+1], grid[i+1][k])
			}
		}
	}
}

func (b *IcosphereBuilder) push(vs ...mgl32.Vec3) {
	for _, v := range vs {
		n := v.Normalize()
		b.mesh.Vertices = append(b.mesh.Vertices, Vertex{
			Position: n.Mul(b.radius),
			Normal:   n,
		})
	}
}

// Icosphere builds a complete icosphere in one call.
func Icosphere(radius float32, detail int) *Mesh {
	b := NewIcosphereBuilder(radius, detail)
	b.Step(IcosahedronFaces)
	return b.Mesh()
}

func lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
