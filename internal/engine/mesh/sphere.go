package mesh

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// UVSphere builds a latitude/longitude sphere as a triangle list.
// Degenerate triangles at the poles are skipped.
func UVSphere(radius float32, widthSegments, heightSegments int) *Mesh {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}

	point := func(ix, iy int) Vertex {
		u := float64(ix) / float64(widthSegments)
		v := float64(iy) / float64(heightSegments)
		n := mgl32.Vec3{
			float32(-gomath.Cos(u*2*gomath.Pi) * gomath.Sin(v*gomath.Pi)),
			float32(gomath.Cos(v * gomath.Pi)),
			float32(gomath.Sin(u*2*gomath.Pi) * gomath.Sin(v*gomath.Pi)),
		}
		return Vertex{Position: n.Mul(radius), Normal: n}
	}

	m := &Mesh{}
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := point(ix+1, iy)
			b := point(ix, iy)
			c := point(ix, iy+1)
			d := point(ix+1, iy+1)
			if iy != 0 {
				m.Vertices = append(m.Vertices, a, b, d)
			}
			if iy != heightSegments-1 {
				m.Vertices = append(m.Vertices, b, c, d)
			}
		}
	}
	return m
}
