// Package lighting holds the scene's light rig and flattens it for GPU upload.
package lighting

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/cyberkunju/cortex/pkg/math"
)

// MaxPointLights is the size of the point light arrays in the core shader.
const MaxPointLights = 4

// PointLight is an omni light without falloff.
type PointLight struct {
	Position  mgl32.Vec3
	Color     mgl32.Vec3
	Intensity float32
}

// Rig is an ambient term plus up to MaxPointLights point lights.
type Rig struct {
	Ambient float32
	Lights  []PointLight
}

// Default returns the cyan key / violet fill rig of the scene.
func Default() *Rig {
	return &Rig{
		Ambient: 0.2,
		Lights: []PointLight{
			{Position: mgl32.Vec3{10, 10, 10}, Color: math.Hex(0x00f3ff), Intensity: 1},
			{Position: mgl32.Vec3{-10, -10, -10}, Color: math.Hex(0xbd00ff), Intensity: 0.5},
		},
	}
}

// AddLight appends a light. Returns false if the rig is full.
func (r *Rig) AddLight(l PointLight) bool {
	if len(r.Lights) >= MaxPointLights {
		return false
	}
	r.Lights = append(r.Lights, l)
	return true
}

// Count returns the number of lights that will be uploaded.
func (r *Rig) Count() int {
	return min(len(r.Lights), MaxPointLights)
}

// Positions returns positions as a flat slice sized for the shader array.
// Format: [x0, y0, z0, x1, y1, z1, ...]
func (r *Rig) Positions() []float32 {
	out := make([]float32, MaxPointLights*3)
	for i := 0; i < r.Count(); i++ {
		copy(out[i*3:], r.Lights[i].Position[:])
	}
	return out
}

// Colors returns colour times intensity as a flat slice sized for the shader array.
func (r *Rig) Colors() []float32 {
	out := make([]float32, MaxPointLights*3)
	for i := 0; i < r.Count(); i++ {
		c := r.Lights[i].Color.Mul(r.Lights[i].Intensity)
		copy(out[i*3:], c[:])
	}
	return out
}

// Irradiance returns the light reaching a surface point with unit normal n:
// ambient plus a Lambert term per light. This is what the core shader computes
// per fragment.
func (r *Rig) Irradiance(p, n mgl32.Vec3) mgl32.Vec3 {
	e := mgl32.Vec3{r.Ambient, r.Ambient, r.Ambient}
	for i := 0; i < r.Count(); i++ {
		l := r.Lights[i]
		dir := l.Position.Sub(p)
		if dir.Len() == 0 {
			continue
		}
		lambert := math.Clamp(n.Dot(dir.Normalize()), 0, 1)
		e = e.Add(l.Color.Mul(l.Intensity * lambert))
	}
	return e
}
