package lighting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRig(t *testing.T) {
	r := Default()
	assert.InDelta(t, 0.2, r.Ambient, 1e-6)
	require.Equal(t, 2, r.Count())
	assert.Equal(t, mgl32.Vec3{10, 10, 10}, r.Lights[0].Position)
	assert.Equal(t, mgl32.Vec3{-10, -10, -10}, r.Lights[1].Position)
	assert.InDelta(t, 0.5, r.Lights[1].Intensity, 1e-6)
}

func TestFlattenedUniforms(t *testing.T) {
	r := Default()

	pos := r.Positions()
	require.Len(t, pos, MaxPointLights*3)
	assert.Equal(t, []float32{10, 10, 10, -10, -10, -10}, pos[:6])
	for _, v := range pos[6:] {
		assert.Zero(t, v, "unused slots are zeroed")
	}

	col := r.Colors()
	require.Len(t, col, MaxPointLights*3)
	// #00f3ff at intensity 1
	assert.InDelta(t, 0, col[0], 1e-6)
	assert.InDelta(t, 243.0/255.0, col[1], 1e-6)
	assert.InDelta(t, 1, col[2], 1e-6)
	// #bd00ff at intensity 0.5
	assert.InDelta(t, 0.5*189.0/255.0, col[3], 1e-6)
	assert.InDelta(t, 0, col[4], 1e-6)
	assert.InDelta(t, 0.5, col[5], 1e-6)
}

func TestAddLightCapacity(t *testing.T) {
	r := &Rig{}
	for i := 0; i < MaxPointLights; i++ {
		require.True(t, r.AddLight(PointLight{Intensity: 1}))
	}
	assert.False(t, r.AddLight(PointLight{Intensity: 1}))
	assert.Equal(t, MaxPointLights, r.Count())
}

func TestIrradiance(t *testing.T) {
	r := &Rig{
		Ambient: 0.2,
		Lights: []PointLight{
			{Position: mgl32.Vec3{0, 0, 10}, Color: mgl32.Vec3{1, 1, 1}, Intensity: 1},
		},
	}

	facing := r.Irradiance(mgl32.Vec3{}, mgl32.Vec3{0, 0, 1})
	assert.InDelta(t, 1.2, facing[0], 1e-5)

	away := r.Irradiance(mgl32.Vec3{}, mgl32.Vec3{0, 0, -1})
	assert.InDelta(t, 0.2, away[0], 1e-5, "back faces only get ambient")

	grazing := r.Irradiance(mgl32.Vec3{}, mgl32.Vec3{1, 0, 0})
	assert.InDelta(t, 0.2, grazing[0], 1e-5)

	coincident := r.Irradiance(mgl32.Vec3{0, 0, 10}, mgl32.Vec3{0, 0, 1})
	assert.InDelta(t, 0.2, coincident[0], 1e-5)
}
