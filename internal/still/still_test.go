package still

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyberkunju/cortex/internal/config"
	"github.com/cyberkunju/cortex/internal/engine/camera"
	"github.com/cyberkunju/cortex/internal/section"
)

func smallConfig() *config.Config {
	cfg := config.Default()
	cfg.Graphics.Width = 64
	cfg.Graphics.Height = 48
	cfg.Scene.Detail = 4
	return cfg
}

func TestRenderCentreHitsBrain(t *testing.T) {
	res, err := Render(smallConfig(), Options{Time: 0, Frames: 0})
	require.NoError(t, err)

	b := res.Image.Bounds()
	assert.Equal(t, 64, b.Dx())
	assert.Equal(t, 48, b.Dy())
	assert.Positive(t, res.Stats.Triangles)
	assert.Positive(t, res.Stats.Fragments)

	assert.NotEqual(t, color.RGBA{0, 0, 0, 255}, res.Image.RGBAAt(32, 24), "brain covers the centre")
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, res.Image.RGBAAt(0, 0), "corner shows the background")
	assert.Equal(t, section.Intro, res.Camera.Section())
}

func TestRenderIsDeterministic(t *testing.T) {
	cfg := smallConfig()
	a, err := Render(cfg, Options{Time: 1.5, Post: true})
	require.NoError(t, err)
	b, err := Render(cfg, Options{Time: 1.5, Post: true})
	require.NoError(t, err)
	assert.Equal(t, a.Image.Pix, b.Image.Pix)
}

func TestRenderFramesEaseCamera(t *testing.T) {
	cfg := smallConfig()
	cfg.Scene.StartSection = section.Contact

	res, err := Render(cfg, Options{Time: -1, Frames: 1})
	require.NoError(t, err)
	assert.InDelta(t, 1.0/60, res.Time, 1e-9, "negative time follows the frame count")
	assert.InDelta(t, 6.08, res.Camera.Position().Z(), 1e-4, "one ease step from intro")

	res, err = Render(cfg, Options{Time: 0, Frames: 400})
	require.NoError(t, err)
	assert.True(t, res.Camera.Converged(1e-3))
	assert.Equal(t, camera.Targets[section.Contact].LookAt, res.Camera.Target().LookAt)
}

func TestRenderRejectsBadInput(t *testing.T) {
	_, err := Render(nil, Options{})
	assert.Error(t, err)

	cfg := smallConfig()
	cfg.Scene.CoreColor = "nope"
	_, err = Render(cfg, Options{})
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = Render(smallConfig(), Options{Frames: -1})
	assert.Error(t, err)
}
