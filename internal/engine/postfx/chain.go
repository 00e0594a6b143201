package postfx

import (
	"fmt"
	gomath "math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/cyberkunju/cortex/internal/engine/framebuffer"
	"github.com/cyberkunju/cortex/internal/engine/scene/shaders"
	"github.com/cyberkunju/cortex/internal/engine/shader"
	"github.com/cyberkunju/cortex/internal/logger"
)

// grainPeriod bounds the grain seed so it keeps float32 precision.
const grainPeriod = 64.0

// Chain owns the scene target, the half-resolution bloom ping-pong targets
// and the three post programs.
type Chain struct {
	Params Params

	scene  *framebuffer.Framebuffer
	bloom  [2]*framebuffer.Framebuffer
	output *framebuffer.Framebuffer

	bright    *shader.Program
	blur      *shader.Program
	composite *shader.Program

	vao     uint32
	weights [BlurTaps]float32
	width   int32
	height  int32
}

// New creates the chain for a width x height viewport.
func New(width, height int32, params Params) (*Chain, error) {
	c := &Chain{Params: params, weights: BlurWeights(), width: width, height: height}

	var err error
	if c.bright, err = shader.New("bright-pass", shaders.FullscreenVertexShader, shaders.BrightPassFragmentShader); err != nil {
		c.Destroy()
		return nil, err
	}
	if c.blur, err = shader.New("blur", shaders.FullscreenVertexShader, shaders.BlurFragmentShader); err != nil {
		c.Destroy()
		return nil, err
	}
	if c.composite, err = shader.New("composite", shaders.FullscreenVertexShader, shaders.CompositeFragmentShader); err != nil {
		c.Destroy()
		return nil, err
	}

	if c.scene, err = framebuffer.New(width, height, framebuffer.Options{Depth: true, HDR: true}); err != nil {
		c.Destroy()
		return nil, fmt.Errorf("scene target: %w", err)
	}
	for i := range c.bloom {
		if c.bloom[i], err = framebuffer.New(width/2, height/2, framebuffer.Options{HDR: true}); err != nil {
			c.Destroy()
			return nil, fmt.Errorf("bloom target %d: %w", i, err)
		}
	}
	if c.output, err = framebuffer.New(width, height, framebuffer.Options{}); err != nil {
		c.Destroy()
		return nil, fmt.Errorf("output target: %w", err)
	}

	gl.GenVertexArrays(1, &c.vao)

	logger.Named("postfx").Debug("post chain ready",
		zap.Int32("width", width),
		zap.Int32("height", height),
		zap.Bool("enabled", params.Enabled))
	return c, nil
}

// Begin binds and clears the scene target. Draw the scene after this.
func (c *Chain) Begin(clear mgl32.Vec3) {
	c.scene.Bind()
	c.scene.Clear(clear[0], clear[1], clear[2], 1)
}

// End runs the post passes into the output target and blits it to the
// default framebuffer.
func (c *Chain) End(t float64) {
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)
	gl.BindVertexArray(c.vao)

	if c.Params.Enabled {
		c.runBloom()
	}

	c.output.Bind()
	c.composite.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, c.scene.ColorTexture())
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, c.bloom[0].ColorTexture())
	c.composite.SetInt("uScene", 0)
	c.composite.SetInt("uBloom", 1)
	enabled := int32(0)
	if c.Params.Enabled {
		enabled = 1
	}
	c.composite.SetInt("uEnabled", enabled)
	c.composite.SetFloat("uBloomIntensity", c.Params.BloomIntensity)
	c.composite.SetVec2("uAberration", c.Params.Aberration)
	c.composite.SetFloat("uGrainOpacity", c.Params.GrainOpacity)
	c.composite.SetFloat("uTime", float32(gomath.Mod(t, grainPeriod)))
	c.composite.SetVec2("uVignette", mgl32.Vec2{c.Params.VignetteOffset, c.Params.VignetteDarkness})
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
	gl.ActiveTexture(gl.TEXTURE0)

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, c.output.FBO())
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	gl.BlitFramebuffer(0, 0, c.width, c.height, 0, 0, c.width, c.height, gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, c.width, c.height)
	gl.BindVertexArray(0)
}

func (c *Chain) runBloom() {
	c.bloom[0].Bind()
	c.bright.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, c.scene.ColorTexture())
	c.bright.SetInt("uScene", 0)
	c.bright.SetFloat("uThreshold", c.Params.BloomThreshold)
	c.bright.SetFloat("uSmoothing", c.Params.BloomSmoothing)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)

	bw, bh := c.bloom[0].Size()
	spread := c.Params.BlurSpread()
	c.blur.Use()
	c.blur.SetInt("uImage", 0)
	c.blur.SetFloatArray("uWeights", c.weights[:])
	for i := 0; i < c.Params.BloomPasses; i++ {
		// 0 -> 1 horizontally, 1 -> 0 vertically; the result ends in bloom[0].
		c.bloom[1].Bind()
		gl.BindTexture(gl.TEXTURE_2D, c.bloom[0].ColorTexture())
		c.blur.SetVec2("uDirection", mgl32.Vec2{spread / float32(bw), 0})
		gl.DrawArrays(gl.TRIANGLES, 0, 3)

		c.bloom[0].Bind()
		gl.BindTexture(gl.TEXTURE_2D, c.bloom[1].ColorTexture())
		c.blur.SetVec2("uDirection", mgl32.Vec2{0, spread / float32(bh)})
		gl.DrawArrays(gl.TRIANGLES, 0, 3)
	}
}

// Output is the final post-processed image, kept for screenshots.
func (c *Chain) Output() *framebuffer.Framebuffer {
	return c.output
}

// Resize reallocates every target.
func (c *Chain) Resize(width, height int32) {
	c.width, c.height = max(width, 1), max(height, 1)
	c.scene.Resize(c.width, c.height)
	c.output.Resize(c.width, c.height)
	for _, fb := range c.bloom {
		fb.Resize(c.width/2, c.height/2)
	}
}

// Destroy releases GL resources. Safe on a partially built chain.
func (c *Chain) Destroy() {
	for _, p := range []*shader.Program{c.bright, c.blur, c.composite} {
		if p != nil {
			p.Destroy()
		}
	}
	for _, fb := range []*framebuffer.Framebuffer{c.scene, c.bloom[0], c.bloom[1], c.output} {
		if fb != nil {
			fb.Destroy()
		}
	}
	if c.vao != 0 {
		gl.DeleteVertexArrays(1, &c.vao)
		c.vao = 0
	}
}
