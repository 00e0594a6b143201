// Package ui2d provides a small batched 2D layer for drawing the overlay on
// top of the 3D scene.
package ui2d

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/cyberkunju/cortex/internal/engine/shader"
)

const solidVertexShader = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec4 aColor;

uniform mat4 uProjection;

out vec4 vColor;

void main() {
	gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
	vColor = aColor;
}
`

const solidFragmentShader = `
#version 410 core

in vec4 vColor;
out vec4 FragColor;

void main() {
	FragColor = vColor;
}
`

const textVertexShader = `
#version 410 core

layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;
layout (location = 2) in vec4 aColor;

uniform mat4 uProjection;

out vec2 vTexCoord;
out vec4 vColor;

void main() {
	gl_Position = uProjection * vec4(aPos, 0.0, 1.0);
	vTexCoord = aTexCoord;
	vColor = aColor;
}
`

const textFragmentShader = `
#version 410 core

uniform sampler2D uTexture;

in vec2 vTexCoord;
in vec4 vColor;
out vec4 FragColor;

void main() {
	float coverage = texture(uTexture, vTexCoord).r;
	FragColor = vec4(vColor.rgb, vColor.a * coverage);
}
`

const (
	solidStride = 6 // pos2 + color4
	textStride  = 8 // pos2 + uv2 + color4
)

// Renderer handles 2D UI rendering with OpenGL.
type Renderer struct {
	screenWidth  int
	screenHeight int

	solidShader *shader.Program
	textShader  *shader.Program

	solidVAO uint32
	solidVBO uint32
	textVAO  uint32
	textVBO  uint32

	solidVertices []float32
	textVertices  []float32

	font *Font
}

// New creates a new 2D UI renderer.
func New(width, height int) (*Renderer, error) {
	r := &Renderer{
		screenWidth:   width,
		screenHeight:  height,
		solidVertices: make([]float32, 0, 4096),
		textVertices:  make([]float32, 0, 8192),
	}

	var err error
	r.solidShader, err = shader.New("ui_solid", solidVertexShader, solidFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("create solid shader: %w", err)
	}
	r.textShader, err = shader.New("ui_text", textVertexShader, textFragmentShader)
	if err != nil {
		r.solidShader.Destroy()
		return nil, fmt.Errorf("create text shader: %w", err)
	}

	r.solidVAO, r.solidVBO = newBuffers(solidStride, 2, 4)
	r.textVAO, r.textVBO = newBuffers(textStride, 2, 2, 4)
	r.font = NewFont()

	return r, nil
}

// newBuffers creates a VAO/VBO pair with tightly packed float attributes of
// the given component counts at locations 0..n.
func newBuffers(stride int, sizes ...int32) (uint32, uint32) {
	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	offset := uintptr(0)
	for loc, size := range sizes {
		gl.VertexAttribPointerWithOffset(uint32(loc), size, gl.FLOAT, false, int32(stride*4), offset)
		gl.EnableVertexAttribArray(uint32(loc))
		offset += uintptr(size) * 4
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao, vbo
}

// Resize updates the screen dimensions.
func (r *Renderer) Resize(width, height int) {
	r.screenWidth = width
	r.screenHeight = height
}

// GetScreenSize returns the current screen dimensions.
func (r *Renderer) GetScreenSize() (int, int) {
	return r.screenWidth, r.screenHeight
}

// Begin starts a new UI frame.
func (r *Renderer) Begin() {
	r.solidVertices = r.solidVertices[:0]
	r.textVertices = r.textVertices[:0]
}

// End renders everything queued since Begin: solid quads first, text on top.
func (r *Renderer) End() {
	var prevBlend, prevDepth, prevCull int32
	gl.GetIntegerv(gl.BLEND, &prevBlend)
	gl.GetIntegerv(gl.DEPTH_TEST, &prevDepth)
	gl.GetIntegerv(gl.CULL_FACE, &prevCull)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Viewport(0, 0, int32(r.screenWidth), int32(r.screenHeight))

	proj := mgl32.Ortho(0, float32(r.screenWidth), float32(r.screenHeight), 0, -1, 1)

	if len(r.solidVertices) > 0 {
		r.solidShader.Use()
		r.solidShader.SetMat4("uProjection", proj)
		gl.BindVertexArray(r.solidVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.solidVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(r.solidVertices)*4, unsafe.Pointer(&r.solidVertices[0]), gl.STREAM_DRAW)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.solidVertices)/solidStride))
	}

	if len(r.textVertices) > 0 && r.font != nil {
		r.textShader.Use()
		r.textShader.SetMat4("uProjection", proj)
		r.textShader.SetInt("uTexture", 0)
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, r.font.TextureID())
		gl.BindVertexArray(r.textVAO)
		gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
		gl.BufferData(gl.ARRAY_BUFFER, len(r.textVertices)*4, unsafe.Pointer(&r.textVertices[0]), gl.STREAM_DRAW)
		gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.textVertices)/textStride))
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.UseProgram(0)

	if prevBlend == gl.FALSE {
		gl.Disable(gl.BLEND)
	}
	if prevDepth == gl.TRUE {
		gl.Enable(gl.DEPTH_TEST)
	}
	if prevCull == gl.TRUE {
		gl.Enable(gl.CULL_FACE)
	}
}

// Close releases renderer resources.
func (r *Renderer) Close() {
	if r.font != nil {
		r.font.Close()
	}
	for _, vao := range []*uint32{&r.solidVAO, &r.textVAO} {
		if *vao != 0 {
			gl.DeleteVertexArrays(1, vao)
		}
	}
	for _, vbo := range []*uint32{&r.solidVBO, &r.textVBO} {
		if *vbo != 0 {
			gl.DeleteBuffers(1, vbo)
		}
	}
	if r.solidShader != nil {
		r.solidShader.Destroy()
	}
	if r.textShader != nil {
		r.textShader.Destroy()
	}
}

// DrawRect draws a filled rectangle.
func (r *Renderer) DrawRect(x, y, width, height float32, color Color) {
	r.solidVertices = appendQuad(r.solidVertices, x, y, width, height, color)
}

// DrawRectOutline draws a rectangle outline.
func (r *Renderer) DrawRectOutline(x, y, width, height, thickness float32, color Color) {
	r.DrawRect(x, y, width, thickness, color)
	r.DrawRect(x, y+height-thickness, width, thickness, color)
	r.DrawRect(x, y+thickness, thickness, height-thickness*2, color)
	r.DrawRect(x+width-thickness, y+thickness, thickness, height-thickness*2, color)
}

// DrawPanel draws a panel with border.
func (r *Renderer) DrawPanel(x, y, width, height float32, bg, border Color) {
	r.DrawRect(x, y, width, height, bg)
	r.DrawRectOutline(x, y, width, height, 1, border)
}

// DrawGlow draws a rectangle surrounded by a few widening translucent halos.
func (r *Renderer) DrawGlow(x, y, width, height float32, color Color) {
	for i := 3; i >= 1; i-- {
		s := float32(i) * 2
		r.DrawRect(x-s, y-s, width+2*s, height+2*s, color.WithAlpha(color.A*0.12))
	}
	r.DrawRect(x, y, width, height, color)
}

// DrawText draws text with its top-left corner at (x, y).
func (r *Renderer) DrawText(x, y float32, text string, scale float32, color Color) {
	if r.font == nil {
		return
	}
	r.textVertices = appendText(r.textVertices, r.font.atlas, x, y, text, scale, color)
}

// Atlas returns the glyph sheet text is laid out with.
func (r *Renderer) Atlas() *Atlas {
	if r.font == nil {
		return nil
	}
	return r.font.atlas
}

// MeasureText returns the width and height of rendered text.
func (r *Renderer) MeasureText(text string, scale float32) (float32, float32) {
	if r.font == nil {
		return 0, 0
	}
	return r.font.MeasureText(text, scale)
}

// appendQuad adds two triangles in solid vertex layout.
func appendQuad(dst []float32, x, y, w, h float32, c Color) []float32 {
	return append(dst,
		x, y, c.R, c.G, c.B, c.A,
		x+w, y, c.R, c.G, c.B, c.A,
		x+w, y+h, c.R, c.G, c.B, c.A,
		x, y, c.R, c.G, c.B, c.A,
		x+w, y+h, c.R, c.G, c.B, c.A,
		x, y+h, c.R, c.G, c.B, c.A,
	)
}

// appendText adds one textured quad per glyph. Spaces advance without
// emitting geometry.
func appendText(dst []float32, atlas *Atlas, x, y float32, text string, scale float32, c Color) []float32 {
	charW := float32(atlas.CellW) * scale
	charH := float32(atlas.CellH) * scale

	curX := x
	for _, ch := range text {
		if ch == '\n' {
			curX = x
			y += charH
			continue
		}
		if ch != ' ' {
			u0, v0, u1, v1 := atlas.UV(ch)
			dst = append(dst,
				curX, y, u0, v0, c.R, c.G, c.B, c.A,
				curX+charW, y, u1, v0, c.R, c.G, c.B, c.A,
				curX+charW, y+charH, u1, v1, c.R, c.G, c.B, c.A,
				curX, y, u0, v0, c.R, c.G, c.B, c.A,
				curX+charW, y+charH, u1, v1, c.R, c.G, c.B, c.A,
				curX, y+charH, u0, v1, c.R, c.G, c.B, c.A,
			)
		}
		curX += charW
	}
	return dst
}
