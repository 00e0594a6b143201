package ui2d

import (
	"image"
	"image/draw"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	firstGlyph  = ' '
	lastGlyph   = '~'
	atlasCols   = 16
	replacement = '?'
)

// Atlas is a monospace glyph sheet rasterized from a font.Face. It is pure
// CPU data so layout can be measured without a GL context.
type Atlas struct {
	Image  *image.Alpha
	CellW  int
	CellH  int
	cols   int
	glyphs int
}

// NewAtlas rasterizes the printable ASCII range of face into a grid of
// equally sized cells.
func NewAtlas(face font.Face) *Atlas {
	adv, _ := face.GlyphAdvance('M')
	m := face.Metrics()
	a := &Atlas{
		CellW:  adv.Ceil(),
		CellH:  (m.Ascent + m.Descent).Ceil(),
		cols:   atlasCols,
		glyphs: int(lastGlyph-firstGlyph) + 1,
	}
	rows := (a.glyphs + a.cols - 1) / a.cols
	a.Image = image.NewAlpha(image.Rect(0, 0, a.cols*a.CellW, rows*a.CellH))

	for i := 0; i < a.glyphs; i++ {
		cx, cy := (i%a.cols)*a.CellW, (i/a.cols)*a.CellH
		dot := fixed.P(cx, cy+m.Ascent.Ceil())
		dr, mask, maskp, _, ok := face.Glyph(dot, firstGlyph+rune(i))
		if !ok {
			continue
		}
		draw.DrawMask(a.Image, dr, image.Opaque, image.Point{}, mask, maskp, draw.Over)
	}
	return a
}

func (a *Atlas) index(r rune) int {
	if r < firstGlyph || r > lastGlyph {
		r = replacement
	}
	return int(r - firstGlyph)
}

// UV returns the texture coordinates of a glyph; runes outside the sheet map
// to '?'.
func (a *Atlas) UV(r rune) (u0, v0, u1, v1 float32) {
	i := a.index(r)
	b := a.Image.Bounds()
	x, y := (i%a.cols)*a.CellW, (i/a.cols)*a.CellH
	u0 = float32(x) / float32(b.Dx())
	v0 = float32(y) / float32(b.Dy())
	u1 = float32(x+a.CellW) / float32(b.Dx())
	v1 = float32(y+a.CellH) / float32(b.Dy())
	return
}

// Measure returns the size of text at the given scale. Lines are split on
// '\n'; the width is that of the longest line.
func (a *Atlas) Measure(text string, scale float32) (float32, float32) {
	if text == "" {
		return 0, 0
	}
	lines := strings.Split(text, "\n")
	widest := 0
	for _, l := range lines {
		widest = max(widest, len([]rune(l)))
	}
	return float32(widest*a.CellW) * scale, float32(len(lines)*a.CellH) * scale
}

// Font is an Atlas uploaded as a single-channel GL texture.
type Font struct {
	atlas   *Atlas
	texture uint32
}

// NewFont uploads the basicfont 7x13 face. Requires a current GL context.
func NewFont() *Font {
	atlas := NewAtlas(basicfont.Face7x13)
	f := &Font{atlas: atlas}

	b := atlas.Image.Bounds()
	gl.GenTextures(1, &f.texture)
	gl.BindTexture(gl.TEXTURE_2D, f.texture)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(b.Dx()), int32(b.Dy()), 0,
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Image.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return f
}

// TextureID returns the GL texture holding the atlas.
func (f *Font) TextureID() uint32 {
	return f.texture
}

// GlyphSize returns the cell size in pixels at scale 1.
func (f *Font) GlyphSize() (int, int) {
	return f.atlas.CellW, f.atlas.CellH
}

// GetGlyphUV returns the texture coordinates of r.
func (f *Font) GetGlyphUV(r rune) (u0, v0, u1, v1 float32) {
	return f.atlas.UV(r)
}

// MeasureText returns the rendered size of text.
func (f *Font) MeasureText(text string, scale float32) (float32, float32) {
	return f.atlas.Measure(text, scale)
}

// Close deletes the texture.
func (f *Font) Close() {
	if f.texture != 0 {
		gl.DeleteTextures(1, &f.texture)
		f.texture = 0
	}
}
