// Package overlay draws the 2D layer over the scene: header badge, section
// nav, the per-section content panel, footer and the loading screen.
package overlay

import (
	gomath "math"
	"strconv"
	"strings"

	"github.com/cyberkunju/cortex/internal/engine/ui2d"
	"github.com/cyberkunju/cortex/internal/section"
)

// Measurer reports the pixel size of text at a scale. *ui2d.Atlas is one.
type Measurer interface {
	Measure(text string, scale float32) (float32, float32)
}

// Layout metrics in unscaled pixels.
const (
	margin      = 48
	contentInd  = 40
	navPadX     = 16
	navPadY     = 8
	navDot      = 4
	navGap      = 32
	navInset    = 8
	loaderW     = 200
	loaderH     = 2
	loaderGap   = 12
	pulsePeriod = 2.0
)

// Overlay lays out and draws the overlay for the active section.
type Overlay struct {
	measure Measurer
	density float32

	shown   section.Section
	shownAt float64
	started bool
}

// New creates an overlay that lays text out with m.
func New(m Measurer) *Overlay {
	return &Overlay{measure: m, density: 1}
}

// SetDensity sets the ratio of drawable pixels to window units, so the
// layout keeps its physical size on HiDPI displays.
func (o *Overlay) SetDensity(d float32) {
	if d <= 0 {
		d = 1
	}
	o.density = d
}

func (o *Overlay) px(v float32) float32 {
	return v * o.density
}

// ts converts a base text scale to an integer one so glyph texels stay
// square.
func (o *Overlay) ts(base float32) float32 {
	return max(1, float32(gomath.Round(float64(base*o.density))))
}

func navLabel(s section.Section) string {
	return strings.ToUpper(s.String())
}

// NavRects returns the clickable rectangle of every nav button for a screen
// width, right-aligned in the header.
func (o *Overlay) NavRects(width float32) [section.Count]ui2d.Rect {
	var rects [section.Count]ui2d.Rect
	scale := o.ts(1)

	var widths [section.Count]float32
	var height, total float32
	for _, s := range section.All() {
		tw, th := o.measure.Measure(navLabel(s), scale)
		widths[s] = o.px(navPadX*2+navDot+12) + tw
		height = max(height, th+o.px(navPadY*2))
		total += widths[s]
	}
	total += o.px(navGap) * float32(section.Count-1)

	x := width - o.px(margin+navInset) - total
	y := o.px(margin + navInset)
	for _, s := range section.All() {
		rects[s] = ui2d.Rect{X: x, Y: y, W: widths[s], H: height}
		x += widths[s] + o.px(navGap)
	}
	return rects
}

// HitTest returns the nav button under (x, y), if any.
func (o *Overlay) HitTest(x, y, width float32) (section.Section, bool) {
	for s, r := range o.NavRects(width) {
		if r.Contains(x, y) {
			return section.Section(s), true
		}
	}
	return section.Intro, false
}

// Draw queues the overlay for the active section at time t and returns the
// section whose nav button was clicked this frame, if any.
func (o *Overlay) Draw(ctx *ui2d.Context, active section.Section, t float64) (section.Section, bool) {
	if !o.started || active != o.shown {
		o.shown, o.shownAt, o.started = active, t, true
	}

	w, h := ctx.GetScreenSize()
	o.drawHeader(ctx)
	picked, ok := o.drawNav(ctx, active, w)
	o.drawPanel(ctx, PanelFor(active), t-o.shownAt, t, w, h)
	o.drawFooter(ctx, t, w, h)
	return picked, ok
}

func (o *Overlay) drawHeader(ctx *ui2d.Context) {
	r := ctx.Renderer()
	x, y := o.px(margin), o.px(margin)
	box := ctx.Text(x, y, Badge, o.ts(2), ui2d.ColorText, ui2d.AlignLeft)
	r.DrawRect(box.X, box.Y+box.H+o.px(4), box.W, o.px(2), ui2d.ColorText)
}

func (o *Overlay) drawNav(ctx *ui2d.Context, active section.Section, width float32) (section.Section, bool) {
	r := ctx.Renderer()
	rects := o.NavRects(width)

	first, last := rects[0], rects[section.Count-1]
	bg := ui2d.Rect{X: first.X, Y: first.Y, W: last.X + last.W - first.X, H: first.H}
	r.DrawRect(bg.X-o.px(navInset), bg.Y-o.px(navInset), bg.W+o.px(2*navInset), bg.H+o.px(2*navInset), ui2d.ColorNavBg)

	picked, clicked := section.Intro, false
	for _, s := range section.All() {
		rect := rects[s]
		hovered, hit := ctx.Interact("nav_"+s.String(), rect)
		if hit {
			picked, clicked = s, true
		}

		color := ui2d.ColorTextDim
		switch {
		case s == active:
			color = ui2d.ColorCyan
		case hovered:
			color = ui2d.ColorText
		}

		scale := o.ts(1)
		_, th := o.measure.Measure(navLabel(s), scale)
		ty := rect.Y + (rect.H-th)/2
		if s == active || hovered {
			d := o.px(navDot)
			r.DrawRect(rect.X, rect.Y+(rect.H-d)/2, d, d, color)
		}
		ctx.Text(rect.X+o.px(navPadX+navDot+12), ty, navLabel(s), scale, color, ui2d.AlignLeft)
		if s == active {
			r.DrawGlow(rect.X, rect.Y+rect.H-o.px(1), rect.W, o.px(1), ui2d.ColorCyan)
		}
	}
	return picked, clicked
}

func pulse(t float64) float32 {
	return float32(0.75 + 0.25*gomath.Cos(2*gomath.Pi*t/pulsePeriod))
}

func (o *Overlay) drawPanel(ctx *ui2d.Context, p Panel, elapsed, t float64, w, h float32) {
	alpha, rest := p.Enter.Progress(elapsed)
	dx, dy := o.px(p.Enter.DX)*rest, o.px(p.Enter.DY)*rest
	fade := func(c ui2d.Color) ui2d.Color { return c.WithAlpha(c.A * alpha) }

	switch p.Align {
	case ui2d.AlignCenter:
		o.drawCentered(ctx, p, fade, w/2+dx, h/2+dy, rest)
	case ui2d.AlignRight:
		o.drawList(ctx, p, fade, o.px(margin+contentInd)+dx, h/2+dy)
	default:
		if p.Boxed {
			o.drawCard(ctx, p, fade, o.px(margin+contentInd)+dx, h/2+dy)
		} else {
			o.drawHero(ctx, p, fade, o.px(margin+contentInd)+dx, h/2+dy, t)
		}
	}
}

type fadeFunc func(ui2d.Color) ui2d.Color

// drawHero draws the large intro block vertically centred on cy.
func (o *Overlay) drawHero(ctx *ui2d.Context, p Panel, fade fadeFunc, x, cy float32, t float64) {
	r := ctx.Renderer()
	_, kh := o.measure.Measure(p.Kicker, o.ts(1))
	_, th := o.measure.Measure(p.Title, o.ts(6))
	body := Wrap(p.Body, 36)
	_, bh := o.measure.Measure(strings.Join(body, "\n"), o.ts(2))
	total := kh + o.px(8) + th + o.px(16) + o.px(2) + o.px(24) + bh + o.px(32) + kh
	y := cy - total/2

	ctx.Text(x, y, p.Kicker, o.ts(1), fade(ui2d.ColorCyan.WithAlpha(pulse(t))), ui2d.AlignLeft)
	y += kh + o.px(8)
	ctx.Text(x, y, p.Title, o.ts(6), fade(ui2d.ColorText), ui2d.AlignLeft)
	y += th + o.px(16)
	r.DrawGlow(x, y, o.px(96), o.px(2), fade(ui2d.ColorPurple))
	y += o.px(2) + o.px(24)
	r.DrawRect(x, y, o.px(1), bh, fade(ui2d.ColorBorderLight))
	ctx.Text(x+o.px(16), y, strings.Join(body, "\n"), o.ts(2), fade(ui2d.ColorTextSoft), ui2d.AlignLeft)
	y += bh + o.px(32)

	bounce := float32(gomath.Abs(gomath.Sin(t*gomath.Pi))) * o.px(6)
	for _, line := range p.Footnote {
		ctx.Text(x, y-bounce, line, o.ts(1), fade(ui2d.ColorTextDim), ui2d.AlignLeft)
		y += kh
	}
}

// drawCard draws a boxed text panel with a tag grid.
func (o *Overlay) drawCard(ctx *ui2d.Context, p Panel, fade fadeFunc, x, cy float32) {
	r := ctx.Renderer()
	pad := o.px(32)
	width := o.px(512)
	charW, _ := o.measure.Measure("X", o.ts(1))
	cols := int((width - 2*pad) / charW)

	_, th := o.measure.Measure(p.Title, o.ts(3))
	body := strings.Join(Wrap(p.Body, cols), "\n")
	_, bh := o.measure.Measure(body, o.ts(1))
	_, tagH := o.measure.Measure("X", o.ts(1))
	cell := tagH + o.px(16)
	rows := (len(p.Tags) + 1) / 2
	height := pad + th + o.px(24) + bh + o.px(24) + float32(rows)*cell + float32(max(rows-1, 0))*o.px(16) + pad
	y := cy - height/2

	r.DrawRect(x, y, width, height, fade(ui2d.ColorPanelBg))
	r.DrawRect(x, y, o.px(2), height, fade(ui2d.ColorCyan))

	cx := x + pad
	cy = y + pad
	ctx.Text(cx, cy, p.Title, o.ts(3), fade(ui2d.ColorText), ui2d.AlignLeft)
	cy += th + o.px(24)
	ctx.Text(cx, cy, body, o.ts(1), fade(ui2d.ColorTextSoft), ui2d.AlignLeft)
	cy += bh + o.px(24)

	gap := o.px(16)
	cw := (width - 2*pad - gap) / 2
	for i, tag := range p.Tags {
		tx := cx + float32(i%2)*(cw+gap)
		ty := cy + float32(i/2)*(cell+gap)
		r.DrawRectOutline(tx, ty, cw, cell, o.px(1), fade(ui2d.ColorBorder))
		ctx.Text(tx+o.px(8), ty+o.px(8), tag, o.ts(1), fade(ui2d.ColorCyan), ui2d.AlignLeft)
	}
}

// drawList draws a right-aligned title and hoverable entries in a column
// starting at x.
func (o *Overlay) drawList(ctx *ui2d.Context, p Panel, fade fadeFunc, x, cy float32) {
	r := ctx.Renderer()
	width := o.px(672)
	right := x + width

	_, th := o.measure.Measure(p.Title, o.ts(3))
	_, eh := o.measure.Measure("X", o.ts(2))
	_, dh := o.measure.Measure("X", o.ts(1))
	row := eh + o.px(4) + dh + o.px(16)
	height := th + o.px(32) + float32(len(p.Entries))*(row+o.px(24))
	y := cy - height/2

	ctx.Text(right, y, p.Title, o.ts(3), fade(ui2d.ColorText), ui2d.AlignRight)
	y += th + o.px(32)

	for i, e := range p.Entries {
		rect := ui2d.Rect{X: x, Y: y, W: width, H: row}
		hovered, _ := ctx.Interact("entry_"+strconv.Itoa(i), rect)

		shift := float32(0)
		title := ui2d.ColorTextSoft
		if hovered {
			shift = o.px(16)
			title = ui2d.ColorCyan
			r.DrawGlow(x-o.px(16), y, o.px(4), row, fade(ui2d.ColorPurple))
		}
		ctx.Text(right, y, e.Title, o.ts(2), fade(title), ui2d.AlignRight)
		ctx.Text(right, y+eh+o.px(4), e.Detail, o.ts(1), fade(ui2d.ColorTextDim), ui2d.AlignRight)
		r.DrawRect(x+shift, y+row-o.px(1), width-shift, o.px(1), fade(ui2d.ColorBorder))
		y += row + o.px(24)
	}
}

// drawCentered draws the contact block centred on (cx, cy). The action
// button is hoverable but has no target.
func (o *Overlay) drawCentered(ctx *ui2d.Context, p Panel, fade fadeFunc, cx, cy, rest float32) {
	r := ctx.Renderer()
	zoom := 1 - p.Enter.Zoom*rest
	titleScale := max(1, float32(gomath.Round(float64(o.ts(5)*zoom))))

	_, th := o.measure.Measure(p.Title, titleScale)
	_, sh := o.measure.Measure(p.Subtitle, o.ts(1))
	aw, ah := o.measure.Measure(p.Action, o.ts(2))
	btn := ui2d.Rect{W: aw + o.px(64), H: ah + o.px(24)}
	foot := strings.Join(p.Footnote, "\n")
	_, fh := o.measure.Measure(foot, o.ts(1))
	height := th + o.px(8) + sh + o.px(32) + btn.H + o.px(48) + fh
	y := cy - height/2

	ctx.Text(cx, y, p.Title, titleScale, fade(ui2d.ColorText), ui2d.AlignCenter)
	y += th + o.px(8)
	ctx.Text(cx, y, p.Subtitle, o.ts(1), fade(ui2d.ColorCyan), ui2d.AlignCenter)
	y += sh + o.px(32)

	btn.X, btn.Y = cx-btn.W/2, y
	hovered, _ := ctx.Interact("action", btn)
	text := ui2d.ColorText
	if hovered {
		r.DrawRect(btn.X, btn.Y, btn.W, btn.H, fade(ui2d.ColorWhite))
		text = ui2d.ColorBlack
	}
	r.DrawRectOutline(btn.X, btn.Y, btn.W, btn.H, o.px(1), fade(ui2d.ColorWhite))
	ctx.Text(cx, btn.Y+o.px(12), p.Action, o.ts(2), fade(text), ui2d.AlignCenter)
	y += btn.H + o.px(48)

	for _, line := range p.Footnote {
		lw, lh := o.measure.Measure(line, o.ts(1))
		ctx.Text(cx-lw/2, y, line, o.ts(1), fade(ui2d.ColorTextFaint), ui2d.AlignLeft)
		y += lh
	}
}

func (o *Overlay) drawFooter(ctx *ui2d.Context, t float64, w, h float32) {
	status := strings.Join(StatusLines, "\n")
	_, sh := o.measure.Measure(status, o.ts(1))
	ctx.Text(o.px(margin), h-o.px(margin)-sh, status, o.ts(1), ui2d.ColorTextDim, ui2d.AlignLeft)

	line := "> " + Tagline
	_, lh := o.measure.Measure(line, o.ts(1))
	ctx.Text(w-o.px(margin), h-o.px(margin)-lh, line, o.ts(1), ui2d.ColorCyan.WithAlpha(pulse(t)), ui2d.AlignRight)
}

// DrawLoader queues the loading screen: a black backdrop, a thin progress
// bar and the message for progress (0..100).
func (o *Overlay) DrawLoader(ctx *ui2d.Context, progress float64) {
	r := ctx.Renderer()
	w, h := ctx.GetScreenSize()
	r.DrawRect(0, 0, w, h, ui2d.ColorBlack)

	bw, bh := o.px(loaderW), o.px(loaderH)
	x, y := (w-bw)/2, (h-bh)/2
	frac := float32(max(0, min(100, progress)) / 100)
	r.DrawRect(x, y, bw, bh, ui2d.ColorTrack)
	r.DrawRect(x, y, bw*frac, bh, ui2d.ColorCyan)

	ctx.Text(w/2, y+bh+o.px(loaderGap), LoaderMessage(progress), o.ts(1), ui2d.ColorCyan, ui2d.AlignCenter)
}
