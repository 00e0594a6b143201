package overlay

import (
	gomath "math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	"github.com/cyberkunju/cortex/internal/engine/ui2d"
	"github.com/cyberkunju/cortex/internal/section"
)

func TestLoaderMessage(t *testing.T) {
	tests := []struct {
		progress float64
		want     string
	}{
		{0, "Loading cortical stack..."},
		{33, "Loading cortical stack..."},
		{34, "Synaptic pruning in progress..."},
		{66, "Synaptic pruning in progress..."},
		{67, "Establishing neural handshake..."},
		{99.9, "Establishing neural handshake..."},
		{100, "Compiling dendrites..."},
		{-20, "Loading cortical stack..."},
		{250, "Compiling dendrites..."},
		{gomath.NaN(), "Loading cortical stack..."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LoaderMessage(tt.progress), "progress %v", tt.progress)
	}
}

func TestWrap(t *testing.T) {
	assert.Nil(t, Wrap("   ", 10))
	assert.Equal(t, []string{"one two", "three"}, Wrap("one two three", 9))
	assert.Equal(t, []string{"a", "enormousword", "b"}, Wrap("a enormousword b", 5))
	assert.Equal(t, []string{"no limit here"}, Wrap(" no  limit here ", 0))

	for _, line := range Wrap(AboutText, 40) {
		assert.LessOrEqual(t, len(line), 40, "line %q", line)
	}
	assert.Equal(t, AboutText, strings.Join(Wrap(AboutText, 40), " "))
}

func TestPanelForEverySection(t *testing.T) {
	for _, s := range section.All() {
		p := PanelFor(s)
		assert.NotEmpty(t, p.Title, "section %v", s)
		assert.Positive(t, p.Enter.Duration, "section %v", s)
	}

	assert.Equal(t, "SYSTEM_ID: cyberkunju", PanelFor(section.Intro).Kicker)
	assert.Equal(t, Headline, PanelFor(section.Intro).Title)
	assert.Len(t, PanelFor(section.About).Tags, 4)
	assert.True(t, PanelFor(section.About).Boxed)

	entries := PanelFor(section.Projects).Entries
	require.Len(t, entries, 3)
	assert.Equal(t, "Project_01 // CORTEX_VISUALIZER", entries[0].Title)
	assert.Equal(t, "Project_03 // CORTEX_VISUALIZER", entries[2].Title)
	assert.Equal(t, ui2d.AlignRight, PanelFor(section.Projects).Align)

	assert.Equal(t, "INITIATE_HANDSHAKE()", PanelFor(section.Contact).Action)
	assert.Equal(t, PanelFor(section.Intro), PanelFor(section.Section(9)))
}

func TestEntranceProgress(t *testing.T) {
	e := Entrance{DY: 20, Duration: 1}

	alpha, rest := e.Progress(0)
	assert.Zero(t, alpha)
	assert.Equal(t, float32(1), rest)

	alpha, rest = e.Progress(0.5)
	assert.InDelta(t, 0.875, alpha, 1e-6)
	assert.InDelta(t, 0.125, rest, 1e-6)

	alpha, rest = e.Progress(3)
	assert.Equal(t, float32(1), alpha)
	assert.Zero(t, rest)

	alpha, _ = Entrance{}.Progress(0)
	assert.Equal(t, float32(1), alpha, "no duration shows immediately")
}

func TestNavLayout(t *testing.T) {
	o := New(ui2d.NewAtlas(basicfont.Face7x13))
	const width = 1280
	rects := o.NavRects(width)

	last := rects[section.Count-1]
	assert.InDelta(t, width-margin-navInset, last.X+last.W, 1e-3, "nav is right-aligned")
	for i := 1; i < int(section.Count); i++ {
		assert.InDelta(t, rects[i-1].X+rects[i-1].W+navGap, rects[i].X, 1e-3)
		assert.Equal(t, rects[0].H, rects[i].H)
	}

	// "ABOUT" is 5 glyphs of 7 px plus padding, dot and gap.
	assert.InDelta(t, float32(navPadX*2+navDot+12+5*7), rects[section.About].W, 1e-3)

	for _, s := range section.All() {
		r := rects[s]
		got, ok := o.HitTest(r.X+r.W/2, r.Y+r.H/2, width)
		require.True(t, ok, "centre of %v", s)
		assert.Equal(t, s, got)
	}
	_, ok := o.HitTest(10, 10, width)
	assert.False(t, ok)
	_, ok = o.HitTest(rects[0].X+rects[0].W+navGap/2, rects[0].Y+1, width)
	assert.False(t, ok, "gap between buttons is not a hit")
}

func TestNavLayoutDensity(t *testing.T) {
	o := New(ui2d.NewAtlas(basicfont.Face7x13))
	base := o.NavRects(1280)

	o.SetDensity(2)
	hi := o.NavRects(2560)
	for s := range base {
		assert.InDelta(t, base[s].W*2, hi[s].W, 1e-3)
		assert.InDelta(t, base[s].X*2, hi[s].X, 1e-3)
	}

	o.SetDensity(-1)
	assert.Equal(t, base, o.NavRects(1280), "invalid density resets to 1")
}
