package overlay

import (
	"fmt"

	"github.com/cyberkunju/cortex/internal/engine/ui2d"
	"github.com/cyberkunju/cortex/internal/section"
)

// Entry is one row of a list panel.
type Entry struct {
	Title  string
	Detail string
}

// Entrance describes how a panel appears after a section change: it fades in
// over Duration seconds while sliding from (DX, DY) pixels to rest.
type Entrance struct {
	DX, DY   float32
	Zoom     float32 // starting scale deficit, 0.1 means 90%
	Duration float64
}

// Panel is the static content block shown for one section.
type Panel struct {
	Kicker   string // small accent line above the title
	Title    string
	Subtitle string // accent line under the title
	Body     string
	Tags     []string
	Entries  []Entry
	Action   string
	Footnote []string
	Boxed    bool // drawn on a translucent card with an accent edge
	Align    ui2d.Align
	Enter    Entrance
}

var panels = [section.Count]Panel{
	section.Intro: {
		Kicker:   "SYSTEM_ID: " + Alias,
		Title:    Headline,
		Body:     SubHeadline,
		Footnote: []string{"[ SCROLL OR NAVIGATE TO INITIATE UPLINK ]"},
		Align:    ui2d.AlignLeft,
		Enter:    Entrance{DY: 20, Duration: 1.0},
	},
	section.About: {
		Title: "Abstract Logic",
		Body:  AboutText,
		Tags: []string{
			"TSX :: REACT_THREE_FIBER",
			"PYTHON :: PYTORCH",
			"GLSL :: SHADERS",
			"NODE :: NEURAL_NETS",
		},
		Boxed: true,
		Align: ui2d.AlignLeft,
		Enter: Entrance{DX: -20, Duration: 0.8},
	},
	section.Projects: {
		Title:   "Selected Experiments",
		Entries: projectEntries(3),
		Align:   ui2d.AlignRight,
		Enter:   Entrance{DX: 20, Duration: 0.8},
	},
	section.Contact: {
		Title:    "Connect",
		Subtitle: "OPEN_PORTS: 80, 443, 22",
		Action:   "INITIATE_HANDSHAKE()",
		Footnote: []string{"ENCRYPTION: ENABLED", "LATENCY: 12ms"},
		Align:    ui2d.AlignCenter,
		Enter:    Entrance{Zoom: 0.1, Duration: 0.5},
	},
}

func projectEntries(n int) []Entry {
	entries := make([]Entry, n)
	for i := range entries {
		entries[i] = Entry{
			Title:  fmt.Sprintf("Project_%02d // CORTEX_VISUALIZER", i+1),
			Detail: "WebGL Real-time Data Processing",
		}
	}
	return entries
}

// PanelFor returns the content for s. Out-of-range values fall back to the
// intro panel.
func PanelFor(s section.Section) Panel {
	if !s.Valid() {
		s = section.Intro
	}
	return panels[s]
}

// Progress returns the eased entrance state elapsed seconds after the panel
// was shown: alpha in [0, 1] and the remaining fraction of the offset.
func (e Entrance) Progress(elapsed float64) (alpha, remaining float32) {
	if e.Duration <= 0 || elapsed >= e.Duration {
		return 1, 0
	}
	if elapsed <= 0 {
		return 0, 1
	}
	x := float32(elapsed / e.Duration)
	// ease-out cubic
	inv := 1 - x
	eased := 1 - inv*inv*inv
	return eased, 1 - eased
}
