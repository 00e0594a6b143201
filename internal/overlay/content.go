package overlay

import (
	gomath "math"
	"strings"
)

// Site copy.
const (
	Headline    = "Navaneeth K"
	Alias       = "cyberkunju"
	SubHeadline = "Computational Neuroscientist | Fullstack Dev"
	Tagline     = "Not a cybersecurity expert. I hack brains, not banks."
	AboutText   = "Simulating intelligence through code and biology. I bridge the gap between synaptic plasticity and scalable architecture. Why build a backend when you can build a cortex?"

	Badge = "NK_V1.0"
)

// StatusLines is the footer block in the bottom-left corner.
var StatusLines = []string{
	"STATUS: OPERATIONAL",
	"MEM_USAGE: 34%",
	"RENDER: GL41_CORE",
}

// LoadingMessages are shown under the loader bar, in order of progress.
var LoadingMessages = []string{
	"Loading cortical stack...",
	"Synaptic pruning in progress...",
	"Establishing neural handshake...",
	"Compiling dendrites...",
}

// LoaderMessage picks the message for a progress percentage. Progress is
// clamped to [0, 100]; the last message only appears at 100.
func LoaderMessage(progress float64) string {
	if gomath.IsNaN(progress) {
		progress = 0
	}
	progress = max(0, min(100, progress))
	i := int(gomath.Floor(progress / 100 * float64(len(LoadingMessages)-1)))
	return LoadingMessages[i]
}

// Wrap breaks text into lines of at most cols runes on word boundaries.
// Words longer than cols are put on a line of their own.
func Wrap(text string, cols int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if cols <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	var line strings.Builder
	n := 0
	for _, w := range words {
		wl := len([]rune(w))
		if n > 0 && n+1+wl > cols {
			lines = append(lines, line.String())
			line.Reset()
			n = 0
		}
		if n > 0 {
			line.WriteByte(' ')
			n++
		}
		line.WriteString(w)
		n += wl
	}
	return append(lines, line.String())
}
