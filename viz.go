package oset

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// VizConfig controls the console dump of a tree.
type VizConfig struct {
	// LineWidth clamps each printed node line; longer item runs are elided.
	LineWidth int
	// Palette maps tree levels (0 = root) to colors. Levels beyond the
	// palette wrap around.
	Palette []*color.Color
}

// VizConfigFromTerminal creates a viz config from the current terminal's
// properties, falling back to a conservative width when stdout is not
// interactive.
func VizConfigFromTerminal() *VizConfig {
	config := &VizConfig{}
	if term.IsTerminal(0) {
		w, _, err := term.GetSize(0)
		if err != nil || w <= 10 {
			config.LineWidth = 65
		} else {
			config.LineWidth = w - 5
		}
	} else {
		config.LineWidth = 65
	}
	config.Palette = makeDefaultPalette()
	return config
}

func makeDefaultPalette() []*color.Color {
	return []*color.Color{
		color.New(color.FgRed, color.Bold),
		color.New(color.FgBlue),
		color.New(color.FgCyan),
		color.New(color.FgGreen),
	}
}

// Dump prints an indented, per-level colored rendering of the tree structure
// to w (for debugging purposes). If config is nil, a heuristic creates one
// from the current terminal's properties.
func (t *Tree[T]) Dump(w io.Writer, config *VizConfig) {
	if config == nil {
		config = VizConfigFromTerminal()
	}
	if t == nil || t.root == nil {
		fmt.Fprintln(w, "(empty)")
		return
	}
	t.dumpNode(w, t.root, 0, config)
}

func (t *Tree[T]) dumpNode(w io.Writer, n *node[T], level int, config *VizConfig) {
	labels := make([]string, len(n.items))
	for i, item := range n.items {
		labels[i] = fmt.Sprintf("%v", item)
	}
	line := strings.Repeat("  ", level) + "[" + strings.Join(labels, " ") + "]"
	if config.LineWidth > 3 && len(line) > config.LineWidth {
		line = line[:config.LineWidth-1] + "…"
	}
	if len(config.Palette) > 0 {
		c := config.Palette[level%len(config.Palette)]
		c.Fprintln(w, line)
	} else {
		fmt.Fprintln(w, line)
	}
	for _, child := range n.children {
		t.dumpNode(w, child, level+1, config)
	}
}
