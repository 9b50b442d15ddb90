package render

import (
	"fmt"

	"github.com/fogleman/gg"
	"github.com/google/uuid"

	"github.com/talgya/hexmap/internal/territory"
)

// Options controls plot presentation.
type Options struct {
	// Width and Height of the canvas in pixels. Zero picks defaults.
	Width, Height int
	// UseColors tints nodes by owning hexagon instead of light grey.
	UseColors bool
	// ShowIDs draws the first id segment on each node.
	ShowIDs bool
	// Supply lists territory ids to outline as supply centers.
	Supply []uuid.UUID
}

const (
	defaultWidth  = 1200
	defaultHeight = 800
	nodeRadius    = 28.0
)

type rgb struct{ r, g, b float64 }

// hexagonPalette cycles per hexagon when coloring is on.
var hexagonPalette = []rgb{
	{0.85, 0.22, 0.22}, // red
	{0.22, 0.35, 0.85}, // blue
	{0.20, 0.65, 0.30}, // green
	{0.95, 0.60, 0.15}, // orange
	{0.55, 0.30, 0.75}, // purple
	{0.15, 0.70, 0.75}, // cyan
	{0.85, 0.30, 0.75}, // magenta
	{0.90, 0.85, 0.25}, // yellow
}

var lightGrey = rgb{0.83, 0.83, 0.83}

// PNG lays out the graph and writes the plot to path. Internal edges draw
// solid black, inter-hexagon edges dashed red, supply centers get a heavy
// black outline.
func PNG(g *territory.Graph, path string, opts Options) error {
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = defaultWidth
	}
	if h <= 0 {
		h = defaultHeight
	}

	pos := Layout(g)
	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	px := func(p Point) (float64, float64) {
		return p.X * float64(w), p.Y * float64(h)
	}

	// Edges first so nodes draw on top.
	for _, e := range g.EdgesOfKind(territory.EdgeInternal) {
		x1, y1 := px(pos[e.A])
		x2, y2 := px(pos[e.B])
		dc.SetRGBA(0, 0, 0, 0.6)
		dc.SetLineWidth(2)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
	}
	for _, e := range g.EdgesOfKind(territory.EdgeInterHexagon) {
		x1, y1 := px(pos[e.A])
		x2, y2 := px(pos[e.B])
		dc.SetRGBA(0.85, 0.1, 0.1, 0.8)
		dc.SetLineWidth(3)
		dc.SetDash(8, 6)
		dc.DrawLine(x1, y1, x2, y2)
		dc.Stroke()
		dc.SetDash()
	}

	colors := nodeColors(g, opts.UseColors)
	supply := make(map[uuid.UUID]bool, len(opts.Supply))
	for _, id := range opts.Supply {
		supply[id] = true
	}

	for _, node := range g.Nodes() {
		x, y := px(pos[node.ID])
		c := colors[node.ID]
		dc.SetRGBA(c.r, c.g, c.b, 0.85)
		dc.DrawCircle(x, y, nodeRadius)
		dc.Fill()
		if supply[node.ID] {
			dc.SetRGB(0, 0, 0)
			dc.SetLineWidth(4)
			dc.DrawCircle(x, y, nodeRadius)
			dc.Stroke()
		}
		if opts.ShowIDs {
			dc.SetRGB(0, 0, 0)
			dc.DrawStringAnchored(shortID(node.ID), x, y, 0.5, 0.5)
		}
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	return nil
}

// nodeColors assigns each territory its hexagon's palette color, cycling
// when the grid has more hexagons than palette entries.
func nodeColors(g *territory.Graph, useColors bool) map[uuid.UUID]rgb {
	out := make(map[uuid.UUID]rgb, g.NodeCount())
	if !useColors {
		for _, n := range g.Nodes() {
			out[n.ID] = lightGrey
		}
		return out
	}
	hexIndex := make(map[uuid.UUID]int)
	for _, n := range g.Nodes() {
		if _, ok := hexIndex[n.HexID]; !ok {
			hexIndex[n.HexID] = len(hexIndex)
		}
		out[n.ID] = hexagonPalette[hexIndex[n.HexID]%len(hexagonPalette)]
	}
	return out
}

func shortID(id uuid.UUID) string {
	return id.String()[:8]
}
