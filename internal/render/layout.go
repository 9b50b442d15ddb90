// Package render turns a derived territory graph into something a human can
// look at: a force-directed PNG plot or a Graphviz DOT listing. Presentation
// only; nothing here feeds back into generation.
package render

import (
	"math"

	"github.com/google/uuid"

	"github.com/talgya/hexmap/internal/territory"
)

// Point is a normalized layout position in [0,1] x [0,1].
type Point struct {
	X, Y float64
}

const (
	layoutIterations = 250
	initialHeat      = 0.1
)

// Layout computes node positions with a spring embedder
// (Fruchterman-Reingold). Nodes start on a circle in insertion order, so
// the result is deterministic for a given graph.
func Layout(g *territory.Graph) map[uuid.UUID]Point {
	nodes := g.Nodes()
	n := len(nodes)
	pos := make(map[uuid.UUID]Point, n)
	if n == 0 {
		return pos
	}
	if n == 1 {
		pos[nodes[0].ID] = Point{X: 0.5, Y: 0.5}
		return pos
	}

	for i, node := range nodes {
		angle := 2 * math.Pi * float64(i) / float64(n)
		pos[node.ID] = Point{
			X: 0.5 + 0.4*math.Cos(angle),
			Y: 0.5 + 0.4*math.Sin(angle),
		}
	}

	// Ideal edge length for n nodes in the unit square.
	k := math.Sqrt(1.0 / float64(n))
	heat := initialHeat

	for iter := 0; iter < layoutIterations; iter++ {
		disp := make(map[uuid.UUID]Point, n)

		// Repulsion between every node pair.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				a, b := nodes[i].ID, nodes[j].ID
				dx := pos[a].X - pos[b].X
				dy := pos[a].Y - pos[b].Y
				dist := math.Hypot(dx, dy)
				if dist < 1e-9 {
					dist = 1e-9
					dx = 1e-9
				}
				f := k * k / dist / dist
				disp[a] = Point{X: disp[a].X + dx*f, Y: disp[a].Y + dy*f}
				disp[b] = Point{X: disp[b].X - dx*f, Y: disp[b].Y - dy*f}
			}
		}

		// Attraction along edges. Parallel edges pull twice, which is fine.
		for _, e := range g.Edges() {
			dx := pos[e.A].X - pos[e.B].X
			dy := pos[e.A].Y - pos[e.B].Y
			dist := math.Hypot(dx, dy)
			if dist < 1e-9 {
				continue
			}
			f := dist / k
			ux, uy := dx/dist, dy/dist
			disp[e.A] = Point{X: disp[e.A].X - ux*f*k, Y: disp[e.A].Y - uy*f*k}
			disp[e.B] = Point{X: disp[e.B].X + ux*f*k, Y: disp[e.B].Y + uy*f*k}
		}

		// Apply displacements, capped by the cooling schedule.
		for _, node := range nodes {
			d := disp[node.ID]
			mag := math.Hypot(d.X, d.Y)
			if mag < 1e-12 {
				continue
			}
			step := math.Min(mag, heat)
			p := pos[node.ID]
			pos[node.ID] = Point{
				X: clamp01(p.X + d.X/mag*step),
				Y: clamp01(p.Y + d.Y/mag*step),
			}
		}
		heat *= 0.98
	}

	normalize(pos)
	return pos
}

// normalize rescales positions to fill [0.05, 0.95] in both axes.
func normalize(pos map[uuid.UUID]Point) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pos {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	spanX := maxX - minX
	spanY := maxY - minY
	if spanX < 1e-9 {
		spanX = 1
	}
	if spanY < 1e-9 {
		spanY = 1
	}
	for id, p := range pos {
		pos[id] = Point{
			X: 0.05 + 0.9*(p.X-minX)/spanX,
			Y: 0.05 + 0.9*(p.Y-minY)/spanY,
		}
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
