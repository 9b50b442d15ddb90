package territory

import (
	"github.com/talgya/hexmap/internal/board"
	"github.com/talgya/hexmap/internal/entropy"
)

// sidePosition classifies where a territory sits along a connected side,
// looking at which neighbor sides it also touches. Adjacent hexagon sides
// are physically mirrored, so a territory at the counter-clockwise end of
// one side lines up with the clockwise end of the opposing side.
type sidePosition int

const (
	positionStart sidePosition = iota
	positionMiddle
	positionEnd
)

// classify returns the position of t along side s. A territory touching the
// counter-clockwise neighbor of s is a start, one touching the clockwise
// neighbor is an end, one touching only s is a middle. Start wins if both
// neighbors are touched.
func classify(t *board.Territory, s board.Side) sidePosition {
	if t.Touches(s.Prev()) {
		return positionStart
	}
	if t.Touches(s.Next()) {
		return positionEnd
	}
	return positionMiddle
}

// Extract flattens the grid into the derived territory graph.
//
// Pass one adds every territory as a node tagged with its hexagon and one
// internal edge per recorded adjacency. Pass two walks the grid connections
// and joins the territories touching each connected side pair. The only
// randomness is one coin flip per two-vs-two boundary, drawn from src.
func Extract(grid *board.Grid, src entropy.Source) *Graph {
	g := NewGraph()

	for _, h := range grid.Hexagons() {
		for _, t := range h.Territories {
			g.AddNode(t.ID, h.ID)
		}
		for _, e := range h.InternalEdges {
			g.AddEdge(e.A.ID, e.B.ID, EdgeInternal)
		}
	}

	for _, c := range grid.Connections() {
		hexA := grid.HexagonByID(c.HexA)
		hexB := grid.HexagonByID(c.HexB)
		if hexA == nil || hexB == nil {
			continue
		}
		joinAcross(g, hexA.TerritoriesTouching(c.SideA), c.SideA,
			hexB.TerritoriesTouching(c.SideB), c.SideB, src)
	}

	return g
}

// joinAcross connects the territories on the two ends of one side
// connection. One-member ends are unambiguous and connect all-to-all. When
// both ends have exactly two members with a clean start/end split, the
// mirrored pairs connect and a single coin flip adds either the
// start-to-start or the end-to-end cross-link, never both. Everything else
// falls back to all-to-all.
func joinAcross(g *Graph, as []*board.Territory, sideA board.Side, bs []*board.Territory, sideB board.Side, src entropy.Source) {
	if len(as) == 1 || len(bs) == 1 {
		joinAll(g, as, bs)
		return
	}

	if len(as) == 2 && len(bs) == 2 {
		startA, endA, okA := splitStartEnd(as, sideA)
		startB, endB, okB := splitStartEnd(bs, sideB)
		if okA && okB {
			g.AddEdge(startA.ID, endB.ID, EdgeInterHexagon)
			g.AddEdge(endA.ID, startB.ID, EdgeInterHexagon)
			if src.Coin() {
				g.AddEdge(startA.ID, startB.ID, EdgeInterHexagon)
			} else {
				g.AddEdge(endA.ID, endB.ID, EdgeInterHexagon)
			}
			return
		}
	}

	joinAll(g, as, bs)
}

// splitStartEnd resolves a two-territory side into its start and end
// members. Fails when either territory classifies as middle or both land in
// the same bucket.
func splitStartEnd(ts []*board.Territory, s board.Side) (start, end *board.Territory, ok bool) {
	for _, t := range ts {
		switch classify(t, s) {
		case positionStart:
			if start != nil {
				return nil, nil, false
			}
			start = t
		case positionEnd:
			if end != nil {
				return nil, nil, false
			}
			end = t
		default:
			return nil, nil, false
		}
	}
	return start, end, start != nil && end != nil
}

func joinAll(g *Graph, as, bs []*board.Territory) {
	for _, a := range as {
		for _, b := range bs {
			g.AddEdge(a.ID, b.ID, EdgeInterHexagon)
		}
	}
}
