// Package board provides the hexagon and territory model: sides, compass
// directions, rotation arithmetic, archetype construction, and the grid of
// connected hexagons.
package board

import (
	"fmt"

	"github.com/google/uuid"
)

// Side labels one of the six edges of a hexagon, numbered 0–5 clockwise.
// Side numbering is fixed to the tile and independent of rotation.
type Side int

const (
	Side0 Side = iota
	Side1
	Side2
	Side3
	Side4
	Side5

	// NumSides is the number of edges on a hexagon.
	NumSides = 6
)

// Next returns the clockwise neighbor side.
func (s Side) Next() Side {
	return (s + 1) % NumSides
}

// Prev returns the counter-clockwise neighbor side.
func (s Side) Prev() Side {
	return (s + 5) % NumSides
}

// Valid reports whether s is in [0,5].
func (s Side) Valid() bool {
	return s >= 0 && s < NumSides
}

func (s Side) String() string {
	return fmt.Sprintf("side %d", int(s))
}

// Direction is a conceptual compass position on a hexagon, independent of
// the tile's physical rotation. A Direction resolves to a concrete Side
// through Hexagon.SideAt.
type Direction int

const (
	North Direction = iota
	Northeast
	Southeast
	South
	Southwest
	Northwest
)

// Opposite returns the facing direction (N↔S, NE↔SW, SE↔NW).
func (d Direction) Opposite() Direction {
	return (d + 3) % NumSides
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case Northeast:
		return "northeast"
	case Southeast:
		return "southeast"
	case South:
		return "south"
	case Southwest:
		return "southwest"
	case Northwest:
		return "northwest"
	}
	return "unknown"
}

// Territory is a sub-region of a hexagon occupying one or more of its sides.
type Territory struct {
	ID       uuid.UUID
	Touching SideSet
}

// NewTerritory mints a territory with a fresh identity touching the given
// sides.
func NewTerritory(sides ...Side) *Territory {
	return &Territory{
		ID:       uuid.New(),
		Touching: NewSideSet(sides...),
	}
}

// Touches reports whether the territory occupies side s.
func (t *Territory) Touches(s Side) bool {
	return t.Touching.Has(s)
}

// SideSet is a set of hexagon sides, backed by a 6-bit mask.
type SideSet uint8

// NewSideSet builds a set from the given sides. Duplicates collapse.
func NewSideSet(sides ...Side) SideSet {
	var set SideSet
	for _, s := range sides {
		set = set.With(s)
	}
	return set
}

// With returns the set including s.
func (ss SideSet) With(s Side) SideSet {
	return ss | 1<<uint(s)
}

// Has reports membership of s.
func (ss SideSet) Has(s Side) bool {
	return ss&(1<<uint(s)) != 0
}

// Count returns the number of sides in the set.
func (ss SideSet) Count() int {
	n := 0
	for s := Side0; s < NumSides; s++ {
		if ss.Has(s) {
			n++
		}
	}
	return n
}

// Sides returns the members in ascending order.
func (ss SideSet) Sides() []Side {
	var out []Side
	for s := Side0; s < NumSides; s++ {
		if ss.Has(s) {
			out = append(out, s)
		}
	}
	return out
}

// fullSideSet covers all six sides.
const fullSideSet SideSet = 1<<NumSides - 1

// InternalEdge records an adjacency between two territories inside the same
// hexagon. The pair is symmetric; orientation carries no meaning.
type InternalEdge struct {
	A, B *Territory
}

// Hexagon is a tile divided into territories. The territories partition the
// six sides: every side is touched by exactly one territory. Rotation shifts
// which physical side a conceptual direction resolves to.
type Hexagon struct {
	ID            uuid.UUID
	Territories   []*Territory
	InternalEdges []InternalEdge
	Rotation      int // 0–5; 0 means side 0 faces north
}

// NewHexagon assembles a hexagon at rotation 0 from the given territories
// and internal adjacencies.
func NewHexagon(territories []*Territory, edges []InternalEdge) *Hexagon {
	return &Hexagon{
		ID:            uuid.New(),
		Territories:   territories,
		InternalEdges: edges,
	}
}

// SideAt resolves a conceptual direction to the concrete side under the
// hexagon's current rotation. This is the only place direction-to-side
// translation happens; everything downstream works in concrete sides.
func (h *Hexagon) SideAt(d Direction) Side {
	return Side((int(d) + h.Rotation) % NumSides)
}

// TerritoriesTouching returns the territories occupying side s, in
// declaration order.
func (h *Hexagon) TerritoriesTouching(s Side) []*Territory {
	var out []*Territory
	for _, t := range h.Territories {
		if t.Touches(s) {
			out = append(out, t)
		}
	}
	return out
}

// Validate checks the structural invariants: the territories' side sets
// partition {0..5} exactly, and every internal edge joins two distinct
// territories of this hexagon. Archetype constructors always satisfy this;
// hand-built hexagons should be validated before use.
func (h *Hexagon) Validate() error {
	var union SideSet
	for i, t := range h.Territories {
		if t.Touching == 0 {
			return fmt.Errorf("territory %d touches no sides", i)
		}
		if overlap := union & t.Touching; overlap != 0 {
			return fmt.Errorf("territory %d re-touches %v", i, overlap.Sides())
		}
		union |= t.Touching
	}
	if union != fullSideSet {
		return fmt.Errorf("sides not fully covered: have %v", union.Sides())
	}
	owned := make(map[uuid.UUID]bool, len(h.Territories))
	for _, t := range h.Territories {
		owned[t.ID] = true
	}
	for i, e := range h.InternalEdges {
		if e.A == nil || e.B == nil {
			return fmt.Errorf("internal edge %d has a nil endpoint", i)
		}
		if e.A.ID == e.B.ID {
			return fmt.Errorf("internal edge %d is a self-pair", i)
		}
		if !owned[e.A.ID] || !owned[e.B.ID] {
			return fmt.Errorf("internal edge %d references a foreign territory", i)
		}
	}
	if h.Rotation < 0 || h.Rotation >= NumSides {
		return fmt.Errorf("rotation %d out of range", h.Rotation)
	}
	return nil
}
