// Archetype constructors: the fixed territory-subdivision patterns a
// hexagon can carry. Each constructor is total, takes no parameters, and
// returns a rotation-0 hexagon with freshly minted identities; callers apply
// rotation afterwards.
package board

import (
	"fmt"

	"github.com/talgya/hexmap/internal/entropy"
)

// Archetype names the closed set of subdivision patterns.
type Archetype string

const (
	ArchetypeSingle  Archetype = "single"
	ArchetypeTriple  Archetype = "triple"
	ArchetypeDiamond Archetype = "diamond"
	ArchetypeFive    Archetype = "five"
)

// ArchetypeFilter restricts which archetypes a random draw may pick.
type ArchetypeFilter string

const (
	FilterAll      ArchetypeFilter = "all"
	FilterStandard ArchetypeFilter = "standard"
	FilterExpanded ArchetypeFilter = "expanded"
)

// StandardArchetypes are the original pair of ring patterns.
var StandardArchetypes = []Archetype{ArchetypeTriple, ArchetypeDiamond}

// ExpandedArchetypes are the later additions.
var ExpandedArchetypes = []Archetype{ArchetypeFive, ArchetypeSingle}

// NewSingle creates a hexagon with one territory touching all six sides and
// no internal edges.
func NewSingle() *Hexagon {
	t := NewTerritory(Side0, Side1, Side2, Side3, Side4, Side5)
	return NewHexagon([]*Territory{t}, nil)
}

// NewTriple creates a hexagon with three two-side territories
// ({0,1},{2,3},{4,5}) fully connected internally.
func NewTriple() *Hexagon {
	t1 := NewTerritory(Side0, Side1)
	t2 := NewTerritory(Side2, Side3)
	t3 := NewTerritory(Side4, Side5)
	edges := []InternalEdge{
		{t1, t2},
		{t2, t3},
		{t1, t3},
	}
	return NewHexagon([]*Territory{t1, t2, t3}, edges)
}

// NewDiamond creates a hexagon with four territories: two two-siders ({0,1}
// and {3,4}) and two one-siders ({5} and {2}). Both two-siders connect to
// both one-siders and the one-siders connect to each other; the two-siders
// never connect directly.
func NewDiamond() *Hexagon {
	t1 := NewTerritory(Side0, Side1)
	t2 := NewTerritory(Side5)
	t3 := NewTerritory(Side2)
	t4 := NewTerritory(Side3, Side4)
	edges := []InternalEdge{
		{t1, t2},
		{t1, t3},
		{t2, t3},
		{t4, t2},
		{t4, t3},
	}
	return NewHexagon([]*Territory{t1, t2, t3, t4}, edges)
}

// NewFive creates a hexagon with five territories: one-siders on sides 0, 1,
// 2 and 5, and a two-sider on {3,4}. Every pair is adjacent except
// {T1,T4}, {T2,T4} and {T2,T5}.
func NewFive() *Hexagon {
	t1 := NewTerritory(Side0)
	t2 := NewTerritory(Side1)
	t3 := NewTerritory(Side2)
	t4 := NewTerritory(Side3, Side4)
	t5 := NewTerritory(Side5)
	edges := []InternalEdge{
		{t1, t2},
		{t1, t5},
		{t1, t3},
		{t2, t3},
		{t4, t3},
		{t4, t5},
		{t3, t5},
	}
	return NewHexagon([]*Territory{t1, t2, t3, t4, t5}, edges)
}

// New dispatches to the constructor for the named archetype.
func New(a Archetype) (*Hexagon, error) {
	switch a {
	case ArchetypeSingle:
		return NewSingle(), nil
	case ArchetypeTriple:
		return NewTriple(), nil
	case ArchetypeDiamond:
		return NewDiamond(), nil
	case ArchetypeFive:
		return NewFive(), nil
	}
	return nil, fmt.Errorf("unknown archetype %q", a)
}

// RingPool returns the archetypes a random ring draw may pick under the
// given filter. Single is excluded from every ring pool: a one-territory
// tile is reserved for explicit center placement.
func RingPool(f ArchetypeFilter) ([]Archetype, error) {
	switch f {
	case FilterStandard:
		return []Archetype{ArchetypeTriple, ArchetypeDiamond}, nil
	case FilterExpanded:
		return []Archetype{ArchetypeFive}, nil
	case FilterAll, "":
		return []Archetype{ArchetypeTriple, ArchetypeDiamond, ArchetypeFive}, nil
	}
	return nil, fmt.Errorf("unknown archetype filter %q", f)
}

// NewRandom picks uniformly from the pool and delegates to the matching
// constructor. It reports the chosen archetype alongside the hexagon.
func NewRandom(pool []Archetype, src entropy.Source) (*Hexagon, Archetype, error) {
	if len(pool) == 0 {
		return nil, "", fmt.Errorf("empty archetype pool")
	}
	choice := pool[src.Intn(len(pool))]
	h, err := New(choice)
	return h, choice, err
}

// ArchetypeOf reports the archetype a hexagon's territory count corresponds
// to. Used only for progress logging; the grid itself never stores the name.
func ArchetypeOf(h *Hexagon) Archetype {
	switch len(h.Territories) {
	case 1:
		return ArchetypeSingle
	case 3:
		return ArchetypeTriple
	case 4:
		return ArchetypeDiamond
	case 5:
		return ArchetypeFive
	}
	return Archetype(fmt.Sprintf("custom-%d", len(h.Territories)))
}
