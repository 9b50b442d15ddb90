package board

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrMissingSide is returned when a connection target is given without both
// side arguments. This is a usage error, distinct from the soft occupied
// failure.
var ErrMissingSide = errors.New("must specify both sides for connection")

// Connection glues a side of one hexagon to a side of another. A given
// (hexagon, side) pair appears in at most one connection, in either
// position.
type Connection struct {
	HexA  uuid.UUID
	SideA Side
	HexB  uuid.UUID
	SideB Side
}

// ConnectTo names the target of an AddHexagon connection attempt. MySide
// and TheirSide are optional in the API shape; leaving either nil is an
// ErrMissingSide usage error once a target is named.
type ConnectTo struct {
	HexID     uuid.UUID
	MySide    *Side
	TheirSide *Side
}

// Grid owns the set of hexagons and their side-to-side connections.
// Hexagons keep insertion order; identity is by id.
type Grid struct {
	hexagons    []*Hexagon
	connections []Connection
	byID        map[uuid.UUID]*Hexagon
}

// NewGrid creates an empty grid.
func NewGrid() *Grid {
	return &Grid{byID: make(map[uuid.UUID]*Hexagon)}
}

// Hexagons returns the hexagons in insertion order. The slice is shared;
// callers must not mutate it.
func (g *Grid) Hexagons() []*Hexagon {
	return g.hexagons
}

// Connections returns the recorded connections in append order.
func (g *Grid) Connections() []Connection {
	return g.connections
}

// HexagonByID returns the hexagon with the given id, or nil.
func (g *Grid) HexagonByID(id uuid.UUID) *Hexagon {
	return g.byID[id]
}

// IsSideOccupied reports whether the given side of a hexagon already takes
// part in any connection, in either position. Linear in the number of
// connections, which is fine at the grid's scale.
func (g *Grid) IsSideOccupied(id uuid.UUID, s Side) bool {
	for _, c := range g.connections {
		if (c.HexA == id && c.SideA == s) || (c.HexB == id && c.SideB == s) {
			return true
		}
	}
	return false
}

// AddHexagon appends a hexagon to the grid, optionally connecting one of its
// sides to an existing hexagon. The hexagon is appended unconditionally,
// even when the connection is refused. Returns false without error when
// either side is already occupied: the link is dropped and the caller
// decides whether that gap is fatal.
func (g *Grid) AddHexagon(h *Hexagon, connect *ConnectTo) (bool, error) {
	g.hexagons = append(g.hexagons, h)
	g.byID[h.ID] = h

	if connect == nil {
		return true, nil
	}
	if connect.MySide == nil || connect.TheirSide == nil {
		return false, ErrMissingSide
	}

	if g.IsSideOccupied(h.ID, *connect.MySide) {
		return false, nil
	}
	if g.IsSideOccupied(connect.HexID, *connect.TheirSide) {
		return false, nil
	}

	g.connections = append(g.connections, Connection{
		HexA:  h.ID,
		SideA: *connect.MySide,
		HexB:  connect.HexID,
		SideB: *connect.TheirSide,
	})
	return true, nil
}

// Connect appends a connection directly, bypassing occupancy checks. Used
// for closing cycles; the caller owns the one-connection-per-side invariant
// on this path.
func (g *Grid) Connect(a uuid.UUID, sideA Side, b uuid.UUID, sideB Side) {
	g.connections = append(g.connections, Connection{HexA: a, SideA: sideA, HexB: b, SideB: sideB})
}

// String returns a one-line summary of the grid.
func (g *Grid) String() string {
	return fmt.Sprintf("Grid(hexagons=%d, connections=%d)", len(g.hexagons), len(g.connections))
}
