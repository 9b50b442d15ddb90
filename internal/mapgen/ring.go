// Package mapgen assembles complete hexagon grids. The only layout shipped
// is the ring: six hexagons around one center, every neighbor pair glued
// along the fixed direction table.
package mapgen

import (
	"fmt"
	"log/slog"

	"github.com/talgya/hexmap/internal/board"
	"github.com/talgya/hexmap/internal/entropy"
)

// RingSize is the number of hexagons surrounding the center.
const RingSize = 6

// Config holds the parameters for one ring build.
type Config struct {
	// Center names the center archetype. Empty or "random" draws from the
	// ring pool.
	Center string
	// Filter restricts the random archetype pool for the ring hexagons.
	Filter board.ArchetypeFilter
}

// DefaultConfig returns the standard build: random center, full pool.
func DefaultConfig() Config {
	return Config{Center: "random", Filter: board.FilterAll}
}

// ringLinks drives the ring walk: hexagon i+2 connects its My direction to
// the Their direction of hexagon i+1. The closing link (last hexagon back
// to the first) and the center links are appended separately. Each entry
// pairs physically facing directions, so the assembled ring is
// topologically a cycle regardless of per-hexagon rotation.
var ringLinks = []struct {
	My, Their board.Direction
}{
	{board.Southwest, board.Northeast},
	{board.South, board.North},
	{board.Southeast, board.Northwest},
	{board.Northeast, board.Southwest},
	{board.North, board.South},
}

// BuildRing creates the ring-of-six grid with a connected center hexagon.
// Rotations are drawn uniformly per hexagon from src. Occupied-side
// connection failures are logged and tolerated: the hexagon stays in the
// grid and the run continues with a gap, matching the soft-failure contract
// of the grid.
func BuildRing(cfg Config, src entropy.Source) (*board.Grid, error) {
	pool, err := board.RingPool(cfg.Filter)
	if err != nil {
		return nil, err
	}

	grid := board.NewGrid()
	ring := make([]*board.Hexagon, 0, RingSize)

	first, arch, err := board.NewRandom(pool, src)
	if err != nil {
		return nil, err
	}
	first.Rotation = src.Intn(board.NumSides)
	if _, err := grid.AddHexagon(first, nil); err != nil {
		return nil, err
	}
	ring = append(ring, first)
	slog.Info("created ring hexagon", "position", 1, "archetype", arch, "rotation", first.Rotation)

	prev := first
	for i, link := range ringLinks {
		h, arch, err := board.NewRandom(pool, src)
		if err != nil {
			return nil, err
		}
		h.Rotation = src.Intn(board.NumSides)

		mySide := h.SideAt(link.My)
		theirSide := prev.SideAt(link.Their)
		ok, err := grid.AddHexagon(h, &board.ConnectTo{
			HexID:     prev.ID,
			MySide:    &mySide,
			TheirSide: &theirSide,
		})
		if err != nil {
			return nil, err
		}
		if !ok {
			slog.Warn("ring link dropped, side occupied",
				"position", i+2, "my_side", mySide, "their_side", theirSide)
		}
		ring = append(ring, h)
		prev = h
		slog.Info("created ring hexagon", "position", i+2, "archetype", arch, "rotation", h.Rotation)
	}

	// Close the ring. The last hexagon's southeast faces the first
	// hexagon's northwest; both inner sides are taken by center links
	// later, so this goes through the raw append.
	last := ring[RingSize-1]
	grid.Connect(last.ID, last.SideAt(board.Southeast), first.ID, first.SideAt(board.Northwest))
	slog.Info("closed the hexagon ring")

	center, centerName, err := buildCenter(cfg.Center, pool, src)
	if err != nil {
		return nil, err
	}
	center.Rotation = src.Intn(board.NumSides)
	if _, err := grid.AddHexagon(center, nil); err != nil {
		return nil, err
	}
	slog.Info("created center hexagon", "archetype", centerName, "rotation", center.Rotation)

	// Center side i faces ring hexagon i, whose opposite side (i+3) faces
	// back. This mapping is fixed; changing it breaks the topology.
	for i, rh := range ring {
		centerSide := board.Side(i)
		ringSide := board.Side((i + 3) % board.NumSides)
		grid.Connect(center.ID, centerSide, rh.ID, ringSide)
	}
	slog.Info("connected center hexagon to ring",
		"hexagons", len(grid.Hexagons()), "connections", len(grid.Connections()))

	return grid, nil
}

func buildCenter(name string, pool []board.Archetype, src entropy.Source) (*board.Hexagon, board.Archetype, error) {
	if name == "" || name == "random" {
		return board.NewRandom(pool, src)
	}
	h, err := board.New(board.Archetype(name))
	if err != nil {
		return nil, "", fmt.Errorf("center archetype: %w", err)
	}
	return h, board.Archetype(name), nil
}
