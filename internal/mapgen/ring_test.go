package mapgen

import (
	"testing"

	"github.com/google/uuid"

	"github.com/talgya/hexmap/internal/board"
	"github.com/talgya/hexmap/internal/entropy"
	"github.com/talgya/hexmap/internal/territory"
)

// script replays a fixed Intn sequence. BuildRing draws one archetype index
// and one rotation per ring hexagon, then the center rotation.
type script struct {
	ints []int
	i    int
}

func (s *script) Intn(n int) int {
	v := s.ints[s.i]
	s.i++
	return v % n
}
func (s *script) Float64() float64 { return 0 }
func (s *script) Coin() bool       { return false }

func TestBuildRingShape(t *testing.T) {
	// Rotations chosen so no rotated ring-link side lands on a raw
	// center-link side; with a careless rotation the center wiring can
	// double-use a side, which the grid tolerates but this test should not
	// have to reason about.
	src := &script{ints: []int{
		0, 0, // hex1 archetype, rotation
		0, 1,
		0, 1,
		0, 0,
		0, 2,
		0, 1,
		0, // center rotation
	}}
	grid, err := BuildRing(Config{Center: "single", Filter: board.FilterAll}, src)
	if err != nil {
		t.Fatalf("BuildRing: %v", err)
	}

	if got := len(grid.Hexagons()); got != RingSize+1 {
		t.Fatalf("hexagons = %d, want %d", got, RingSize+1)
	}
	// Six ring-internal links plus six center links.
	if got := len(grid.Connections()); got != 2*RingSize {
		t.Fatalf("connections = %d, want %d", got, 2*RingSize)
	}

	// No (hexagon, side) pair appears in more than one connection.
	type slot struct {
		hex  uuid.UUID
		side board.Side
	}
	used := make(map[slot]int)
	for _, c := range grid.Connections() {
		used[slot{c.HexA, c.SideA}]++
		used[slot{c.HexB, c.SideB}]++
	}
	for s, n := range used {
		if n > 1 {
			t.Errorf("side %v of hexagon %v glued %d times", s.side, s.hex, n)
		}
	}

	// Each ring hexagon has three occupied sides, the center all six.
	center := grid.Hexagons()[RingSize]
	for i, h := range grid.Hexagons() {
		occupied := 0
		for s := board.Side0; s < board.NumSides; s++ {
			if grid.IsSideOccupied(h.ID, s) {
				occupied++
			}
		}
		want := 3
		if h == center {
			want = 6
		}
		if occupied != want {
			t.Errorf("hexagon %d has %d occupied sides, want %d", i, occupied, want)
		}
	}
}

func TestBuildRingCenterMapping(t *testing.T) {
	grid, err := BuildRing(Config{Center: "single", Filter: board.FilterAll}, entropy.NewSeeded(7))
	if err != nil {
		t.Fatalf("BuildRing: %v", err)
	}
	center := grid.Hexagons()[RingSize]
	if len(center.Territories) != 1 {
		t.Fatalf("center is not a single archetype")
	}

	// The last six connections are the center links: center side i glued
	// to ring hexagon i's opposite side.
	conns := grid.Connections()
	centerLinks := conns[len(conns)-RingSize:]
	for i, c := range centerLinks {
		if c.HexA != center.ID {
			t.Fatalf("center link %d does not originate at the center", i)
		}
		if c.SideA != board.Side(i) {
			t.Errorf("center link %d uses center side %v, want %v", i, c.SideA, board.Side(i))
		}
		if c.HexB != grid.Hexagons()[i].ID {
			t.Errorf("center link %d targets the wrong ring hexagon", i)
		}
		if want := board.Side((i + 3) % board.NumSides); c.SideB != want {
			t.Errorf("center link %d uses ring side %v, want %v", i, c.SideB, want)
		}
	}
}

func TestBuildRingDeterministicPerSeed(t *testing.T) {
	a, err := BuildRing(DefaultConfig(), entropy.NewSeeded(3))
	if err != nil {
		t.Fatal(err)
	}
	b, err := BuildRing(DefaultConfig(), entropy.NewSeeded(3))
	if err != nil {
		t.Fatal(err)
	}
	if len(a.Hexagons()) != len(b.Hexagons()) {
		t.Fatal("hexagon counts differ for the same seed")
	}
	for i := range a.Hexagons() {
		ha, hb := a.Hexagons()[i], b.Hexagons()[i]
		if len(ha.Territories) != len(hb.Territories) || ha.Rotation != hb.Rotation {
			t.Errorf("hexagon %d differs across same-seed builds", i)
		}
	}
}

func TestBuildRingFilters(t *testing.T) {
	grid, err := BuildRing(Config{Center: "random", Filter: board.FilterExpanded}, entropy.NewSeeded(1))
	if err != nil {
		t.Fatalf("BuildRing: %v", err)
	}
	// Expanded ring pool only offers five.
	for i := 0; i < RingSize; i++ {
		if got := len(grid.Hexagons()[i].Territories); got != 5 {
			t.Errorf("ring hexagon %d has %d territories, want 5 under the expanded filter", i, got)
		}
	}

	if _, err := BuildRing(Config{Center: "random", Filter: "bogus"}, entropy.NewSeeded(1)); err == nil {
		t.Error("expected error for unknown filter")
	}
	if _, err := BuildRing(Config{Center: "heptagon", Filter: board.FilterAll}, entropy.NewSeeded(1)); err == nil {
		t.Error("expected error for unknown center archetype")
	}
}

func TestRingGraphEdgesFollowConnections(t *testing.T) {
	grid, err := BuildRing(DefaultConfig(), entropy.NewSeeded(99))
	if err != nil {
		t.Fatalf("BuildRing: %v", err)
	}
	graph := territory.Extract(grid, entropy.NewSeeded(100))

	// Record which hexagon pairs are declared connected.
	type pair [2]uuid.UUID
	key := func(a, b uuid.UUID) pair {
		if b.String() < a.String() {
			return pair{b, a}
		}
		return pair{a, b}
	}
	declared := make(map[pair]bool)
	for _, c := range grid.Connections() {
		declared[key(c.HexA, c.HexB)] = true
	}

	for _, e := range graph.EdgesOfKind(territory.EdgeInterHexagon) {
		ha, ok := graph.HexagonOf(e.A)
		if !ok {
			t.Fatalf("edge endpoint %v not in graph", e.A)
		}
		hb, ok := graph.HexagonOf(e.B)
		if !ok {
			t.Fatalf("edge endpoint %v not in graph", e.B)
		}
		if ha == hb {
			t.Errorf("inter-hexagon edge inside hexagon %v", ha)
		}
		if !declared[key(ha, hb)] {
			t.Errorf("inter-hexagon edge between unconnected hexagons %v and %v", ha, hb)
		}
	}

	// Internal edges never cross hexagons.
	for _, e := range graph.EdgesOfKind(territory.EdgeInternal) {
		ha, _ := graph.HexagonOf(e.A)
		hb, _ := graph.HexagonOf(e.B)
		if ha != hb {
			t.Errorf("internal edge crosses hexagons %v and %v", ha, hb)
		}
	}
}
