package territory

import (
	"testing"

	"github.com/google/uuid"
)

func TestParallelEdgesAreKept(t *testing.T) {
	g := NewGraph()
	hex := uuid.New()
	a, b := uuid.New(), uuid.New()
	g.AddNode(a, hex)
	g.AddNode(b, hex)

	g.AddEdge(a, b, EdgeInternal)
	g.AddEdge(a, b, EdgeInterHexagon)
	g.AddEdge(b, a, EdgeInterHexagon)

	if got := len(g.Edges()); got != 3 {
		t.Errorf("edges = %d, want 3 (no deduplication)", got)
	}
	if got := len(g.EdgesOfKind(EdgeInternal)); got != 1 {
		t.Errorf("internal edges = %d, want 1", got)
	}
	if got := len(g.EdgesOfKind(EdgeInterHexagon)); got != 2 {
		t.Errorf("inter-hexagon edges = %d, want 2", got)
	}
}

func TestAddNodeIdempotent(t *testing.T) {
	g := NewGraph()
	hex := uuid.New()
	id := uuid.New()
	g.AddNode(id, hex)
	g.AddNode(id, hex)
	if g.NodeCount() != 1 {
		t.Errorf("nodes = %d, want 1", g.NodeCount())
	}
	owner, ok := g.HexagonOf(id)
	if !ok || owner != hex {
		t.Errorf("HexagonOf = (%v, %v), want (%v, true)", owner, ok, hex)
	}
}

// path builds a line graph a-b-c-... and returns the node ids in order.
func path(t *testing.T, g *Graph, n int) []uuid.UUID {
	t.Helper()
	hex := uuid.New()
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
		g.AddNode(ids[i], hex)
		if i > 0 {
			g.AddEdge(ids[i-1], ids[i], EdgeInternal)
		}
	}
	return ids
}

func TestDistance(t *testing.T) {
	g := NewGraph()
	ids := path(t, g, 5)

	if d := g.Distance(ids[0], ids[0]); d != 0 {
		t.Errorf("Distance(a,a) = %d, want 0", d)
	}
	if d := g.Distance(ids[0], ids[4]); d != 4 {
		t.Errorf("Distance over path = %d, want 4", d)
	}

	lonely := uuid.New()
	g.AddNode(lonely, uuid.New())
	if d := g.Distance(ids[0], lonely); d != -1 {
		t.Errorf("Distance to unreachable node = %d, want -1", d)
	}
}

func TestWithinDistance(t *testing.T) {
	g := NewGraph()
	ids := path(t, g, 6)

	got := g.WithinDistance(ids[2], 2)
	want := map[uuid.UUID]bool{ids[0]: true, ids[1]: true, ids[2]: true, ids[3]: true, ids[4]: true}
	if len(got) != len(want) {
		t.Fatalf("reached %d nodes, want %d", len(got), len(want))
	}
	for id := range want {
		if !got[id] {
			t.Errorf("node %v missing from the two-hop neighborhood", id)
		}
	}
	if got[ids[5]] {
		t.Error("node at distance 3 must not be included")
	}
}
