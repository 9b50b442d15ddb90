// Package supply selects territories for supply-center marking, either
// freely, one per hexagon, or under a minimum graph-distance constraint
// with a bounded retry budget.
package supply

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/talgya/hexmap/internal/board"
	"github.com/talgya/hexmap/internal/entropy"
	"github.com/talgya/hexmap/internal/territory"
)

// Mode names the selection policy.
type Mode string

const (
	// ModeNone selects nothing.
	ModeNone Mode = "none"
	// ModeRandom selects uniformly with no distance constraint.
	ModeRandom Mode = "random"
	// ModeDistributed selects exactly one territory per hexagon.
	ModeDistributed Mode = "distributed"
	// ModeSpaced enforces pairwise graph distance of at least 3.
	ModeSpaced Mode = "spaced"
)

// maxAttempts bounds the spaced-selection retry loop.
const maxAttempts = 5

// exclusionRadius removes everything within this graph distance of a pick.
const exclusionRadius = 2

// ErrInvalidCount is returned when the requested count cannot be satisfied
// by construction: distributed count differing from the hexagon count, or a
// count exceeding the territory population.
var ErrInvalidCount = errors.New("invalid supply count")

// ExhaustedError reports that the spaced selector ran out of attempts. It
// carries the requested count and the graph size so the caller can retry
// with different parameters.
type ExhaustedError struct {
	Requested int
	Available int
	Attempts  int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("could not place %d spaced supply centers among %d territories after %d attempts",
		e.Requested, e.Available, e.Attempts)
}

// Select picks count territory ids from the grid's derived graph under the
// given mode. ModeNone returns nil with count ignored. The returned order
// is the pick order.
func Select(grid *board.Grid, graph *territory.Graph, mode Mode, count int, src entropy.Source) ([]uuid.UUID, error) {
	switch mode {
	case ModeNone:
		return nil, nil
	case ModeRandom:
		return selectRandom(graph, count, src)
	case ModeDistributed:
		return selectDistributed(grid, count, src)
	case ModeSpaced:
		return selectSpaced(graph, count, src)
	}
	return nil, fmt.Errorf("unknown supply mode %q", mode)
}

// selectRandom draws count ids uniformly without replacement, ignoring
// distances entirely.
func selectRandom(graph *territory.Graph, count int, src entropy.Source) ([]uuid.UUID, error) {
	nodes := graph.Nodes()
	if count < 0 || count > len(nodes) {
		return nil, fmt.Errorf("%w: requested %d of %d territories", ErrInvalidCount, count, len(nodes))
	}
	pool := make([]uuid.UUID, len(nodes))
	for i, n := range nodes {
		pool[i] = n.ID
	}
	out := make([]uuid.UUID, 0, count)
	for len(out) < count {
		i := src.Intn(len(pool))
		out = append(out, pool[i])
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
	}
	return out, nil
}

// selectDistributed picks one uniformly random territory from every
// hexagon. The count must equal the hexagon count; the check runs before
// any randomness is consumed.
func selectDistributed(grid *board.Grid, count int, src entropy.Source) ([]uuid.UUID, error) {
	hexagons := grid.Hexagons()
	if count != len(hexagons) {
		return nil, fmt.Errorf("%w: distributed mode needs exactly one per hexagon, requested %d of %d hexagons",
			ErrInvalidCount, count, len(hexagons))
	}
	out := make([]uuid.UUID, 0, count)
	for _, h := range hexagons {
		t := h.Territories[src.Intn(len(h.Territories))]
		out = append(out, t.ID)
	}
	return out, nil
}

// selectSpaced picks count ids so that no two are within graph distance 2
// of each other: not equal, not adjacent, not sharing a neighbor. Each
// attempt samples from a shrinking available set, removing the two-hop
// neighborhood of every pick; an attempt that stalls short of count is
// discarded and retried up to the budget.
func selectSpaced(graph *territory.Graph, count int, src entropy.Source) ([]uuid.UUID, error) {
	nodes := graph.Nodes()
	if count < 0 || count > len(nodes) {
		return nil, fmt.Errorf("%w: requested %d of %d territories", ErrInvalidCount, count, len(nodes))
	}
	if count == 0 {
		return []uuid.UUID{}, nil
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		picked := attemptSpaced(graph, nodes, count, src)
		if len(picked) == count {
			return picked, nil
		}
	}
	return nil, &ExhaustedError{Requested: count, Available: len(nodes), Attempts: maxAttempts}
}

func attemptSpaced(graph *territory.Graph, nodes []territory.Node, count int, src entropy.Source) []uuid.UUID {
	available := make([]uuid.UUID, len(nodes))
	for i, n := range nodes {
		available[i] = n.ID
	}

	var picked []uuid.UUID
	for len(picked) < count && len(available) > 0 {
		id := available[src.Intn(len(available))]
		picked = append(picked, id)

		excluded := graph.WithinDistance(id, exclusionRadius)
		kept := available[:0]
		for _, cand := range available {
			if !excluded[cand] {
				kept = append(kept, cand)
			}
		}
		available = kept
	}
	return picked
}
