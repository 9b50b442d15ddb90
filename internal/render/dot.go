package render

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/talgya/hexmap/internal/territory"
)

// DOT writes the graph in Graphviz format, for runs that want to feed an
// external layout tool instead of the built-in plot. Edge kind maps to
// style: internal solid, inter-hexagon dashed red. Supply centers get a
// bold outline.
func DOT(g *territory.Graph, w io.Writer, opts Options) error {
	supply := make(map[uuid.UUID]bool, len(opts.Supply))
	for _, id := range opts.Supply {
		supply[id] = true
	}

	if _, err := fmt.Fprintln(w, "graph territories {"); err != nil {
		return err
	}
	fmt.Fprintln(w, "\tnode [shape=circle style=filled fillcolor=lightgrey];")

	for _, node := range g.Nodes() {
		attrs := fmt.Sprintf("hexagon=%q", node.HexID)
		if supply[node.ID] {
			attrs += " penwidth=3"
		}
		if opts.ShowIDs {
			attrs += fmt.Sprintf(" label=%q", shortID(node.ID))
		} else {
			attrs += ` label=""`
		}
		if _, err := fmt.Fprintf(w, "\t%q [%s];\n", node.ID, attrs); err != nil {
			return err
		}
	}

	for _, e := range g.Edges() {
		style := "solid"
		color := "black"
		if e.Kind == territory.EdgeInterHexagon {
			style = "dashed"
			color = "red"
		}
		if _, err := fmt.Fprintf(w, "\t%q -- %q [style=%s color=%s];\n", e.A, e.B, style, color); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
