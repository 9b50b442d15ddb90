package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/talgya/hexmap/internal/board"
)

func archetypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "archetypes",
		Short: "List the available hexagon archetypes",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := []board.Archetype{
				board.ArchetypeSingle,
				board.ArchetypeTriple,
				board.ArchetypeDiamond,
				board.ArchetypeFive,
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTERRITORIES\tINTERNAL EDGES\tSET")
			for _, name := range names {
				h, err := board.New(name)
				if err != nil {
					return err
				}
				set := "expanded"
				for _, std := range board.StandardArchetypes {
					if std == name {
						set = "standard"
					}
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\n",
					name, len(h.Territories), len(h.InternalEdges), set)
			}
			return w.Flush()
		},
	}
}
