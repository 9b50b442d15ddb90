// Command hexmap generates a ring of territory-subdivided hexagons, extracts
// the territory connectivity graph, optionally selects supply centers, and
// plots the result.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/talgya/hexmap/internal/version"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	rootCmd := &cobra.Command{
		Use:     "hexmap",
		Short:   "Hexagon territory map generator",
		Version: version.String(),
		Long: `hexmap assembles a ring of hexagonal tiles subdivided into territories,
stitches the territories into one connectivity graph, and plots it.
Supply centers can be marked freely, one per hexagon, or spaced by
graph distance.`,
	}

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(archetypesCmd())
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the hexmap version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	})

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
