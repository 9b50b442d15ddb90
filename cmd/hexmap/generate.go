package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/talgya/hexmap/internal/board"
	"github.com/talgya/hexmap/internal/config"
	"github.com/talgya/hexmap/internal/entropy"
	"github.com/talgya/hexmap/internal/mapgen"
	"github.com/talgya/hexmap/internal/render"
	"github.com/talgya/hexmap/internal/supply"
	"github.com/talgya/hexmap/internal/territory"
)

func generateCmd() *cobra.Command {
	var presetPath string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a hexagon ring and plot its territory graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			preset := config.Default()
			if presetPath != "" {
				var err error
				preset, err = config.Load(presetPath)
				if err != nil {
					return err
				}
			}
			applyFlagOverrides(cmd, &preset)
			dotPath, _ := cmd.Flags().GetString("dot")
			return runGenerate(preset, dotPath)
		},
	}

	cmd.Flags().StringVar(&presetPath, "preset", "", "YAML preset file; flags override its values")
	cmd.Flags().StringP("center", "c", "random", "center hexagon archetype (single|diamond|triple|five|random)")
	cmd.Flags().String("ring", "all", "ring archetype filter (all|standard|expanded)")
	cmd.Flags().StringP("supply", "s", "none", "supply mode (none|random|distributed|spaced)")
	cmd.Flags().Int("supply-count", 7, "supply centers to select (ignored for none; must equal hexagon count for distributed)")
	cmd.Flags().Int64("seed", 0, "random seed (0 = time-derived)")
	cmd.Flags().Bool("true-random", false, "draw randomness from random.org (RANDOM_ORG_API_KEY)")
	cmd.Flags().StringP("output", "o", "", "plot path (default outputs/territory_graph.png)")
	cmd.Flags().String("dot", "", "also write the graph in Graphviz DOT format to this path")
	cmd.Flags().Bool("color", false, "tint territories by owning hexagon")
	cmd.Flags().Bool("show-ids", false, "label territories with short ids")

	return cmd
}

func applyFlagOverrides(cmd *cobra.Command, p *config.Preset) {
	f := cmd.Flags()
	if f.Changed("center") {
		p.Center, _ = f.GetString("center")
	}
	if f.Changed("ring") {
		p.Ring, _ = f.GetString("ring")
	}
	if f.Changed("supply") {
		p.Supply, _ = f.GetString("supply")
	}
	if f.Changed("supply-count") {
		p.SupplyCount, _ = f.GetInt("supply-count")
	}
	if f.Changed("seed") {
		p.Seed, _ = f.GetInt64("seed")
	}
	if f.Changed("output") {
		p.Output, _ = f.GetString("output")
	}
	if f.Changed("color") {
		p.Colors, _ = f.GetBool("color")
	}
	if f.Changed("show-ids") {
		p.ShowIDs, _ = f.GetBool("show-ids")
	}
	if trueRandom, _ := f.GetBool("true-random"); trueRandom {
		p.Seed = -1 // sentinel: buildSource switches to true randomness
	}
}

func runGenerate(p config.Preset, dotPath string) error {
	src, seed := buildSource(p.Seed)
	if seed != 0 {
		slog.Info("generation seed", "seed", seed)
	}

	grid, err := mapgen.BuildRing(mapgen.Config{
		Center: p.Center,
		Filter: board.ArchetypeFilter(p.Ring),
	}, src)
	if err != nil {
		return err
	}

	slog.Info("extracting territory graph")
	graph := territory.Extract(grid, src)

	count := p.SupplyCount
	if supply.Mode(p.Supply) == supply.ModeDistributed {
		count = len(grid.Hexagons())
	}
	centers, err := supply.Select(grid, graph, supply.Mode(p.Supply), count, src)
	if err != nil {
		return fmt.Errorf("supply selection: %w", err)
	}

	output := p.Output
	if output == "" {
		output = filepath.Join("outputs", "territory_graph.png")
	}
	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	opts := render.Options{
		UseColors: p.Colors,
		ShowIDs:   p.ShowIDs,
		Supply:    centers,
	}
	if err := render.PNG(graph, output, opts); err != nil {
		return err
	}
	if dotPath != "" {
		f, err := os.Create(dotPath)
		if err != nil {
			return fmt.Errorf("create dot file: %w", err)
		}
		defer f.Close()
		if err := render.DOT(graph, f, opts); err != nil {
			return err
		}
	}

	printSummary(grid, graph, centers, output)
	return nil
}

// buildSource resolves the seed policy: -1 means true randomness, 0 means
// time-derived, anything else is used verbatim. Returns the effective seed
// for logging (0 when not seed-based).
func buildSource(seed int64) (entropy.Source, int64) {
	if seed == -1 {
		if t := entropy.NewTrue(os.Getenv("RANDOM_ORG_API_KEY")); t != nil {
			slog.Info("using random.org entropy")
			return t, 0
		}
		slog.Warn("RANDOM_ORG_API_KEY not set, falling back to seeded randomness")
		seed = 0
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return entropy.NewSeeded(seed), seed
}

func printSummary(grid *board.Grid, graph *territory.Graph, centers []uuid.UUID, output string) {
	bold := color.New(color.Bold)
	bold.Printf("\nGenerated %d hexagons with %d connections\n",
		len(grid.Hexagons()), len(grid.Connections()))
	fmt.Printf("Territories: %d\n", graph.NodeCount())
	fmt.Printf("Internal edges: %d\n", len(graph.EdgesOfKind(territory.EdgeInternal)))
	fmt.Printf("Inter-hexagon edges: %d\n", len(graph.EdgesOfKind(territory.EdgeInterHexagon)))
	if len(centers) > 0 {
		color.Green("Supply centers: %d", len(centers))
	}
	fmt.Printf("Plot saved to %s\n", output)
}
