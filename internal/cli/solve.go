package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/render"
	"github.com/katalvlaran/gridpath/search"
)

func newSolveCmd() *cobra.Command {
	var (
		algoName string
		color    bool
	)

	cmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Search a path on a text grid",
		Long: `Read a square text grid (. empty, # barrier, S start, E end) from a file or
stdin, search a path from S to E and print the explored grid.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			if !cmd.Flags().Changed("algo") {
				algoName = cfg.Algorithm
			}
			algo, err := search.ParseAlgorithm(algoName)
			if err != nil {
				return err
			}

			path := ""
			if len(args) == 1 {
				path = args[0]
			}
			in, err := openInput(path, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer in.Close()

			g, err := readGrid(in, cfg.Width)
			if err != nil {
				return err
			}
			g.UpdateNeighbors()

			logger := runLogger(loggerFromContext(ctx))
			prog := newProgress(logger)
			res, err := search.Run(algo, g, g.Start(), g.End(),
				search.WithContext(ctx),
				search.WithLogger(logger),
			)
			if err != nil {
				return fmt.Errorf("solve: %w", err)
			}
			prog.done("search complete", "algorithm", algo, "found", res.Found)

			opts := []render.Option{render.WithGlyphs(true), render.WithCellWidth(1)}
			if color {
				opts = []render.Option{}
			}
			fmt.Fprintln(cmd.OutOrStdout(), render.Grid(g, opts...))

			w := cmd.ErrOrStderr()
			if res.Found {
				printSuccess(w, "path found with %s", algo)
				printKeyValue(w, "hops", res.Hops())
			} else {
				printWarning(w, "no path from %s to %s", g.Start().Pos(), g.End().Pos())
			}
			printKeyValue(w, "expanded", res.Expanded)
			printKeyValue(w, "steps", res.Steps)
			return nil
		},
	}

	cmd.Flags().StringVarP(&algoName, "algo", "a", search.AlgorithmAStar.String(), "search algorithm: astar, bfs, dfs")
	cmd.Flags().BoolVar(&color, "color", false, "draw colored blocks instead of glyphs")
	return cmd
}
