package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/maze"
	"github.com/katalvlaran/gridpath/render"
)

var errSeedOnEndpoint = errors.New("cli: maze seed cell is the start or end")

func newMazeCmd() *cobra.Command {
	var (
		rows      int
		seed      int64
		near, far float64
		at        string
		start     string
		end       string
	)

	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Generate a random barrier layout",
		Long: `Generate barriers on an empty square grid by a randomized traversal from a
seed cell and print the grid as text, ready to be piped into "gridpath solve".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			flags := cmd.Flags()
			if !flags.Changed("rows") {
				rows = cfg.Rows
			}
			if !flags.Changed("near") {
				near = cfg.Near
			}
			if !flags.Changed("far") {
				far = cfg.Far
			}
			if !flags.Changed("seed") {
				seed = time.Now().UnixNano()
			}

			width := cfg.Width
			if width < rows {
				width = rows
			}
			g, err := grid.New(grid.WithRows(rows), grid.WithWidth(width))
			if err != nil {
				return err
			}

			origin := grid.Coord{Row: rows / 2, Col: rows / 2}
			if at != "" {
				if origin, err = parseCoord(at); err != nil {
					return err
				}
			}
			if err := placeEndpoints(g, start, end); err != nil {
				return err
			}
			seedCell, err := g.At(origin)
			if err != nil {
				return err
			}
			if seedCell.IsStart() || seedCell.IsEnd() {
				return fmt.Errorf("%w: %d,%d", errSeedOnEndpoint, origin.Row, origin.Col)
			}
			seedCell.MakeBarrier()
			g.UpdateNeighbors()

			logger := runLogger(loggerFromContext(ctx))
			logger.Debug("maze seed", "seed", seed)
			prog := newProgress(logger)
			res, err := maze.Generate(g, seedCell,
				maze.WithSeed(seed),
				maze.WithProbabilities(near, far),
				maze.WithContext(ctx),
				maze.WithLogger(logger),
			)
			if err != nil {
				return fmt.Errorf("maze: %w", err)
			}
			prog.done("maze complete", "visited", res.Visited, "barriers", res.Barriers)

			fmt.Fprintln(cmd.OutOrStdout(), render.Grid(g, render.WithGlyphs(true), render.WithCellWidth(1)))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&rows, "rows", "n", grid.DefaultRows, "cells per side")
	flags.Int64Var(&seed, "seed", 0, "random seed (default: time based)")
	flags.Float64Var(&near, "near", maze.DefaultNear, "barrier probability next to a barrier")
	flags.Float64Var(&far, "far", maze.DefaultFar, "barrier probability elsewhere")
	flags.StringVar(&at, "at", "", "seed cell as row,col (default: center)")
	flags.StringVar(&start, "start", "", "start cell as row,col")
	flags.StringVar(&end, "end", "", "end cell as row,col")
	return cmd
}

// placeEndpoints marks the optional start and end cells.
func placeEndpoints(g *grid.Grid, start, end string) error {
	if start != "" {
		p, err := parseCoord(start)
		if err != nil {
			return err
		}
		if _, err := g.SetStart(p); err != nil {
			return err
		}
	}
	if end != "" {
		p, err := parseCoord(end)
		if err != nil {
			return err
		}
		if _, err := g.SetEnd(p); err != nil {
			return err
		}
	}
	return nil
}
