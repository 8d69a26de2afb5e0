package search_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// mustGrid parses lines and computes adjacency.
func mustGrid(t testing.TB, lines ...string) *grid.Grid {
	t.Helper()
	g, err := grid.FromStrings(lines)
	require.NoError(t, err)
	g.UpdateNeighbors()
	return g
}

// emptyGrid builds an n×n grid with start top-left and end bottom-right.
func emptyGrid(t testing.TB, n int) *grid.Grid {
	t.Helper()
	lines := make([]string, n)
	for r := range lines {
		lines[r] = strings.Repeat(".", n)
	}
	lines[0] = "S" + lines[0][1:]
	lines[n-1] = lines[n-1][:n-1] + "E"
	return mustGrid(t, lines...)
}

// assertValidPath checks that path runs from start to end through adjacent,
// non-barrier cells.
func assertValidPath(t *testing.T, g *grid.Grid, path []grid.Coord) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, g.Start().Pos(), path[0])
	assert.Equal(t, g.End().Pos(), path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.Equal(t, 1, search.Manhattan(path[i-1], path[i]), "step %d: %v→%v", i, path[i-1], path[i])
		c, err := g.At(path[i])
		require.NoError(t, err)
		assert.False(t, c.IsBarrier(), "path crosses barrier at %v", path[i])
	}
}

//----------------------------------------------------------------------------//
// Preconditions
//----------------------------------------------------------------------------//

func TestSearch_Preconditions(t *testing.T) {
	for _, algo := range search.Algorithms {
		t.Run(algo.String(), func(t *testing.T) {
			g := mustGrid(t, "S.", ".E")
			start, end := g.Start(), g.End()

			_, err := search.Run(algo, nil, start, end)
			assert.ErrorIs(t, err, search.ErrGridNil)

			_, err = search.Run(algo, g, nil, end)
			assert.ErrorIs(t, err, search.ErrNoStart)

			_, err = search.Run(algo, g, start, nil)
			assert.ErrorIs(t, err, search.ErrNoEnd)

			other := mustGrid(t, "S.", ".E")
			_, err = search.Run(algo, g, other.Start(), end)
			assert.ErrorIs(t, err, search.ErrForeignCell)
			_, err = search.Run(algo, g, start, other.End())
			assert.ErrorIs(t, err, search.ErrForeignCell)

			wall, _ := g.Cell(0, 1)
			wall.MakeBarrier()
			res, err := search.Run(algo, g, start, end)
			assert.Nil(t, res)
			assert.ErrorIs(t, err, search.ErrStaleAdjacency)

			g.Reset()
			_, err = search.Run(algo, g, start, end)
			assert.ErrorIs(t, err, search.ErrForeignCell, "cells from before Reset")
		})
	}
}

func TestRun_UnknownAlgorithm(t *testing.T) {
	g := mustGrid(t, "SE", "..")
	_, err := search.Run(search.Algorithm(9), g, g.Start(), g.End())
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]search.Algorithm{
		"astar": search.AlgorithmAStar,
		"A*":    search.AlgorithmAStar,
		" BFS ": search.AlgorithmBFS,
		"dfs":   search.AlgorithmDFS,
	}
	for in, want := range cases {
		got, err := search.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := search.ParseAlgorithm("dijkstra")
	assert.ErrorIs(t, err, search.ErrUnknownAlgorithm)

	for _, a := range search.Algorithms {
		back, err := search.ParseAlgorithm(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, back)
	}
}

//----------------------------------------------------------------------------//
// Exact traces on a 3×3 grid
//----------------------------------------------------------------------------//

func TestAStar_Trace3x3(t *testing.T) {
	g := emptyGrid(t, 3)
	res, err := search.AStar(g, g.Start(), g.End())
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 2, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 2}, {Row: 2, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}, res.Order)
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}, res.Path)
	assert.Equal(t, 4, res.Hops())
	assert.Equal(t, 9, res.Expanded)
	assert.Equal(t, 8+3, res.Steps, "one step per non-goal expansion plus one per path cell")
	assert.Equal(t, "Sxx\n*xx\n**E", g.String())
}

func TestBFS_Trace3x3(t *testing.T) {
	g := emptyGrid(t, 3)
	res, err := search.BFS(g, g.Start(), g.End())
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: 1}, {Row: 2, Col: 0}, {Row: 1, Col: 1}, {Row: 0, Col: 2}, {Row: 2, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}, res.Order)
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}, res.Path)
	assert.Equal(t, "Sxx\n*xx\n**E", g.String())
}

func TestDFS_Trace3x3(t *testing.T) {
	g := emptyGrid(t, 3)
	res, err := search.DFS(g, g.Start(), g.End())
	require.NoError(t, err)

	assert.True(t, res.Found)
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}, res.Order)
	assert.Equal(t, []grid.Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 2}}, res.Path)
	assert.Equal(t, 4+3, res.Steps)
	assert.Equal(t, "S**\noo*\n..E", g.String())
}

// TestAStar_StaleKeyTrace: (2,3) is queued with g=7 and later reached with
// g=5; its frontier entry keeps the old key, so (2,1) pops before it.
func TestAStar_StaleKeyTrace(t *testing.T) {
	g := mustGrid(t,
		"....#.",
		".....#",
		"#.....",
		"##..#.",
		".#.#S.",
		"E#....",
	)
	res, err := search.AStar(g, g.Start(), g.End())
	require.NoError(t, err)

	assert.False(t, res.Found, "end is walled off")
	assert.Equal(t, []grid.Coord{
		{Row: 4, Col: 4}, {Row: 5, Col: 4}, {Row: 5, Col: 3}, {Row: 5, Col: 2}, {Row: 4, Col: 5}, {Row: 5, Col: 5}, {Row: 4, Col: 2}, {Row: 3, Col: 5},
		{Row: 3, Col: 2}, {Row: 2, Col: 5}, {Row: 2, Col: 2}, {Row: 3, Col: 3}, {Row: 2, Col: 4}, {Row: 2, Col: 1}, {Row: 1, Col: 2}, {Row: 2, Col: 3},
		{Row: 1, Col: 4}, {Row: 1, Col: 1}, {Row: 1, Col: 0}, {Row: 0, Col: 2}, {Row: 1, Col: 3}, {Row: 0, Col: 1}, {Row: 0, Col: 0}, {Row: 0, Col: 3},
	}, res.Order)
	assert.Equal(t, 24, res.Expanded)
}

//----------------------------------------------------------------------------//
// Properties
//----------------------------------------------------------------------------//

// TestShortest_EmptyGrid: without obstacles AStar and BFS return a path of
// exactly Manhattan(start, end) moves.
func TestShortest_EmptyGrid(t *testing.T) {
	placements := [][2]grid.Coord{
		{{Row: 0, Col: 0}, {Row: 4, Col: 4}},
		{{Row: 4, Col: 0}, {Row: 0, Col: 3}},
		{{Row: 2, Col: 2}, {Row: 2, Col: 3}},
		{{Row: 3, Col: 1}, {Row: 0, Col: 0}},
	}
	for _, algo := range []search.Algorithm{search.AlgorithmAStar, search.AlgorithmBFS} {
		for _, pl := range placements {
			t.Run(fmt.Sprintf("%s/%v-%v", algo, pl[0], pl[1]), func(t *testing.T) {
				g, err := grid.New(grid.WithRows(5), grid.WithWidth(5))
				require.NoError(t, err)
				start, err := g.SetStart(pl[0])
				require.NoError(t, err)
				end, err := g.SetEnd(pl[1])
				require.NoError(t, err)
				g.UpdateNeighbors()

				res, err := search.Run(algo, g, start, end)
				require.NoError(t, err)
				require.True(t, res.Found)
				assert.Equal(t, search.Manhattan(pl[0], pl[1]), res.Hops())
				assertValidPath(t, g, res.Path)
				assert.Equal(t, res.Hops()-1, g.Count(grid.Path))
			})
		}
	}
}

// TestWallWithGap is the 5×5 example: a wall across row 2 open only at
// column 4 forces every strategy through (2,4).
func TestWallWithGap(t *testing.T) {
	for _, algo := range search.Algorithms {
		t.Run(algo.String(), func(t *testing.T) {
			g := mustGrid(t,
				"S....",
				".....",
				"####.",
				".....",
				"....E",
			)
			res, err := search.Run(algo, g, g.Start(), g.End())
			require.NoError(t, err)
			require.True(t, res.Found)
			assert.Contains(t, res.Path, grid.Coord{Row: 2, Col: 4})
			assertValidPath(t, g, res.Path)
			if algo != search.AlgorithmDFS {
				assert.Equal(t, 8, res.Hops())
			} else {
				assert.GreaterOrEqual(t, res.Hops(), 8)
			}

			gap, _ := g.Cell(2, 4)
			assert.True(t, gap.IsPath())
			assert.True(t, g.Start().IsStart())
			assert.True(t, g.End().IsEnd())
		})
	}
}

func TestNoPath(t *testing.T) {
	for _, algo := range search.Algorithms {
		t.Run(algo.String(), func(t *testing.T) {
			g := mustGrid(t,
				"S..",
				"###",
				"..E",
			)
			res, err := search.Run(algo, g, g.Start(), g.End())
			require.NoError(t, err)
			assert.False(t, res.Found)
			assert.Nil(t, res.Path)
			assert.Equal(t, -1, res.Hops())
			assert.Equal(t, 3, res.Expanded, "only the start component is explored")
			assert.Equal(t, 0, g.Count(grid.Path))
			assert.Equal(t, "Sxx\n###\n..E", g.String())
		})
	}
}

func TestStartEqualsEnd(t *testing.T) {
	for _, algo := range search.Algorithms {
		t.Run(algo.String(), func(t *testing.T) {
			g := mustGrid(t, "...", ".S.", "...")
			steps := 0
			res, err := search.Run(algo, g, g.Start(), g.Start(), search.WithOnStep(func() { steps++ }))
			require.NoError(t, err)
			assert.True(t, res.Found)
			assert.Equal(t, []grid.Coord{{Row: 1, Col: 1}}, res.Path)
			assert.Equal(t, 0, res.Hops())
			assert.Equal(t, 1, res.Expanded)
			assert.Equal(t, 0, steps)
			assert.Equal(t, "...\n.S.\n...", g.String())
		})
	}
}

// TestRandomGrids compares the strategies on seeded random obstacle layouts:
// AStar and BFS agree on the minimal hop count, DFS finds a path exactly
// when they do and never a shorter one.
func TestRandomGrids(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	const n = 12
	for trial := 0; trial < 60; trial++ {
		lines := make([]string, n)
		for r := 0; r < n; r++ {
			row := make([]byte, n)
			for c := range row {
				row[c] = '.'
				if rnd.Float64() < 0.3 {
					row[c] = '#'
				}
			}
			lines[r] = string(row)
		}
		sr, sc := rnd.Intn(n), rnd.Intn(n)
		er, ec := rnd.Intn(n), rnd.Intn(n)
		for er == sr && ec == sc {
			er, ec = rnd.Intn(n), rnd.Intn(n)
		}
		lines[sr] = lines[sr][:sc] + "S" + lines[sr][sc+1:]
		lines[er] = lines[er][:ec] + "E" + lines[er][ec+1:]

		results := make(map[search.Algorithm]*search.Result, 3)
		for _, algo := range search.Algorithms {
			g := mustGrid(t, lines...)
			res, err := search.Run(algo, g, g.Start(), g.End())
			require.NoError(t, err)
			if res.Found {
				assertValidPath(t, g, res.Path)
			}
			results[algo] = res
		}

		a, b, d := results[search.AlgorithmAStar], results[search.AlgorithmBFS], results[search.AlgorithmDFS]
		layout := strings.Join(lines, "\n")
		require.Equal(t, b.Found, a.Found, "trial %d\n%s", trial, layout)
		require.Equal(t, b.Found, d.Found, "trial %d\n%s", trial, layout)
		if b.Found {
			assert.Equal(t, b.Hops(), a.Hops(), "trial %d\n%s", trial, layout)
			assert.GreaterOrEqual(t, d.Hops(), b.Hops(), "trial %d\n%s", trial, layout)
		}
	}
}

// TestDeterminism_AfterReset re-marks the same layout after Reset and
// expects an identical trace.
func TestDeterminism_AfterReset(t *testing.T) {
	layout := func(g *grid.Grid) (*grid.Cell, *grid.Cell) {
		for _, p := range []grid.Coord{{Row: 1, Col: 1}, {Row: 1, Col: 2}, {Row: 1, Col: 3}, {Row: 3, Col: 0}, {Row: 3, Col: 1}, {Row: 3, Col: 3}, {Row: 3, Col: 4}} {
			c, _ := g.At(p)
			c.MakeBarrier()
		}
		s, _ := g.SetStart(grid.Coord{Row: 0, Col: 4})
		e, _ := g.SetEnd(grid.Coord{Row: 4, Col: 0})
		g.UpdateNeighbors()
		return s, e
	}

	for _, algo := range search.Algorithms {
		t.Run(algo.String(), func(t *testing.T) {
			g, err := grid.New(grid.WithRows(5), grid.WithWidth(100))
			require.NoError(t, err)

			s, e := layout(g)
			first, err := search.Run(algo, g, s, e)
			require.NoError(t, err)
			firstView := g.String()

			g.Reset()
			s, e = layout(g)
			second, err := search.Run(algo, g, s, e)
			require.NoError(t, err)

			assert.Equal(t, first.Order, second.Order)
			assert.Equal(t, first.Path, second.Path)
			assert.Equal(t, first.Steps, second.Steps)
			assert.Equal(t, firstView, g.String())
		})
	}
}

//----------------------------------------------------------------------------//
// Step / cancel port
//----------------------------------------------------------------------------//

// TestStepCallback_SeesProgress checks that OnStep runs synchronously with
// the grid already reflecting the popped cell's neighbors.
func TestStepCallback_SeesProgress(t *testing.T) {
	g := emptyGrid(t, 4)
	var opened []int
	res, err := search.BFS(g, g.Start(), g.End(), search.WithOnStep(func() {
		opened = append(opened, g.Count(grid.Open)+g.Count(grid.Closed)+g.Count(grid.Path))
	}))
	require.NoError(t, err)
	require.Len(t, opened, res.Steps)
	for i := 1; i < len(opened); i++ {
		assert.GreaterOrEqual(t, opened[i], opened[i-1])
	}
	assert.Positive(t, opened[0])
}

func TestCancel_AfterNSteps(t *testing.T) {
	const n = 3
	for _, algo := range search.Algorithms {
		t.Run(algo.String(), func(t *testing.T) {
			g := emptyGrid(t, 10)
			steps := 0
			res, err := search.Run(algo, g, g.Start(), g.End(),
				search.WithOnStep(func() { steps++ }),
				search.WithCancel(func() bool { return steps >= n }),
			)
			require.ErrorIs(t, err, search.ErrCancelled)
			require.NotNil(t, res)
			assert.False(t, res.Found)
			assert.Nil(t, res.Path)
			assert.Equal(t, n, res.Expanded, "no expansion after the request")
			assert.Equal(t, n, res.Steps)

			assert.Equal(t, 1, g.Count(grid.Start))
			assert.Equal(t, 1, g.Count(grid.End))
			assert.Equal(t, 0, g.Count(grid.Path))
			total := 0
			for _, s := range grid.States {
				total += g.Count(s)
			}
			assert.Equal(t, g.Len(), total)
		})
	}
}

func TestCancel_Context(t *testing.T) {
	g := emptyGrid(t, 6)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := search.AStar(g, g.Start(), g.End(), search.WithContext(ctx))
	assert.True(t, errors.Is(err, search.ErrCancelled))
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, res.Expanded)
	assert.Equal(t, 0, g.Count(grid.Open))
}

// TestCancel_DuringReconstruction stops while the path is being marked:
// the 3×3 BFS trace takes 8 expansion steps, then one Path mark.
func TestCancel_DuringReconstruction(t *testing.T) {
	g := emptyGrid(t, 3)
	steps := 0
	res, err := search.BFS(g, g.Start(), g.End(),
		search.WithOnStep(func() { steps++ }),
		search.WithCancel(func() bool { return steps >= 9 }),
	)
	require.ErrorIs(t, err, search.ErrCancelled)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
	assert.Equal(t, 9, res.Expanded)
	assert.Equal(t, 9, res.Steps)
	assert.Equal(t, 1, g.Count(grid.Path))
}

func TestManhattan(t *testing.T) {
	cases := []struct {
		a, b grid.Coord
		want int
	}{
		{grid.Coord{}, grid.Coord{}, 0},
		{grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 3, Col: 4}, 7},
		{grid.Coord{Row: 5, Col: 1}, grid.Coord{Row: 2, Col: 6}, 8},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, search.Manhattan(tc.a, tc.b))
		assert.Equal(t, tc.want, search.Manhattan(tc.b, tc.a), "symmetric")
	}
}

func TestResult_Hops(t *testing.T) {
	assert.Equal(t, -1, (&search.Result{}).Hops())
	assert.Equal(t, 2, (&search.Result{Found: true, Path: make([]grid.Coord, 3)}).Hops())
}
