package search_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// benchGrid builds an n×n grid with roughly density of cells as barriers and
// start/end in opposite corners.
func benchGrid(b *testing.B, n int, density float64) *grid.Grid {
	b.Helper()
	g, err := grid.New(grid.WithRows(n), grid.WithWidth(n*8))
	if err != nil {
		b.Fatal(err)
	}
	rnd := rand.New(rand.NewSource(1))
	g.Each(func(c *grid.Cell) {
		if rnd.Float64() < density {
			c.MakeBarrier()
		}
	})
	if _, err = g.SetStart(grid.Coord{}); err != nil {
		b.Fatal(err)
	}
	if _, err = g.SetEnd(grid.Coord{Row: n - 1, Col: n - 1}); err != nil {
		b.Fatal(err)
	}
	g.UpdateNeighbors()
	return g
}

// BenchmarkSearch runs every strategy on a 100×100 grid, empty and with 25%
// obstacles. ClearSearch between iterations keeps the layout unchanged.
func BenchmarkSearch(b *testing.B) {
	for _, density := range []float64{0, 0.25} {
		for _, algo := range search.Algorithms {
			b.Run(fmt.Sprintf("%s/density=%.2f", algo, density), func(b *testing.B) {
				g := benchGrid(b, 100, density)
				b.ReportAllocs()
				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					g.ClearSearch()
					_, _ = search.Run(algo, g, g.Start(), g.End())
				}
			})
		}
	}
}
