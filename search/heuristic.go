package search

import "github.com/katalvlaran/gridpath/grid"

// Manhattan returns |a.Row−b.Row| + |a.Col−b.Col|.
//
// With four-directional unit-cost moves it never overestimates the remaining
// distance and satisfies h(a) ≤ 1 + h(b) for neighbors a, b, so AStar returns
// a shortest path.
func Manhattan(a, b grid.Coord) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
