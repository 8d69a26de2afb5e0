package search

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// Algorithm selects a search strategy.
type Algorithm int

const (
	// AlgorithmAStar is best-first search on f = g + Manhattan.
	AlgorithmAStar Algorithm = iota
	// AlgorithmBFS is breadth-first search.
	AlgorithmBFS
	// AlgorithmDFS is depth-first search.
	AlgorithmDFS
)

// Algorithms lists every strategy in declaration order.
var Algorithms = []Algorithm{AlgorithmAStar, AlgorithmBFS, AlgorithmDFS}

func (a Algorithm) String() string {
	switch a {
	case AlgorithmAStar:
		return "astar"
	case AlgorithmBFS:
		return "bfs"
	case AlgorithmDFS:
		return "dfs"
	}
	return fmt.Sprintf("algorithm(%d)", int(a))
}

// ParseAlgorithm accepts "astar", "a*", "bfs" and "dfs", case-insensitively.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "astar", "a*", "a-star":
		return AlgorithmAStar, nil
	case "bfs":
		return AlgorithmBFS, nil
	case "dfs":
		return AlgorithmDFS, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Strategy is the signature shared by AStar, BFS and DFS.
type Strategy func(g *grid.Grid, start, end *grid.Cell, opts ...Option) (*Result, error)

// Strategy returns the function implementing a.
func (a Algorithm) Strategy() (Strategy, error) {
	switch a {
	case AlgorithmAStar:
		return AStar, nil
	case AlgorithmBFS:
		return BFS, nil
	case AlgorithmDFS:
		return DFS, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
}

// Run dispatches to the strategy selected by a.
func Run(a Algorithm, g *grid.Grid, start, end *grid.Cell, opts ...Option) (*Result, error) {
	fn, err := a.Strategy()
	if err != nil {
		return nil, err
	}
	return fn(g, start, end, opts...)
}
