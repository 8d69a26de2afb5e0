// Package search finds a path between two cells of a grid.Grid with one of
// three interchangeable strategies sharing one contract.
//
// What
//
//   - AStar: best-first search on f = g + Manhattan, ties broken by insertion
//     order. Returns a shortest path.
//   - BFS:   level-order search, visited at enqueue. Returns a shortest path.
//   - DFS:   stack-based search, visited at push. Returns some path.
//   - Run dispatches by Algorithm; ParseAlgorithm reads "astar", "bfs", "dfs".
//
// Every strategy mutates cell states as it runs so that a renderer can show
// progress: discovered cells become Open, expanded cells Closed, and on
// success the intermediate cells of the path become Path. Start and end keep
// their tags throughout.
//
// Step and cancel
//
//	WithOnStep registers a callback invoked once per expanded cell and once per
//	cell marked Path. It is the only point at which a search yields. WithContext
//	and WithCancel are polled at the same cadence; a request takes effect at the
//	next boundary and the call returns ErrCancelled with Found == false.
//
// Determinism
//
//	Expansion order depends only on the queueing discipline and the fixed
//	neighbor order down, up, right, left. Rerunning on an identical grid
//	reproduces the same trace and, for AStar and BFS, the same path.
//
// Preconditions
//
//	The grid must be non-nil, start and end must be cells of it, and adjacency
//	must be current (grid.Grid.UpdateNeighbors after the last barrier edit).
//	Violations return ErrGridNil, ErrNoStart, ErrNoEnd, ErrForeignCell or
//	ErrStaleAdjacency before any cell is touched.
//
// A Grid is not safe for concurrent searches; give each goroutine its own.
package search
