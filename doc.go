// Package gridpath is a path-search engine for square grids: mark some cells
// as barriers, pick a start and an end, and find out whether and how they
// connect.
//
// What is in the box?
//
//	• Grid model: N×N cells with one state each, cached 4-way adjacency
//	• Search: A* (Manhattan), breadth-first and depth-first search
//	• Maze: biased randomized traversal that scatters barriers from a seed
//	• Rendering: state → color lookup and terminal drawing
//	• CLI: solve text grids, generate mazes, watch runs in a terminal UI
//
// Every search and maze pass reports progress through one step callback and
// honours a cancellation signal polled at the same cadence, so the engine can
// be animated or interrupted without knowing who is watching.
//
// Packages:
//
//	grid/         — Cell, State, Grid, adjacency, pixel mapping, text form
//	search/       — AStar, BFS, DFS, Run, Manhattan
//	maze/         — Generate with seeded, reproducible layouts
//	render/       — palette and snapshot rendering
//	internal/cli/ — cobra commands and the bubbletea editor
//	cmd/gridpath/ — the binary
//
// Quick text example (S start, E end, # barrier):
//
//	S....
//	.....
//	####.
//	.....
//	....E
//
// has a shortest path of 8 moves through the gap at row 2, column 4.
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
