// Package grid models a square lattice of cells as the substrate for path
// search and maze generation.
//
// What:
//
//   - Grid owns N×N Cells (default N = 50) and a nominal pixel width used to
//     map pointer coordinates to cells (cell size = width / N).
//   - Each Cell carries exactly one State: Empty, Barrier, Start, End, Open,
//     Closed or Path.
//   - At most one Start and one End exist; assigning a new one demotes the
//     old cell to Empty.
//   - Adjacency is four-directional, enumerated down, up, right, left, and
//     never includes Barrier cells.
//
// Adjacency is cached per cell and is not maintained incrementally. After a
// batch of Barrier edits call UpdateNeighbors; AdjacencyStale reports whether
// that is still pending, and the search package refuses to run on a stale grid.
//
// Complexity:
//
//   - New, Reset, UpdateNeighbors, Snapshot, String: O(N²)
//   - Cell, At, CellAt, InBounds, Cell.Set:           O(1)
//
// Errors:
//
//   - ErrOptionViolation: bad Rows/Width.
//   - ErrOutOfBounds: coordinate outside [0, N).
//   - ErrEmptyGrid, ErrNonSquare, ErrBadGlyph, ErrDuplicateStart,
//     ErrDuplicateEnd: malformed text input to FromStrings.
package grid
