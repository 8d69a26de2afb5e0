package grid

import "fmt"

// adjacencyOffsets is the fixed enumeration order: down, up, right, left.
// Search traces depend on it.
var adjacencyOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Grid is an N×N matrix of Cells. It is a single-owner structure: nothing in
// this package synchronizes access.
type Grid struct {
	rows  int
	width int
	gap   int
	cells [][]*Cell

	start, end *Cell

	// barrierEdits counts Barrier status flips; adjacencyAt is its value at
	// the last UpdateNeighbors.
	barrierEdits  uint64
	adjacencyAt   uint64
	adjacencyDone bool
}

// New constructs an all-Empty grid.
// Returns ErrOptionViolation for invalid options or when Width < Rows.
// Complexity: O(N²) time and memory.
func New(opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if o.Width < o.Rows {
		return nil, fmt.Errorf("%w: width %d is smaller than rows %d", ErrOptionViolation, o.Width, o.Rows)
	}
	g := &Grid{
		rows:  o.Rows,
		width: o.Width,
		gap:   o.Width / o.Rows,
	}
	g.fill()

	return g, nil
}

// fill replaces every cell with a fresh Empty one.
func (g *Grid) fill() {
	g.cells = make([][]*Cell, g.rows)
	for r := 0; r < g.rows; r++ {
		g.cells[r] = make([]*Cell, g.rows)
		for c := 0; c < g.rows; c++ {
			g.cells[r][c] = &Cell{row: r, col: c, owner: g}
		}
	}
	g.start, g.end = nil, nil
	g.adjacencyDone = false
}

// Reset replaces all cells with Empty ones, keeping the dimensions.
// Previously obtained *Cell values no longer belong to the grid.
func (g *Grid) Reset() {
	for _, row := range g.cells {
		for _, c := range row {
			c.owner = nil
		}
	}
	g.fill()
}

// Rows returns the side length N.
func (g *Grid) Rows() int { return g.rows }

// Width returns the nominal pixel width.
func (g *Grid) Width() int { return g.width }

// Gap returns the pixel size of one cell (Width / Rows).
func (g *Grid) Gap() int { return g.gap }

// Len returns the total number of cells.
func (g *Grid) Len() int { return g.rows * g.rows }

// InBounds reports whether (row, col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.rows
}

// Cell returns the cell at (row, col) or ErrOutOfBounds.
func (g *Grid) Cell(row, col int) (*Cell, error) {
	if !g.InBounds(row, col) {
		return nil, fmt.Errorf("%w: (%d,%d) in %d×%d grid", ErrOutOfBounds, row, col, g.rows, g.rows)
	}
	return g.cells[row][col], nil
}

// At is Cell for a Coord.
func (g *Grid) At(p Coord) (*Cell, error) {
	return g.Cell(p.Row, p.Col)
}

// CellAt maps a pixel coordinate to a (row, col) index with the same integer
// division used to size the cells: row follows px, col follows py.
// The result is not clamped; out-of-range input is the caller's problem.
func (g *Grid) CellAt(px, py int) (row, col int) {
	return px / g.gap, py / g.gap
}

// Owns reports whether c is currently one of g's cells.
func (g *Grid) Owns(c *Cell) bool {
	return c != nil && c.owner == g
}

// Start returns the Start cell, or nil.
func (g *Grid) Start() *Cell { return g.start }

// End returns the End cell, or nil.
func (g *Grid) End() *Cell { return g.end }

// SetStart marks the cell at p as Start. A previous Start cell becomes Empty.
func (g *Grid) SetStart(p Coord) (*Cell, error) {
	c, err := g.At(p)
	if err != nil {
		return nil, err
	}
	c.MakeStart()
	return c, nil
}

// SetEnd marks the cell at p as End. A previous End cell becomes Empty.
func (g *Grid) SetEnd(p Coord) (*Cell, error) {
	c, err := g.At(p)
	if err != nil {
		return nil, err
	}
	c.MakeEnd()
	return c, nil
}

// Clear resets the cell at p to Empty.
func (g *Grid) Clear(p Coord) error {
	c, err := g.At(p)
	if err != nil {
		return err
	}
	c.Reset()
	return nil
}

// ClearSearch turns every Open, Closed and Path cell back to Empty, leaving
// Barrier, Start and End untouched. Adjacency stays valid.
func (g *Grid) ClearSearch() {
	g.Each(func(c *Cell) {
		switch c.state {
		case Open, Closed, Path:
			c.Reset()
		}
	})
}

// UpdateNeighbors recomputes the adjacency of every cell. Call it after any
// batch of Barrier edits and before running a search.
// Complexity: O(N²).
func (g *Grid) UpdateNeighbors() {
	for _, row := range g.cells {
		for _, c := range row {
			c.updateNeighbors(g)
		}
	}
	g.adjacencyAt = g.barrierEdits
	g.adjacencyDone = true
}

// AdjacencyStale reports whether a Barrier was added or removed since the
// last UpdateNeighbors, or adjacency was never computed.
func (g *Grid) AdjacencyStale() bool {
	return !g.adjacencyDone || g.adjacencyAt != g.barrierEdits
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c *Cell)) {
	for _, row := range g.cells {
		for _, c := range row {
			fn(c)
		}
	}
}

// Count returns the number of cells currently in state s.
func (g *Grid) Count(s State) int {
	n := 0
	g.Each(func(c *Cell) {
		if c.state == s {
			n++
		}
	})
	return n
}

// Snapshot copies the current states, indexed [row][col].
func (g *Grid) Snapshot() [][]State {
	out := make([][]State, g.rows)
	for r, row := range g.cells {
		out[r] = make([]State, g.rows)
		for c, cell := range row {
			out[r][c] = cell.state
		}
	}
	return out
}

// observe keeps the start/end references and the staleness counter in sync
// with a state change on one of g's cells.
func (g *Grid) observe(c *Cell, prev, next State) {
	if (prev == Barrier) != (next == Barrier) {
		g.barrierEdits++
	}
	if prev == Start && g.start == c {
		g.start = nil
	}
	if prev == End && g.end == c {
		g.end = nil
	}

	switch next {
	case Start:
		old := g.start
		g.start = c
		if old != nil && old != c {
			old.Set(Empty)
		}
	case End:
		old := g.end
		g.end = c
		if old != nil && old != c {
			old.Set(Empty)
		}
	}
}
