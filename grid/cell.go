package grid

// Cell is one grid location. Its coordinates never change; its State does.
// The neighbor list is derived from the owning Grid's Barrier layout and is
// only refreshed by Grid.UpdateNeighbors.
type Cell struct {
	row, col  int
	state     State
	neighbors []*Cell
	owner     *Grid
}

// Row returns the cell's row index.
func (c *Cell) Row() int { return c.row }

// Col returns the cell's column index.
func (c *Cell) Col() int { return c.col }

// Pos returns the cell's coordinates.
func (c *Cell) Pos() Coord { return Coord{Row: c.row, Col: c.col} }

// State returns the current tag.
func (c *Cell) State() State { return c.state }

// IsEmpty reports whether the cell is Empty.
func (c *Cell) IsEmpty() bool { return c.state == Empty }

// IsBarrier reports whether the cell is a Barrier.
func (c *Cell) IsBarrier() bool { return c.state == Barrier }

// IsStart reports whether the cell is the Start.
func (c *Cell) IsStart() bool { return c.state == Start }

// IsEnd reports whether the cell is the End.
func (c *Cell) IsEnd() bool { return c.state == End }

// IsOpen reports whether the cell is on a search frontier.
func (c *Cell) IsOpen() bool { return c.state == Open }

// IsClosed reports whether the cell was already expanded.
func (c *Cell) IsClosed() bool { return c.state == Closed }

// IsPath reports whether the cell lies on a reconstructed path.
func (c *Cell) IsPath() bool { return c.state == Path }

// Reset makes the cell Empty.
func (c *Cell) Reset() { c.Set(Empty) }

// MakeBarrier marks the cell as a Barrier; adjacency becomes stale.
func (c *Cell) MakeBarrier() { c.Set(Barrier) }

// MakeStart marks the cell as Start, demoting any previous Start to Empty.
func (c *Cell) MakeStart() { c.Set(Start) }

// MakeEnd marks the cell as End, demoting any previous End to Empty.
func (c *Cell) MakeEnd() { c.Set(End) }

// MakeOpen marks the cell as a frontier member.
func (c *Cell) MakeOpen() { c.Set(Open) }

// MakeClosed marks the cell as expanded.
func (c *Cell) MakeClosed() { c.Set(Closed) }

// MakePath marks the cell as part of the found path.
func (c *Cell) MakePath() { c.Set(Path) }

// Set replaces the cell's tag. Setting the current tag again is a no-op.
// The owning grid is notified so it can keep its start/end references and
// its adjacency staleness flag up to date.
func (c *Cell) Set(s State) {
	if c.state == s {
		return
	}
	prev := c.state
	c.state = s
	if c.owner != nil {
		c.owner.observe(c, prev, s)
	}
}

// Neighbors returns the adjacency list computed by the last
// Grid.UpdateNeighbors, in the order down, up, right, left.
// The slice is owned by the cell; callers must not modify it.
func (c *Cell) Neighbors() []*Cell { return c.neighbors }

// updateNeighbors recomputes c's adjacency from g's current Barrier layout.
// Complexity: O(1).
func (c *Cell) updateNeighbors(g *Grid) {
	c.neighbors = c.neighbors[:0]
	for _, d := range adjacencyOffsets {
		r, col := c.row+d[0], c.col+d[1]
		if !g.InBounds(r, col) {
			continue
		}
		nb := g.cells[r][col]
		if nb.IsBarrier() {
			continue
		}
		c.neighbors = append(c.neighbors, nb)
	}
}
