package grid

import (
	"fmt"
	"strings"
)

// FromStrings builds a grid from one string per row using the glyphs of
// State.Glyph ('.', '#', 'S', 'E', 'o', 'x', '*'). The input must be square.
// Rows is taken from the input; a WithRows option is ignored. If the nominal
// width is smaller than the number of rows it is raised to match.
// Adjacency is not computed.
//
// Returns ErrEmptyGrid, ErrNonSquare, ErrBadGlyph, ErrDuplicateStart or
// ErrDuplicateEnd on malformed input.
// Complexity: O(N²).
func FromStrings(lines []string, opts ...Option) (*Grid, error) {
	n := len(lines)
	if n == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows := make([][]rune, n)
	for r, line := range lines {
		rows[r] = []rune(line)
		if len(rows[r]) != n {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonSquare, r, len(rows[r]), n)
		}
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	width := o.Width
	if width < n {
		width = n
	}
	g, err := New(WithRows(n), WithWidth(width))
	if err != nil {
		return nil, err
	}

	for r, row := range rows {
		for c, ch := range row {
			s, ok := ParseGlyph(ch)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadGlyph, ch, r, c)
			}
			if s == Start && g.start != nil {
				return nil, fmt.Errorf("%w: (%d,%d) and %s", ErrDuplicateStart, r, c, g.start.Pos())
			}
			if s == End && g.end != nil {
				return nil, fmt.Errorf("%w: (%d,%d) and %s", ErrDuplicateEnd, r, c, g.end.Pos())
			}
			g.cells[r][c].Set(s)
		}
	}

	return g, nil
}

// String encodes the grid one row per line, without a trailing newline.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.rows + 1))
	for r, row := range g.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, c := range row {
			b.WriteRune(c.state.Glyph())
		}
	}
	return b.String()
}
