// Package grid defines core types, options, and sentinel errors
// for the grid subpackage of github.com/katalvlaran/gridpath.
package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates the text input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonSquare indicates the text input is not an N×N square.
	ErrNonSquare = errors.New("grid: all rows must have exactly as many cells as there are rows")
	// ErrBadGlyph indicates an unknown character in the text input.
	ErrBadGlyph = errors.New("grid: unknown cell glyph")
	// ErrDuplicateStart indicates more than one start cell in the text input.
	ErrDuplicateStart = errors.New("grid: more than one start cell")
	// ErrDuplicateEnd indicates more than one end cell in the text input.
	ErrDuplicateEnd = errors.New("grid: more than one end cell")
	// ErrOutOfBounds indicates a (row, col) outside [0, N).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("grid: invalid option supplied")
)

// State is the single tag a Cell carries at any time.
type State uint8

const (
	// Empty is a free, unexplored cell.
	Empty State = iota
	// Barrier is impassable and never listed as anyone's neighbor.
	Barrier
	// Start is the search origin.
	Start
	// End is the search target.
	End
	// Open marks a discovered cell still on the frontier.
	Open
	// Closed marks a cell whose neighbors have all been considered.
	Closed
	// Path marks an intermediate cell of a reconstructed path.
	Path
)

// States lists every State in declaration order.
var States = [...]State{Empty, Barrier, Start, End, Open, Closed, Path}

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Barrier:
		return "barrier"
	case Start:
		return "start"
	case End:
		return "end"
	case Open:
		return "open"
	case Closed:
		return "closed"
	case Path:
		return "path"
	}
	return fmt.Sprintf("unknown state: %d", uint8(s))
}

// glyphs is the text encoding used by FromStrings and Grid.String.
var glyphs = map[State]rune{
	Empty:   '.',
	Barrier: '#',
	Start:   'S',
	End:     'E',
	Open:    'o',
	Closed:  'x',
	Path:    '*',
}

// Glyph returns the single-character text form of s.
func (s State) Glyph() rune {
	if r, ok := glyphs[s]; ok {
		return r
	}
	return '?'
}

// ParseGlyph is the inverse of State.Glyph.
func ParseGlyph(r rune) (State, bool) {
	for s, g := range glyphs {
		if g == r {
			return s, true
		}
	}
	return Empty, false
}

// Coord is a (row, col) index pair.
type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Default dimensions.
const (
	DefaultRows  = 50
	DefaultWidth = 800
)

// Option configures grid construction via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the construction parameters of a Grid.
type Options struct {
	// Rows is the number of rows and columns (the grid is square).
	Rows int
	// Width is the nominal pixel width used only by CellAt.
	Width int

	err error
}

// DefaultOptions returns Options with Rows=50 and Width=800.
func DefaultOptions() Options {
	return Options{Rows: DefaultRows, Width: DefaultWidth}
}

// WithRows sets the side length N. N must be at least 1.
func WithRows(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: rows must be ≥ 1 (got %d)", ErrOptionViolation, n)
			return
		}
		o.Rows = n
	}
}

// WithWidth sets the nominal pixel width. It must be positive; New also
// requires Width ≥ Rows so that every cell is at least one pixel wide.
func WithWidth(px int) Option {
	return func(o *Options) {
		if px < 1 {
			o.err = fmt.Errorf("%w: width must be ≥ 1 (got %d)", ErrOptionViolation, px)
			return
		}
		o.Width = px
	}
}
