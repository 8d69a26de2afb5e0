package render

import (
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// DefaultCellWidth is the number of terminal columns per cell; two columns
// make a cell roughly square in most fonts.
const DefaultCellWidth = 2

// Option configures a rendering.
type Option func(*Options)

// Options controls how a snapshot is drawn.
type Options struct {
	// CellWidth is the number of terminal columns per cell (>= 1).
	CellWidth int
	// Glyphs draws each cell as its text glyph instead of a colored block.
	Glyphs bool
	// Cursor, when non-nil, highlights one cell.
	Cursor *grid.Coord
}

// DefaultOptions returns colored blocks, two columns wide, no cursor.
func DefaultOptions() Options {
	return Options{CellWidth: DefaultCellWidth}
}

// WithCellWidth sets the columns per cell. Values below 1 are ignored.
func WithCellWidth(w int) Option {
	return func(o *Options) {
		if w >= 1 {
			o.CellWidth = w
		}
	}
}

// WithGlyphs switches to plain glyph output, for pipes and non-color terminals.
func WithGlyphs(on bool) Option {
	return func(o *Options) { o.Glyphs = on }
}

// WithCursor highlights the cell at p.
func WithCursor(p grid.Coord) Option {
	return func(o *Options) { o.Cursor = &p }
}

// Grid draws the current states of g, one line per row.
func Grid(g *grid.Grid, opts ...Option) string {
	return States(g.Snapshot(), opts...)
}

// States draws a snapshot as returned by grid.Grid.Snapshot, one line per
// row. It never touches a live grid, so a snapshot taken on one goroutine can
// be drawn on another.
func States(snap [][]grid.State, opts ...Option) string {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var b strings.Builder
	for r, row := range snap {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c, s := range row {
			b.WriteString(cell(s, o, o.Cursor != nil && *o.Cursor == grid.Coord{Row: r, Col: c}))
		}
	}
	return b.String()
}

func cell(s grid.State, o Options, cursor bool) string {
	if o.Glyphs {
		text := strings.Repeat(string(s.Glyph()), o.CellWidth)
		if cursor {
			return "[" + text[1:]
		}
		return text
	}
	fill := strings.Repeat(" ", o.CellWidth)
	if cursor {
		fill = "[" + fill[1:]
		return cursorStyle.Inherit(Style(s)).Render(fill)
	}
	return Style(s).Render(fill)
}

// Legend lists every state with its swatch, for status lines.
func Legend() string {
	parts := make([]string, 0, len(grid.States))
	for _, s := range grid.States {
		parts = append(parts, Style(s).Render("  ")+" "+s.String())
	}
	return strings.Join(parts, "  ")
}
