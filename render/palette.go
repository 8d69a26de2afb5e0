package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/grid"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorWhite     = lipgloss.Color("255") // Empty
	colorBlack     = lipgloss.Color("16")  // Barrier
	colorOrange    = lipgloss.Color("214") // Start
	colorTurquoise = lipgloss.Color("80")  // End
	colorGreen     = lipgloss.Color("46")  // Open
	colorRed       = lipgloss.Color("196") // Closed
	colorPurple    = lipgloss.Color("91")  // Path
	colorGray      = lipgloss.Color("245") // grid lines, cursor
)

// palette is indexed by grid.State.
var palette = [...]lipgloss.Color{
	grid.Empty:   colorWhite,
	grid.Barrier: colorBlack,
	grid.Start:   colorOrange,
	grid.End:     colorTurquoise,
	grid.Open:    colorGreen,
	grid.Closed:  colorRed,
	grid.Path:    colorPurple,
}

// Color returns the display color of s. Unknown states map to gray.
func Color(s grid.State) lipgloss.Color {
	if int(s) < len(palette) {
		return palette[s]
	}
	return colorGray
}

// styles caches one background style per state.
var styles = func() [len(palette)]lipgloss.Style {
	var out [len(palette)]lipgloss.Style
	for i := range palette {
		out[i] = lipgloss.NewStyle().Background(Color(grid.State(i)))
	}
	return out
}()

// Style returns the cell style of s: its color as background.
func Style(s grid.State) lipgloss.Style {
	if int(s) < len(styles) {
		return styles[s]
	}
	return lipgloss.NewStyle().Background(Color(s))
}

// cursorStyle marks the cell under the keyboard cursor.
var cursorStyle = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
