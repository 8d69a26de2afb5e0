// Package render turns grid states into terminal output.
//
// Color is a pure lookup from grid.State (Color, Style) kept apart from the
// cell model. Grid and States draw a whole snapshot with lipgloss, either as
// colored blocks or, with WithGlyphs, as the plain text glyphs of the grid
// package.
package render
