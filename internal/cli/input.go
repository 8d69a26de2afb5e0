package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// openInput opens path for reading; "" and "-" mean stdin.
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(stdin), nil
	}
	return os.Open(path)
}

// readGrid parses a text grid, ignoring blank lines and trailing spaces.
func readGrid(r io.Reader, width int) (*grid.Grid, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return grid.FromStrings(lines, grid.WithWidth(width))
}

// parseCoord reads "row,col".
func parseCoord(s string) (grid.Coord, error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return grid.Coord{}, fmt.Errorf("coordinate %q: want row,col", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("coordinate %q: %w", s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("coordinate %q: %w", s, err)
	}
	return grid.Coord{Row: r, Col: c}, nil
}
