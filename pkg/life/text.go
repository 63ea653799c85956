package life

import (
	"errors"
	"fmt"
	"strings"
)

// Cell characters used by String and Parse
const (
	AliveChar = '#'
	DeadChar  = '.'
)

// ErrEmptyBoard is returned by Parse when the input has no cells
var ErrEmptyBoard = errors.New("empty board")

// String renders the grid as one line per row
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			if g.cells[row*g.cols+col] {
				b.WriteByte(AliveChar)
			} else {
				b.WriteByte(DeadChar)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Parse builds a grid from the String format. Blank lines and surrounding
// whitespace are ignored; every row must have the same width.
func Parse(text string) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		return nil, ErrEmptyBoard
	}

	cols := len(lines[0])
	g := NewGrid(len(lines), cols)
	for row, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("failed to parse row %d: width %d, want %d", row, len(line), cols)
		}
		for col := 0; col < cols; col++ {
			switch line[col] {
			case AliveChar:
				g.cells[row*cols+col] = true
			case DeadChar:
			default:
				return nil, fmt.Errorf("failed to parse row %d: unexpected %q at column %d", row, line[col], col)
			}
		}
	}
	g.reset()
	return g, nil
}

// SetGeneration overrides the generation counter, used when restoring a saved board
func (g *Grid) SetGeneration(n int) {
	if n < 0 {
		n = 0
	}
	g.generation = n
	g.stats.Generation = n
}
