package life

import (
	"math/rand"
)

// Stats summarizes the most recent change to a grid
type Stats struct {
	Generation int
	Alive      int
	Born       int
	Died       int
}

// Grid is a fixed-size field of alive/dead cells stored row-major (row*cols + col)
type Grid struct {
	rows, cols int
	cells      []bool
	next       []bool  // Back buffer for Step
	neighbours []uint8 // Live-neighbour count seen by the last Step or reseed
	generation int
	stats      Stats
}

// NewGrid creates an all-dead grid. Non-positive dimensions are treated as zero.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	n := rows * cols
	return &Grid{
		rows:       rows,
		cols:       cols,
		cells:      make([]bool, n),
		next:       make([]bool, n),
		neighbours: make([]uint8, n),
	}
}

// Rows returns the number of rows
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns
func (g *Grid) Cols() int { return g.cols }

// Generation returns the number of steps since the last reseed, clear or load
func (g *Grid) Generation() int { return g.generation }

// Stats returns the counters recorded by the last Step or reseed
func (g *Grid) Stats() Stats { return g.stats }

func (g *Grid) inBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Alive reports whether the cell is alive; out-of-range cells are dead
func (g *Grid) Alive(row, col int) bool {
	if !g.inBounds(row, col) {
		return false
	}
	return g.cells[row*g.cols+col]
}

// Set changes a single cell; out-of-range coordinates are ignored
func (g *Grid) Set(row, col int, alive bool) {
	if !g.inBounds(row, col) {
		return
	}
	g.cells[row*g.cols+col] = alive
}

// Toggle flips a single cell
func (g *Grid) Toggle(row, col int) {
	if !g.inBounds(row, col) {
		return
	}
	i := row*g.cols + col
	g.cells[i] = !g.cells[i]
}

// Neighbours returns the live-neighbour count recorded for a cell
func (g *Grid) Neighbours(row, col int) int {
	if !g.inBounds(row, col) {
		return 0
	}
	return int(g.neighbours[row*g.cols+col])
}

// Count returns the number of live cells
func (g *Grid) Count() int {
	n := 0
	for _, alive := range g.cells {
		if alive {
			n++
		}
	}
	return n
}

// countNeighbours counts live cells in the Moore neighbourhood. No wraparound.
func (g *Grid) countNeighbours(row, col int) int {
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			ny, nx := row+dy, col+dx
			if ny < 0 || ny >= g.rows || nx < 0 || nx >= g.cols {
				continue
			}
			if g.cells[ny*g.cols+nx] {
				count++
			}
		}
	}
	return count
}

// Step advances the grid by one generation
func (g *Grid) Step() Stats {
	born, died, alive := 0, 0, 0
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			i := row*g.cols + col
			n := g.countNeighbours(row, col)
			g.neighbours[i] = uint8(n)

			was := g.cells[i]
			now := n == 3 || (was && n == 2)
			g.next[i] = now

			switch {
			case now && !was:
				born++
			case was && !now:
				died++
			}
			if now {
				alive++
			}
		}
	}
	g.cells, g.next = g.next, g.cells

	g.generation++
	g.stats = Stats{Generation: g.generation, Alive: alive, Born: born, Died: died}
	return g.stats
}

// Reseed replaces every cell with an independent random value.
// density is the probability of a cell being alive and is clamped to [0,1].
func (g *Grid) Reseed(rng *rand.Rand, density float64) {
	density = clamp01(density)
	for i := range g.cells {
		g.cells[i] = rng.Float64() < density
	}
	g.reset()
}

// Clear kills every cell
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = false
	}
	g.reset()
}

// reset restarts the generation count and refreshes derived state after
// the cells were replaced wholesale
func (g *Grid) reset() {
	g.generation = 0
	alive := 0
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			i := row*g.cols + col
			g.neighbours[i] = uint8(g.countNeighbours(row, col))
			if g.cells[i] {
				alive++
			}
		}
	}
	g.stats = Stats{Alive: alive}
}

// Clone returns an independent copy of the grid
func (g *Grid) Clone() *Grid {
	c := NewGrid(g.rows, g.cols)
	copy(c.cells, g.cells)
	copy(c.neighbours, g.neighbours)
	c.generation = g.generation
	c.stats = g.stats
	return c
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
