package model

import (
	"crypto/md5"
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/hzach/Cellery/utils"
)

// Grid is a fixed-size board of cell states addressed by (row, column).
// Cells are stored in a single row-major slice; dimensions never change
// after construction. The grid performs no locking: callers that step
// generations and query concurrently must serialize externally.
type Grid struct {
	height int
	width  int
	cells  []Cell

	history []string // Store recent grid fingerprints for cycle detection
}

// NewGrid creates an all-dead grid with the specified dimensions.
func NewGrid(height, width int) (*Grid, error) {
	if height < 1 || width < 1 {
		return nil, errors.Wrapf(ErrRaggedMatrix, "[NewGrid] dimensions %dx%d must be at least 1x1", height, width)
	}
	return &Grid{
		height: height,
		width:  width,
		cells:  make([]Cell, height*width),
	}, nil
}

// FromMatrix creates a grid from a rectangular matrix of 0/1 integers,
// placing a living cell wherever the matrix holds 1.
func FromMatrix(matrix [][]int) (*Grid, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return nil, errors.Wrap(ErrRaggedMatrix, "[FromMatrix] matrix has no cells")
	}

	g, err := NewGrid(len(matrix), len(matrix[0]))
	if err != nil {
		return nil, err
	}

	for i, row := range matrix {
		if len(row) != g.width {
			return nil, errors.Wrapf(ErrRaggedMatrix, "[FromMatrix] row %d has length %d, want %d", i, len(row), g.width)
		}
		for j, v := range row {
			if v != 0 {
				g.cells[i*g.width+j] = Live
			}
		}
	}
	return g, nil
}

// Height returns the number of rows in the grid.
func (g *Grid) Height() int {
	return g.height
}

// Width returns the number of columns in the grid.
func (g *Grid) Width() int {
	return g.width
}

// index maps (row, column) to the backing slice position.
func (g *Grid) index(i, j int) int {
	return i*g.width + j
}

// checkBounds validates that (i, j) addresses a cell inside the grid.
func (g *Grid) checkBounds(i, j int) error {
	if i < 0 || i >= g.height || j < 0 || j >= g.width {
		return errors.Wrapf(ErrIndexOutOfRange, "position (%d, %d) outside %dx%d grid", i, j, g.height, g.width)
	}
	return nil
}

// Get returns the state of the cell at (i, j).
func (g *Grid) Get(i, j int) (Cell, error) {
	if err := g.checkBounds(i, j); err != nil {
		return Dead, errors.Wrap(err, "[Get]")
	}
	return g.cells[g.index(i, j)], nil
}

// Kill transitions the cell at (i, j) to dead.
func (g *Grid) Kill(i, j int) error {
	if err := g.checkBounds(i, j); err != nil {
		return errors.Wrap(err, "[Kill]")
	}
	g.cells[g.index(i, j)] = Dead
	return nil
}

// Revive transitions the cell at (i, j) to living.
func (g *Grid) Revive(i, j int) error {
	if err := g.checkBounds(i, j); err != nil {
		return errors.Wrap(err, "[Revive]")
	}
	g.cells[g.index(i, j)] = Live
	return nil
}

// ToBinaryMatrix returns a snapshot of the current state, 1 for living
// cells and 0 for dead ones, in the same shape as the grid.
func (g *Grid) ToBinaryMatrix() [][]int {
	bin := make([][]int, g.height)
	for i := range bin {
		bin[i] = make([]int, g.width)
		for j := range bin[i] {
			bin[i][j] = g.cells[g.index(i, j)].Bit()
		}
	}
	return bin
}

// LivingCount returns the total number of living cells.
func (g *Grid) LivingCount() (count int) {
	for _, c := range g.cells {
		count += c.Bit()
	}
	return
}

// Render returns a bracketed, comma-separated rendering of the bit matrix,
// e.g. "[[0, 1], [1, 0]]". Debug/display use only.
func (g *Grid) Render() string {
	var b strings.Builder
	b.WriteByte('[')
	for i := 0; i < g.height; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('[')
		for j := 0; j < g.width; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.Itoa(g.cells[g.index(i, j)].Bit()))
		}
		b.WriteByte(']')
	}
	b.WriteByte(']')
	return b.String()
}

// Clear kills all cells and resets the fingerprint history.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Dead
	}
	g.history = nil
}

// reset re-dimensions a pooled grid and clears its state.
func (g *Grid) reset(height, width int) {
	g.height = height
	g.width = width
	g.history = nil

	if len(g.cells) != height*width {
		g.cells = make([]Cell, height*width)
		return
	}
	for i := range g.cells {
		g.cells[i] = Dead
	}
}

// Fingerprint returns an MD5 hash of the current grid state.
func (g *Grid) Fingerprint() string {
	h := md5.New()
	for _, c := range g.cells {
		h.Write([]byte{byte(c.Bit())})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// UpdateHistory adds the current fingerprint to history and maintains size
func (g *Grid) UpdateHistory() {
	g.history = append(g.history, g.Fingerprint())

	// Keep only last 5 states to detect cycles
	if len(g.history) > 5 {
		g.history = g.history[1:]
	}
}

// IsStagnant checks if the grid is stuck in a cycle or static state
func (g *Grid) IsStagnant() bool {
	if len(g.history) < 3 {
		return false
	}

	current := g.Fingerprint()
	for n := 1; n <= 3; n++ {
		if len(g.history) >= n && g.history[len(g.history)-n] == current {
			return true
		}
	}
	return false
}

// InjectRandomLife revives random cells to break stagnation.
func (g *Grid) InjectRandomLife(count int) {
	for n := 0; n < count; n++ {
		g.cells[g.index(rand.Intn(g.height), rand.Intn(g.width))] = Live
	}
}

// Randomize fills the grid with living cells at the given density.
func (g *Grid) Randomize(density float64) {
	for i := range g.cells {
		if rand.Float64() < density {
			g.cells[i] = Live
		} else {
			g.cells[i] = Dead
		}
	}
}

// AddGlider stamps a glider pattern with its top-left corner at (i, j).
// Cells falling outside the grid are skipped.
func (g *Grid) AddGlider(i, j int) {
	pattern := [][]int{
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
	}

	for di, row := range pattern {
		for dj, v := range row {
			if g.checkBounds(i+di, j+dj) != nil {
				continue
			}
			if v == 1 {
				g.cells[g.index(i+di, j+dj)] = Live
			} else {
				g.cells[g.index(i+di, j+dj)] = Dead
			}
		}
	}
}

// AddBlinker stamps a horizontal blinker oscillator starting at (i, j).
func (g *Grid) AddBlinker(i, j int) {
	for dj := 0; dj < 3; dj++ {
		if g.checkBounds(i, j+dj) == nil {
			g.cells[g.index(i, j+dj)] = Live
		}
	}
}

// SeedPatterns clears the grid and seeds gliders, oscillators, and random
// life according to the configuration.
func (g *Grid) SeedPatterns(config utils.Config) {
	g.Clear()
	g.Randomize(config.RandomDensity)

	if g.height >= 10 && g.width >= 10 {
		g.AddGlider(5, 5)
		if g.height >= 15 && g.width >= 20 {
			g.AddGlider(5, g.width-8)
		}

		g.AddBlinker(g.height/4, g.width/4)
		if g.width >= 30 {
			g.AddBlinker(3*g.height/4, 3*g.width/4)
		}
	}
}
