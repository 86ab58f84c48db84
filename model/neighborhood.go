package model

import "github.com/pkg/errors"

// counted reports whether position p should contribute to a line sum
// centered at c on an axis of extent max. The center itself and any
// position outside [0, max) are excluded; out-of-range positions are
// skipped, never wrapped to the opposite edge.
func counted(p, c, max int) bool {
	return p >= 0 && p < max && p != c
}

// checkLineArgs validates the shared contract of the line-sum primitives.
func (g *Grid) checkLineArgs(i, j, r int) error {
	if err := g.checkBounds(i, j); err != nil {
		return err
	}
	if r < 0 {
		return errors.Wrapf(ErrInvalidRadius, "radius %d must be non-negative", r)
	}
	return nil
}

// Vertical counts the living cells in column j within r rows of (i, j),
// excluding (i, j) itself.
func (g *Grid) Vertical(i, j, r int) (int, error) {
	if err := g.checkLineArgs(i, j, r); err != nil {
		return 0, errors.Wrap(err, "[Vertical]")
	}

	sum := 0
	for n := 0; n <= 2*r; n++ {
		ii := i - r + n
		if counted(ii, i, g.height) {
			sum += g.cells[g.index(ii, j)].Bit()
		}
	}
	return sum, nil
}

// Horizontal counts the living cells in row i within r columns of (i, j),
// excluding (i, j) itself.
func (g *Grid) Horizontal(i, j, r int) (int, error) {
	if err := g.checkLineArgs(i, j, r); err != nil {
		return 0, errors.Wrap(err, "[Horizontal]")
	}

	sum := 0
	for n := 0; n <= 2*r; n++ {
		jj := j - r + n
		if counted(jj, j, g.width) {
			sum += g.cells[g.index(i, jj)].Bit()
		}
	}
	return sum, nil
}

// RightDiagonal counts the living cells on the anti-diagonal through
// (i, j) within radius r, excluding (i, j) itself.
func (g *Grid) RightDiagonal(i, j, r int) (int, error) {
	if err := g.checkLineArgs(i, j, r); err != nil {
		return 0, errors.Wrap(err, "[RightDiagonal]")
	}

	sum := 0
	for n := 0; n <= 2*r; n++ {
		ii := i + r - n
		jj := j - r + n
		if counted(ii, i, g.height) && counted(jj, j, g.width) {
			sum += g.cells[g.index(ii, jj)].Bit()
		}
	}
	return sum, nil
}

// LeftDiagonal counts the living cells on the main diagonal through
// (i, j) within radius r, excluding (i, j) itself.
func (g *Grid) LeftDiagonal(i, j, r int) (int, error) {
	if err := g.checkLineArgs(i, j, r); err != nil {
		return 0, errors.Wrap(err, "[LeftDiagonal]")
	}

	sum := 0
	for n := 0; n <= 2*r; n++ {
		ii := i - r + n
		jj := j - r + n
		if counted(ii, i, g.height) && counted(jj, j, g.width) {
			sum += g.cells[g.index(ii, jj)].Bit()
		}
	}
	return sum, nil
}

// Moore counts the living cells among the up-to-8 cells surrounding
// (i, j). Cells on an edge or corner see fewer neighbors because
// out-of-range positions are excluded.
func (g *Grid) Moore(i, j int) (int, error) {
	sum := 0
	for _, line := range []func(int, int, int) (int, error){
		g.Vertical, g.Horizontal, g.RightDiagonal, g.LeftDiagonal,
	} {
		n, err := line(i, j, 1)
		if err != nil {
			return 0, errors.Wrap(err, "[Moore]")
		}
		sum += n
	}
	return sum, nil
}

// VonNeumann counts the living cells within Manhattan distance r of
// (i, j): the orthogonal lines at radius r plus both diagonals at radius
// r-1. The radius must be at least 1.
func (g *Grid) VonNeumann(i, j, r int) (int, error) {
	if r < 1 {
		return 0, errors.Wrapf(ErrInvalidRadius, "[VonNeumann] radius %d must be at least 1", r)
	}

	sum := 0
	for _, part := range []struct {
		line   func(int, int, int) (int, error)
		radius int
	}{
		{g.Vertical, r},
		{g.Horizontal, r},
		{g.RightDiagonal, r - 1},
		{g.LeftDiagonal, r - 1},
	} {
		n, err := part.line(i, j, part.radius)
		if err != nil {
			return 0, errors.Wrap(err, "[VonNeumann]")
		}
		sum += n
	}
	return sum, nil
}
