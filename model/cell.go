package model

// Cell is the two-valued state of a single grid position.
type Cell uint8

const (
	// Dead is the inactive cell state.
	Dead Cell = 0
	// Live is the active cell state.
	Live Cell = 1
)

// Bit returns 1 for a living cell and 0 for a dead one.
func (c Cell) Bit() int {
	if c == Live {
		return 1
	}
	return 0
}

// IsAlive reports whether the cell is living.
func (c Cell) IsAlive() bool {
	return c == Live
}
