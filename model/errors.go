package model

import "github.com/pkg/errors"

var (
	// ErrIndexOutOfRange is returned when a cell coordinate falls outside
	// [0, height) x [0, width).
	ErrIndexOutOfRange = errors.New("cell index out of range")

	// ErrRaggedMatrix is returned when a grid is constructed from a matrix
	// whose rows differ in length, or which has no rows or columns.
	ErrRaggedMatrix = errors.New("matrix is not rectangular")

	// ErrInvalidRadius is returned when a neighborhood query is given a
	// radius outside its accepted range.
	ErrInvalidRadius = errors.New("invalid neighborhood radius")
)
