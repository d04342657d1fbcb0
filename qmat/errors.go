package qmat

import "errors"

// Sentinel errors for the qmat package. Every message carries the
// "qmat: " prefix; callers match with errors.Is. Context, when useful,
// is added by wrapping with fmt.Errorf("…: %w", ErrX) at the boundary.
var (
	// ErrInvalidDimensions indicates a negative row or column count.
	ErrInvalidDimensions = errors.New("qmat: dimensions must be >= 0")

	// ErrIndexOutOfBounds indicates a row or column index outside the
	// valid range.
	ErrIndexOutOfBounds = errors.New("qmat: index out of bounds")

	// ErrDimensionMismatch indicates incompatible operand shapes, e.g. a
	// matrix-vector product with len(v) != Cols.
	ErrDimensionMismatch = errors.New("qmat: dimension mismatch")

	// ErrSymbolicEntry indicates a numeric coercion hit an entry that
	// still contains free symbolic parameters.
	ErrSymbolicEntry = errors.New("qmat: entry is not numeric")
)
