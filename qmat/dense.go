package qmat

import (
	"fmt"
	"strings"

	"github.com/quantaflow/qsde/scalar"
)

// Dense is a row-major matrix of symbolic scalar entries.
// r is rows, c is columns, and data holds r*c entries in row-major order.
type Dense struct {
	r, c int
	data []scalar.Scalar
}

// New creates an r×c Dense matrix with every entry set to the additive
// identity. Zero rows or columns are legal.
// Complexity: O(r·c) time and memory.
func New(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	data := make([]scalar.Scalar, rows*cols)
	for i := range data {
		data[i] = scalar.Zero()
	}

	return &Dense{r: rows, c: cols, data: data}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or reports bounds.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the entry at (row, col).
func (m *Dense) At(row, col int) (scalar.Scalar, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return nil, err
	}

	return m.data[idx], nil
}

// Set assigns entry s at (row, col). A nil entry is stored as zero.
func (m *Dense) Set(row, col int, s scalar.Scalar) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if s == nil {
		s = scalar.Zero()
	}
	m.data[idx] = s

	return nil
}

// Clone returns a deep structural copy. Entries are immutable and shared.
func (m *Dense) Clone() *Dense {
	data := make([]scalar.Scalar, len(m.data))
	copy(data, m.data)

	return &Dense{r: m.r, c: m.c, data: data}
}

// Substitute binds free parameters in every entry and returns a new
// matrix; unbound parameters survive symbolically.
// Complexity: O(r·c) substitutions.
func (m *Dense) Substitute(params map[string]complex128) *Dense {
	data := make([]scalar.Scalar, len(m.data))
	for i, s := range m.data {
		data[i] = s.Substitute(params)
	}

	return &Dense{r: m.r, c: m.c, data: data}
}

// ToComplex coerces every entry to a complex number. It fails with
// ErrSymbolicEntry naming the offending cell when a free parameter
// remains anywhere in the matrix.
func (m *Dense) ToComplex() (*CDense, error) {
	out, err := NewCDense(m.r, m.c)
	if err != nil {
		return nil, err
	}
	for i, s := range m.data {
		v, ok := s.Eval()
		if !ok {
			return nil, fmt.Errorf("Dense.ToComplex(%d,%d) entry %q: %w", i/max(m.c, 1), i%max(m.c, 1), s.String(), ErrSymbolicEntry)
		}
		out.data[i] = v
	}

	return out, nil
}

// String implements fmt.Stringer for debugging.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			b.WriteString(m.data[i*m.c+j].String())
			if j < m.c-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
