package qmat

import (
	"fmt"
	"math/cmplx"
	"strconv"
	"strings"
)

// CDense is a row-major matrix of complex128 entries — the numeric
// target of symbolic coercion and the workhorse of SDE evaluation.
type CDense struct {
	r, c int
	data []complex128
}

// NewCDense creates an r×c complex matrix of zeros. Zero rows or columns
// are legal.
func NewCDense(rows, cols int) (*CDense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewCDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &CDense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// Rows returns the number of rows.
func (m *CDense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *CDense) Cols() int { return m.c }

func (m *CDense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("CDense.%s(%d,%d): %w", method, row, col, ErrIndexOutOfBounds)
	}

	return row*m.c + col, nil
}

// At retrieves the entry at (row, col).
func (m *CDense) At(row, col int) (complex128, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
func (m *CDense) Set(row, col int, v complex128) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy.
func (m *CDense) Clone() *CDense {
	data := make([]complex128, len(m.data))
	copy(data, m.data)

	return &CDense{r: m.r, c: m.c, data: data}
}

// Scale returns a new matrix with every entry multiplied by z.
func (m *CDense) Scale(z complex128) *CDense {
	out := m.Clone()
	for i := range out.data {
		out.data[i] *= z
	}

	return out
}

// MulVec computes the matrix-vector product m·v. A zero-column matrix
// accepts the empty vector and yields the zero vector of length Rows.
func (m *CDense) MulVec(v []complex128) ([]complex128, error) {
	if len(v) != m.c {
		return nil, fmt.Errorf("CDense.MulVec: len(v)=%d, cols=%d: %w", len(v), m.c, ErrDimensionMismatch)
	}
	out := make([]complex128, m.r)
	for i := 0; i < m.r; i++ {
		var acc complex128
		row := m.data[i*m.c : (i+1)*m.c]
		for j, x := range v {
			acc += row[j] * x
		}
		out[i] = acc
	}

	return out, nil
}

// Equal reports entrywise equality within an absolute tolerance.
func (m *CDense) Equal(other *CDense, tol float64) bool {
	if other == nil || m.r != other.r || m.c != other.c {
		return false
	}
	for i := range m.data {
		if cmplx.Abs(m.data[i]-other.data[i]) > tol {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for debugging.
func (m *CDense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString("[")
		for j := 0; j < m.c; j++ {
			b.WriteString(strconv.FormatComplex(m.data[i*m.c+j], 'g', -1, 128))
			if j < m.c-1 {
				b.WriteString(", ")
			}
		}
		b.WriteString("]\n")
	}

	return b.String()
}
