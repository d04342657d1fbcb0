package qmat_test

import (
	"testing"

	"github.com/quantaflow/qsde/qmat"
	"github.com/quantaflow/qsde/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDense_NewInitializesZero allocates with additive-identity entries.
func TestDense_NewInitializesZero(t *testing.T) {
	m, err := qmat.New(2, 3)
	require.NoError(t, err, "2×3 allocation must succeed")
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	s, err := m.At(1, 2)
	require.NoError(t, err)
	assert.True(t, s.Equal(scalar.Zero()), "fresh entries must be the additive identity")
}

// TestDense_ZeroWidthShapesAreLegal supports empty registries.
func TestDense_ZeroWidthShapesAreLegal(t *testing.T) {
	m, err := qmat.New(3, 0)
	require.NoError(t, err, "ncav×0 must be a legal shape")
	assert.Equal(t, 0, m.Cols())

	_, err = qmat.New(-1, 2)
	assert.ErrorIs(t, err, qmat.ErrInvalidDimensions, "negative dimensions must error")
}

// TestDense_BoundsChecking returns sentinels instead of panicking.
func TestDense_BoundsChecking(t *testing.T) {
	m, err := qmat.New(2, 2)
	require.NoError(t, err)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, qmat.ErrIndexOutOfBounds, "row overflow must error")
	err = m.Set(0, -1, scalar.One())
	assert.ErrorIs(t, err, qmat.ErrIndexOutOfBounds, "negative column must error")
}

// TestDense_SubstituteThenToComplex walks the symbolic→numeric pipeline.
func TestDense_SubstituteThenToComplex(t *testing.T) {
	m, err := qmat.New(1, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, scalar.Neg(scalar.Sqrt(scalar.Sym("kappa")))))
	require.NoError(t, m.Set(0, 1, scalar.C(complex(0, 2))))

	_, err = m.ToComplex()
	assert.ErrorIs(t, err, qmat.ErrSymbolicEntry, "free kappa must block coercion")

	num, err := m.Substitute(map[string]complex128{"kappa": 4}).ToComplex()
	require.NoError(t, err, "bound matrix must coerce")
	v, err := num.At(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, -2, real(v), 1e-12, "-sqrt(4) must be -2")

	// the source matrix is untouched
	s, err := m.At(0, 0)
	require.NoError(t, err)
	_, ok := s.Eval()
	assert.False(t, ok, "substitution must not mutate the receiver")
}

// TestCDense_MulVec checks the product including the zero-column case.
func TestCDense_MulVec(t *testing.T) {
	m, err := qmat.NewCDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))
	require.NoError(t, m.Set(0, 1, complex(0, 1)))
	require.NoError(t, m.Set(1, 0, -1))
	require.NoError(t, m.Set(1, 1, 2))

	got, err := m.MulVec([]complex128{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []complex128{complex(1, 2), 3}, got, "2×2 product")

	_, err = m.MulVec([]complex128{1})
	assert.ErrorIs(t, err, qmat.ErrDimensionMismatch, "length mismatch must error")

	empty, err := qmat.NewCDense(3, 0)
	require.NoError(t, err)
	got, err = empty.MulVec(nil)
	require.NoError(t, err, "0-column product with the empty vector is legal")
	assert.Equal(t, []complex128{0, 0, 0}, got, "0-column product is the zero vector")
}

// TestCDense_ScaleAndEqual verifies scaling returns a fresh matrix.
func TestCDense_ScaleAndEqual(t *testing.T) {
	m, err := qmat.NewCDense(1, 1)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 4))

	half := m.Scale(0.5)
	v, err := half.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex128(2), v, "scaling by 0.5")

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, complex128(4), orig, "Scale must not mutate the receiver")
	assert.False(t, m.Equal(half, 1e-12), "scaled matrix must differ")
	assert.True(t, m.Equal(m.Clone(), 0), "clone must compare equal at zero tolerance")
}
