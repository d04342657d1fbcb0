package scalar_test

import (
	"testing"

	"github.com/quantaflow/qsde/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScalar_ConstArithmetic verifies exact constant folding through the
// canonical form.
func TestScalar_ConstArithmetic(t *testing.T) {
	got := scalar.Add(scalar.C(2), scalar.C(complex(0, 3)), scalar.C(-2))
	v, ok := got.Eval()
	require.True(t, ok, "pure constants must coerce numerically")
	assert.Equal(t, complex(0, 3), v, "2 + 3i - 2 must fold to 3i")
}

// TestScalar_LikeTermCollection ensures like symbolic terms merge and
// exact cancellations vanish.
func TestScalar_LikeTermCollection(t *testing.T) {
	k := scalar.Sym("kappa")

	sum := scalar.Add(k, k, scalar.Scale(k, -2))
	assert.True(t, sum.Equal(scalar.Zero()), "kappa + kappa - 2*kappa must cancel to zero")

	sum = scalar.Add(scalar.Scale(k, complex(0, 1)), scalar.Scale(k, complex(0, 1)))
	assert.True(t, sum.Equal(scalar.Scale(k, complex(0, 2))), "i*kappa + i*kappa must merge to 2i*kappa")
}

// TestScalar_SqrtProductCollapses checks that √κ·√κ collapses exactly to κ.
func TestScalar_SqrtProductCollapses(t *testing.T) {
	k := scalar.Sym("kappa")

	got := scalar.Mul(scalar.Sqrt(k), scalar.Sqrt(k))
	assert.True(t, got.Equal(k), "sqrt(kappa)*sqrt(kappa) must equal kappa")

	got = scalar.Mul(scalar.Sqrt(k), scalar.Pow(k, -0.5))
	assert.True(t, got.Equal(scalar.One()), "kappa^0.5 * kappa^-0.5 must equal one")
}

// TestScalar_ExpandDistributes verifies products distribute over sums.
func TestScalar_ExpandDistributes(t *testing.T) {
	a, b, c := scalar.Sym("a"), scalar.Sym("b"), scalar.Sym("c")

	lhs := scalar.Mul(a, scalar.Add(b, c)).Expand()
	rhs := scalar.Add(scalar.Mul(a, b), scalar.Mul(a, c))
	assert.True(t, lhs.Equal(rhs), "a*(b+c) must expand to a*b + a*c")
}

// TestScalar_SubstituteThenEval binds all symbols and coerces numerically.
func TestScalar_SubstituteThenEval(t *testing.T) {
	k, d := scalar.Sym("kappa"), scalar.Sym("Delta")

	// -kappa/2 - i*Delta
	expr := scalar.Add(scalar.Scale(k, -0.5), scalar.Scale(d, complex(0, -1)))

	_, ok := expr.Eval()
	assert.False(t, ok, "free symbols must block numeric coercion")

	bound := expr.Substitute(map[string]complex128{"kappa": 2, "Delta": 0.5})
	v, ok := bound.Eval()
	require.True(t, ok, "fully bound expression must coerce")
	assert.Equal(t, complex(-1, -0.5), v, "-kappa/2 - i*Delta at kappa=2, Delta=0.5")
}

// TestScalar_PartialSubstitution leaves unbound symbols symbolic.
func TestScalar_PartialSubstitution(t *testing.T) {
	k, d := scalar.Sym("kappa"), scalar.Sym("Delta")

	expr := scalar.Add(k, d)
	half := expr.Substitute(map[string]complex128{"kappa": 1})

	_, ok := half.Eval()
	assert.False(t, ok, "Delta is still free after binding kappa")
	assert.True(t, half.Equal(scalar.Add(scalar.One(), d)), "bound part must fold into the constant term")
}

// TestScalar_Conjugation fixes real symbols and conjugates numerics.
func TestScalar_Conjugation(t *testing.T) {
	d := scalar.Sym("Delta")

	expr := scalar.Scale(d, complex(0, -1)) // -i*Delta
	conj := expr.Conj()
	assert.True(t, conj.Equal(scalar.Scale(d, complex(0, 1))), "conj(-i*Delta) must be +i*Delta")

	v, ok := scalar.C(complex(1, 2)).Conj().Eval()
	require.True(t, ok)
	assert.Equal(t, complex(1, -2), v, "constant conjugation")
}

// TestScalar_CanonicalStringDeterminism renders equal values identically
// regardless of construction order.
func TestScalar_CanonicalStringDeterminism(t *testing.T) {
	a, b := scalar.Sym("alpha"), scalar.Sym("beta")

	lhs := scalar.Add(scalar.Mul(b, a), scalar.C(3)).Simplify()
	rhs := scalar.Add(scalar.C(3), scalar.Mul(a, b)).Simplify()
	assert.Equal(t, lhs.String(), rhs.String(), "canonical renderings must not depend on construction order")
}

// TestScalar_ZeroProduct annihilates any product touching zero.
func TestScalar_ZeroProduct(t *testing.T) {
	got := scalar.Mul(scalar.Sym("chi"), scalar.Zero(), scalar.Sym("kappa"))
	assert.True(t, got.Equal(scalar.Zero()), "product with zero must vanish")
}

// TestScalar_SqrtNumericEval evaluates a substituted square root.
func TestScalar_SqrtNumericEval(t *testing.T) {
	k := scalar.Sym("kappa")
	v, ok := scalar.Sqrt(k).Substitute(map[string]complex128{"kappa": 4}).Eval()
	require.True(t, ok, "bound sqrt must coerce")
	assert.InDelta(t, 2, real(v), 1e-12, "sqrt(4) real part")
	assert.InDelta(t, 0, imag(v), 1e-12, "sqrt(4) imaginary part")
}
