package kerr

import (
	"math/cmplx"

	"github.com/quantaflow/qsde/operator"
	"github.com/quantaflow/qsde/scalar"
)

// CoeffOptions configures Coeffs.
//
// Fields:
//   - Expand  — rewrite the expression into its expanded canonical sum
//     before decomposition. Needed when the input is still factored:
//     structurally hidden terms never match.
//   - Epsilon — for Epsilon > 0, drop addends whose coefficient coerces
//     to a complex number of magnitude strictly below Epsilon.
//     Truncation is numeric-only: a symbolic coefficient that resists
//     coercion is always kept.
type CoeffOptions struct {
	Expand  bool
	Epsilon float64
}

// CoeffMap is the sparse term→coefficient decomposition of an operator
// sum, keyed by canonical term signatures. Absent terms map to the
// additive identity.
type CoeffMap map[string]scalar.Scalar

// Get returns the coefficient of term, or the additive identity when the
// term is absent.
func (m CoeffMap) Get(term operator.Operator) scalar.Scalar {
	if c, ok := m[term.Key()]; ok {
		return c
	}

	return scalar.Zero()
}

// Coeffs decomposes expr, understood as a sum of scalar-times-term
// addends, into a CoeffMap. Repeated terms accumulate additively; a bare
// addend carries coefficient 1.
func Coeffs(expr operator.Operator, opts CoeffOptions) CoeffMap {
	if opts.Expand {
		expr = expr.Expand()
	}
	out := make(CoeffMap)
	for _, addend := range operator.Terms(expr) {
		c, term := operator.SplitScalar(addend)
		if opts.Epsilon > 0 {
			if v, ok := c.Eval(); ok && cmplx.Abs(v) < opts.Epsilon {
				continue
			}
		}
		key := term.Key()
		if prev, ok := out[key]; ok {
			out[key] = scalar.Add(prev, c)
		} else {
			out[key] = c
		}
	}

	return out
}
