package operator

import (
	"strings"

	"github.com/quantaflow/qsde/scalar"
)

// sumOp is an n-ary operator sum.
type sumOp struct{ terms []Operator }

// Add returns the sum of the given operators, flattening nested sums.
// No reordering or merging happens here; Expand canonicalizes.
func Add(terms ...Operator) Operator {
	flat := make([]Operator, 0, len(terms))
	for _, t := range terms {
		if inner, ok := t.(*sumOp); ok {
			flat = append(flat, inner.terms...)
		} else {
			flat = append(flat, t)
		}
	}
	if len(flat) == 1 {
		return flat[0]
	}

	return &sumOp{terms: flat}
}

// Sub returns a − b.
func Sub(a, b Operator) Operator { return Add(a, ScalarMul(scalar.C(-1), b)) }

// Terms decomposes an operator understood as a sum into its addends.
// A non-sum operator is a single addend.
func Terms(op Operator) []Operator {
	if s, ok := op.(*sumOp); ok {
		out := make([]Operator, len(s.terms))
		copy(out, s.terms)

		return out
	}

	return []Operator{op}
}

func (s *sumOp) Space() Space {
	sp := Trivial()
	for _, t := range s.terms {
		sp = sp.Union(t.Space())
	}

	return sp
}

func (s *sumOp) Adjoint() Operator {
	adj := make([]Operator, len(s.terms))
	for i, t := range s.terms {
		adj[i] = t.Adjoint()
	}

	return Add(adj...)
}

func (s *sumOp) Expand() Operator { return expand(s) }

func (s *sumOp) SimplifyScalar() Operator {
	next := make([]Operator, len(s.terms))
	for i, t := range s.terms {
		next[i] = t.SimplifyScalar()
	}

	return Add(next...)
}

func (s *sumOp) Key() string { return keyOf(s) }

func (s *sumOp) String() string {
	if len(s.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(s.terms))
	for i, t := range s.terms {
		parts[i] = t.String()
	}

	return strings.Join(parts, " + ")
}

func (s *sumOp) isOperator() {}

// productOp is an n-ary operator product. Factor order is significant
// until Expand normal-orders it.
type productOp struct{ factors []Operator }

// Mul returns the product of the given operators, flattening nested
// products and hoisting scalar prefactors.
func Mul(factors ...Operator) Operator {
	coeff := scalar.Scalar(scalar.One())
	flat := make([]Operator, 0, len(factors))
	for _, f := range factors {
		if sc, ok := f.(*scaled); ok {
			coeff = scalar.Mul(coeff, sc.c)
			f = sc.op
		}
		switch v := f.(type) {
		case identity:
			// multiplicative identity drops out
		case *productOp:
			flat = append(flat, v.factors...)
		default:
			flat = append(flat, f)
		}
	}
	var out Operator
	switch len(flat) {
	case 0:
		out = Identity
	case 1:
		out = flat[0]
	default:
		out = &productOp{factors: flat}
	}

	return ScalarMul(coeff, out)
}

func (p *productOp) Space() Space {
	sp := Trivial()
	for _, f := range p.factors {
		sp = sp.Union(f.Space())
	}

	return sp
}

func (p *productOp) Adjoint() Operator {
	adj := make([]Operator, len(p.factors))
	for i, f := range p.factors {
		adj[len(p.factors)-1-i] = f.Adjoint()
	}

	return Mul(adj...)
}

func (p *productOp) Expand() Operator { return expand(p) }

func (p *productOp) SimplifyScalar() Operator {
	next := make([]Operator, len(p.factors))
	for i, f := range p.factors {
		next[i] = f.SimplifyScalar()
	}

	return Mul(next...)
}

func (p *productOp) Key() string { return keyOf(p) }

func (p *productOp) String() string {
	if len(p.factors) == 0 {
		return "1"
	}
	parts := make([]string, len(p.factors))
	for i, f := range p.factors {
		if _, isSum := f.(*sumOp); isSum {
			parts[i] = "(" + f.String() + ")"
		} else {
			parts[i] = f.String()
		}
	}

	return strings.Join(parts, "*")
}

func (p *productOp) isOperator() {}

// scaled is a scalar coefficient multiplying a non-scalar term.
type scaled struct {
	c  scalar.Scalar
	op Operator
}

// ScalarMul multiplies an operator by a scalar coefficient, merging
// nested coefficients. A multiplicative-identity coefficient is elided.
func ScalarMul(c scalar.Scalar, op Operator) Operator {
	if inner, ok := op.(*scaled); ok {
		c = scalar.Mul(c, inner.c)
		op = inner.op
	}
	if cc, ok := c.(*scalar.Const); ok && cc.Value() == 1 {
		return op
	}

	return &scaled{c: c, op: op}
}

// SplitScalar classifies an addend into (coefficient, term). A bare term
// is treated as carrying coefficient 1.
func SplitScalar(op Operator) (scalar.Scalar, Operator) {
	if sc, ok := op.(*scaled); ok {
		return sc.c, sc.op
	}

	return scalar.One(), op
}

func (sc *scaled) Space() Space { return sc.op.Space() }

func (sc *scaled) Adjoint() Operator { return ScalarMul(sc.c.Conj(), sc.op.Adjoint()) }

func (sc *scaled) Expand() Operator { return expand(sc) }

func (sc *scaled) SimplifyScalar() Operator {
	return ScalarMul(sc.c.Simplify(), sc.op.SimplifyScalar())
}

func (sc *scaled) Key() string { return sc.op.Key() }

func (sc *scaled) String() string {
	cs := sc.c.String()
	if strings.Contains(cs, " + ") || strings.Contains(cs, "*") {
		cs = "(" + cs + ")"
	}
	if sc.op == Identity {
		return cs
	}

	return cs + "*" + sc.op.String()
}

func (sc *scaled) isOperator() {}
