package scalar

import (
	"math/cmplx"
	"strconv"
	"strings"
)

// Add returns the canonical sum of the given terms.
func Add(terms ...Scalar) Scalar { return canonical(&sum{terms: terms}) }

// Mul returns the canonical product of the given factors.
func Mul(factors ...Scalar) Scalar { return canonical(&prod{factors: factors}) }

// Pow raises base to a real exponent and canonicalizes.
func Pow(base Scalar, exp float64) Scalar { return canonical(&pow{base: base, exp: exp}) }

// Sqrt is Pow(s, 0.5).
func Sqrt(s Scalar) Scalar { return Pow(s, 0.5) }

// Scale multiplies s by a complex constant.
func Scale(s Scalar, z complex128) Scalar { return Mul(C(z), s) }

// Div divides s by a non-zero complex constant.
func Div(s Scalar, z complex128) Scalar { return Mul(C(1/z), s) }

// Neg negates s.
func Neg(s Scalar) Scalar { return Scale(s, -1) }

// Sub returns a − b in canonical form.
func Sub(a, b Scalar) Scalar { return Add(a, Neg(b)) }

// sum is an n-ary addition node.
type sum struct{ terms []Scalar }

func (s *sum) Simplify() Scalar { return canonical(s) }
func (s *sum) Expand() Scalar   { return canonical(s) }

func (s *sum) Substitute(params map[string]complex128) Scalar {
	next := make([]Scalar, len(s.terms))
	for i, t := range s.terms {
		next[i] = t.Substitute(params)
	}

	return Add(next...)
}

func (s *sum) Eval() (complex128, bool) {
	var acc complex128
	for _, t := range s.terms {
		v, ok := t.Eval()
		if !ok {
			return 0, false
		}
		acc += v
	}

	return acc, true
}

func (s *sum) Conj() Scalar            { return conjCanonical(s) }
func (s *sum) Equal(other Scalar) bool { return equalCanonical(s, other) }

func (s *sum) String() string {
	if len(s.terms) == 0 {
		return "0"
	}
	parts := make([]string, len(s.terms))
	for i, t := range s.terms {
		parts[i] = t.String()
	}

	return strings.Join(parts, " + ")
}

func (s *sum) isScalar() {}

// prod is an n-ary multiplication node.
type prod struct{ factors []Scalar }

func (p *prod) Simplify() Scalar { return canonical(p) }
func (p *prod) Expand() Scalar   { return canonical(p) }

func (p *prod) Substitute(params map[string]complex128) Scalar {
	next := make([]Scalar, len(p.factors))
	for i, f := range p.factors {
		next[i] = f.Substitute(params)
	}

	return Mul(next...)
}

func (p *prod) Eval() (complex128, bool) {
	acc := complex128(1)
	for _, f := range p.factors {
		v, ok := f.Eval()
		if !ok {
			return 0, false
		}
		acc *= v
	}

	return acc, true
}

func (p *prod) Conj() Scalar            { return conjCanonical(p) }
func (p *prod) Equal(other Scalar) bool { return equalCanonical(p, other) }

func (p *prod) String() string {
	if len(p.factors) == 0 {
		return "1"
	}
	parts := make([]string, len(p.factors))
	for i, f := range p.factors {
		if _, isSum := f.(*sum); isSum {
			parts[i] = "(" + f.String() + ")"
		} else {
			parts[i] = f.String()
		}
	}

	return strings.Join(parts, "*")
}

func (p *prod) isScalar() {}

// pow is base^exp with a real exponent.
type pow struct {
	base Scalar
	exp  float64
}

func (p *pow) Simplify() Scalar { return canonical(p) }
func (p *pow) Expand() Scalar   { return canonical(p) }

func (p *pow) Substitute(params map[string]complex128) Scalar {
	return Pow(p.base.Substitute(params), p.exp)
}

func (p *pow) Eval() (complex128, bool) {
	b, ok := p.base.Eval()
	if !ok {
		return 0, false
	}

	return cmplx.Pow(b, complex(p.exp, 0)), true
}

func (p *pow) Conj() Scalar            { return conjCanonical(p) }
func (p *pow) Equal(other Scalar) bool { return equalCanonical(p, other) }

func (p *pow) String() string {
	base := p.base.String()
	switch p.base.(type) {
	case *sum, *prod, *Const:
		base = "(" + base + ")"
	}

	return base + "^" + strconv.FormatFloat(p.exp, 'g', -1, 64)
}

func (p *pow) isScalar() {}
