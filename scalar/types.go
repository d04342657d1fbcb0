package scalar

import (
	"math/cmplx"
	"strconv"
)

// Scalar is a commutative symbolic value over complex128 with named free
// parameters. Implementations are immutable and safe for concurrent use.
type Scalar interface {
	// Simplify returns the canonical sum-of-monomials form.
	Simplify() Scalar

	// Expand distributes products over sums. The canonical form is fully
	// expanded, so Expand and Simplify coincide; both are kept as
	// explicit entry points.
	Expand() Scalar

	// Substitute binds free symbols by name to numeric values and
	// re-canonicalizes. Unbound symbols survive untouched.
	Substitute(params map[string]complex128) Scalar

	// Eval attempts numeric coercion. ok is false whenever a free symbol
	// remains anywhere in the expression.
	Eval() (v complex128, ok bool)

	// Conj returns the complex conjugate. Symbols are real by convention
	// and left fixed.
	Conj() Scalar

	// Equal reports structural equality of canonical forms.
	Equal(other Scalar) bool

	// String renders the expression; canonical forms render
	// deterministically.
	String() string

	isScalar()
}

// Const is a complex numeric literal.
type Const struct{ v complex128 }

// C wraps a complex128 as a Scalar.
func C(v complex128) *Const { return &Const{v: v} }

// Real wraps a float64 as a real-valued Scalar.
func Real(v float64) *Const { return &Const{v: complex(v, 0)} }

// Zero returns the additive identity.
func Zero() *Const { return &Const{} }

// One returns the multiplicative identity.
func One() *Const { return &Const{v: 1} }

// I returns the imaginary unit.
func I() *Const { return &Const{v: complex(0, 1)} }

// Value returns the wrapped complex number.
func (c *Const) Value() complex128 { return c.v }

// IsZero reports whether the constant is exactly zero.
func (c *Const) IsZero() bool { return c.v == 0 }

func (c *Const) Simplify() Scalar                              { return c }
func (c *Const) Expand() Scalar                                { return c }
func (c *Const) Substitute(map[string]complex128) Scalar       { return c }
func (c *Const) Eval() (complex128, bool)                      { return c.v, true }
func (c *Const) Conj() Scalar                                  { return &Const{v: cmplx.Conj(c.v)} }
func (c *Const) Equal(other Scalar) bool                       { return equalCanonical(c, other) }
func (c *Const) String() string                                { return formatComplex(c.v) }
func (c *Const) isScalar()                                     {}

// Symbol is a named free parameter, real-valued by convention.
type Symbol struct{ name string }

// Sym creates a named symbolic parameter.
func Sym(name string) *Symbol { return &Symbol{name: name} }

// Name returns the symbol's name.
func (s *Symbol) Name() string { return s.name }

func (s *Symbol) Simplify() Scalar { return s }
func (s *Symbol) Expand() Scalar   { return s }

func (s *Symbol) Substitute(params map[string]complex128) Scalar {
	if v, ok := params[s.name]; ok {
		return C(v)
	}

	return s
}

func (s *Symbol) Eval() (complex128, bool) { return 0, false }
func (s *Symbol) Conj() Scalar             { return s }
func (s *Symbol) Equal(other Scalar) bool  { return equalCanonical(s, other) }
func (s *Symbol) String() string           { return s.name }
func (s *Symbol) isScalar()                {}

// formatComplex renders a complex number compactly: pure reals drop the
// imaginary part, pure imaginaries drop the real part.
func formatComplex(v complex128) string {
	re, im := real(v), imag(v)
	switch {
	case im == 0:
		return strconv.FormatFloat(re, 'g', -1, 64)
	case re == 0:
		return strconv.FormatFloat(im, 'g', -1, 64) + "i"
	default:
		return strconv.FormatComplex(v, 'g', -1, 128)
	}
}
