package operator

import "github.com/quantaflow/qsde/scalar"

// Operator is a symbolic operator expression. Implementations are
// immutable and safe for concurrent use.
type Operator interface {
	// Space returns the composite Hilbert space the expression acts on.
	Space() Space

	// Adjoint returns the Hermitian conjugate: scalars are conjugated,
	// products reversed, creations and annihilations swapped.
	Adjoint() Operator

	// Expand rewrites the expression into a canonical flat sum of
	// scalar-times-term addends with every term normal ordered and like
	// terms merged.
	Expand() Operator

	// SimplifyScalar canonicalizes every scalar coefficient in place of
	// the expression tree without reordering operator factors.
	SimplifyScalar() Operator

	// Key is the canonical signature of the non-scalar term part, usable
	// as a coefficient-map index. The identity's key is "1".
	Key() string

	// String renders the expression for debugging.
	String() string

	isOperator()
}

// identity is the multiplicative identity operator.
type identity struct{}

// Identity is the identity operator; its coefficient in an equation of
// motion is the constant drift offset.
var Identity Operator = identity{}

func (identity) Space() Space              { return Trivial() }
func (identity) Adjoint() Operator         { return Identity }
func (identity) Expand() Operator          { return Identity }
func (identity) SimplifyScalar() Operator  { return Identity }
func (identity) Key() string               { return "1" }
func (identity) String() string            { return "1" }
func (identity) isOperator()               {}

// localOp is a single annihilation or creation operator on a local mode.
type localOp struct {
	label  string
	create bool
}

// Destroy returns the annihilation operator of the mode named label.
func Destroy(label string) Operator { return &localOp{label: label} }

// Create returns the creation operator of the mode named label.
func Create(label string) Operator { return &localOp{label: label, create: true} }

func (l *localOp) Space() Space { return Local(l.label) }

func (l *localOp) Adjoint() Operator { return &localOp{label: l.label, create: !l.create} }

func (l *localOp) Expand() Operator         { return l }
func (l *localOp) SimplifyScalar() Operator { return l }
func (l *localOp) Key() string              { return l.String() }

func (l *localOp) String() string {
	if l.create {
		return "a†(" + l.label + ")"
	}

	return "a(" + l.label + ")"
}

func (l *localOp) isOperator() {}

// opSymbol is a named placeholder operator on the trivial space. It
// commutes with every other operator; its adjoint carries a dagger mark.
type opSymbol struct {
	name   string
	dagger bool
}

// Symbol returns a trivial-space placeholder operator, e.g. a noise
// increment or an external drive amplitude.
func Symbol(name string) Operator { return &opSymbol{name: name} }

func (o *opSymbol) Space() Space { return Trivial() }

func (o *opSymbol) Adjoint() Operator { return &opSymbol{name: o.name, dagger: !o.dagger} }

func (o *opSymbol) Expand() Operator         { return o }
func (o *opSymbol) SimplifyScalar() Operator { return o }
func (o *opSymbol) Key() string              { return o.String() }

func (o *opSymbol) String() string {
	if o.dagger {
		return o.name + "†"
	}

	return o.name
}

func (o *opSymbol) isOperator() {}

// Zero returns the zero operator, represented as 0·1.
func Zero() Operator { return &scaled{c: scalar.Zero(), op: Identity} }
