package slh

import (
	"errors"
	"fmt"

	"github.com/quantaflow/qsde/operator"
	"github.com/quantaflow/qsde/qmat"
	"github.com/quantaflow/qsde/scalar"
)

// Sentinel errors for the slh package; match with errors.Is.
var (
	// ErrScatteringShape indicates S is not square or does not match the
	// coupling vector's port count.
	ErrScatteringShape = errors.New("slh: scattering matrix shape must be cdim×cdim")

	// ErrPortCount indicates a per-port vector (drives, noises) whose
	// length differs from the model's port count.
	ErrPortCount = errors.New("slh: per-port vector length must equal cdim")
)

// SLH is an immutable open-system model: scattering matrix S, coupling
// vector L and Hamiltonian H.
type SLH struct {
	s *qmat.Dense
	l []operator.Operator
	h operator.Operator
}

// New validates and builds an SLH triple. S must be cdim×cdim with
// cdim = len(l). Nil coupling rows and a nil Hamiltonian are treated as
// zero.
func New(s *qmat.Dense, l []operator.Operator, h operator.Operator) (*SLH, error) {
	if s == nil || s.Rows() != s.Cols() || s.Rows() != len(l) {
		return nil, fmt.Errorf("New: S is %s, cdim=%d: %w", shapeOf(s), len(l), ErrScatteringShape)
	}
	rows := make([]operator.Operator, len(l))
	for i, row := range l {
		if row == nil {
			row = operator.Zero()
		}
		rows[i] = row
	}
	if h == nil {
		h = operator.Zero()
	}

	return &SLH{s: s.Clone(), l: rows, h: h}, nil
}

func shapeOf(m *qmat.Dense) string {
	if m == nil {
		return "nil"
	}

	return fmt.Sprintf("%d×%d", m.Rows(), m.Cols())
}

// Cdim returns the number of external field ports.
func (m *SLH) Cdim() int { return len(m.l) }

// S returns a copy of the scattering matrix.
func (m *SLH) S() *qmat.Dense { return m.s.Clone() }

// L returns a copy of the coupling vector.
func (m *SLH) L() []operator.Operator {
	out := make([]operator.Operator, len(m.l))
	copy(out, m.l)

	return out
}

// H returns the Hamiltonian.
func (m *SLH) H() operator.Operator { return m.h }

// Space returns the composite Hilbert space spanned by H and L; its
// LocalFactors enumerate the model's modes in canonical order.
func (m *SLH) Space() operator.Space {
	sp := m.h.Space()
	for _, row := range m.l {
		sp = sp.Union(row.Space())
	}

	return sp
}

// entry reads S[j][k]; indices are in range by construction.
func (m *SLH) entry(j, k int) scalar.Scalar {
	s, _ := m.s.At(j, k)

	return s
}

// CoherentInput returns a new model with coherent drive amplitudes fed
// into the ports. drives must have length cdim; nil entries leave their
// port undriven. The scattering matrix is unchanged.
func (m *SLH) CoherentInput(drives []operator.Operator) (*SLH, error) {
	if len(drives) != m.Cdim() {
		return nil, fmt.Errorf("CoherentInput: len(drives)=%d, cdim=%d: %w", len(drives), m.Cdim(), ErrPortCount)
	}

	// sAlpha[j] = Σ_k S[j][k]·α_k over the driven ports.
	sAlpha := make([]operator.Operator, m.Cdim())
	for j := range sAlpha {
		var terms []operator.Operator
		for k, d := range drives {
			if d == nil {
				continue
			}
			terms = append(terms, operator.ScalarMul(m.entry(j, k), d))
		}
		if len(terms) == 0 {
			continue
		}
		sAlpha[j] = operator.Add(terms...)
	}

	newL := make([]operator.Operator, m.Cdim())
	hTerms := []operator.Operator{m.h}
	for j, row := range m.l {
		if sAlpha[j] == nil {
			newL[j] = row

			continue
		}
		newL[j] = operator.Add(row, sAlpha[j])
		disp := operator.Sub(
			operator.Mul(row.Adjoint(), sAlpha[j]),
			operator.Mul(sAlpha[j].Adjoint(), row),
		)
		// 1/(2i) = −i/2
		hTerms = append(hTerms, operator.ScalarMul(scalar.C(complex(0, -0.5)), disp))
	}

	return &SLH{s: m.s.Clone(), l: newL, h: operator.Add(hTerms...)}, nil
}

// HeisenbergEOM returns the symbolic time derivative of observable x:
//
//	i(Hx − xH) + Σ_j (L_j† x L_j − ½(L_j†L_j x + x L_j†L_j))
//	+ Σ_{j,k} conj(S_jk)·dA_k†·(x L_j − L_j x)
//	+ Σ_{j,k} (L_j† x − x L_j†)·S_jk·dA_k
//
// noises supplies one increment placeholder per port (nil entries are
// treated as zero). The result is unexpanded.
func (m *SLH) HeisenbergEOM(x operator.Operator, noises []operator.Operator) (operator.Operator, error) {
	if len(noises) != m.Cdim() {
		return nil, fmt.Errorf("HeisenbergEOM: len(noises)=%d, cdim=%d: %w", len(noises), m.Cdim(), ErrPortCount)
	}

	terms := []operator.Operator{
		operator.ScalarMul(scalar.I(), operator.Sub(operator.Mul(m.h, x), operator.Mul(x, m.h))),
	}

	for _, row := range m.l {
		rowAdj := row.Adjoint()
		terms = append(terms,
			operator.Mul(rowAdj, x, row),
			operator.ScalarMul(scalar.Real(-0.5), operator.Add(
				operator.Mul(rowAdj, row, x),
				operator.Mul(x, rowAdj, row),
			)),
		)
	}

	for j, row := range m.l {
		rowAdj := row.Adjoint()
		inComm := operator.Sub(operator.Mul(x, row), operator.Mul(row, x))
		outComm := operator.Sub(operator.Mul(rowAdj, x), operator.Mul(x, rowAdj))
		for k, dA := range noises {
			if dA == nil {
				continue
			}
			s := m.entry(j, k)
			terms = append(terms,
				operator.ScalarMul(s.Conj(), operator.Mul(dA.Adjoint(), inComm)),
				operator.ScalarMul(s, operator.Mul(outComm, dA)),
			)
		}
	}

	return operator.Add(terms...), nil
}

// OutputFields returns the output-port expressions dA'_j = Σ_k S_jk·dA_k + L_j,
// unexpanded.
func (m *SLH) OutputFields(noises []operator.Operator) ([]operator.Operator, error) {
	if len(noises) != m.Cdim() {
		return nil, fmt.Errorf("OutputFields: len(noises)=%d, cdim=%d: %w", len(noises), m.Cdim(), ErrPortCount)
	}
	out := make([]operator.Operator, m.Cdim())
	for j := range m.l {
		terms := make([]operator.Operator, 0, m.Cdim()+1)
		for k, dA := range noises {
			if dA == nil {
				continue
			}
			terms = append(terms, operator.ScalarMul(m.entry(j, k), dA))
		}
		terms = append(terms, m.l[j])
		out[j] = operator.Add(terms...)
	}

	return out, nil
}

// ExpandSimplify returns a model with H and every coupling row expanded
// and scalar-simplified, and S's entries canonicalized.
func (m *SLH) ExpandSimplify() *SLH {
	s, err := qmat.New(m.s.Rows(), m.s.Cols())
	if err != nil {
		// Shape was validated at construction.
		s = m.s.Clone()
	}
	for j := 0; j < m.s.Rows(); j++ {
		for k := 0; k < m.s.Cols(); k++ {
			_ = s.Set(j, k, m.entry(j, k).Simplify())
		}
	}
	l := make([]operator.Operator, len(m.l))
	for i, row := range m.l {
		l[i] = row.Expand().SimplifyScalar()
	}

	return &SLH{s: s, l: l, h: m.h.Expand().SimplifyScalar()}
}
