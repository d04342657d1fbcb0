package kerr

import (
	"fmt"

	"github.com/quantaflow/qsde/qmat"
	"github.com/quantaflow/qsde/slh"
)

// NumericModelMatrixSet is the fully materialized counterpart of
// ModelMatrixSet: same shapes, complex128 entries, no free parameters.
// Treat all fields as read-only.
type NumericModelMatrixSet struct {
	A, B, C, D     *qmat.CDense
	AKerr          *qmat.CDense
	BInput, DInput *qmat.CDense
	UConst, UOut   *qmat.CDense

	Modes  []string
	Inputs []string

	KerrDiagonalCorrection bool
}

// ToComplex materializes the symbolic set into complex matrices. It
// fails with qmat.ErrSymbolicEntry, naming the matrix and cell, when a
// free parameter survives anywhere; substitute first in that case.
func (s *ModelMatrixSet) ToComplex() (*NumericModelMatrixSet, error) {
	if s == nil {
		return nil, ErrNilMatrixSet
	}
	out := &NumericModelMatrixSet{
		Modes:                  s.Modes,
		Inputs:                 s.Inputs,
		KerrDiagonalCorrection: s.KerrDiagonalCorrection,
	}
	for _, conv := range []struct {
		name string
		src  *qmat.Dense
		dst  **qmat.CDense
	}{
		{"A", s.A, &out.A},
		{"B", s.B, &out.B},
		{"C", s.C, &out.C},
		{"D", s.D, &out.D},
		{"A_kerr", s.AKerr, &out.AKerr},
		{"B_input", s.BInput, &out.BInput},
		{"D_input", s.DInput, &out.DInput},
		{"u_c", s.UConst, &out.UConst},
		{"U_c", s.UOut, &out.UOut},
	} {
		m, err := conv.src.ToComplex()
		if err != nil {
			return nil, fmt.Errorf("ToComplex: matrix %s: %w", conv.name, err)
		}
		*conv.dst = m
	}

	return out, nil
}

// SubstituteModelMatrices binds free parameters across every matrix of
// the set and returns a new symbolic set; unbound parameters survive.
// The mode and input registries are shared, not copied.
func SubstituteModelMatrices(s *ModelMatrixSet, params map[string]complex128) (*ModelMatrixSet, error) {
	if s == nil {
		return nil, ErrNilMatrixSet
	}

	return &ModelMatrixSet{
		A:                      s.A.Substitute(params),
		B:                      s.B.Substitute(params),
		C:                      s.C.Substitute(params),
		D:                      s.D.Substitute(params),
		AKerr:                  s.AKerr.Substitute(params),
		BInput:                 s.BInput.Substitute(params),
		DInput:                 s.DInput.Substitute(params),
		UConst:                 s.UConst.Substitute(params),
		UOut:                   s.UOut.Substitute(params),
		Modes:                  s.Modes,
		Inputs:                 s.Inputs,
		KerrDiagonalCorrection: s.KerrDiagonalCorrection,
		EOMs:                   s.EOMs,
		OutputFields:           s.OutputFields,
	}, nil
}

// ModelMatricesComplex assembles the model's matrix set, binds params,
// and materializes the result numerically in one step. It fails when any
// free parameter of the model is left unbound.
func ModelMatricesComplex(model *slh.SLH, dynamicInputPorts map[int]string, params map[string]complex128, opts Options) (*NumericModelMatrixSet, error) {
	set, err := ModelMatrices(model, dynamicInputPorts, opts)
	if err != nil {
		return nil, err
	}
	set, err = SubstituteModelMatrices(set, params)
	if err != nil {
		return nil, err
	}

	return set.ToComplex()
}
