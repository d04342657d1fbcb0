package kerr

import (
	"fmt"

	"github.com/quantaflow/qsde/qmat"
)

// InputFunc evaluates the deterministic drive amplitudes at time t. The
// returned vector must have one entry per dynamic input, in registry
// order.
type InputFunc func(t float64) []complex128

// DriftFunc evaluates the deterministic part of the semiclassical SDE
// at state a and time t.
type DriftFunc func(a []complex128, t float64) ([]complex128, error)

// DiffusionFunc evaluates the noise coupling at state a and time t. The
// returned matrix is shared across calls; treat it as read-only.
type DiffusionFunc func(a []complex128, t float64) *qmat.CDense

// PrepareSDE closes the numeric matrix set over inputFn and returns the
// drift and diffusion callables of the semiclassical SDE
//
//	drift(a, t) = A·a − 2i·(A_kerr·(conj(a) ⊙ a)) ⊙ a + u_c + B_input·u(t)
//	diff(a, t)  = B/2
//
// inputFn may be nil only when the set carries no dynamic inputs. The
// diffusion is state-independent; the same matrix is returned on every
// call. Both callables are safe for concurrent use across trajectories.
func PrepareSDE(m *NumericModelMatrixSet, inputFn InputFunc) (DriftFunc, DiffusionFunc, error) {
	if m == nil {
		return nil, nil, ErrNilMatrixSet
	}
	ncav := m.A.Rows()
	ninputs := m.BInput.Cols()
	if ninputs > 0 && inputFn == nil {
		return nil, nil, fmt.Errorf("PrepareSDE: %d dynamic inputs: %w", ninputs, ErrMissingInputFn)
	}

	uc := make([]complex128, ncav)
	for i := range uc {
		uc[i], _ = m.UConst.At(i, 0)
	}
	bHalf := m.B.Scale(0.5)

	drift := func(a []complex128, t float64) ([]complex128, error) {
		if len(a) != ncav {
			return nil, fmt.Errorf("drift: len(a)=%d, modes=%d: %w", len(a), ncav, ErrStateLength)
		}

		lin, err := m.A.MulVec(a)
		if err != nil {
			return nil, err
		}

		// Photon numbers |a_i|² feed the Kerr mixing matrix; the outer
		// product with the state stays element-wise.
		photon := make([]complex128, ncav)
		for i, ai := range a {
			photon[i] = complex(real(ai)*real(ai)+imag(ai)*imag(ai), 0)
		}
		kerrMix, err := m.AKerr.MulVec(photon)
		if err != nil {
			return nil, err
		}

		var drive []complex128
		if ninputs > 0 {
			u := inputFn(t)
			if len(u) != ninputs {
				return nil, fmt.Errorf("drift: len(u)=%d, inputs=%d: %w", len(u), ninputs, ErrInputLength)
			}
			if drive, err = m.BInput.MulVec(u); err != nil {
				return nil, err
			}
		}

		out := make([]complex128, ncav)
		for i := range out {
			out[i] = lin[i] - complex(0, 2)*kerrMix[i]*a[i] + uc[i]
			if drive != nil {
				out[i] += drive[i]
			}
		}

		return out, nil
	}

	diff := func(_ []complex128, _ float64) *qmat.CDense {
		return bHalf
	}

	return drift, diff, nil
}
