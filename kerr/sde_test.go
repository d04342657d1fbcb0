package kerr_test

import (
	"testing"

	"github.com/quantaflow/qsde/kerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drivenNumericSet materializes the one-port Kerr cavity with the given
// parameter bindings and one dynamic input on port 0.
func drivenNumericSet(t *testing.T, params map[string]complex128) *kerr.NumericModelMatrixSet {
	t.Helper()

	model := kerrCavity(t, "cavity")
	num, err := kerr.ModelMatricesComplex(model, map[int]string{0: "drive"}, params, kerr.DefaultOptions())
	require.NoError(t, err)

	return num
}

// assertVecInDelta compares complex vectors componentwise.
func assertVecInDelta(t *testing.T, want, got []complex128, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, real(want[i]), real(got[i]), tol, "Re component %d", i)
		assert.InDelta(t, imag(want[i]), imag(got[i]), tol, "Im component %d", i)
	}
}

// TestPrepareSDE_LinearReduction checks that with χ=0 the drift is the
// plain linear flow A·a + B_input·u.
func TestPrepareSDE_LinearReduction(t *testing.T) {
	num := drivenNumericSet(t, map[string]complex128{"kappa": 1, "Delta": 0.5, "chi": 0})

	drift, _, err := kerr.PrepareSDE(num, func(float64) []complex128 { return []complex128{0} })
	require.NoError(t, err)

	// A = −κ/2 − iΔ = −0.5 − 0.5i; at a = 2 the drift is −1 − i.
	out, err := drift([]complex128{2}, 0)
	require.NoError(t, err)
	assertVecInDelta(t, []complex128{complex(-1, -1)}, out, 1e-12)
}

// TestPrepareSDE_KerrDrift checks the nonlinear term
// −2i·(A_kerr·(conj(a)⊙a))⊙a against a hand-computed value.
func TestPrepareSDE_KerrDrift(t *testing.T) {
	num := drivenNumericSet(t, map[string]complex128{"kappa": 1, "Delta": 0, "chi": 0.5})

	drift, _, err := kerr.PrepareSDE(num, func(float64) []complex128 { return []complex128{0.25} })
	require.NoError(t, err)

	// At a = 1: linear −0.5, Kerr −2i·(0.5·1)·1 = −i, drive −√κ·0.25.
	out, err := drift([]complex128{1}, 0)
	require.NoError(t, err)
	assertVecInDelta(t, []complex128{complex(-0.75, -1)}, out, 1e-12)

	// The Kerr term scales with |a|²·a: at a = 2 it is −2i·(0.5·4)·2 = −8i.
	out, err = drift([]complex128{2}, 0)
	require.NoError(t, err)
	assertVecInDelta(t, []complex128{complex(-1.25, -8)}, out, 1e-12)
}

// TestPrepareSDE_DiffusionConstant verifies the noise coupling is B/2,
// shared and independent of state and time.
func TestPrepareSDE_DiffusionConstant(t *testing.T) {
	num := drivenNumericSet(t, map[string]complex128{"kappa": 4, "Delta": 1, "chi": 0.5})

	_, diff, err := kerr.PrepareSDE(num, func(float64) []complex128 { return []complex128{0} })
	require.NoError(t, err)

	first := diff([]complex128{1}, 0)
	second := diff([]complex128{complex(3, -2)}, 17.5)
	assert.Same(t, first, second, "the diffusion matrix is shared across calls")

	// B = −√κ = −2, so B/2 = −1.
	v, err := first.At(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, -1, real(v), 1e-12, "diffusion must be B/2")
	assert.InDelta(t, 0, imag(v), 1e-12)
}

// TestPrepareSDE_NoInputs allows a nil input function when the set
// carries no dynamic inputs.
func TestPrepareSDE_NoInputs(t *testing.T) {
	model := kerrCavity(t, "cavity")
	num, err := kerr.ModelMatricesComplex(model, nil,
		map[string]complex128{"kappa": 1, "Delta": 0, "chi": 0}, kerr.DefaultOptions())
	require.NoError(t, err)

	drift, _, err := kerr.PrepareSDE(num, nil)
	require.NoError(t, err, "no inputs, no input function needed")

	out, err := drift([]complex128{2}, 0)
	require.NoError(t, err)
	assertVecInDelta(t, []complex128{-1}, out, 1e-12)
}

// TestPrepareSDE_Validation covers the error paths.
func TestPrepareSDE_Validation(t *testing.T) {
	_, _, err := kerr.PrepareSDE(nil, nil)
	assert.ErrorIs(t, err, kerr.ErrNilMatrixSet)

	num := drivenNumericSet(t, map[string]complex128{"kappa": 1, "Delta": 0, "chi": 0})
	_, _, err = kerr.PrepareSDE(num, nil)
	assert.ErrorIs(t, err, kerr.ErrMissingInputFn, "dynamic inputs demand an input function")

	drift, _, err := kerr.PrepareSDE(num, func(float64) []complex128 { return []complex128{0} })
	require.NoError(t, err)
	_, err = drift([]complex128{1, 2}, 0)
	assert.ErrorIs(t, err, kerr.ErrStateLength, "two states for one mode")

	short, _, err := kerr.PrepareSDE(num, func(float64) []complex128 { return nil })
	require.NoError(t, err)
	_, err = short([]complex128{1}, 0)
	assert.ErrorIs(t, err, kerr.ErrInputLength, "the input function must honor the registry width")
}
