package kerr

import "errors"

// Sentinel errors for the kerr package; match with errors.Is. Context is
// added by wrapping at the failure site.
var (
	// ErrNilModel indicates a nil model was passed to the assembler.
	ErrNilModel = errors.New("kerr: model is nil")

	// ErrNoModes indicates the model's Hilbert space has no local
	// factors to enumerate.
	ErrNoModes = errors.New("kerr: model space has no modes")

	// ErrPortIndex indicates a dynamic-input port index outside 0..cdim-1.
	ErrPortIndex = errors.New("kerr: dynamic input port index out of range")

	// ErrNilMatrixSet indicates a nil matrix set was passed downstream.
	ErrNilMatrixSet = errors.New("kerr: matrix set is nil")

	// ErrMissingInputFn indicates PrepareSDE was given no input function
	// although the model carries dynamic inputs.
	ErrMissingInputFn = errors.New("kerr: input function required when dynamic inputs exist")

	// ErrStateLength indicates a drift evaluation with a state vector
	// whose length differs from the number of modes.
	ErrStateLength = errors.New("kerr: state vector length must equal the number of modes")

	// ErrInputLength indicates the input function returned a vector whose
	// length differs from the number of dynamic inputs.
	ErrInputLength = errors.New("kerr: input vector length must equal the number of dynamic inputs")
)
