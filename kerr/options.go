package kerr

import "go.uber.org/zap"

// Options configures model-matrix assembly.
//
// Fields:
//   - KerrDiagonalCorrection — marks the assembled set as expecting an
//     effective detuning of 2χ per Kerr cavity. The correction itself is
//     a caller-applied convention when constructing the simulation; the
//     assembler records the flag on the result and never folds it into A.
//   - Epsilon    — numeric truncation threshold handed to Coeffs; zero
//     retains every term including exact symbolic cancellations.
//   - ReturnEOMs — additionally carry the symbolic equations of motion
//     and the output-field expressions on the result.
//   - Logger     — receives informational assembly progress; nil means
//     silent. Diagnostics are not part of the contract.
type Options struct {
	KerrDiagonalCorrection bool
	Epsilon                float64
	ReturnEOMs             bool
	Logger                 *zap.Logger
}

// DefaultOptions returns the documented defaults: the Kerr diagonal
// correction convention enabled, no truncation, no equations of motion,
// silent logging.
func DefaultOptions() Options {
	return Options{
		KerrDiagonalCorrection: true,
		Epsilon:                0,
		ReturnEOMs:             false,
		Logger:                 zap.NewNop(),
	}
}
