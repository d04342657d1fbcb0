// Package qmat provides the dense matrix types that carry assembled
// model coefficients: Dense holds symbolic scalar entries and supports
// parameter substitution; CDense holds complex128 entries and supports
// the vector algebra a stochastic stepper needs.
//
// Conventions:
//
//   - Row-major flat storage for cache locality and determinism.
//   - Shapes with zero rows or columns are legal: an empty dynamic-input
//     registry produces ncav×0 and cdim×0 coupling blocks whose
//     matrix-vector products contribute nothing.
//   - All user-triggered failures surface as package sentinel errors
//     matched via errors.Is; methods never panic on bad indices.
//   - ToComplex is the numeric-coercion boundary: it fails with
//     ErrSymbolicEntry while any free parameter survives in any entry.
package qmat
