// Package slh models an open quantum-optical system as an SLH triple:
// a port×port scattering matrix S with scalar entries, a coupling vector
// L of operators (one row per port), and a Hamiltonian H.
//
// The package exposes exactly the operations downstream matrix assembly
// consumes:
//
//   - CoherentInput feeds drive amplitudes into the ports via the series
//     product with a displacement: L ← L + S·α and
//     H ← H + (L†·S·α − (S·α)†·L)/(2i), with S unchanged.
//   - HeisenbergEOM produces the symbolic time derivative of an
//     observable under the model's dynamics, including the noise rows
//     driven by per-port increment placeholders.
//   - OutputFields produces the output-port expressions S·dA + L.
//   - ExpandSimplify canonicalizes H, every L row, and S's entries.
//
// Results are returned unexpanded unless stated; callers expand and
// simplify before extracting coefficients, because term matching is by
// exact structural identity.
//
// The scattering matrix is scalar-valued here, so the trace correction
// for operator-valued scattering never applies and is omitted.
package slh
