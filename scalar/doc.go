// Package scalar implements the commutative symbolic scalars that appear
// as coefficients in operator expressions: complex constants, named free
// parameters, and their sums, products and real powers.
//
// Conventions:
//
//   - Symbols denote real-valued physical parameters (decay rates,
//     detunings, Kerr strengths). Conjugation therefore fixes symbols and
//     conjugates only the numeric parts.
//   - Simplify reaches a canonical form: a sum of monomials, each a
//     complex coefficient times a sorted product of base^exponent
//     factors. Equal compares canonical forms; String renders them
//     deterministically, so equal scalars print identically.
//   - Eval attempts numeric coercion and reports ok=false whenever a free
//     symbol remains. Substitute binds symbols by name and re-canonicalizes.
//
// Powers carry float64 exponents so that Sqrt(κ)·Sqrt(κ) collapses to κ
// exactly (0.5+0.5 is exact in binary floating point). A power of a
// composite base distributes over a single monomial and is otherwise kept
// as an opaque factor.
//
// All values are immutable; every operation returns a fresh Scalar.
package scalar
