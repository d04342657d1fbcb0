// Package operator implements the small non-commutative operator algebra
// needed to derive semiclassical equations of motion: bosonic mode
// operators, trivial-space placeholder symbols, and their sums, products
// and scalar multiples.
//
// Algebra rules:
//
//   - Destroy(label) and Create(label) act on the local Hilbert-space
//     factor named by label. Operators on distinct labels commute.
//   - Within one label, a·a† rewrites to a†·a + 1 until every term is
//     normal ordered (all creations left of all annihilations).
//   - Symbol(name) lives on the trivial space and commutes with
//     everything; Adjoint toggles its dagger. Symbols stand in for noise
//     increments and external drive amplitudes during coefficient
//     extraction.
//
// Expand rewrites any expression into a canonical flat sum of
// scalar-times-term addends with merged like terms; SimplifyScalar
// canonicalizes every coefficient. Key returns the canonical signature of
// the non-scalar term part — two operators share a key exactly when the
// algebra considers them structurally identical after expansion, which
// makes keys usable as coefficient-map indices.
//
// All operators are immutable; every operation returns a fresh value.
package operator
