// Package qsde turns symbolic open-quantum-system models — networks of
// Kerr-nonlinear cavities coupled through external field ports — into the
// numeric matrices that parameterize a semiclassical stochastic
// differential equation.
//
// 🚀 What is qsde?
//
//	A deterministic, pure-Go pipeline that brings together:
//		• Symbolic scalars: complex coefficient algebra with free parameters
//		• Operator algebra: creation/annihilation operators, normal ordering, adjoints
//		• SLH models: scattering matrix, coupling vector, Hamiltonian + Heisenberg e.o.m.
//		• Coefficient extraction: term→scalar maps from expanded operator sums
//		• Matrix assembly: the (A, B, C, D, A_kerr, B_input, D_input, u_c, U_c) set
//		• SDE preparation: drift/diffusion callables for any stochastic stepper
//
// ✨ Why choose qsde?
//
//   - Deterministic – canonical term ordering, no global state, reproducible matrices
//   - Explicit – sentinel errors, documented sign and normalization conventions
//   - Pure Go – no cgo, no external computer-algebra system
//   - Composable – every stage is a pure function over immutable inputs
//
// Under the hood, everything is organized under five subpackages:
//
//	scalar/   — commutative symbolic scalars over complex128
//	operator/ — non-commuting mode operators with normal-ordering expansion
//	qmat/     — dense symbolic and complex matrices
//	slh/      — the (S, L, H) model and its equations of motion
//	kerr/     — coefficient maps, model-matrix assembly, SDE functions
//
// The overall semiclassical SDE produced by kerr.PrepareSDE is
//
//	da_t/dt  = A·a_t − 2i·(A_kerr·(a_t ⊙ conj(a_t))) ⊙ a_t + u_c + B_input·u_t + B·dA_t/dt
//	dA'_t/dt = C·a_t + U_c + D_input·u_t + D·dA_t/dt
//
// where · is a matrix product and ⊙ an element-wise product. Dive into
// the package docs for conventions, and into kerr's example tests for an
// end-to-end driven Kerr cavity.
package qsde
