// Package kerr assembles the structured matrices that parameterize a
// semiclassical simulation of an SLH model whose only nonlinearities are
// Kerr-type (self coupling H = χ·a†a†aa or cross coupling H = χ·a†a·b†b).
//
// The pipeline:
//
//  1. Coeffs decomposes an expanded operator sum into a term→coefficient
//     map with a zero default and optional numeric truncation.
//  2. ModelMatrices injects named drive amplitudes into the model's
//     ports, derives each mode's Heisenberg equation of motion, and pulls
//     the coefficients of known term shapes into the matrix set
//     (A, B, C, D, A_kerr, B_input, D_input, u_c, U_c).
//  3. ToComplex / SubstituteModelMatrices materialize the symbolic set
//     into complex numeric matrices.
//  4. PrepareSDE closes the numeric set over a deterministic input
//     function and yields the drift and diffusion callables a stochastic
//     stepper consumes.
//
// The overall SDE is
//
//	da_t/dt  = A·a_t − 2i·(A_kerr·(conj(a_t) ⊙ a_t)) ⊙ a_t + u_c + B_input·u_t + B·dA_t/dt
//	dA'_t/dt = C·a_t + U_c + D_input·u_t + D·dA_t/dt
//
// where · is a matrix product and ⊙ an element-wise product. The mix of
// the two in the Kerr term is load-bearing; collapsing it into a single
// matrix product changes the physics.
//
// Sign and normalization conventions follow the coupling convention of
// the slh package: a passive cavity with decay κ and detuning Δ yields
// A = [[−κ/2 − iΔ]] and B = [[−√κ]], and the Kerr strength is the
// coefficient of a†(col)·a(col)·a(row) divided by −2i.
//
// Everything here is a pure function over immutable inputs; the returned
// matrix sets and callables are safe to share across concurrent
// simulation trajectories as long as callers treat them as read-only.
package kerr
