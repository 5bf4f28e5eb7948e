// Package laurent defines the result value of a scalar one-loop
// integral: the truncated Laurent expansion in the dimensional
// regularization parameter ε,
//
//	I = c₋₂/ε² + c₋₁/ε + c₀ + O(ε),
//
// carried as three complex double-precision coefficients.
//
// A Result is an immutable value. Construct one with New, read the
// coefficients with Epsilon0, EpsilonMinus1 and EpsilonMinus2, and
// rescale the whole expansion (for example into the Feynman
// normalization) with Scale.
//
// See the parent package for the evaluation calls that produce
// Results and for the normalization conventions.
package laurent
