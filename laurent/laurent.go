package laurent

import (
	"fmt"
	"math/cmplx"
)

// Result is the truncated Laurent expansion of a one-loop integral in
// the dimensional-regularization parameter ε. The zero value is the
// expansion of zero.
type Result struct {
	c [3]complex128 // c[0]=ε⁰, c[1]=ε⁻¹, c[2]=ε⁻²
}

// New builds a Result from the finite part e0, the single-pole
// coefficient em1 and the double-pole coefficient em2.
func New(e0, em1, em2 complex128) Result {
	return Result{c: [3]complex128{e0, em1, em2}}
}

// Epsilon0 returns the finite (ε⁰) coefficient.
func (r Result) Epsilon0() complex128 { return r.c[0] }

// EpsilonMinus1 returns the single-pole (ε⁻¹) coefficient.
func (r Result) EpsilonMinus1() complex128 { return r.c[1] }

// EpsilonMinus2 returns the double-pole (ε⁻²) coefficient.
func (r Result) EpsilonMinus2() complex128 { return r.c[2] }

// IsFinite reports whether both pole coefficients vanish exactly,
// i.e. the integral is free of ultraviolet and infrared divergences.
func (r Result) IsFinite() bool {
	return r.c[1] == 0 && r.c[2] == 0
}

// IsValid reports whether every coefficient is a finite number
// (no NaN or Inf components).
func (r Result) IsValid() bool {
	for _, v := range r.c {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			return false
		}
	}
	return true
}

// Scale returns a new Result with every coefficient multiplied by f.
// The receiver is not modified.
func (r Result) Scale(f complex128) Result {
	return Result{c: [3]complex128{r.c[0] * f, r.c[1] * f, r.c[2] * f}}
}

// String renders the expansion coefficient-by-coefficient, finite
// part first.
func (r Result) String() string {
	return fmt.Sprintf("ε⁰: %v, ε⁻¹: %v, ε⁻²: %v", r.c[0], r.c[1], r.c[2])
}
