// SPDX-License-Identifier: MIT
package engine

import "io"

// Buffer receives the three Laurent coefficients of an evaluation:
// Buffer[0] is the ε⁰ (finite) part, Buffer[1] the ε⁻¹ coefficient,
// Buffer[2] the ε⁻² coefficient. The caller allocates it; an engine
// overwrites all three slots on every call.
type Buffer [3]complex128

// Precision identifies the floating-point width an engine computes in.
type Precision int

const (
	// Double is IEEE-754 binary64 arithmetic (complex128).
	Double Precision = iota
	// Extended marks engines computing in wider-than-double arithmetic
	// internally, even though results are delivered as complex128.
	Extended
)

// String returns the conventional name of the precision.
func (p Precision) String() string {
	switch p {
	case Double:
		return "double"
	case Extended:
		return "extended"
	default:
		return "unknown"
	}
}

// Unit classifies an engine diagnostic stream. The four classes form
// a severity ladder; routing UnitPrintAll routes every class at once.
type Unit int

const (
	// UnitPrintAll addresses all diagnostic classes together.
	UnitPrintAll Unit = iota
	// UnitMessage carries informational notes.
	UnitMessage
	// UnitWarning carries recoverable numerical or kinematic issues.
	UnitWarning
	// UnitError carries severe failures (the engine still returns).
	UnitError
)

// String returns the lower-case class name.
func (u Unit) String() string {
	switch u {
	case UnitPrintAll:
		return "printall"
	case UnitMessage:
		return "message"
	case UnitWarning:
		return "warning"
	case UnitError:
		return "error"
	default:
		return "unknown"
	}
}

// Engine is a numerical backend for the scalar one-loop integrals.
//
// Implementations need not be safe for concurrent use: the caller
// serializes configuration and evaluation. Evaluation methods always
// fill out; they never fail. Squared momenta are real invariants,
// squared masses are complex128 with Im ≤ 0.
type Engine interface {
	// Precision reports the arithmetic width of the backend.
	Precision() Precision

	// SetScale sets the renormalization scale μ (not μ²); mu > 0.
	SetScale(mu float64)

	// SetOnshellThreshold sets the magnitude below which input
	// invariants and mass components snap to exactly zero.
	SetOnshellThreshold(t float64)

	// SetUnit routes the given diagnostic class to w. A nil writer
	// silences the class.
	SetUnit(u Unit, w io.Writer)

	// EvalA0 fills out with the one-point (tadpole) integral of
	// squared mass m.
	EvalA0(out *Buffer, m complex128)

	// EvalB0 fills out with the two-point (bubble) integral of
	// external invariant p and squared masses m1, m2.
	EvalB0(out *Buffer, p float64, m1, m2 complex128)

	// EvalC0 fills out with the three-point (triangle) integral of
	// external invariants p1, p2, p3 and squared masses m1..m3.
	EvalC0(out *Buffer, p1, p2, p3 float64, m1, m2, m3 complex128)

	// EvalD0 fills out with the four-point (box) integral of external
	// invariants p1..p4, Mandelstam invariants p12, p23, and squared
	// masses m1..m4.
	EvalD0(out *Buffer, p1, p2, p3, p4, p12, p23 float64, m1, m2, m3, m4 complex128)
}
