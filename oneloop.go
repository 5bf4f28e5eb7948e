// SPDX-License-Identifier: MIT
package oneloop

import (
	"github.com/katalvlaran/oneloop/engine"
	"github.com/katalvlaran/oneloop/laurent"
)

// physMass moves a squared mass onto the physical sheet: the Feynman
// prescription wants Im(m²) ≤ 0, so a positive imaginary part flips.
func physMass(m complex128) complex128 {
	if imag(m) > 0 {
		return complex(real(m), -imag(m))
	}
	return m
}

// OnePoint evaluates the one-point (tadpole) integral A0 for the
// squared mass m.
func OnePoint(m complex128) laurent.Result {
	engineMu.Lock()
	defer engineMu.Unlock()
	var buf engine.Buffer
	bound.EvalA0(&buf, physMass(m))
	return laurent.New(buf[0], buf[1], buf[2])
}

// TwoPoint evaluates the two-point (bubble) integral B0 for the
// external invariant p and squared masses m1, m2.
func TwoPoint(p float64, m1, m2 complex128) laurent.Result {
	engineMu.Lock()
	defer engineMu.Unlock()
	var buf engine.Buffer
	bound.EvalB0(&buf, p, physMass(m1), physMass(m2))
	return laurent.New(buf[0], buf[1], buf[2])
}

// ThreePoint evaluates the three-point (triangle) integral C0 for the
// external invariants p1, p2, p3 and squared masses m1, m2, m3.
func ThreePoint(p1, p2, p3 float64, m1, m2, m3 complex128) laurent.Result {
	engineMu.Lock()
	defer engineMu.Unlock()
	var buf engine.Buffer
	bound.EvalC0(&buf, p1, p2, p3, physMass(m1), physMass(m2), physMass(m3))
	return laurent.New(buf[0], buf[1], buf[2])
}

// FourPoint evaluates the four-point (box) integral D0 for the
// external invariants p1..p4, the Mandelstam invariants p12 and p23,
// and squared masses m1..m4.
func FourPoint(p1, p2, p3, p4, p12, p23 float64, m1, m2, m3, m4 complex128) laurent.Result {
	engineMu.Lock()
	defer engineMu.Unlock()
	var buf engine.Buffer
	bound.EvalD0(&buf, p1, p2, p3, p4, p12, p23,
		physMass(m1), physMass(m2), physMass(m3), physMass(m4))
	return laurent.New(buf[0], buf[1], buf[2])
}
