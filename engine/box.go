// SPDX-License-Identifier: MIT
package engine

import "math"

// EvalD0 fills out with the four-point (box) integral.
//
// Covered families:
//   - vanishing external invariants, any masses (one-point reduction)
//   - the massless on-shell box: p1 = p2 = p3 = p4 = 0, s = p12 and
//     t = p23 nonzero, all internal lines massless
//
// Anything else is reported on the warning unit and zeroed.
func (n *Native) EvalD0(out *Buffer, p1, p2, p3, p4, p12, p23 float64, m1, m2, m3, m4 complex128) {
	p1, p2, p3, p4 = n.snap(p1), n.snap(p2), n.snap(p3), n.snap(p4)
	p12, p23 = n.snap(p12), n.snap(p23)
	m1, m2 = n.snapC(m1), n.snapC(m2)
	m3, m4 = n.snapC(m3), n.snapC(m4)

	if p1 == 0 && p2 == 0 && p3 == 0 && p4 == 0 && p12 == 0 && p23 == 0 {
		n.reduceZero(out, []complex128{m1, m2, m3, m4})
		return
	}

	onshell := p1 == 0 && p2 == 0 && p3 == 0 && p4 == 0 && p12 != 0 && p23 != 0
	massless := m1 == 0 && m2 == 0 && m3 == 0 && m4 == 0
	if !onshell || !massless {
		n.unsupported(out, "D0", "only the massless on-shell box is covered")
		return
	}

	st := complex(p12*p23, 0)
	Ls := logMinus(p12, n.mu2)
	Lt := logMinus(p23, n.mu2)
	out[2] = 4 / st
	out[1] = -2 * (Ls + Lt) / st
	out[0] = (2*Ls*Lt - complex(math.Pi*math.Pi, 0)) / st
	n.checkFinite(out, "D0")
}
