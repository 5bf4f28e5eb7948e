// SPDX-License-Identifier: MIT
package engine

import (
	"math"
	"math/cmplx"
	"sort"
)

// EvalC0 fills out with the three-point (triangle) integral.
//
// Covered families:
//   - vanishing external momenta, any masses (one-point reduction)
//   - massless internal lines with one or two off-shell legs
//     (infrared-divergent closed forms)
//   - massless internal lines with three spacelike off-shell legs
//     (finite, via the Φ⁽¹⁾ function of Usyukina and Davydychev)
//
// Anything else is reported on the warning unit and zeroed.
func (n *Native) EvalC0(out *Buffer, p1, p2, p3 float64, m1, m2, m3 complex128) {
	p1, p2, p3 = n.snap(p1), n.snap(p2), n.snap(p3)
	m1, m2, m3 = n.snapC(m1), n.snapC(m2), n.snapC(m3)

	if p1 == 0 && p2 == 0 && p3 == 0 {
		n.reduceZero(out, []complex128{m1, m2, m3})
		return
	}
	if m1 != 0 || m2 != 0 || m3 != 0 {
		n.unsupported(out, "C0", "massive internal lines with off-shell external legs")
		return
	}

	var s []float64
	for _, p := range [3]float64{p1, p2, p3} {
		if p != 0 {
			s = append(s, p)
		}
	}

	switch len(s) {
	case 1:
		L := logMinus(s[0], n.mu2)
		inv := complex(1/s[0], 0)
		out[2] = inv
		out[1] = -L * inv
		out[0] = L * L * inv / 2

	case 2:
		out[2] = 0
		L1 := logMinus(s[0], n.mu2)
		if s[0] == s[1] {
			out[1] = complex(-1/s[0], 0)
			out[0] = L1 / complex(s[0], 0)
		} else {
			L2 := logMinus(s[1], n.mu2)
			d := complex(s[0]-s[1], 0)
			out[1] = (L2 - L1) / d
			out[0] = (L1*L1 - L2*L2) / (2 * d)
		}

	default:
		if s[0] >= 0 || s[1] >= 0 || s[2] >= 0 {
			n.unsupported(out, "C0", "three off-shell legs with a timelike invariant")
			return
		}
		out[2], out[1] = 0, 0
		out[0] = c0ThreeMass(s[0], s[1], s[2])
	}
	n.checkFinite(out, "C0")
}

// c0ThreeMass evaluates the finite massless triangle with three
// spacelike invariants: C0 = Φ⁽¹⁾(s1/s3, s2/s3)/s3, with s3 the
// invariant of largest magnitude so the ratios stay in (0, 1].
func c0ThreeMass(sa, sb, sc float64) complex128 {
	s := []float64{sa, sb, sc}
	sort.Float64s(s) // all spacelike: s[0] has the largest magnitude
	s3 := s[0]
	return phi1(s[1]/s3, s[2]/s3) / complex(s3, 0)
}

// phi1 is the one-loop triangle function Φ⁽¹⁾(x, y).
func phi1(x, y float64) complex128 {
	cx, cy := complex(x, 0), complex(y, 0)
	lam := cmplx.Sqrt(complex((1-x-y)*(1-x-y)-4*x*y, 0))
	rho := 2 / (complex(1-x-y, 0) + lam)
	return (2*(li2(-rho*cx)+li2(-rho*cy)) +
		cmplx.Log(rho*cx)*cmplx.Log(rho*cy) +
		cmplx.Log(cy/cx)*cmplx.Log((1+rho*cy)/(1+rho*cx)) +
		complex(math.Pi*math.Pi/3, 0)) / lam
}
