// SPDX-License-Identifier: MIT
package engine

import (
	"math"
	"math/cmplx"
)

// EvalB0 fills out with the two-point (bubble) integral.
//
// The pole part of a non-scaleless bubble is exactly 1/ε. The finite
// part is −∫₀¹ log((f(x) − i0)/μ²) dx with
//
//	f(x) = p·x² − (p + m1 − m2)·x + m1,
//
// evaluated in closed form for real masses and by composite
// Gauss–Legendre quadrature for complex ones. Vanishing momentum
// reduces to the one-point divided difference; see reduce.go.
func (n *Native) EvalB0(out *Buffer, p float64, m1, m2 complex128) {
	p = n.snap(p)
	m1, m2 = n.snapC(m1), n.snapC(m2)

	if p == 0 {
		n.reduceZero(out, []complex128{m1, m2})
		return
	}

	out[2] = 0
	out[1] = 1
	if imag(m1) == 0 && imag(m2) == 0 {
		out[0] = n.b0Closed(p, real(m1), real(m2))
	} else {
		out[0] = n.b0Quad(p, m1, m2)
	}
	n.checkFinite(out, "B0")
}

// gLog is the primitive piece of ∫₀¹ log|x − r| dx for a real root r,
// with the 0·log 0 limits taken.
func gLog(r float64) float64 {
	v := -1.0
	if r != 1 {
		v += (1 - r) * math.Log(math.Abs(1-r))
	}
	if r != 0 {
		v += r * math.Log(math.Abs(r))
	}
	return v
}

// gLogC is the same primitive for one member of a conjugate root pair.
func gLogC(r complex128) complex128 {
	return (1-r)*cmplx.Log(1-r) + r*cmplx.Log(-r) - 1
}

// b0Closed evaluates the finite part for real squared masses by
// factoring f over its roots. The imaginary part comes from the
// Lebesgue measure of {x ∈ [0,1] : f(x) < 0}, where the −i0
// prescription assigns log(f − i0) = log|f| − iπ.
func (n *Native) b0Closed(p, m1, m2 float64) complex128 {
	a := p
	b := -(p + m1 - m2)
	c := m1
	disc := b*b - 4*a*c

	var val, neg float64
	if disc >= 0 {
		sq := math.Sqrt(disc)
		x1 := (-b - sq) / (2 * a)
		x2 := (-b + sq) / (2 * a)
		lo, hi := math.Min(x1, x2), math.Max(x1, x2)
		val = math.Log(math.Abs(a)) + gLog(x1) + gLog(x2)
		if a > 0 {
			neg = math.Max(0, math.Min(1, hi)-math.Max(0, lo))
		} else {
			neg = math.Max(0, math.Min(1, lo)) + math.Max(0, 1-math.Max(0, hi))
		}
	} else {
		r := complex(-b/(2*a), math.Sqrt(-disc)/(2*a))
		val = math.Log(math.Abs(a)) + 2*real(gLogC(r))
		if a < 0 {
			neg = 1
		}
	}
	return complex(math.Log(n.mu2)-val, math.Pi*neg)
}

// b0QuadPanels is the number of composite panels for the 16-point
// Gauss–Legendre rule. The grid resolves the Feynman-parameter
// logarithm to better than 1e−12 for masses whose imaginary parts
// keep f away from the cut.
const b0QuadPanels = 16

// b0Quad evaluates the finite part for complex squared masses by
// composite quadrature of the parameter integral.
func (n *Native) b0Quad(p float64, m1, m2 complex128) complex128 {
	xs, ws := legendre16()
	pc := complex(p, 0)
	bc := -(pc + m1 - m2)
	mu2 := complex(n.mu2, 0)

	var total complex128
	const h = 1.0 / b0QuadPanels
	for q := 0; q < b0QuadPanels; q++ {
		lo := float64(q) * h
		for i, x := range xs {
			t := complex(lo+h*0.5*(x+1), 0)
			f := (pc*t+bc)*t + m1
			total += complex(ws[i]*h*0.5, 0) * clog(f/mu2)
		}
	}
	return -total
}
