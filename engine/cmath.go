// SPDX-License-Identifier: MIT
package engine

import (
	"math"
	"math/cmplx"
)

// clog is the logarithm on the sheet induced by the Feynman −i0
// prescription: a real negative argument is reached from below the
// cut, so clog(x) for x < 0 carries −iπ. cmplx.Log cuts along the
// same axis but maps the cut itself to +iπ; only that rim differs.
func clog(z complex128) complex128 {
	if imag(z) == 0 && real(z) < 0 {
		return complex(math.Log(-real(z)), -math.Pi)
	}
	return cmplx.Log(z)
}

// logMinus computes log((−s − i0)/μ²) for a real invariant s:
// log(s/μ²) − iπ in the timelike region s > 0, real otherwise.
func logMinus(s, mu2 float64) complex128 {
	if s > 0 {
		return complex(math.Log(s/mu2), -math.Pi)
	}
	return complex(math.Log(-s/mu2), 0)
}
