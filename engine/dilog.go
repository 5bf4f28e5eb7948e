// SPDX-License-Identifier: MIT
package engine

import "math"

// Bernoulli-series coefficients B₂ₖ/(2k+1)! for the accelerated
// dilogarithm expansion in u = −log(1−z). Eight terms hold double
// precision over the reduced domain |z| ≤ 1, Re(z) ≤ 1/2.
var li2Coeff = [8]float64{
	1.0 / 36,
	-1.0 / 3600,
	1.0 / 211680,
	-1.0 / 10886400,
	1.0 / 526901760,
	-691.0 / 16999766630400,
	7.0 / 7846046208000,
	-3617.0 / 181400588328960000,
}

const pi2over6 = math.Pi * math.Pi / 6

// li2 evaluates the dilogarithm Li₂(z) = −∫₀ᶻ log(1−t)/t dt on the
// branch induced by clog. Functional equations map the argument into
// the unit disc with Re(z) ≤ 1/2, where the Bernoulli series in
// u = −log(1−z) converges rapidly.
func li2(z complex128) complex128 {
	if z == 0 {
		return 0
	}
	if z == 1 {
		return complex(pi2over6, 0)
	}

	// Inversion: Li₂(z) = −Li₂(1/z) − π²/6 − log(−z)²/2 for |z| > 1.
	var shift complex128
	neg := false
	if az := real(z)*real(z) + imag(z)*imag(z); az > 1 {
		lmz := clog(-z)
		shift = -complex(pi2over6, 0) - lmz*lmz/2
		z = 1 / z
		neg = true
	}

	// Reflection: Li₂(z) = π²/6 − log(z)log(1−z) − Li₂(1−z).
	refl := false
	var rshift complex128
	if real(z) > 0.5 {
		rshift = complex(pi2over6, 0) - clog(z)*clog(1-z)
		z = 1 - z
		refl = true
	}

	u := -clog(1 - z)
	u2 := u * u
	sum := u - u2/4
	up := u * u2
	for _, c := range li2Coeff {
		sum += complex(c, 0) * up
		up *= u2
	}

	if refl {
		sum = rshift - sum
	}
	if neg {
		sum = shift - sum
	}
	return sum
}
