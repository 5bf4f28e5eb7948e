// SPDX-License-Identifier: MIT
package engine

import (
	"math"
	"sync"
)

// 16-point Gauss–Legendre rule on [−1, 1], computed once by Newton
// iteration on the Legendre recurrence.
var (
	glOnce sync.Once
	glX    [16]float64
	glW    [16]float64
)

// legendreEval returns P_n(x) and P_n'(x) for n = 16.
func legendreEval(x float64) (p, dp float64) {
	const n = 16
	p0, p1 := 1.0, x
	for k := 2; k <= n; k++ {
		p0, p1 = p1, (float64(2*k-1)*x*p1-float64(k-1)*p0)/float64(k)
	}
	return p1, float64(n) * (x*p1 - p0) / (x*x - 1)
}

func legendre16() (*[16]float64, *[16]float64) {
	glOnce.Do(func() {
		const n = 16
		for i := 1; i <= n/2; i++ {
			// Chebyshev estimate, then Newton to machine precision.
			x := math.Cos(math.Pi * (float64(i) - 0.25) / (float64(n) + 0.5))
			for it := 0; it < 100; it++ {
				p, dp := legendreEval(x)
				dx := p / dp
				x -= dx
				if math.Abs(dx) < 1e-15 {
					break
				}
			}
			_, dp := legendreEval(x)
			w := 2 / ((1 - x*x) * dp * dp)
			glX[2*(i-1)], glX[2*(i-1)+1] = -x, x
			glW[2*(i-1)], glW[2*(i-1)+1] = w, w
		}
	})
	return &glX, &glW
}
