// SPDX-License-Identifier: MIT
package engine

import (
	"math"
	"testing"
)

func TestLi2_SpecialValues(t *testing.T) {
	pi2 := math.Pi * math.Pi
	closeTo(t, complex(pi2/6, 0), li2(1), 0)
	closeTo(t, complex(-pi2/12, 0), li2(-1), 1e-15)
	closeTo(t, complex(pi2/12-math.Log(2)*math.Log(2)/2, 0), li2(0.5), 1e-15)
	closeTo(t, 0, li2(0), 0)
}

func TestLi2_Inversion(t *testing.T) {
	// Li₂(2) on the −i0 sheet: π²/4 + iπ·log 2 with log(−2) = log 2 − iπ.
	got := li2(2)
	closeTo(t, complex(math.Pi*math.Pi/4, math.Pi*math.Log(2)), got, 1e-14)
}

func TestLi2_SeriesConsistency(t *testing.T) {
	// Direct power series inside the disc, far from the rim.
	for _, z := range []complex128{
		complex(0.3, -0.4),
		complex(-0.25, 0.1),
		complex(0.45, 0),
	} {
		var direct, term complex128
		term = 1
		for k := 1; k <= 200; k++ {
			term *= z
			direct += term / complex(float64(k*k), 0)
		}
		closeTo(t, direct, li2(z), 1e-14)
	}
}

func TestLi2_LandenIdentity(t *testing.T) {
	// Li₂(z) + Li₂(z/(z−1)) = −log²(1−z)/2 for z off the cuts.
	for _, z := range []complex128{
		complex(0.3, -0.2),
		complex(-0.7, 0.4),
		complex(0.1, 0.9),
	} {
		l := clog(1 - z)
		lhs := li2(z) + li2(z/(z-1))
		closeTo(t, -l*l/2, lhs, 1e-13)
	}
}
