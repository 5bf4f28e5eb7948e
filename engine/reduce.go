// SPDX-License-Identifier: MIT
package engine

import "sort"

// At vanishing external momenta every n-point scalar integral
// collapses to a confluent divided difference of the one-point
// integral over the internal squared masses:
//
//	I_n(0, …, 0; m₁, …, mₙ) = A0[m₁, …, mₙ],
//
// where repeated nodes invoke derivatives of A0. A vanishing mass is
// a scaleless node: all of its confluent derivatives are zero in
// dimensional regularization.

// reduceZero fills out with the zero-momentum n-point integral over
// the given squared masses. masses must be pre-snapped.
func (n *Native) reduceZero(out *Buffer, masses []complex128) {
	allZero := true
	for _, m := range masses {
		if m != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		*out = Buffer{} // scaleless
		return
	}

	// Confluence needs equal nodes adjacent.
	nodes := append([]complex128(nil), masses...)
	sort.Slice(nodes, func(i, j int) bool {
		if real(nodes[i]) != real(nodes[j]) {
			return real(nodes[i]) < real(nodes[j])
		}
		return imag(nodes[i]) < imag(nodes[j])
	})

	out[2] = 0
	out[1] = divdiff(nodes, poleDeriv)
	out[0] = divdiff(nodes, n.finiteDeriv)
}

// divdiff builds the confluent Newton divided-difference table over
// nodes (equal nodes adjacent) and returns the top-order entry.
// deriv(z, k) must return f⁽ᵏ⁾(z)/k!.
func divdiff(nodes []complex128, deriv func(z complex128, k int) complex128) complex128 {
	var tab [4][4]complex128
	m := len(nodes)
	for i := 0; i < m; i++ {
		tab[i][0] = deriv(nodes[i], 0)
	}
	for j := 1; j < m; j++ {
		for i := 0; i+j < m; i++ {
			if nodes[i+j] == nodes[i] {
				tab[i][j] = deriv(nodes[i], j)
			} else {
				tab[i][j] = (tab[i+1][j-1] - tab[i][j-1]) / (nodes[i+j] - nodes[i])
			}
		}
	}
	return tab[0][m-1]
}

// poleDeriv is the ε⁻¹ part of A0, m/ε, as a confluent node function.
func poleDeriv(z complex128, k int) complex128 {
	if z == 0 {
		return 0 // scaleless node
	}
	switch k {
	case 0:
		return z
	case 1:
		return 1
	default:
		return 0
	}
}

// finiteDeriv is the finite part of A0, m(1 − log(m/μ²)), and its
// scaled derivatives up to the order a four-point reduction needs.
func (n *Native) finiteDeriv(z complex128, k int) complex128 {
	if z == 0 {
		return 0 // scaleless node
	}
	mu2 := complex(n.mu2, 0)
	switch k {
	case 0:
		return z * (1 - clog(z/mu2))
	case 1:
		return -clog(z / mu2)
	case 2:
		return -1 / (2 * z)
	default:
		return 1 / (6 * z * z)
	}
}
