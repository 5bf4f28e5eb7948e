// SPDX-License-Identifier: MIT
package engine

import "testing"

func BenchmarkEvalA0(b *testing.B) {
	e := NewNative()
	var out Buffer
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.EvalA0(&out, complex(0.5, -0.01))
	}
}

func BenchmarkEvalB0_Closed(b *testing.B) {
	e := NewNative()
	var out Buffer
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.EvalB0(&out, 1.0, 0.5, 0.2)
	}
}

func BenchmarkEvalB0_Quadrature(b *testing.B) {
	e := NewNative()
	var out Buffer
	legendre16() // rule setup out of the loop
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.EvalB0(&out, 1.0, complex(0.5, -0.05), complex(0.2, -0.02))
	}
}

func BenchmarkEvalC0_ThreeMass(b *testing.B) {
	e := NewNative()
	var out Buffer
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.EvalC0(&out, -1, -1, -9, 0, 0, 0)
	}
}

func BenchmarkEvalD0_MasslessBox(b *testing.B) {
	e := NewNative()
	var out Buffer
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.EvalD0(&out, 0, 0, 0, 0, -1, -4, 0, 0, 0, 0)
	}
}
