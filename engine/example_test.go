// SPDX-License-Identifier: MIT
package engine_test

import (
	"fmt"
	"os"

	"github.com/katalvlaran/oneloop/engine"
)

// ExampleNative_EvalB0 evaluates a massive bubble at its default
// configuration (μ = 1, threshold 1e−12).
func ExampleNative_EvalB0() {
	e := engine.NewNative()

	var out engine.Buffer
	e.EvalB0(&out, 0, 0.25, 0.25)
	fmt.Printf("ε⁻¹ = %.0f, ε⁰ = %.6f\n", real(out[1]), real(out[0]))
	// Output:
	// ε⁻¹ = 1, ε⁰ = 1.386294
}

// ExampleNative_SetUnit routes engine warnings to a chosen stream.
func ExampleNative_SetUnit() {
	e := engine.NewNative()
	e.SetUnit(engine.UnitWarning, os.Stdout)
	e.SetUnit(engine.UnitWarning, nil) // and back to silent

	fmt.Println(engine.UnitWarning)
	// Output:
	// warning
}
