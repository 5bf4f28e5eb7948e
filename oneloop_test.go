// SPDX-License-Identifier: MIT
package oneloop_test

import (
	"io"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/oneloop"
	"github.com/katalvlaran/oneloop/engine"
	"github.com/katalvlaran/oneloop/laurent"
)

// resetConfig restores the default configuration after a test that
// mutates process-wide state.
func resetConfig(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		oneloop.Use(engine.NewNative())
	})
}

func TestToFeynman(t *testing.T) {
	assert.InDelta(t, -0.006332573977646111, oneloop.ToFeynman, 1e-18)
}

func TestOnePoint_Tadpole(t *testing.T) {
	r := oneloop.OnePoint(4)
	assert.Equal(t, complex(0.0, 0.0), r.EpsilonMinus2())
	assert.Equal(t, complex(4.0, 0.0), r.EpsilonMinus1())
	assert.InDelta(t, -1.5451774444795623, real(r.Epsilon0()), 1e-13)
	assert.False(t, r.IsFinite())
}

func TestOnePoint_MasslessVanishes(t *testing.T) {
	r := oneloop.OnePoint(0)
	assert.Equal(t, laurent.Result{}, r)
}

func TestOnePoint_ImaginaryPartFlips(t *testing.T) {
	// Im(m²) > 0 is moved onto the physical sheet before evaluation.
	up := oneloop.OnePoint(complex(0.5, 0.01))
	down := oneloop.OnePoint(complex(0.5, -0.01))
	assert.Equal(t, down, up)

	// On the physical sheet a light unstable mass keeps the finite
	// part in the lower half plane.
	assert.LessOrEqual(t, imag(down.Epsilon0()), 0.0)
}

func TestTwoPoint_EndToEnd(t *testing.T) {
	r := oneloop.TwoPoint(1.0, 0.5, 0.2)
	assert.Equal(t, complex(1.0, 0.0), r.EpsilonMinus1())
	assert.InDelta(t, 1.8640987077665736, real(r.Epsilon0()), 1e-12)
	assert.InDelta(t, 0, imag(r.Epsilon0()), 1e-12)
}

func TestThreePoint_ScaleDependence(t *testing.T) {
	resetConfig(t)

	a := oneloop.ThreePoint(0.01, 0.01, 0, 0, 0, 0)
	require.NoError(t, oneloop.SetRenormalizationScale(100))
	b := oneloop.ThreePoint(0.01, 0.01, 0, 0, 0, 0)

	// The finite part runs with μ, the pole does not.
	assert.Equal(t, a.EpsilonMinus1(), b.EpsilonMinus1())
	assert.Greater(t, real(a.Epsilon0())-real(b.Epsilon0()), 0.01)
}

func TestFourPoint_MasslessBox(t *testing.T) {
	r := oneloop.FourPoint(0, 0, 0, 0, -1, -1, 0, 0, 0, 0)
	assert.Equal(t, complex(4.0, 0.0), r.EpsilonMinus2())
	assert.InDelta(t, -math.Pi*math.Pi, real(r.Epsilon0()), 1e-12)
}

func TestEvaluation_Idempotent(t *testing.T) {
	a := oneloop.TwoPoint(1.0, complex(0.5, -0.05), complex(0.2, -0.02))
	b := oneloop.TwoPoint(1.0, complex(0.5, -0.05), complex(0.2, -0.02))
	assert.Equal(t, a, b, "identical inputs must give bit-identical results")
}

func TestSetRenormalizationScale_Validation(t *testing.T) {
	for _, bad := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, oneloop.SetRenormalizationScale(bad), oneloop.ErrNonPositiveScale)
	}
	resetConfig(t)
	require.NoError(t, oneloop.SetRenormalizationScale(91.1876))
}

func TestSetOnshellThreshold_Validation(t *testing.T) {
	for _, bad := range []float64{-1e-12, math.NaN(), math.Inf(1)} {
		assert.ErrorIs(t, oneloop.SetOnshellThreshold(bad), oneloop.ErrNegativeThreshold)
	}
	resetConfig(t)
	require.NoError(t, oneloop.SetOnshellThreshold(0))
	require.NoError(t, oneloop.SetOnshellThreshold(1e-10))
}

func TestSetLogLevel_Validation(t *testing.T) {
	resetConfig(t)
	assert.ErrorIs(t, oneloop.SetLogLevel(oneloop.Unit(42)), oneloop.ErrUnknownUnit)
	assert.ErrorIs(t, oneloop.SetLogLevel(oneloop.UnitWarning, oneloop.Sink(3)), oneloop.ErrUnknownSink)
	require.NoError(t, oneloop.SetLogLevel(oneloop.UnitWarning, oneloop.SinkDiscard))
	require.NoError(t, oneloop.SetLogLevel(oneloop.UnitError, oneloop.SinkStderr))
}

func TestParseUnit(t *testing.T) {
	for name, want := range map[string]oneloop.Unit{
		"printall": oneloop.UnitPrintAll,
		"message":  oneloop.UnitMessage,
		"Warning":  oneloop.UnitWarning,
		" error ":  oneloop.UnitError,
	} {
		got, err := oneloop.ParseUnit(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := oneloop.ParseUnit("verbose")
	assert.ErrorIs(t, err, oneloop.ErrUnknownUnit)
}

func TestEnginePrecision(t *testing.T) {
	assert.Equal(t, engine.Double, oneloop.EnginePrecision())
}

func TestUse_NilPanics(t *testing.T) {
	assert.Panics(t, func() { oneloop.Use(nil) })
}

// constEngine returns fixed coefficients regardless of input.
type constEngine struct {
	engine.Buffer
}

func (c *constEngine) Precision() engine.Precision           { return engine.Extended }
func (c *constEngine) SetScale(float64)                      {}
func (c *constEngine) SetOnshellThreshold(float64)           {}
func (c *constEngine) SetUnit(engine.Unit, io.Writer)        {}
func (c *constEngine) EvalA0(out *engine.Buffer, _ complex128) {
	*out = c.Buffer
}
func (c *constEngine) EvalB0(out *engine.Buffer, _ float64, _, _ complex128) {
	*out = c.Buffer
}
func (c *constEngine) EvalC0(out *engine.Buffer, _, _, _ float64, _, _, _ complex128) {
	*out = c.Buffer
}
func (c *constEngine) EvalD0(out *engine.Buffer, _, _, _, _, _, _ float64, _, _, _, _ complex128) {
	*out = c.Buffer
}

func TestUse_SwapsEngine(t *testing.T) {
	resetConfig(t)

	oneloop.Use(&constEngine{Buffer: engine.Buffer{1, 2, 3}})
	r := oneloop.OnePoint(0)
	assert.Equal(t, laurent.New(1, 2, 3), r)
	assert.Equal(t, engine.Extended, oneloop.EnginePrecision())
}

func TestConcurrentEvaluation(t *testing.T) {
	resetConfig(t)
	want := oneloop.TwoPoint(1.0, 0.5, 0.2)

	var wg sync.WaitGroup
	results := make([]laurent.Result, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = oneloop.TwoPoint(1.0, 0.5, 0.2)
		}(i)
	}
	// A configuration writer racing the evaluations; it re-applies the
	// defaults, so the results themselves stay pinned.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 8; i++ {
			require.NoError(t, oneloop.SetOnshellThreshold(engine.DefaultOnshellThreshold))
			require.NoError(t, oneloop.SetRenormalizationScale(engine.DefaultScale))
		}
	}()
	wg.Wait()

	for _, r := range results {
		assert.Equal(t, want, r)
	}
}
