// SPDX-License-Identifier: MIT
package engine

import (
	"io"
	"log/slog"
	"math"
	"math/cmplx"
	"os"

	"github.com/lmittmann/tint"
)

const (
	// DefaultScale is the renormalization scale μ a fresh engine
	// starts with.
	DefaultScale = 1.0
	// DefaultOnshellThreshold is the default magnitude below which
	// invariants and mass components snap to zero.
	DefaultOnshellThreshold = 1e-12
)

// Native is a pure-Go double-precision engine for the scalar one-loop
// integrals. Each evaluation method documents the kinematic families
// it covers; configurations outside them produce a warning diagnostic
// and a zero buffer.
//
// Native is not safe for concurrent use; the caller serializes.
type Native struct {
	mu2    float64 // μ², stored squared
	thresh float64
	diag   [3]*slog.Logger // message, warning, error; nil = silent
}

// NewNative returns an engine with default scale and threshold.
// Every diagnostic unit starts routed to standard output, matching
// the preconnected Fortran unit 6; reroute or silence with SetUnit.
func NewNative() *Native {
	n := &Native{
		mu2:    DefaultScale * DefaultScale,
		thresh: DefaultOnshellThreshold,
	}
	n.SetUnit(UnitPrintAll, os.Stdout)
	return n
}

// Precision reports double-precision arithmetic.
func (n *Native) Precision() Precision { return Double }

// SetScale sets the renormalization scale μ. The engine stores μ².
func (n *Native) SetScale(mu float64) {
	n.mu2 = mu * mu
	n.message("renormalization scale updated", "mu", mu)
}

// SetOnshellThreshold sets the snap-to-zero magnitude.
func (n *Native) SetOnshellThreshold(t float64) {
	n.thresh = t
	n.message("on-shell threshold updated", "threshold", t)
}

// SetUnit routes a diagnostic class to w; nil silences the class.
// UnitPrintAll routes every class at once.
func (n *Native) SetUnit(u Unit, w io.Writer) {
	var lg *slog.Logger
	if w != nil {
		lg = slog.New(tint.NewHandler(w, &tint.Options{Level: slog.LevelDebug}))
	}
	switch u {
	case UnitPrintAll:
		n.diag[0], n.diag[1], n.diag[2] = lg, lg, lg
	case UnitMessage:
		n.diag[0] = lg
	case UnitWarning:
		n.diag[1] = lg
	case UnitError:
		n.diag[2] = lg
	}
}

func (n *Native) message(msg string, args ...any) {
	if n.diag[0] != nil {
		n.diag[0].Info(msg, args...)
	}
}

func (n *Native) warn(msg string, args ...any) {
	if n.diag[1] != nil {
		n.diag[1].Warn(msg, args...)
	}
}

// checkFinite reports a non-finite result on the error unit. The
// buffer is left as computed; garbage in stays visible to the caller.
func (n *Native) checkFinite(out *Buffer, integral string) {
	if n.diag[2] == nil {
		return
	}
	for _, v := range out {
		if cmplx.IsNaN(v) || cmplx.IsInf(v) {
			n.diag[2].Error("evaluation produced a non-finite coefficient",
				"integral", integral)
			return
		}
	}
}

// unsupported zeroes the buffer and reports the uncovered kinematic
// configuration on the warning unit.
func (n *Native) unsupported(out *Buffer, integral, why string) {
	*out = Buffer{}
	n.warn("kinematic configuration not covered, returning zeros",
		"integral", integral, "reason", why)
}

// snap collapses magnitudes at or below the on-shell threshold to an
// exact zero, so near-threshold inputs select the same analytic
// branch as exact ones.
func (n *Native) snap(x float64) float64 {
	if math.Abs(x) <= n.thresh {
		return 0
	}
	return x
}

func (n *Native) snapC(z complex128) complex128 {
	return complex(n.snap(real(z)), n.snap(imag(z)))
}

// EvalA0 fills out with the one-point (tadpole) integral:
//
//	A0(m) = m/ε + m(1 − log(m/μ²)) + O(ε),
//
// and exactly zero for a vanishing mass (scaleless).
func (n *Native) EvalA0(out *Buffer, m complex128) {
	m = n.snapC(m)
	if m == 0 {
		*out = Buffer{}
		return
	}
	mu2 := complex(n.mu2, 0)
	out[2] = 0
	out[1] = m
	out[0] = m * (1 - clog(m/mu2))
	n.checkFinite(out, "A0")
}
