// SPDX-License-Identifier: MIT
package oneloop

import (
	"errors"
	"io"
	"math"
	"os"
	"strings"
	"sync"

	"github.com/katalvlaran/oneloop/engine"
)

// Sentinel configuration errors.
var (
	// ErrNonPositiveScale rejects a renormalization scale that is not
	// a positive finite number.
	ErrNonPositiveScale = errors.New("oneloop: renormalization scale must be positive and finite")
	// ErrNegativeThreshold rejects an on-shell threshold that is
	// negative, NaN or infinite.
	ErrNegativeThreshold = errors.New("oneloop: on-shell threshold must be non-negative and finite")
	// ErrUnknownUnit rejects a diagnostic unit outside the four
	// defined classes.
	ErrUnknownUnit = errors.New("oneloop: unknown diagnostic unit")
	// ErrUnknownSink rejects a sink number with no attached stream.
	ErrUnknownSink = errors.New("oneloop: unknown diagnostic sink")
)

// Unit aliases the engine diagnostic classes so callers configure
// logging without importing the engine package.
type Unit = engine.Unit

// Diagnostic units, re-exported.
const (
	UnitPrintAll = engine.UnitPrintAll
	UnitMessage  = engine.UnitMessage
	UnitWarning  = engine.UnitWarning
	UnitError    = engine.UnitError
)

// Sink selects the destination stream of a diagnostic unit, numbered
// the way Fortran preconnects its units: 6 is standard output, 0 is
// standard error. SinkDiscard closes the unit.
type Sink int

const (
	SinkStderr  Sink = 0
	SinkStdout  Sink = 6
	SinkDiscard Sink = -1
)

// ParseUnit maps a lower-case unit name to its Unit value.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "printall":
		return UnitPrintAll, nil
	case "message":
		return UnitMessage, nil
	case "warning":
		return UnitWarning, nil
	case "error":
		return UnitError, nil
	default:
		return 0, ErrUnknownUnit
	}
}

// The package keeps one process-wide engine. A single mutex covers
// both configuration and evaluation: a configuration change never
// interleaves with a running evaluation, and results stay
// reproducible under concurrent callers.
var (
	engineMu sync.Mutex
	bound    engine.Engine = engine.NewNative()
)

// Use replaces the process-wide engine. It panics on nil; passing no
// engine at all is a programming error, not a runtime condition.
func Use(e engine.Engine) {
	if e == nil {
		panic("oneloop: Use(nil)")
	}
	engineMu.Lock()
	defer engineMu.Unlock()
	bound = e
}

// EnginePrecision reports the arithmetic width of the bound engine.
func EnginePrecision() engine.Precision {
	engineMu.Lock()
	defer engineMu.Unlock()
	return bound.Precision()
}

// SetRenormalizationScale sets the scale μ used by subsequent
// evaluations. The scale must be a positive finite number.
func SetRenormalizationScale(scale float64) error {
	if !(scale > 0) || math.IsInf(scale, 1) {
		return ErrNonPositiveScale
	}
	engineMu.Lock()
	defer engineMu.Unlock()
	bound.SetScale(scale)
	return nil
}

// SetOnshellThreshold sets the magnitude below which invariants and
// mass components are treated as exactly zero.
func SetOnshellThreshold(threshold float64) error {
	if threshold < 0 || math.IsNaN(threshold) || math.IsInf(threshold, 1) {
		return ErrNegativeThreshold
	}
	engineMu.Lock()
	defer engineMu.Unlock()
	bound.SetOnshellThreshold(threshold)
	return nil
}

// SetLogLevel routes the diagnostic unit u to a sink. With no sink
// argument the unit goes to standard output, matching the Fortran
// default of unit 6.
func SetLogLevel(u Unit, sink ...Sink) error {
	if u < UnitPrintAll || u > UnitError {
		return ErrUnknownUnit
	}
	var w io.Writer = os.Stdout
	if len(sink) > 0 {
		switch sink[0] {
		case SinkStdout:
			w = os.Stdout
		case SinkStderr:
			w = os.Stderr
		case SinkDiscard:
			w = nil
		default:
			return ErrUnknownSink
		}
	}
	engineMu.Lock()
	defer engineMu.Unlock()
	bound.SetUnit(u, w)
	return nil
}
