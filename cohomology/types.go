// SPDX-License-Identifier: MIT

package cohomology

import (
	"errors"
	"math"
	"time"

	"github.com/katalvlaran/pershom/diagram"
	"github.com/katalvlaran/pershom/field"
	"github.com/katalvlaran/pershom/filtered"
	"github.com/katalvlaran/pershom/unionfind"
)

// Sentinel errors. Precondition errors are returned before any work is done.
var (
	// ErrNilComplex indicates New was called without a complex.
	ErrNilComplex = errors.New("cohomology: nil complex")

	// ErrFilterNotInitialized is filtered.ErrFilterNotInitialized.
	ErrFilterNotInitialized = filtered.ErrFilterNotInitialized

	// ErrInvalidCharacteristic is field.ErrInvalidCharacteristic.
	ErrInvalidCharacteristic = field.ErrInvalidCharacteristic

	// ErrFieldNotInitialized indicates Compute before a successful InitCoefficients.
	ErrFieldNotInitialized = errors.New("cohomology: coefficient field not initialized")

	// ErrInvalidThreshold indicates a NaN or negative finite minimum persistence.
	ErrInvalidThreshold = errors.New("cohomology: invalid minimum persistence")

	// ErrNotComputed indicates WriteDiagram called before a successful Compute.
	ErrNotComputed = errors.New("cohomology: persistence not computed")
)

// KeepAll is the minimum persistence that keeps every pair, including those
// of zero length.
var KeepAll = math.Inf(-1)

// Defaults.
const (
	// DefaultCharacteristic is the coefficient field used when none is set.
	DefaultCharacteristic = field.DefaultCharacteristic
)

// Stats summarises one Compute run.
type Stats struct {
	Cells          int
	Dimension      int
	Characteristic uint32
	Threshold      float64
	Pairs          int   // pairs kept after filtering
	PairsByDim     []int // kept pairs per dimension
	Essential      int   // kept essential pairs
	Discarded      int   // finite pairs removed by the threshold
	Components     int   // live components at the end of the pass
	Generators     int   // live higher-dimensional generators at the end
	Columns        int   // distinct annotation columns at the end
	Duration       time.Duration
}

// Option configures a Persistence.
type Option func(*config)

// config is the resolved option set.
type config struct {
	characteristic uint32
	essentials     bool
	tie            unionfind.TieBreak
	logger         *Logger
}

// Persistence is the engine bound to one complex.
type Persistence struct {
	cpx        filtered.Complex
	f          *field.Zp
	essentials bool
	tie        unionfind.TieBreak
	logger     *Logger

	diagram  *diagram.Diagram
	stats    Stats
	computed bool
}
