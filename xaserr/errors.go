// Copyright 2024 The GoXAFS Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xaserr defines the structured error taxonomy shared by every
// pipeline stage. Every error carries a Kind discriminant plus whatever
// fields are needed to diagnose the failure without a debugger; nothing in
// this package, or in any stage that returns these errors, ever panics.
package xaserr

import "fmt"

// DataKind enumerates DataError discriminants.
type DataKind int

const (
	InsufficientData DataKind = iota
	LengthMismatch
	InvalidEnergyRange
	NonFiniteValues
	MissingData
	IndexOutOfRange
	EmptyGroup
)

func (k DataKind) String() string {
	switch k {
	case InsufficientData:
		return "InsufficientData"
	case LengthMismatch:
		return "LengthMismatch"
	case InvalidEnergyRange:
		return "InvalidEnergyRange"
	case NonFiniteValues:
		return "NonFiniteValues"
	case MissingData:
		return "MissingData"
	case IndexOutOfRange:
		return "IndexOutOfRange"
	case EmptyGroup:
		return "EmptyGroup"
	}
	return "UnknownDataKind"
}

// DataError reports a problem with the raw or canonicalized data itself,
// before any numerical stage gets a chance to run.
type DataError struct {
	Kind    DataKind
	Have    int   // e.g. number of points supplied
	Want    int   // e.g. minimum required, or expected length
	Indices []int // offending indices, e.g. for NonFiniteValues
	Msg     string
}

func (e *DataError) Error() string {
	switch e.Kind {
	case InsufficientData:
		return fmt.Sprintf("xaserr: insufficient data: have %d points, want at least %d", e.Have, e.Want)
	case LengthMismatch:
		return fmt.Sprintf("xaserr: length mismatch: have %d, want %d", e.Have, e.Want)
	case NonFiniteValues:
		return fmt.Sprintf("xaserr: non-finite values at indices %v", e.Indices)
	default:
		if e.Msg != "" {
			return fmt.Sprintf("xaserr: %s: %s", e.Kind, e.Msg)
		}
		return fmt.Sprintf("xaserr: %s", e.Kind)
	}
}

// NormKind enumerates NormalizationError discriminants.
type NormKind int

const (
	E0OutOfRange NormKind = iota
	PreEdgeFitFailed
	PostEdgeFitFailed
	EdgeStepTooSmall
)

func (k NormKind) String() string {
	switch k {
	case E0OutOfRange:
		return "E0OutOfRange"
	case PreEdgeFitFailed:
		return "PreEdgeFitFailed"
	case PostEdgeFitFailed:
		return "PostEdgeFitFailed"
	case EdgeStepTooSmall:
		return "EdgeStepTooSmall"
	}
	return "UnknownNormKind"
}

// NormalizationError reports a failure while fitting pre/post-edge curves
// or computing the edge step.
type NormalizationError struct {
	Kind     NormKind
	E0       float64
	EdgeStep float64
	Msg      string
}

func (e *NormalizationError) Error() string {
	switch e.Kind {
	case E0OutOfRange:
		return fmt.Sprintf("xaserr: e0=%g out of the energy range", e.E0)
	case EdgeStepTooSmall:
		return fmt.Sprintf("xaserr: edge step %g is not positive", e.EdgeStep)
	default:
		if e.Msg != "" {
			return fmt.Sprintf("xaserr: %s: %s", e.Kind, e.Msg)
		}
		return fmt.Sprintf("xaserr: %s", e.Kind)
	}
}

// BkgKind enumerates BackgroundError discriminants.
type BkgKind int

const (
	InvalidRbkg BkgKind = iota
	SplineKnotsFailed
	ConvergenceFailure
	OptimizationFailed
)

func (k BkgKind) String() string {
	switch k {
	case InvalidRbkg:
		return "InvalidRbkg"
	case SplineKnotsFailed:
		return "SplineKnotsFailed"
	case ConvergenceFailure:
		return "ConvergenceFailure"
	case OptimizationFailed:
		return "OptimizationFailed"
	}
	return "UnknownBkgKind"
}

// BackgroundError reports a failure inside the AUTOBK engine.
type BackgroundError struct {
	Kind       BkgKind
	Rbkg       float64
	KMin, KMax float64
	Iterations int
	Reason     string
}

func (e *BackgroundError) Error() string {
	switch e.Kind {
	case InvalidRbkg:
		return fmt.Sprintf("xaserr: invalid R_bkg=%g, must be > 0", e.Rbkg)
	case SplineKnotsFailed:
		return fmt.Sprintf("xaserr: spline knot construction failed for k in [%g, %g]", e.KMin, e.KMax)
	case ConvergenceFailure:
		return fmt.Sprintf("xaserr: background fit did not converge after %d iterations", e.Iterations)
	case OptimizationFailed:
		return fmt.Sprintf("xaserr: background optimization failed: %s", e.Reason)
	}
	return "xaserr: background error"
}

// FFTKind enumerates FFTError discriminants.
type FFTKind int

const (
	InsufficientPoints FFTKind = iota
	InvalidWindow
	IFFTSizeMismatch
	InterpolationFailed
	WindowCalculationFailed
)

func (k FFTKind) String() string {
	switch k {
	case InsufficientPoints:
		return "InsufficientPoints"
	case InvalidWindow:
		return "InvalidWindow"
	case IFFTSizeMismatch:
		return "IFFTSizeMismatch"
	case InterpolationFailed:
		return "InterpolationFailed"
	case WindowCalculationFailed:
		return "WindowCalculationFailed"
	}
	return "UnknownFFTKind"
}

// FFTError reports a failure in the forward/inverse windowed Fourier
// transform.
type FFTError struct {
	Kind   FFTKind
	Have   int
	Want   int
	Window string
	Msg    string
}

func (e *FFTError) Error() string {
	switch e.Kind {
	case InsufficientPoints:
		return fmt.Sprintf("xaserr: insufficient points for FFT: have %d, want at least %d", e.Have, e.Want)
	case InvalidWindow:
		return fmt.Sprintf("xaserr: invalid window %q", e.Window)
	case IFFTSizeMismatch:
		return fmt.Sprintf("xaserr: inverse FFT size mismatch: have %d, want %d", e.Have, e.Want)
	default:
		if e.Msg != "" {
			return fmt.Sprintf("xaserr: %s: %s", e.Kind, e.Msg)
		}
		return fmt.Sprintf("xaserr: %s", e.Kind)
	}
}

// MathKind enumerates MathError discriminants.
type MathKind int

const (
	InterpolationOutOfBounds MathKind = iota
	PolyfitFailed
	SplineEvalFailed
	IndexOutOfBounds
)

func (k MathKind) String() string {
	switch k {
	case InterpolationOutOfBounds:
		return "InterpolationOutOfBounds"
	case PolyfitFailed:
		return "PolyfitFailed"
	case SplineEvalFailed:
		return "SplineEvalFailed"
	case IndexOutOfBounds:
		return "IndexOutOfBounds"
	}
	return "UnknownMathKind"
}

// MathError reports a failure in a math-utility primitive.
type MathError struct {
	Kind  MathKind
	Index int
	Bound int
	Msg   string
}

func (e *MathError) Error() string {
	switch e.Kind {
	case IndexOutOfBounds:
		return fmt.Sprintf("xaserr: index %d out of bounds [0, %d)", e.Index, e.Bound)
	default:
		if e.Msg != "" {
			return fmt.Sprintf("xaserr: %s: %s", e.Kind, e.Msg)
		}
		return fmt.Sprintf("xaserr: %s", e.Kind)
	}
}
