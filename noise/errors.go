package noise

import "errors"

var (
	// ErrInvalidDimensions indicates a dimension count below one.
	ErrInvalidDimensions = errors.New("noise: dimensions must be at least 1")
	// ErrNotSetup indicates evaluation before Setup.
	ErrNotSetup = errors.New("noise: Setup must be called before evaluation")
	// ErrDimensionMismatch indicates a call whose dimension count differs from the last Setup.
	ErrDimensionMismatch = errors.New("noise: dimensions differ from Setup")
	// ErrUnsupportedDimension indicates a lane evaluation above four dimensions.
	ErrUnsupportedDimension = errors.New("noise: lane evaluation supports 1 to 4 dimensions")
	// ErrInvalidIterations indicates an octave count below one, which would normalise by zero amplitude.
	ErrInvalidIterations = errors.New("noise: iterations must be at least 1")
	// ErrShapeMismatch indicates coordinates or points of inconsistent length.
	ErrShapeMismatch = errors.New("noise: coordinate count does not match dimensions")
	// ErrUnknownFractal indicates a FractalType outside FBM, Billow and Rigid.
	ErrUnknownFractal = errors.New("noise: unknown fractal type")
	// ErrInvalidRange indicates a clamp range with min above max.
	ErrInvalidRange = errors.New("noise: range min must not exceed max")
)
