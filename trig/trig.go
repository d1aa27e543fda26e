// Package trig approximates sine and cosine with truncated Taylor
// polynomials, for scalars and for lane vectors.
//
// Results are accurate to about 1e-4 for inputs in [-π, π]. Inputs in
// (π, 2π] are folded back by one half turn. Larger inputs are folded the
// same single time and drift away from the true value without failing.
package trig

import (
	"math"

	"procedural/lanes"
)

const pi32 = float32(math.Pi)

// Sin evaluates the degree-13 sine polynomial. Inputs past π are folded
// back once; ±Inf and NaN return NaN.
func Sin(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN()
	}
	sign := 1.0
	if x < 0 {
		x, sign = -x, -1
	}
	if x > math.Pi {
		x, sign = x-math.Pi, -sign
	}

	x2 := x * x
	return sign * x * (x2/6*(x2/20*(x2/42*(x2/72*(x2/110*(x2/156-1)+1)-1)+1)-1) + 1)
}

// Cos evaluates the degree-12 cosine polynomial, folding like Sin.
func Cos(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return math.NaN()
	}
	sign := 1.0
	if x < 0 {
		x = -x
	}
	if x > math.Pi {
		x, sign = x-math.Pi, -1
	}

	x2 := x * x
	return sign * (x2/2*(x2/12*(x2/30*(x2/56*(x2/90*(x2/132-1)+1)-1)+1)-1) + 1)
}

// SinLanes is Sin over every lane of in.
func SinLanes(in lanes.F32) lanes.F32 {
	x, sign := fold(in, true)
	x2 := lanes.Mul(x, x)

	out := lanes.Sub(lanes.Scale(x2, 1.0/156), lanes.One)
	out = horner(x2, out, 110, 1)
	out = horner(x2, out, 72, -1)
	out = horner(x2, out, 42, 1)
	out = horner(x2, out, 20, -1)
	out = horner(x2, out, 6, 1)
	out = lanes.Mul(x, out)

	return lanes.Mul(out, sign)
}

// CosLanes is Cos over every lane of in.
func CosLanes(in lanes.F32) lanes.F32 {
	x, sign := fold(in, false)
	x2 := lanes.Mul(x, x)

	out := lanes.Sub(lanes.Scale(x2, 1.0/132), lanes.One)
	out = horner(x2, out, 90, 1)
	out = horner(x2, out, 56, -1)
	out = horner(x2, out, 30, 1)
	out = horner(x2, out, 12, -1)
	out = horner(x2, out, 2, 1)

	return lanes.Mul(out, sign)
}

// horner returns x2/div*acc + c.
func horner(x2, acc lanes.F32, div, c float32) lanes.F32 {
	return lanes.Add(lanes.Mul(lanes.Scale(x2, 1/div), acc), lanes.Splat(c))
}

// fold maps every lane onto [0, π] and returns the sign to restore.
// Sine is odd so negative lanes flip sign; cosine is even and does not.
func fold(in lanes.F32, odd bool) (x, sign lanes.F32) {
	x = lanes.Abs(in)
	sign = lanes.One
	if odd {
		sign = lanes.Select(lanes.Less(in, lanes.Zero), lanes.Neg(lanes.One), lanes.One)
	}

	over := lanes.Greater(x, lanes.Splat(pi32))
	x = lanes.Select(over, lanes.Sub(x, lanes.Splat(pi32)), x)
	sign = lanes.Select(over, lanes.Neg(sign), sign)
	return x, sign
}
