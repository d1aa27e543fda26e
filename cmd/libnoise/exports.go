//go:build cgo

package main

import "C"
import (
	"log/slog"
	"unsafe"

	"procedural/noise"
)

// generateNoiseGrid fills resultPtr row by row. A non-zero depth is passed
// as a constant third axis; zero keeps the grid two-dimensional.
//
//export generateNoiseGrid
func generateNoiseGrid(resultPtr *float32,
	width uint32,
	height uint32,
	depth int32,
	iterations int32,
	fractal int32,
	seed uint32,
	scale float32,
	persistence float32,
	useLanes int32) int32 {

	s := newSimplex(seed, scale, persistence, useLanes)
	result := unsafe.Slice(resultPtr, gridLen(width, height))

	dims := []int{int(width), int(height)}
	if depth != 0 {
		dims = append(dims, int(depth))
	}
	if err := fillGrid(s, result, int(iterations), noise.FractalType(fractal), dims); err != nil {
		slog.Error("generateNoiseGrid", "error", err)
		return -1
	}
	return 0
}

// generateNoisePoints reads numPoints*dims packed coordinates.
//
//export generateNoisePoints
func generateNoisePoints(resultPtr *float32,
	coordsPtr *float32,
	numPoints uint32,
	dims uint32,
	iterations int32,
	fractal int32,
	seed uint32,
	scale float32,
	persistence float32,
	useLanes int32,
	strength float32,
	rangeMin float32,
	rangeMax float32) int32 {

	s := newSimplex(seed, scale, persistence, useLanes)
	result := unsafe.Slice(resultPtr, numPoints)
	coords := unsafe.Slice(coordsPtr, numPoints*dims)

	err := fillPoints(s, result, coords, int(dims), int(iterations), noise.FractalType(fractal),
		noise.WithStrength(strength), noise.WithRange(rangeMin, rangeMax))
	if err != nil {
		slog.Error("generateNoisePoints", "error", err)
		return -1
	}
	return 0
}
