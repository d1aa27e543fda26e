package main

import (
	"fmt"

	"procedural/noise"
)

// CGO_ENABLED=1 go build -o libnoise.so -buildmode=c-shared ./cmd/libnoise

func newSimplex(seed uint32, scale, persistence float32, useLanes int32) *noise.Simplex {
	st := noise.StrategyScalar
	if useLanes != 0 {
		st = noise.StrategyLanes
	}
	return noise.New(seed, scale, persistence, noise.WithStrategy(st))
}

// gridLen is the number of values a grid fills. A zero height is one row.
func gridLen(width, height uint32) int {
	return int(width) * max(int(height), 1)
}

// fillGrid writes a height×width grid row by row into dst.
func fillGrid(s *noise.Simplex, dst []float32, iterations int, kind noise.FractalType, dims []int) error {
	grid, err := s.GenerateGrid(iterations, kind, dims...)
	if err != nil {
		return err
	}
	want := len(grid) * len(grid[0])
	if len(dst) < want {
		return fmt.Errorf("result buffer holds %d values, grid needs %d", len(dst), want)
	}
	for y, row := range grid {
		copy(dst[y*len(row):], row)
	}
	return nil
}

// fillPoints evaluates the points packed in coords, dims values each.
func fillPoints(s *noise.Simplex, dst, coords []float32, dims, iterations int, kind noise.FractalType, opts ...noise.PointOption) error {
	if dims < 1 || len(coords)%dims != 0 {
		return fmt.Errorf("%w: %d coordinates do not split into points of %d", noise.ErrShapeMismatch, len(coords), dims)
	}
	points := make([][]float32, len(coords)/dims)
	for i := range points {
		points[i] = coords[i*dims : (i+1)*dims : (i+1)*dims]
	}
	if len(dst) < len(points) {
		return fmt.Errorf("result buffer holds %d values, need %d", len(dst), len(points))
	}
	out, err := s.GeneratePoints(iterations, kind, points, opts...)
	if err != nil {
		return err
	}
	copy(dst, out)
	return nil
}

func main() {

}
