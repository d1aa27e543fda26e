package noise_test

import (
	"fmt"

	"procedural/lanes"
	"procedural/noise"
)

func ExampleSimplex_Noise() {
	s := noise.New(42, 1, 0.5)
	if err := s.Setup(2); err != nil {
		fmt.Println(err)
		return
	}
	v, _ := s.Noise(2, 12.5, -7.25)
	fmt.Printf("%.3f\n", v)
	// Output: -0.295
}

func ExampleSimplex_NoiseLanes() {
	s := noise.New(42, 1, 0.5)
	if err := s.Setup(2); err != nil {
		fmt.Println(err)
		return
	}
	v, _ := s.NoiseLanes(2, lanes.Splat(12.5), lanes.Splat(-7.25))
	fmt.Printf("%.3f\n", v[0])
	// Output: -0.146
}

func ExampleSimplex_GenerateGrid() {
	s := noise.New(42, 0.01, 0.5)
	grid, err := s.GenerateGrid(4, noise.FBM, 4, 4)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%dx%d %.3f %.3f\n", len(grid[0]), len(grid), grid[0][0], grid[2][3])
	// Output: 4x4 0.000 0.376
}

func ExampleSimplex_GeneratePoints() {
	s := noise.New(42, 0.01, 0.5, noise.WithStrategy(noise.StrategyLanes))
	out, err := s.GeneratePoints(4, noise.Rigid, [][]float32{{0, 0}, {10, 20}, {30, 40}},
		noise.WithRange(0, 1), noise.WithStrength(1))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(out), out[0])
	// Output: 3 1
}
