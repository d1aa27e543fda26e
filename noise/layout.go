package noise

import (
	"fmt"
	"math"

	"procedural/lanes"
)

// Hash primes, one per axis. Axes past the fourth reuse them cyclically.
var primes = [4]int32{1619, 31337, 6971, 1013}

// Unskew (G) and skew (F) factors for 1 to 4 dimensions.
var (
	gValues = [4]float32{0.292893, 0.211324, 0.166666, 0.138196}
	fValues = [4]float32{0.414213, 0.366025, 0.333333, 0.309016}
)

// Layout is the state derived from a dimension count: the simplex skew
// constants. It is immutable and safe to share between goroutines.
type Layout struct {
	Dims int
	// G unskews lattice coordinates back to sample space.
	G float32
	// F skews sample coordinates onto the simplex lattice.
	F float32
}

// NewLayout computes the skew constants for the given dimension count.
func NewLayout(dimensions int) (Layout, error) {
	if dimensions < 1 {
		return Layout{}, fmt.Errorf("%w: got %d", ErrInvalidDimensions, dimensions)
	}
	if dimensions <= len(gValues) {
		return Layout{Dims: dimensions, G: gValues[dimensions-1], F: fValues[dimensions-1]}, nil
	}

	n := float32(dimensions)
	sqrt := float32(math.Sqrt(float64(dimensions + 1)))
	return Layout{
		Dims: dimensions,
		G:    ((n + 1) - sqrt) / ((n + 1) * n),
		F:    (sqrt - 1) / n,
	}, nil
}

// NewScratch allocates working memory for one goroutine evaluating samples
// of this layout. A Scratch must not be shared between goroutines.
func (l Layout) NewScratch() *Scratch {
	d := l.Dims
	return &Scratch{
		dims:    d,
		lattice: make([]int32, d),
		rank:    make([]int32, d),
		offset:  make([]float32, d),
		corner:  make([]float32, d),
		scaled:  make([]float32, d),
		laneBuf: make([]lanes.F32, d),
	}
}

// Scratch holds per-goroutine buffers sized to one dimension count.
type Scratch struct {
	dims    int
	lattice []int32
	rank    []int32
	offset  []float32
	corner  []float32

	// octave coordinates for the fractal loops
	scaled  []float32
	laneBuf []lanes.F32
}

// Dims reports the dimension count the scratch was sized for.
func (sc *Scratch) Dims() int {
	return sc.dims
}
