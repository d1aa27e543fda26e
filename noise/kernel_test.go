package noise

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procedural/lanes"
)

func randCoords(rng *rand.Rand, d int, span float32) []float32 {
	c := make([]float32, d)
	for i := range c {
		c[i] = (rng.Float32()*2 - 1) * span
	}
	return c
}

// The unrolled kernels and the generic walk implement the same field.
func TestUnrolledMatchesGeneric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for d := 1; d <= 4; d++ {
		l, err := NewLayout(d)
		require.NoError(t, err)
		sc := l.NewScratch()
		for n := 0; n < 2000; n++ {
			c := randCoords(rng, d, 50)
			assert.InDelta(t, noiseN(1234, l, sc, c), evalScalar(1234, l, nil, c), 1e-6, "d=%d coords=%v", d, c)
		}
	}
}

func TestNoiseNScratchReuse(t *testing.T) {
	l, err := NewLayout(6)
	require.NoError(t, err)
	sc := l.NewScratch()
	c := []float32{0.3, 1.7, 2.9, -4.1, 0.8, 6.25}

	first := noiseN(9, l, sc, c)
	for i := 0; i < 10; i++ {
		noiseN(9, l, sc, randCoords(rand.New(rand.NewSource(int64(i))), 6, 20))
	}
	assert.Equal(t, first, noiseN(9, l, sc, c))
}

// Every lane is independent of the others.
func TestLanesAreIndependent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for d := 1; d <= maxLaneDims; d++ {
		l, err := NewLayout(d)
		require.NoError(t, err)

		in := make([]lanes.F32, d)
		for k := range in {
			for i := range in[k] {
				in[k][i] = (rng.Float32()*2 - 1) * 30
			}
		}
		got := evalLanes(77, l, in)

		for i := 0; i < lanes.Width; i++ {
			one := make([]lanes.F32, d)
			for k := range one {
				one[k] = lanes.Splat(in[k][i])
			}
			assert.Equal(t, got[i], evalLanes(77, l, one)[0], "d=%d lane=%d", d, i)
		}
	}
}

func TestFinalize(t *testing.T) {
	for _, h := range []uint32{0, 1, 42, 0xDEADBEEF, 0xFFFFFFFF} {
		assert.Less(t, finalize(h), uint32(16))
	}
	assert.Equal(t, uint32(0), finalize(0))

	// 2³·60493 = 483944; 483944/32768 = 14.
	assert.Equal(t, uint32(14^483944), finalizeLanes(lanes.SplatU(2))[0])
}

func TestLatticeWrapsPrimes(t *testing.T) {
	assert.Equal(t, lattice(0, 3), lattice(4, 3))
	assert.Equal(t, lattice(1, -2), lattice(5, -2))
	assert.Equal(t, uint32(0xFFFFF9AD), lattice(0, -1))
}
