package noise_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procedural/lanes"
	"procedural/noise"
)

const delta = 1e-5

func newSetup(t *testing.T, dims int, opts ...noise.Option) *noise.Simplex {
	t.Helper()
	s := noise.New(42, 0.01, 0.5, opts...)
	require.NoError(t, s.Setup(dims))
	return s
}

func randCoords(rng *rand.Rand, d int, span float32) []float32 {
	c := make([]float32, d)
	for i := range c {
		c[i] = (rng.Float32()*2 - 1) * span
	}
	return c
}

func splat(c []float32) []lanes.F32 {
	out := make([]lanes.F32, len(c))
	for i, v := range c {
		out[i] = lanes.Splat(v)
	}
	return out
}

func TestNewLayout(t *testing.T) {
	tests := []struct {
		dims int
		g, f float32
	}{
		{1, 0.292893, 0.414213},
		{2, 0.211324, 0.366025},
		{3, 0.166666, 0.333333},
		{4, 0.138196, 0.309016},
		{5, float32((6 - math.Sqrt(6)) / 30), float32((math.Sqrt(6) - 1) / 5)},
	}
	for _, tt := range tests {
		l, err := noise.NewLayout(tt.dims)
		require.NoError(t, err)
		assert.Equal(t, tt.dims, l.Dims)
		assert.InDelta(t, tt.g, l.G, 1e-6, "G for %d", tt.dims)
		assert.InDelta(t, tt.f, l.F, 1e-6, "F for %d", tt.dims)
		assert.Equal(t, tt.dims, l.NewScratch().Dims())
	}

	_, err := noise.NewLayout(0)
	assert.ErrorIs(t, err, noise.ErrInvalidDimensions)
}

func TestEvaluationErrors(t *testing.T) {
	fresh := noise.New(1, 1, 0.5)

	_, err := fresh.Noise(2, 1, 2)
	assert.ErrorIs(t, err, noise.ErrNotSetup)
	_, err = fresh.NoiseLanes(2, lanes.Zero, lanes.Zero)
	assert.ErrorIs(t, err, noise.ErrNotSetup)
	assert.ErrorIs(t, fresh.Setup(0), noise.ErrInvalidDimensions)
	assert.ErrorIs(t, fresh.Setup(-4), noise.ErrInvalidDimensions)

	s := newSetup(t, 2)
	_, err = s.Noise(3, 1, 2, 3)
	assert.ErrorIs(t, err, noise.ErrDimensionMismatch)
	_, err = s.Noise(2, 1)
	assert.ErrorIs(t, err, noise.ErrShapeMismatch)
	_, err = s.NoiseLanes(2, lanes.Zero)
	assert.ErrorIs(t, err, noise.ErrShapeMismatch)
	_, err = s.FractalFBM(0, 2, 1, 2)
	assert.ErrorIs(t, err, noise.ErrInvalidIterations)
	_, err = s.FractalRigidLanes(-1, 2, lanes.Zero, lanes.Zero)
	assert.ErrorIs(t, err, noise.ErrInvalidIterations)
	_, err = s.Fractal(noise.FractalType(9), 1, 2, 1, 2)
	assert.ErrorIs(t, err, noise.ErrUnknownFractal)

	s5 := newSetup(t, 5)
	_, err = s5.NoiseLanes(5, lanes.Zero, lanes.Zero, lanes.Zero, lanes.Zero, lanes.Zero)
	assert.ErrorIs(t, err, noise.ErrUnsupportedDimension)
	_, err = s5.FractalFBMLanes(2, 5, lanes.Zero, lanes.Zero, lanes.Zero, lanes.Zero, lanes.Zero)
	assert.ErrorIs(t, err, noise.ErrUnsupportedDimension)
	_, err = s5.Noise(5, 0.3, 1.7, 2.9, -4.1, 0.8)
	assert.NoError(t, err)
}

func TestNoiseDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for d := 1; d <= 6; d++ {
		a := newSetup(t, d)
		b := newSetup(t, d)
		for n := 0; n < 200; n++ {
			c := randCoords(rng, d, 100)
			va, err := a.Noise(d, c...)
			require.NoError(t, err)
			again, _ := a.Noise(d, c...)
			vb, _ := b.Noise(d, c...)
			assert.Equal(t, va, again)
			assert.Equal(t, va, vb)
		}
	}
}

func TestSeedChangesField(t *testing.T) {
	a := noise.New(1, 1, 0.5)
	b := noise.New(2, 1, 0.5)
	require.NoError(t, a.Setup(2))
	require.NoError(t, b.Setup(2))

	differ := 0
	for x := float32(0.5); x < 20; x += 1.3 {
		va, _ := a.Noise(2, x, x*0.7)
		vb, _ := b.Noise(2, x, x*0.7)
		if va != vb {
			differ++
		}
	}
	assert.Greater(t, differ, 5)
}

// The kernel is bounded by construction; the extremes sit near ±1.45.
func TestNoiseBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for d := 1; d <= 6; d++ {
		s := newSetup(t, d)
		for n := 0; n < 10000; n++ {
			v, err := s.Noise(d, randCoords(rng, d, 1000)...)
			require.NoError(t, err)
			require.False(t, math.IsNaN(float64(v)))
			require.LessOrEqual(t, math.Abs(float64(v)), 2.0, "d=%d", d)
		}
	}
}

func TestNoiseLanesBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for d := 1; d <= 4; d++ {
		s := newSetup(t, d)
		for n := 0; n < 10000/lanes.Width; n++ {
			in := make([]lanes.F32, d)
			for k := range in {
				in[k] = lanes.Load(randCoords(rng, lanes.Width, 1000))
			}
			out, err := s.NoiseLanes(d, in...)
			require.NoError(t, err)
			for _, v := range out {
				require.LessOrEqual(t, math.Abs(float64(v)), 2.0, "d=%d", d)
			}
		}
	}
}

func TestNoiseGolden(t *testing.T) {
	tests := []struct {
		name          string
		coords        []float32
		scalar, lanes float32
	}{
		{"1d", []float32{2.4}, 1.0761966705322266, -1.0761966705322266},
		{"2d", []float32{12.5, -7.25}, -0.29535141587257385, -0.14613959193229675},
		{"3d", []float32{1.5, 2.25, -3.75}, -0.08200898766517639, 0.18949082493782043},
		{"4d", []float32{1.1, 0.7, 0.2, 0.45}, -0.1956864893436432, 0.22872136533260345},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := len(tt.coords)
			s := newSetup(t, d)

			v, err := s.Noise(d, tt.coords...)
			require.NoError(t, err)
			assert.InDelta(t, tt.scalar, v, delta)

			out, err := s.NoiseLanes(d, splat(tt.coords)...)
			require.NoError(t, err)
			for _, lv := range out {
				assert.InDelta(t, tt.lanes, lv, delta)
			}
		})
	}

	s := newSetup(t, 5)
	v, err := s.Noise(5, 0.3, 1.7, 2.9, -4.1, 0.8)
	require.NoError(t, err)
	assert.InDelta(t, -0.0010165751446038485, v, delta)
}

// From two dimensions up, every corner of the origin cell either sits on the
// sample or lies outside the contribution radius.
func TestNoiseAtOrigin(t *testing.T) {
	for d := 2; d <= 5; d++ {
		s := newSetup(t, d)
		v, err := s.Noise(d, make([]float32, d)...)
		require.NoError(t, err)
		assert.InDelta(t, 0, v, 1e-7, "d=%d", d)
	}
}

func TestNoiseScratch(t *testing.T) {
	s := newSetup(t, 5)
	l, err := noise.NewLayout(5)
	require.NoError(t, err)
	sc := l.NewScratch()

	c := []float32{0.3, 1.7, 2.9, -4.1, 0.8}
	want, err := s.Noise(5, c...)
	require.NoError(t, err)
	got, err := s.NoiseScratch(l, sc, c)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	l2, _ := noise.NewLayout(2)
	_, err = s.NoiseScratch(l2, sc, c[:2])
	assert.ErrorIs(t, err, noise.ErrShapeMismatch)
	_, err = s.NoiseScratch(l, sc, c[:3])
	assert.ErrorIs(t, err, noise.ErrShapeMismatch)
	_, err = s.NoiseScratch(l, nil, c)
	assert.ErrorIs(t, err, noise.ErrShapeMismatch)
}

func TestAccessors(t *testing.T) {
	s := noise.New(9, 0.25, 0.75)
	assert.Equal(t, uint32(9), s.Seed())
	assert.Equal(t, float32(0.25), s.Scale())
	assert.Equal(t, float32(0.75), s.Persistence())
	assert.Equal(t, noise.StrategyScalar, s.Strategy())
	assert.Equal(t, 1, s.LaneWidth())

	s.SetScale(2)
	s.SetPersistence(0.3)
	assert.Equal(t, float32(2), s.Scale())
	assert.Equal(t, float32(0.3), s.Persistence())

	l := noise.New(9, 1, 1, noise.WithStrategy(noise.StrategyLanes), noise.WithLogger(nil))
	assert.Equal(t, noise.StrategyLanes, l.Strategy())
	assert.Equal(t, lanes.Width, l.LaneWidth())
}
