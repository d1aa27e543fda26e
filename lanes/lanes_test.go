package lanes_test

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procedural/lanes"
)

func TestLoadStore(t *testing.T) {
	v := lanes.Load([]float32{1, 2, 3})
	assert.Equal(t, lanes.F32{1, 2, 3, 0, 0, 0, 0, 0}, v)

	dst := make([]float32, 2)
	n := lanes.Store(lanes.Iota(10), dst, lanes.Width)
	require.Equal(t, 2, n)
	assert.Equal(t, []float32{10, 11}, dst)
}

func TestArithmetic(t *testing.T) {
	a := lanes.Iota(0)
	b := lanes.Splat(2)

	sum := lanes.Add(a, b)
	diff := lanes.Sub(a, b)
	prod := lanes.Mul(a, b)
	quot := lanes.Div(a, b)
	for i := 0; i < lanes.Width; i++ {
		x := float32(i)
		assert.Equal(t, x+2, sum[i])
		assert.Equal(t, x-2, diff[i])
		assert.Equal(t, x*2, prod[i])
		assert.Equal(t, x/2, quot[i])
	}
	assert.Equal(t, lanes.Scale(a, 3), lanes.Mul(a, lanes.Splat(3)))
	assert.Equal(t, lanes.Abs(lanes.Neg(a)), a)
}

func TestFloorNegative(t *testing.T) {
	in := lanes.F32{-1.5, -1, -0.25, 0, 0.25, 1, 1.5, -3.75}
	want := lanes.I32{-2, -1, -1, 0, 0, 1, 1, -4}
	assert.Equal(t, want, lanes.Floor(in))
}

func TestMinMaxSelect(t *testing.T) {
	a := lanes.F32{-3, -2, -1, 0, 1, 2, 3, 4}
	lo := lanes.Splat(-1)
	hi := lanes.Splat(1)
	clamped := lanes.Min(lanes.Max(a, lo), hi)
	assert.Equal(t, lanes.F32{-1, -1, -1, 0, 1, 1, 1, 1}, clamped)

	m := lanes.Greater(a, lanes.Zero)
	assert.Equal(t, lanes.F32{0, 0, 0, 0, 1, 2, 3, 4}, lanes.Select(m, a, lanes.Zero))
	assert.Equal(t, lanes.I32{0, 0, 0, 0, 1, 1, 1, 1}, lanes.Ones(m))
	assert.Equal(t, lanes.I32{1, 1, 1, 1, 0, 0, 0, 0}, lanes.Ones(lanes.Not(m)))
}

func TestHashOps(t *testing.T) {
	i := lanes.SplatI(-1)
	h := lanes.MulIU(i, 1619)
	assert.Equal(t, uint32(0xFFFFF9AD), h[0])

	h = lanes.XorU(h, lanes.SplatU(0xFFFFFFFF))
	assert.Equal(t, uint32(1618), h[0])
	assert.Equal(t, uint32(1618/2), lanes.DivU(h, 2)[3])

	bits := lanes.TestBits(lanes.U32{0, 1, 2, 3, 4, 5, 6, 7}, 2)
	assert.Equal(t, lanes.Mask{false, false, true, true, false, false, true, true}, bits)
}

func TestDescribe(t *testing.T) {
	assert.True(t, strings.HasPrefix(lanes.Describe(), runtime.GOARCH))
}
