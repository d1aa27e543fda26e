package noise

import "procedural/lanes"

// Lane simplex evaluation for 1 to 4 dimensions.
//
// Each call evaluates lanes.Width independent samples. The lattice cell is
// floored, and the gradient hash is finalized with a division instead of a
// shift-and-mask, so the field differs from the scalar one for the same
// seed. Both fields are deterministic on their own.

const maxLaneDims = 4

var (
	laneRadius = lanes.Splat(radius)
	laneHashK  = lanes.SplatU(60493)
)

// finalizeLanes avalanches the lattice hash of every lane. Sign bits are
// tested on the full word.
func finalizeLanes(h lanes.U32) lanes.U32 {
	h = lanes.MulU(lanes.MulU(lanes.MulU(h, h), h), laneHashK)
	return lanes.XorU(lanes.DivU(h, 32768), h)
}

// contributeLanes returns t⁴·dot(gradient, v) per lane, zero where t < 0.
func contributeLanes(h lanes.U32, t lanes.F32, v []lanes.F32) lanes.F32 {
	h = finalizeLanes(h)

	var r lanes.F32
	bit := uint32(1)
	for j := len(v) - 1; j >= 0; j-- {
		r = lanes.Add(r, lanes.Select(lanes.TestBits(h, bit), v[j], lanes.Neg(v[j])))
		bit <<= 1
	}

	inside := lanes.GreaterEqual(t, lanes.Zero)
	t = lanes.Mul(t, t)
	return lanes.Select(inside, lanes.Mul(lanes.Mul(t, t), r), lanes.Zero)
}

// evalLanes evaluates l.Dims axes of c, one sample per lane. l.Dims must be
// between 1 and 4; callers check.
func evalLanes(seed uint32, l Layout, c []lanes.F32) lanes.F32 {
	d := l.Dims

	var (
		cell   [maxLaneDims]lanes.I32
		offset [maxLaneDims]lanes.F32
		rank   [maxLaneDims]lanes.I32
		corner [maxLaneDims]lanes.F32
	)

	var s lanes.F32
	for i := 0; i < d; i++ {
		s = lanes.Add(s, c[i])
	}
	s = lanes.Scale(s, l.F)

	var sum lanes.I32
	for i := 0; i < d; i++ {
		cell[i] = lanes.Floor(lanes.Add(c[i], s))
		sum = lanes.AddI(sum, cell[i])
	}
	t := lanes.Scale(lanes.ToFloat(sum), l.G)

	for i := 0; i < d; i++ {
		offset[i] = lanes.Sub(c[i], lanes.Sub(lanes.ToFloat(cell[i]), t))
	}
	for i := 0; i < d; i++ {
		for j := i + 1; j < d; j++ {
			gt := lanes.Greater(offset[i], offset[j])
			rank[i] = lanes.AddI(rank[i], lanes.Ones(gt))
			rank[j] = lanes.AddI(rank[j], lanes.Ones(lanes.Not(gt)))
		}
	}

	// Corner k steps along every axis whose rank is at least d-k: none for
	// the origin corner, all of them for the far one.
	var n lanes.F32
	for k := 0; k <= d; k++ {
		need := lanes.SplatI(int32(d - k))
		cg := lanes.Splat(float32(k) * l.G)
		h := lanes.SplatU(seed)
		tk := laneRadius
		for j := 0; j < d; j++ {
			step := lanes.Ones(lanes.GreaterEqualI(rank[j], need))
			v := lanes.Add(lanes.Sub(offset[j], lanes.ToFloat(step)), cg)
			corner[j] = v
			tk = lanes.Sub(tk, lanes.Mul(v, v))
			h = lanes.XorU(h, lanes.MulIU(lanes.AddI(cell[j], step), primes[j]))
		}
		n = lanes.Add(n, contributeLanes(h, tk, corner[:d]))
	}

	return lanes.Scale(n, gain)
}
