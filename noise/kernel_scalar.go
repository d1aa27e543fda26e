package noise

// Scalar simplex evaluation.
//
// The lattice cell is found with an int32 conversion, which truncates toward
// zero rather than flooring. Negative coordinates therefore land in a
// different cell than a floor-based simplex would pick; the field is
// continuous either way and existing seeds depend on it.
//
// Dimensions 1 to 4 are unrolled. Higher dimensions walk the corners with a
// rank vector held in Scratch.

const (
	radius = float32(0.6)
	gain   = float32(32)

	// unrolledDims is the highest dimension count evaluated without Scratch.
	unrolledDims = 4
)

// finalize avalanches a lattice hash and keeps the four gradient sign bits.
func finalize(h uint32) uint32 {
	h = h * h * h * 60493
	return ((h >> 13) ^ h) & 15
}

func lattice(axis int, c int32) uint32 {
	return uint32(primes[axis%len(primes)] * c)
}

// signed returns v when bit is set in h and -v otherwise.
func signed(h, bit uint32, v float32) float32 {
	if h&bit == 0 {
		return -v
	}
	return v
}

func flag(b bool) int32 {
	if b {
		return 1
	}
	return 0
}

// evalScalar dispatches on dimension count. sc may be nil for 1 to 4 dimensions.
func evalScalar(seed uint32, l Layout, sc *Scratch, c []float32) float32 {
	switch l.Dims {
	case 1:
		return noise1(seed, l.G, l.F, c[0])
	case 2:
		return noise2(seed, l.G, l.F, c[0], c[1])
	case 3:
		return noise3(seed, l.G, l.F, c[0], c[1], c[2])
	case 4:
		return noise4(seed, l.G, l.F, c[0], c[1], c[2], c[3])
	}
	return noiseN(seed, l, sc, c)
}

func noise1(seed uint32, g, f float32, x float32) float32 {
	s := x * f
	xi := int32(x + s)
	t := float32(xi) * g
	x0 := x - (float32(xi) - t)

	var n float32

	if t := radius - x0*x0; t >= 0 {
		h := finalize(seed ^ lattice(0, xi))
		r := signed(h, 1, x0)
		t *= t
		n += t * t * r
	}

	x1 := x0 - 1 + 1*g
	if t := radius - x1*x1; t >= 0 {
		h := finalize(seed ^ lattice(0, xi+1))
		r := signed(h, 1, x1)
		t *= t
		n += t * t * r
	}

	return gain * n
}

func noise2(seed uint32, g, f float32, x, y float32) float32 {
	s := (x + y) * f
	xi := int32(x + s)
	yi := int32(y + s)
	t := float32(xi+yi) * g
	x0 := x - (float32(xi) - t)
	y0 := y - (float32(yi) - t)

	var xr, yr int32
	if x0 > y0 {
		xr++
	} else {
		yr++
	}

	var n float32

	if t := radius - x0*x0 - y0*y0; t >= 0 {
		h := finalize(seed ^ lattice(0, xi) ^ lattice(1, yi))
		r := signed(h, 1, y0)
		r += signed(h, 2, x0)
		t *= t
		n += t * t * r
	}

	i1, j1 := flag(xr >= 1), flag(yr >= 1)
	x1 := x0 - float32(i1) + 1*g
	y1 := y0 - float32(j1) + 1*g
	if t := radius - x1*x1 - y1*y1; t >= 0 {
		h := finalize(seed ^ lattice(0, xi+i1) ^ lattice(1, yi+j1))
		r := signed(h, 1, y1)
		r += signed(h, 2, x1)
		t *= t
		n += t * t * r
	}

	x2 := x0 - 1 + 2*g
	y2 := y0 - 1 + 2*g
	if t := radius - x2*x2 - y2*y2; t >= 0 {
		h := finalize(seed ^ lattice(0, xi+1) ^ lattice(1, yi+1))
		r := signed(h, 1, y2)
		r += signed(h, 2, x2)
		t *= t
		n += t * t * r
	}

	return gain * n
}

func noise3(seed uint32, g, f float32, x, y, z float32) float32 {
	s := (x + y + z) * f
	xi := int32(x + s)
	yi := int32(y + s)
	zi := int32(z + s)
	t := float32(xi+yi+zi) * g
	x0 := x - (float32(xi) - t)
	y0 := y - (float32(yi) - t)
	z0 := z - (float32(zi) - t)

	var xr, yr, zr int32
	if y0 > z0 {
		yr++
	} else {
		zr++
	}
	if x0 > y0 {
		xr++
	} else {
		yr++
	}
	if x0 > z0 {
		xr++
	} else {
		zr++
	}

	var n float32

	if t := radius - x0*x0 - y0*y0 - z0*z0; t >= 0 {
		h := finalize(seed ^ lattice(0, xi) ^ lattice(1, yi) ^ lattice(2, zi))
		r := signed(h, 1, z0)
		r += signed(h, 2, y0)
		r += signed(h, 4, x0)
		t *= t
		n += t * t * r
	}

	i1, j1, k1 := flag(xr >= 2), flag(yr >= 2), flag(zr >= 2)
	x1 := x0 - float32(i1) + 1*g
	y1 := y0 - float32(j1) + 1*g
	z1 := z0 - float32(k1) + 1*g
	if t := radius - x1*x1 - y1*y1 - z1*z1; t >= 0 {
		h := finalize(seed ^ lattice(0, xi+i1) ^ lattice(1, yi+j1) ^ lattice(2, zi+k1))
		r := signed(h, 1, z1)
		r += signed(h, 2, y1)
		r += signed(h, 4, x1)
		t *= t
		n += t * t * r
	}

	i2, j2, k2 := flag(xr >= 1), flag(yr >= 1), flag(zr >= 1)
	x2 := x0 - float32(i2) + 2*g
	y2 := y0 - float32(j2) + 2*g
	z2 := z0 - float32(k2) + 2*g
	if t := radius - x2*x2 - y2*y2 - z2*z2; t >= 0 {
		h := finalize(seed ^ lattice(0, xi+i2) ^ lattice(1, yi+j2) ^ lattice(2, zi+k2))
		r := signed(h, 1, z2)
		r += signed(h, 2, y2)
		r += signed(h, 4, x2)
		t *= t
		n += t * t * r
	}

	x3 := x0 - 1 + 3*g
	y3 := y0 - 1 + 3*g
	z3 := z0 - 1 + 3*g
	if t := radius - x3*x3 - y3*y3 - z3*z3; t >= 0 {
		h := finalize(seed ^ lattice(0, xi+1) ^ lattice(1, yi+1) ^ lattice(2, zi+1))
		r := signed(h, 1, z3)
		r += signed(h, 2, y3)
		r += signed(h, 4, x3)
		t *= t
		n += t * t * r
	}

	return gain * n
}

func noise4(seed uint32, g, f float32, x, y, z, w float32) float32 {
	s := (x + y + z + w) * f
	xi := int32(x + s)
	yi := int32(y + s)
	zi := int32(z + s)
	wi := int32(w + s)
	t := float32(xi+yi+zi+wi) * g
	x0 := x - (float32(xi) - t)
	y0 := y - (float32(yi) - t)
	z0 := z - (float32(zi) - t)
	w0 := w - (float32(wi) - t)

	var xr, yr, zr, wr int32
	if z0 > w0 {
		zr++
	} else {
		wr++
	}
	if y0 > z0 {
		yr++
	} else {
		zr++
	}
	if y0 > w0 {
		yr++
	} else {
		wr++
	}
	if x0 > y0 {
		xr++
	} else {
		yr++
	}
	if x0 > z0 {
		xr++
	} else {
		zr++
	}
	if x0 > w0 {
		xr++
	} else {
		wr++
	}

	var n float32

	if t := radius - x0*x0 - y0*y0 - z0*z0 - w0*w0; t >= 0 {
		h := finalize(seed ^ lattice(0, xi) ^ lattice(1, yi) ^ lattice(2, zi) ^ lattice(3, wi))
		r := signed(h, 1, w0)
		r += signed(h, 2, z0)
		r += signed(h, 4, y0)
		r += signed(h, 8, x0)
		t *= t
		n += t * t * r
	}

	// Corners 1 to 3 step along the axes whose rank clears the threshold.
	for c, need := range [3]int32{3, 2, 1} {
		i1, j1, k1, l1 := flag(xr >= need), flag(yr >= need), flag(zr >= need), flag(wr >= need)
		cg := float32(c+1) * g
		x1 := x0 - float32(i1) + cg
		y1 := y0 - float32(j1) + cg
		z1 := z0 - float32(k1) + cg
		w1 := w0 - float32(l1) + cg
		if t := radius - x1*x1 - y1*y1 - z1*z1 - w1*w1; t >= 0 {
			h := finalize(seed ^ lattice(0, xi+i1) ^ lattice(1, yi+j1) ^ lattice(2, zi+k1) ^ lattice(3, wi+l1))
			r := signed(h, 1, w1)
			r += signed(h, 2, z1)
			r += signed(h, 4, y1)
			r += signed(h, 8, x1)
			t *= t
			n += t * t * r
		}
	}

	x4 := x0 - 1 + 4*g
	y4 := y0 - 1 + 4*g
	z4 := z0 - 1 + 4*g
	w4 := w0 - 1 + 4*g
	if t := radius - x4*x4 - y4*y4 - z4*z4 - w4*w4; t >= 0 {
		h := finalize(seed ^ lattice(0, xi+1) ^ lattice(1, yi+1) ^ lattice(2, zi+1) ^ lattice(3, wi+1))
		r := signed(h, 1, w4)
		r += signed(h, 2, z4)
		r += signed(h, 4, y4)
		r += signed(h, 8, x4)
		t *= t
		n += t * t * r
	}

	return gain * n
}

// noiseN walks all D+1 corners of the simplex. Costs O(D²) for the ranking.
func noiseN(seed uint32, l Layout, sc *Scratch, c []float32) float32 {
	d := l.Dims

	var s float32
	for _, v := range c {
		s += v
	}
	s *= l.F

	var sum int32
	for i := 0; i < d; i++ {
		sc.lattice[i] = int32(c[i] + s)
		sum += sc.lattice[i]
	}
	t := float32(sum) * l.G

	for i := range sc.rank {
		sc.rank[i] = 0
	}
	for i := d - 1; i >= 0; i-- {
		sc.offset[i] = c[i] - (float32(sc.lattice[i]) - t)
		for j := i + 1; j < d; j++ {
			if sc.offset[i] > sc.offset[j] {
				sc.rank[i]++
			} else {
				sc.rank[j]++
			}
		}
	}

	var n float32
	threshold := int32(d - 1)
	for i := 0; i <= d; i++ {
		t := radius
		h := seed
		cg := float32(i) * l.G
		for j := 0; j < d; j++ {
			var step int32
			switch {
			case i == d:
				step = 1
			case i > 0 && sc.rank[j] >= threshold:
				step = 1
			}
			v := sc.offset[j] - float32(step) + cg
			sc.corner[j] = v
			t -= v * v
			h ^= lattice(j, sc.lattice[j]+step)
		}
		if i > 0 {
			threshold--
		}
		if t < 0 {
			continue
		}

		h = finalize(h)
		var r float32
		bit := uint32(1)
		for j := d - 1; j >= 0; j-- {
			r += signed(h, bit, sc.corner[j])
			bit <<= 1
		}
		t *= t
		n += t * t * r
	}

	return gain * n
}
