package noise

import "procedural/lanes"

// Octave accumulation shared by the scalar and lane fractals.
//
// Frequency starts at scale and doubles every octave, amplitude starts at 1
// and is multiplied by persistence. The sum is divided by the summed
// amplitude so the output keeps the primitive's range for any octave count.

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

func shapeOctave(kind FractalType, v float32) float32 {
	switch kind {
	case Billow:
		return abs32(v)*2 - 1
	case Rigid:
		return 1 - abs32(v)
	}
	return v
}

func shapeOctaveLanes(kind FractalType, v lanes.F32) lanes.F32 {
	switch kind {
	case Billow:
		return lanes.Sub(lanes.Scale(lanes.Abs(v), 2), lanes.One)
	case Rigid:
		return lanes.Sub(lanes.One, lanes.Abs(v))
	}
	return v
}

// fractal runs iterations octaves of the scalar primitive over coords,
// using sc.scaled for the per-octave coordinates. iterations must be >= 1.
func fractal(seed uint32, p params, l Layout, sc *Scratch, kind FractalType, iterations int, coords []float32) float32 {
	freq := p.scale
	amp := float32(1)
	var sum, maxAmp float32

	scaled := sc.scaled[:l.Dims]
	for i := 0; i < iterations; i++ {
		for k, c := range coords {
			scaled[k] = c * freq
		}
		v := shapeOctave(kind, evalScalar(seed, l, sc, scaled))
		sum += v * amp
		maxAmp += amp
		freq *= 2
		amp *= p.persistence
	}
	return sum / maxAmp
}

// fractalLanes is fractal over lane vectors. l.Dims must be at most 4.
func fractalLanes(seed uint32, p params, l Layout, sc *Scratch, kind FractalType, iterations int, coords []lanes.F32) lanes.F32 {
	freq := p.scale
	amp := float32(1)
	var sum lanes.F32
	var maxAmp float32

	scaled := sc.laneBuf[:l.Dims]
	for i := 0; i < iterations; i++ {
		for k, c := range coords {
			scaled[k] = lanes.Scale(c, freq)
		}
		v := shapeOctaveLanes(kind, evalLanes(seed, l, scaled))
		sum = lanes.Add(sum, lanes.Scale(v, amp))
		maxAmp += amp
		freq *= 2
		amp *= p.persistence
	}
	return lanes.Div(sum, lanes.Splat(maxAmp))
}
