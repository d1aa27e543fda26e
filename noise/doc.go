// Package noise generates seeded simplex noise and fractal compositions of
// it, one sample at a time or in parallel batches.
//
// A Simplex is built with New, set up for a dimension count with Setup and
// then evaluated:
//
//	s := noise.New(42, 0.01, 0.5)
//	if err := s.Setup(2); err != nil {
//		return err
//	}
//	v, err := s.FractalFBM(4, 2, x, y)
//
// Batch entry points (GenerateGrid, GeneratePoints) call Setup themselves.
//
// Two primitives exist. The scalar one supports any dimension count and
// truncates lattice coordinates toward zero. The lane one evaluates
// lanes.Width samples per call for 1 to 4 dimensions, floors lattice
// coordinates and finalizes hashes differently. They produce different
// fields for the same seed. WithStrategy picks which one batches use.
//
// Single-octave output is bounded but not normalized: the kernel reaches
// roughly ±1.45 at its extremes. Fractals divide by the summed amplitude
// and keep that range.
package noise
