package noise

import (
	"fmt"
	"log/slog"
	"sync"

	"procedural/lanes"
)

// params is the mutable part of an evaluator, copied out under the lock so a
// running batch never sees a later SetScale, SetPersistence or Setup.
type params struct {
	scale       float32
	persistence float32
	layout      *Layout
}

// Simplex evaluates seeded simplex noise and fractals built on it.
//
// Seed and strategy are fixed at construction. Scale, persistence and the
// dimension layout may change between calls; every call works on a snapshot
// taken when it starts. A Simplex is safe for concurrent use.
type Simplex struct {
	seed     uint32
	strategy Strategy
	log      *slog.Logger

	mu sync.RWMutex
	p  params
}

// New returns an evaluator. Setup must be called before evaluating.
func New(seed uint32, scale, persistence float32, opts ...Option) *Simplex {
	s := &Simplex{
		seed: seed,
		log:  slog.Default(),
		p: params{
			scale:       scale,
			persistence: persistence,
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Setup derives the simplex constants for the given dimension count.
// Batches in flight keep the layout they started with.
func (s *Simplex) Setup(dimensions int) error {
	_, _, err := s.setup(dimensions)
	return err
}

func (s *Simplex) setup(dimensions int) (Layout, params, error) {
	l, err := NewLayout(dimensions)
	if err != nil {
		return Layout{}, params{}, err
	}

	s.mu.Lock()
	s.p.layout = &l
	p := s.p
	s.mu.Unlock()

	return l, p, nil
}

func (s *Simplex) snapshot() params {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.p
}

// current returns the layout of the last Setup, which must match dimensions.
func (s *Simplex) current(dimensions int) (Layout, params, error) {
	p := s.snapshot()
	if p.layout == nil {
		return Layout{}, p, ErrNotSetup
	}
	if p.layout.Dims != dimensions {
		return Layout{}, p, fmt.Errorf("%w: set up for %d, called with %d", ErrDimensionMismatch, p.layout.Dims, dimensions)
	}
	return *p.layout, p, nil
}

func (s *Simplex) Seed() uint32 {
	return s.seed
}

func (s *Simplex) Scale() float32 {
	return s.snapshot().scale
}

func (s *Simplex) Persistence() float32 {
	return s.snapshot().persistence
}

// SetScale changes the base frequency for calls that start afterwards.
func (s *Simplex) SetScale(scale float32) {
	s.mu.Lock()
	s.p.scale = scale
	s.mu.Unlock()
}

// SetPersistence changes the octave decay for calls that start afterwards.
func (s *Simplex) SetPersistence(persistence float32) {
	s.mu.Lock()
	s.p.persistence = persistence
	s.mu.Unlock()
}

func (s *Simplex) Strategy() Strategy {
	return s.strategy
}

// LaneWidth is the number of samples one batch evaluation covers: 1 for
// StrategyScalar, lanes.Width for StrategyLanes.
func (s *Simplex) LaneWidth() int {
	if s.strategy == StrategyLanes {
		return lanes.Width
	}
	return 1
}

// Noise evaluates a single octave at coords, which must hold exactly
// dimensions values. The result is not scaled by Scale.
func (s *Simplex) Noise(dimensions int, coords ...float32) (float32, error) {
	l, _, err := s.current(dimensions)
	if err != nil {
		return 0, err
	}
	if len(coords) != dimensions {
		return 0, fmt.Errorf("%w: want %d, got %d", ErrShapeMismatch, dimensions, len(coords))
	}

	var sc *Scratch
	if dimensions > unrolledDims {
		sc = l.NewScratch()
	}
	return evalScalar(s.seed, l, sc, coords), nil
}

// NoiseScratch evaluates a single octave with a caller-owned layout and
// scratch, without consulting Setup. Hot loops keep one Scratch per
// goroutine and avoid allocating for dimensions above four.
func (s *Simplex) NoiseScratch(l Layout, sc *Scratch, coords []float32) (float32, error) {
	if sc == nil || sc.dims != l.Dims {
		return 0, fmt.Errorf("%w: scratch does not fit layout of %d dimensions", ErrShapeMismatch, l.Dims)
	}
	if len(coords) != l.Dims {
		return 0, fmt.Errorf("%w: want %d, got %d", ErrShapeMismatch, l.Dims, len(coords))
	}
	return evalScalar(s.seed, l, sc, coords), nil
}

// NoiseLanes evaluates a single octave for lanes.Width samples at once.
// coords holds one vector per axis.
func (s *Simplex) NoiseLanes(dimensions int, coords ...lanes.F32) (lanes.F32, error) {
	l, _, err := s.currentLanes(dimensions, len(coords))
	if err != nil {
		return lanes.Zero, err
	}
	return evalLanes(s.seed, l, coords), nil
}

func (s *Simplex) currentLanes(dimensions, n int) (Layout, params, error) {
	if dimensions > maxLaneDims {
		return Layout{}, params{}, fmt.Errorf("%w: got %d", ErrUnsupportedDimension, dimensions)
	}
	l, p, err := s.current(dimensions)
	if err != nil {
		return Layout{}, p, err
	}
	if n != dimensions {
		return Layout{}, p, fmt.Errorf("%w: want %d, got %d", ErrShapeMismatch, dimensions, n)
	}
	return l, p, nil
}

func checkFractal(kind FractalType, iterations int) error {
	if !kind.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownFractal, int(kind))
	}
	if iterations < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidIterations, iterations)
	}
	return nil
}

// Fractal accumulates iterations octaves of kind at coords.
func (s *Simplex) Fractal(kind FractalType, iterations, dimensions int, coords ...float32) (float32, error) {
	if err := checkFractal(kind, iterations); err != nil {
		return 0, err
	}
	l, p, err := s.current(dimensions)
	if err != nil {
		return 0, err
	}
	if len(coords) != dimensions {
		return 0, fmt.Errorf("%w: want %d, got %d", ErrShapeMismatch, dimensions, len(coords))
	}
	return fractal(s.seed, p, l, l.NewScratch(), kind, iterations, coords), nil
}

func (s *Simplex) FractalFBM(iterations, dimensions int, coords ...float32) (float32, error) {
	return s.Fractal(FBM, iterations, dimensions, coords...)
}

func (s *Simplex) FractalBillow(iterations, dimensions int, coords ...float32) (float32, error) {
	return s.Fractal(Billow, iterations, dimensions, coords...)
}

func (s *Simplex) FractalRigid(iterations, dimensions int, coords ...float32) (float32, error) {
	return s.Fractal(Rigid, iterations, dimensions, coords...)
}

// FractalLanes is Fractal for lanes.Width samples at once.
func (s *Simplex) FractalLanes(kind FractalType, iterations, dimensions int, coords ...lanes.F32) (lanes.F32, error) {
	if err := checkFractal(kind, iterations); err != nil {
		return lanes.Zero, err
	}
	l, p, err := s.currentLanes(dimensions, len(coords))
	if err != nil {
		return lanes.Zero, err
	}
	return fractalLanes(s.seed, p, l, l.NewScratch(), kind, iterations, coords), nil
}

func (s *Simplex) FractalFBMLanes(iterations, dimensions int, coords ...lanes.F32) (lanes.F32, error) {
	return s.FractalLanes(FBM, iterations, dimensions, coords...)
}

func (s *Simplex) FractalBillowLanes(iterations, dimensions int, coords ...lanes.F32) (lanes.F32, error) {
	return s.FractalLanes(Billow, iterations, dimensions, coords...)
}

func (s *Simplex) FractalRigidLanes(iterations, dimensions int, coords ...lanes.F32) (lanes.F32, error) {
	return s.FractalLanes(Rigid, iterations, dimensions, coords...)
}
