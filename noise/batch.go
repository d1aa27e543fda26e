package noise

import (
	"fmt"

	"procedural/internal/workpool"
	"procedural/lanes"
)

// Batch generation.
//
// Every entry point validates its arguments, calls setup once and keeps the
// returned layout and parameters for the whole batch, then hands one unit per
// partition to a workpool runner. Units write disjoint slots of the output
// and allocate their own scratch. On error the buffer is dropped.

// GenerateGrid fills a height×width buffer with fractal noise sampled at
// integer coordinates. dims is width, height and then constant extra axes;
// the dimension count is len(dims). A missing or zero height means 1.
//
// StrategyScalar dispatches one unit per row, StrategyLanes one unit per
// group of lanes.Width rows.
func (s *Simplex) GenerateGrid(iterations int, kind FractalType, dims ...int) ([][]float32, error) {
	return s.generateGrid(workpool.Parallel, iterations, kind, dims)
}

// GenerateGridSequential is GenerateGrid evaluated on the calling goroutine.
func (s *Simplex) GenerateGridSequential(iterations int, kind FractalType, dims ...int) ([][]float32, error) {
	return s.generateGrid(workpool.Sequential, iterations, kind, dims)
}

// GeneratePoints evaluates fractal noise at every point. All points must have
// the same, non-zero length, which becomes the dimension count.
//
// With StrategyLanes the points are packed lanes.Width at a time and every
// result is clamped to the range and remapped as strength*(v-1)+strength.
// StrategyScalar returns the fractal values as they are.
func (s *Simplex) GeneratePoints(iterations int, kind FractalType, points [][]float32, opts ...PointOption) ([]float32, error) {
	return s.generatePoints(workpool.Parallel, iterations, kind, points, opts)
}

// GeneratePointsSequential is GeneratePoints evaluated on the calling goroutine.
func (s *Simplex) GeneratePointsSequential(iterations int, kind FractalType, points [][]float32, opts ...PointOption) ([]float32, error) {
	return s.generatePoints(workpool.Sequential, iterations, kind, points, opts)
}

func (s *Simplex) generateGrid(run workpool.Runner, iterations int, kind FractalType, dims []int) ([][]float32, error) {
	if err := checkFractal(kind, iterations); err != nil {
		return nil, err
	}
	if len(dims) == 0 || dims[0] < 1 {
		return nil, fmt.Errorf("%w: grid width must be at least 1", ErrInvalidDimensions)
	}
	width, height := dims[0], 1
	if len(dims) > 1 {
		if dims[1] < 0 {
			return nil, fmt.Errorf("%w: grid height %d", ErrInvalidDimensions, dims[1])
		}
		if dims[1] > 0 {
			height = dims[1]
		}
	}
	d := len(dims)
	if s.strategy == StrategyLanes && d > maxLaneDims {
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedDimension, d)
	}

	l, p, err := s.setup(d)
	if err != nil {
		return nil, err
	}

	backing := make([]float32, width*height)
	grid := make([][]float32, height)
	for y := range grid {
		grid[y] = backing[y*width : (y+1)*width : (y+1)*width]
	}

	var units int
	var unit workpool.Unit
	switch s.strategy {
	case StrategyLanes:
		units = (height + lanes.Width - 1) / lanes.Width
		unit = func(g int) error {
			s.gridLanes(p, l, kind, iterations, dims, grid, g*lanes.Width)
			return nil
		}
	default:
		units = height
		unit = func(y int) error {
			s.gridRow(p, l, kind, iterations, dims, grid[y], y)
			return nil
		}
	}

	s.log.Debug("dispatching grid batch",
		"strategy", s.strategy.String(),
		"fractal", kind.String(),
		"dims", d,
		"width", width,
		"height", height,
		"units", units,
	)
	if err := run(units, unit); err != nil {
		return nil, err
	}
	return grid, nil
}

// gridRow evaluates one row. Axis 0 is the column, axis 1 the row.
func (s *Simplex) gridRow(p params, l Layout, kind FractalType, iterations int, dims []int, row []float32, y int) {
	sc := l.NewScratch()
	values := make([]float32, l.Dims)
	for j := 2; j < len(dims); j++ {
		values[j] = float32(dims[j])
	}
	if l.Dims > 1 {
		values[1] = float32(y)
	}
	for x := range row {
		values[0] = float32(x)
		row[x] = fractal(s.seed, p, l, sc, kind, iterations, values)
	}
}

// gridLanes evaluates the rows y0..y0+lanes.Width-1, one row per lane, and
// writes back only the rows inside the grid.
func (s *Simplex) gridLanes(p params, l Layout, kind FractalType, iterations int, dims []int, grid [][]float32, y0 int) {
	sc := l.NewScratch()
	values := make([]lanes.F32, l.Dims)
	for j := 2; j < len(dims); j++ {
		values[j] = lanes.Splat(float32(dims[j]))
	}
	if l.Dims > 1 {
		values[1] = lanes.Iota(float32(y0))
	}
	rows := len(grid) - y0
	if rows > lanes.Width {
		rows = lanes.Width
	}
	for x := range grid[y0] {
		values[0] = lanes.Splat(float32(x))
		out := fractalLanes(s.seed, p, l, sc, kind, iterations, values)
		for i := 0; i < rows; i++ {
			grid[y0+i][x] = out[i]
		}
	}
}

func (s *Simplex) generatePoints(run workpool.Runner, iterations int, kind FractalType, points [][]float32, opts []PointOption) ([]float32, error) {
	if err := checkFractal(kind, iterations); err != nil {
		return nil, err
	}
	po := defaultPointOptions()
	for _, opt := range opts {
		opt(&po)
	}
	if po.min > po.max {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, po.min, po.max)
	}
	if len(points) == 0 {
		return []float32{}, nil
	}

	d := len(points[0])
	if d < 1 {
		return nil, fmt.Errorf("%w: points have no coordinates", ErrInvalidDimensions)
	}
	for i, pt := range points {
		if len(pt) != d {
			return nil, fmt.Errorf("%w: point %d has %d coordinates, point 0 has %d", ErrShapeMismatch, i, len(pt), d)
		}
	}
	if s.strategy == StrategyLanes && d > maxLaneDims {
		return nil, fmt.Errorf("%w: got %d", ErrUnsupportedDimension, d)
	}

	l, p, err := s.setup(d)
	if err != nil {
		return nil, err
	}

	out := make([]float32, len(points))

	var units int
	var unit workpool.Unit
	switch s.strategy {
	case StrategyLanes:
		units = (len(points) + lanes.Width - 1) / lanes.Width
		unit = func(g int) error {
			s.pointLanes(p, l, kind, iterations, po, points, out, g*lanes.Width)
			return nil
		}
	default:
		units = len(points)
		unit = func(i int) error {
			out[i] = fractal(s.seed, p, l, l.NewScratch(), kind, iterations, points[i])
			return nil
		}
	}

	s.log.Debug("dispatching point batch",
		"strategy", s.strategy.String(),
		"fractal", kind.String(),
		"dims", d,
		"points", len(points),
		"units", units,
	)
	if err := run(units, unit); err != nil {
		return nil, err
	}
	return out, nil
}

// pointLanes packs points base..base+lanes.Width-1 into one vector per axis,
// zero-padding past the end, and writes back the valid lanes.
func (s *Simplex) pointLanes(p params, l Layout, kind FractalType, iterations int, po pointOptions, points [][]float32, out []float32, base int) {
	n := len(points) - base
	if n > lanes.Width {
		n = lanes.Width
	}

	values := make([]lanes.F32, l.Dims)
	for i := 0; i < n; i++ {
		for k, c := range points[base+i] {
			values[k][i] = c
		}
	}

	v := fractalLanes(s.seed, p, l, l.NewScratch(), kind, iterations, values)
	v = lanes.Max(lanes.Min(v, lanes.Splat(po.max)), lanes.Splat(po.min))
	strength := lanes.Splat(po.strength)
	v = lanes.Add(lanes.Mul(strength, lanes.Sub(v, lanes.One)), strength)

	lanes.Store(v, out[base:], n)
}
