package noise

import (
	"fmt"
	"log/slog"
	"strings"
)

// FractalType selects how octaves are accumulated.
type FractalType int

const (
	// FBM sums octaves as they are.
	FBM FractalType = iota
	// Billow folds negative lobes upward: |n|*2-1.
	Billow
	// Rigid inverts the folded value into ridges: 1-|n|.
	Rigid
)

func (ft FractalType) String() string {
	switch ft {
	case FBM:
		return "fbm"
	case Billow:
		return "billow"
	case Rigid:
		return "rigid"
	default:
		return fmt.Sprintf("FractalType(%d)", int(ft))
	}
}

func (ft FractalType) valid() bool {
	return ft >= FBM && ft <= Rigid
}

// ParseFractalType accepts the names printed by String, case-insensitively.
func ParseFractalType(s string) (FractalType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fbm":
		return FBM, nil
	case "billow":
		return Billow, nil
	case "rigid", "ridged":
		return Rigid, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFractal, s)
}

// Strategy selects how batches are partitioned. It is fixed at construction.
type Strategy int

const (
	// StrategyScalar evaluates one sample per call: one unit per grid row or point.
	StrategyScalar Strategy = iota
	// StrategyLanes evaluates lanes.Width samples per call: one unit per lane-group.
	StrategyLanes
)

func (st Strategy) String() string {
	switch st {
	case StrategyScalar:
		return "scalar"
	case StrategyLanes:
		return "lanes"
	default:
		return fmt.Sprintf("Strategy(%d)", int(st))
	}
}

// ParseStrategy accepts "scalar", "lanes" or "simd".
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "scalar":
		return StrategyScalar, nil
	case "lanes", "simd":
		return StrategyLanes, nil
	}
	return 0, fmt.Errorf("noise: unknown strategy %q", s)
}

// Option configures a Simplex at construction.
type Option func(*Simplex)

// WithStrategy selects scalar or lane batches.
func WithStrategy(st Strategy) Option {
	return func(s *Simplex) {
		s.strategy = st
	}
}

// WithLogger sets the logger used for batch dispatch messages.
func WithLogger(log *slog.Logger) Option {
	return func(s *Simplex) {
		if log != nil {
			s.log = log
		}
	}
}

// PointOption configures the lane remap of GeneratePoints.
type PointOption func(*pointOptions)

type pointOptions struct {
	strength float32
	min, max float32
}

func defaultPointOptions() pointOptions {
	return pointOptions{strength: 1, min: -1, max: 1}
}

// WithStrength sets the remap factor applied after clamping: s*(v-1)+s.
func WithStrength(strength float32) PointOption {
	return func(o *pointOptions) {
		o.strength = strength
	}
}

// WithRange sets the clamp bounds applied before the strength remap.
func WithRange(lo, hi float32) PointOption {
	return func(o *pointOptions) {
		o.min, o.max = lo, hi
	}
}
