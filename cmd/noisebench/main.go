package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"procedural/internal/config"
	"procedural/lanes"
	"procedural/noise"
)

func main() {
	cfg := config.DefaultConfig()

	configPath := flag.String("config", "", "JSON config file; explicit flags take precedence")
	seed := flag.Uint64("seed", uint64(cfg.Seed), "noise seed")
	scale := flag.Float64("scale", float64(cfg.Scale), "base frequency")
	persistence := flag.Float64("persistence", float64(cfg.Persistence), "amplitude decay per octave")
	extra := flag.String("extra", joinInts(cfg.Extra), "comma-separated constant axes after x and y")
	flag.IntVar(&cfg.Iterations, "iterations", cfg.Iterations, "octaves per sample")
	flag.StringVar(&cfg.Fractal, "fractal", cfg.Fractal, "fbm, billow or rigid")
	flag.StringVar(&cfg.Strategy, "strategy", cfg.Strategy, "scalar or lanes")
	flag.StringVar(&cfg.Mode, "mode", cfg.Mode, "grid or points")
	flag.IntVar(&cfg.Width, "width", cfg.Width, "grid width")
	flag.IntVar(&cfg.Height, "height", cfg.Height, "grid height")
	flag.IntVar(&cfg.Points, "points", cfg.Points, "random points per batch")
	flag.IntVar(&cfg.PointDims, "point-dims", cfg.PointDims, "coordinates per point")
	flag.IntVar(&cfg.Samples, "samples", cfg.Samples, "number of timed samples")
	flag.IntVar(&cfg.Duration, "duration", cfg.Duration, "seconds per sample")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")
	flag.Parse()

	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	cfg.Seed = uint32(*seed)
	cfg.Scale = float32(*scale)
	cfg.Persistence = float32(*persistence)
	var err error
	if cfg.Extra, err = parseInts(*extra); err != nil {
		fmt.Fprintln(os.Stderr, "extra:", err)
		os.Exit(2)
	}

	if *configPath != "" {
		fromFile, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		config.Merge(cfg, fromFile, explicit)
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, log); err != nil {
		log.Error("benchmark failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	kind, err := noise.ParseFractalType(cfg.Fractal)
	if err != nil {
		return err
	}
	strategy, err := noise.ParseStrategy(cfg.Strategy)
	if err != nil {
		return err
	}

	s := noise.New(cfg.Seed, cfg.Scale, cfg.Persistence,
		noise.WithStrategy(strategy),
		noise.WithLogger(log),
	)

	log.Info("starting",
		"cores", runtime.NumCPU(),
		"arch", lanes.Describe(),
		"strategy", strategy.String(),
		"fractal", kind.String(),
		"mode", cfg.Mode,
		"samples", cfg.Samples,
		"duration", time.Duration(cfg.Duration)*time.Second,
	)

	batch := gridBatch(s, cfg, kind)
	if cfg.Mode == config.ModePoints {
		batch = pointBatch(s, cfg, kind)
	}

	stats, err := measure(cfg.Samples, time.Duration(cfg.Duration)*time.Second, batch)
	if err != nil {
		return err
	}
	log.Info("done",
		"samples", cfg.Samples,
		"avg_msamples_per_s", stats.avg,
		"best_msamples_per_s", stats.best,
		"worst_msamples_per_s", stats.worst,
	)
	return nil
}

// batch runs one batch and returns the number of noise values it produced.
type batch func() (int, error)

func gridBatch(s *noise.Simplex, cfg *config.Config, kind noise.FractalType) batch {
	dims := cfg.Dims()
	n := cfg.SamplesPerBatch()
	return func() (int, error) {
		if _, err := s.GenerateGrid(cfg.Iterations, kind, dims...); err != nil {
			return 0, err
		}
		return n, nil
	}
}

func pointBatch(s *noise.Simplex, cfg *config.Config, kind noise.FractalType) batch {
	rng := rand.New(rand.NewSource(int64(cfg.Seed)))
	points := make([][]float32, cfg.Points)
	for i := range points {
		p := make([]float32, cfg.PointDims)
		for k := range p {
			p[k] = rng.Float32() * 1000
		}
		points[i] = p
	}
	return func() (int, error) {
		out, err := s.GeneratePoints(cfg.Iterations, kind, points)
		return len(out), err
	}
}

type throughput struct {
	avg, best, worst float64
}

// measure repeats b for the given duration, samples times, and reports
// millions of noise values per second.
func measure(samples int, duration time.Duration, b batch) (throughput, error) {
	rates := make([]float64, samples)
	for i := range rates {
		var count int
		start := time.Now()
		for time.Since(start) < duration {
			n, err := b()
			if err != nil {
				return throughput{}, err
			}
			count += n
		}
		rates[i] = float64(count) / 1e6 / time.Since(start).Seconds()
	}

	out := throughput{best: rates[0], worst: rates[0]}
	var sum float64
	for _, r := range rates {
		sum += r
		out.best = max(out.best, r)
		out.worst = min(out.worst, r)
	}
	out.avg = sum / float64(len(rates))
	return out, nil
}

func parseInts(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
