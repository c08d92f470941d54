package main

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/sourcegraph/conc/pool"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/evo"
	evoimage "github.com/gogpu/evo/internal/image"
)

type config struct {
	refPath     string
	width       int
	height      int
	refWidth    int
	refHeight   int
	popSize     int
	genes       int
	primitive   string
	cull        float64
	generations int
	seed        uint64
	workers     int
	runs        int
	output      string
	scale       int
	plotPath    string
	every       int
}

// result is the outcome of one independent run.
type result struct {
	run     int
	seed    uint64
	history []evo.Stats
	best    *evo.Candidate
}

func run(cfg config, out io.Writer) error {
	if cfg.runs < 1 {
		return fmt.Errorf("-runs must be at least 1, got %d", cfg.runs)
	}
	primitive, err := evo.ParsePrimitive(cfg.primitive)
	if err != nil {
		return err
	}
	if cfg.seed == 0 {
		cfg.seed = uint64(time.Now().UnixNano())
	}

	ref, err := loadReference(cfg)
	if err != nil {
		return err
	}

	results, err := evolveAll(cfg, ref, primitive, out)
	if err != nil {
		return err
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.best.Fitness() > best.best.Fitness() {
			best = r
		}
	}

	p := message.NewPrinter(language.English)
	p.Fprintf(out, "best: run %d (seed %d), fitness %.8f after %d generations\n",
		best.run, best.seed, best.best.Fitness(), cfg.generations)

	if cfg.output != "" {
		if err := evoimage.SavePNG(cfg.output, best.best.View(), cfg.scale); err != nil {
			return err
		}
		p.Fprintf(out, "saved %s (%dx%d, scale %d)\n", cfg.output, cfg.width, cfg.height, cfg.scale)
	}
	if cfg.plotPath != "" {
		histories := make([][]evo.Stats, len(results))
		for i, r := range results {
			histories[i] = r.history
		}
		if err := savePlot(cfg.plotPath, histories); err != nil {
			return err
		}
		p.Fprintf(out, "saved %s\n", cfg.plotPath)
	}
	return nil
}

// loadReference returns the comparison buffer: the -ref image resampled to
// the comparison size, or a random candidate shrunk to it.
func loadReference(cfg config) ([]uint8, error) {
	if cfg.refPath == "" {
		target, err := evo.NewCandidate(cfg.width, cfg.height, evo.NewRand(^cfg.seed))
		if err != nil {
			return nil, err
		}
		shrunk, err := target.Shrink(cfg.refWidth, cfg.refHeight)
		if err != nil {
			return nil, err
		}
		return shrunk.Bytes(), nil
	}

	img, err := evoimage.Load(cfg.refPath)
	if err != nil {
		return nil, err
	}
	if evoimage.Resized(img, cfg.refWidth, cfg.refHeight) {
		evo.Logger().Warn("evodemo: resampling reference",
			slog.String("path", cfg.refPath),
			slog.Int("from_width", img.Bounds().Dx()),
			slog.Int("from_height", img.Bounds().Dy()),
			slog.Int("to_width", cfg.refWidth),
			slog.Int("to_height", cfg.refHeight))
	}
	return evoimage.Reference(img, cfg.refWidth, cfg.refHeight)
}

// evolveAll runs cfg.runs independent populations, at most GOMAXPROCS at a
// time. Run i is seeded with cfg.seed+i.
func evolveAll(cfg config, ref []uint8, primitive evo.Primitive, out io.Writer) ([]result, error) {
	results := make([]result, cfg.runs)
	progress := newProgress(out)

	p := pool.New().WithMaxGoroutines(min(cfg.runs, runtime.GOMAXPROCS(0))).WithErrors()
	for i := range cfg.runs {
		p.Go(func() error {
			r, err := evolveOne(cfg, ref, primitive, i, cfg.seed+uint64(i), progress)
			if err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			results[i] = r
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func evolveOne(cfg config, ref []uint8, primitive evo.Primitive, runID int, seed uint64, progress *progress) (result, error) {
	pop, err := evo.NewPopulation(cfg.width, cfg.height, ref,
		evo.WithSeed(seed),
		evo.WithReferenceSize(cfg.refWidth, cfg.refHeight),
		evo.WithPopulationSize(cfg.popSize),
		evo.WithCullFraction(cfg.cull),
		evo.WithWorkers(cfg.workers),
		evo.WithCandidateOptions(evo.WithGeneCount(cfg.genes), evo.WithPrimitive(primitive)),
	)
	if err != nil {
		return result{}, err
	}
	defer pop.Close()

	history := make([]evo.Stats, 0, cfg.generations+1)
	history = append(history, pop.Stats())
	for range cfg.generations {
		if err := pop.Evolve(); err != nil {
			return result{}, err
		}
		s := pop.Stats()
		history = append(history, s)
		if cfg.every > 0 && s.Generation%cfg.every == 0 {
			progress.report(runID, s)
		}
	}

	best, ok := pop.Best()
	if !ok {
		return result{}, fmt.Errorf("population is empty")
	}
	return result{run: runID, seed: seed, history: history, best: best}, nil
}
