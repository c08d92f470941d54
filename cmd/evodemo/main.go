// Command evodemo evolves images made of a few colored triangles toward a
// reference picture and writes the best result as a PNG.
//
// Without -ref the target is itself a random candidate, as in the browser
// demo the engine was first written for.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/evo"
)

func main() {
	var cfg config
	flag.StringVar(&cfg.refPath, "ref", "", "reference image (PNG, JPEG, GIF, BMP, TIFF, WebP); random target if empty")
	flag.IntVar(&cfg.width, "width", 300, "candidate width")
	flag.IntVar(&cfg.height, "height", 300, "candidate height")
	flag.IntVar(&cfg.refWidth, "ref-width", evo.DefaultReferenceWidth, "comparison width")
	flag.IntVar(&cfg.refHeight, "ref-height", evo.DefaultReferenceHeight, "comparison height")
	flag.IntVar(&cfg.popSize, "pop", 10, "population size")
	flag.IntVar(&cfg.genes, "genes", evo.DefaultGeneCount, "genes per candidate")
	flag.StringVar(&cfg.primitive, "primitive", "triangle", "gene primitive: triangle or line")
	flag.Float64Var(&cfg.cull, "cull", evo.DefaultCullFraction, "fraction of members replaced per generation")
	flag.IntVar(&cfg.generations, "gens", 500, "generations to evolve")
	flag.Uint64Var(&cfg.seed, "seed", 0, "random seed (0 seeds from the clock)")
	flag.IntVar(&cfg.workers, "workers", 1, "goroutines per population (0 = GOMAXPROCS)")
	flag.IntVar(&cfg.runs, "runs", 1, "independent populations evolved concurrently")
	flag.StringVar(&cfg.output, "output", "best.png", "output PNG for the best candidate")
	flag.IntVar(&cfg.scale, "scale", 1, "integer upscale factor for the output PNG")
	flag.StringVar(&cfg.plotPath, "plot", "", "fitness history plot (format from extension: png, svg, pdf)")
	flag.IntVar(&cfg.every, "every", 50, "print progress every N generations (0 disables)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	if *verbose {
		evo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatalf("evodemo: %v", err)
	}
}
