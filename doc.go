// Package evo approximates a reference image by evolving a population of
// images built from a handful of colored triangles.
//
// # Overview
//
// Each Candidate holds a fixed list of genes. A Gene is one primitive, a
// triangle or a line segment, plus a color. Rendering resets the candidate to
// white and composites every gene in order with source-over blending.
// Fitness is measured by shrinking the render to the reference resolution
// with a box filter and comparing channels with a normalized squared error.
//
// A Population ranks its members, drops the worst fifth, mutates the rest
// and refills itself with fresh random candidates on every Evolve call.
//
// # Quick Start
//
//	ref := loadReference() // 10x10 RGBA, 400 bytes
//
//	pop, err := evo.NewPopulation(300, 300, ref,
//	    evo.WithSeed(1),
//	    evo.WithPopulationSize(10))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pop.Close()
//
//	for range 1000 {
//	    if err := pop.Evolve(); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	view, _ := pop.BestPixels()
//	_ = png.Encode(w, view)
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Pixel buffers are row-major RGBA, 4 bytes per pixel, straight alpha
//
// # Determinism
//
// All randomness comes from an injected math/rand/v2 source (WithSeed,
// WithRand). Each candidate receives its own source split from the
// population's at creation, so a seeded population evolves identically
// whether it runs on one goroutine or many (WithWorkers).
package evo
