package evo

import (
	"math/rand/v2"
	"time"
)

// Defaults.
const (
	DefaultGeneCount       = 10
	DefaultReferenceWidth  = 10
	DefaultReferenceHeight = 10
	DefaultCullFraction    = 0.2
)

// CandidateOption configures a Candidate during creation.
//
// Example:
//
//	c, err := evo.NewCandidate(300, 300, rng,
//	    evo.WithGeneCount(8),
//	    evo.WithPrimitive(evo.PrimitiveLine))
type CandidateOption func(*candidateOptions)

type candidateOptions struct {
	geneCount int
	primitive Primitive
}

func defaultCandidateOptions() candidateOptions {
	return candidateOptions{
		geneCount: DefaultGeneCount,
		primitive: PrimitiveTriangle,
	}
}

// WithGeneCount sets the fixed number of genes per candidate.
func WithGeneCount(n int) CandidateOption {
	return func(o *candidateOptions) {
		o.geneCount = n
	}
}

// WithPrimitive selects the shape family candidates are built from.
func WithPrimitive(p Primitive) CandidateOption {
	return func(o *candidateOptions) {
		o.primitive = p
	}
}

// PopulationOption configures a Population during creation.
//
// Example:
//
//	pop, err := evo.NewPopulation(300, 300, ref,
//	    evo.WithSeed(42),
//	    evo.WithPopulationSize(10),
//	    evo.WithWorkers(4))
type PopulationOption func(*populationOptions)

type populationOptions struct {
	rng          *rand.Rand
	refWidth     int
	refHeight    int
	size         int
	cullFraction float64
	workers      int
	candidate    []CandidateOption
}

func defaultPopulationOptions() populationOptions {
	return populationOptions{
		refWidth:     DefaultReferenceWidth,
		refHeight:    DefaultReferenceHeight,
		cullFraction: DefaultCullFraction,
		workers:      1,
	}
}

// WithSeed seeds the population's random source. Two populations built with
// the same seed and options evolve identically.
func WithSeed(seed uint64) PopulationOption {
	return func(o *populationOptions) {
		o.rng = NewRand(seed)
	}
}

// WithRand sets the population's random source. The population takes
// ownership of rng.
func WithRand(rng *rand.Rand) PopulationOption {
	return func(o *populationOptions) {
		o.rng = rng
	}
}

// WithReferenceSize sets the resolution of the reference buffer. Candidates
// are shrunk to this size before scoring.
func WithReferenceSize(width, height int) PopulationOption {
	return func(o *populationOptions) {
		o.refWidth = width
		o.refHeight = height
	}
}

// WithPopulationSize adds n random, scored members at construction.
// The default is an empty population grown with AddMember.
func WithPopulationSize(n int) PopulationOption {
	return func(o *populationOptions) {
		o.size = n
	}
}

// WithCullFraction sets the fraction of members replaced each generation.
// It must be in [0, 1).
func WithCullFraction(f float64) PopulationOption {
	return func(o *populationOptions) {
		o.cullFraction = f
	}
}

// WithWorkers sets how many goroutines mutate and score members during a
// generation. Results do not depend on the worker count. 1 (the default)
// runs everything on the calling goroutine; 0 or less uses GOMAXPROCS.
func WithWorkers(n int) PopulationOption {
	return func(o *populationOptions) {
		o.workers = n
	}
}

// WithCandidateOptions sets the options every member is created with.
func WithCandidateOptions(opts ...CandidateOption) PopulationOption {
	return func(o *populationOptions) {
		o.candidate = append(o.candidate, opts...)
	}
}

// NewRand returns a PCG-backed random source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func clockRand() *rand.Rand {
	return NewRand(uint64(time.Now().UnixNano()))
}
