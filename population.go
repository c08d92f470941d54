package evo

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"

	"github.com/gogpu/evo/internal/parallel"
)

// Population is a set of candidates evolved against one reference image.
//
// Candidates are width x height; the reference is refWidth x refHeight RGBA
// and candidates are shrunk to that size for scoring. The population owns its
// candidates exclusively and only reads the reference.
//
// A Population is not safe for concurrent use. With WithWorkers the work of a
// single Evolve call is spread over goroutines internally, with the same
// results as a serial run.
type Population struct {
	width     int
	height    int
	ref       []uint8
	refWidth  int
	refHeight int

	members []*Candidate
	best    int

	rng          *rand.Rand
	cullFraction float64
	candidate    []CandidateOption
	pool         *parallel.WorkerPool

	nextSeq    uint64
	generation int
}

// NewPopulation returns a population evolving width x height candidates toward
// the RGBA reference buffer ref.
//
// ref must hold exactly 4*refWidth*refHeight bytes (10x10 unless
// WithReferenceSize says otherwise) and the candidate size must be an exact
// multiple of the reference size. The buffer is copied.
func NewPopulation(width, height int, ref []uint8, opts ...PopulationOption) (*Population, error) {
	o := defaultPopulationOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: candidate %dx%d", ErrInvalidDimensions, width, height)
	}
	if o.refWidth <= 0 || o.refHeight <= 0 {
		return nil, fmt.Errorf("%w: reference %dx%d", ErrInvalidDimensions, o.refWidth, o.refHeight)
	}
	if len(ref) != 4*o.refWidth*o.refHeight {
		return nil, fmt.Errorf("%w: %d bytes for a %dx%d reference",
			ErrReferenceSize, len(ref), o.refWidth, o.refHeight)
	}
	if width%o.refWidth != 0 || height%o.refHeight != 0 {
		return nil, fmt.Errorf("%w: %dx%d by %dx%d",
			ErrNotDivisible, width, height, o.refWidth, o.refHeight)
	}
	if o.cullFraction < 0 || o.cullFraction >= 1 {
		return nil, fmt.Errorf("%w: cull fraction %v", ErrInvalidOption, o.cullFraction)
	}
	if o.size < 0 {
		return nil, fmt.Errorf("%w: population size %d", ErrInvalidOption, o.size)
	}
	if o.rng == nil {
		o.rng = clockRand()
	}

	p := &Population{
		width:        width,
		height:       height,
		ref:          slices.Clone(ref),
		refWidth:     o.refWidth,
		refHeight:    o.refHeight,
		best:         -1,
		rng:          o.rng,
		cullFraction: o.cullFraction,
		candidate:    o.candidate,
	}
	if o.workers != 1 {
		p.pool = parallel.NewWorkerPool(o.workers)
	}

	spawned, err := p.spawn(o.size)
	if err != nil {
		p.Close()
		return nil, err
	}
	p.members = spawned
	p.sort()
	return p, nil
}

// Close releases the worker goroutines, if any. The population stays usable
// and runs serially afterwards.
func (p *Population) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

// Len returns the number of members.
func (p *Population) Len() int {
	return len(p.members)
}

// Generation returns the number of completed Evolve calls.
func (p *Population) Generation() int {
	return p.generation
}

// Reference returns the reference buffer. It must not be modified.
func (p *Population) Reference() []uint8 {
	return p.ref
}

// AddMember appends one new random candidate, scored against the reference.
func (p *Population) AddMember() error {
	spawned, err := p.spawn(1)
	if err != nil {
		return err
	}
	p.members = append(p.members, spawned...)
	p.sort()
	return nil
}

// Evolve advances the population by one generation:
//
//  1. members are sorted by ascending fitness;
//  2. the lowest floor(Len*cullFraction) members are dropped;
//  3. every survivor is mutated and re-scored;
//  4. as many new random members as were dropped are created and scored.
//
// The population size never changes. The best fitness is not monotonic:
// a mutation can make the previous best worse.
func (p *Population) Evolve() error {
	p.sort()

	cull := int(float64(len(p.members)) * p.cullFraction)
	clear(p.members[:cull])
	p.members = p.members[cull:]

	survivors := p.members
	if err := p.forEach(len(survivors), func(i int) error {
		c := survivors[i]
		c.Mutate()
		_, err := c.CalculateFitness(p.ref, p.refWidth, p.refHeight)
		return err
	}); err != nil {
		return fmt.Errorf("evo: generation %d: %w", p.generation+1, err)
	}

	spawned, err := p.spawn(cull)
	if err != nil {
		return fmt.Errorf("evo: generation %d: %w", p.generation+1, err)
	}
	p.members = append(slices.Clip(p.members), spawned...)
	p.generation++
	p.sort()

	Logger().Debug("evo: generation complete",
		slog.Int("generation", p.generation),
		slog.Int("culled", cull),
		slog.Int("size", len(p.members)),
		slog.Float64("best", p.BestFitness()))
	return nil
}

// BestFitness returns the highest fitness in the population, or 0 when it is
// empty.
func (p *Population) BestFitness() float64 {
	if p.best < 0 {
		return 0
	}
	return p.members[p.best].fitness
}

// Best returns the fittest candidate. ok is false when the population is
// empty. The candidate remains owned by the population.
func (p *Population) Best() (c *Candidate, ok bool) {
	if p.best < 0 {
		return nil, false
	}
	return p.members[p.best], true
}

// BestPixels returns a view of the fittest candidate's full-resolution
// pixels, Width*Height*4 bytes of RGBA. The view is invalidated by the next
// call to Evolve. ok is false when the population is empty.
func (p *Population) BestPixels() (v View, ok bool) {
	c, ok := p.Best()
	if !ok {
		return View{}, false
	}
	return c.View(), true
}

// Fitnesses returns the fitness of every member in ascending order.
func (p *Population) Fitnesses() []float64 {
	out := make([]float64, len(p.members))
	for i, c := range p.members {
		out[i] = c.fitness
	}
	return out
}

// spawn creates and scores n new candidates. Each gets its own random source
// split from the population's, in creation order, so results do not depend
// on how scoring is scheduled.
func (p *Population) spawn(n int) ([]*Candidate, error) {
	if n == 0 {
		return nil, nil
	}
	out := make([]*Candidate, n)
	for i := range out {
		rng := NewRand(p.rng.Uint64())
		c, err := NewCandidate(p.width, p.height, rng, p.candidate...)
		if err != nil {
			return nil, err
		}
		c.seq = p.nextSeq
		p.nextSeq++
		out[i] = c
	}
	if err := p.forEach(n, func(i int) error {
		_, err := out[i].CalculateFitness(p.ref, p.refWidth, p.refHeight)
		return err
	}); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *Population) forEach(n int, fn func(i int) error) error {
	if p.pool != nil && p.pool.IsRunning() {
		return p.pool.ForEach(n, fn)
	}
	for i := range n {
		if err := fn(i); err != nil {
			return err
		}
	}
	return nil
}

func (p *Population) sort() {
	slices.SortFunc(p.members, Compare)
	p.best = len(p.members) - 1
}
