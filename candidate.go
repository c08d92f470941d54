package evo

import (
	"cmp"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
)

// Candidate is one gene-encoded image: a fixed list of primitives rendered
// onto a white background, plus the fitness it last scored.
//
// A Candidate owns its pixel buffer, its genes and its random source. It is
// not safe for concurrent use, but distinct candidates share nothing and can
// be worked on from different goroutines.
type Candidate struct {
	width   int
	height  int
	pix     *Pixmap
	genes   []Gene
	rng     *rand.Rand
	fitness float64
	scored  bool

	// seq orders candidates with equal fitness by creation.
	seq uint64
}

// NewCandidate returns a candidate with random genes, rendered once.
// The candidate keeps rng for later mutations; a nil rng is replaced by a
// clock-seeded source.
func NewCandidate(width, height int, rng *rand.Rand, opts ...CandidateOption) (*Candidate, error) {
	o := defaultCandidateOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.geneCount < 1 {
		return nil, fmt.Errorf("%w: gene count %d", ErrInvalidOption, o.geneCount)
	}
	if o.primitive > PrimitiveLine {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOption, o.primitive)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: candidate %dx%d", ErrInvalidDimensions, width, height)
	}
	if rng == nil {
		rng = clockRand()
	}

	genes := make([]Gene, o.geneCount)
	for i := range genes {
		genes[i] = RandomGene(o.primitive, width, height, rng)
	}
	return newCandidate(width, height, genes, rng)
}

// NewCandidateWithGenes returns a candidate with a copy of the given genes,
// rendered once. Vertices may lie outside the image; uncovered parts are
// clipped when rendering.
func NewCandidateWithGenes(width, height int, genes []Gene, rng *rand.Rand) (*Candidate, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: candidate %dx%d", ErrInvalidDimensions, width, height)
	}
	if rng == nil {
		rng = clockRand()
	}
	return newCandidate(width, height, slices.Clone(genes), rng)
}

func newCandidate(width, height int, genes []Gene, rng *rand.Rand) (*Candidate, error) {
	pix, err := NewPixmap(width, height)
	if err != nil {
		return nil, err
	}
	c := &Candidate{
		width:  width,
		height: height,
		pix:    pix,
		genes:  genes,
		rng:    rng,
	}
	c.Render()
	return c, nil
}

// Width returns the width of the candidate image.
func (c *Candidate) Width() int { return c.width }

// Height returns the height of the candidate image.
func (c *Candidate) Height() int { return c.height }

// Size returns the number of pixels, Width*Height.
func (c *Candidate) Size() int { return c.pix.Size() }

// Genes returns a copy of the candidate's genes in paint order.
func (c *Candidate) Genes() []Gene {
	return slices.Clone(c.genes)
}

// Pixel returns the rendered pixel at (x, y).
func (c *Candidate) Pixel(x, y int) Pixel {
	return c.pix.Pixel(x, y)
}

// View returns a read-only view of the rendered pixels, valid until the next
// Render, Mutate or CalculateFitness.
func (c *Candidate) View() View {
	return c.pix.View()
}

// Fitness returns the score computed by the last CalculateFitness, or 0 if
// the candidate was never scored.
func (c *Candidate) Fitness() float64 {
	return c.fitness
}

// Scored reports whether Fitness holds a computed score.
func (c *Candidate) Scored() bool {
	return c.scored
}

// Render repaints the buffer from scratch: every pixel is reset to white and
// the genes are composited in list order, so later genes paint over earlier
// ones. Identical genes always produce identical pixels.
func (c *Candidate) Render() {
	c.pix.Fill(White)

	log := Logger()
	for gi, g := range c.genes {
		for p := range g.shape().Points() {
			if !c.pix.InBounds(p.X, p.Y) {
				log.Debug("evo: pixel outside image skipped",
					slog.Int("gene", gi),
					slog.Int("x", p.X), slog.Int("y", p.Y),
					slog.Int("width", c.width), slog.Int("height", c.height))
				continue
			}
			c.pix.AddColor(p.X, p.Y, g.Color)
		}
	}
}

// Mutate perturbs every gene's vertices and re-renders. The gene count and
// colors never change. The previous fitness is no longer valid afterwards.
func (c *Candidate) Mutate() {
	for i := range c.genes {
		c.genes[i].Mutate(c.width, c.height, c.rng)
	}
	c.scored = false
	c.Render()
}

// Shrink downsamples the current buffer with the tiling box filter described
// on Pixmap.Shrink. It does not re-render.
func (c *Candidate) Shrink(width, height int) (*Pixmap, error) {
	return c.pix.Shrink(width, height)
}

// CalculateFitness renders the candidate, shrinks it to refWidth x
// refHeight and scores it against ref with Pixmap.Compare. The result is
// stored and returned.
//
// It fails with ErrReferenceSize when the shrunk image does not have exactly
// len(ref)/4 pixels; the stored fitness is left unchanged in that case.
func (c *Candidate) CalculateFitness(ref []uint8, refWidth, refHeight int) (float64, error) {
	c.Render()
	shrunk, err := c.pix.Shrink(refWidth, refHeight)
	if err != nil {
		return 0, err
	}
	f, err := shrunk.Compare(ref)
	if err != nil {
		return 0, err
	}
	c.fitness = f
	c.scored = true
	return f, nil
}

// Compare orders candidates by fitness, lowest first. Candidates with equal
// fitness are ordered by creation, oldest first, so sorting is total and
// deterministic.
func Compare(a, b *Candidate) int {
	if r := cmp.Compare(a.fitness, b.fitness); r != 0 {
		return r
	}
	return cmp.Compare(a.seq, b.seq)
}
