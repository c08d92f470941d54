package evo

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the fitness distribution of a population.
type Stats struct {
	Generation int
	Size       int
	Best       float64
	Worst      float64
	Mean       float64
	StdDev     float64
}

// Stats returns a summary of the current member fitnesses. All values are 0
// for an empty population; StdDev is 0 for a single member.
func (p *Population) Stats() Stats {
	s := Stats{Generation: p.generation, Size: len(p.members)}
	if len(p.members) == 0 {
		return s
	}

	fit := p.Fitnesses()
	s.Best = floats.Max(fit)
	s.Worst = floats.Min(fit)
	if len(fit) == 1 {
		s.Mean = fit[0]
		return s
	}
	s.Mean, s.StdDev = stat.MeanStdDev(fit, nil)
	return s
}
