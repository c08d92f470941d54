package evo

import (
	"bytes"
	"errors"
	"math"
	"slices"
	"testing"
)

// testReference renders a random 30x30 target and shrinks it to 10x10.
func testReference(t testing.TB, seed uint64) []uint8 {
	t.Helper()
	target, err := NewCandidate(30, 30, NewRand(seed))
	if err != nil {
		t.Fatal(err)
	}
	ref, err := target.Shrink(10, 10)
	if err != nil {
		t.Fatal(err)
	}
	return ref.Bytes()
}

func newTestPopulation(t testing.TB, opts ...PopulationOption) *Population {
	t.Helper()
	opts = append([]PopulationOption{WithSeed(42), WithPopulationSize(10)}, opts...)
	p, err := NewPopulation(30, 30, testReference(t, 99), opts...)
	if err != nil {
		t.Fatalf("NewPopulation: %v", err)
	}
	t.Cleanup(p.Close)
	return p
}

func TestNewPopulation_Errors(t *testing.T) {
	ref := make([]uint8, 400)
	tests := []struct {
		name string
		w, h int
		ref  []uint8
		opts []PopulationOption
		want error
	}{
		{"zero width", 0, 30, ref, nil, ErrInvalidDimensions},
		{"zero reference", 30, 30, nil, []PopulationOption{WithReferenceSize(0, 10)}, ErrInvalidDimensions},
		{"short reference", 30, 30, ref[:396], nil, ErrReferenceSize},
		{"long reference", 30, 30, append(slices.Clone(ref), 0, 0, 0, 0), nil, ErrReferenceSize},
		{"not divisible", 35, 30, ref, nil, ErrNotDivisible},
		{"cull fraction one", 30, 30, ref, []PopulationOption{WithCullFraction(1)}, ErrInvalidOption},
		{"negative cull fraction", 30, 30, ref, []PopulationOption{WithCullFraction(-0.1)}, ErrInvalidOption},
		{"negative size", 30, 30, ref, []PopulationOption{WithPopulationSize(-1)}, ErrInvalidOption},
		{"bad gene count", 30, 30, ref, []PopulationOption{
			WithPopulationSize(1), WithCandidateOptions(WithGeneCount(0)),
		}, ErrInvalidOption},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPopulation(tt.w, tt.h, tt.ref, tt.opts...)
			if !errors.Is(err, tt.want) || p != nil {
				t.Errorf("NewPopulation = %v, %v, want nil, %v", p, err, tt.want)
			}
		})
	}
}

func TestPopulation_Empty(t *testing.T) {
	p, err := NewPopulation(30, 30, testReference(t, 1))
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", p.Len())
	}
	if f := p.BestFitness(); f != 0 {
		t.Errorf("BestFitness() = %v, want 0", f)
	}
	if _, ok := p.BestPixels(); ok {
		t.Error("BestPixels() ok = true on empty population")
	}
	if _, ok := p.Best(); ok {
		t.Error("Best() ok = true on empty population")
	}
	if err := p.Evolve(); err != nil {
		t.Fatalf("Evolve on empty population: %v", err)
	}
	if p.Len() != 0 || p.Generation() != 1 {
		t.Errorf("after Evolve: Len = %d, Generation = %d, want 0, 1", p.Len(), p.Generation())
	}
	if s := p.Stats(); s != (Stats{Generation: 1}) {
		t.Errorf("Stats() = %+v, want zero values", s)
	}
}

func TestPopulation_AddMember(t *testing.T) {
	p, err := NewPopulation(30, 30, testReference(t, 2), WithSeed(3))
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 3; i++ {
		if err := p.AddMember(); err != nil {
			t.Fatalf("AddMember: %v", err)
		}
		if p.Len() != i {
			t.Errorf("Len() = %d, want %d", p.Len(), i)
		}
	}
	best, ok := p.Best()
	if !ok || !best.Scored() {
		t.Fatal("best member is not scored")
	}
	if p.BestFitness() != best.Fitness() {
		t.Errorf("BestFitness() = %v, want %v", p.BestFitness(), best.Fitness())
	}
}

func TestPopulation_ReferenceCopied(t *testing.T) {
	ref := testReference(t, 4)
	p, err := NewPopulation(30, 30, ref)
	if err != nil {
		t.Fatal(err)
	}
	want := slices.Clone(ref)
	clear(ref)
	if !bytes.Equal(p.Reference(), want) {
		t.Error("population aliases the caller's reference buffer")
	}
}

func TestPopulation_EvolveKeepsSize(t *testing.T) {
	p := newTestPopulation(t)
	for g := 1; g <= 15; g++ {
		if err := p.Evolve(); err != nil {
			t.Fatalf("Evolve: %v", err)
		}
		if p.Len() != 10 {
			t.Fatalf("generation %d: Len() = %d, want 10", g, p.Len())
		}
		if p.Generation() != g {
			t.Fatalf("Generation() = %d, want %d", p.Generation(), g)
		}
	}
}

func TestPopulation_EvolveCullsWorst(t *testing.T) {
	p := newTestPopulation(t)
	p.sort()
	worst := slices.Clone(p.members[:2])
	survivors := slices.Clone(p.members[2:])

	if err := p.Evolve(); err != nil {
		t.Fatal(err)
	}
	for _, c := range worst {
		if slices.Contains(p.members, c) {
			t.Errorf("culled candidate seq %d still a member", c.seq)
		}
	}
	for _, c := range survivors {
		if !slices.Contains(p.members, c) {
			t.Errorf("survivor seq %d was dropped", c.seq)
		}
	}
	var fresh int
	for _, c := range p.members {
		if !c.Scored() {
			t.Errorf("member seq %d not scored after Evolve", c.seq)
		}
		if c.seq >= 10 {
			fresh++
		}
	}
	if fresh != 2 {
		t.Errorf("spawned %d members, want 2", fresh)
	}
}

func TestPopulation_CullFraction(t *testing.T) {
	tests := []struct {
		fraction float64
		size     int
		want     int
	}{
		{0.2, 10, 2},
		{0.2, 4, 0},
		{0.5, 7, 3},
		{0, 10, 0},
	}
	for _, tt := range tests {
		p := newTestPopulation(t, WithPopulationSize(tt.size), WithCullFraction(tt.fraction))
		if err := p.Evolve(); err != nil {
			t.Fatal(err)
		}
		var fresh int
		for _, c := range p.members {
			if c.seq >= uint64(tt.size) {
				fresh++
			}
		}
		if fresh != tt.want || p.Len() != tt.size {
			t.Errorf("fraction %v of %d: spawned %d (len %d), want %d", tt.fraction, tt.size, fresh, p.Len(), tt.want)
		}
	}
}

func TestPopulation_BestIsMaximum(t *testing.T) {
	p := newTestPopulation(t)
	for range 5 {
		if err := p.Evolve(); err != nil {
			t.Fatal(err)
		}
		fit := p.Fitnesses()
		if !slices.IsSorted(fit) {
			t.Errorf("Fitnesses() not ascending: %v", fit)
		}
		if got, want := p.BestFitness(), slices.Max(fit); got != want {
			t.Errorf("BestFitness() = %v, want %v", got, want)
		}
	}
}

func TestPopulation_BestPixels(t *testing.T) {
	p := newTestPopulation(t)
	v, ok := p.BestPixels()
	if !ok {
		t.Fatal("BestPixels() ok = false")
	}
	if v.Len() != 30*30*4 || v.Width() != 30 || v.Height() != 30 {
		t.Errorf("view = %dx%d len %d, want 30x30 len %d", v.Width(), v.Height(), v.Len(), 30*30*4)
	}
	best, _ := p.Best()
	if !bytes.Equal(v.Bytes(), best.View().Bytes()) {
		t.Error("BestPixels does not view the best candidate")
	}
}

func TestPopulation_Deterministic(t *testing.T) {
	run := func(opts ...PopulationOption) (float64, []uint8) {
		p := newTestPopulation(t, opts...)
		for range 10 {
			if err := p.Evolve(); err != nil {
				t.Fatal(err)
			}
		}
		v, _ := p.BestPixels()
		return p.BestFitness(), slices.Clone(v.Bytes())
	}

	f1, px1 := run()
	f2, px2 := run()
	if f1 != f2 || !bytes.Equal(px1, px2) {
		t.Errorf("same seed diverged: %v vs %v", f1, f2)
	}

	f3, px3 := run(WithWorkers(4))
	if f1 != f3 || !bytes.Equal(px1, px3) {
		t.Errorf("parallel run diverged from serial: %v vs %v", f1, f3)
	}

	f4, _ := run(WithSeed(7))
	if f4 == f1 {
		t.Logf("different seeds gave equal best fitness %v", f4)
	}
}

func TestPopulation_Lines(t *testing.T) {
	p := newTestPopulation(t, WithCandidateOptions(WithPrimitive(PrimitiveLine), WithGeneCount(8)))
	if err := p.Evolve(); err != nil {
		t.Fatal(err)
	}
	best, _ := p.Best()
	for _, g := range best.Genes() {
		if g.Primitive != PrimitiveLine {
			t.Fatalf("gene primitive = %v, want line", g.Primitive)
		}
	}
	if len(best.Genes()) != 8 {
		t.Errorf("len(Genes()) = %d, want 8", len(best.Genes()))
	}
}

func TestPopulation_CloseFallsBackToSerial(t *testing.T) {
	p := newTestPopulation(t, WithWorkers(3))
	p.Close()
	if err := p.Evolve(); err != nil {
		t.Fatalf("Evolve after Close: %v", err)
	}
	if p.Len() != 10 {
		t.Errorf("Len() = %d, want 10", p.Len())
	}
}

func TestPopulation_Stats(t *testing.T) {
	p := newTestPopulation(t)
	if err := p.Evolve(); err != nil {
		t.Fatal(err)
	}
	s := p.Stats()
	if s.Size != 10 || s.Generation != 1 {
		t.Errorf("Stats size, generation = %d, %d, want 10, 1", s.Size, s.Generation)
	}
	if s.Best != p.BestFitness() {
		t.Errorf("Stats.Best = %v, want %v", s.Best, p.BestFitness())
	}
	if s.Worst > s.Mean || s.Mean > s.Best {
		t.Errorf("Stats not ordered: worst %v mean %v best %v", s.Worst, s.Mean, s.Best)
	}
	if s.StdDev < 0 || math.IsNaN(s.StdDev) {
		t.Errorf("Stats.StdDev = %v", s.StdDev)
	}

	single := newTestPopulation(t, WithPopulationSize(1))
	if s := single.Stats(); s.StdDev != 0 || s.Mean != s.Best {
		t.Errorf("single member Stats = %+v", s)
	}
}
