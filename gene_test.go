package evo

import (
	"errors"
	"image"
	"testing"
)

func TestParsePrimitive(t *testing.T) {
	for _, p := range []Primitive{PrimitiveTriangle, PrimitiveLine} {
		got, err := ParsePrimitive(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePrimitive(%q) = %v, %v, want %v", p.String(), got, err, p)
		}
	}
	if _, err := ParsePrimitive("circle"); !errors.Is(err, ErrInvalidOption) {
		t.Errorf("ParsePrimitive(circle) error = %v, want ErrInvalidOption", err)
	}
	if s := Primitive(9).String(); s != "Primitive(9)" {
		t.Errorf("String() = %q, want Primitive(9)", s)
	}
}

func inBounds(p image.Point, w, h int) bool {
	return p.X >= 0 && p.X < w && p.Y >= 0 && p.Y < h
}

func TestRandomGene_InBounds(t *testing.T) {
	rng := NewRand(7)
	for range 500 {
		g := RandomGene(PrimitiveTriangle, 30, 20, rng)
		for i, v := range g.Vertices {
			if !inBounds(v, 30, 20) {
				t.Fatalf("vertex %d = %v outside 30x20", i, v)
			}
		}
	}
}

func TestRandomGene_LineUsesTwoVertices(t *testing.T) {
	rng := NewRand(8)
	for range 100 {
		g := RandomGene(PrimitiveLine, 30, 20, rng)
		if g.Vertices[2] != (image.Point{}) {
			t.Fatalf("line gene third vertex = %v, want zero", g.Vertices[2])
		}
		g.Mutate(30, 20, rng)
		if g.Vertices[2] != (image.Point{}) {
			t.Fatalf("mutated line gene third vertex = %v, want zero", g.Vertices[2])
		}
	}
}

func TestGeneMutate_Window(t *testing.T) {
	tests := []struct {
		name      string
		primitive Primitive
		maxStep   int
	}{
		{"triangle 20%", PrimitiveTriangle, 10},
		{"line 10%", PrimitiveLine, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := NewRand(9)
			g := RandomGene(tt.primitive, 100, 100, rng)
			for range 1000 {
				before := g
				g.Mutate(100, 100, rng)
				if g.Color != before.Color {
					t.Fatal("Mutate changed the color")
				}
				for i := range tt.primitive.vertices() {
					v, b := g.Vertices[i], before.Vertices[i]
					if !inBounds(v, 100, 100) {
						t.Fatalf("vertex %v outside 100x100", v)
					}
					if abs(v.X-b.X) > tt.maxStep || abs(v.Y-b.Y) > tt.maxStep {
						t.Fatalf("vertex moved %v -> %v, max step %d", b, v, tt.maxStep)
					}
				}
			}
		})
	}
}

func TestGeneMutate_TinyImage(t *testing.T) {
	rng := NewRand(10)
	g := RandomGene(PrimitiveTriangle, 1, 1, rng)
	for range 10 {
		g.Mutate(1, 1, rng)
	}
	for _, v := range g.Vertices {
		if v != (image.Point{}) {
			t.Errorf("vertex = %v on a 1x1 image, want (0,0)", v)
		}
	}
}

func TestGeneMutate_ClampsAtEdges(t *testing.T) {
	rng := NewRand(11)
	g := Gene{
		Primitive: PrimitiveTriangle,
		Vertices:  [3]image.Point{{0, 0}, {49, 49}, {0, 49}},
		Color:     Black,
	}
	for range 200 {
		g.Mutate(50, 50, rng)
		for _, v := range g.Vertices {
			if !inBounds(v, 50, 50) {
				t.Fatalf("vertex %v outside 50x50", v)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
