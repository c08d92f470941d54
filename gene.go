package evo

import (
	"fmt"
	"image"
	"math/rand/v2"

	"github.com/gogpu/evo/internal/raster"
)

// Primitive selects the shape family a gene encodes.
type Primitive uint8

const (
	// PrimitiveTriangle is a filled triangle. This is the default.
	PrimitiveTriangle Primitive = iota
	// PrimitiveLine is a one-pixel line segment.
	PrimitiveLine
)

// Mutation windows as a fraction of the image size.
const (
	triangleMutation = 0.2
	lineMutation     = 0.1
)

// String returns the primitive name.
func (p Primitive) String() string {
	switch p {
	case PrimitiveTriangle:
		return "triangle"
	case PrimitiveLine:
		return "line"
	default:
		return fmt.Sprintf("Primitive(%d)", uint8(p))
	}
}

// ParsePrimitive parses a primitive name as returned by Primitive.String.
func ParsePrimitive(s string) (Primitive, error) {
	switch s {
	case "triangle":
		return PrimitiveTriangle, nil
	case "line":
		return PrimitiveLine, nil
	default:
		return 0, fmt.Errorf("%w: unknown primitive %q", ErrInvalidOption, s)
	}
}

// vertices returns how many vertices of a Gene the primitive uses.
func (p Primitive) vertices() int {
	if p == PrimitiveLine {
		return 2
	}
	return 3
}

func (p Primitive) mutationWindow() float64 {
	if p == PrimitiveLine {
		return lineMutation
	}
	return triangleMutation
}

// Gene is one drawable primitive and the color it is painted with.
// Triangles use all three vertices; lines use the first two.
type Gene struct {
	Primitive Primitive
	Vertices  [3]image.Point
	Color     Color
}

// RandomGene returns a gene whose vertices are uniform over a width x height
// image and whose color is uniform over all four channels.
func RandomGene(p Primitive, width, height int, rng *rand.Rand) Gene {
	g := Gene{Primitive: p}
	for i := range p.vertices() {
		g.Vertices[i] = image.Pt(rng.IntN(width), rng.IntN(height))
	}
	g.Color = RandomColor(rng)
	return g
}

// Mutate moves every used vertex coordinate to a random value within a
// window around its current value. The window spans 20% of the image size
// for triangles and 10% for lines, clamped to the image. The color is left
// untouched.
func (g *Gene) Mutate(width, height int, rng *rand.Rand) {
	w := g.Primitive.mutationWindow() * float64(width)
	h := g.Primitive.mutationWindow() * float64(height)
	for i := range g.Primitive.vertices() {
		g.Vertices[i].X = perturb(g.Vertices[i].X, w, width, rng)
		g.Vertices[i].Y = perturb(g.Vertices[i].Y, h, height, rng)
	}
}

// shape returns the rasterizable form of the gene.
func (g Gene) shape() raster.Primitive {
	v := g.Vertices
	if g.Primitive == PrimitiveLine {
		return raster.NewLine(raster.Pt(v[0].X, v[0].Y), raster.Pt(v[1].X, v[1].Y))
	}
	return raster.NewTriangle(
		raster.Pt(v[0].X, v[0].Y),
		raster.Pt(v[1].X, v[1].Y),
		raster.Pt(v[2].X, v[2].Y),
	)
}

// perturb picks a value uniformly from [v-window/2, v+window/2] clamped to
// [0, limit).
func perturb(v int, window float64, limit int, rng *rand.Rand) int {
	lo := clampCoord(float64(v)-window/2, limit)
	hi := clampCoord(float64(v)+window/2, limit)
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

func clampCoord(v float64, limit int) int {
	switch {
	case v < 0:
		return 0
	case int(v) >= limit:
		return limit - 1
	default:
		return int(v)
	}
}
