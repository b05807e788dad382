// Package gamemath holds the pure geometry helpers shared by the simulation,
// the placement strategies and the renderers. No ebitengine or physics imports.
package gamemath

import (
	"errors"
	"fmt"
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// ErrInvalidPolygon is returned for side counts below 3 or non-positive radii.
var ErrInvalidPolygon = errors.New("invalid polygon")

// GenerateVertices returns the vertex ring of a regular polygon centred on the
// origin. Vertex i sits at angle i*2π/sides at distance radius.
func GenerateVertices(sides int, radius float64) ([]dmath.Vec2, error) {
	if sides < 3 || !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: sides=%d radius=%g", ErrInvalidPolygon, sides, radius)
	}

	step := 2 * math.Pi / float64(sides)
	verts := make([]dmath.Vec2, sides)
	for i := range verts {
		angle := float64(i) * step
		verts[i] = dmath.NewVec2(radius*math.Cos(angle), radius*math.Sin(angle))
	}
	return verts, nil
}

// MustGenerateVertices is GenerateVertices for inputs already validated by the caller.
func MustGenerateVertices(sides int, radius float64) []dmath.Vec2 {
	verts, err := GenerateVertices(sides, radius)
	if err != nil {
		panic(err)
	}
	return verts
}

// PolygonArea returns the unsigned shoelace area of a vertex ring.
func PolygonArea(verts []dmath.Vec2) float64 {
	var sum float64
	for i := range verts {
		j := (i + 1) % len(verts)
		sum += verts[i].X*verts[j].Y - verts[j].X*verts[i].Y
	}
	return math.Abs(sum) / 2
}

// Bounds returns the axis-aligned box enclosing verts translated by offset.
func Bounds(verts []dmath.Vec2, offset dmath.Vec2) Rect {
	if len(verts) == 0 {
		return Rect{X: offset.X, Y: offset.Y}
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range verts {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return Rect{X: offset.X + minX, Y: offset.Y + minY, W: maxX - minX, H: maxY - minY}
}
