package components

import (
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its rigid body
type BodyData struct {
	Body  *cp.Body
	Shape *cp.Shape
	Key   string // input key that spawned it, empty for walls
	Sides int
	Size  float64
}

var Body = donburi.NewComponentType[BodyData]()

// Static reports whether the body ignores gravity.
func (b *BodyData) Static() bool {
	return b.Body.GetType() == cp.BODY_STATIC
}

// Vertices returns the world-space outline of a polygon shape.
func (b *BodyData) Vertices() []cp.Vector {
	return b.AppendVertices(nil)
}

// AppendVertices appends the world-space outline to dst.
func (b *BodyData) AppendVertices(dst []cp.Vector) []cp.Vector {
	poly, ok := b.Shape.Class.(*cp.PolyShape)
	if !ok {
		return dst
	}
	for i := 0; i < poly.Count(); i++ {
		dst = append(dst, poly.TransformVert(i))
	}
	return dst
}
