package gamemath

import dmath "github.com/yohamta/donburi/features/math"

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Center() dmath.Vec2 {
	return dmath.NewVec2(r.X+r.W/2, r.Y+r.H/2)
}

func (r Rect) Contains(p dmath.Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// PointAt maps (u, v) in [0,1]² onto the rectangle.
func (r Rect) PointAt(u, v float64) dmath.Vec2 {
	return dmath.NewVec2(r.X+u*r.W, r.Y+v*r.H)
}
