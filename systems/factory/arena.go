package factory

import (
	"github.com/automoto/polytone/physics"
	"github.com/automoto/polytone/shared/arena"
	"github.com/yohamta/donburi"
)

// CreateBoundaries adds every wall of the arena to the physics world.
func CreateBoundaries(pw *physics.World, a *arena.Arena) []*donburi.Entry {
	walls := make([]*donburi.Entry, 0, len(a.Boundaries))
	for _, b := range a.Boundaries {
		walls = append(walls, pw.AddBoundary(b.Rect))
	}
	return walls
}
