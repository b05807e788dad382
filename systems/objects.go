package systems

import (
	"github.com/automoto/polytone/physics"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateObjects keeps the occupancy grid in step with the bodies.
func NewUpdateObjects(pw *physics.World) ecs.System {
	return func(*ecs.ECS) {
		pw.SyncOccupancy()
	}
}
