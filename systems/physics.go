package systems

import (
	"github.com/automoto/polytone/growth"
	"github.com/automoto/polytone/physics"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGrowth advances every growing polygon by one tick.
func NewUpdateGrowth(m *growth.Machine) ecs.System {
	return func(*ecs.ECS) {
		m.Tick()
	}
}

// NewUpdatePhysics steps the engine at a fixed dt and removes released
// polygons that fell below despawnY.
func NewUpdatePhysics(pw *physics.World, dt, despawnY float64) ecs.System {
	return func(*ecs.ECS) {
		pw.Step(dt)
		pw.Despawn(despawnY)
	}
}
