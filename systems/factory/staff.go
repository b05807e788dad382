package factory

import (
	"github.com/automoto/polytone/archetypes"
	"github.com/automoto/polytone/components"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStaff spawns the staff singleton, hidden for delay frames and then
// faded in over fadeFrames.
func CreateStaff(ecs *ecs.ECS, delay, fadeFrames int) *donburi.Entry {
	staff := archetypes.Staff.Spawn(ecs)
	components.Staff.SetValue(staff, components.StaffData{
		Delay: delay,
		Fade:  gween.New(0, 1, float32(max(fadeFrames, 1)), ease.InOutQuad),
	})
	return staff
}

// CreateMarker spawns a note marker at staff coordinates that pops in over popFrames.
func CreateMarker(ecs *ecs.ECS, x, y float64, line, popFrames int) *donburi.Entry {
	marker := archetypes.Marker.Spawn(ecs)
	components.Marker.SetValue(marker, components.MarkerData{
		X:    x,
		Y:    y,
		Line: line,
		Pop:  gween.New(0, 1, float32(max(popFrames, 1)), ease.OutBack),
	})
	return marker
}
