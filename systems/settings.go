package systems

import (
	"github.com/automoto/polytone/archetypes"
	"github.com/automoto/polytone/components"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, creating if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = archetypes.Settings.Spawn(e)
	}
	return components.Settings.Get(entry)
}

// QuitRequested reports whether the quit key was pressed.
func QuitRequested(e *ecs.ECS) bool {
	return GetOrCreateSettings(e).Quit
}
