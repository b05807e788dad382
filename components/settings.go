package components

import "github.com/yohamta/donburi"

// SettingsData holds runtime toggles (singleton component)
type SettingsData struct {
	Debug bool
	Quit  bool
}

var Settings = donburi.NewComponentType[SettingsData]()
