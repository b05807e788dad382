package config

// KeyBinding maps a key to a polygon and a staff position
type KeyBinding struct {
	Sides     int `yaml:"sides"`
	StaffLine int `yaml:"staff_line"` // index into Staff.LineY
}

// InputConfig holds the note keys and the control keys. Key names are the
// lower-cased ebiten key names ("a", "backspace", "f3").
type InputConfig struct {
	Keys map[string]KeyBinding `yaml:"keys"`

	ClearStaff  string `yaml:"clear_staff"`
	ToggleDebug string `yaml:"toggle_debug"`
	Quit        string `yaml:"quit"`
}

// Input is the global input configuration
var Input InputConfig

func defaultInput() InputConfig {
	return InputConfig{
		Keys: map[string]KeyBinding{
			"a": {Sides: 3, StaffLine: 0},
			"s": {Sides: 4, StaffLine: 1},
			"d": {Sides: 5, StaffLine: 2},
			"f": {Sides: 6, StaffLine: 3},
			"g": {Sides: 7, StaffLine: 4},
			"h": {Sides: 8, StaffLine: 5},
			"j": {Sides: 9, StaffLine: 6},
			"k": {Sides: 10, StaffLine: 7},
		},
		ClearStaff:  "backspace",
		ToggleDebug: "f3",
		Quit:        "escape",
	}
}

// Sides returns the key -> side count table.
func (c InputConfig) Sides() map[string]int {
	out := make(map[string]int, len(c.Keys))
	for k, b := range c.Keys {
		out[k] = b.Sides
	}
	return out
}

// StaffLines returns the key -> staff line table.
func (c InputConfig) StaffLines() map[string]int {
	out := make(map[string]int, len(c.Keys))
	for k, b := range c.Keys {
		out[k] = b.StaffLine
	}
	return out
}

// IsControl reports whether key is bound to a control action rather than a note.
func (c InputConfig) IsControl(key string) bool {
	return key == c.ClearStaff || key == c.ToggleDebug || key == c.Quit
}
