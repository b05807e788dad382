package systems

import (
	"strings"

	cfg "github.com/automoto/polytone/config"
	"github.com/automoto/polytone/growth"
	"github.com/automoto/polytone/staff"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// KeyName is the lower-cased ebiten name of k ("a", "backspace", "f3").
func KeyName(k ebiten.Key) string {
	return strings.ToLower(k.String())
}

// NewUpdateKeys forwards key edges to the growth machine and handles the
// control keys. Every growing key is released when the window loses focus,
// since its key-up would otherwise never arrive.
func NewUpdateKeys(m *growth.Machine, sink *staff.Sink, in cfg.InputConfig) ecs.System {
	var pressed, released []ebiten.Key
	focused := true

	return func(e *ecs.ECS) {
		settings := GetOrCreateSettings(e)

		if !ebiten.IsFocused() {
			if focused {
				m.ReleaseAll()
			}
			focused = false
			return
		}
		focused = true

		pressed = inpututil.AppendJustPressedKeys(pressed[:0])
		for _, k := range pressed {
			switch name := KeyName(k); name {
			case in.ClearStaff:
				sink.Clear()
			case in.ToggleDebug:
				settings.Debug = !settings.Debug
			case in.Quit:
				settings.Quit = true
			default:
				m.KeyDown(name)
			}
		}

		released = inpututil.AppendJustReleasedKeys(released[:0])
		for _, k := range released {
			if name := KeyName(k); !in.IsControl(name) {
				m.KeyUp(name)
			}
		}
	}
}
