package systems

import (
	"github.com/automoto/polytone/midiout"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMIDI sends the note-offs that came due this tick.
func NewUpdateMIDI(out *midiout.Output) ecs.System {
	return func(*ecs.ECS) {
		out.Update()
	}
}
