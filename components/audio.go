package components

import (
	"github.com/automoto/polytone/tone"
	"github.com/yohamta/donburi"
)

// AudioData queues tone requests between the simulation and the audio system (singleton component)
type AudioData struct {
	PendingTones []tone.Request
	Last         tone.Request // most recent request, for the HUD
	Played       int
	Voices       int // players currently alive
	Dropped      int // requests skipped because every voice was busy
}

var Audio = donburi.NewComponentType[AudioData]()
