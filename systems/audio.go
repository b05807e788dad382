package systems

import (
	"github.com/automoto/polytone/archetypes"
	"github.com/automoto/polytone/assets"
	"github.com/automoto/polytone/components"
	"github.com/automoto/polytone/tone"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// AudioOutput is the tone.Output of the scene. Requests are queued on the
// ECS and played by the audio system on its next update.
type AudioOutput struct {
	ecs *ecs.ECS
}

func NewAudioOutput(e *ecs.ECS) *AudioOutput {
	return &AudioOutput{ecs: e}
}

func (o *AudioOutput) Play(req tone.Request) {
	a := GetOrCreateAudio(o.ecs)
	a.PendingTones = append(a.PendingTones, req)
	a.Last = req
	a.Played++
}

// AudioSettings are the playback values the audio system needs.
type AudioSettings struct {
	MasterVolume float64
	MaxVoices    int
}

// NewUpdateAudio drains queued tone requests into ebiten players. Finished
// players are closed every tick; requests beyond MaxVoices are dropped.
func NewUpdateAudio(ctx *audio.Context, bank *assets.ToneBank, s AudioSettings) ecs.System {
	var voices []*audio.Player

	return func(e *ecs.ECS) {
		a := GetOrCreateAudio(e)

		alive := voices[:0]
		for _, p := range voices {
			if p.IsPlaying() {
				alive = append(alive, p)
				continue
			}
			_ = p.Close()
		}
		clear(voices[len(alive):])
		voices = alive

		for _, req := range a.PendingTones {
			if s.MaxVoices > 0 && len(voices) >= s.MaxVoices {
				a.Dropped++
				continue
			}
			pcm := bank.PCM(req)
			if len(pcm) == 0 {
				continue
			}
			p := ctx.NewPlayerFromBytes(pcm)
			p.SetVolume(s.MasterVolume)
			p.Play()
			voices = append(voices, p)
		}
		a.PendingTones = a.PendingTones[:0]
		a.Voices = len(voices)
	}
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = archetypes.Audio.Spawn(e)
		components.Audio.SetValue(entry, components.AudioData{
			PendingTones: make([]tone.Request, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
