package tone

import "math"

// SilenceFloor is the gain the exponential decay reaches at the end of a window.
const SilenceFloor = 0.001

// Envelope ramps gain linearly from 0 to Peak over Attack seconds, then decays
// exponentially to SilenceFloor at Window seconds, where the sound stops.
type Envelope struct {
	Attack float64
	Window float64
	Peak   float64
}

// Gain returns the envelope value t seconds after the tone started.
func (e Envelope) Gain(t float64) float64 {
	if t < 0 || t >= e.Window || e.Peak <= 0 {
		return 0
	}
	if t < e.Attack {
		return e.Peak * t / e.Attack
	}
	span := e.Window - e.Attack
	if span <= 0 {
		return e.Peak
	}
	return e.Peak * math.Pow(SilenceFloor/e.Peak, (t-e.Attack)/span)
}

// Shape describes one of the two tone variants before the volume is applied.
type Shape struct {
	Attack float64
	Window float64
	Peak   float64 // gain at full volume
}

// Envelope scales the shape's peak by volume.
func (s Shape) Envelope(volume float64) Envelope {
	return Envelope{Attack: s.Attack, Window: s.Window, Peak: s.Peak * volume}
}
