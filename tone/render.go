package tone

import (
	"encoding/binary"
	"math"
)

// BytesPerFrame is one 16-bit little-endian stereo frame.
const BytesPerFrame = 4

// Render synthesizes req as 16-bit little-endian stereo PCM at sampleRate,
// covering exactly the envelope window.
func Render(req Request, sampleRate int) []byte {
	frames := int(req.Envelope.Window * float64(sampleRate))
	if frames <= 0 {
		return nil
	}

	buf := make([]byte, frames*BytesPerFrame)
	dt := 1 / float64(sampleRate)
	for i := 0; i < frames; i++ {
		t := float64(i) * dt
		phase := math.Mod(req.Frequency*t, 1)
		v := oscillate(req.Waveform, phase) * req.Envelope.Gain(t)
		s := uint16(int16(math.Round(clampUnit(v) * math.MaxInt16)))
		binary.LittleEndian.PutUint16(buf[i*BytesPerFrame:], s)
		binary.LittleEndian.PutUint16(buf[i*BytesPerFrame+2:], s)
	}
	return buf
}

// oscillate returns the waveform value at phase in [0,1); both start at 0 rising.
func oscillate(w Waveform, phase float64) float64 {
	switch w {
	case Triangle:
		return 1 - 4*math.Abs(math.Mod(phase+0.25, 1)-0.5)
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

func clampUnit(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
