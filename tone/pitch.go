// Package tone maps polygon side counts to pitches and gain envelopes and
// renders them to PCM. It has no audio device dependency: requests are handed
// to an Output which decides how to play them.
package tone

import (
	"fmt"
	"math"
)

// Waveform is the oscillator family used for a tone.
type Waveform int

const (
	Sine Waveform = iota
	Triangle
)

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Triangle:
		return "triangle"
	}
	return fmt.Sprintf("Waveform(%d)", int(w))
}

// Pentatonic is the semitone offset table indexed by (sides-3) mod 8.
var Pentatonic = []int{0, 2, 4, 7, 9, 12, 14, 16}

// Scale maps side counts onto pitches.
type Scale struct {
	Base    float64 // Hz for semitone 0
	Offsets []int
}

// DefaultScale starts at A3.
var DefaultScale = Scale{Base: 220, Offsets: Pentatonic}

// Semitone returns the offset above Base for a side count.
func (s Scale) Semitone(sides int) int {
	n := len(s.Offsets)
	if n == 0 {
		return 0
	}
	i := ((sides-3)%n + n) % n
	return s.Offsets[i]
}

// Frequency returns Base·2^(semitone/12).
func (s Scale) Frequency(sides int) float64 {
	return s.Base * math.Pow(2, float64(s.Semitone(sides))/12)
}

// WaveformFor picks sine for even side counts and triangle for odd ones.
func WaveformFor(sides int) Waveform {
	if sides%2 == 0 {
		return Sine
	}
	return Triangle
}

// Semitone uses DefaultScale.
func Semitone(sides int) int { return DefaultScale.Semitone(sides) }

// Frequency uses DefaultScale.
func Frequency(sides int) float64 { return DefaultScale.Frequency(sides) }

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// MIDIKey returns the nearest MIDI note number for a frequency (A4 = 69 = 440 Hz).
func MIDIKey(freq float64) int {
	if freq <= 0 {
		return 0
	}
	return int(math.Round(69 + 12*math.Log2(freq/440)))
}

// NoteName returns the scientific pitch name of a MIDI note, e.g. 57 -> "A3".
func NoteName(key int) string {
	if key < 0 {
		return "?"
	}
	return fmt.Sprintf("%s%d", noteNames[key%12], key/12-1)
}
