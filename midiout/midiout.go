// Package midiout mirrors tone requests to a MIDI output as note on/off pairs.
// It counts game ticks instead of running timers, so Update must be called
// once per tick.
package midiout

import (
	"log"
	"math"

	"github.com/automoto/polytone/tone"
	"gitlab.com/gomidi/midi/v2"
)

// Sender writes one MIDI message, e.g. the func returned by midi.SendTo.
type Sender func(msg midi.Message) error

type pendingOff struct {
	key uint8
	due int
}

// Output implements tone.Output.
type Output struct {
	send    Sender
	channel uint8
	tps     int
	tick    int
	pending []pendingOff
	failed  bool
}

// New returns an Output sending on channel (0-15) for a loop running at tps ticks per second.
func New(send Sender, channel uint8, tps int) *Output {
	if tps <= 0 {
		tps = 60
	}
	return &Output{send: send, channel: channel & 0x0f, tps: tps}
}

// Play sends NoteOn now and schedules NoteOff at the end of the envelope window.
// A key that is still sounding keeps a single NoteOff, at the later of the
// two due ticks, so a short note never cuts off a longer one on the same pitch.
func (o *Output) Play(req tone.Request) {
	key := tone.MIDIKey(req.Frequency)
	if key <= 0 || key > 127 {
		return
	}
	o.write(midi.NoteOn(o.channel, uint8(key), velocity(req.Envelope.Peak)))

	due := o.tick + int(math.Ceil(req.Envelope.Window*float64(o.tps)))
	for i := range o.pending {
		if o.pending[i].key == uint8(key) {
			o.pending[i].due = max(o.pending[i].due, due)
			return
		}
	}
	o.pending = append(o.pending, pendingOff{key: uint8(key), due: due})
}

// Update advances one tick and sends the note offs that fell due.
func (o *Output) Update() {
	o.tick++
	kept := o.pending[:0]
	for _, p := range o.pending {
		if p.due <= o.tick {
			o.write(midi.NoteOff(o.channel, p.key))
			continue
		}
		kept = append(kept, p)
	}
	o.pending = kept
}

// Pending is the number of keys still sounding.
func (o *Output) Pending() int {
	return len(o.pending)
}

// Flush sends every outstanding NoteOff immediately.
func (o *Output) Flush() {
	for _, p := range o.pending {
		o.write(midi.NoteOff(o.channel, p.key))
	}
	o.pending = o.pending[:0]
}

func (o *Output) write(msg midi.Message) {
	if o.send == nil {
		return
	}
	if err := o.send(msg); err != nil && !o.failed {
		// logged once; a disconnected port would otherwise log every tick
		log.Printf("midi: send %s: %v", msg, err)
		o.failed = true
	}
}

// velocity maps an envelope peak (0.3 at full volume) onto 1..127.
func velocity(peak float64) uint8 {
	v := math.Round(peak / 0.3 * 127)
	if v < 1 {
		return 1
	}
	if v > 127 {
		return 127
	}
	return uint8(v)
}
