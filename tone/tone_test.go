package tone

import (
	"encoding/binary"
	"math"
	"testing"
)

type recorder struct {
	reqs []Request
}

func (r *recorder) Play(req Request) { r.reqs = append(r.reqs, req) }

func TestFrequency(t *testing.T) {
	tests := []struct {
		sides    int
		semitone int
		freq     float64
		waveform Waveform
	}{
		{3, 0, 220, Triangle},
		{4, 2, 220 * math.Pow(2, 2.0/12), Sine},
		{5, 4, 220 * math.Pow(2, 4.0/12), Triangle},
		{6, 7, 220 * math.Pow(2, 7.0/12), Sine},
		{8, 12, 440, Sine},
		{10, 16, 220 * math.Pow(2, 16.0/12), Sine},
		{11, 0, 220, Triangle}, // wraps
	}

	for _, tt := range tests {
		if got := Semitone(tt.sides); got != tt.semitone {
			t.Errorf("Semitone(%d) = %d, want %d", tt.sides, got, tt.semitone)
		}
		if got := Frequency(tt.sides); math.Abs(got-tt.freq) > 1e-9 {
			t.Errorf("Frequency(%d) = %g, want %g", tt.sides, got, tt.freq)
		}
		if got := WaveformFor(tt.sides); got != tt.waveform {
			t.Errorf("WaveformFor(%d) = %v, want %v", tt.sides, got, tt.waveform)
		}
	}
}

func TestSemitoneBelowThreeWrapsPositive(t *testing.T) {
	if got := Semitone(2); got != 16 {
		t.Errorf("Semitone(2) = %d, want 16", got)
	}
}

func TestMIDIKeyAndNoteName(t *testing.T) {
	if k := MIDIKey(Frequency(3)); k != 57 {
		t.Errorf("MIDIKey(220) = %d, want 57", k)
	}
	if k := MIDIKey(Frequency(8)); k != 69 {
		t.Errorf("MIDIKey(440) = %d, want 69", k)
	}
	if n := NoteName(57); n != "A3" {
		t.Errorf("NoteName(57) = %q", n)
	}
	if n := NoteName(60); n != "C4" {
		t.Errorf("NoteName(60) = %q", n)
	}
}

func TestEnvelopeGain(t *testing.T) {
	env := Envelope{Attack: 0.01, Window: 0.2, Peak: 0.15}

	if g := env.Gain(0); g != 0 {
		t.Errorf("Gain(0) = %g, want 0", g)
	}
	if g := env.Gain(0.005); math.Abs(g-0.075) > 1e-12 {
		t.Errorf("Gain mid-attack = %g, want 0.075", g)
	}
	if g := env.Gain(0.01); math.Abs(g-0.15) > 1e-12 {
		t.Errorf("Gain at attack end = %g, want peak", g)
	}
	if g := env.Gain(0.2 - 1e-9); math.Abs(g-SilenceFloor) > 1e-6 {
		t.Errorf("Gain at window end = %g, want ~%g", g, SilenceFloor)
	}
	if g := env.Gain(0.2); g != 0 {
		t.Errorf("Gain after stop = %g, want 0", g)
	}

	prev := env.Gain(0.01)
	for ts := 0.02; ts < 0.2; ts += 0.01 {
		g := env.Gain(ts)
		if g >= prev {
			t.Fatalf("decay not monotonic at %g: %g >= %g", ts, g, prev)
		}
		prev = g
	}
}

func TestTriggerShortAndLong(t *testing.T) {
	rec := &recorder{}
	trig := NewTrigger(DefaultConfig, rec)

	trig.PlayShort(3, 0.5)
	trig.PlayLong(4)
	trig.PlayShort(5, 3) // clamped to 1

	if len(rec.reqs) != 3 {
		t.Fatalf("got %d requests, want 3", len(rec.reqs))
	}

	short := rec.reqs[0]
	if short.Kind != Short || short.Frequency != 220 || short.Waveform != Triangle {
		t.Errorf("short request = %+v", short)
	}
	if short.Envelope.Window != 0.2 || short.Envelope.Attack != 0.01 || math.Abs(short.Envelope.Peak-0.15) > 1e-12 {
		t.Errorf("short envelope = %+v", short.Envelope)
	}

	long := rec.reqs[1]
	if long.Kind != Long || long.Waveform != Sine || long.Envelope.Window != 1.5 || long.Envelope.Attack != 0.05 || long.Envelope.Peak != 0.3 {
		t.Errorf("long request = %+v", long)
	}

	if p := rec.reqs[2].Envelope.Peak; math.Abs(p-0.3) > 1e-12 {
		t.Errorf("clamped peak = %g, want 0.3", p)
	}
}

func TestTriggerWithoutOutput(t *testing.T) {
	trig := NewTrigger(DefaultConfig, nil)
	trig.PlayShort(3, 1)
	trig.PlayLong(3)
}

func TestOutputsFanOut(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	NewTrigger(DefaultConfig, Outputs{a, nil, b}).PlayLong(6)
	if len(a.reqs) != 1 || len(b.reqs) != 1 {
		t.Errorf("fan-out delivered %d and %d requests", len(a.reqs), len(b.reqs))
	}
}

func TestRender(t *testing.T) {
	const rate = 44100
	req := NewTrigger(DefaultConfig, nil).Request(Short, 4, 1)

	pcm := Render(req, rate)
	frames := int(0.2 * rate)
	if len(pcm) != frames*BytesPerFrame {
		t.Fatalf("len = %d, want %d", len(pcm), frames*BytesPerFrame)
	}

	var peak int
	for i := 0; i < frames; i++ {
		l := int16(binary.LittleEndian.Uint16(pcm[i*4:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i*4+2:]))
		if l != r {
			t.Fatalf("frame %d: channels differ %d != %d", i, l, r)
		}
		if a := int(math.Abs(float64(l))); a > peak {
			peak = a
		}
	}

	// peak gain is 0.3 so no sample may exceed 0.3 full scale, rounded up
	const limit = 9831
	if peak > limit || peak == 0 {
		t.Errorf("peak sample = %d, want (0, %d]", peak, limit)
	}
	if first := int16(binary.LittleEndian.Uint16(pcm)); first != 0 {
		t.Errorf("first sample = %d, want 0", first)
	}
}

func TestRenderEmptyWindow(t *testing.T) {
	if pcm := Render(Request{}, 44100); pcm != nil {
		t.Errorf("Render of empty request returned %d bytes", len(pcm))
	}
}

func TestOscillate(t *testing.T) {
	for _, w := range []Waveform{Sine, Triangle} {
		if v := oscillate(w, 0); math.Abs(v) > 1e-12 {
			t.Errorf("%v at phase 0 = %g", w, v)
		}
		if v := oscillate(w, 0.25); math.Abs(v-1) > 1e-12 {
			t.Errorf("%v at phase 0.25 = %g", w, v)
		}
		if v := oscillate(w, 0.75); math.Abs(v+1) > 1e-12 {
			t.Errorf("%v at phase 0.75 = %g", w, v)
		}
	}
}
