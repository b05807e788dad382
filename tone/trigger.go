package tone

import "github.com/automoto/polytone/shared/gamemath"

// Kind tells the short identification tone from the sustained release tone.
type Kind int

const (
	Short Kind = iota
	Long
)

// Request is a fire-and-forget tone: once handed to an Output nothing tracks it.
type Request struct {
	Kind      Kind
	Sides     int
	Frequency float64
	Waveform  Waveform
	Envelope  Envelope
}

// Output plays tone requests. Implementations must not block.
type Output interface {
	Play(req Request)
}

// Outputs fans a request out to several outputs.
type Outputs []Output

func (o Outputs) Play(req Request) {
	for _, out := range o {
		if out != nil {
			out.Play(req)
		}
	}
}

// Config holds the pitch table and both envelope shapes.
type Config struct {
	Scale Scale
	Short Shape
	Long  Shape
}

// DefaultConfig is a 0.2s blip peaking at 0.3·volume and a 1.5s release tone peaking at 0.3.
var DefaultConfig = Config{
	Scale: DefaultScale,
	Short: Shape{Attack: 0.01, Window: 0.2, Peak: 0.3},
	Long:  Shape{Attack: 0.05, Window: 1.5, Peak: 0.3},
}

// Trigger turns side counts into tone requests.
type Trigger struct {
	cfg Config
	out Output
}

func NewTrigger(cfg Config, out Output) *Trigger {
	return &Trigger{cfg: cfg, out: out}
}

// PlayShort requests the short envelope at volume in [0,1].
func (t *Trigger) PlayShort(sides int, volume float64) {
	t.emit(t.Request(Short, sides, volume))
}

// PlayLong requests the sustained release envelope.
func (t *Trigger) PlayLong(sides int) {
	t.emit(t.Request(Long, sides, 1))
}

// Request builds the request PlayShort or PlayLong would send.
func (t *Trigger) Request(kind Kind, sides int, volume float64) Request {
	shape := t.cfg.Short
	if kind == Long {
		shape = t.cfg.Long
	}
	return Request{
		Kind:      kind,
		Sides:     sides,
		Frequency: t.cfg.Scale.Frequency(sides),
		Waveform:  WaveformFor(sides),
		Envelope:  shape.Envelope(gamemath.Clamp(volume, 0, 1)),
	}
}

func (t *Trigger) emit(req Request) {
	if t.out != nil {
		t.out.Play(req)
	}
}
