package config

// ToneShape is one envelope variant: linear attack then exponential decay
// until the window ends.
type ToneShape struct {
	Attack float64 `yaml:"attack"` // seconds
	Window float64 `yaml:"window"` // seconds
	Peak   float64 `yaml:"peak"`   // gain at full volume
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int       `yaml:"sample_rate"`
	MasterVolume  float64   `yaml:"master_volume"`
	BaseFrequency float64   `yaml:"base_frequency"` // Hz for semitone 0
	Offsets       []int     `yaml:"offsets"`        // semitones indexed by (sides-3) mod len
	Short         ToneShape `yaml:"short"`
	Long          ToneShape `yaml:"long"`
	MaxVoices     int       `yaml:"max_voices"` // players alive at once; extra requests are dropped

	MIDIChannel uint8 `yaml:"midi_channel"`
}

var Audio AudioConfig

func defaultAudio() AudioConfig {
	return AudioConfig{
		SampleRate:    44100,
		MasterVolume:  1.0,
		BaseFrequency: 220,
		Offsets:       []int{0, 2, 4, 7, 9, 12, 14, 16},
		Short:         ToneShape{Attack: 0.01, Window: 0.2, Peak: 0.3},
		Long:          ToneShape{Attack: 0.05, Window: 1.5, Peak: 0.3},
		MaxVoices:     48,
		MIDIChannel:   0,
	}
}
