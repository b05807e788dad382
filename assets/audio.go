package assets

import (
	"github.com/automoto/polytone/tone"
)

// maxCachedTones bounds the cache; growth tones carry a size-dependent volume
// so their requests rarely repeat.
const maxCachedTones = 256

// ToneBank renders tone requests to PCM and caches the result
type ToneBank struct {
	cache      map[tone.Request][]byte
	sampleRate int
}

// NewToneBank creates a bank rendering at the audio context's sample rate
func NewToneBank(sampleRate int) *ToneBank {
	return &ToneBank{
		cache:      make(map[tone.Request][]byte),
		sampleRate: sampleRate,
	}
}

// Preload renders requests ahead of time so the first key press does not
// stall the frame.
func (b *ToneBank) Preload(reqs ...tone.Request) {
	for _, req := range reqs {
		_ = b.PCM(req)
	}
}

// PCM returns the 16-bit stereo samples for req.
func (b *ToneBank) PCM(req tone.Request) []byte {
	if pcm, ok := b.cache[req]; ok {
		return pcm
	}

	pcm := tone.Render(req, b.sampleRate)
	if len(b.cache) < maxCachedTones {
		b.cache[req] = pcm
	}
	return pcm
}

// Len returns the number of cached tones.
func (b *ToneBank) Len() int {
	return len(b.cache)
}
