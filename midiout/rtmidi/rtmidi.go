// Package rtmidi opens a hardware or virtual MIDI output through the rtmidi
// driver. It needs cgo; main only links it into cgo builds.
package rtmidi

import (
	"fmt"
	"strings"

	"github.com/automoto/polytone/midiout"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// Port is an open MIDI output.
type Port struct {
	drv  *rtmididrv.Driver
	out  drivers.Out
	Send midiout.Sender
}

// Open connects to the first output whose name contains name (case-insensitive).
func Open(name string) (*Port, error) {
	drv, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("rtmididrv: %w", err)
	}

	outs, err := drv.Outs()
	if err != nil {
		drv.Close()
		return nil, fmt.Errorf("list midi outputs: %w", err)
	}

	var found drivers.Out
	for _, out := range outs {
		if strings.Contains(strings.ToLower(out.String()), strings.ToLower(name)) {
			found = out
			break
		}
	}
	if found == nil {
		drv.Close()
		return nil, fmt.Errorf("output %q not found", name)
	}
	if err := found.Open(); err != nil {
		drv.Close()
		return nil, fmt.Errorf("open %q: %w", found.String(), err)
	}

	send, err := midi.SendTo(found)
	if err != nil {
		_ = found.Close()
		drv.Close()
		return nil, fmt.Errorf("send to %q: %w", found.String(), err)
	}

	return &Port{drv: drv, out: found, Send: send}, nil
}

func (p *Port) Name() string {
	return p.out.String()
}

func (p *Port) Close() error {
	err := p.out.Close()
	p.drv.Close()
	return err
}
