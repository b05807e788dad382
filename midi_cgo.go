//go:build cgo

package main

import (
	"github.com/automoto/polytone/midiout"
	"github.com/automoto/polytone/midiout/rtmidi"
)

// openMIDI opens the named output port and wraps it as a tone output.
func openMIDI(name string, channel uint8, tps int) (*midiout.Output, func(), error) {
	port, err := rtmidi.Open(name)
	if err != nil {
		return nil, nil, err
	}
	out := midiout.New(port.Send, channel, tps)
	closer := func() {
		out.Flush()
		_ = port.Close()
	}
	return out, closer, nil
}
