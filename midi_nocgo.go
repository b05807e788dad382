//go:build !cgo

package main

import (
	"errors"

	"github.com/automoto/polytone/midiout"
)

func openMIDI(string, uint8, int) (*midiout.Output, func(), error) {
	return nil, nil, errors.New("MIDI output needs a cgo build")
}
