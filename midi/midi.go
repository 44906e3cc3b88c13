// Package midi reads note events out of Standard MIDI Files, spells them in
// a key and writes pitch sequences back out.
package midi

import (
	"bytes"
	"io"
	"os"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, errors.Wrap(err, "reading midi file")
	}
	return ReadMidi(bytes.NewReader(dat))
}

// ReadMidi parses a Standard MIDI File. Malformed input can make smf panic
// (https://github.com/gomidi/midi/issues/20); that is returned as an error.
func ReadMidi(r io.Reader) (s *smf.SMF, e error) {
	defer func() {
		if p := recover(); p != nil {
			s, e = nil, errors.Errorf("parsing midi file: %v", p)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing midi file")
	}
	return res, nil
}

// TicksPerBar returns the length of a bar of beats quarter notes. Files with
// SMPTE timing have no quarter note and yield an error.
func TicksPerBar(s *smf.SMF, beats int) (int64, error) {
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return 0, errors.Errorf("time format %v has no quarter notes", s.TimeFormat)
	}
	return int64(ticks.Ticks4th()) * int64(beats), nil
}
