package midi

import (
	"io"

	"github.com/jsphweid/tonality/harmony"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	TicksPerQuarter = 960
	defaultVelocity = 100
)

// Sequence builds a single track file playing the pitches one after the
// other, each ticksPerNote long (a quarter is 960 ticks). Pitches outside
// the MIDI range are rests.
func Sequence(pitches []harmony.Pitch, ticksPerNote uint32) *smf.SMF {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(TicksPerQuarter)

	var track smf.Track
	var rest uint32
	for _, p := range pitches {
		key, ok := p.ToChromatic().MIDI()
		if !ok {
			rest += ticksPerNote
			continue
		}
		track.Add(rest, midi.NoteOn(0, key, defaultVelocity))
		track.Add(ticksPerNote, midi.NoteOff(0, key))
		rest = 0
	}
	track.Close(rest)
	s.Add(track)
	return s
}

// WriteSequence writes Sequence(pitches, ticksPerNote) to w.
func WriteSequence(w io.Writer, pitches []harmony.Pitch, ticksPerNote uint32) error {
	if _, err := Sequence(pitches, ticksPerNote).WriteTo(w); err != nil {
		return errors.Wrap(err, "writing midi")
	}
	return nil
}
