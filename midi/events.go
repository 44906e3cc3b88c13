package midi

import (
	"sort"

	"github.com/jsphweid/tonality/chord"
	"github.com/jsphweid/tonality/harmony"
	"gitlab.com/gomidi/midi/v2/smf"
)

// NoteEvent is a note on or off with its absolute position in the file.
type NoteEvent struct {
	Track    int
	Tick     int64
	Micros   int64
	Channel  uint8
	Key      uint8
	Velocity uint8
	Off      bool
}

func (e NoteEvent) Chromatic() harmony.ChromaticPitch {
	return harmony.ChromaticPitchFromMIDI(e.Key)
}

// Events collects the note ons and offs of every track in time order. A note
// on with zero velocity counts as an off. At equal ticks offs come first.
func Events(s *smf.SMF) []NoteEvent {
	var res []NoteEvent
	for track, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			evt := NoteEvent{Track: track, Tick: absTicks, Micros: s.TimeAt(absTicks)}
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				evt.Off = velocity == 0
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				evt.Off = true
			default:
				continue
			}
			evt.Channel, evt.Key, evt.Velocity = channel, key, velocity
			res = append(res, evt)
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		if res[i].Tick != res[j].Tick {
			return res[i].Tick < res[j].Tick
		}
		return res[i].Off && !res[j].Off
	})
	return res
}

// NoteEvents keeps only the note ons of Events.
func NoteEvents(s *smf.SMF) []NoteEvent {
	var res []NoteEvent
	for _, e := range Events(s) {
		if !e.Off {
			res = append(res, e)
		}
	}
	return res
}

// Sonority is the set of notes sounding from Tick until the next sonority.
type Sonority struct {
	Tick    int64
	Pitches []harmony.Pitch
}

// Key is the chord key of the sounding pitches, "C4-E4-G4".
func (s Sonority) Key() string {
	return chord.Key(s.Pitches)
}

// Sonorities replays events and records what is held down after every tick
// at which something changes. Silent stretches are left out. Pitches are
// spelled with spell, usually a engrave.KeySignature's Spell method.
func Sonorities(events []NoteEvent, spell func(harmony.ChromaticPitch) harmony.Pitch) []Sonority {
	var res []Sonority
	pressed := make(map[uint8]int)
	for i, evt := range events {
		if evt.Off {
			if pressed[evt.Key] > 1 {
				pressed[evt.Key]--
			} else {
				delete(pressed, evt.Key)
			}
		} else {
			pressed[evt.Key]++
		}
		if i+1 < len(events) && events[i+1].Tick == evt.Tick {
			continue
		}
		if len(pressed) == 0 {
			continue
		}
		keys := make([]int, 0, len(pressed))
		for k := range pressed {
			keys = append(keys, int(k))
		}
		sort.Ints(keys)
		pitches := make([]harmony.Pitch, len(keys))
		for j, k := range keys {
			pitches[j] = spell(harmony.ChromaticPitchFromMIDI(uint8(k)))
		}
		res = append(res, Sonority{Tick: evt.Tick, Pitches: pitches})
	}
	return res
}
