package midi

import (
	"github.com/jsphweid/tonality/engrave"
	"github.com/jsphweid/tonality/harmony"
)

// SpelledNote is a note on spelled in a key, with the accidental a score
// would print in front of it.
type SpelledNote struct {
	NoteEvent
	Bar        int64
	Pitch      harmony.Pitch
	Accidental harmony.Accidental
	Printed    bool
}

// Spell names every note on of events in key and runs the notes through one
// engrave.Calculator, starting a new bar every ticksPerBar ticks. events must
// be in time order, as Events and NoteEvents return them. All tracks share
// the calculator, so pass the events of one voice for part-accurate marks.
func Spell(events []NoteEvent, key engrave.KeySignature, ticksPerBar int64) []SpelledNote {
	calc := engrave.NewCalculator(key)
	var res []SpelledNote
	bar := int64(-1)
	for _, evt := range events {
		if evt.Off {
			continue
		}
		var current int64
		if ticksPerBar > 0 {
			current = evt.Tick / ticksPerBar
		}
		if current != bar {
			calc.Clear()
			bar = current
		}
		p := key.Spell(evt.Chromatic())
		acc, printed := calc.Next(p)
		res = append(res, SpelledNote{NoteEvent: evt, Bar: bar, Pitch: p, Accidental: acc, Printed: printed})
	}
	return res
}

// Tracks splits events by the track they came from, keeping their order.
func Tracks(events []NoteEvent) map[int][]NoteEvent {
	res := make(map[int][]NoteEvent)
	for _, evt := range events {
		res[evt.Track] = append(res[evt.Track], evt)
	}
	return res
}
