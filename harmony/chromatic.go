package harmony

import (
	"math"

	"github.com/jsphweid/tonality/util"
)

// ChromaticPitch counts half steps from middle C, discarding spelling.
type ChromaticPitch int16

// ChromaticInterval counts half steps.
type ChromaticInterval int16

const midiC4 = 60

func (c ChromaticPitch) Add(i ChromaticInterval) ChromaticPitch {
	return c + ChromaticPitch(i)
}

func (c ChromaticPitch) Sub(o ChromaticPitch) ChromaticInterval {
	return ChromaticInterval(c - o)
}

// ReduceOctave returns the pitch class, 0..11 with C = 0.
func (c ChromaticPitch) ReduceOctave() ChromaticPitch {
	return util.Mod(c, 12)
}

// Frequency uses A4 = 440Hz.
func (c ChromaticPitch) Frequency() float64 {
	return c.FrequencyTuning(440)
}

func (c ChromaticPitch) FrequencyTuning(a4 float64) float64 {
	return a4 * math.Pow(2, float64(c-9)/12)
}

// MIDI returns the MIDI key number when it is in 0..127.
func (c ChromaticPitch) MIDI() (uint8, bool) {
	key := int(c) + midiC4
	if key < 0 || key > 127 {
		return 0, false
	}
	return uint8(key), true
}

func ChromaticPitchFromMIDI(key uint8) ChromaticPitch {
	return ChromaticPitch(int16(key) - midiC4)
}

// defaultSpelling picks a letter for each pitch class: naturals, C# F# and
// the flats Eb Ab Bb.
var defaultSpelling = [12]PitchName{C, C, D, E, E, F, F, G, A, A, B, B}

// ToPitch spells the chromatic pitch with the usual letter for its class.
func (c ChromaticPitch) ToPitch() Pitch {
	return c.ToPitchNamed(defaultSpelling[c.ReduceOctave()])
}

// ToPitchNamed spells the chromatic pitch with the given letter, choosing the
// octave that keeps the accidental within a tritone of natural.
func (c ChromaticPitch) ToPitchNamed(name PitchName) Pitch {
	octave, chromatic := util.DivRemainder(int16(c), 12)
	distance := chromatic - name.ChromaticSteps()
	switch {
	case distance > 6:
		octave++
	case distance < -6:
		octave--
	}
	return Pitch{
		Diatonic:  octave*7 + name.DiatonicSteps(),
		Chromatic: int16(c),
	}
}

func (i ChromaticInterval) Add(o ChromaticInterval) ChromaticInterval {
	return i + o
}

func (i ChromaticInterval) Neg() ChromaticInterval {
	return -i
}

func (i ChromaticInterval) Sub(o ChromaticInterval) ChromaticInterval {
	return i + o.Neg()
}

func (i ChromaticInterval) ReduceOctave() ChromaticInterval {
	return util.Mod(i, 12)
}
