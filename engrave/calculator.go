package engrave

import (
	"github.com/jsphweid/tonality/harmony"
	"github.com/jsphweid/tonality/util"
)

// ConcreteAccidental is an accidental printed in the current bar. Position
// is the full staff position, so it only affects one octave.
type ConcreteAccidental struct {
	Position   int16
	Accidental harmony.Accidental
}

// Calculator tracks what a reader of the score already assumes about each
// staff position: the key signature, overridden by accidentals printed
// earlier in the bar. Feed it the notes of one voice in the order they are
// played. A Calculator is not safe for concurrent use; give every voice its
// own.
type Calculator struct {
	signature   KeySignature
	accidentals []ConcreteAccidental
}

func NewCalculator(key KeySignature) *Calculator {
	return &Calculator{signature: key}
}

// Next reports the accidental to print before p, if any, and remembers it
// for the rest of the bar.
func (c *Calculator) Next(p harmony.Pitch) (harmony.Accidental, bool) {
	acc := p.Accidental()
	position := p.StaffPosition()

	for i := len(c.accidentals) - 1; i >= 0; i-- {
		if c.accidentals[i].Position == position {
			return c.mark(position, acc, c.accidentals[i].Accidental)
		}
	}

	reduced := util.Mod(position, 7)
	for _, keyAcc := range c.signature {
		if keyAcc.Position == reduced {
			return c.mark(position, acc, keyAcc.Accidental)
		}
	}

	if acc == harmony.Natural {
		return 0, false
	}
	c.accidentals = append(c.accidentals, ConcreteAccidental{Position: position, Accidental: acc})
	return acc, true
}

func (c *Calculator) mark(position int16, acc, assumed harmony.Accidental) (harmony.Accidental, bool) {
	if acc == assumed {
		return 0, false
	}
	c.accidentals = append(c.accidentals, ConcreteAccidental{Position: position, Accidental: acc})
	return acc, true
}

// Clear forgets the accidentals of the bar. Call it at every barline.
func (c *Calculator) Clear() {
	c.accidentals = c.accidentals[:0]
}

// ChangeKeySignature switches to key and starts a fresh bar.
func (c *Calculator) ChangeKeySignature(key KeySignature) {
	c.signature = key
	c.Clear()
}

func (c *Calculator) Key() KeySignature {
	return c.signature
}

// Mark spells an accidental the way it is printed: a natural is "n",
// anything else as harmony.Accidental.String does.
func Mark(acc harmony.Accidental) string {
	if acc == harmony.Natural {
		return "n"
	}
	return acc.String()
}
