// Package engrave decides which accidentals a score has to print, given a
// key signature and the notes already written in the current bar.
package engrave

import (
	"strings"
	"unicode"

	"github.com/jsphweid/tonality/harmony"
	"github.com/jsphweid/tonality/scale"
	"github.com/jsphweid/tonality/util"
	"github.com/pkg/errors"
)

var ErrInvalidKey = errors.New("invalid key")

// KeyAccidental is an accidental of a key signature. Position is a staff
// position reduced to 0..6 (C..B), so it applies in every octave.
type KeyAccidental struct {
	Position   int16
	Accidental harmony.Accidental
}

func (k KeyAccidental) String() string {
	return harmony.PitchNameFromDiatonic(k.Position).String() + k.Accidental.String()
}

// KeySignature lists the altered letters of a key in the order they occur
// walking the scale up from its root.
type KeySignature []KeyAccidental

// FromScale walks s from root and records every step that is not natural.
func FromScale(root harmony.Pitch, s scale.Scale) KeySignature {
	var key KeySignature
	for _, step := range s.Intervals() {
		p := root.Add(step)
		if acc := p.Accidental(); acc != harmony.Natural {
			key = append(key, KeyAccidental{Position: util.Mod(p.Diatonic, 7), Accidental: acc})
		}
	}
	return key
}

// Major is the key signature of the major scale on root.
func Major(root harmony.Pitch) KeySignature {
	return FromScale(root, scale.Major())
}

// Minor is the key signature of the natural minor scale on root, which is
// the major key a minor third up.
func Minor(root harmony.Pitch) KeySignature {
	return Major(root.Add(harmony.MinThird))
}

// AccidentalFor returns the key's accidental for any staff position.
func (k KeySignature) AccidentalFor(position int16) harmony.Accidental {
	reduced := util.Mod(position, 7)
	for _, acc := range k {
		if acc.Position == reduced {
			return acc.Accidental
		}
	}
	return harmony.Natural
}

// Sharps counts the accidentals of the key, positive for sharps and negative
// for flats.
func (k KeySignature) Sharps() int {
	var total int
	for _, acc := range k {
		total += int(acc.Accidental)
	}
	return total
}

// String lists the altered letters, "Bb Eb". C major is the empty string.
func (k KeySignature) String() string {
	parts := make([]string, len(k))
	for i, acc := range k {
		parts[i] = acc.String()
	}
	return strings.Join(parts, " ")
}

// ParseKey reads a root letter with an optional accidental followed by an
// optional scale name: "Bb major", "g minor", "D dorian", "F#". Without a
// scale name an upper case root means major and a lower case one minor.
func ParseKey(s string) (KeySignature, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 2 {
		return nil, errors.Wrapf(ErrInvalidKey, "`%s` should be a root and an optional scale name", s)
	}
	rootText := fields[0]
	first := []rune(rootText)[0]
	name, err := harmony.ParsePitchName(string(unicode.ToUpper(first)))
	if err != nil {
		return nil, errors.Wrapf(err, "key `%s`", s)
	}
	acc, err := harmony.ParseAccidental(rootText[len(string(first)):])
	if err != nil {
		return nil, errors.Wrapf(err, "key `%s`", s)
	}
	root := harmony.PitchFromClass(name, acc)

	if len(fields) == 1 {
		if unicode.IsLower(first) {
			return Minor(root), nil
		}
		return Major(root), nil
	}
	switch strings.ToLower(fields[1]) {
	case "major", "maj":
		return Major(root), nil
	case "minor", "min":
		return Minor(root), nil
	}
	sc, ok := scale.ByName(fields[1])
	if !ok {
		return nil, errors.Wrapf(ErrInvalidKey, "unknown scale `%s` in `%s`", fields[1], s)
	}
	return FromScale(root, sc), nil
}

// MustParseKey is like ParseKey but panics on error.
func MustParseKey(s string) KeySignature {
	key, err := ParseKey(s)
	if err != nil {
		panic(err)
	}
	return key
}

// Preferred letters for pitch classes outside the key.
var (
	sharpSpelling = [12]harmony.PitchName{harmony.C, harmony.C, harmony.D, harmony.D, harmony.E, harmony.F, harmony.F, harmony.G, harmony.G, harmony.A, harmony.A, harmony.B}
	flatSpelling  = [12]harmony.PitchName{harmony.C, harmony.D, harmony.D, harmony.E, harmony.E, harmony.F, harmony.G, harmony.G, harmony.A, harmony.A, harmony.B, harmony.B}
)

// Spell names a chromatic pitch for this key. Pitch classes of the key get
// the key's letter; others are sharps in sharp keys, flats in flat keys and
// the default spelling in C.
func (k KeySignature) Spell(c harmony.ChromaticPitch) harmony.Pitch {
	class := int16(c.ReduceOctave())
	for name := harmony.C; name <= harmony.B; name++ {
		natural := name.ChromaticSteps() + int16(k.AccidentalFor(name.DiatonicSteps()))
		if util.Mod(natural, 12) == class {
			return c.ToPitchNamed(name)
		}
	}
	switch sharps := k.Sharps(); {
	case sharps > 0:
		return c.ToPitchNamed(sharpSpelling[class])
	case sharps < 0:
		return c.ToPitchNamed(flatSpelling[class])
	}
	return c.ToPitch()
}
