package harmony

import "github.com/jsphweid/tonality/util"

// PitchName is one of the seven letters, ordered C D E F G A B.
type PitchName uint8

const (
	C PitchName = iota
	D
	E
	F
	G
	A
	B
)

var (
	pitchNameLetters   = [7]byte{'C', 'D', 'E', 'F', 'G', 'A', 'B'}
	pitchNameChromatic = [7]int16{0, 2, 4, 5, 7, 9, 11}
)

// PitchNameFromDiatonic names the pitch diatonic steps above a C.
func PitchNameFromDiatonic(diatonic int16) PitchName {
	return PitchName(util.Mod(diatonic, 7))
}

// PitchNameFromByte accepts an upper case letter A-G.
func PitchNameFromByte(c byte) (PitchName, bool) {
	if c < 'A' || c > 'G' {
		return 0, false
	}
	// A and B come after G in staff order
	return PitchName((int(c) - 'C' + 7) % 7), true
}

// DiatonicSteps returns the staff steps from C.
func (n PitchName) DiatonicSteps() int16 {
	return int16(n)
}

// ChromaticSteps returns the half steps from C to the natural pitch.
func (n PitchName) ChromaticSteps() int16 {
	return pitchNameChromatic[n]
}

func (n PitchName) Byte() byte {
	return pitchNameLetters[n]
}

func (n PitchName) String() string {
	return string(n.Byte())
}

// Accidental is the chromatic displacement from the natural pitch of a
// letter. Any magnitude is representable.
type Accidental int16

const (
	DoubleFlat  Accidental = -2
	Flat        Accidental = -1
	Natural     Accidental = 0
	Sharp       Accidental = 1
	DoubleSharp Accidental = 2
)

// UTF8 returns the Unicode symbol for accidentals up to double sharps and
// flats. The double symbols live in the musical symbols block, which fewer
// fonts cover.
func (a Accidental) UTF8() (rune, bool) {
	switch a {
	case DoubleFlat:
		return '\U0001D12B', true
	case Flat:
		return '♭', true
	case Natural:
		return '♮', true
	case Sharp:
		return '♯', true
	case DoubleSharp:
		return '\U0001D12A', true
	}
	return 0, false
}

// Pitch is a displacement of Diatonic staff steps and Chromatic half steps
// from middle C, which is Pitch{0, 0}.
//
// Pitches order by staff position first, so E#4 sorts before Fb4 although it
// sounds higher. Use CompareChromatic for sounding order.
type Pitch struct {
	Diatonic  int16
	Chromatic int16
}

func NewPitch(diatonic, chromatic int16) Pitch {
	return Pitch{Diatonic: diatonic, Chromatic: chromatic}
}

// ComposePitch builds a pitch from scientific pitch notation, where middle C
// starts octave 4. Octaves beyond about ±2700 wrap; ParsePitch reports them
// as errors instead.
func ComposePitch(name PitchName, acc Accidental, octave int16) Pitch {
	diatonic, chromatic := compose(name, int(acc), int(octave))
	return Pitch{Diatonic: int16(diatonic), Chromatic: int16(chromatic)}
}

func compose(name PitchName, acc, octave int) (int, int) {
	return (octave-4)*7 + int(name.DiatonicSteps()),
		(octave-4)*12 + int(name.ChromaticSteps()) + acc
}

// PitchFromClass places a pitch class in octave 4.
func PitchFromClass(name PitchName, acc Accidental) Pitch {
	return ComposePitch(name, acc, 4)
}

// Decompose splits the pitch into its letter, accidental and octave. Pitches
// whose accidental is beyond the int16 range (only near the ends of the
// diatonic range) get a wrapped accidental; String is exact.
func (p Pitch) Decompose() (PitchName, Accidental, int16) {
	name, acc, octave := p.decompose()
	return name, Accidental(acc), int16(octave)
}

func (p Pitch) decompose() (PitchName, int, int) {
	octave, step := util.DivRemainder(int(p.Diatonic), 7)
	name := PitchName(step)
	natural := octave*12 + int(name.ChromaticSteps())
	return name, int(p.Chromatic) - natural, octave + 4
}

func (p Pitch) Name() PitchName {
	name, _, _ := p.Decompose()
	return name
}

func (p Pitch) Accidental() Accidental {
	_, acc, _ := p.Decompose()
	return acc
}

func (p Pitch) Octave() int16 {
	octave, _ := util.DivRemainder(p.Diatonic, 7)
	return octave + 4
}

// StaffPosition counts staff steps from middle C.
func (p Pitch) StaffPosition() int16 {
	return p.Diatonic
}

func (p Pitch) Add(i Interval) Pitch {
	return Pitch{p.Diatonic + i.Diatonic, p.Chromatic + i.Chromatic}
}

func (p Pitch) SubInterval(i Interval) Pitch {
	return p.Add(i.Neg())
}

// Sub returns the interval from o up to p.
func (p Pitch) Sub(o Pitch) Interval {
	return Interval{p.Diatonic - o.Diatonic, p.Chromatic - o.Chromatic}
}

// ReduceOctave moves the pitch into octave 4 keeping its name and accidental.
func (p Pitch) ReduceOctave() Pitch {
	octave, diatonic := util.DivRemainder(p.Diatonic, 7)
	return Pitch{diatonic, p.Chromatic - octave*12}
}

// ReduceChromaticOctave moves the pitch so that Chromatic is in 0..11.
func (p Pitch) ReduceChromaticOctave() Pitch {
	octave, chromatic := util.DivRemainder(p.Chromatic, 12)
	return Pitch{p.Diatonic - octave*7, chromatic}
}

func (p Pitch) Compare(o Pitch) int {
	if c := compare16(p.Diatonic, o.Diatonic); c != 0 {
		return c
	}
	return compare16(p.Chromatic, o.Chromatic)
}

func (p Pitch) CompareChromatic(o Pitch) int {
	if c := compare16(p.Chromatic, o.Chromatic); c != 0 {
		return c
	}
	return compare16(p.Diatonic, o.Diatonic)
}

func (p Pitch) ToChromatic() ChromaticPitch {
	return ChromaticPitch(p.Chromatic)
}

// Frequency uses A4 = 440Hz.
func (p Pitch) Frequency() float64 {
	return p.ToChromatic().Frequency()
}

func (p Pitch) FrequencyTuning(a4 float64) float64 {
	return p.ToChromatic().FrequencyTuning(a4)
}
