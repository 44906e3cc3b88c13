// Package harmony models pitches and intervals of twelve-tone equal
// temperament as pairs of diatonic (staff) steps and chromatic (half) steps.
//
// Keeping both counters lets the same staff distance carry different
// qualities: a minor third is (2, 3), a major third (2, 4) and an augmented
// second (1, 3). Pitches are measured from middle C (C4).
package harmony

import "github.com/jsphweid/tonality/util"

// Interval is a displacement of Diatonic staff steps and Chromatic half
// steps. Diatonic steps are zero based, so a unison is (0, 0) and a fifth
// is (4, 7).
type Interval struct {
	Diatonic  int16
	Chromatic int16
}

func NewInterval(diatonic, chromatic int16) Interval {
	return Interval{Diatonic: diatonic, Chromatic: chromatic}
}

// Intervals in the first octave.
var (
	Unison     = Interval{0, 0}
	MinSecond  = Interval{1, 1}
	MajSecond  = Interval{1, 2}
	MinThird   = Interval{2, 3}
	MajThird   = Interval{2, 4}
	Fourth     = Interval{3, 5}
	AugFourth  = Interval{3, 6}
	DimFifth   = Interval{4, 6}
	Fifth      = Interval{4, 7}
	MinSixth   = Interval{5, 8}
	MajSixth   = Interval{5, 9}
	MinSeventh = Interval{6, 10}
	MajSeventh = Interval{6, 11}
	Octave     = Interval{7, 12}
)

func (i Interval) Add(o Interval) Interval {
	return Interval{i.Diatonic + o.Diatonic, i.Chromatic + o.Chromatic}
}

func (i Interval) Neg() Interval {
	return Interval{-i.Diatonic, -i.Chromatic}
}

func (i Interval) Sub(o Interval) Interval {
	return i.Add(o.Neg())
}

func (i Interval) IsZero() bool {
	return i == Unison
}

// Number is the one-based interval number, 3 for any third.
func (i Interval) Number() int {
	return int(i.Diatonic) + 1
}

// ReduceOctave moves the interval into the first octave so that Diatonic
// is in 0..6. A descending minor third becomes a major sixth.
func (i Interval) ReduceOctave() Interval {
	octave, diatonic := util.DivRemainder(i.Diatonic, 7)
	return Interval{diatonic, i.Chromatic - octave*12}
}

// ReduceChromaticOctave moves the interval so that Chromatic is in 0..11.
func (i Interval) ReduceChromaticOctave() Interval {
	octave, chromatic := util.DivRemainder(i.Chromatic, 12)
	return Interval{i.Diatonic - octave*7, chromatic}
}

// Compare orders by chromatic steps, then diatonic steps. This is the order
// scales are kept in.
func (i Interval) Compare(o Interval) int {
	if c := compare16(i.Chromatic, o.Chromatic); c != 0 {
		return c
	}
	return compare16(i.Diatonic, o.Diatonic)
}

// CompareDiatonic orders by diatonic steps first.
func (i Interval) CompareDiatonic(o Interval) int {
	if c := compare16(i.Diatonic, o.Diatonic); c != 0 {
		return c
	}
	return compare16(i.Chromatic, o.Chromatic)
}

func (i Interval) ToChromatic() ChromaticInterval {
	return ChromaticInterval(i.Chromatic)
}

func compare16(a, b int16) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
