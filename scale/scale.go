// Package scale keeps scales as normal sets of interval classes and derives
// their modes and pitches.
package scale

import (
	"github.com/jsphweid/tonality/harmony"
	"github.com/jsphweid/tonality/util"
	"golang.org/x/exp/slices"
)

// Scale is an immutable, normal list of intervals within the first octave.
// A normal scale starts with the unison, holds no duplicates and keeps the
// other intervals in canonical order (chromatic steps, then diatonic).
// The zero Scale is the unison-only scale that New() returns.
type Scale struct {
	intervals []harmony.Interval
}

var unisonOnly = []harmony.Interval{harmony.Unison}

// steps is s.intervals with the zero Scale read as unisonOnly.
func (s Scale) steps() []harmony.Interval {
	if len(s.intervals) == 0 {
		return unisonOnly
	}
	return s.intervals
}

// New octave reduces and sorts the intervals and makes sure the scale starts
// with a unison. Duplicates collapse into one entry.
func New(intervals ...harmony.Interval) Scale {
	reduced := make([]harmony.Interval, 0, len(intervals)+1)
	for _, i := range intervals {
		reduced = append(reduced, i.ReduceOctave())
	}
	return Scale{intervals: normalize(reduced)}
}

// normalize sorts in place and returns the slice with a single leading
// unison. Intervals that sort below the unison (a diminished unison, say)
// still follow it.
func normalize(intervals []harmony.Interval) []harmony.Interval {
	rest := slices.DeleteFunc(intervals, harmony.Interval.IsZero)
	slices.SortFunc(rest, harmony.Interval.Compare)
	rest = slices.Compact(rest)
	return append([]harmony.Interval{harmony.Unison}, rest...)
}

func (s Scale) isNormal() bool {
	intervals := s.steps()
	if !intervals[0].IsZero() {
		return false
	}
	rest := intervals[1:]
	for i := range rest {
		if rest[i].IsZero() || (i > 0 && rest[i-1].Compare(rest[i]) >= 0) {
			return false
		}
	}
	return true
}

// NthMode rotates the scale so that its n-th degree (zero based, taken
// modulo the length) becomes the root. Mode 0 is the scale itself.
// It panics if the scale is not normal.
func (s Scale) NthMode(n int) Scale {
	if !s.isNormal() {
		panic("scale: nonnormal scale used in NthMode")
	}
	intervals := s.steps()
	if len(intervals) == 1 {
		return s
	}
	root := intervals[util.Mod(n, len(intervals))]
	rotated := make([]harmony.Interval, len(intervals))
	for i, interval := range intervals {
		rotated[i] = interval.Sub(root).ReduceOctave()
	}
	return Scale{intervals: normalize(rotated)}
}

// NextMode is NthMode(1).
func (s Scale) NextMode() Scale {
	return s.NthMode(1)
}

func (s Scale) Len() int {
	return len(s.steps())
}

// Intervals returns a copy of the scale's intervals.
func (s Scale) Intervals() []harmony.Interval {
	return slices.Clone(s.steps())
}

// Degree returns the interval from the root to the i-th scale step, counting
// on into higher octaves for i >= Len() and downwards for negative i.
func (s Scale) Degree(i int) harmony.Interval {
	intervals := s.steps()
	octave, step := util.DivRemainder(i, len(intervals))
	shift := harmony.Interval{Diatonic: int16(octave) * 7, Chromatic: int16(octave) * 12}
	return intervals[step].Add(shift)
}

// Contains reports whether the octave reduced interval is a scale step.
func (s Scale) Contains(i harmony.Interval) bool {
	return slices.Contains(s.steps(), i.ReduceOctave())
}

func (s Scale) Equal(o Scale) bool {
	return slices.Equal(s.steps(), o.steps())
}

// Iter yields the scale's intervals, then the same intervals an octave up,
// without end.
func (s Scale) Iter() *Iterator[harmony.Interval] {
	return NewIterator(harmony.Unison, s)
}

// IterFrom yields the scale's pitches from root upwards without end.
func (s Scale) IterFrom(root harmony.Pitch) *Iterator[harmony.Pitch] {
	return NewIterator(root, s)
}
