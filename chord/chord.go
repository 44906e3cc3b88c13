package chord

import (
	"sort"
	"strings"

	"github.com/jsphweid/tonality/harmony"
	"github.com/jsphweid/tonality/scale"
	"golang.org/x/exp/slices"
)

// Key joins the pitches from lowest staff position up, "C4-E4-G4". The
// input is left untouched.
func Key(pitches []harmony.Pitch) string {
	sorted := slices.Clone(pitches)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Compare(sorted[j]) < 0
	})
	var res strings.Builder
	for i, p := range sorted {
		res.WriteString(p.String())
		if i < len(sorted)-1 {
			res.WriteString("-")
		}
	}
	return res.String()
}

// Diatonic stacks size notes in thirds on the given (zero based) degree of s
// laid out from root. Diatonic(scale.Major(), C4, 4, 4) is G4 B4 D5 F5.
func Diatonic(s scale.Scale, root harmony.Pitch, degree, size int) []harmony.Pitch {
	res := make([]harmony.Pitch, 0, size)
	for i := 0; i < size; i++ {
		res = append(res, root.Add(s.Degree(degree+2*i)))
	}
	return res
}

type triad struct {
	third, fifth harmony.Interval
}

var triadNames = map[triad]string{
	{harmony.MajThird, harmony.Fifth}:             "major",
	{harmony.MinThird, harmony.Fifth}:             "minor",
	{harmony.MinThird, harmony.DimFifth}:          "diminished",
	{harmony.MajThird, harmony.NewInterval(4, 8)}: "augmented",
	{harmony.MajSecond, harmony.Fifth}:            "sus2",
	{harmony.Fourth, harmony.Fifth}:               "sus4",
}

// Quality names a triad in root position or any voicing that keeps the root
// lowest: "major", "minor", "diminished", "augmented", "sus2" or "sus4".
// Anything else is "other".
func Quality(pitches []harmony.Pitch) string {
	if len(pitches) == 0 {
		return "other"
	}
	lowest := pitches[0]
	for _, p := range pitches[1:] {
		if p.Compare(lowest) < 0 {
			lowest = p
		}
	}
	var above []harmony.Interval
	for _, p := range pitches {
		i := p.Sub(lowest).ReduceOctave()
		if !i.IsZero() && !slices.Contains(above, i) {
			above = append(above, i)
		}
	}
	if len(above) != 2 {
		return "other"
	}
	slices.SortFunc(above, harmony.Interval.CompareDiatonic)
	if name, ok := triadNames[triad{above[0], above[1]}]; ok {
		return name
	}
	return "other"
}
