package harmony

import (
	"fmt"

	"github.com/jsphweid/tonality/util"
)

// family is the set of quality names an interval number can carry.
type family uint8

const (
	// unisons, fourths and fifths (and their compounds)
	perfectFamily family = iota
	// seconds, thirds, sixths and sevenths
	imperfectFamily
)

// HasPerfectQuality reports whether an interval spanning the given diatonic
// steps belongs to the perfect family (1, 4, 5 up to octaves). The result is
// the same for diatonic and -diatonic.
func HasPerfectQuality(diatonic int16) bool {
	return hasPerfectQuality(int(diatonic))
}

func hasPerfectQuality(diatonic int) bool {
	switch util.Mod(diatonic, 7) {
	case 0, 3, 4:
		return true
	default:
		return false
	}
}

// NaturalChromaticPerfect returns the chromatic steps of the perfect interval
// spanning diatonic steps. It panics if the interval has no perfect quality;
// callers branch on HasPerfectQuality first. Past about ±19000 diatonic steps
// the result no longer fits an int16 and wraps.
func NaturalChromaticPerfect(diatonic int16) int16 {
	return int16(naturalPerfect(int(diatonic)))
}

func naturalPerfect(diatonic int) int {
	if diatonic < 0 {
		return -naturalPerfect(-diatonic)
	}
	octave, step := util.DivRemainder(diatonic, 7)
	switch step {
	case 0:
		return octave * 12
	case 3:
		return octave*12 + 5
	case 4:
		return octave*12 + 7
	}
	panic(fmt.Sprintf("harmony: interval number %d cannot be perfect", diatonic+1))
}

// NaturalChromaticMinor returns the chromatic steps of the minor interval
// spanning diatonic steps. It panics for the perfect family and wraps like
// NaturalChromaticPerfect.
func NaturalChromaticMinor(diatonic int16) int16 {
	return int16(naturalMinor(int(diatonic)))
}

func naturalMinor(diatonic int) int {
	if diatonic < 0 {
		return -naturalMinor(-diatonic)
	}
	octave, step := util.DivRemainder(diatonic, 7)
	switch step {
	case 1:
		return octave*12 + 1
	case 2:
		return octave*12 + 3
	case 5:
		return octave*12 + 8
	case 6:
		return octave*12 + 10
	}
	panic(fmt.Sprintf("harmony: interval number %d cannot be minor", diatonic+1))
}

// naturalChromatic returns the reference chromatic value (perfect or minor)
// for the family of diatonic. Values past the int16 range are exact.
func naturalChromatic(diatonic int) (int, family) {
	if hasPerfectQuality(diatonic) {
		return naturalPerfect(diatonic), perfectFamily
	}
	return naturalMinor(diatonic), imperfectFamily
}

// qualityLetters maps lettered qualities to their mismatch from the family
// reference. The first entry for a (family, mismatch) pair is the canonical
// spelling used when formatting.
var qualityLetters = []struct {
	family   family
	mismatch int
	token    string
}{
	{perfectFamily, -1, "d"},
	{perfectFamily, 0, ""},
	{perfectFamily, 0, "p"},
	{perfectFamily, 0, "P"},
	{perfectFamily, 1, "a"},
	{perfectFamily, 1, "A"},
	{imperfectFamily, -1, "d"},
	{imperfectFamily, 0, "m"},
	{imperfectFamily, 1, "j"},
	{imperfectFamily, 1, "M"},
	{imperfectFamily, 2, "a"},
	{imperfectFamily, 2, "A"},
}

// isQualityLetter reports whether token is a lettered quality of any family.
func isQualityLetter(token string) bool {
	for _, q := range qualityLetters {
		if q.token == token {
			return true
		}
	}
	return false
}

func letterMismatch(f family, token string) (int, bool) {
	for _, q := range qualityLetters {
		if q.family == f && q.token == token {
			return q.mismatch, true
		}
	}
	return 0, false
}

func letterFor(f family, mismatch int) (string, bool) {
	for _, q := range qualityLetters {
		if q.family == f && q.mismatch == mismatch {
			return q.token, true
		}
	}
	return "", false
}

// Numeric qualities skip the value reserved by the lettered scale so both
// scales agree where they overlap: the perfect family has no (±1) and the
// minor/major family has no (0). For the perfect family (-2) is diminished
// and (2) augmented, for the other family (-1) is minor and (1) major.

func numericQuality(f family, mismatch int) int {
	if f == perfectFamily {
		switch {
		case mismatch < 0:
			return mismatch - 1
		case mismatch > 0:
			return mismatch + 1
		}
		return 0
	}
	if mismatch <= 0 {
		return mismatch - 1
	}
	return mismatch
}

func numericMismatch(f family, quality int) (int, bool) {
	if f == perfectFamily {
		switch {
		case quality == 1 || quality == -1:
			return 0, false
		case quality < 0:
			return quality + 1, true
		case quality > 0:
			return quality - 1, true
		}
		return 0, true
	}
	switch {
	case quality == 0:
		return 0, false
	case quality < 0:
		return quality + 1, true
	}
	return quality, true
}

// qualityToken formats a mismatch as the quality part of an interval string.
func qualityToken(f family, mismatch int) string {
	if token, ok := letterFor(f, mismatch); ok {
		return token
	}
	return fmt.Sprintf("(%d)", numericQuality(f, mismatch))
}
