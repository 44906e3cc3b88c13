package scale

import (
	"strings"

	"github.com/jsphweid/tonality/harmony"
	"github.com/jsphweid/tonality/util"
)

func steps(chromatic ...int16) []harmony.Interval {
	res := make([]harmony.Interval, len(chromatic))
	for i, c := range chromatic {
		res[i] = harmony.Interval{Diatonic: int16(i), Chromatic: c}
	}
	return res
}

// Seven note tables. Never modified after init.
var (
	ionian        = steps(0, 2, 4, 5, 7, 9, 11)
	dorian        = steps(0, 2, 3, 5, 7, 9, 10)
	phrygian      = steps(0, 1, 3, 5, 7, 8, 10)
	lydian        = steps(0, 2, 4, 6, 7, 9, 11)
	mixolydian    = steps(0, 2, 4, 5, 7, 9, 10)
	aeolian       = steps(0, 2, 3, 5, 7, 8, 10)
	locrian       = steps(0, 1, 3, 5, 6, 8, 10)
	harmonicMinor = steps(0, 2, 3, 5, 7, 8, 11)
	melodicMinor  = steps(0, 2, 3, 5, 7, 9, 11)
)

func Major() Scale         { return Scale{intervals: ionian} }
func Minor() Scale         { return Scale{intervals: aeolian} }
func HarmonicMinor() Scale { return Scale{intervals: harmonicMinor} }

// MelodicMinor is the ascending form.
func MelodicMinor() Scale { return Scale{intervals: melodicMinor} }

func Ionian() Scale     { return Scale{intervals: ionian} }
func Dorian() Scale     { return Scale{intervals: dorian} }
func Phrygian() Scale   { return Scale{intervals: phrygian} }
func Lydian() Scale     { return Scale{intervals: lydian} }
func Mixolydian() Scale { return Scale{intervals: mixolydian} }
func Aeolian() Scale    { return Scale{intervals: aeolian} }
func Locrian() Scale    { return Scale{intervals: locrian} }

var byName = map[string]func() Scale{
	"major":          Major,
	"minor":          Minor,
	"harmonic-minor": HarmonicMinor,
	"melodic-minor":  MelodicMinor,
	"ionian":         Ionian,
	"dorian":         Dorian,
	"phrygian":       Phrygian,
	"lydian":         Lydian,
	"mixolydian":     Mixolydian,
	"aeolian":        Aeolian,
	"locrian":        Locrian,
}

// ByName looks up a standard scale. Case and the separator between words
// ("harmonic minor", "harmonic_minor") don't matter.
func ByName(name string) (Scale, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer(" ", "-", "_", "-").Replace(key)
	f, ok := byName[key]
	if !ok {
		return Scale{}, false
	}
	return f(), true
}

// Names lists the standard scale names in alphabetical order.
func Names() []string {
	return util.GetKeys(byName)
}
