package scale

import (
	"strings"

	"github.com/jsphweid/tonality/harmony"
	"github.com/pkg/errors"
)

// bare numbers that are not perfect intervals default to the qualities of
// the mixolydian scale
var bareDefaults = map[string]harmony.Interval{
	"2": harmony.MajSecond,
	"3": harmony.MajThird,
	"6": harmony.MajSixth,
	"7": harmony.MinSeventh,
}

// Parse reads whitespace separated intervals, e.g. "1 j2 j3 4 5 j6 j7".
// A bare 2, 3 or 6 is major and a bare 7 is minor, so "1 2 3 4 5 6 7" is
// mixolydian.
func Parse(s string) (Scale, error) {
	fields := strings.Fields(s)
	intervals := make([]harmony.Interval, 0, len(fields))
	for n, field := range fields {
		if i, ok := bareDefaults[field]; ok {
			intervals = append(intervals, i)
			continue
		}
		i, err := harmony.ParseInterval(field)
		if err != nil {
			return Scale{}, errors.Wrapf(err, "scale step %d", n+1)
		}
		intervals = append(intervals, i)
	}
	return New(intervals...), nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) Scale {
	res, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return res
}

// String lists the intervals in canonical spelling, "1 j2 j3 4 5 j6 j7".
func (s Scale) String() string {
	intervals := s.steps()
	parts := make([]string, len(intervals))
	for i, interval := range intervals {
		parts[i] = interval.String()
	}
	return strings.Join(parts, " ")
}

func (s Scale) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Scale) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
