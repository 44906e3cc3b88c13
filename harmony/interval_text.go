package harmony

import (
	"math"
	"strconv"
	"strings"
)

// String formats the interval as an optional '-', a quality and the interval
// number: "1", "m3", "j3", "a4", "d5", "(-3)1", "-j3".
func (i Interval) String() string {
	diatonic, chromatic := int(i.Diatonic), int(i.Chromatic)
	sign := ""
	if diatonic < 0 {
		sign = "-"
		diatonic, chromatic = -diatonic, -chromatic
	}
	natural, f := naturalChromatic(diatonic)
	return sign + qualityToken(f, chromatic-natural) + strconv.Itoa(diatonic+1)
}

// ParseInterval reads an interval written as an optional '-', a quality and
// a one-based interval number.
//
// Qualities are d (diminished), m (minor), p or P or nothing (perfect),
// j or M (major) and a or A (augmented). Any quality can be given as a
// parenthesized number: (-2) diminished, (-1) minor, (0) perfect, (1) major,
// (2) augmented and so on outwards. Perfect intervals cannot use (±1) and
// minor/major intervals cannot use (0).
//
// Numbers past the int16 range fail with ErrInvalidNumber, and intervals
// whose chromatic steps do not fit an int16 with ErrOutOfRange.
func ParseInterval(s string) (Interval, error) {
	diatonic, chromatic, err := parseInterval(s, s)
	if err != nil {
		return Interval{}, err
	}
	if !fitsInt16(diatonic) {
		return Interval{}, &ParseIntervalError{Err: ErrInvalidNumber, Input: s}
	}
	if !fitsInt16(chromatic) {
		return Interval{}, &ParseIntervalError{Err: ErrOutOfRange, Input: s}
	}
	return Interval{Diatonic: int16(diatonic), Chromatic: int16(chromatic)}, nil
}

// parseInterval does the work of ParseInterval in int. full is the whole
// input, for errors.
func parseInterval(s, full string) (int, int, error) {
	if rest, ok := strings.CutPrefix(s, "-"); ok {
		diatonic, chromatic, err := parseInterval(rest, full)
		return -diatonic, -chromatic, err
	}

	end := len(s)
	for end > 0 && isDigit(s[end-1]) {
		end--
	}
	digits := s[end:]
	if digits == "" {
		return 0, 0, &ParseIntervalError{Err: ErrInvalidNumber, Input: s}
	}
	number, err := strconv.Atoi(digits)
	if err != nil || number == 0 || number > maxIntervalNumber {
		return 0, 0, &ParseIntervalError{Err: ErrInvalidNumber, Input: digits}
	}
	diatonic := number - 1
	quality := s[:end]
	natural, f := naturalChromatic(diatonic)

	impossible := func(q string, has bool) error {
		return &ParseIntervalError{Err: ErrImpossible, Input: full, Number: number, Quality: q, HasQuality: has}
	}

	var mismatch int
	switch {
	case quality == "":
		if f != perfectFamily {
			return 0, 0, impossible("", false)
		}
	case isQualityLetter(quality):
		m, ok := letterMismatch(f, quality)
		if !ok {
			return 0, 0, impossible(quality, true)
		}
		mismatch = m
	case len(quality) >= 2 && quality[0] == '(' && quality[len(quality)-1] == ')':
		inner := quality[1 : len(quality)-1]
		text := strings.Replace(strings.TrimPrefix(inner, "+"), "−", "-", 1)
		q, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return 0, 0, &ParseIntervalError{Err: ErrInvalidQuality, Input: inner}
		}
		m, ok := numericMismatch(f, int(q))
		if !ok {
			return 0, 0, impossible(inner, true)
		}
		mismatch = m
	default:
		return 0, 0, &ParseIntervalError{Err: ErrInvalidQuality, Input: quality}
	}

	return diatonic, natural + mismatch, nil
}

// maxIntervalNumber is the largest number that can still reach MinInt16
// diatonic steps once negated.
const maxIntervalNumber = math.MaxInt16 + 2

func fitsInt16(n int) bool {
	return math.MinInt16 <= n && n <= math.MaxInt16
}

// MustParseInterval is like ParseInterval but panics on error.
func MustParseInterval(s string) Interval {
	i, err := ParseInterval(s)
	if err != nil {
		panic(err)
	}
	return i
}

func (i Interval) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Interval) UnmarshalText(text []byte) error {
	parsed, err := ParseInterval(string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
