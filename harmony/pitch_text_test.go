package harmony

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePitch(t *testing.T) {
	cases := []struct {
		in                  string
		diatonic, chromatic int16
	}{
		{"Cb4", 0, -1},
		{"C4", 0, 0},
		{"C#4", 0, 1},
		{"Db4", 1, 1},
		{"D4", 1, 2},
		{"D#4", 1, 3},
		{"Eb4", 2, 3},
		{"E4", 2, 4},
		{"E#4", 2, 5},
		{"Fb4", 3, 4},
		{"F4", 3, 5},
		{"F#4", 3, 6},
		{"Gb4", 4, 6},
		{"G4", 4, 7},
		{"G#4", 4, 8},
		{"Ab4", 5, 8},
		{"A4", 5, 9},
		{"A#4", 5, 10},
		{"Bb4", 6, 10},
		{"B4", 6, 11},
		{"B#4", 6, 12},

		{"C5", 7, 12},
		{"D5", 8, 14},
		{"C3", -7, -12},
		{"Bb2", -8, -14},
		{"C-1", -35, -60},

		{"C+4", 0, 2},
		{"C##4", 0, 2},
		{"C&4", 0, -2},
		{"Cbb4", 0, -2},
		{"Cn4", 0, 0},
		{"C♯4", 0, 1},
		{"E♭4", 2, 3},
		{"C\U0001D12A4", 0, 2},
		{"C\U0001D12B4", 0, -2},

		{"C###4", 0, 3},
		{"C(3#)4", 0, 3},
		{"Cbbb4", 0, -3},
		{"C(3b)4", 0, -3},
		{"F###5", 10, 20},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			p, err := ParsePitch(c.in)
			require.NoError(t, err)
			assert.Equal(t, Pitch{c.diatonic, c.chromatic}, p)
		})
	}
}

func TestParsePitchFail(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"C", ErrNoOctaveFound},
		{"Ch", ErrNoOctaveFound},
		{"", ErrNoOctaveFound},
		{"c18", ErrInvalidPitchName},
		{"H4", ErrInvalidPitchName},
		{"4", ErrInvalidPitchName},
		{"Cx4", ErrInvalidAccidental},
		{"C#b4", ErrInvalidAccidental},
		{"C(3)4", ErrInvalidAccidental},
		{"C(x#)4", ErrInvalidAccidental},
		{"C(3#4", ErrInvalidAccidental},
		{"C99999", ErrInvalidOctave},
		{"C32767", ErrInvalidOctave},
		{"C-32768", ErrInvalidOctave},
		{"C4000", ErrInvalidOctave},
		{"C(40000#)4", ErrInvalidAccidental},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			_, err := ParsePitch(c.in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, c.want), "got %v", err)
		})
	}
}

func TestPitchString(t *testing.T) {
	cases := map[string]string{
		"Eb4":    "Eb4",
		"Ebb4":   "E&4",
		"E4":     "E4",
		"F5":     "F5",
		"Bb2":    "Bb2",
		"C###4":  "C(3#)4",
		"Cn4":    "C4",
		"Gbbb-1": "G(3b)-1",
	}
	for in, want := range cases {
		assert.Equal(t, want, MustParsePitch(in).String(), in)
	}
}

func TestPitchRoundTrip(t *testing.T) {
	for d := int16(-30); d <= 30; d += 4 {
		for c := int16(-55); c <= 55; c += 7 {
			p := Pitch{d, c}
			parsed, err := ParsePitch(p.String())
			require.NoError(t, err, p.String())
			assert.Equal(t, p, parsed)
		}
	}
}

func TestPitchRoundTripAtLimits(t *testing.T) {
	limits := []int16{math.MinInt16, math.MinInt16 + 1, -1, 0, 1, math.MaxInt16 - 1, math.MaxInt16}
	for _, d := range limits {
		for _, c := range limits {
			p := Pitch{d, c}
			parsed, err := ParsePitch(p.String())
			require.NoError(t, err, p.String())
			assert.Equal(t, p, parsed, p.String())
		}
	}
	assert.Equal(t, "C(88940b)4685", Pitch{math.MaxInt16, math.MinInt16}.String())
}

func TestParseAccidentalBounds(t *testing.T) {
	acc, err := ParseAccidental("(32767b)")
	require.NoError(t, err)
	assert.Equal(t, Accidental(-32767), acc)

	for _, in := range []string{"(40000#)", strings.Repeat("#", 40000), strings.Repeat("b", 65537)} {
		_, err := ParseAccidental(in)
		assert.True(t, errors.Is(err, ErrInvalidAccidental), "%d bytes", len(in))
	}
}

func TestParseAccidental(t *testing.T) {
	assert := assert.New(t)
	cases := map[string]Accidental{
		"":      Natural,
		"n":     Natural,
		"#":     Sharp,
		"b":     Flat,
		"+":     DoubleSharp,
		"##":    DoubleSharp,
		"&":     DoubleFlat,
		"bb":    DoubleFlat,
		"####":  4,
		"(12b)": -12,
		"♮":     Natural,
	}
	for in, want := range cases {
		got, err := ParseAccidental(in)
		assert.NoError(err, in)
		assert.Equal(want, got, in)
	}
	for _, acc := range []Accidental{-5, -2, -1, 0, 1, 2, 7} {
		got, err := ParseAccidental(acc.String())
		assert.NoError(err)
		assert.Equal(acc, got)
	}
}

func TestParsePitchName(t *testing.T) {
	name, err := ParsePitchName("G")
	require.NoError(t, err)
	assert.Equal(t, G, name)

	_, err = ParsePitchName("GA")
	assert.True(t, errors.Is(err, ErrInvalidPitchName))
}
