package harmony

import (
	"fmt"
	"strconv"
	"strings"
)

// String spells the accidental: "" natural, "#" and "b", "+" and "&" for
// doubles, "(3#)" and "(3b)" beyond.
func (a Accidental) String() string {
	return accidentalString(int(a))
}

func accidentalString(a int) string {
	switch {
	case a == 0:
		return ""
	case a == 1:
		return "#"
	case a == -1:
		return "b"
	case a == 2:
		return "+"
	case a == -2:
		return "&"
	case a > 0:
		return fmt.Sprintf("(%d#)", a)
	}
	return fmt.Sprintf("(%db)", -a)
}

var accidentalTokens = map[string]Accidental{
	"":           Natural,
	"n":          Natural,
	"♮":          Natural,
	"#":          Sharp,
	"♯":          Sharp,
	"b":          Flat,
	"♭":          Flat,
	"##":         DoubleSharp,
	"+":          DoubleSharp,
	"\U0001D12A": DoubleSharp,
	"bb":         DoubleFlat,
	"&":          DoubleFlat,
	"\U0001D12B": DoubleFlat,
}

// ParseAccidental reads the accidental spellings produced by String, plus
// "n", "##", "bb", runs of '#' or 'b' of any length and the Unicode symbols
// ♭ ♮ ♯ 𝄫 𝄪.
func ParseAccidental(s string) (Accidental, error) {
	acc, err := parseAccidental(s)
	if err != nil {
		return 0, err
	}
	if !fitsInt16(acc) {
		return 0, &ParsePitchError{Err: ErrInvalidAccidental, Input: s}
	}
	return Accidental(acc), nil
}

// parseAccidental is ParseAccidental without the int16 bound, so pitches
// can carry accidentals that only fit once added to the octave.
func parseAccidental(s string) (int, error) {
	if acc, ok := accidentalTokens[s]; ok {
		return int(acc), nil
	}
	invalid := &ParsePitchError{Err: ErrInvalidAccidental, Input: s}

	if inner, ok := strings.CutPrefix(s, "("); ok {
		inner, ok = strings.CutSuffix(inner, ")")
		if !ok || len(inner) < 2 {
			return 0, invalid
		}
		digits, sign := inner[:len(inner)-1], inner[len(inner)-1]
		for i := 0; i < len(digits); i++ {
			if !isDigit(digits[i]) {
				return 0, invalid
			}
		}
		n, err := strconv.ParseInt(digits, 10, 32)
		if err != nil {
			return 0, invalid
		}
		switch sign {
		case '#':
			return int(n), nil
		case 'b':
			return -int(n), nil
		}
		return 0, invalid
	}

	first := s[0]
	if first != '#' && first != 'b' {
		return 0, invalid
	}
	if strings.Count(s, string(first)) != len(s) {
		return 0, invalid
	}
	if first == '#' {
		return len(s), nil
	}
	return -len(s), nil
}

func (a Accidental) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

func (a *Accidental) UnmarshalText(text []byte) error {
	parsed, err := ParseAccidental(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParsePitchName accepts a single upper case letter A-G.
func ParsePitchName(s string) (PitchName, error) {
	if len(s) == 1 {
		if name, ok := PitchNameFromByte(s[0]); ok {
			return name, nil
		}
	}
	return 0, &ParsePitchError{Err: ErrInvalidPitchName, Input: s}
}

// String writes the pitch in scientific pitch notation, e.g. "Eb4", "E&4".
func (p Pitch) String() string {
	name, acc, octave := p.decompose()
	return name.String() + accidentalString(acc) + strconv.Itoa(octave)
}

// ParsePitch reads a letter A-G, an accidental (see ParseAccidental) and a
// possibly negative octave number: "C4", "Eb4", "F###5", "C(3#)4", "B-1".
func ParsePitch(s string) (Pitch, error) {
	end := len(s)
	for end > 0 && isDigit(s[end-1]) {
		end--
	}
	if end == len(s) {
		return Pitch{}, &ParsePitchError{Err: ErrNoOctaveFound, Input: s}
	}
	if end > 0 && s[end-1] == '-' {
		end--
	}
	octaveText := s[end:]
	octave, err := strconv.ParseInt(octaveText, 10, 16)
	if err != nil {
		return Pitch{}, &ParsePitchError{Err: ErrInvalidOctave, Input: octaveText}
	}

	rest := s[:end]
	if rest == "" {
		return Pitch{}, &ParsePitchError{Err: ErrInvalidPitchName, Input: rest}
	}
	name, ok := PitchNameFromByte(rest[0])
	if !ok {
		return Pitch{}, &ParsePitchError{Err: ErrInvalidPitchName, Input: rest}
	}
	acc, err := parseAccidental(rest[1:])
	if err != nil {
		return Pitch{}, err
	}
	diatonic, chromatic := compose(name, acc, int(octave))
	switch {
	case !fitsInt16(diatonic), !fitsInt16(chromatic) && acc == 0:
		return Pitch{}, &ParsePitchError{Err: ErrInvalidOctave, Input: octaveText}
	case !fitsInt16(chromatic):
		return Pitch{}, &ParsePitchError{Err: ErrInvalidAccidental, Input: rest[1:]}
	}
	return Pitch{Diatonic: int16(diatonic), Chromatic: int16(chromatic)}, nil
}

// MustParsePitch is like ParsePitch but panics on error.
func MustParsePitch(s string) Pitch {
	p, err := ParsePitch(s)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Pitch) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Pitch) UnmarshalText(text []byte) error {
	parsed, err := ParsePitch(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
