package harmony

import (
	"errors"
	"fmt"
)

// Causes of a failed parse. Use errors.Is against the returned error.
var (
	ErrInvalidPitchName  = errors.New("invalid pitch name")
	ErrInvalidAccidental = errors.New("invalid accidental")
	ErrNoOctaveFound     = errors.New("no octave found")
	ErrInvalidOctave     = errors.New("invalid octave")

	ErrInvalidNumber  = errors.New("invalid interval number")
	ErrInvalidQuality = errors.New("invalid interval quality")
	ErrImpossible     = errors.New("impossible interval")
	ErrOutOfRange     = errors.New("interval out of range")
)

// ParsePitchError records a failed pitch, pitch name or accidental parse.
type ParsePitchError struct {
	Err   error  // one of the ErrInvalid*/ErrNoOctaveFound sentinels
	Input string // the part of the input that failed
}

func (e *ParsePitchError) Error() string {
	switch e.Err {
	case ErrInvalidPitchName:
		return fmt.Sprintf("pitch name `%s` is invalid", e.Input)
	case ErrInvalidAccidental:
		return fmt.Sprintf("accidental `%s` is invalid", e.Input)
	case ErrNoOctaveFound:
		return fmt.Sprintf("no octave in `%s`", e.Input)
	case ErrInvalidOctave:
		return fmt.Sprintf("could not parse octave `%s`", e.Input)
	}
	return e.Err.Error()
}

func (e *ParsePitchError) Unwrap() error { return e.Err }

// ParseIntervalError records a failed interval parse. For ErrImpossible,
// Number and Quality describe the rejected combination; HasQuality is false
// when no quality was given (the interval was read as perfect).
type ParseIntervalError struct {
	Err        error
	Input      string
	Number     int
	Quality    string
	HasQuality bool
}

func (e *ParseIntervalError) Error() string {
	switch e.Err {
	case ErrInvalidNumber:
		return fmt.Sprintf("could not parse interval number `%s`", e.Input)
	case ErrInvalidQuality:
		return fmt.Sprintf("could not parse interval quality `%s`", e.Input)
	case ErrOutOfRange:
		return fmt.Sprintf("interval `%s` has too many chromatic steps", e.Input)
	case ErrImpossible:
		number := e.Number
		if number < 0 {
			number = -number
		}
		simple := (number-1)%7 + 1
		if !e.HasQuality {
			return fmt.Sprintf("interval of number %d (octave equivalent to %d) cannot be perfect", e.Number, simple)
		}
		return fmt.Sprintf("interval of number %d (octave equivalent to %d) cannot have quality `%s`", e.Number, simple, e.Quality)
	}
	return e.Err.Error()
}

func (e *ParseIntervalError) Unwrap() error { return e.Err }
