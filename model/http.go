package model

import (
	"github.com/jsphweid/tonality/harmony"
	"github.com/jsphweid/tonality/scale"
)

// Intervals, pitches and scales travel in their text notation ("m3", "Eb4",
// "1 j2 m3 4 5 j6 m7").

type IntervalResponse struct {
	Interval  harmony.Interval `json:"interval"`
	Diatonic  int16            `json:"diatonic"`
	Chromatic int16            `json:"chromatic"`
	Number    int              `json:"number"`
	Reduced   harmony.Interval `json:"reduced"`
	Perfect   bool             `json:"perfect"`
}

type PitchResponse struct {
	Pitch      harmony.Pitch      `json:"pitch"`
	Diatonic   int16              `json:"diatonic"`
	Chromatic  int16              `json:"chromatic"`
	Name       string             `json:"name"`
	Accidental harmony.Accidental `json:"accidental"`
	Octave     int16              `json:"octave"`
	Frequency  float64            `json:"frequency"`
	// absent outside the MIDI range
	Midi *uint8 `json:"midi,omitempty"`
}

type TransposeRequestBody struct {
	Pitch     harmony.Pitch      `json:"pitch"`
	Intervals []harmony.Interval `json:"intervals"`
}

type TransposeResponse struct {
	Pitch harmony.Pitch `json:"pitch"`
	// the pitch after each interval
	Path []harmony.Pitch `json:"path"`
}

type ScaleResponse struct {
	Name    string          `json:"name"`
	Mode    int             `json:"mode"`
	Scale   scale.Scale     `json:"scale"`
	Root    harmony.Pitch   `json:"root"`
	Pitches []harmony.Pitch `json:"pitches"`
}

type PutScaleRequestBody struct {
	// nil when missing
	Scale *scale.Scale `json:"scale"`
}

type ScaleListResponse struct {
	Scales map[string]scale.Scale `json:"scales"`
}

type SessionRequestBody struct {
	Key string `json:"key"`
}

type SessionResponse struct {
	Id  string `json:"id"`
	Key string `json:"key"`
}

type PitchesRequestBody struct {
	Pitches []harmony.Pitch `json:"pitches"`
}

type Mark struct {
	Pitch harmony.Pitch `json:"pitch"`
	// empty when nothing is printed, "n" for a natural
	Mark string `json:"mark"`
}

type MarksResponse struct {
	Marks []Mark `json:"marks"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
