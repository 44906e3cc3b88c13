package cmd

import (
	"encoding/json"
	"net/http"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/jsphweid/tonality/db"
	"github.com/jsphweid/tonality/engrave"
	"github.com/jsphweid/tonality/harmony"
	"github.com/jsphweid/tonality/model"
	"github.com/pkg/errors"
)

// invalid tags err as the client's fault. issue is what the client reads.
func invalid(err error, issue string) error {
	return fault.Wrap(err, fmsg.WithDesc("bad request", issue), ftag.With(ftag.InvalidArgument))
}

func notFound(err error, issue string) error {
	return fault.Wrap(err, fmsg.WithDesc("not found", issue), ftag.With(ftag.NotFound))
}

// classify tags the errors of the library packages that a client caused.
// Anything else stays an internal error.
func classify(err error) error {
	var pitchErr *harmony.ParsePitchError
	var intervalErr *harmony.ParseIntervalError
	switch {
	case ftag.Get(err) == ftag.InvalidArgument, ftag.Get(err) == ftag.NotFound:
		return err
	case errors.Is(err, db.ErrNotFound), errors.Is(err, ErrSessionNotFound):
		return notFound(err, err.Error())
	case errors.As(err, &pitchErr), errors.As(err, &intervalErr), errors.Is(err, engrave.ErrInvalidKey):
		return invalid(err, err.Error())
	}
	return err
}

func statusFor(err error) int {
	switch ftag.Get(err) {
	case ftag.InvalidArgument:
		return http.StatusBadRequest
	case ftag.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("could not write response", "error", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	err = classify(err)
	status := statusFor(err)
	detail := fmsg.GetIssue(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		detail = ""
	}
	if detail == "" {
		detail = http.StatusText(status)
	}
	writeJSON(w, status, model.ErrorResponse{Error: detail})
}

// handle adapts a handler that reports failure by returning an error.
func handle(fn func(w http.ResponseWriter, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			writeError(w, r, err)
		}
	}
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return invalid(err, "could not read request body: "+err.Error())
	}
	return nil
}
