package cmd

import (
	"net/http"
	"strconv"
	"time"

	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/gorilla/mux"
	"github.com/jsphweid/tonality/db"
	"github.com/jsphweid/tonality/engrave"
	"github.com/jsphweid/tonality/harmony"
	"github.com/jsphweid/tonality/metrics"
	"github.com/jsphweid/tonality/model"
	"github.com/jsphweid/tonality/scale"
	"github.com/pkg/errors"
	"github.com/rs/cors"
)

type server struct {
	store    db.ScaleStore
	sessions *Sessions
	metrics  *metrics.SentryMetrics
}

// NewRouter serves the pitch, interval and scale arithmetic plus engraving
// sessions over JSON.
func NewRouter(store db.ScaleStore, sessions *Sessions, m *metrics.SentryMetrics) http.Handler {
	s := &server{store: store, sessions: sessions, metrics: m}

	router := mux.NewRouter().StrictSlash(true)
	router.Use(s.recordRequests)
	router.HandleFunc("/intervals/{interval}", handle(s.handleInterval)).Methods("GET")
	router.HandleFunc("/pitches/{pitch}", handle(s.handlePitch)).Methods("GET")
	router.HandleFunc("/transpose", handle(s.handleTranspose)).Methods("POST")
	router.HandleFunc("/scales", handle(s.handleListScales)).Methods("GET")
	router.HandleFunc("/scales/{name}", handle(s.handleGetScale)).Methods("GET")
	router.HandleFunc("/scales/{name}", handle(s.handlePutScale)).Methods("PUT")
	router.HandleFunc("/sessions", handle(s.handleCreateSession)).Methods("POST")
	router.HandleFunc("/sessions/{id}", handle(s.handleDeleteSession)).Methods("DELETE")
	router.HandleFunc("/sessions/{id}/key", handle(s.handleChangeKey)).Methods("PUT")
	router.HandleFunc("/sessions/{id}/pitches", handle(s.handlePitches)).Methods("POST")
	router.HandleFunc("/sessions/{id}/barline", handle(s.handleBarline)).Methods("POST")

	c := cors.New(cors.Options{
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
	})
	return sentryhttp.New(sentryhttp.Options{}).Handle(c.Handler(router))
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *server) recordRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tmpl, err := current.GetPathTemplate(); err == nil {
				route = tmpl
			}
		}
		s.metrics.RecordRequest(r.Context(), r.Method+" "+route, time.Since(start), rec.status)
		logger.Debug("handled request", "method", r.Method, "route", route, "status", rec.status)
	})
}

func (s *server) handleInterval(w http.ResponseWriter, r *http.Request) error {
	i, err := harmony.ParseInterval(mux.Vars(r)["interval"])
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, model.IntervalResponse{
		Interval:  i,
		Diatonic:  i.Diatonic,
		Chromatic: i.Chromatic,
		Number:    i.Number(),
		Reduced:   i.ReduceOctave(),
		Perfect:   harmony.HasPerfectQuality(i.Diatonic),
	})
	return nil
}

func pitchResponse(p harmony.Pitch) model.PitchResponse {
	res := model.PitchResponse{
		Pitch:      p,
		Diatonic:   p.Diatonic,
		Chromatic:  p.Chromatic,
		Name:       p.Name().String(),
		Accidental: p.Accidental(),
		Octave:     p.Octave(),
		Frequency:  p.Frequency(),
	}
	if key, ok := p.ToChromatic().MIDI(); ok {
		res.Midi = &key
	}
	return res
}

func (s *server) handlePitch(w http.ResponseWriter, r *http.Request) error {
	p, err := harmony.ParsePitch(mux.Vars(r)["pitch"])
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, pitchResponse(p))
	return nil
}

func (s *server) handleTranspose(w http.ResponseWriter, r *http.Request) error {
	var body model.TransposeRequestBody
	if err := decodeBody(r, &body); err != nil {
		return err
	}
	p := body.Pitch
	path := make([]harmony.Pitch, 0, len(body.Intervals))
	for _, i := range body.Intervals {
		p = p.Add(i)
		path = append(path, p)
	}
	writeJSON(w, http.StatusOK, model.TransposeResponse{Pitch: p, Path: path})
	return nil
}

func (s *server) handleListScales(w http.ResponseWriter, r *http.Request) error {
	scales, err := allScales(r.Context(), s.store)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, model.ScaleListResponse{Scales: scales})
	return nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	text := r.URL.Query().Get(name)
	if text == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, invalid(err, "query parameter `"+name+"` should be a whole number")
	}
	return n, nil
}

// handleGetScale lays scale name out from ?root (C4), rotated to ?mode
// (0), for ?count pitches (one octave, at most maxScaleCount).
func (s *server) handleGetScale(w http.ResponseWriter, r *http.Request) error {
	name := mux.Vars(r)["name"]
	sc, err := lookupScale(r.Context(), s.store, name)
	if err != nil {
		return err
	}
	mode, err := queryInt(r, "mode", 0)
	if err != nil {
		return err
	}
	sc = sc.NthMode(mode)
	count, err := queryInt(r, "count", sc.Len()+1)
	if err != nil {
		return err
	}
	if err := checkCount(count); err != nil {
		return invalid(err, err.Error())
	}
	rootText := r.URL.Query().Get("root")
	if rootText == "" {
		rootText = "C4"
	}
	root, err := harmony.ParsePitch(rootText)
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, model.ScaleResponse{
		Name:    name,
		Mode:    mode,
		Scale:   sc,
		Root:    root,
		Pitches: sc.IterFrom(root).Take(count),
	})
	return nil
}

func (s *server) handlePutScale(w http.ResponseWriter, r *http.Request) error {
	name := mux.Vars(r)["name"]
	if _, ok := scale.ByName(name); ok {
		return invalid(errors.Errorf("%s is a standard scale", name), "`"+name+"` is a standard scale and cannot be replaced")
	}
	var body model.PutScaleRequestBody
	if err := decodeBody(r, &body); err != nil {
		return err
	}
	if body.Scale == nil {
		return invalid(errors.New("missing scale"), "scale is missing")
	}
	sc := *body.Scale
	if err := s.store.Put(r.Context(), name, sc); err != nil {
		return err
	}
	logger.Info("saved scale", "name", name, "scale", sc.String())
	writeJSON(w, http.StatusOK, model.ScaleResponse{Name: name, Scale: sc})
	return nil
}

func (s *server) handleCreateSession(w http.ResponseWriter, r *http.Request) error {
	var body model.SessionRequestBody
	if err := decodeBody(r, &body); err != nil {
		return err
	}
	if body.Key == "" {
		body.Key = "C"
	}
	key, err := engrave.ParseKey(body.Key)
	if err != nil {
		return err
	}
	id := s.sessions.Create(key)
	writeJSON(w, http.StatusCreated, model.SessionResponse{Id: id, Key: key.String()})
	return nil
}

func (s *server) handleDeleteSession(w http.ResponseWriter, r *http.Request) error {
	if err := s.sessions.Delete(mux.Vars(r)["id"]); err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (s *server) handleChangeKey(w http.ResponseWriter, r *http.Request) error {
	id := mux.Vars(r)["id"]
	var body model.SessionRequestBody
	if err := decodeBody(r, &body); err != nil {
		return err
	}
	key, err := engrave.ParseKey(body.Key)
	if err != nil {
		return err
	}
	err = s.sessions.With(id, func(calc *engrave.Calculator) error {
		calc.ChangeKeySignature(key)
		return nil
	})
	if err != nil {
		return err
	}
	writeJSON(w, http.StatusOK, model.SessionResponse{Id: id, Key: key.String()})
	return nil
}

// handlePitches answers with the mark each pitch needs, given everything
// the session has seen since its last barline.
func (s *server) handlePitches(w http.ResponseWriter, r *http.Request) error {
	id := mux.Vars(r)["id"]
	var body model.PitchesRequestBody
	if err := decodeBody(r, &body); err != nil {
		return err
	}
	marks := make([]model.Mark, len(body.Pitches))
	printed := 0
	err := s.sessions.With(id, func(calc *engrave.Calculator) error {
		for n, p := range body.Pitches {
			marks[n].Pitch = p
			if acc, ok := calc.Next(p); ok {
				marks[n].Mark = engrave.Mark(acc)
				printed++
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.metrics.RecordSpelling(r.Context(), id, len(body.Pitches), printed)
	writeJSON(w, http.StatusOK, model.MarksResponse{Marks: marks})
	return nil
}

func (s *server) handleBarline(w http.ResponseWriter, r *http.Request) error {
	err := s.sessions.With(mux.Vars(r)["id"], func(calc *engrave.Calculator) error {
		calc.Clear()
		return nil
	})
	if err != nil {
		return err
	}
	w.WriteHeader(http.StatusNoContent)
	return nil
}
