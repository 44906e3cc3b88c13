package cmd

import (
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/jsphweid/tonality/engrave"
	"github.com/pkg/errors"
)

var ErrSessionNotFound = errors.New("no such session")

// session is one score being engraved: a calculator that keeps the
// accidentals of the current bar between requests.
type session struct {
	mu     sync.Mutex
	calc   *engrave.Calculator
	expire func(func())
}

// Sessions holds engraving sessions by id. A session that sees no request
// for the idle time is dropped.
type Sessions struct {
	mu       sync.Mutex
	sessions map[string]*session
	idle     time.Duration
}

func NewSessions(idle time.Duration) *Sessions {
	return &Sessions{sessions: make(map[string]*session), idle: idle}
}

// Create starts a session in key and returns its id.
func (s *Sessions) Create(key engrave.KeySignature) string {
	id := uuid.NewString()
	sess := &session{calc: engrave.NewCalculator(key), expire: debounce.New(s.idle)}

	s.mu.Lock()
	s.sessions[id] = sess
	s.mu.Unlock()

	s.touch(id, sess)
	logger.Debug("created session", "id", id, "key", key.String())
	return id
}

func (s *Sessions) touch(id string, sess *session) {
	sess.expire(func() {
		s.remove(id, sess)
		logger.Debug("session expired", "id", id)
	})
}

// remove drops id only while it still maps to sess.
func (s *Sessions) remove(id string, sess *session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sessions[id] == sess {
		delete(s.sessions, id)
	}
}

// With runs fn on the calculator of session id, one call at a time, and
// restarts its idle timer.
func (s *Sessions) With(id string, fn func(calc *engrave.Calculator) error) error {
	s.mu.Lock()
	sess, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return errors.Wrapf(ErrSessionNotFound, "session `%s`", id)
	}
	s.touch(id, sess)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	return fn(sess.calc)
}

func (s *Sessions) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return errors.Wrapf(ErrSessionNotFound, "session `%s`", id)
	}
	delete(s.sessions, id)
	return nil
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
