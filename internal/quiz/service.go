package quiz

import (
	"context"
	"log"
	"strconv"
	"sync"
)

// AttemptSink receives the completed-assessment handoff record. The SQL
// attempt store implements it; tests plug in a capture.
type AttemptSink interface {
	LogQuizAttempt(ctx context.Context, rec AttemptRecord) error
}

// Service is the assessment controller. It owns one live session per
// learner, drives the idle → in-progress → completed lifecycle, and hands
// completed attempts to the sink.
type Service struct {
	gen  *Generator
	sink AttemptSink

	mu       sync.Mutex
	sessions map[string]*Session
}

func NewService(gen *Generator, sink AttemptSink) *Service {
	return &Service{
		gen:      gen,
		sink:     sink,
		sessions: map[string]*Session{},
	}
}

// Start generates questions for the topic and opens a fresh session for
// the learner, replacing any previous one. A provider failure propagates
// (the question source is unavailable); a parse yielding zero questions is
// ErrNoQuestionsGenerated and leaves the learner without a session, so an
// assessment can never begin with nothing to ask.
func (s *Service) Start(ctx context.Context, userID, topic string) (*Session, error) {
	questions, err := s.gen.Generate(ctx, topic)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestionsGenerated
	}

	sess := NewSession(topic, questions)
	s.mu.Lock()
	s.sessions[userID] = sess
	s.mu.Unlock()
	return sess, nil
}

// Get returns the learner's live session.
func (s *Service) Get(userID string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	return sess, nil
}

// RecordAnswer stores the learner's current selection for a question.
func (s *Service) RecordAnswer(userID string, index int, option string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	if err := sess.RecordAnswer(index, option); err != nil {
		return nil, err
	}
	return sess, nil
}

// Submit scores the answer at index, recording the time spent when the
// caller measured it. Completing the last question persists the attempt
// record; a sink failure is logged but does not fail the learner's
// submission — the session result stands either way.
func (s *Service) Submit(ctx context.Context, userID string, index int, seconds float64) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[userID]
	if !ok {
		return nil, ErrNoActiveSession
	}
	if seconds > 0 {
		sess.RecordTime(index, seconds)
	}
	if err := sess.Submit(index); err != nil {
		return nil, err
	}

	if sess.Completed && s.sink != nil {
		if err := s.sink.LogQuizAttempt(ctx, buildAttemptRecord(userID, sess)); err != nil {
			log.Printf("quiz: persisting attempt for user %s: %v", userID, err)
		}
	}
	return sess, nil
}

// Restart clears the learner's session back to idle.
func (s *Service) Restart(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[userID]; ok {
		sess.Restart()
	}
}

func buildAttemptRecord(userID string, sess *Session) AttemptRecord {
	data := AttemptData{
		Questions:  map[string]Question{},
		Answers:    map[string]string{},
		Categories: map[string]string{},
		TimeTaken:  map[string]float64{},
	}
	for i, q := range sess.Questions {
		key := strconv.Itoa(i)
		data.Questions[key] = q
		data.Categories[key] = q.Category
		if answer, ok := sess.Answers[i]; ok {
			data.Answers[key] = answer
		}
		if secs, ok := sess.TimeTaken[i]; ok {
			data.TimeTaken[key] = secs
		}
	}
	return AttemptRecord{
		UserID:         userID,
		Topic:          sess.Topic,
		Score:          sess.Score,
		TotalQuestions: len(sess.Questions),
		Data:           data,
	}
}
