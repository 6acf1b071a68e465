package quiz

import "errors"

// State is the lifecycle position of a Session.
type State string

const (
	StateIdle       State = "idle"
	StateInProgress State = "in_progress"
	StateCompleted  State = "completed"
)

var (
	// ErrNoQuestionsGenerated means the question source produced output
	// the parser could not recover a single valid record from.
	ErrNoQuestionsGenerated = errors.New("no questions generated")

	// ErrNoAnswerSelected means Submit was called for an index without a
	// recorded answer. No session state changes.
	ErrNoAnswerSelected = errors.New("no answer selected")

	// ErrSessionNotActive means an operation that requires an in-progress
	// assessment was called on an idle or completed session.
	ErrSessionNotActive = errors.New("assessment is not in progress")

	// ErrNoActiveSession means the learner has no session at all.
	ErrNoActiveSession = errors.New("no active assessment session")

	// ErrInvalidIndex means the question index is out of range.
	ErrInvalidIndex = errors.New("question index out of range")
)

// Session is the mutable state of one learner's quiz attempt. It is an
// explicit value owned by the Service, one per learner; nothing here is
// shared between learners.
//
// Questions is fixed once the assessment starts. CurrentIndex and Score
// are monotonically non-decreasing until Restart.
type Session struct {
	Topic        string          `json:"topic"`
	Questions    []Question      `json:"questions"`
	CurrentIndex int             `json:"current_index"`
	Score        int             `json:"score"`
	Answers      map[int]string  `json:"answers"`
	Completed    bool            `json:"completed"`
	TimeTaken    map[int]float64 `json:"time_taken"`

	// scored tracks which indices have already contributed to Score, so
	// re-submitting an index can never double count.
	scored map[int]bool
}

// NewSession creates an in-progress session over the given questions.
func NewSession(topic string, questions []Question) *Session {
	return &Session{
		Topic:     topic,
		Questions: questions,
		Answers:   map[int]string{},
		TimeTaken: map[int]float64{},
		scored:    map[int]bool{},
	}
}

// State derives the lifecycle state from the session fields.
func (s *Session) State() State {
	switch {
	case len(s.Questions) == 0:
		return StateIdle
	case s.Completed:
		return StateCompleted
	default:
		return StateInProgress
	}
}

// RecordAnswer stores (or overwrites) the learner's selected option for a
// question. It never advances the cursor or touches the score; the learner
// may change their mind any number of times before submitting.
func (s *Session) RecordAnswer(index int, option string) error {
	if s.State() != StateInProgress {
		return ErrSessionNotActive
	}
	if index < 0 || index >= len(s.Questions) {
		return ErrInvalidIndex
	}
	s.Answers[index] = option
	return nil
}

// RecordTime stores the elapsed seconds the learner spent on a question.
func (s *Session) RecordTime(index int, seconds float64) {
	if index < 0 || index >= len(s.Questions) || seconds < 0 {
		return
	}
	s.TimeTaken[index] = seconds
}

// Submit scores the recorded answer for index. Scoring is keyed by the
// explicit index, not the cursor, and is idempotent per index: a given
// index contributes to Score at most once, however many times it is
// resubmitted. The cursor only advances when the submitted index is the
// current one, so an out-of-order submit cannot skip questions or push
// CurrentIndex out of bounds. Submitting the last question completes the
// session and leaves CurrentIndex where it is.
func (s *Session) Submit(index int) error {
	if s.State() != StateInProgress {
		return ErrSessionNotActive
	}
	if index < 0 || index >= len(s.Questions) {
		return ErrInvalidIndex
	}
	answer, ok := s.Answers[index]
	if !ok || answer == "" {
		return ErrNoAnswerSelected
	}

	if answer == s.Questions[index].CorrectAnswer && !s.scored[index] {
		s.Score++
		s.scored[index] = true
	}

	if index == s.CurrentIndex {
		if index == len(s.Questions)-1 {
			s.Completed = true
		} else {
			s.CurrentIndex++
		}
	}
	return nil
}

// Restart clears the session back to the idle state.
func (s *Session) Restart() {
	s.Topic = ""
	s.Questions = nil
	s.CurrentIndex = 0
	s.Score = 0
	s.Answers = map[int]string{}
	s.Completed = false
	s.TimeTaken = map[int]float64{}
	s.scored = map[int]bool{}
}
