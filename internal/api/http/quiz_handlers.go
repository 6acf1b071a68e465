package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/navanthiga/videdu/internal/quiz"
)

// sessionView strips answer keys while the assessment is still running.
// Completed sessions reveal them for review.
func sessionView(s *quiz.Session) *quiz.Session {
	if s.Completed {
		return s
	}
	view := *s
	view.Questions = make([]quiz.Question, len(s.Questions))
	for i, q := range s.Questions {
		q.CorrectAnswer = ""
		view.Questions[i] = q
	}
	return &view
}

func quizStatus(err error) int {
	switch {
	case errors.Is(err, quiz.ErrNoActiveSession):
		return http.StatusNotFound
	case errors.Is(err, quiz.ErrNoQuestionsGenerated),
		errors.Is(err, quiz.ErrNoAnswerSelected),
		errors.Is(err, quiz.ErrSessionNotActive),
		errors.Is(err, quiz.ErrInvalidIndex):
		return http.StatusBadRequest
	default:
		return http.StatusBadGateway
	}
}

func StartQuizHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Topic string `json:"topic"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if req.Topic == "" {
			http.Error(w, "topic required", 400)
			return
		}
		userID := strconv.FormatInt(currentUserID(r), 10)
		s, err := svc.Start(r.Context(), userID, req.Topic)
		if err != nil {
			http.Error(w, err.Error(), quizStatus(err))
			return
		}
		writeJSON(w, sessionView(s))
	}
}

func QuizStateHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := strconv.FormatInt(currentUserID(r), 10)
		s, err := svc.Get(userID)
		if err != nil {
			http.Error(w, err.Error(), quizStatus(err))
			return
		}
		writeJSON(w, sessionView(s))
	}
}

func RecordAnswerHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Index  int    `json:"index"`
			Option string `json:"option"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		userID := strconv.FormatInt(currentUserID(r), 10)
		s, err := svc.RecordAnswer(userID, req.Index, req.Option)
		if err != nil {
			http.Error(w, err.Error(), quizStatus(err))
			return
		}
		writeJSON(w, sessionView(s))
	}
}

func SubmitAnswerHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Index   int     `json:"index"`
			Seconds float64 `json:"seconds"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		userID := strconv.FormatInt(currentUserID(r), 10)
		s, err := svc.Submit(r.Context(), userID, req.Index, req.Seconds)
		if err != nil {
			http.Error(w, err.Error(), quizStatus(err))
			return
		}
		writeJSON(w, sessionView(s))
	}
}

// QuizResultsHandler returns the completed session with its category
// breakdown and study feedback.
func QuizResultsHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := strconv.FormatInt(currentUserID(r), 10)
		s, err := svc.Get(userID)
		if err != nil {
			http.Error(w, err.Error(), quizStatus(err))
			return
		}
		if !s.Completed {
			http.Error(w, "assessment still in progress", 400)
			return
		}
		performance, strengths, weaknesses := quiz.Analyze(s)
		writeJSON(w, map[string]any{
			"session":     s,
			"performance": performance,
			"strengths":   strengths,
			"weaknesses":  weaknesses,
			"feedback":    quiz.Feedback(strengths, weaknesses, s.Topic),
		})
	}
}

func RestartQuizHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := strconv.FormatInt(currentUserID(r), 10)
		svc.Restart(userID)
		w.WriteHeader(http.StatusNoContent)
	}
}
