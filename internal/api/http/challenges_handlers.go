package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/navanthiga/videdu/internal/challenges"
)

func ListChallengesHandler(store *challenges.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := store.List(r.Context(), challenges.Difficulty(r.URL.Query().Get("difficulty")))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, list)
	}
}

func GetChallengeHandler(store *challenges.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "challengeID"), 10, 64)
		if err != nil {
			http.Error(w, "bad challenge id", 400)
			return
		}
		c, err := store.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, challenges.ErrChallengeNotFound) {
				http.Error(w, err.Error(), 404)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, c)
	}
}

func AttemptChallengeHandler(store *challenges.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "challengeID"), 10, 64)
		if err != nil {
			http.Error(w, "bad challenge id", 400)
			return
		}
		var req struct {
			Code string `json:"code"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if err := store.RecordAttempt(r.Context(), currentUserID(r), id, req.Code); err != nil {
			if errors.Is(err, challenges.ErrChallengeNotFound) {
				http.Error(w, err.Error(), 404)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func CompleteChallengeHandler(store *challenges.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "challengeID"), 10, 64)
		if err != nil {
			http.Error(w, "bad challenge id", 400)
			return
		}
		xp, err := store.Complete(r.Context(), currentUserID(r), id)
		if err != nil {
			if errors.Is(err, challenges.ErrChallengeNotFound) {
				http.Error(w, err.Error(), 404)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, map[string]int64{"xp_earned": xp})
	}
}

func ChallengeProgressHandler(store *challenges.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		prog, err := store.UserProgress(r.Context(), currentUserID(r))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, prog)
	}
}
