package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/navanthiga/videdu/internal/progress"
)

func GetProgressHandler(store *progress.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := store.GetUserProgress(r.Context(), currentUserID(r))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, p)
	}
}

func GetStatsHandler(store *progress.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := store.GetUserStats(r.Context(), currentUserID(r))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, stats)
	}
}

func LogVideoHandler(store *progress.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Topic      string  `json:"topic"`
			Completion float64 `json:"completion_percentage"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if req.Topic == "" {
			http.Error(w, "topic required", 400)
			return
		}
		if err := store.LogVideoWatched(r.Context(), currentUserID(r), req.Topic, req.Completion); err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func ListVideosHandler(store *progress.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		videos, err := store.WatchedVideos(r.Context(), currentUserID(r))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, videos)
	}
}

func ListAttemptsHandler(store *progress.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		attempts, err := store.QuizAttempts(r.Context(), currentUserID(r))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, attempts)
	}
}

func AttemptDataHandler(store *progress.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		attemptID, err := strconv.ParseInt(chi.URLParam(r, "attemptID"), 10, 64)
		if err != nil {
			http.Error(w, "bad attempt id", 400)
			return
		}
		data, err := store.AttemptData(r.Context(), currentUserID(r), attemptID)
		if err != nil {
			http.Error(w, "not found", 404)
			return
		}
		writeJSON(w, data)
	}
}
