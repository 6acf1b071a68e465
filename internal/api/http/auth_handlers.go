package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/navanthiga/videdu/internal/auth"
	"github.com/navanthiga/videdu/internal/progress"
)

func RegisterHandler(store *progress.Store, authSvc *auth.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			Password string `json:"password"`
			FullName string `json:"full_name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		if req.Username == "" || req.Email == "" || len(req.Password) < 6 {
			http.Error(w, "username, email and a password of 6+ chars required", 400)
			return
		}
		id, err := store.Register(r.Context(), req.Username, req.Email, req.Password, req.FullName)
		if err != nil {
			if errors.Is(err, progress.ErrUserExists) {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			http.Error(w, err.Error(), 400)
			return
		}
		token, err := authSvc.IssueJWT(strconv.FormatInt(id, 10), req.Username)
		if err != nil {
			http.Error(w, "token issue failed", 500)
			return
		}
		writeJSON(w, map[string]any{"id": id, "token": token})
	}
}

func LoginHandler(store *progress.Store, authSvc *auth.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		u, err := store.Authenticate(r.Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, progress.ErrInvalidCredentials) {
				http.Error(w, err.Error(), http.StatusUnauthorized)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		token, err := authSvc.IssueJWT(strconv.FormatInt(u.ID, 10), u.Username)
		if err != nil {
			http.Error(w, "token issue failed", 500)
			return
		}
		writeJSON(w, map[string]any{"token": token, "user": u})
	}
}

func MeHandler(store *progress.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := store.GetUser(r.Context(), currentUserID(r))
		if err != nil {
			http.Error(w, err.Error(), 404)
			return
		}
		writeJSON(w, u)
	}
}
