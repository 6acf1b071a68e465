package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/navanthiga/videdu/internal/peers"
)

func MatchPeersHandler(svc *peers.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		matched, err := svc.MatchPeers(r.Context(), currentUserID(r))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, map[string]any{"peers": matched})
	}
}

func CreateGroupHandler(svc *peers.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Topic       string `json:"topic"`
			Description string `json:"description"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		g, err := svc.CreateGroup(r.Context(), currentUserID(r), req.Topic, req.Description)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		writeJSON(w, g)
	}
}

func ListGroupsHandler(svc *peers.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groups, err := svc.ListGroups(r.Context())
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, groups)
	}
}

func JoinGroupHandler(svc *peers.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		groupID := chi.URLParam(r, "groupID")
		if err := svc.JoinGroup(r.Context(), groupID, currentUserID(r)); err != nil {
			if errors.Is(err, peers.ErrGroupNotFound) {
				http.Error(w, err.Error(), 404)
				return
			}
			http.Error(w, err.Error(), 400)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func GroupMembersHandler(svc *peers.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := svc.GroupMembers(r.Context(), chi.URLParam(r, "groupID"))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, map[string]any{"members": members})
	}
}
