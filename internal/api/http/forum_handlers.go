package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/navanthiga/videdu/internal/forum"
)

func forumStatus(err error) int {
	switch {
	case errors.Is(err, forum.ErrTopicNotFound):
		return http.StatusNotFound
	case errors.Is(err, forum.ErrNotTopicOwner):
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}

func CreateTopicHandler(store *forum.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Title       string   `json:"title"`
			Description string   `json:"description"`
			Category    string   `json:"category"`
			Tags        []string `json:"tags"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		id, err := store.CreateTopic(r.Context(), currentUserID(r), req.Title, req.Description, req.Category, req.Tags)
		if err != nil {
			http.Error(w, err.Error(), forumStatus(err))
			return
		}
		writeJSON(w, map[string]int64{"id": id})
	}
}

func ListTopicsHandler(store *forum.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if term := r.URL.Query().Get("q"); term != "" {
			topics, err := store.Search(r.Context(), term)
			if err != nil {
				http.Error(w, err.Error(), 500)
				return
			}
			writeJSON(w, topics)
			return
		}
		topics, err := store.ListTopics(r.Context(), r.URL.Query().Get("category"))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, topics)
	}
}

func PopularTopicsHandler(store *forum.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		topics, err := store.PopularTopics(r.Context(), limit)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, topics)
	}
}

func MyTopicsHandler(store *forum.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topics, err := store.UserTopics(r.Context(), currentUserID(r))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, topics)
	}
}

func GetTopicHandler(store *forum.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "topicID"), 10, 64)
		if err != nil {
			http.Error(w, "bad topic id", 400)
			return
		}
		t, err := store.GetTopic(r.Context(), id)
		if err != nil {
			http.Error(w, err.Error(), forumStatus(err))
			return
		}
		posts, err := store.PostsForTopic(r.Context(), id)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, map[string]any{"topic": t, "posts": posts})
	}
}

func CreatePostHandler(store *forum.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topicID, err := strconv.ParseInt(chi.URLParam(r, "topicID"), 10, 64)
		if err != nil {
			http.Error(w, "bad topic id", 400)
			return
		}
		var req struct {
			Content  string `json:"content"`
			ParentID int64  `json:"parent_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		id, err := store.CreatePost(r.Context(), topicID, currentUserID(r), req.Content, req.ParentID)
		if err != nil {
			http.Error(w, err.Error(), forumStatus(err))
			return
		}
		writeJSON(w, map[string]int64{"id": id})
	}
}

func MarkSolutionHandler(store *forum.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topicID, err1 := strconv.ParseInt(chi.URLParam(r, "topicID"), 10, 64)
		postID, err2 := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
		if err1 != nil || err2 != nil {
			http.Error(w, "bad id", 400)
			return
		}
		if err := store.MarkSolution(r.Context(), topicID, postID, currentUserID(r)); err != nil {
			http.Error(w, err.Error(), forumStatus(err))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func LikePostHandler(store *forum.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
		if err != nil {
			http.Error(w, "bad post id", 400)
			return
		}
		if err := store.Like(r.Context(), postID, currentUserID(r)); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func UnlikePostHandler(store *forum.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := strconv.ParseInt(chi.URLParam(r, "postID"), 10, 64)
		if err != nil {
			http.Error(w, "bad post id", 400)
			return
		}
		if err := store.Unlike(r.Context(), postID, currentUserID(r)); err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
