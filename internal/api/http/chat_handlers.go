package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/navanthiga/videdu/internal/chat"
)

func AskHandler(assistant *chat.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Query string `json:"query"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", 400)
			return
		}
		answer, err := assistant.Ask(r.Context(), currentUserID(r), req.Query)
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}
		writeJSON(w, map[string]string{"response": answer})
	}
}

func ChatHistoryHandler(assistant *chat.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		history, err := assistant.History(r.Context(), currentUserID(r), limit)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, history)
	}
}

func SuggestTopicsHandler(assistant *chat.Assistant) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topics, err := assistant.SuggestTopics(r.Context(), currentUserID(r))
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		writeJSON(w, map[string]any{"topics": topics})
	}
}
