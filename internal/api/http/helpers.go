// Package http is the JSON API surface of the platform.
package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/navanthiga/videdu/internal/auth"
)

// currentUserID pulls the authenticated user's numeric id from the request
// context. Zero means unauthenticated.
func currentUserID(r *http.Request) int64 {
	sub := auth.SubjectFromContext(r.Context())
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0
	}
	return id
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
