package http

import (
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/navanthiga/videdu/internal/storage"
)

// MountVideoAssets serves rendered tutorial videos.
func MountVideoAssets(r chi.Router, vs storage.VideoStore) {
	// GET /videos/{key} -> streams the asset
	r.Get("/{key}", func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "key")
		rc, err := vs.Get(key)
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer rc.Close()
		if strings.HasSuffix(key, ".mp4") {
			w.Header().Set("Content-Type", "video/mp4")
		} else {
			w.Header().Set("Content-Type", "application/octet-stream")
		}
		_, _ = io.Copy(w, rc)
	})

	// GET /videos/exists/{topic} -> availability check by topic
	r.Get("/exists/{topic}", func(w http.ResponseWriter, r *http.Request) {
		topic := chi.URLParam(r, "topic")
		writeJSON(w, map[string]any{
			"exists": vs.Exists(topic),
			"key":    vs.KeyFor(topic),
		})
	})
}
