// Package storage keeps tutorial video assets on disk, keyed by topic.
package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// VideoStore reads and writes rendered tutorial videos.
type VideoStore interface {
	Put(topic string, r io.Reader) (string, error) // returns the asset key
	Get(key string) (io.ReadCloser, error)
	Exists(topic string) bool
	KeyFor(topic string) string
}

type FSStore struct{ base string }

func NewFSStore(base string) (*FSStore, error) {
	if base == "" {
		base = "./data/videos"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{base: base}, nil
}

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// KeyFor maps a topic to its asset key: lowercased, non-alphanumerics
// collapsed to underscores, .mp4 suffix.
func (s *FSStore) KeyFor(topic string) string {
	slug := slugRe.ReplaceAllString(strings.ToLower(strings.TrimSpace(topic)), "_")
	slug = strings.Trim(slug, "_")
	if slug == "" {
		slug = "untitled"
	}
	return slug + ".mp4"
}

func (s *FSStore) Put(topic string, r io.Reader) (string, error) {
	key := s.KeyFor(topic)
	dst := filepath.Join(s.base, key)
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return key, nil
}

func (s *FSStore) Get(key string) (io.ReadCloser, error) {
	clean := filepath.Base(filepath.Clean(key))
	if clean != key {
		return nil, errors.New("invalid asset key")
	}
	return os.Open(filepath.Join(s.base, clean))
}

func (s *FSStore) Exists(topic string) bool {
	_, err := os.Stat(filepath.Join(s.base, s.KeyFor(topic)))
	return err == nil
}

// BasePath exposes the root directory for static file serving.
func (s *FSStore) BasePath() string { return s.base }
