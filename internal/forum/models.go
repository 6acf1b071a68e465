// Package forum implements the discussion board: topics, threaded posts,
// likes and solution marking.
package forum

import "strings"

type Topic struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	CreatedBy   int64    `json:"created_by"`
	Author      string   `json:"author"`
	CreatedAt   int64    `json:"created_at"`
	PostCount   int64    `json:"post_count"`
}

type Post struct {
	ID         int64  `json:"id"`
	TopicID    int64  `json:"topic_id"`
	Content    string `json:"content"`
	CreatedBy  int64  `json:"created_by"`
	Author     string `json:"author"`
	CreatedAt  int64  `json:"created_at"`
	ParentID   int64  `json:"parent_id,omitempty"`
	IsSolution bool   `json:"is_solution"`
	Likes      int64  `json:"likes"`
}

func joinTags(tags []string) string {
	clean := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			clean = append(clean, t)
		}
	}
	return strings.Join(clean, ",")
}

func splitTags(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
