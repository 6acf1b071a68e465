// Package chat is the learning assistant: answers come from the language
// model, shaped by what the learner has studied, with canned fallbacks
// when the model is unreachable.
package chat

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/navanthiga/videdu/internal/llm"
	"github.com/navanthiga/videdu/internal/progress"
)

// ProgressSource supplies the learner context woven into prompts.
type ProgressSource interface {
	GetUserProgress(ctx context.Context, userID int64) (*progress.UserProgress, error)
}

type Assistant struct {
	provider llm.Provider
	db       *sql.DB
	progress ProgressSource
}

func NewAssistant(provider llm.Provider, db *sql.DB, src ProgressSource) *Assistant {
	return &Assistant{provider: provider, db: db, progress: src}
}

const systemPrompt = `You are a friendly Python tutor inside a learning platform.
Keep answers short, concrete and encouraging. Prefer small code examples.
When the learner struggles with a topic listed in their context, suggest revisiting it.`

// Interaction is one stored question/answer pair.
type Interaction struct {
	Query     string `json:"query"`
	Response  string `json:"response"`
	CreatedAt int64  `json:"created_at"`
}

// Ask answers the learner's question and records the exchange. Provider
// failures degrade to a canned response rather than an error.
func (a *Assistant) Ask(ctx context.Context, userID int64, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("empty query")
	}

	answer := a.generate(ctx, userID, query)

	_, err := a.db.ExecContext(ctx,
		`INSERT INTO chatbot_interactions (user_id,query,response,created_at)
		 VALUES ($1,$2,$3,$4)`,
		userID, query, answer, time.Now().Unix())
	if err != nil {
		log.Printf("chat: persist interaction: %v", err)
	}
	return answer, nil
}

func (a *Assistant) generate(ctx context.Context, userID int64, query string) string {
	prompt := query
	if lc := a.learningContext(ctx, userID); lc != "" {
		prompt = lc + "\n\nQuestion: " + query
	}

	resp, err := a.provider.Generate(ctx, llm.Request{
		System:    systemPrompt,
		Prompt:    prompt,
		MaxTokens: 1024,
	})
	if err != nil {
		log.Printf("chat: model unavailable, using fallback: %v", err)
		return fallbackResponse(query)
	}
	return resp.Text
}

// learningContext summarizes what the learner watched and where quiz
// scores are weak, for the prompt.
func (a *Assistant) learningContext(ctx context.Context, userID int64) string {
	p, err := a.progress.GetUserProgress(ctx, userID)
	if err != nil || p == nil {
		return ""
	}

	var b strings.Builder
	if len(p.Videos) > 0 {
		topics := make([]string, 0, len(p.Videos))
		for _, v := range p.Videos {
			topics = append(topics, v.Topic)
		}
		fmt.Fprintf(&b, "Learner has watched lessons on: %s.", strings.Join(topics, ", "))
	}
	var weak []string
	for _, sc := range p.QuizScores {
		if sc.AvgScorePct < 50 {
			weak = append(weak, sc.Topic)
		}
	}
	if len(weak) > 0 {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "Quiz scores are weak on: %s.", strings.Join(weak, ", "))
	}
	return b.String()
}

// History returns the learner's latest exchanges, newest first.
func (a *Assistant) History(ctx context.Context, userID int64, limit int) ([]Interaction, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := a.db.QueryContext(ctx,
		`SELECT query, response, created_at
		 FROM chatbot_interactions WHERE user_id=$1
		 ORDER BY created_at DESC, id DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Interaction
	for rows.Next() {
		var it Interaction
		if err := rows.Scan(&it.Query, &it.Response, &it.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// SuggestTopics proposes what to study next: weak quiz topics first.
func (a *Assistant) SuggestTopics(ctx context.Context, userID int64) ([]string, error) {
	p, err := a.progress.GetUserProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, sc := range p.QuizScores {
		if sc.AvgScorePct < 50 {
			out = append(out, sc.Topic)
		}
	}
	if len(out) == 0 {
		for _, v := range p.Videos {
			if v.Completion < 100 {
				out = append(out, v.Topic)
			}
		}
	}
	return out, nil
}
