package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/navanthiga/videdu/internal/quiz"
)

// LogQuizAttempt persists a completed quiz and feeds the activity log.
// It satisfies quiz.AttemptSink.
func (s *Store) LogQuizAttempt(ctx context.Context, rec quiz.AttemptRecord) error {
	userID, err := strconv.ParseInt(rec.UserID, 10, 64)
	if err != nil {
		return fmt.Errorf("attempt user id: %w", err)
	}

	data, err := json.Marshal(rec.Data)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO quiz_attempts (user_id,topic,score,max_score,question_data,created_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		userID, rec.Topic, rec.Score, rec.TotalQuestions, string(data), time.Now().Unix())
	if err != nil {
		return err
	}

	return s.LogActivity(ctx, userID, "quiz_completed", map[string]any{
		"topic":     rec.Topic,
		"score":     rec.Score,
		"max_score": rec.TotalQuestions,
	})
}

// AttemptSummary is one stored quiz attempt, without question data.
type AttemptSummary struct {
	ID        int64  `json:"id"`
	Topic     string `json:"topic"`
	Score     int    `json:"score"`
	MaxScore  int    `json:"max_score"`
	CreatedAt int64  `json:"created_at"`
}

// QuizAttempts lists a learner's attempts, newest first.
func (s *Store) QuizAttempts(ctx context.Context, userID int64) ([]AttemptSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, topic, score, max_score, created_at
		 FROM quiz_attempts WHERE user_id=$1 ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []AttemptSummary
	for rows.Next() {
		var a AttemptSummary
		if err := rows.Scan(&a.ID, &a.Topic, &a.Score, &a.MaxScore, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// AttemptData returns the stored per-question record of one attempt, owned
// by the given user.
func (s *Store) AttemptData(ctx context.Context, userID, attemptID int64) (*quiz.AttemptData, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT question_data FROM quiz_attempts WHERE id=$1 AND user_id=$2`,
		attemptID, userID)
	var raw string
	if err := row.Scan(&raw); err != nil {
		return nil, err
	}
	var data quiz.AttemptData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, err
	}
	return &data, nil
}
