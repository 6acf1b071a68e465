package progress

import (
	"context"
	"encoding/json"
	"time"
)

// Activity is one row of a learner's activity feed.
type Activity struct {
	Type      string          `json:"activity_type"`
	Details   json.RawMessage `json:"details,omitempty"`
	CreatedAt int64           `json:"created_at"`
}

// LogActivity appends to the activity feed. Details may be nil.
func (s *Store) LogActivity(ctx context.Context, userID int64, activityType string, details any) error {
	var detailsJSON []byte
	if details != nil {
		b, err := json.Marshal(details)
		if err != nil {
			return err
		}
		detailsJSON = b
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO activity_logs (user_id,activity_type,activity_details,created_at)
		 VALUES ($1,$2,$3,$4)`,
		userID, activityType, string(detailsJSON), time.Now().Unix())
	return err
}

// RecentActivities returns the newest entries first, up to limit.
func (s *Store) RecentActivities(ctx context.Context, userID int64, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT activity_type, activity_details, created_at
		 FROM activity_logs WHERE user_id=$1
		 ORDER BY created_at DESC, id DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Activity
	for rows.Next() {
		var a Activity
		var details string
		if err := rows.Scan(&a.Type, &details, &a.CreatedAt); err != nil {
			return nil, err
		}
		if details != "" {
			a.Details = json.RawMessage(details)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
