package progress

import "context"

// TopicScore aggregates a learner's quiz history for one topic.
type TopicScore struct {
	Topic       string  `json:"topic"`
	AvgScorePct float64 `json:"avg_score_pct"`
	Attempts    int64   `json:"attempts"`
	BestScore   int64   `json:"best_score"`
}

// UserProgress is the dashboard payload.
type UserProgress struct {
	Videos     []WatchedVideo `json:"videos"`
	QuizScores []TopicScore   `json:"quiz_scores"`
	RecentFeed []Activity     `json:"recent_activity"`
}

// GetUserProgress assembles watched videos, per-topic quiz aggregates and
// the ten most recent activities.
func (s *Store) GetUserProgress(ctx context.Context, userID int64) (*UserProgress, error) {
	videos, err := s.WatchedVideos(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT topic,
		        AVG(score * 100.0 / max_score),
		        COUNT(*),
		        MAX(score)
		 FROM quiz_attempts
		 WHERE user_id=$1 AND max_score > 0
		 GROUP BY topic
		 ORDER BY topic`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var scores []TopicScore
	for rows.Next() {
		var t TopicScore
		if err := rows.Scan(&t.Topic, &t.AvgScorePct, &t.Attempts, &t.BestScore); err != nil {
			return nil, err
		}
		scores = append(scores, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	feed, err := s.RecentActivities(ctx, userID, 10)
	if err != nil {
		return nil, err
	}

	return &UserProgress{Videos: videos, QuizScores: scores, RecentFeed: feed}, nil
}
