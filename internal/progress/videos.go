package progress

import (
	"context"
	"time"
)

// WatchedVideo summarizes a learner's history for one topic.
type WatchedVideo struct {
	Topic       string  `json:"topic"`
	Completion  float64 `json:"completion_percentage"`
	LastWatched int64   `json:"last_watched"`
	WatchCount  int64   `json:"watch_count"`
}

// LogVideoWatched records a watch. Repeated watches of the same topic bump
// watch_count and keep the highest completion seen.
func (s *Store) LogVideoWatched(ctx context.Context, userID int64, topic string, completionPct float64) error {
	now := time.Now().Unix()
	res, err := s.db.ExecContext(ctx,
		`UPDATE videos_watched
		 SET watch_count = watch_count + 1,
		     last_watched = $1,
		     completion_percentage = CASE WHEN completion_percentage > $2 THEN completion_percentage ELSE $2 END
		 WHERE user_id=$3 AND topic=$4`,
		now, completionPct, userID, topic)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return s.LogActivity(ctx, userID, "video_watched", map[string]any{"topic": topic})
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO videos_watched (user_id,topic,completion_percentage,last_watched,watch_count)
		 VALUES ($1,$2,$3,$4,1)`,
		userID, topic, completionPct, now)
	if err != nil {
		return err
	}
	return s.LogActivity(ctx, userID, "video_watched", map[string]any{"topic": topic})
}

// WatchedVideos lists a learner's topics, most recently watched first.
func (s *Store) WatchedVideos(ctx context.Context, userID int64) ([]WatchedVideo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT topic, completion_percentage, last_watched, watch_count
		 FROM videos_watched WHERE user_id=$1 ORDER BY last_watched DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []WatchedVideo
	for rows.Next() {
		var v WatchedVideo
		if err := rows.Scan(&v.Topic, &v.Completion, &v.LastWatched, &v.WatchCount); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}
