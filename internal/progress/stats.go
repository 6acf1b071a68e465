package progress

import (
	"context"
	"encoding/json"
)

// UserStats is the gamification summary: experience, level and badges.
type UserStats struct {
	XP     int64    `json:"xp"`
	Level  int64    `json:"level"`
	Badges []string `json:"badges"`
}

// GetUserStats sums XP from challenge activity details and collects earned
// badges. Level is 1 plus one per hundred XP.
func (s *Store) GetUserStats(ctx context.Context, userID int64) (*UserStats, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT activity_type, activity_details
		 FROM activity_logs
		 WHERE user_id=$1
		   AND activity_type IN ('challenge_completed','daily_challenge_completed','badge_earned')
		 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stats := &UserStats{Level: 1}
	seenBadges := map[string]bool{}

	for rows.Next() {
		var activityType, details string
		if err := rows.Scan(&activityType, &details); err != nil {
			return nil, err
		}
		switch activityType {
		case "challenge_completed", "daily_challenge_completed":
			var d struct {
				XP int64 `json:"xp_earned"`
			}
			if json.Unmarshal([]byte(details), &d) == nil {
				stats.XP += d.XP
			}
		case "badge_earned":
			var d struct {
				Badge string `json:"badge_id"`
			}
			if json.Unmarshal([]byte(details), &d) == nil && d.Badge != "" && !seenBadges[d.Badge] {
				seenBadges[d.Badge] = true
				stats.Badges = append(stats.Badges, d.Badge)
			}
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	stats.Level = 1 + stats.XP/100
	return stats, nil
}
