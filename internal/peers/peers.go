package peers

import (
	"context"
	"database/sql"
	"sort"
)

// LearnerMetrics are the clustering features for one user.
type LearnerMetrics struct {
	UserID      int64   `json:"user_id"`
	Username    string  `json:"username"`
	VideosCount float64 `json:"videos_watched"`
	AvgScorePct float64 `json:"avg_quiz_score"`
	QuizCount   float64 `json:"quizzes_taken"`
	ActivityN   float64 `json:"activity_count"`
}

// Peer is a suggested study partner.
type Peer struct {
	UserID    int64    `json:"user_id"`
	Username  string   `json:"username"`
	Strengths []string `json:"strengths"`
}

type Service struct {
	db *sql.DB
}

func NewService(db *sql.DB) *Service { return &Service{db: db} }

// loadMetrics pulls the per-user feature rows for every registered user.
func (s *Service) loadMetrics(ctx context.Context) ([]LearnerMetrics, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT u.id, u.username,
		        (SELECT COUNT(*) FROM videos_watched v WHERE v.user_id = u.id),
		        COALESCE((SELECT AVG(q.score * 100.0 / q.max_score)
		                  FROM quiz_attempts q WHERE q.user_id = u.id AND q.max_score > 0), 0),
		        (SELECT COUNT(*) FROM quiz_attempts q WHERE q.user_id = u.id),
		        (SELECT COUNT(*) FROM activity_logs a WHERE a.user_id = u.id)
		 FROM users u
		 ORDER BY u.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LearnerMetrics
	for rows.Next() {
		var m LearnerMetrics
		if err := rows.Scan(&m.UserID, &m.Username, &m.VideosCount,
			&m.AvgScorePct, &m.QuizCount, &m.ActivityN); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// MatchPeers suggests up to three partners from the requesting user's
// behavior cluster. When the cluster has no one else, the most active
// other learners fill in.
func (s *Service) MatchPeers(ctx context.Context, userID int64) ([]Peer, error) {
	metrics, err := s.loadMetrics(ctx)
	if err != nil {
		return nil, err
	}
	if len(metrics) < 2 {
		return nil, nil
	}

	features := make([][]float64, len(metrics))
	selfIdx := -1
	for i, m := range metrics {
		features[i] = []float64{m.VideosCount, m.AvgScorePct, m.QuizCount, m.ActivityN}
		if m.UserID == userID {
			selfIdx = i
		}
	}
	if selfIdx < 0 {
		return nil, nil
	}

	assign := kmeans(features)
	self := assign[selfIdx]

	var peers []Peer
	for i, m := range metrics {
		if i == selfIdx || assign[i] != self {
			continue
		}
		peers = append(peers, Peer{UserID: m.UserID, Username: m.Username, Strengths: strengths(m)})
	}

	if len(peers) == 0 {
		// Cluster of one; offer the most active learners instead.
		others := make([]LearnerMetrics, 0, len(metrics)-1)
		for i, m := range metrics {
			if i != selfIdx {
				others = append(others, m)
			}
		}
		sort.Slice(others, func(a, b int) bool {
			return others[a].ActivityN > others[b].ActivityN
		})
		for _, m := range others {
			peers = append(peers, Peer{UserID: m.UserID, Username: m.Username, Strengths: strengths(m)})
		}
	}

	if len(peers) > 3 {
		peers = peers[:3]
	}
	return peers, nil
}

// strengths labels what a learner is notably good at.
func strengths(m LearnerMetrics) []string {
	var out []string
	if m.AvgScorePct >= 75 {
		out = append(out, "quiz performance")
	}
	if m.VideosCount >= 5 {
		out = append(out, "consistent study habits")
	}
	if m.ActivityN >= 20 {
		out = append(out, "high engagement")
	}
	if len(out) == 0 {
		out = append(out, "getting started")
	}
	return out
}
