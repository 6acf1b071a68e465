package challenges

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"time"
)

var ErrChallengeNotFound = errors.New("challenge not found")

// ActivitySink receives XP and badge events for the activity feed.
type ActivitySink interface {
	LogActivity(ctx context.Context, userID int64, activityType string, details any) error
}

type Store struct {
	db   *sql.DB
	sink ActivitySink
}

func NewStore(db *sql.DB, sink ActivitySink) *Store { return &Store{db: db, sink: sink} }

// Seed inserts the built-in catalog if the table is empty.
func (s *Store) Seed(ctx context.Context) error {
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM code_challenges`)
	var n int64
	if err := row.Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, c := range builtinChallenges {
		hints, _ := json.Marshal(c.Hints)
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO code_challenges
			   (title,story,description,difficulty,category,initial_code,solution_code,test_cases,hints,xp_reward,badge_id)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
			c.Title, c.Story, c.Description, string(c.Difficulty), c.Category,
			c.InitialCode, "", string(c.TestCases), string(hints), c.XPReward, c.BadgeID)
		if err != nil {
			return err
		}
	}
	return nil
}

// List returns the catalog. Difficulty filters when non-empty.
func (s *Store) List(ctx context.Context, difficulty Difficulty) ([]Challenge, error) {
	q := `SELECT id,title,story,description,difficulty,category,initial_code,test_cases,hints,xp_reward,badge_id
	      FROM code_challenges`
	var args []any
	if difficulty != "" {
		q += ` WHERE difficulty=$1`
		args = append(args, string(difficulty))
	}
	q += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Challenge
	for rows.Next() {
		c, err := scanChallenge(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// Get fetches one challenge.
func (s *Store) Get(ctx context.Context, id int64) (*Challenge, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,title,story,description,difficulty,category,initial_code,test_cases,hints,xp_reward,badge_id
		 FROM code_challenges WHERE id=$1`, id)
	c, err := scanChallenge(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrChallengeNotFound
	}
	return c, err
}

func scanChallenge(row interface{ Scan(...any) error }) (*Challenge, error) {
	var c Challenge
	var difficulty, testCases, hints string
	err := row.Scan(&c.ID, &c.Title, &c.Story, &c.Description, &difficulty,
		&c.Category, &c.InitialCode, &testCases, &hints, &c.XPReward, &c.BadgeID)
	if err != nil {
		return nil, err
	}
	c.Difficulty = Difficulty(difficulty)
	if testCases != "" {
		c.TestCases = json.RawMessage(testCases)
	}
	if hints != "" {
		_ = json.Unmarshal([]byte(hints), &c.Hints)
	}
	return &c, nil
}

// RecordAttempt bumps the attempt counter and stores the learner's latest
// code for the challenge.
func (s *Store) RecordAttempt(ctx context.Context, userID, challengeID int64, code string) error {
	if _, err := s.Get(ctx, challengeID); err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx,
		`UPDATE user_challenges SET attempts = attempts + 1, last_code=$1
		 WHERE user_id=$2 AND challenge_id=$3`,
		code, userID, challengeID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO user_challenges (user_id,challenge_id,completed,attempts,last_code)
		 VALUES ($1,$2,0,1,$3)`,
		userID, challengeID, code)
	return err
}

// Complete marks the challenge solved. The first completion awards XP and,
// when the challenge carries one, a badge; repeats change nothing.
func (s *Store) Complete(ctx context.Context, userID, challengeID int64) (xpEarned int64, err error) {
	c, err := s.Get(ctx, challengeID)
	if err != nil {
		return 0, err
	}

	now := time.Now().Unix()
	res, err := s.db.ExecContext(ctx,
		`UPDATE user_challenges SET completed=1, completed_at=$1
		 WHERE user_id=$2 AND challenge_id=$3 AND completed=0`,
		now, userID, challengeID)
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		// Either already completed or never attempted; insert handles the latter.
		var completed int
		row := s.db.QueryRowContext(ctx,
			`SELECT completed FROM user_challenges WHERE user_id=$1 AND challenge_id=$2`,
			userID, challengeID)
		switch scanErr := row.Scan(&completed); {
		case errors.Is(scanErr, sql.ErrNoRows):
			_, err = s.db.ExecContext(ctx,
				`INSERT INTO user_challenges (user_id,challenge_id,completed,attempts,completed_at)
				 VALUES ($1,$2,1,1,$3)`,
				userID, challengeID, now)
			if err != nil {
				return 0, err
			}
		case scanErr != nil:
			return 0, scanErr
		default:
			return 0, nil // already completed, no new XP
		}
	}

	if err := s.sink.LogActivity(ctx, userID, "challenge_completed", map[string]any{
		"challenge_id": challengeID,
		"title":        c.Title,
		"xp_earned":    c.XPReward,
	}); err != nil {
		log.Printf("challenges: activity log failed: %v", err)
	}
	if c.BadgeID != "" {
		if err := s.sink.LogActivity(ctx, userID, "badge_earned", map[string]any{
			"badge_id":     c.BadgeID,
			"challenge_id": challengeID,
		}); err != nil {
			log.Printf("challenges: badge log failed: %v", err)
		}
	}
	return c.XPReward, nil
}

// UserProgress lists the learner's state across attempted challenges.
func (s *Store) UserProgress(ctx context.Context, userID int64) ([]UserChallenge, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT challenge_id, completed, attempts, completed_at
		 FROM user_challenges WHERE user_id=$1 ORDER BY challenge_id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []UserChallenge
	for rows.Next() {
		var uc UserChallenge
		var completed int
		var completedAt sql.NullInt64
		if err := rows.Scan(&uc.ChallengeID, &completed, &uc.Attempts, &completedAt); err != nil {
			return nil, err
		}
		uc.Completed = completed != 0
		if completedAt.Valid {
			uc.CompletedAt = &completedAt.Int64
		}
		out = append(out, uc)
	}
	return out, rows.Err()
}
