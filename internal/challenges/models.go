// Package challenges serves the coding-challenge catalog and tracks each
// learner's completions, XP and badges.
package challenges

import "encoding/json"

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

type Challenge struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Story       string          `json:"story,omitempty"`
	Description string          `json:"description"`
	Difficulty  Difficulty      `json:"difficulty"`
	Category    string          `json:"category"`
	InitialCode string          `json:"initial_code,omitempty"`
	Hints       []string        `json:"hints,omitempty"`
	TestCases   json.RawMessage `json:"test_cases,omitempty"`
	XPReward    int64           `json:"xp_reward"`
	BadgeID     string          `json:"badge_id,omitempty"`
}

// UserChallenge is a learner's state on one challenge.
type UserChallenge struct {
	ChallengeID int64  `json:"challenge_id"`
	Completed   bool   `json:"completed"`
	Attempts    int64  `json:"attempts"`
	CompletedAt *int64 `json:"completed_at,omitempty"`
}
