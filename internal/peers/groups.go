package peers

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrGroupNotFound = errors.New("study group not found")

// StudyGroup is a small learner circle around one topic.
type StudyGroup struct {
	GroupID     string `json:"group_id"`
	CreatorID   int64  `json:"creator_id"`
	Topic       string `json:"topic"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"created_at"`
	Members     int64  `json:"members"`
}

// CreateGroup starts a study group; the creator joins automatically.
func (s *Service) CreateGroup(ctx context.Context, creatorID int64, topic, description string) (*StudyGroup, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, errors.New("topic required")
	}
	g := &StudyGroup{
		GroupID:     uuid.NewString()[:8],
		CreatorID:   creatorID,
		Topic:       topic,
		Description: description,
		CreatedAt:   time.Now().Unix(),
		Members:     1,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO study_groups (group_id,creator_id,topic,description,created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		g.GroupID, g.CreatorID, g.Topic, g.Description, g.CreatedAt); err != nil {
		return nil, err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO study_group_members (group_id,user_id,joined_at)
		 VALUES ($1,$2,$3)`,
		g.GroupID, g.CreatorID, g.CreatedAt); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return g, nil
}

// JoinGroup adds a user; joining twice is a no-op.
func (s *Service) JoinGroup(ctx context.Context, groupID string, userID int64) error {
	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM study_groups WHERE group_id=$1`, groupID)
	var n int64
	if err := row.Scan(&n); err != nil {
		return err
	}
	if n == 0 {
		return ErrGroupNotFound
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO study_group_members (group_id,user_id,joined_at) VALUES ($1,$2,$3)`,
		groupID, userID, time.Now().Unix())
	if err != nil {
		msg := strings.ToLower(err.Error())
		if strings.Contains(msg, "unique constraint failed") ||
			strings.Contains(msg, "duplicate key") ||
			strings.Contains(msg, "primary key") {
			return nil
		}
	}
	return err
}

// ListGroups returns groups with member counts, newest first.
func (s *Service) ListGroups(ctx context.Context) ([]StudyGroup, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT g.group_id, g.creator_id, g.topic, g.description, g.created_at,
		        (SELECT COUNT(*) FROM study_group_members m WHERE m.group_id = g.group_id)
		 FROM study_groups g
		 ORDER BY g.created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []StudyGroup
	for rows.Next() {
		var g StudyGroup
		if err := rows.Scan(&g.GroupID, &g.CreatorID, &g.Topic, &g.Description,
			&g.CreatedAt, &g.Members); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// GroupMembers lists usernames of a group's members, earliest joiner first.
func (s *Service) GroupMembers(ctx context.Context, groupID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT u.username
		 FROM study_group_members m JOIN users u ON u.id = m.user_id
		 WHERE m.group_id=$1 ORDER BY m.joined_at, m.user_id`, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}
