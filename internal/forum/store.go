package forum

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"
)

var (
	ErrTopicNotFound = errors.New("topic not found")
	ErrNotTopicOwner = errors.New("only the topic creator can mark a solution")
)

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// CreateTopic opens a new discussion and returns its id.
func (s *Store) CreateTopic(ctx context.Context, userID int64, title, description, category string, tags []string) (int64, error) {
	if strings.TrimSpace(title) == "" {
		return 0, errors.New("title required")
	}
	if category == "" {
		category = "General"
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO forum_topics (title,description,category,tags,created_by,created_at)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		title, description, category, joinTags(tags), userID, time.Now().Unix())
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		row := s.db.QueryRowContext(ctx,
			`SELECT id FROM forum_topics WHERE created_by=$1 ORDER BY id DESC LIMIT 1`, userID)
		if scanErr := row.Scan(&id); scanErr != nil {
			return 0, scanErr
		}
	}
	return id, nil
}

const topicCols = `t.id, t.title, t.description, t.category, t.tags, t.created_by,
	       u.username, t.created_at,
	       (SELECT COUNT(*) FROM forum_posts p WHERE p.topic_id = t.id)`

func scanTopic(row interface{ Scan(...any) error }) (*Topic, error) {
	var t Topic
	var tags string
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Category, &tags,
		&t.CreatedBy, &t.Author, &t.CreatedAt, &t.PostCount)
	if err != nil {
		return nil, err
	}
	t.Tags = splitTags(tags)
	return &t, nil
}

// ListTopics returns topics, newest first. Category filters when non-empty.
func (s *Store) ListTopics(ctx context.Context, category string) ([]Topic, error) {
	q := `SELECT ` + topicCols + `
		 FROM forum_topics t JOIN users u ON u.id = t.created_by`
	var args []any
	if category != "" {
		q += ` WHERE t.category=$1`
		args = append(args, category)
	}
	q += ` ORDER BY t.created_at DESC, t.id DESC`

	return s.queryTopics(ctx, q, args...)
}

// PopularTopics ranks topics by post count.
func (s *Store) PopularTopics(ctx context.Context, limit int) ([]Topic, error) {
	if limit <= 0 {
		limit = 5
	}
	q := `SELECT ` + topicCols + `
		 FROM forum_topics t JOIN users u ON u.id = t.created_by
		 ORDER BY 9 DESC, t.created_at DESC LIMIT $1`
	return s.queryTopics(ctx, q, limit)
}

// UserTopics lists topics created by one user, newest first.
func (s *Store) UserTopics(ctx context.Context, userID int64) ([]Topic, error) {
	q := `SELECT ` + topicCols + `
		 FROM forum_topics t JOIN users u ON u.id = t.created_by
		 WHERE t.created_by=$1 ORDER BY t.created_at DESC, t.id DESC`
	return s.queryTopics(ctx, q, userID)
}

// Search matches topic titles and descriptions, case-insensitive.
func (s *Store) Search(ctx context.Context, term string) ([]Topic, error) {
	pat := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	q := `SELECT ` + topicCols + `
		 FROM forum_topics t JOIN users u ON u.id = t.created_by
		 WHERE LOWER(t.title) LIKE $1 OR LOWER(t.description) LIKE $1
		 ORDER BY t.created_at DESC, t.id DESC`
	return s.queryTopics(ctx, q, pat)
}

func (s *Store) queryTopics(ctx context.Context, q string, args ...any) ([]Topic, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Topic
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *t)
	}
	return out, rows.Err()
}

// GetTopic fetches one topic by id.
func (s *Store) GetTopic(ctx context.Context, id int64) (*Topic, error) {
	q := `SELECT ` + topicCols + `
		 FROM forum_topics t JOIN users u ON u.id = t.created_by WHERE t.id=$1`
	t, err := scanTopic(s.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrTopicNotFound
	}
	return t, err
}

// CreatePost adds a reply to a topic. parentID of 0 means a top-level post.
func (s *Store) CreatePost(ctx context.Context, topicID, userID int64, content string, parentID int64) (int64, error) {
	if strings.TrimSpace(content) == "" {
		return 0, errors.New("content required")
	}
	if _, err := s.GetTopic(ctx, topicID); err != nil {
		return 0, err
	}

	var parent any
	if parentID > 0 {
		parent = parentID
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO forum_posts (topic_id,content,created_by,created_at,parent_id,is_solution)
		 VALUES ($1,$2,$3,$4,$5,0)`,
		topicID, content, userID, time.Now().Unix(), parent)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		row := s.db.QueryRowContext(ctx,
			`SELECT id FROM forum_posts WHERE topic_id=$1 AND created_by=$2 ORDER BY id DESC LIMIT 1`,
			topicID, userID)
		if scanErr := row.Scan(&id); scanErr != nil {
			return 0, scanErr
		}
	}
	return id, nil
}

// PostsForTopic lists a topic's posts in creation order with like counts.
func (s *Store) PostsForTopic(ctx context.Context, topicID int64) ([]Post, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT p.id, p.topic_id, p.content, p.created_by, u.username,
		        p.created_at, p.parent_id, p.is_solution,
		        (SELECT COUNT(*) FROM forum_likes l WHERE l.post_id = p.id)
		 FROM forum_posts p JOIN users u ON u.id = p.created_by
		 WHERE p.topic_id=$1
		 ORDER BY p.created_at, p.id`, topicID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Post
	for rows.Next() {
		var p Post
		var parent sql.NullInt64
		var solution int
		if err := rows.Scan(&p.ID, &p.TopicID, &p.Content, &p.CreatedBy, &p.Author,
			&p.CreatedAt, &parent, &solution, &p.Likes); err != nil {
			return nil, err
		}
		p.ParentID = parent.Int64
		p.IsSolution = solution != 0
		out = append(out, p)
	}
	return out, rows.Err()
}

// MarkSolution flags one post as the topic's accepted answer. Only the
// topic creator may do this; any previous solution flag is cleared.
func (s *Store) MarkSolution(ctx context.Context, topicID, postID, userID int64) error {
	t, err := s.GetTopic(ctx, topicID)
	if err != nil {
		return err
	}
	if t.CreatedBy != userID {
		return ErrNotTopicOwner
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`UPDATE forum_posts SET is_solution=0 WHERE topic_id=$1`, topicID); err != nil {
		return err
	}
	res, err := tx.ExecContext(ctx,
		`UPDATE forum_posts SET is_solution=1 WHERE id=$1 AND topic_id=$2`, postID, topicID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.New("post not found in topic")
	}
	return tx.Commit()
}

// Like records a like; liking twice is a no-op.
func (s *Store) Like(ctx context.Context, postID, userID int64) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO forum_likes (post_id,user_id,created_at) VALUES ($1,$2,$3)`,
		postID, userID, time.Now().Unix())
	if err != nil && isDuplicate(err) {
		return nil
	}
	return err
}

// Unlike removes a like if present.
func (s *Store) Unlike(ctx context.Context, postID, userID int64) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM forum_likes WHERE post_id=$1 AND user_id=$2`, postID, userID)
	return err
}

// HasLiked reports whether the user already liked the post.
func (s *Store) HasLiked(ctx context.Context, postID, userID int64) (bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM forum_likes WHERE post_id=$1 AND user_id=$2`, postID, userID)
	var n int64
	if err := row.Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

func isDuplicate(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") ||
		strings.Contains(msg, "duplicate key")
}
