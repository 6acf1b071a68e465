// Package progress owns learner records: accounts, activity history,
// watched videos, quiz attempts, and the aggregates the dashboard and
// peer matching read.
package progress

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserExists         = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

const bcryptCost = 12

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// Register creates a user with a bcrypt password hash and returns the new
// user id. Duplicate username or email maps to ErrUserExists.
func (s *Store) Register(ctx context.Context, username, email, password, fullName string) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO users (username,email,password_hash,full_name,created_at)
		 VALUES ($1,$2,$3,$4,$5)`,
		username, email, string(hash), fullName, time.Now().Unix())
	if err != nil {
		if isUniqueViolation(err) {
			return 0, ErrUserExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		// pgx has no LastInsertId; fall back to a lookup.
		row := s.db.QueryRowContext(ctx, `SELECT id FROM users WHERE username=$1`, username)
		if scanErr := row.Scan(&id); scanErr != nil {
			return 0, scanErr
		}
	}
	return id, nil
}

// Authenticate checks the credentials, updates last_login and logs the
// login activity on success.
func (s *Store) Authenticate(ctx context.Context, username, password string) (*User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,username,email,full_name,password_hash FROM users WHERE username=$1`, username)

	var u User
	var hash string
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.FullName, &hash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	if _, err := s.db.ExecContext(ctx,
		`UPDATE users SET last_login=$1 WHERE id=$2`, time.Now().Unix(), u.ID); err != nil {
		return nil, err
	}
	_ = s.LogActivity(ctx, u.ID, "login", nil)
	return &u, nil
}

// GetUser fetches a user by id.
func (s *Store) GetUser(ctx context.Context, id int64) (*User, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id,username,email,full_name FROM users WHERE id=$1`, id)
	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.FullName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}
	return &u, nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") || // sqlite
		strings.Contains(msg, "duplicate key") // postgres
}
