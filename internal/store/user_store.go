package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rhaddad/propman/internal/model"
)

// GetUserByUsername retrieves a user account by username. Returns
// (nil, nil) when no such user exists.
func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var u model.User
	err := s.db.GetContext(ctx, &u, "SELECT * FROM users WHERE username = ?", username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, persistErr(fmt.Sprintf("getting user %q", username), err)
	}
	return &u, nil
}

// GetUserByID retrieves a user account by id. Returns (nil, nil) when no
// such user exists.
func (s *SQLiteStore) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	var u model.User
	err := s.db.GetContext(ctx, &u, "SELECT * FROM users WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, persistErr(fmt.Sprintf("getting user %d", id), err)
	}
	return &u, nil
}

// CreateUser inserts a new user account and returns its assigned id.
func (s *SQLiteStore) CreateUser(ctx context.Context, u model.User) (int64, error) {
	if u.Role == "" {
		u.Role = model.RoleAdmin
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO users (username, password_hash, role, full_name, email, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		u.Username, u.PasswordHash, u.Role, u.FullName, u.Email, time.Now().UTC(),
	)
	if err != nil {
		return 0, persistErr(fmt.Sprintf("creating user %q", u.Username), err)
	}
	return result.LastInsertId()
}

// UpdateLastLogin stamps the user's last successful login time.
func (s *SQLiteStore) UpdateLastLogin(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE users SET last_login = ? WHERE id = ?", time.Now().UTC(), id,
	)
	if err != nil {
		return persistErr(fmt.Sprintf("updating last login for user %d", id), err)
	}
	return nil
}

// CountUsers counts all user accounts.
func (s *SQLiteStore) CountUsers(ctx context.Context) (int64, error) {
	var total int64
	err := s.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM users")
	if err != nil {
		return 0, persistErr("counting users", err)
	}
	return total, nil
}
