package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/rhaddad/propman/internal/model"
	"github.com/rhaddad/propman/internal/store"
)

// Default administrator account created on first run.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// EnsureDefaultAdmin creates the default admin account when no users
// exist yet, so a fresh install has a way to log in.
func EnsureDefaultAdmin(ctx context.Context, s store.Store) error {
	count, err := s.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("checking for existing users: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing default admin password: %w", err)
	}

	email := "admin@property.local"
	_, err = s.CreateUser(ctx, model.User{
		Username:     defaultAdminUsername,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		FullName:     "System Administrator",
		Email:        &email,
	})
	if err != nil {
		return fmt.Errorf("creating default admin: %w", err)
	}
	return nil
}
