// Package services contains server-side business logic. This file implements
// UserService, which handles signup, login, and identity resolution, issuing
// signed tokens on success.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/inkpost/internal/common"
	"github.com/dmitrijs2005/inkpost/internal/server/auth"
	"github.com/dmitrijs2005/inkpost/internal/server/config"
	"github.com/dmitrijs2005/inkpost/internal/server/models"
	"github.com/dmitrijs2005/inkpost/internal/server/repositories/users"
)

// UserService provides authentication-related operations:
// - Register: create users and mint their first token
// - Login: verify credentials and mint tokens
// - GetByID: resolve a token's user id to a stored identity
type UserService struct {
	repo      users.Repository
	jwtSecret []byte
}

// NewUserService constructs a UserService using the users repository and
// server config.
func NewUserService(repo users.Repository, cfg *config.Config) *UserService {
	return &UserService{
		repo:      repo,
		jwtSecret: []byte(cfg.SecretKey),
	}
}

// Register creates a new user and returns a token for the new identity.
// A duplicate email surfaces as common.ErrorConflict.
func (s *UserService) Register(ctx context.Context, name, email, password string) (string, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", common.ErrorInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	if _, err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorConflict) {
			return "", common.ErrorConflict
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return s.generateToken(user.ID)
}

// Login verifies the credentials and returns a token. Unknown email and wrong
// password are indistinguishable: both yield common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return "", common.ErrorUnauthorized
	}
	return s.generateToken(user.ID)
}

// GetByID resolves a user identifier to its stored record. A missing user is
// a common.ErrorNotFound, never a nil identity.
func (s *UserService) GetByID(ctx context.Context, id string) (*models.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) generateToken(userID string) (string, error) {
	token, err := auth.GenerateToken(userID, s.jwtSecret)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}
