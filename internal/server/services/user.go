// Package services contains server-side business logic. This file
// implements UserService: registration, login with opaque session
// tokens, profile reads/updates, and logout.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/dmitrijs2005/contactbook/internal/common"
	"github.com/dmitrijs2005/contactbook/internal/server/config"
	"github.com/dmitrijs2005/contactbook/internal/server/models"
	"github.com/dmitrijs2005/contactbook/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/contactbook/internal/server/requests"
)

// UserService provides account operations:
// - Register: create users with a bcrypt-hashed password
// - Login: verify credentials and issue an opaque session token
// - GetCurrent/UpdateCurrent: profile read and partial update
// - Logout: clear the session token
// - GetByToken: resolve a bearer token for the auth gate
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	bcryptCost  int
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		bcryptCost:  cfg.BCryptCost,
	}
}

// Register creates a new account. A taken username yields
// ErrorAlreadyExists, whether caught by the pre-check or by the unique
// constraint when two registrations race. The password is stored only as
// a bcrypt hash and is never part of the response.
func (s *UserService) Register(ctx context.Context, req *requests.RegisterUser) (*requests.UserResponse, error) {
	if err := requests.Validate(req); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)

	count, err := repo.CountByUsername(ctx, req.Username)
	if err != nil {
		return nil, fmt.Errorf("error counting users: %w", err)
	}
	if count > 0 {
		return nil, common.ErrorAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return nil, common.ErrorInternal
	}

	user := &models.User{Username: req.Username, Password: string(hash), Name: req.Name}
	if err := repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return &requests.UserResponse{Username: user.Username, Name: user.Name}, nil
}

// Login verifies the credentials and, on success, stores and returns a
// fresh opaque token. An unknown username and a wrong password are
// indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, req *requests.LoginUser) (*requests.TokenResponse, error) {
	if err := requests.Validate(req); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorInvalidCredentials
		}
		return nil, common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, common.ErrorInvalidCredentials
	}

	token := uuid.NewString()
	if err := repo.UpdateToken(ctx, user.Username, &token); err != nil {
		return nil, common.ErrorInternal
	}

	return &requests.TokenResponse{Token: token}, nil
}

// GetCurrent returns the profile of the given user.
func (s *UserService) GetCurrent(ctx context.Context, username string) (*requests.UserResponse, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	return &requests.UserResponse{Username: user.Username, Name: user.Name}, nil
}

// UpdateCurrent applies the supplied profile fields; absent fields are
// left unchanged. A supplied password is re-hashed before persisting.
func (s *UserService) UpdateCurrent(ctx context.Context, username string, req *requests.UpdateUser) (*requests.UserResponse, error) {
	if err := requests.Validate(req); err != nil {
		return nil, err
	}

	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	patch := &models.UserPatch{Name: req.Name}
	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), s.bcryptCost)
		if err != nil {
			return nil, common.ErrorInternal
		}
		hashed := string(hash)
		patch.Password = &hashed
	}

	if err := repo.UpdateProfile(ctx, username, patch); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("error updating user: %w", err)
	}

	name := user.Name
	if req.Name != nil {
		name = *req.Name
	}

	return &requests.UserResponse{Username: user.Username, Name: name}, nil
}

// Logout clears the stored session token; the old token stops resolving
// in the auth gate immediately.
func (s *UserService) Logout(ctx context.Context, username string) error {
	repo := s.repomanager.Users(s.db)

	if err := repo.UpdateToken(ctx, username, nil); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		return fmt.Errorf("error clearing token: %w", err)
	}

	return nil
}

// GetByToken resolves an opaque bearer token to its user, for the auth
// gate. An unknown or cleared token yields ErrorUnauthorized.
func (s *UserService) GetByToken(ctx context.Context, token string) (*models.User, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, common.ErrorInternal
	}

	return user, nil
}
