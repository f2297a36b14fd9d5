// Package users persists user accounts: registration rows, credential
// lookups for login, session token resolution for the auth gate, and
// whitelisted profile updates.
package users

import (
	"context"

	"github.com/dmitrijs2005/contactbook/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, user *models.User) error
	CountByUsername(ctx context.Context, username string) (int64, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetByToken(ctx context.Context, token string) (*models.User, error)
	UpdateProfile(ctx context.Context, username string, patch *models.UserPatch) error
	UpdateToken(ctx context.Context, username string, token *string) error
}
