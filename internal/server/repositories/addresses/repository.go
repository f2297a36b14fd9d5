// Package addresses persists contact addresses. Every query is scoped by
// contact id; user-level ownership is enforced one layer up through the
// parent contact.
package addresses

import (
	"context"

	"github.com/dmitrijs2005/contactbook/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, address *models.Address) (*models.Address, error)
	GetByIDAndContact(ctx context.Context, id, contactID int64) (*models.Address, error)
	CountByIDAndContact(ctx context.Context, id, contactID int64) (int64, error)
	Update(ctx context.Context, address *models.Address) error
	DeleteByIDAndContact(ctx context.Context, id, contactID int64) error
	ListByContact(ctx context.Context, contactID int64) ([]*models.Address, error)
}
