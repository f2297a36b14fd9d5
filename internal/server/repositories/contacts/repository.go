// Package contacts persists contacts and implements the filtered,
// paginated search over a user's contact list.
package contacts

import (
	"context"

	"github.com/dmitrijs2005/contactbook/internal/server/models"
)

// SearchFilter is the conjunctive filter set of a contact search.
// Username is always required; the text filters apply only when
// non-empty. Offset/Limit describe the requested page.
type SearchFilter struct {
	Username string
	Name     string
	Email    string
	Phone    string
	Offset   int
	Limit    int
}

type Repository interface {
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	GetByIDAndOwner(ctx context.Context, id int64, username string) (*models.Contact, error)
	CountByIDAndOwner(ctx context.Context, id int64, username string) (int64, error)
	Update(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, filter *SearchFilter) ([]*models.Contact, error)
	CountSearch(ctx context.Context, filter *SearchFilter) (int64, error)
}
