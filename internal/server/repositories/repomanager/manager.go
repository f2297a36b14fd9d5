// Package repomanager vends repository implementations bound to a DBTX,
// so services can run any repository against either the pool or an open
// transaction, and exposes the schema migration hook.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/contactbook/internal/dbx"
	"github.com/dmitrijs2005/contactbook/internal/server/repositories/addresses"
	"github.com/dmitrijs2005/contactbook/internal/server/repositories/contacts"
	"github.com/dmitrijs2005/contactbook/internal/server/repositories/users"
)

type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Contacts(db dbx.DBTX) contacts.Repository
	Addresses(db dbx.DBTX) addresses.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
