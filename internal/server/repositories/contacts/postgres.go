package contacts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/contactbook/internal/common"
	"github.com/dmitrijs2005/contactbook/internal/dbx"
	"github.com/dmitrijs2005/contactbook/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {

	query :=
		`INSERT INTO contacts (username, first_name, last_name, email, phone)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		contact.Username, contact.FirstName, contact.LastName, contact.Email, contact.Phone).Scan(&contact.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return contact, nil
}

func (r *PostgresRepository) GetByIDAndOwner(ctx context.Context, id int64, username string) (*models.Contact, error) {
	query :=
		`SELECT id, username, first_name, last_name, email, phone FROM contacts
		 WHERE id = $1 AND username = $2
		 `

	contact := &models.Contact{}
	err := r.db.QueryRowContext(ctx, query, id, username).Scan(
		&contact.ID, &contact.Username, &contact.FirstName, &contact.LastName, &contact.Email, &contact.Phone)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return contact, nil
}

func (r *PostgresRepository) CountByIDAndOwner(ctx context.Context, id int64, username string) (int64, error) {
	query :=
		`SELECT COUNT(*) FROM contacts
		 WHERE id = $1 AND username = $2
		 `

	var count int64
	err := r.db.QueryRowContext(ctx, query, id, username).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}

func (r *PostgresRepository) Update(ctx context.Context, contact *models.Contact) error {
	query :=
		`UPDATE contacts SET first_name = $1, last_name = $2, email = $3, phone = $4
		 WHERE id = $5
		 `

	res, err := r.db.ExecContext(ctx, query,
		contact.FirstName, contact.LastName, contact.Email, contact.Phone, contact.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	query :=
		`DELETE FROM contacts
		 WHERE id = $1
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

// buildFilter renders the conjunctive WHERE clause of a search. Substring
// filters use ILIKE: matching is case-insensitive.
func buildFilter(filter *SearchFilter) (string, []any) {
	conds := []string{"username = $1"}
	args := []any{filter.Username}

	if filter.Name != "" {
		args = append(args, "%"+filter.Name+"%")
		conds = append(conds, fmt.Sprintf("(first_name ILIKE $%d OR last_name ILIKE $%d)", len(args), len(args)))
	}
	if filter.Email != "" {
		args = append(args, "%"+filter.Email+"%")
		conds = append(conds, fmt.Sprintf("email ILIKE $%d", len(args)))
	}
	if filter.Phone != "" {
		args = append(args, "%"+filter.Phone+"%")
		conds = append(conds, fmt.Sprintf("phone ILIKE $%d", len(args)))
	}

	return strings.Join(conds, " AND "), args
}

func (r *PostgresRepository) Search(ctx context.Context, filter *SearchFilter) ([]*models.Contact, error) {
	where, args := buildFilter(filter)

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(
		`SELECT id, username, first_name, last_name, email, phone FROM contacts
		 WHERE %s
		 ORDER BY id
		 LIMIT $%d OFFSET $%d`, where, len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Contact, 0)
	for rows.Next() {
		contact := &models.Contact{}
		if err := rows.Scan(&contact.ID, &contact.Username, &contact.FirstName,
			&contact.LastName, &contact.Email, &contact.Phone); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) CountSearch(ctx context.Context, filter *SearchFilter) (int64, error) {
	where, args := buildFilter(filter)

	query := fmt.Sprintf(`SELECT COUNT(*) FROM contacts WHERE %s`, where)

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}
