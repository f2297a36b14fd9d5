package addresses

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

func (r *PostgresRepository) Create(ctx context.Context, address *models.Address) (*models.Address, error) {

	query :=
		`INSERT INTO addresses (contact_id, street, city, province, country, postal_code)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id
		 `

	err := r.db.QueryRowContext(ctx, query,
		address.ContactID, address.Street, address.City, address.Province,
		address.Country, address.PostalCode).Scan(&address.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return address, nil
}

func (r *PostgresRepository) GetByIDAndContact(ctx context.Context, id, contactID int64) (*models.Address, error) {
	query :=
		`SELECT id, contact_id, street, city, province, country, postal_code FROM addresses
		 WHERE id = $1 AND contact_id = $2
		 `

	address := &models.Address{}
	err := r.db.QueryRowContext(ctx, query, id, contactID).Scan(
		&address.ID, &address.ContactID, &address.Street, &address.City,
		&address.Province, &address.Country, &address.PostalCode)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return address, nil
}

func (r *PostgresRepository) CountByIDAndContact(ctx context.Context, id, contactID int64) (int64, error) {
	query :=
		`SELECT COUNT(*) FROM addresses
		 WHERE id = $1 AND contact_id = $2
		 `

	var count int64
	err := r.db.QueryRowContext(ctx, query, id, contactID).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}

func (r *PostgresRepository) Update(ctx context.Context, address *models.Address) error {
	query :=
		`UPDATE addresses SET street = $1, city = $2, province = $3, country = $4, postal_code = $5
		 WHERE id = $6 AND contact_id = $7
		 `

	res, err := r.db.ExecContext(ctx, query,
		address.Street, address.City, address.Province, address.Country,
		address.PostalCode, address.ID, address.ContactID)
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

func (r *PostgresRepository) DeleteByIDAndContact(ctx context.Context, id, contactID int64) error {
	query :=
		`DELETE FROM addresses
		 WHERE id = $1 AND contact_id = $2
		 `

	res, err := r.db.ExecContext(ctx, query, id, contactID)
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

func (r *PostgresRepository) ListByContact(ctx context.Context, contactID int64) ([]*models.Address, error) {
	query :=
		`SELECT id, contact_id, street, city, province, country, postal_code FROM addresses
		 WHERE contact_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, contactID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := make([]*models.Address, 0)
	for rows.Next() {
		address := &models.Address{}
		if err := rows.Scan(&address.ID, &address.ContactID, &address.Street,
			&address.City, &address.Province, &address.Country, &address.PostalCode); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, address)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
