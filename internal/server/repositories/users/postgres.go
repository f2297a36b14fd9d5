package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/contactbook/internal/common"
	"github.com/dmitrijs2005/contactbook/internal/dbx"
	"github.com/dmitrijs2005/contactbook/internal/server/models"
)

const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) error {

	query :=
		`INSERT INTO users (username, password, name)
		 VALUES ($1, $2, $3)
		 `

	_, err := r.db.ExecContext(ctx, query, user.Username, user.Password, user.Name)

	if err != nil {
		// a registration race loses to the unique constraint
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return common.ErrorAlreadyExists
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) CountByUsername(ctx context.Context, username string) (int64, error) {
	query :=
		`SELECT COUNT(*) FROM users
		 WHERE username = $1
		 `

	var count int64
	err := r.db.QueryRowContext(ctx, query, username).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}

func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	query :=
		`SELECT username, password, name, token FROM users
		 WHERE username = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(&user.Username, &user.Password, &user.Name, &user.Token)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) GetByToken(ctx context.Context, token string) (*models.User, error) {
	query :=
		`SELECT username, password, name, token FROM users
		 WHERE token = $1
		 `

	user := &models.User{}
	err := r.db.QueryRowContext(ctx, query, token).Scan(&user.Username, &user.Password, &user.Name, &user.Token)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, username string, patch *models.UserPatch) error {

	sets := make([]string, 0, 2)
	args := make([]any, 0, 3)

	if patch.Name != nil {
		args = append(args, *patch.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.Password != nil {
		args = append(args, *patch.Password)
		sets = append(sets, fmt.Sprintf("password = $%d", len(args)))
	}

	if len(sets) == 0 {
		return nil
	}

	args = append(args, username)
	query := fmt.Sprintf("UPDATE users SET %s WHERE username = $%d", strings.Join(sets, ", "), len(args))

	res, err := r.db.ExecContext(ctx, query, args...)
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

func (r *PostgresRepository) UpdateToken(ctx context.Context, username string, token *string) error {
	query :=
		`UPDATE users SET token = $1
		 WHERE username = $2
		 `

	res, err := r.db.ExecContext(ctx, query, token, username)
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
