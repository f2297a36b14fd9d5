package users

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/contactbook/internal/common"
	"github.com/dmitrijs2005/contactbook/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

func strPtr(s string) *string { return &s }

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users\s*\(username,\s*password,\s*name\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*$`

	mock.ExpectExec(q).
		WithArgs("alice", "hash", "Alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.User{Username: "alice", Password: "hash", Name: "Alice"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users`

	mock.ExpectExec(q).
		WithArgs("alice", "hash", "Alice").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := repo.Create(context.Background(), &models.User{Username: "alice", Password: "hash", Name: "Alice"})
	if !errors.Is(err, common.ErrorAlreadyExists) {
		t.Fatalf("want common.ErrorAlreadyExists, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+users`

	mock.ExpectExec(q).
		WithArgs("alice", "hash", "Alice").
		WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), &models.User{Username: "alice", Password: "hash", Name: "Alice"})
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestCountByUsername_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+COUNT\(\*\)\s+FROM\s+users\s+WHERE\s+username\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows([]string{"count"}).AddRow(int64(1))
	mock.ExpectQuery(q).
		WithArgs("alice").
		WillReturnRows(rows)

	got, err := repo.CountByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("CountByUsername error: %v", err)
	}
	if got != 1 {
		t.Fatalf("unexpected count: %d", got)
	}
}

func TestCountByUsername_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+COUNT\(\*\)\s+FROM\s+users`

	mock.ExpectQuery(q).
		WithArgs("alice").
		WillReturnError(errors.New("db err"))

	_, err := repo.CountByUsername(context.Background(), "alice")
	if err == nil || !regexp.MustCompile(`db error: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByUsername_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+username,\s*password,\s*name,\s*token\s+FROM\s+users\s+WHERE\s+username\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows([]string{"username", "password", "name", "token"}).
		AddRow("alice", "hash", "Alice", nil)
	mock.ExpectQuery(q).
		WithArgs("alice").
		WillReturnRows(rows)

	got, err := repo.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("GetByUsername error: %v", err)
	}
	if got.Username != "alice" || got.Name != "Alice" || got.Token != nil {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByUsername_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+username,\s*password,\s*name,\s*token\s+FROM\s+users\s+WHERE\s+username\s*=\s*\$1\s*$`

	mock.ExpectQuery(q).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGetByToken_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+username,\s*password,\s*name,\s*token\s+FROM\s+users\s+WHERE\s+token\s*=\s*\$1\s*$`

	rows := sqlmock.NewRows([]string{"username", "password", "name", "token"}).
		AddRow("alice", "hash", "Alice", "tok-1")
	mock.ExpectQuery(q).
		WithArgs("tok-1").
		WillReturnRows(rows)

	got, err := repo.GetByToken(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("GetByToken error: %v", err)
	}
	if got.Username != "alice" || got.Token == nil || *got.Token != "tok-1" {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestGetByToken_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^SELECT\s+username,\s*password,\s*name,\s*token\s+FROM\s+users\s+WHERE\s+token\s*=\s*\$1\s*$`

	mock.ExpectQuery(q).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByToken(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestUpdateProfile_NameAndPassword(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+name\s*=\s*\$1,\s*password\s*=\s*\$2\s+WHERE\s+username\s*=\s*\$3\s*$`

	mock.ExpectExec(q).
		WithArgs("New Name", "newhash", "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	patch := &models.UserPatch{Name: strPtr("New Name"), Password: strPtr("newhash")}
	if err := repo.UpdateProfile(context.Background(), "alice", patch); err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
}

func TestUpdateProfile_NameOnly(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+name\s*=\s*\$1\s+WHERE\s+username\s*=\s*\$2\s*$`

	mock.ExpectExec(q).
		WithArgs("New Name", "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	patch := &models.UserPatch{Name: strPtr("New Name")}
	if err := repo.UpdateProfile(context.Background(), "alice", patch); err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
}

func TestUpdateProfile_EmptyPatch(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	if err := repo.UpdateProfile(context.Background(), "alice", &models.UserPatch{}); err != nil {
		t.Fatalf("UpdateProfile error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unexpected queries: %v", err)
	}
}

func TestUpdateProfile_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+name\s*=\s*\$1\s+WHERE\s+username\s*=\s*\$2\s*$`

	mock.ExpectExec(q).
		WithArgs("New Name", "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateProfile(context.Background(), "ghost", &models.UserPatch{Name: strPtr("New Name")})
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestUpdateToken_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+token\s*=\s*\$1\s+WHERE\s+username\s*=\s*\$2\s*$`

	mock.ExpectExec(q).
		WithArgs("tok-1", "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateToken(context.Background(), "alice", strPtr("tok-1")); err != nil {
		t.Fatalf("UpdateToken error: %v", err)
	}
}

func TestUpdateToken_Clear(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+token\s*=\s*\$1\s+WHERE\s+username\s*=\s*\$2\s*$`

	mock.ExpectExec(q).
		WithArgs(nil, "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateToken(context.Background(), "alice", nil); err != nil {
		t.Fatalf("UpdateToken error: %v", err)
	}
}

func TestUpdateToken_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^UPDATE\s+users\s+SET\s+token\s*=\s*\$1\s+WHERE\s+username\s*=\s*\$2\s*$`

	mock.ExpectExec(q).
		WithArgs("tok-1", "ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateToken(context.Background(), "ghost", strPtr("tok-1"))
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
