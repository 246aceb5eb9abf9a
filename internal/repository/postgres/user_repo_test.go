package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vedran77/roomchat/internal/domain"
	"github.com/vedran77/roomchat/internal/repository"
)

func newUserRepoWithMock(t *testing.T) (*UserRepo, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewUserRepo(mock), mock
}

var userCols = []string{"id", "username", "password", "avatar"}

func TestUserRepo_Create(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)
	u := &domain.User{ID: uuid.New(), Username: "alice", PasswordHash: "$2a$10$hash", Avatar: ""}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users (id, username, password, avatar)")).
		WithArgs(u.ID, "alice", "$2a$10$hash", "").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), u))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create_UniqueViolation(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(pgxmock.AnyArg(), "alice", "h", "").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

	err := repo.Create(context.Background(), &domain.User{ID: uuid.New(), Username: "alice", PasswordHash: "h"})
	require.ErrorIs(t, err, repository.ErrAlreadyExists)
}

func TestUserRepo_Create_OtherError(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(pgxmock.AnyArg(), "bob", "h", "").
		WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), &domain.User{ID: uuid.New(), Username: "bob", PasswordHash: "h"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrAlreadyExists)
	assert.Contains(t, err.Error(), "db down")
}

func TestUserRepo_GetByUsername(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows(userCols).AddRow(id, "alice", "hash", "cat.png"))

	got, err := repo.GetByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.Equal(t, "cat.png", got.Avatar)
}

func TestUserRepo_GetByUsername_NotFound(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE username = $1")).
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepo_GetByID_DBError(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(id).
		WillReturnError(errors.New("conn reset"))

	_, err := repo.GetByID(context.Background(), id)
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepo_UpdateAvatar(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE users SET avatar = $1 WHERE id = $2")).
		WithArgs("x", id).
		WillReturnRows(pgxmock.NewRows(userCols).AddRow(id, "alice", "hash", "x"))

	got, err := repo.UpdateAvatar(context.Background(), id, "x")
	require.NoError(t, err)
	assert.Equal(t, "x", got.Avatar)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepo_Create_StoreErrorDetail(t *testing.T) {
	repo, mock := newUserRepoWithMock(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs(pgxmock.AnyArg(), "carol", "h", "").
		WillReturnError(&pgconn.PgError{Code: "23502", Message: "null value", Detail: "Failing row contains (...)"})

	err := repo.Create(context.Background(), &domain.User{ID: uuid.New(), Username: "carol", PasswordHash: "h"})
	var storeErr *repository.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.Equal(t, "Failing row contains (...)", storeErr.Detail)
}
