package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/vedran77/roomchat/internal/domain"
	"github.com/vedran77/roomchat/internal/repository"
)

type UserRepo struct {
	q Querier
}

func NewUserRepo(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create relies on the users.username unique constraint; there is no
// lookup before the insert.
func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, username, password, avatar)
		VALUES ($1, $2, $3, $4)`

	_, err := r.q.Exec(ctx, query, user.ID, user.Username, user.PasswordHash, user.Avatar)
	if err != nil {
		return fmt.Errorf("insert user: %w", mapPgError(err))
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT id, username, password, COALESCE(avatar, '') FROM users WHERE id = $1", id)
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT id, username, password, COALESCE(avatar, '') FROM users WHERE username = $1", username)
}

func (r *UserRepo) UpdateAvatar(ctx context.Context, id uuid.UUID, avatar string) (*domain.User, error) {
	query := `
		UPDATE users SET avatar = $1 WHERE id = $2
		RETURNING id, username, password, COALESCE(avatar, '')`
	return r.scanUser(ctx, query, avatar, id)
}

func (r *UserRepo) scanUser(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var u domain.User
	err := r.q.QueryRow(ctx, query, args...).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Avatar)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select user: %w", err)
	}
	return &u, nil
}
