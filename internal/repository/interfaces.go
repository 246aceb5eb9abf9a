package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vedran77/roomchat/internal/domain"
)

type UserRepository interface {
	// Create returns ErrAlreadyExists when the username is taken.
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdateAvatar(ctx context.Context, id uuid.UUID, avatar string) (*domain.User, error)
}

type MessageRepository interface {
	// Create fills msg.CreatedAt with the store-assigned timestamp.
	Create(ctx context.Context, msg *domain.Message) error
	// ListRecent returns at most limit messages of a room, newest first.
	ListRecent(ctx context.Context, room string, limit int) ([]domain.RoomMessage, error)
}
