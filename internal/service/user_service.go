package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/vedran77/roomchat/internal/domain"
	"github.com/vedran77/roomchat/internal/repository"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

type UpdateProfileInput struct {
	Avatar string `json:"avatar"`
}

// Get reads the profile from the store rather than from token claims so the
// latest avatar is returned.
func (s *UserService) Get(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, persistenceError("getting user", "could not load profile", err)
	}

	p := user.Profile()
	return &p, nil
}

// Update overwrites the avatar. The value is stored as given.
func (s *UserService) Update(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.Profile, error) {
	user, err := s.userRepo.UpdateAvatar(ctx, userID, input.Avatar)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, persistenceError("updating avatar", "could not update profile", err)
	}

	p := user.Profile()
	return &p, nil
}
