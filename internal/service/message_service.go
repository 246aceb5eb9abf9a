package service

import (
	"context"
	"slices"

	"github.com/google/uuid"
	"github.com/vedran77/roomchat/internal/domain"
	"github.com/vedran77/roomchat/internal/repository"
	"github.com/vedran77/roomchat/pkg/validator"
)

// RecentWindow is the number of messages returned per room listing.
const RecentWindow = 50

type MessageService struct {
	messageRepo repository.MessageRepository
}

func NewMessageService(messageRepo repository.MessageRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo}
}

type PostMessageInput struct {
	Room string `json:"room"`
	Text string `json:"text"`
}

func (s *MessageService) Post(ctx context.Context, authorID uuid.UUID, input PostMessageInput) (*domain.Message, error) {
	if errs := validator.ValidateMessage(input.Text); errs.HasErrors() {
		return nil, errs
	}

	msg := &domain.Message{
		ID:       uuid.New(),
		Room:     roomOrDefault(input.Room),
		AuthorID: authorID,
		Text:     input.Text,
	}

	if err := s.messageRepo.Create(ctx, msg); err != nil {
		return nil, persistenceError("creating message", "could not post message", err)
	}

	return msg, nil
}

// List returns the most recent messages of a room, oldest first.
func (s *MessageService) List(ctx context.Context, room string) ([]domain.RoomMessage, error) {
	// Newest first from the store, so the limit keeps the latest window.
	messages, err := s.messageRepo.ListRecent(ctx, roomOrDefault(room), RecentWindow)
	if err != nil {
		return nil, persistenceError("listing messages", "could not load messages", err)
	}

	if messages == nil {
		messages = []domain.RoomMessage{}
	}
	slices.Reverse(messages)

	return messages, nil
}

func roomOrDefault(room string) string {
	if room == "" {
		return domain.DefaultRoom
	}
	return room
}
