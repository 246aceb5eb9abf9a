package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/roomchat/internal/domain"
	"github.com/vedran77/roomchat/internal/repository"
)

type memUserRepo struct {
	mu     sync.Mutex
	byID   map[uuid.UUID]domain.User
	byName map[string]uuid.UUID
	err    error
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byID: map[uuid.UUID]domain.User{}, byName: map[string]uuid.UUID{}}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	if _, ok := r.byName[user.Username]; ok {
		return repository.ErrAlreadyExists
	}
	r.byID[user.ID] = *user
	r.byName[user.Username] = user.ID
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *memUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	id, ok := r.byName[username]
	err := r.err
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *memUserRepo) UpdateAvatar(_ context.Context, id uuid.UUID, avatar string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u.Avatar = avatar
	r.byID[id] = u
	return &u, nil
}

// memMessageRepo assigns strictly increasing timestamps in insertion order.
type memMessageRepo struct {
	mu    sync.Mutex
	users *memUserRepo
	clock time.Time
	rows  []domain.Message
	err   error
}

func newMemMessageRepo(users *memUserRepo) *memMessageRepo {
	return &memMessageRepo{users: users, clock: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (r *memMessageRepo) Create(_ context.Context, msg *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.clock = r.clock.Add(time.Second)
	msg.CreatedAt = r.clock
	r.rows = append(r.rows, *msg)
	return nil
}

func (r *memMessageRepo) ListRecent(ctx context.Context, room string, limit int) ([]domain.RoomMessage, error) {
	r.mu.Lock()
	if r.err != nil {
		r.mu.Unlock()
		return nil, r.err
	}
	var inRoom []domain.Message
	for _, m := range r.rows {
		if m.Room == room {
			inRoom = append(inRoom, m)
		}
	}
	r.mu.Unlock()

	sort.SliceStable(inRoom, func(i, j int) bool { return inRoom[i].CreatedAt.After(inRoom[j].CreatedAt) })
	if len(inRoom) > limit {
		inRoom = inRoom[:limit]
	}

	out := make([]domain.RoomMessage, 0, len(inRoom))
	for _, m := range inRoom {
		author, err := r.users.GetByID(ctx, m.AuthorID)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.RoomMessage{
			ID:        m.ID,
			Room:      m.Room,
			Text:      m.Text,
			CreatedAt: m.CreatedAt,
			Username:  author.Username,
			Avatar:    author.Avatar,
		})
	}
	return out, nil
}

func (r *memMessageRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rows)
}
