package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultRoom is used when a request names no room.
const DefaultRoom = "global"

type Message struct {
	ID        uuid.UUID `json:"id"`
	Room      string    `json:"room"`
	AuthorID  uuid.UUID `json:"authorId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// RoomMessage is a message joined with its author for display.
type RoomMessage struct {
	ID        uuid.UUID `json:"id"`
	Room      string    `json:"room"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
	Username  string    `json:"username"`
	Avatar    string    `json:"avatar"`
}
