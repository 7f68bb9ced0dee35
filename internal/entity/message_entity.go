package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is one turn in a session. Ids are allocated by the store and are
// strictly increasing within a session; rows are immutable once written.
type Message struct {
	Id        int64
	SessionId uuid.UUID
	Role      string
	Content   string
	CreatedAt time.Time
}
