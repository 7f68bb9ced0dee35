package entity

import (
	"time"

	"github.com/google/uuid"
)

// Escalation is an append-only audit record of a handoff request.
type Escalation struct {
	Id        int64
	SessionId uuid.UUID
	Reason    string
	CreatedAt time.Time
}
