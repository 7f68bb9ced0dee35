package entity

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Id           uuid.UUID
	Status       string
	StartAt      time.Time
	LastActiveAt time.Time
}
