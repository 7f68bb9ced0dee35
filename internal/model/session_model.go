package model

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Id           uuid.UUID `gorm:"type:text;primaryKey"`
	Status       string    `gorm:"type:text;not null;index"`
	StartAt      time.Time `gorm:"not null"`
	LastActiveAt time.Time `gorm:"not null"`
}

func (Session) TableName() string {
	return "sessions"
}
