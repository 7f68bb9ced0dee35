package model

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	SessionId uuid.UUID `gorm:"type:text;not null;index"`
	Role      string    `gorm:"type:text;not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Message) TableName() string {
	return "messages"
}
