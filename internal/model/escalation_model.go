package model

import (
	"time"

	"github.com/google/uuid"
)

type Escalation struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	SessionId uuid.UUID `gorm:"type:text;not null;index"`
	Reason    string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Escalation) TableName() string {
	return "escalations"
}
