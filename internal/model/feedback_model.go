package model

import "time"

// Feedback deliberately carries no foreign keys: rows are accepted unchecked.
type Feedback struct {
	Id        int64  `gorm:"primaryKey;autoIncrement"`
	SessionId string `gorm:"type:text"`
	MessageId *int64
	Rating    int
	Comments  string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Feedback) TableName() string {
	return "feedback"
}
