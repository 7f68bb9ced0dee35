package model

import "time"

type Faq struct {
	Id        int64     `gorm:"primaryKey;autoIncrement"`
	Title     string    `gorm:"type:text;not null"`
	Content   string    `gorm:"type:text"`
	Tags      string    `gorm:"type:text"` // JSON-serialized tag list
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Faq) TableName() string {
	return "faqs"
}
