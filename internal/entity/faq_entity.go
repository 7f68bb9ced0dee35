package entity

import "time"

type Faq struct {
	Id        int64
	Title     string
	Content   string
	Tags      []string
	CreatedAt time.Time
}
