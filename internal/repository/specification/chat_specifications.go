package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySessionID scopes a query to one session's rows.
type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// ByStatus filters sessions by status.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// IDBelow restricts to rows with id strictly below the given value. The
// history loader uses this to exclude the turn currently being handled.
type IDBelow struct {
	ID int64
}

func (s IDBelow) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id < ?", s.ID)
}
