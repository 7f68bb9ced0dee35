package unitofwork

import (
	"context"

	"ai-supportbot-be/internal/repository/contract"
)

// UnitOfWork groups repository access with an optional shared transaction.
// Escalation needs the transactional form: the audit row and the status flip
// must commit or roll back together.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	SessionRepository() contract.SessionRepository
	MessageRepository() contract.MessageRepository
	EscalationRepository() contract.EscalationRepository
	FeedbackRepository() contract.FeedbackRepository
	FaqRepository() contract.FaqRepository
}
