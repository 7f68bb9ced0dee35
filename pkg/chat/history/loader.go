package history

import (
	"context"

	"ai-supportbot-be/internal/constant"
	"ai-supportbot-be/internal/repository/specification"
	"ai-supportbot-be/internal/repository/unitofwork"
	"ai-supportbot-be/pkg/llm"

	"github.com/google/uuid"
)

// DefaultMaxTurns bounds the context window handed to the model.
const DefaultMaxTurns = 8

// Loader assembles bounded recent conversation context for a session.
type Loader struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewLoader(uowFactory unitofwork.RepositoryFactory) *Loader {
	return &Loader{
		uowFactory: uowFactory,
	}
}

// LoadRecent returns up to maxTurns prior messages in chronological order.
// The store is queried newest-first with the limit, then reversed: the model
// consumes history oldest-first, so the reversal is part of the contract.
// Rows with id >= beforeID are excluded, which keeps the turn currently being
// handled out of its own history. Pass beforeID <= 0 to disable the cutoff.
func (l *Loader) LoadRecent(ctx context.Context, sessionId uuid.UUID, beforeID int64, maxTurns int) ([]llm.Message, error) {
	if maxTurns <= 0 {
		maxTurns = DefaultMaxTurns
	}

	uow := l.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.BySessionID{SessionID: sessionId},
		specification.OrderBy{Field: "id", Desc: true},
		specification.Limit{N: maxTurns},
	}
	if beforeID > 0 {
		specs = append(specs, specification.IDBelow{ID: beforeID})
	}

	rows, err := uow.MessageRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	messages := make([]llm.Message, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		role := constant.MessageRoleUser
		if row.Role == constant.MessageRoleAssistant {
			role = constant.MessageRoleAssistant
		}
		messages = append(messages, llm.Message{
			Role:    role,
			Content: row.Content,
		})
	}

	return messages, nil
}
