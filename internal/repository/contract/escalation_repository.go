package contract

import (
	"context"

	"ai-supportbot-be/internal/entity"
	"ai-supportbot-be/internal/repository/specification"
)

type EscalationRepository interface {
	Create(ctx context.Context, escalation *entity.Escalation) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Escalation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
