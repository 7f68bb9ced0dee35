package contract

import (
	"context"

	"ai-supportbot-be/internal/entity"
	"ai-supportbot-be/internal/repository/specification"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	Update(ctx context.Context, session *entity.Session) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Session, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
