package contract

import (
	"context"

	"ai-supportbot-be/internal/entity"
	"ai-supportbot-be/internal/repository/specification"
)

type FaqRepository interface {
	Create(ctx context.Context, faq *entity.Faq) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Faq, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
