package contract

import (
	"context"

	"ai-supportbot-be/internal/entity"
	"ai-supportbot-be/internal/repository/specification"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
