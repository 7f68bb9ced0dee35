package implementation

import (
	"context"

	"ai-supportbot-be/internal/entity"
	"ai-supportbot-be/internal/mapper"
	"ai-supportbot-be/internal/model"
	"ai-supportbot-be/internal/repository/contract"
	"ai-supportbot-be/internal/repository/specification"

	"gorm.io/gorm"
)

type FeedbackRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SupportMapper
}

func NewFeedbackRepository(db *gorm.DB) contract.FeedbackRepository {
	return &FeedbackRepositoryImpl{
		db:     db,
		mapper: mapper.NewSupportMapper(),
	}
}

func (r *FeedbackRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FeedbackRepositoryImpl) Create(ctx context.Context, feedback *entity.Feedback) error {
	m := r.mapper.FeedbackToModel(feedback)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*feedback = *r.mapper.FeedbackToEntity(m)
	return nil
}

func (r *FeedbackRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Feedback{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
