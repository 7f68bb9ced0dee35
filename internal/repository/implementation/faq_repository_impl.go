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

type FaqRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SupportMapper
}

func NewFaqRepository(db *gorm.DB) contract.FaqRepository {
	return &FaqRepositoryImpl{
		db:     db,
		mapper: mapper.NewSupportMapper(),
	}
}

func (r *FaqRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *FaqRepositoryImpl) Create(ctx context.Context, faq *entity.Faq) error {
	m := r.mapper.FaqToModel(faq)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*faq = *r.mapper.FaqToEntity(m)
	return nil
}

func (r *FaqRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Faq, error) {
	var models []*model.Faq
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Faq, len(models))
	for i, m := range models {
		entities[i] = r.mapper.FaqToEntity(m)
	}
	return entities, nil
}

func (r *FaqRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Faq{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
