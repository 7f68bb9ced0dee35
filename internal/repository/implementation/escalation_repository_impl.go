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

type EscalationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SupportMapper
}

func NewEscalationRepository(db *gorm.DB) contract.EscalationRepository {
	return &EscalationRepositoryImpl{
		db:     db,
		mapper: mapper.NewSupportMapper(),
	}
}

func (r *EscalationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *EscalationRepositoryImpl) Create(ctx context.Context, escalation *entity.Escalation) error {
	m := r.mapper.EscalationToModel(escalation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*escalation = *r.mapper.EscalationToEntity(m)
	return nil
}

func (r *EscalationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Escalation, error) {
	var models []*model.Escalation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Escalation, len(models))
	for i, m := range models {
		entities[i] = r.mapper.EscalationToEntity(m)
	}
	return entities, nil
}

func (r *EscalationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Escalation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
