package implementation

import (
	"context"
	"time"

	"hr-knowledge-be/internal/entity"
	"hr-knowledge-be/internal/mapper"
	"hr-knowledge-be/internal/model"
	"hr-knowledge-be/internal/repository/contract"
	"hr-knowledge-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ProcessingLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProcessingLogMapper
}

func NewProcessingLogRepository(db *gorm.DB) contract.ProcessingLogRepository {
	return &ProcessingLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewProcessingLogMapper(),
	}
}

func (r *ProcessingLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProcessingLogRepositoryImpl) Create(ctx context.Context, log *entity.ProcessingLog) error {
	m := r.mapper.ToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProcessingLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProcessingLog, error) {
	var models []*model.ProcessingLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ProcessingLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ProcessingLog{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ProcessingLogRepositoryImpl) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&model.ProcessingLog{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
