package mapper

import (
	"encoding/json"

	"hr-knowledge-be/internal/entity"
	"hr-knowledge-be/internal/model"

	"gorm.io/datatypes"
)

type ProcessingLogMapper struct{}

func NewProcessingLogMapper() *ProcessingLogMapper {
	return &ProcessingLogMapper{}
}

func (m *ProcessingLogMapper) ToEntity(l *model.ProcessingLog) *entity.ProcessingLog {
	if l == nil {
		return nil
	}

	details := map[string]interface{}{}
	if len(l.Details) > 0 {
		_ = json.Unmarshal(l.Details, &details)
	}

	return &entity.ProcessingLog{
		Id:             l.Id,
		DocumentId:     l.DocumentId,
		Level:          l.Level,
		Message:        l.Message,
		ProcessingStep: l.ProcessingStep,
		Details:        details,
		CreatedAt:      l.CreatedAt,
	}
}

func (m *ProcessingLogMapper) ToModel(l *entity.ProcessingLog) *model.ProcessingLog {
	if l == nil {
		return nil
	}

	var details datatypes.JSON
	if len(l.Details) > 0 {
		if raw, err := json.Marshal(l.Details); err == nil {
			details = raw
		}
	}

	return &model.ProcessingLog{
		Id:             l.Id,
		DocumentId:     l.DocumentId,
		Level:          l.Level,
		Message:        l.Message,
		ProcessingStep: l.ProcessingStep,
		Details:        details,
		CreatedAt:      l.CreatedAt,
	}
}

func (m *ProcessingLogMapper) ToEntities(logs []*model.ProcessingLog) []*entity.ProcessingLog {
	entities := make([]*entity.ProcessingLog, len(logs))
	for i, l := range logs {
		entities[i] = m.ToEntity(l)
	}
	return entities
}
