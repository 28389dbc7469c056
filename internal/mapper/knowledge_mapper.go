package mapper

import (
	"time"

	"hr-knowledge-be/internal/entity"
	"hr-knowledge-be/internal/model"

	"gorm.io/datatypes"
)

type KnowledgeMapper struct{}

func NewKnowledgeMapper() *KnowledgeMapper {
	return &KnowledgeMapper{}
}

func (m *KnowledgeMapper) ToEntity(e *model.KnowledgeEntry) *entity.KnowledgeEntry {
	if e == nil {
		return nil
	}

	var updatedAt *time.Time
	if !e.UpdatedAt.IsZero() {
		t := e.UpdatedAt
		updatedAt = &t
	}

	return &entity.KnowledgeEntry{
		Id:              e.Id,
		DocumentId:      e.DocumentId,
		Title:           e.Title,
		Content:         e.Content,
		EntryType:       e.EntryType,
		Keywords:        []string(e.Keywords),
		ConfidenceScore: e.ConfidenceScore,
		IsActive:        e.IsActive,
		ExtractionRun:   e.ExtractionRun,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *KnowledgeMapper) ToModel(e *entity.KnowledgeEntry) *model.KnowledgeEntry {
	if e == nil {
		return nil
	}

	var updatedAt time.Time
	if e.UpdatedAt != nil {
		updatedAt = *e.UpdatedAt
	}

	return &model.KnowledgeEntry{
		Id:              e.Id,
		DocumentId:      e.DocumentId,
		Title:           e.Title,
		Content:         e.Content,
		EntryType:       e.EntryType,
		Keywords:        datatypes.NewJSONSlice(e.Keywords),
		ConfidenceScore: e.ConfidenceScore,
		IsActive:        e.IsActive,
		ExtractionRun:   e.ExtractionRun,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *KnowledgeMapper) ToEntities(entries []*model.KnowledgeEntry) []*entity.KnowledgeEntry {
	entities := make([]*entity.KnowledgeEntry, len(entries))
	for i, e := range entries {
		entities[i] = m.ToEntity(e)
	}
	return entities
}

func (m *KnowledgeMapper) ToModels(entries []*entity.KnowledgeEntry) []*model.KnowledgeEntry {
	models := make([]*model.KnowledgeEntry, len(entries))
	for i, e := range entries {
		models[i] = m.ToModel(e)
	}
	return models
}
