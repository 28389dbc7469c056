package mapper

import (
	"time"

	"hr-knowledge-be/internal/entity"
	"hr-knowledge-be/internal/model"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

func (m *DocumentMapper) ToEntity(d *model.Document) *entity.Document {
	if d == nil {
		return nil
	}

	var updatedAt *time.Time
	if !d.UpdatedAt.IsZero() {
		t := d.UpdatedAt
		updatedAt = &t
	}

	return &entity.Document{
		Id:                    d.Id,
		Title:                 d.Title,
		Description:           d.Description,
		FileType:              d.FileType,
		FileSize:              d.FileSize,
		FileRef:               d.FileRef,
		CategoryId:            d.CategoryId,
		Status:                d.Status,
		ProcessingProgress:    d.ProcessingProgress,
		ProcessingStage:       d.ProcessingStage,
		ProcessingNotes:       d.ProcessingNotes,
		ExtractedText:         d.ExtractedText,
		ProcessingStartedAt:   d.ProcessingStartedAt,
		ProcessingCompletedAt: d.ProcessingCompletedAt,
		ApprovedAt:            d.ApprovedAt,
		ApprovedBy:            d.ApprovedBy,
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             updatedAt,
	}
}

func (m *DocumentMapper) ToModel(d *entity.Document) *model.Document {
	if d == nil {
		return nil
	}

	var updatedAt time.Time
	if d.UpdatedAt != nil {
		updatedAt = *d.UpdatedAt
	}

	return &model.Document{
		Id:                    d.Id,
		Title:                 d.Title,
		Description:           d.Description,
		FileType:              d.FileType,
		FileSize:              d.FileSize,
		FileRef:               d.FileRef,
		CategoryId:            d.CategoryId,
		Status:                d.Status,
		ProcessingProgress:    d.ProcessingProgress,
		ProcessingStage:       d.ProcessingStage,
		ProcessingNotes:       d.ProcessingNotes,
		ExtractedText:         d.ExtractedText,
		ProcessingStartedAt:   d.ProcessingStartedAt,
		ProcessingCompletedAt: d.ProcessingCompletedAt,
		ApprovedAt:            d.ApprovedAt,
		ApprovedBy:            d.ApprovedBy,
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             updatedAt,
	}
}

func (m *DocumentMapper) ToEntities(docs []*model.Document) []*entity.Document {
	entities := make([]*entity.Document, len(docs))
	for i, d := range docs {
		entities[i] = m.ToEntity(d)
	}
	return entities
}

func (m *DocumentMapper) CategoryToEntity(c *model.DocumentCategory) *entity.DocumentCategory {
	if c == nil {
		return nil
	}
	return &entity.DocumentCategory{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}

func (m *DocumentMapper) CategoryToModel(c *entity.DocumentCategory) *model.DocumentCategory {
	if c == nil {
		return nil
	}
	return &model.DocumentCategory{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
	}
}
