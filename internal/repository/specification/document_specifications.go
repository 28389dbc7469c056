package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByDocumentId filters child records by their parent document.
type ByDocumentId struct {
	DocumentId uuid.UUID
}

func (s ByDocumentId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("document_id = ?", s.DocumentId)
}

// ByStatus filters documents by lifecycle status.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByStatuses filters documents by a set of lifecycle statuses.
type ByStatuses struct {
	Statuses []string
}

func (s ByStatuses) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", s.Statuses)
}

// ActiveOnly keeps rows flagged is_active.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// UpdatedBefore keeps rows last touched before the cutoff.
type UpdatedBefore struct {
	Cutoff time.Time
}

func (s UpdatedBefore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("updated_at < ?", s.Cutoff)
}

// ByProcessingStep filters processing logs by step tag.
type ByProcessingStep struct {
	Step string
}

func (s ByProcessingStep) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("processing_step = ?", s.Step)
}
