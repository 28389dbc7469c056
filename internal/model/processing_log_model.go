package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ProcessingLog struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentId     uuid.UUID      `gorm:"type:uuid;not null;index:idx_processing_logs_document_created,priority:1"`
	Level          string         `gorm:"type:varchar(10);not null;default:'info'"`
	Message        string         `gorm:"type:text;not null"`
	ProcessingStep string         `gorm:"type:varchar(50);index"`
	Details        datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time      `gorm:"autoCreateTime;index:idx_processing_logs_document_created,priority:2"`

	// Relationships
	Document Document `gorm:"foreignKey:DocumentId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (ProcessingLog) TableName() string {
	return "ai_processing_logs"
}
