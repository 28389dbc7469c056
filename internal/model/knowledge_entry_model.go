package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type KnowledgeEntry struct {
	Id              uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DocumentId      uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Title           string                      `gorm:"type:varchar(255);not null"`
	Content         string                      `gorm:"type:text;not null"`
	EntryType       string                      `gorm:"type:varchar(20);not null;default:'general'"`
	Keywords        datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	ConfidenceScore float64                     `gorm:"default:0"`
	IsActive        bool                        `gorm:"default:true;index"`
	ExtractionRun   uuid.UUID                   `gorm:"type:uuid;not null;index"`
	CreatedAt       time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt       time.Time                   `gorm:"autoUpdateTime"`

	// Relationships
	Document Document `gorm:"foreignKey:DocumentId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (KnowledgeEntry) TableName() string {
	return "ai_knowledge_entries"
}
