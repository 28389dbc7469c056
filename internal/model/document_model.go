package model

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	Id                    uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title                 string     `gorm:"type:varchar(255);not null"`
	Description           string     `gorm:"type:text"`
	FileType              string     `gorm:"type:varchar(20)"`
	FileSize              int64      `gorm:"default:0"`
	FileRef               string     `gorm:"type:varchar(512)"`
	CategoryId            *uuid.UUID `gorm:"type:uuid;index"`
	Status                string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	ProcessingProgress    int        `gorm:"default:0"`
	ProcessingStage       string     `gorm:"type:varchar(100)"`
	ProcessingNotes       string     `gorm:"type:text"`
	ExtractedText         string     `gorm:"type:text"`
	ProcessingStartedAt   *time.Time
	ProcessingCompletedAt *time.Time
	ApprovedAt            *time.Time
	ApprovedBy            *uuid.UUID `gorm:"type:uuid"`
	CreatedAt             time.Time  `gorm:"autoCreateTime"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime;index"`
}

func (Document) TableName() string {
	return "ai_documents"
}

type DocumentCategory struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);unique;not null"`
	Description string    `gorm:"type:text"`
	IsActive    bool      `gorm:"default:true"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (DocumentCategory) TableName() string {
	return "ai_document_categories"
}
