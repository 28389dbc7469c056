package entity

import (
	"time"

	"github.com/google/uuid"
)

// Document lifecycle statuses.
const (
	DocumentStatusPending    = "pending"
	DocumentStatusProcessing = "processing"
	DocumentStatusProcessed  = "processed"
	DocumentStatusApproved   = "approved"
	DocumentStatusRejected   = "rejected"
	DocumentStatusError      = "error"
)

type Document struct {
	Id                    uuid.UUID
	Title                 string
	Description           string
	FileType              string
	FileSize              int64
	FileRef               string
	CategoryId            *uuid.UUID
	Status                string
	ProcessingProgress    int
	ProcessingStage       string
	ProcessingNotes       string
	ExtractedText         string
	ProcessingStartedAt   *time.Time
	ProcessingCompletedAt *time.Time
	ApprovedAt            *time.Time
	ApprovedBy            *uuid.UUID
	CreatedAt             time.Time
	UpdatedAt             *time.Time
}

type DocumentCategory struct {
	Id          uuid.UUID
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
}
