package entity

import (
	"time"

	"github.com/google/uuid"
)

// Knowledge entry types.
const (
	EntryTypeFAQ       = "faq"
	EntryTypePolicy    = "policy"
	EntryTypeProcedure = "procedure"
	EntryTypeTraining  = "training"
	EntryTypeGeneral   = "general"
)

type KnowledgeEntry struct {
	Id              uuid.UUID
	DocumentId      uuid.UUID
	Title           string
	Content         string
	EntryType       string
	Keywords        []string
	ConfidenceScore float64
	IsActive        bool
	ExtractionRun   uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}
