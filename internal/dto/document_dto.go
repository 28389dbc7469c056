package dto

import (
	"time"

	"github.com/google/uuid"
)

// ProcessDocumentMessage is the work-queue payload. A bare id keeps the
// queue contract compatible with at-least-once delivery.
type ProcessDocumentMessage struct {
	DocumentId uuid.UUID `json:"document_id"`
}

type EnqueueProcessResponse struct {
	Id     uuid.UUID `json:"id"`
	Status string    `json:"status"`
}

type DocumentStatusResponse struct {
	Id        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	Progress  int       `json:"progress"`
	Stage     string    `json:"stage,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
	// Source tells whether the snapshot came from the cache or the database.
	Source string `json:"source"`
}

type ProcessingLogResponse struct {
	Id             uuid.UUID              `json:"id"`
	Level          string                 `json:"level"`
	Message        string                 `json:"message"`
	ProcessingStep string                 `json:"processing_step,omitempty"`
	Details        map[string]interface{} `json:"details,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
}
