package entity

import (
	"time"

	"github.com/google/uuid"
)

// Processing log levels.
const (
	LogLevelInfo    = "info"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Well-known processing steps.
const (
	StepStart          = "start"
	StepTextExtraction = "text_extraction"
	StepKnowledge      = "knowledge_extraction"
	StepCompletion     = "completion"
	StepErrorRecovery  = "error_recovery"
)

type ProcessingLog struct {
	Id             uuid.UUID
	DocumentId     uuid.UUID
	Level          string
	Message        string
	ProcessingStep string
	Details        map[string]interface{}
	CreatedAt      time.Time
}
