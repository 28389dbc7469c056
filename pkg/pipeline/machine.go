package pipeline

import (
	"context"
	"fmt"
	"time"

	"hr-knowledge-be/internal/entity"
	"hr-knowledge-be/internal/pkg/logger"
	"hr-knowledge-be/internal/repository/specification"
	"hr-knowledge-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Machine owns every document status change. Transitions are single-row
// compare-and-swap updates, so concurrent workers racing for the same
// document resolve through the status guard instead of locks.
type Machine struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
}

func NewMachine(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) *Machine {
	return &Machine{
		uowFactory: uowFactory,
		log:        log,
	}
}

// BeginProcessing moves pending -> processing and stamps the start time.
func (m *Machine) BeginProcessing(ctx context.Context, documentId uuid.UUID) error {
	now := time.Now()
	fields := map[string]interface{}{
		"status":                  entity.DocumentStatusProcessing,
		"processing_started_at":   now,
		"processing_completed_at": nil,
		"processing_progress":     0,
		"processing_stage":        entity.StepStart,
		"processing_notes":        "",
	}
	return m.transition(ctx, "begin_processing", documentId,
		[]string{entity.DocumentStatusPending}, fields,
		&entity.ProcessingLog{
			DocumentId:     documentId,
			Level:          entity.LogLevelInfo,
			Message:        "Document processing started",
			ProcessingStep: entity.StepStart,
		})
}

// AdvanceProgress updates the progress percentage without changing state.
// Milestone logging is the caller's concern.
func (m *Machine) AdvanceProgress(ctx context.Context, documentId uuid.UUID, percent int, stage string) error {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	fields := map[string]interface{}{
		"processing_progress": percent,
		"processing_stage":    stage,
	}
	return m.transition(ctx, "advance_progress", documentId,
		[]string{entity.DocumentStatusProcessing}, fields, nil)
}

// Complete moves processing -> processed and stores the extracted text.
// Knowledge extraction is triggered by the caller after this returns; a
// failure there does not revert the transition.
func (m *Machine) Complete(ctx context.Context, documentId uuid.UUID, extractedText string) error {
	now := time.Now()
	fields := map[string]interface{}{
		"status":                  entity.DocumentStatusProcessed,
		"extracted_text":          extractedText,
		"processing_completed_at": now,
		"processing_progress":     100,
		"processing_stage":        entity.StepCompletion,
	}
	return m.transition(ctx, "complete", documentId,
		[]string{entity.DocumentStatusProcessing}, fields,
		&entity.ProcessingLog{
			DocumentId:     documentId,
			Level:          entity.LogLevelInfo,
			Message:        "Document processing completed",
			ProcessingStep: entity.StepCompletion,
			Details: map[string]interface{}{
				"extracted_chars": len(extractedText),
			},
		})
}

// Fail moves processing -> error and records the reason in the notes.
func (m *Machine) Fail(ctx context.Context, documentId uuid.UUID, reason string) error {
	now := time.Now()
	fields := map[string]interface{}{
		"status":                  entity.DocumentStatusError,
		"processing_completed_at": now,
		"processing_notes":        reason,
	}
	return m.transition(ctx, "fail", documentId,
		[]string{entity.DocumentStatusProcessing}, fields,
		&entity.ProcessingLog{
			DocumentId:     documentId,
			Level:          entity.LogLevelError,
			Message:        fmt.Sprintf("Document processing failed: %s", reason),
			ProcessingStep: entity.StepCompletion,
			Details: map[string]interface{}{
				"reason": reason,
			},
		})
}

// FailExtraction moves processed -> error when the knowledge extraction
// that follows completion could not produce entries. Completion itself is
// never reverted; this is a subsequent transition.
func (m *Machine) FailExtraction(ctx context.Context, documentId uuid.UUID, reason string) error {
	fields := map[string]interface{}{
		"status":           entity.DocumentStatusError,
		"processing_notes": reason,
	}
	return m.transition(ctx, "fail_extraction", documentId,
		[]string{entity.DocumentStatusProcessed}, fields,
		&entity.ProcessingLog{
			DocumentId:     documentId,
			Level:          entity.LogLevelError,
			Message:        fmt.Sprintf("Knowledge extraction failed: %s", reason),
			ProcessingStep: entity.StepKnowledge,
			Details: map[string]interface{}{
				"reason": reason,
			},
		})
}

// Reopen moves error -> pending for a manual retry.
func (m *Machine) Reopen(ctx context.Context, documentId uuid.UUID) error {
	return m.reopenFrom(ctx, "reopen", documentId,
		[]string{entity.DocumentStatusError}, nil)
}

// ReopenStuck is the reaper entry point: processing -> pending for a
// document wedged mid-flight.
func (m *Machine) ReopenStuck(ctx context.Context, documentId uuid.UUID, stuckFor time.Duration) error {
	return m.reopenFrom(ctx, "reopen_stuck", documentId,
		[]string{entity.DocumentStatusProcessing},
		map[string]interface{}{
			"stuck_duration_hours": stuckFor.Hours(),
		})
}

// ForceReprocess is the operator escape hatch: any status back to pending.
func (m *Machine) ForceReprocess(ctx context.Context, documentId uuid.UUID) error {
	return m.reopenFrom(ctx, "force_reprocess", documentId,
		[]string{
			entity.DocumentStatusPending,
			entity.DocumentStatusProcessing,
			entity.DocumentStatusProcessed,
			entity.DocumentStatusApproved,
			entity.DocumentStatusRejected,
			entity.DocumentStatusError,
		}, nil)
}

func (m *Machine) reopenFrom(ctx context.Context, op string, documentId uuid.UUID, allowedFrom []string, extraDetails map[string]interface{}) error {
	uow := m.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback() //nolint:errcheck

	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: documentId})
	if err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("reopen %s: %w", documentId, ErrDocumentNotFound)
	}

	previousStatus := doc.Status
	fields := map[string]interface{}{
		"status":                  entity.DocumentStatusPending,
		"processing_started_at":   nil,
		"processing_completed_at": nil,
		"processing_progress":     0,
		"processing_stage":        "",
	}
	affected, err := uow.DocumentRepository().UpdateWhereStatus(ctx, documentId, allowedFrom, fields)
	if err != nil {
		return err
	}
	if affected == 0 {
		m.logRejected(ctx, op, documentId, previousStatus)
		return &TransitionError{Op: op, DocumentId: documentId, From: previousStatus}
	}

	details := map[string]interface{}{
		"previous_status": previousStatus,
	}
	for k, v := range extraDetails {
		details[k] = v
	}
	logEntry := &entity.ProcessingLog{
		DocumentId:     documentId,
		Level:          entity.LogLevelWarning,
		Message:        "Document reset to pending for reprocessing",
		ProcessingStep: entity.StepErrorRecovery,
		Details:        details,
	}
	if err := uow.ProcessingLogRepository().Create(ctx, logEntry); err != nil {
		return err
	}
	if err := uow.Commit(); err != nil {
		return err
	}

	m.log.Info("pipeline", "document reopened", map[string]interface{}{
		"document_id":     documentId.String(),
		"previous_status": previousStatus,
		"operation":       op,
	})
	return nil
}

func (m *Machine) transition(ctx context.Context, op string, documentId uuid.UUID, allowedFrom []string, fields map[string]interface{}, logEntry *entity.ProcessingLog) error {
	uow := m.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback() //nolint:errcheck

	affected, err := uow.DocumentRepository().UpdateWhereStatus(ctx, documentId, allowedFrom, fields)
	if err != nil {
		return err
	}
	if affected == 0 {
		doc, findErr := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: documentId})
		if findErr != nil {
			return findErr
		}
		if doc == nil {
			return fmt.Errorf("%s %s: %w", op, documentId, ErrDocumentNotFound)
		}
		m.logRejected(ctx, op, documentId, doc.Status)
		return &TransitionError{Op: op, DocumentId: documentId, From: doc.Status}
	}

	if logEntry != nil {
		if err := uow.ProcessingLogRepository().Create(ctx, logEntry); err != nil {
			return err
		}
	}
	return uow.Commit()
}

// logRejected records the precondition violation so concurrent retries stay
// auditable. It writes outside the aborted transaction on purpose.
func (m *Machine) logRejected(ctx context.Context, op string, documentId uuid.UUID, currentStatus string) {
	m.log.Warn("pipeline", "transition rejected", map[string]interface{}{
		"document_id":    documentId.String(),
		"operation":      op,
		"current_status": currentStatus,
	})

	uow := m.uowFactory.NewUnitOfWork(ctx)
	entry := &entity.ProcessingLog{
		DocumentId:     documentId,
		Level:          entity.LogLevelWarning,
		Message:        fmt.Sprintf("Transition %s rejected in status %q", op, currentStatus),
		ProcessingStep: op,
		Details: map[string]interface{}{
			"operation":      op,
			"current_status": currentStatus,
		},
	}
	if err := uow.ProcessingLogRepository().Create(ctx, entry); err != nil {
		m.log.Error("pipeline", "failed to record rejected transition", map[string]interface{}{
			"document_id": documentId.String(),
			"error":       err.Error(),
		})
	}
}
