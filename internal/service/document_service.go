package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"hr-knowledge-be/internal/dto"
	"hr-knowledge-be/internal/entity"
	"hr-knowledge-be/internal/pkg/logger"
	"hr-knowledge-be/internal/repository/specification"
	"hr-knowledge-be/internal/repository/unitofwork"
	"hr-knowledge-be/pkg/events"
	"hr-knowledge-be/pkg/knowledge"
	pkgNats "hr-knowledge-be/pkg/nats"
	"hr-knowledge-be/pkg/pipeline"
	"hr-knowledge-be/pkg/status"

	"github.com/google/uuid"
)

type IDocumentService interface {
	EnqueueProcessing(ctx context.Context, documentId uuid.UUID) (*dto.EnqueueProcessResponse, error)
	Reopen(ctx context.Context, documentId uuid.UUID, force bool) error
	GetStatus(ctx context.Context, documentId uuid.UUID) (*dto.DocumentStatusResponse, error)
	GetLogs(ctx context.Context, documentId uuid.UUID) ([]*dto.ProcessingLogResponse, error)

	// ProcessDocument is the queue-worker entry point.
	ProcessDocument(ctx context.Context, documentId uuid.UUID) error
}

type documentService struct {
	uowFactory       unitofwork.RepositoryFactory
	machine          *pipeline.Machine
	extractor        *knowledge.Extractor
	publisherService IPublisherService
	eventPublisher   *pkgNats.Publisher
	statusTracker    *status.Tracker
	log              logger.ILogger
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	machine *pipeline.Machine,
	extractor *knowledge.Extractor,
	publisherService IPublisherService,
	eventPublisher *pkgNats.Publisher,
	statusTracker *status.Tracker,
	log logger.ILogger,
) IDocumentService {
	return &documentService{
		uowFactory:       uowFactory,
		machine:          machine,
		extractor:        extractor,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		statusTracker:    statusTracker,
		log:              log,
	}
}

func (s *documentService) EnqueueProcessing(ctx context.Context, documentId uuid.UUID) (*dto.EnqueueProcessResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: documentId})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, pipeline.ErrDocumentNotFound
	}

	payload, err := json.Marshal(dto.ProcessDocumentMessage{DocumentId: documentId})
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		return nil, err
	}

	s.log.Info("document", "processing job enqueued", map[string]interface{}{
		"document_id": documentId.String(),
		"status":      doc.Status,
	})
	return &dto.EnqueueProcessResponse{Id: doc.Id, Status: doc.Status}, nil
}

func (s *documentService) Reopen(ctx context.Context, documentId uuid.UUID, force bool) error {
	previous := entity.DocumentStatusError
	var err error
	if force {
		err = s.machine.ForceReprocess(ctx, documentId)
		previous = "forced"
	} else {
		err = s.machine.Reopen(ctx, documentId)
	}
	if err != nil {
		return err
	}

	s.trackStatus(ctx, documentId, entity.DocumentStatusPending, 0, "")
	s.publishEvent(ctx, events.NewDocumentReopened(documentId.String(), previous))
	return nil
}

// GetStatus serves the polling path from redis first, falling back to the
// database when no snapshot exists.
func (s *documentService) GetStatus(ctx context.Context, documentId uuid.UUID) (*dto.DocumentStatusResponse, error) {
	if snapshot, err := s.statusTracker.Get(ctx, documentId.String()); err == nil && snapshot != nil {
		return &dto.DocumentStatusResponse{
			Id:        documentId,
			Status:    snapshot.Status,
			Progress:  snapshot.Progress,
			Stage:     snapshot.Stage,
			UpdatedAt: snapshot.UpdatedAt,
			Source:    "cache",
		}, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: documentId})
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, pipeline.ErrDocumentNotFound
	}

	resp := &dto.DocumentStatusResponse{
		Id:       doc.Id,
		Status:   doc.Status,
		Progress: doc.ProcessingProgress,
		Stage:    doc.ProcessingStage,
		Source:   "database",
	}
	if doc.UpdatedAt != nil {
		resp.UpdatedAt = *doc.UpdatedAt
	}

	// Backfill the cache so the next poll is cheap.
	s.trackStatus(ctx, doc.Id, doc.Status, doc.ProcessingProgress, doc.ProcessingStage)
	return resp, nil
}

func (s *documentService) GetLogs(ctx context.Context, documentId uuid.UUID) ([]*dto.ProcessingLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	logs, err := uow.ProcessingLogRepository().FindAll(ctx,
		specification.ByDocumentId{DocumentId: documentId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.ProcessingLogResponse, len(logs))
	for i, l := range logs {
		responses[i] = &dto.ProcessingLogResponse{
			Id:             l.Id,
			Level:          l.Level,
			Message:        l.Message,
			ProcessingStep: l.ProcessingStep,
			Details:        l.Details,
			CreatedAt:      l.CreatedAt,
		}
	}
	return responses, nil
}

// ProcessDocument drives pending -> processing -> processed for one queue
// job. Losing the begin_processing race means another worker owns the job;
// that is a clean no-op, not a failure.
func (s *documentService) ProcessDocument(ctx context.Context, documentId uuid.UUID) error {
	if err := s.machine.BeginProcessing(ctx, documentId); err != nil {
		if errors.Is(err, pipeline.ErrInvalidTransition) {
			s.log.Warn("document", "job already owned or not pending, skipping", map[string]interface{}{
				"document_id": documentId.String(),
			})
			return nil
		}
		return err
	}
	s.trackStatus(ctx, documentId, entity.DocumentStatusProcessing, 10, entity.StepTextExtraction)
	s.advanceProgress(ctx, documentId, 10, entity.StepTextExtraction)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	doc, err := uow.DocumentRepository().FindOne(ctx, specification.ByID{ID: documentId})
	if err != nil {
		return err
	}
	if doc == nil {
		return pipeline.ErrDocumentNotFound
	}

	s.trackStatus(ctx, documentId, entity.DocumentStatusProcessing, 30, entity.StepTextExtraction)
	s.advanceProgress(ctx, documentId, 30, entity.StepTextExtraction)

	text, err := s.extractText(doc)
	if err != nil {
		reason := fmt.Sprintf("text extraction failed: %v", err)
		if failErr := s.machine.Fail(ctx, documentId, reason); failErr != nil {
			return failErr
		}
		s.trackStatus(ctx, documentId, entity.DocumentStatusError, doc.ProcessingProgress, entity.StepTextExtraction)
		s.publishEvent(ctx, events.NewDocumentFailed(documentId.String(), reason))
		return nil
	}

	s.trackStatus(ctx, documentId, entity.DocumentStatusProcessing, 50, entity.StepTextExtraction)
	s.advanceProgress(ctx, documentId, 50, entity.StepTextExtraction)

	s.trackStatus(ctx, documentId, entity.DocumentStatusProcessing, 90, entity.StepCompletion)
	s.advanceProgress(ctx, documentId, 90, entity.StepCompletion)

	if err := s.machine.Complete(ctx, documentId, text); err != nil {
		return err
	}
	s.trackStatus(ctx, documentId, entity.DocumentStatusProcessed, 100, entity.StepCompletion)
	s.publishEvent(ctx, events.NewDocumentProcessed(documentId.String(), len(text)))

	doc.ExtractedText = text
	go s.runExtraction(doc)
	return nil
}

// runExtraction is fire-and-forget from the worker's perspective. A failure
// here moves the document to error instead of leaving it processed with no
// entries.
func (s *documentService) runExtraction(doc *entity.Document) {
	ctx := context.Background()

	result, err := s.extractor.Run(ctx, doc)
	if err != nil {
		s.log.Error("document", "knowledge extraction failed", map[string]interface{}{
			"document_id": doc.Id.String(),
			"error":       err.Error(),
		})
		reason := fmt.Sprintf("knowledge extraction failed: %v", err)
		if failErr := s.machine.FailExtraction(ctx, doc.Id, reason); failErr != nil {
			s.log.Error("document", "could not mark extraction failure", map[string]interface{}{
				"document_id": doc.Id.String(),
				"error":       failErr.Error(),
			})
		}
		s.trackStatus(ctx, doc.Id, entity.DocumentStatusError, 100, entity.StepKnowledge)
		s.publishEvent(ctx, events.NewDocumentFailed(doc.Id.String(), reason))
		return
	}

	s.publishEvent(ctx, events.NewKnowledgeExtracted(doc.Id.String(), result.Created, result.Activated))
}

// extractText reads the persisted text payload. File parsing beyond plain
// text formats lives upstream; anything else fails the document.
func (s *documentService) extractText(doc *entity.Document) (string, error) {
	if strings.TrimSpace(doc.ExtractedText) != "" {
		// Reprocessing an already-extracted document reuses its text.
		return doc.ExtractedText, nil
	}
	if doc.FileRef == "" {
		return "", fmt.Errorf("document has no file reference")
	}

	switch strings.ToLower(doc.FileType) {
	case "txt", "text", "md", "markdown", "csv":
	default:
		return "", fmt.Errorf("unsupported file type %q", doc.FileType)
	}

	raw, err := os.ReadFile(doc.FileRef)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", doc.FileRef, err)
	}

	text := strings.ToValidUTF8(string(raw), "")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("file %s contains no text", doc.FileRef)
	}
	return text, nil
}

// advanceProgress is a best-effort milestone update; losing the document
// mid-run (deleted, reaped) must not abort the worker.
func (s *documentService) advanceProgress(ctx context.Context, documentId uuid.UUID, progress int, stage string) {
	if err := s.machine.AdvanceProgress(ctx, documentId, progress, stage); err != nil {
		s.log.Warn("document", "progress update skipped", map[string]interface{}{
			"document_id": documentId.String(),
			"progress":    progress,
			"stage":       stage,
			"error":       err.Error(),
		})
	}
}

func (s *documentService) trackStatus(ctx context.Context, documentId uuid.UUID, docStatus string, progress int, stage string) {
	err := s.statusTracker.Set(ctx, documentId.String(), status.Snapshot{
		Status:   docStatus,
		Progress: progress,
		Stage:    stage,
	})
	if err != nil {
		s.log.Warn("document", "status tracker write failed", map[string]interface{}{
			"document_id": documentId.String(),
			"error":       err.Error(),
		})
	}
}

func (s *documentService) publishEvent(ctx context.Context, evt events.Event) {
	if s.eventPublisher == nil {
		return
	}
	if err := s.eventPublisher.Publish(ctx, evt); err != nil {
		s.log.Warn("document", "event publish failed", map[string]interface{}{
			"event": evt.EventType(),
			"error": err.Error(),
		})
	}
}
