package knowledge

import (
	"context"
	"errors"
	"fmt"

	"hr-knowledge-be/internal/entity"
	"hr-knowledge-be/internal/pkg/logger"
	"hr-knowledge-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// ErrExtractionFailure means the text could not be chunked or scored.
// Callers should mark the document as errored rather than leave it
// processed with no entries.
var ErrExtractionFailure = errors.New("knowledge extraction failure")

type Config struct {
	ActivationThreshold float64
	MinChunkSize        int
	MaxKeywords         int
}

func DefaultConfig() Config {
	return Config{
		ActivationThreshold: 0.5,
		MinChunkSize:        80,
		MaxKeywords:         10,
	}
}

// Extractor derives scored knowledge entries from a processed document's
// text. Each run supersedes the previous generation: old entries are
// deactivated, never deleted, so search only ever sees one generation.
type Extractor struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
	cfg        Config
}

func NewExtractor(uowFactory unitofwork.RepositoryFactory, log logger.ILogger, cfg Config) *Extractor {
	if cfg.ActivationThreshold <= 0 {
		cfg = DefaultConfig()
	}
	return &Extractor{
		uowFactory: uowFactory,
		log:        log,
		cfg:        cfg,
	}
}

type RunResult struct {
	Run        uuid.UUID
	Created    int
	Activated  int
	Superseded int64
}

// Run extracts entries for the document and swaps them in atomically.
func (e *Extractor) Run(ctx context.Context, doc *entity.Document) (*RunResult, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrExtractionFailure)
	}
	sections := splitSections(doc.ExtractedText, e.cfg.MinChunkSize)
	if len(sections) == 0 {
		return nil, fmt.Errorf("%w: no usable text in document %s", ErrExtractionFailure, doc.Id)
	}

	run := uuid.New()
	entries := make([]*entity.KnowledgeEntry, 0, len(sections))
	activated := 0
	for _, section := range sections {
		score := confidenceScore(section)
		active := score >= e.cfg.ActivationThreshold
		if active {
			activated++
		}
		entries = append(entries, &entity.KnowledgeEntry{
			DocumentId:      doc.Id,
			Title:           sectionTitle(section),
			Content:         section,
			EntryType:       detectEntryType(section),
			Keywords:        extractKeywords(section, e.cfg.MaxKeywords),
			ConfidenceScore: score,
			IsActive:        active,
			ExtractionRun:   run,
		})
	}

	uow := e.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback() //nolint:errcheck

	superseded, err := uow.KnowledgeEntryRepository().DeactivateByDocument(ctx, doc.Id)
	if err != nil {
		return nil, err
	}
	if err := uow.KnowledgeEntryRepository().CreateBatch(ctx, entries); err != nil {
		return nil, err
	}

	logEntry := &entity.ProcessingLog{
		DocumentId:     doc.Id,
		Level:          entity.LogLevelInfo,
		Message:        fmt.Sprintf("Extracted %d knowledge entries (%d active)", len(entries), activated),
		ProcessingStep: entity.StepKnowledge,
		Details: map[string]interface{}{
			"extraction_run": run.String(),
			"created":        len(entries),
			"activated":      activated,
			"superseded":     superseded,
		},
	}
	if err := uow.ProcessingLogRepository().Create(ctx, logEntry); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	e.log.Info("knowledge", "extraction run finished", map[string]interface{}{
		"document_id": doc.Id.String(),
		"created":     len(entries),
		"activated":   activated,
		"superseded":  superseded,
	})

	return &RunResult{
		Run:        run,
		Created:    len(entries),
		Activated:  activated,
		Superseded: superseded,
	}, nil
}
