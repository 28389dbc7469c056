package search

import (
	"context"
	"sort"
	"time"

	"hr-knowledge-be/internal/entity"
	"hr-knowledge-be/internal/pkg/logger"
	"hr-knowledge-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

const (
	SourceDocument       = "document"
	SourceKnowledgeEntry = "knowledge_entry"
)

// Result is transient; produced fresh per query, never persisted.
type Result struct {
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Score     float64   `json:"score"`
	Source    string    `json:"source"`
	SourceId  uuid.UUID `json:"source_id"`
	EntryType string    `json:"entry_type,omitempty"`
	CreatedAt time.Time `json:"-"`
}

type Config struct {
	DefaultLimit int
	MinRelevance float64
}

func DefaultConfig() Config {
	return Config{
		DefaultLimit: 5,
		MinRelevance: 0.1,
	}
}

// Engine ranks documents and knowledge entries together with a lexical
// phrase plus token-boost pass. Deterministic for fixed data and query.
type Engine struct {
	uowFactory unitofwork.RepositoryFactory
	log        logger.ILogger
	cfg        Config
}

func NewEngine(uowFactory unitofwork.RepositoryFactory, log logger.ILogger, cfg Config) *Engine {
	if cfg.DefaultLimit <= 0 {
		cfg = DefaultConfig()
	}
	return &Engine{
		uowFactory: uowFactory,
		log:        log,
		cfg:        cfg,
	}
}

func (e *Engine) MinRelevance() float64 {
	return e.cfg.MinRelevance
}

// Search returns up to limit results ordered by score descending. Ties go
// to knowledge entries over documents, then to newer rows. An empty result
// is a valid, non-error outcome.
func (e *Engine) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	phrase, tokens := Normalize(query)
	if phrase == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = e.cfg.DefaultLimit
	}

	docs, entries, err := e.gatherCandidates(ctx, phrase, tokens, limit)
	if err != nil {
		e.log.Error("search", "candidate gathering failed", map[string]interface{}{
			"query": phrase,
			"error": err.Error(),
		})
		return nil, err
	}

	results := make([]Result, 0, len(docs)+len(entries))
	for _, doc := range docs {
		score := scoreDocument(doc, phrase, tokens)
		if score <= 0 {
			continue
		}
		results = append(results, Result{
			Question:  doc.Title,
			Answer:    excerpt(doc),
			Score:     score,
			Source:    SourceDocument,
			SourceId:  doc.Id,
			CreatedAt: doc.CreatedAt,
		})
	}
	for _, entry := range entries {
		score := scoreEntry(entry, phrase, tokens)
		if score <= 0 {
			continue
		}
		results = append(results, Result{
			Question:  entry.Title,
			Answer:    entry.Content,
			Score:     score,
			Source:    SourceKnowledgeEntry,
			SourceId:  entry.Id,
			EntryType: entry.EntryType,
			CreatedAt: entry.CreatedAt,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		// Curated entries outrank raw documents on ties.
		if results[i].Source != results[j].Source {
			return results[i].Source == SourceKnowledgeEntry
		}
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// gatherCandidates pushes an ILIKE pass per term to the store, de-duplicated
// by id. The phrase and each token are separate passes so token-only
// matches still surface.
func (e *Engine) gatherCandidates(ctx context.Context, phrase string, tokens []string, limit int) ([]*entity.Document, []*entity.KnowledgeEntry, error) {
	uow := e.uowFactory.NewUnitOfWork(ctx)
	docRepo := uow.DocumentRepository()
	entryRepo := uow.KnowledgeEntryRepository()

	statuses := []string{entity.DocumentStatusProcessed, entity.DocumentStatusApproved}
	perTermLimit := limit * 10

	terms := append([]string{phrase}, tokens...)

	docSeen := map[uuid.UUID]struct{}{}
	var docs []*entity.Document
	entrySeen := map[uuid.UUID]struct{}{}
	var entries []*entity.KnowledgeEntry

	for _, term := range terms {
		found, err := docRepo.SearchCandidates(ctx, term, statuses, perTermLimit)
		if err != nil {
			return nil, nil, err
		}
		for _, doc := range found {
			if _, ok := docSeen[doc.Id]; ok {
				continue
			}
			docSeen[doc.Id] = struct{}{}
			docs = append(docs, doc)
		}

		foundEntries, err := entryRepo.SearchCandidates(ctx, term, perTermLimit)
		if err != nil {
			return nil, nil, err
		}
		for _, entry := range foundEntries {
			if _, ok := entrySeen[entry.Id]; ok {
				continue
			}
			entrySeen[entry.Id] = struct{}{}
			entries = append(entries, entry)
		}
	}
	return docs, entries, nil
}

func excerpt(doc *entity.Document) string {
	text := doc.Description
	if text == "" {
		text = doc.ExtractedText
	}
	runes := []rune(text)
	if len(runes) > 300 {
		return string(runes[:297]) + "..."
	}
	return text
}
