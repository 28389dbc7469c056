package contract

import (
	"context"

	"hr-knowledge-be/internal/entity"
	"hr-knowledge-be/internal/repository/specification"

	"github.com/google/uuid"
)

type KnowledgeEntryRepository interface {
	CreateBatch(ctx context.Context, entries []*entity.KnowledgeEntry) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeEntry, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeEntry, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// DeactivateByDocument marks every active entry of the document inactive.
	// Returns the number of entries deactivated.
	DeactivateByDocument(ctx context.Context, documentId uuid.UUID) (int64, error)

	// SearchCandidates returns active entries whose title, content or
	// keywords contain the query, case-insensitive.
	SearchCandidates(ctx context.Context, query string, limit int) ([]*entity.KnowledgeEntry, error)
}
