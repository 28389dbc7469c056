package contract

import (
	"context"
	"time"

	"hr-knowledge-be/internal/entity"
	"hr-knowledge-be/internal/repository/specification"

	"github.com/google/uuid"
)

type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error
	Update(ctx context.Context, doc *entity.Document) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Document, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Document, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// UpdateWhereStatus applies fields to the document only if its current
	// status is one of allowedFrom, in a single statement. Returns the number
	// of rows affected; zero means the guard did not hold.
	UpdateWhereStatus(ctx context.Context, id uuid.UUID, allowedFrom []string, fields map[string]interface{}) (int64, error)

	// FindStuck returns documents in the given status whose last update is
	// older than the cutoff.
	FindStuck(ctx context.Context, status string, cutoff time.Time) ([]*entity.Document, error)

	// SearchCandidates returns documents in the given statuses whose title,
	// description or extracted text contains the query, case-insensitive.
	SearchCandidates(ctx context.Context, query string, statuses []string, limit int) ([]*entity.Document, error)
}

type DocumentCategoryRepository interface {
	Create(ctx context.Context, category *entity.DocumentCategory) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DocumentCategory, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DocumentCategory, error)
}
