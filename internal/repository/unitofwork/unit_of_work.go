package unitofwork

import (
	"context"

	"hr-knowledge-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	DocumentRepository() contract.DocumentRepository
	DocumentCategoryRepository() contract.DocumentCategoryRepository
	KnowledgeEntryRepository() contract.KnowledgeEntryRepository
	ProcessingLogRepository() contract.ProcessingLogRepository
}
