package contract

import (
	"context"
	"time"

	"hr-knowledge-be/internal/entity"
	"hr-knowledge-be/internal/repository/specification"
)

type ProcessingLogRepository interface {
	Create(ctx context.Context, log *entity.ProcessingLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProcessingLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// DeleteOlderThan removes log entries created before the cutoff and
	// returns how many were removed.
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}
