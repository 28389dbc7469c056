package pipeline

import (
	"context"
	"time"

	"hr-knowledge-be/internal/entity"
	"hr-knowledge-be/internal/pkg/logger"
	"hr-knowledge-be/internal/repository/unitofwork"
)

// Reaper reclaims documents wedged in processing. It only flips the status
// back to pending; re-picking the job is the work queue's responsibility.
type Reaper struct {
	machine      *Machine
	uowFactory   unitofwork.RepositoryFactory
	log          logger.ILogger
	threshold    time.Duration
	interval     time.Duration
	logRetention time.Duration
	lastCleanup  time.Time
}

func NewReaper(machine *Machine, uowFactory unitofwork.RepositoryFactory, log logger.ILogger, threshold, interval time.Duration, logRetentionDays int) *Reaper {
	return &Reaper{
		machine:      machine,
		uowFactory:   uowFactory,
		log:          log,
		threshold:    threshold,
		interval:     interval,
		logRetention: time.Duration(logRetentionDays) * 24 * time.Hour,
	}
}

// Start blocks until the context is cancelled. Run it in its own goroutine.
func (r *Reaper) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.log.Info("reaper", "stuck-document reaper started", map[string]interface{}{
		"threshold": r.threshold.String(),
		"interval":  r.interval.String(),
	})

	for {
		select {
		case <-ctx.Done():
			r.log.Info("reaper", "stuck-document reaper stopped", nil)
			return
		case <-ticker.C:
			if _, err := r.RunOnce(ctx); err != nil {
				r.log.Error("reaper", "reaper pass failed", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}
}

// RunOnce performs a single scan and returns how many documents it reset.
func (r *Reaper) RunOnce(ctx context.Context) (int, error) {
	now := time.Now()
	cutoff := now.Add(-r.threshold)

	uow := r.uowFactory.NewUnitOfWork(ctx)
	stuck, err := uow.DocumentRepository().FindStuck(ctx, entity.DocumentStatusProcessing, cutoff)
	if err != nil {
		return 0, err
	}

	reset := 0
	for _, doc := range stuck {
		stuckFor := r.threshold
		if doc.UpdatedAt != nil {
			stuckFor = now.Sub(*doc.UpdatedAt)
		}
		if err := r.machine.ReopenStuck(ctx, doc.Id, stuckFor); err != nil {
			// Lost the race with a worker that just finished; skip it.
			r.log.Warn("reaper", "skipped document during reap", map[string]interface{}{
				"document_id": doc.Id.String(),
				"error":       err.Error(),
			})
			continue
		}
		reset++
	}

	if reset > 0 {
		r.log.Info("reaper", "reset stuck documents", map[string]interface{}{
			"count": reset,
		})
	}

	r.maybeCleanupLogs(ctx, now)
	return reset, nil
}

// maybeCleanupLogs trims old processing logs at most once a day.
func (r *Reaper) maybeCleanupLogs(ctx context.Context, now time.Time) {
	if r.logRetention <= 0 || now.Sub(r.lastCleanup) < 24*time.Hour {
		return
	}
	r.lastCleanup = now

	uow := r.uowFactory.NewUnitOfWork(ctx)
	removed, err := uow.ProcessingLogRepository().DeleteOlderThan(ctx, now.Add(-r.logRetention))
	if err != nil {
		r.log.Error("reaper", "log cleanup failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if removed > 0 {
		r.log.Info("reaper", "removed old processing logs", map[string]interface{}{
			"count": removed,
		})
	}
}
