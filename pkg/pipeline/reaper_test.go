package pipeline

import (
	"context"
	"testing"
	"time"

	"hr-knowledge-be/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReaper(threshold time.Duration, retentionDays int) (*Reaper, *memStore) {
	store := newMemStore()
	factory := &memFactory{store: store}
	machine := NewMachine(factory, nopLogger{})
	reaper := NewReaper(machine, factory, nopLogger{}, threshold, time.Minute, retentionDays)
	return reaper, store
}

func TestReaperResetsOnlyStaleProcessing(t *testing.T) {
	reaper, store := newTestReaper(2*time.Hour, 30)

	stale := store.addDocument(entity.DocumentStatusProcessing, time.Now().Add(-3*time.Hour))
	fresh := store.addDocument(entity.DocumentStatusProcessing, time.Now().Add(-10*time.Minute))
	errored := store.addDocument(entity.DocumentStatusError, time.Now().Add(-5*time.Hour))

	reset, err := reaper.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, reset)

	assert.Equal(t, entity.DocumentStatusPending, store.document(stale.Id).Status)
	assert.Equal(t, entity.DocumentStatusProcessing, store.document(fresh.Id).Status)
	assert.Equal(t, entity.DocumentStatusError, store.document(errored.Id).Status)

	logs := store.logsForStep(entity.StepErrorRecovery)
	require.Len(t, logs, 1)
	assert.Equal(t, stale.Id, logs[0].DocumentId)
	assert.Equal(t, entity.DocumentStatusProcessing, logs[0].Details["previous_status"])
	assert.NotNil(t, logs[0].Details["stuck_duration_hours"])
}

func TestReaperSecondPassIsIdempotent(t *testing.T) {
	reaper, store := newTestReaper(2*time.Hour, 0)
	store.addDocument(entity.DocumentStatusProcessing, time.Now().Add(-4*time.Hour))

	reset, err := reaper.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, reset)

	reset, err = reaper.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, reset)
}

func TestReaperEmptyScan(t *testing.T) {
	reaper, store := newTestReaper(2*time.Hour, 0)
	store.addDocument(entity.DocumentStatusPending, time.Now().Add(-48*time.Hour))

	reset, err := reaper.RunOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, reset)
	assert.Empty(t, store.logs)
}

func TestReaperCleansOldLogs(t *testing.T) {
	reaper, store := newTestReaper(2*time.Hour, 30)

	store.logs = append(store.logs,
		&entity.ProcessingLog{Message: "ancient", CreatedAt: time.Now().Add(-31 * 24 * time.Hour)},
		&entity.ProcessingLog{Message: "recent", CreatedAt: time.Now().Add(-1 * time.Hour)},
	)

	_, err := reaper.RunOnce(context.Background())
	require.NoError(t, err)

	require.Len(t, store.logs, 1)
	assert.Equal(t, "recent", store.logs[0].Message)
}
