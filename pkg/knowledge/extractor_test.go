package knowledge

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"hr-knowledge-be/internal/entity"
	"hr-knowledge-be/internal/repository/contract"
	"hr-knowledge-be/internal/repository/specification"
	"hr-knowledge-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type entryStore struct {
	entries []*entity.KnowledgeEntry
	logs    []*entity.ProcessingLog
}

type entryFactory struct {
	store *entryStore
}

func (f *entryFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &entryUow{store: f.store}
}

type entryUow struct {
	store *entryStore
}

func (u *entryUow) Begin(ctx context.Context) error { return nil }
func (u *entryUow) Commit() error                   { return nil }
func (u *entryUow) Rollback() error                 { return nil }

func (u *entryUow) DocumentRepository() contract.DocumentRepository                 { return nil }
func (u *entryUow) DocumentCategoryRepository() contract.DocumentCategoryRepository { return nil }

func (u *entryUow) KnowledgeEntryRepository() contract.KnowledgeEntryRepository {
	return &fakeEntryRepo{store: u.store}
}

func (u *entryUow) ProcessingLogRepository() contract.ProcessingLogRepository {
	return &fakeLogRepo{store: u.store}
}

type fakeEntryRepo struct {
	store *entryStore
}

func (r *fakeEntryRepo) CreateBatch(ctx context.Context, entries []*entity.KnowledgeEntry) error {
	for _, entry := range entries {
		if entry.Id == uuid.Nil {
			entry.Id = uuid.New()
		}
	}
	r.store.entries = append(r.store.entries, entries...)
	return nil
}

func (r *fakeEntryRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeEntry, error) {
	return nil, nil
}

func (r *fakeEntryRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeEntry, error) {
	return r.store.entries, nil
}

func (r *fakeEntryRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.entries)), nil
}

func (r *fakeEntryRepo) DeactivateByDocument(ctx context.Context, documentId uuid.UUID) (int64, error) {
	deactivated := int64(0)
	for _, entry := range r.store.entries {
		if entry.DocumentId == documentId && entry.IsActive {
			entry.IsActive = false
			deactivated++
		}
	}
	return deactivated, nil
}

func (r *fakeEntryRepo) SearchCandidates(ctx context.Context, query string, limit int) ([]*entity.KnowledgeEntry, error) {
	return nil, nil
}

type fakeLogRepo struct {
	store *entryStore
}

func (r *fakeLogRepo) Create(ctx context.Context, logEntry *entity.ProcessingLog) error {
	r.store.logs = append(r.store.logs, logEntry)
	return nil
}

func (r *fakeLogRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProcessingLog, error) {
	return r.store.logs, nil
}

func (r *fakeLogRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.logs)), nil
}

func (r *fakeLogRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	return 0, nil
}

func newTestExtractor() (*Extractor, *entryStore) {
	store := &entryStore{}
	extractor := NewExtractor(&entryFactory{store: store}, nopLogger{}, DefaultConfig())
	return extractor, store
}

func fixtureDocument(text string) *entity.Document {
	return &entity.Document{
		Id:            uuid.New(),
		Title:         "Kebijakan Cuti",
		Status:        entity.DocumentStatusProcessed,
		ExtractedText: text,
	}
}

const policyText = `Kebijakan Cuti Tahunan
Setiap karyawan tetap berhak atas dua belas hari cuti tahunan. Pengajuan cuti dilakukan melalui portal karyawan dan memerlukan persetujuan atasan langsung sebelum tanggal cuti dimulai.

Prosedur Pengajuan Cuti
1. Buka menu Leave pada portal karyawan
2. Pilih jenis cuti dan rentang tanggal
3. Kirim pengajuan dan tunggu persetujuan atasan

Berapa lama proses persetujuan cuti?
Persetujuan cuti biasanya membutuhkan satu sampai dua hari kerja tergantung ketersediaan atasan yang menyetujui pengajuan tersebut.`

func TestExtractorRun(t *testing.T) {
	extractor, store := newTestExtractor()
	doc := fixtureDocument(policyText)

	result, err := extractor.Run(context.Background(), doc)
	require.NoError(t, err)

	assert.Equal(t, 3, result.Created)
	assert.Len(t, store.entries, 3)
	assert.Equal(t, int64(0), result.Superseded)

	for _, entry := range store.entries {
		assert.Equal(t, doc.Id, entry.DocumentId)
		assert.Equal(t, result.Run, entry.ExtractionRun)
		assert.NotEmpty(t, entry.Title)
		assert.NotEmpty(t, entry.Keywords)
		assert.GreaterOrEqual(t, entry.ConfidenceScore, 0.0)
		assert.LessOrEqual(t, entry.ConfidenceScore, 1.0)
		// Activation strictly follows the threshold.
		assert.Equal(t, entry.ConfidenceScore >= DefaultConfig().ActivationThreshold, entry.IsActive)
	}

	require.Len(t, store.logs, 1)
	assert.Equal(t, entity.StepKnowledge, store.logs[0].ProcessingStep)
	assert.Equal(t, result.Run.String(), store.logs[0].Details["extraction_run"])
}

func TestExtractorSupersedesPreviousRun(t *testing.T) {
	extractor, store := newTestExtractor()
	doc := fixtureDocument(policyText)

	first, err := extractor.Run(context.Background(), doc)
	require.NoError(t, err)

	firstActive := 0
	for _, entry := range store.entries {
		if entry.IsActive {
			firstActive++
		}
	}

	second, err := extractor.Run(context.Background(), doc)
	require.NoError(t, err)
	assert.NotEqual(t, first.Run, second.Run)
	assert.Equal(t, int64(firstActive), second.Superseded)

	// Only the latest generation may be active.
	for _, entry := range store.entries {
		if entry.IsActive {
			assert.Equal(t, second.Run, entry.ExtractionRun)
		}
	}
}

func TestExtractorLowConfidenceStaysInactive(t *testing.T) {
	store := &entryStore{}
	extractor := NewExtractor(&entryFactory{store: store}, nopLogger{}, Config{
		ActivationThreshold: 0.99,
		MinChunkSize:        80,
		MaxKeywords:         10,
	})

	result, err := extractor.Run(context.Background(), fixtureDocument(policyText))
	require.NoError(t, err)

	assert.Equal(t, 0, result.Activated)
	assert.Greater(t, result.Created, 0)
	for _, entry := range store.entries {
		assert.False(t, entry.IsActive)
	}
}

func TestExtractorRejectsEmptyText(t *testing.T) {
	extractor, store := newTestExtractor()

	tests := []struct {
		name string
		text string
	}{
		{name: "blank", text: "   \n\n "},
		{name: "too short everywhere", text: strings.Repeat("ok\n\n", 5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extractor.Run(context.Background(), fixtureDocument(tt.text))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrExtractionFailure))
		})
	}
	assert.Empty(t, store.entries)
}

func TestExtractorNilDocument(t *testing.T) {
	extractor, _ := newTestExtractor()

	_, err := extractor.Run(context.Background(), nil)
	assert.True(t, errors.Is(err, ErrExtractionFailure))
}
