package intent

import (
	"context"
	"errors"
	"testing"

	"hr-knowledge-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// scriptedAdapter returns a fixed answer from ClassifyIntent and records
// whether it was consulted at all.
type scriptedAdapter struct {
	available bool
	answer    string
	err       error
	calls     int
}

func (a *scriptedAdapter) Available(ctx context.Context) bool { return a.available }

func (a *scriptedAdapter) GenerateText(ctx context.Context, prompt, systemContext string) (string, error) {
	return "", llm.ErrUnavailable
}

func (a *scriptedAdapter) AnalyzeSentiment(ctx context.Context, text string) (*llm.Sentiment, error) {
	return nil, llm.ErrUnavailable
}

func (a *scriptedAdapter) ClassifyIntent(ctx context.Context, text string, candidates []string) (string, error) {
	a.calls++
	return a.answer, a.err
}

func (a *scriptedAdapter) ExtractEntities(ctx context.Context, text string) ([]llm.Entity, error) {
	return nil, llm.ErrUnavailable
}

func (a *scriptedAdapter) EnhanceResponse(ctx context.Context, text, conversationContext string) (string, error) {
	return "", llm.ErrUnavailable
}

func TestClassifyKeywordRules(t *testing.T) {
	classifier := NewClassifier(nopLogger{})

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{name: "leave balance indonesian", message: "Berapa sisa cuti saya tahun ini?", want: LeaveBalance},
		{name: "leave balance english", message: "what is my leave balance", want: LeaveBalance},
		{name: "payroll", message: "kapan slip gaji bulan ini keluar", want: PayrollInquiry},
		{name: "short keyword thr matches whole word", message: "kapan thr dibayarkan", want: PayrollInquiry},
		{name: "short keyword does not fire inside longer word", message: "ada three documents disana bro", want: Unknown},
		{name: "attendance", message: "cek absensi saya dong", want: AttendanceCheck},
		{name: "applicant count beats hiring process", message: "berapa jumlah pelamar untuk lowongan ini", want: ApplicantCount},
		{name: "policy", message: "apa kebijakan kerja remote", want: CompanyPolicy},
		{name: "training", message: "jadwal pelatihan bulan depan", want: TrainingSchedule},
		{name: "greeting", message: "halo", want: Greeting},
		{name: "greeting mixed case", message: "  HALO apa kabar ", want: Greeting},
		{name: "help", message: "help", want: Help},
		{name: "empty", message: "", want: Unknown},
		{name: "whitespace", message: "   ", want: Unknown},
		{name: "gibberish", message: "xyz123abc qwerty", want: Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(context.Background(), tt.message))
		})
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	classifier := NewClassifier(nopLogger{})

	// "sisa cuti" (leave_balance) appears before the generic "cuti"
	// rules; the catalog order decides.
	got := classifier.Classify(context.Background(), "sisa cuti dan slip gaji")
	assert.Equal(t, LeaveBalance, got)
}

func TestClassifyEscalation(t *testing.T) {
	tests := []struct {
		name       string
		adapter    *scriptedAdapter
		want       string
		wantCalled bool
	}{
		{
			name:       "valid catalog answer accepted",
			adapter:    &scriptedAdapter{available: true, answer: PayrollInquiry},
			want:       PayrollInquiry,
			wantCalled: true,
		},
		{
			name:       "answer outside catalog collapses to unknown",
			adapter:    &scriptedAdapter{available: true, answer: "order_pizza"},
			want:       Unknown,
			wantCalled: true,
		},
		{
			name:       "adapter error is swallowed",
			adapter:    &scriptedAdapter{available: true, err: errors.New("boom")},
			want:       Unknown,
			wantCalled: true,
		},
		{
			name:       "unavailable adapter is skipped",
			adapter:    &scriptedAdapter{available: false, answer: PayrollInquiry},
			want:       Unknown,
			wantCalled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			classifier := NewClassifier(nopLogger{}).WithAdapter(tt.adapter)

			got := classifier.Classify(context.Background(), "zzz pertanyaan acak tanpa kata kunci")
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCalled, tt.adapter.calls > 0)
		})
	}
}

func TestClassifyKeywordRuleSkipsAdapter(t *testing.T) {
	adapter := &scriptedAdapter{available: true, answer: Unknown}
	classifier := NewClassifier(nopLogger{}).WithAdapter(adapter)

	got := classifier.Classify(context.Background(), "berapa sisa cuti saya")
	assert.Equal(t, LeaveBalance, got)
	assert.Zero(t, adapter.calls)
}

func TestNamesCoversCatalog(t *testing.T) {
	names := Names()
	assert.Equal(t, len(Catalog()), len(names))
	for _, it := range Catalog() {
		assert.Contains(t, names, it.Name)
	}
	assert.NotContains(t, names, Unknown)
}
