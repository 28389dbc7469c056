package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hr-knowledge-be/internal/repository/memory"
	"hr-knowledge-be/pkg/intent"
	"hr-knowledge-be/pkg/llm"
	"hr-knowledge-be/pkg/search"
)

type chatbotNopLogger struct{}

func (chatbotNopLogger) Debug(module, message string, details map[string]interface{}) {}
func (chatbotNopLogger) Info(module, message string, details map[string]interface{})  {}
func (chatbotNopLogger) Warn(module, message string, details map[string]interface{})  {}
func (chatbotNopLogger) Error(module, message string, details map[string]interface{}) {}
func (chatbotNopLogger) Sync() error                                                  { return nil }

type stubSearchService struct {
	results      []search.Result
	minRelevance float64
	calls        int
	lastQuery    string
	lastLimit    int
}

func (s *stubSearchService) Search(ctx context.Context, query string, limit int) []search.Result {
	s.calls++
	s.lastQuery = query
	s.lastLimit = limit
	return s.results
}

func (s *stubSearchService) MinRelevance() float64 {
	return s.minRelevance
}

type stubAdapter struct {
	available    bool
	enhanced     string
	enhanceErr   error
	enhanceCalls int
	lastText     string
	lastContext  string
}

func (a *stubAdapter) Available(ctx context.Context) bool { return a.available }

func (a *stubAdapter) GenerateText(ctx context.Context, prompt, systemContext string) (string, error) {
	return "", errors.New("not scripted")
}

func (a *stubAdapter) AnalyzeSentiment(ctx context.Context, text string) (*llm.Sentiment, error) {
	return nil, errors.New("not scripted")
}

func (a *stubAdapter) ClassifyIntent(ctx context.Context, text string, candidates []string) (string, error) {
	return "", errors.New("not scripted")
}

func (a *stubAdapter) ExtractEntities(ctx context.Context, text string) ([]llm.Entity, error) {
	return nil, errors.New("not scripted")
}

func (a *stubAdapter) EnhanceResponse(ctx context.Context, text, conversationContext string) (string, error) {
	a.enhanceCalls++
	a.lastText = text
	a.lastContext = conversationContext
	if a.enhanceErr != nil {
		return "", a.enhanceErr
	}
	return a.enhanced, nil
}

func newChatbotForTest(searchSvc ISearchService, adapter llm.ModelAdapter) (IChatbotService, *memory.SessionRepository) {
	sessions := memory.NewSessionRepository()
	svc := NewChatbotService(
		intent.NewClassifier(chatbotNopLogger{}),
		searchSvc,
		adapter,
		sessions,
		chatbotNopLogger{},
		2*time.Second,
	)
	return svc, sessions
}

func hit(question, answer string, score float64) search.Result {
	return search.Result{
		Question: question,
		Answer:   answer,
		Score:    score,
		Source:   "knowledge_entry",
	}
}

func TestChatbotEmptyMessageShortCircuits(t *testing.T) {
	searchSvc := &stubSearchService{minRelevance: 0.1}
	adapter := &stubAdapter{available: true, enhanced: "should never appear"}
	svc, sessions := newChatbotForTest(searchSvc, adapter)

	for _, message := range []string{"", "   ", "\n\t "} {
		resp := svc.ProcessMessage(context.Background(), "user-1", message)

		require.NotNil(t, resp)
		assert.True(t, resp.Success)
		assert.Equal(t, intent.Unknown, resp.Intent)
		assert.NotEmpty(t, resp.Message)
		assert.NotEmpty(t, resp.Suggestions)
		assert.False(t, resp.EnhancedByAI)
	}

	assert.Equal(t, 0, searchSvc.calls)
	assert.Equal(t, 0, adapter.enhanceCalls)
	_, found := sessions.Get("user-1")
	assert.False(t, found, "a degenerate turn should not be recorded")
}

func TestChatbotGreeting(t *testing.T) {
	searchSvc := &stubSearchService{minRelevance: 0.1}
	svc, _ := newChatbotForTest(searchSvc, nil)

	resp := svc.ProcessMessage(context.Background(), "user-1", "halo apa kabar")

	assert.True(t, resp.Success)
	assert.Equal(t, intent.Greeting, resp.Intent)
	assert.Contains(t, resp.Message, "Halo")
	assert.NotEmpty(t, resp.Suggestions)
	assert.Equal(t, 0, searchSvc.calls)
}

func TestChatbotCannedIntentAttachesRelatedEntries(t *testing.T) {
	searchSvc := &stubSearchService{
		minRelevance: 0.1,
		results: []search.Result{
			hit("Jatah Cuti Tahunan", "Setiap karyawan mendapat 12 hari cuti.", 0.8),
		},
	}
	svc, _ := newChatbotForTest(searchSvc, nil)

	resp := svc.ProcessMessage(context.Background(), "user-1", "berapa sisa cuti saya")

	assert.Equal(t, intent.LeaveBalance, resp.Intent)
	assert.Contains(t, resp.Message, "Leave")
	assert.NotEmpty(t, resp.FollowUp)
	require.NotNil(t, resp.Data)
	assert.Equal(t, searchSvc.results, resp.Data["related"])
	assert.Equal(t, 3, searchSvc.lastLimit)
}

func TestChatbotCannedIntentWithoutMatchesOmitsData(t *testing.T) {
	searchSvc := &stubSearchService{minRelevance: 0.1}
	svc, _ := newChatbotForTest(searchSvc, nil)

	resp := svc.ProcessMessage(context.Background(), "user-1", "cek slip gaji saya")

	assert.Equal(t, intent.PayrollInquiry, resp.Intent)
	assert.Nil(t, resp.Data)
}

func TestChatbotPolicyAnswersFromBestHit(t *testing.T) {
	best := hit("Kebijakan Kerja Remote", "Kerja remote diizinkan maksimal 2 hari per minggu.", 0.72)
	searchSvc := &stubSearchService{
		minRelevance: 0.1,
		results:      []search.Result{best, hit("Kebijakan Lembur", "Lembur butuh persetujuan atasan.", 0.3)},
	}
	svc, _ := newChatbotForTest(searchSvc, nil)

	resp := svc.ProcessMessage(context.Background(), "user-1", "apa kebijakan kerja remote")

	assert.Equal(t, intent.CompanyPolicy, resp.Intent)
	assert.Equal(t, best.Answer, resp.Message)
	require.NotNil(t, resp.Data)
	assert.Equal(t, best.Source, resp.Data["source"])
	assert.Equal(t, best.Question, resp.Data["title"])
	assert.Equal(t, searchSvc.results, resp.Data["results"])
}

func TestChatbotPolicyBelowRelevanceBarFallsBack(t *testing.T) {
	searchSvc := &stubSearchService{
		minRelevance: 0.5,
		results:      []search.Result{hit("Kebijakan Lembur", "Lembur butuh persetujuan atasan.", 0.2)},
	}
	svc, _ := newChatbotForTest(searchSvc, nil)

	resp := svc.ProcessMessage(context.Background(), "user-1", "apa kebijakan parkir")

	assert.Equal(t, intent.CompanyPolicy, resp.Intent)
	assert.Contains(t, resp.Message, "tidak menemukan kebijakan")
	assert.Nil(t, resp.Data)
	assert.NotEmpty(t, resp.Suggestions)
}

func TestChatbotUnknownIntentBroadSearchWins(t *testing.T) {
	best := hit("Prosedur Reimbursement", "Ajukan reimbursement melalui menu Finance.", 0.9)
	searchSvc := &stubSearchService{
		minRelevance: 0.1,
		results:      []search.Result{best},
	}
	svc, _ := newChatbotForTest(searchSvc, nil)

	resp := svc.ProcessMessage(context.Background(), "user-1", "bagaimana prosedur reimbursement transport")

	assert.True(t, resp.Success)
	assert.Equal(t, intent.Unknown, resp.Intent)
	assert.Equal(t, best.Answer, resp.Message)
	assert.Empty(t, resp.ContextualHelp)
}

func TestChatbotUnknownIntentWithoutMatchesOffersHelp(t *testing.T) {
	searchSvc := &stubSearchService{minRelevance: 0.1}
	svc, _ := newChatbotForTest(searchSvc, nil)

	resp := svc.ProcessMessage(context.Background(), "user-1", "zzz pertanyaan acak tanpa makna")

	assert.True(t, resp.Success, "an unmatched question is not a failure")
	assert.Equal(t, intent.Unknown, resp.Intent)
	assert.Contains(t, resp.Message, "belum memahami")
	assert.NotEmpty(t, resp.Suggestions)
	assert.NotEmpty(t, resp.ContextualHelp)
}

func TestChatbotEnhancementRewritesMessage(t *testing.T) {
	adapter := &stubAdapter{available: true, enhanced: "Halo! Dengan senang hati saya bantu."}
	svc, _ := newChatbotForTest(&stubSearchService{minRelevance: 0.1}, adapter)

	resp := svc.ProcessMessage(context.Background(), "user-1", "halo")

	assert.True(t, resp.EnhancedByAI)
	assert.Equal(t, adapter.enhanced, resp.Message)
	assert.Equal(t, 1, adapter.enhanceCalls)
	assert.Contains(t, adapter.lastContext, intent.Greeting)
}

func TestChatbotEnhancementSkippedWhenUnavailable(t *testing.T) {
	adapter := &stubAdapter{available: false, enhanced: "should never appear"}
	svc, _ := newChatbotForTest(&stubSearchService{minRelevance: 0.1}, adapter)

	resp := svc.ProcessMessage(context.Background(), "user-1", "halo")

	assert.False(t, resp.EnhancedByAI)
	assert.Contains(t, resp.Message, "Halo")
	assert.Equal(t, 0, adapter.enhanceCalls)
}

func TestChatbotEnhancementFailureKeepsOriginal(t *testing.T) {
	adapter := &stubAdapter{available: true, enhanceErr: errors.New("model timeout")}
	svc, _ := newChatbotForTest(&stubSearchService{minRelevance: 0.1}, adapter)

	resp := svc.ProcessMessage(context.Background(), "user-1", "halo")

	assert.True(t, resp.Success)
	assert.False(t, resp.EnhancedByAI)
	assert.Contains(t, resp.Message, "Halo")
	assert.Equal(t, 1, adapter.enhanceCalls)
}

func TestChatbotNilAdapterIsFine(t *testing.T) {
	svc, _ := newChatbotForTest(&stubSearchService{minRelevance: 0.1}, nil)

	resp := svc.ProcessMessage(context.Background(), "user-1", "halo")

	assert.True(t, resp.Success)
	assert.False(t, resp.EnhancedByAI)
}

func TestChatbotRecordsSessionTurns(t *testing.T) {
	svc, sessions := newChatbotForTest(&stubSearchService{minRelevance: 0.1}, nil)

	svc.ProcessMessage(context.Background(), "user-7", "halo")
	svc.ProcessMessage(context.Background(), "user-7", "berapa sisa cuti saya")

	session, found := sessions.Get("user-7")
	require.True(t, found)
	assert.Equal(t, 2, session.TurnCount)
	assert.Equal(t, intent.LeaveBalance, session.LastIntent)
	assert.Equal(t, "berapa sisa cuti saya", session.LastQuery)
}
