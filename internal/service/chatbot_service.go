package service

import (
	"context"
	"strings"
	"time"

	"hr-knowledge-be/internal/dto"
	"hr-knowledge-be/internal/pkg/logger"
	"hr-knowledge-be/internal/repository/memory"
	"hr-knowledge-be/pkg/intent"
	"hr-knowledge-be/pkg/llm"
	"hr-knowledge-be/pkg/store"
)

type IChatbotService interface {
	ProcessMessage(ctx context.Context, userId, message string) *dto.ChatMessageResponse
}

type chatbotService struct {
	classifier     *intent.Classifier
	searchService  ISearchService
	adapter        llm.ModelAdapter
	sessions       *memory.SessionRepository
	log            logger.ILogger
	enhanceTimeout time.Duration
}

func NewChatbotService(
	classifier *intent.Classifier,
	searchService ISearchService,
	adapter llm.ModelAdapter,
	sessions *memory.SessionRepository,
	log logger.ILogger,
	enhanceTimeout time.Duration,
) IChatbotService {
	if enhanceTimeout <= 0 {
		enhanceTimeout = 5 * time.Second
	}
	return &chatbotService{
		classifier:     classifier,
		searchService:  searchService,
		adapter:        adapter,
		sessions:       sessions,
		log:            log,
		enhanceTimeout: enhanceTimeout,
	}
}

var defaultSuggestions = []string{
	"Berapa sisa cuti saya?",
	"Bagaimana cara melihat slip gaji?",
	"Apa kebijakan kerja remote?",
	"Kapan jadwal pelatihan berikutnya?",
}

// ProcessMessage always returns a structured response. success is false
// only for an internal fault, never for an unknown intent.
func (s *chatbotService) ProcessMessage(ctx context.Context, userId, message string) (resp *dto.ChatMessageResponse) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("chatbot", "panic in message processing", map[string]interface{}{
				"panic": r,
			})
			resp = &dto.ChatMessageResponse{
				Success:     false,
				Intent:      intent.Unknown,
				Message:     "Maaf, terjadi kesalahan internal. Silakan coba lagi.",
				Suggestions: defaultSuggestions,
			}
		}
	}()

	// Degenerate input short-circuits before any search or adapter call.
	if strings.TrimSpace(message) == "" {
		return &dto.ChatMessageResponse{
			Success:     true,
			Intent:      intent.Unknown,
			Message:     "Silakan ketik pertanyaan Anda. Saya bisa membantu seputar cuti, gaji, absensi, kebijakan perusahaan, dan pelatihan.",
			Suggestions: defaultSuggestions,
		}
	}

	name := s.classifier.Classify(ctx, message)
	resp = s.dispatch(ctx, name, message)
	resp.Success = true
	resp.Intent = name
	if resp.Suggestions == nil {
		resp.Suggestions = []string{}
	}

	s.maybeEnhance(ctx, resp)
	s.rememberTurn(userId, name, message)
	return resp
}

func (s *chatbotService) dispatch(ctx context.Context, name, message string) *dto.ChatMessageResponse {
	switch name {
	case intent.Greeting:
		return &dto.ChatMessageResponse{
			Message:     "Halo! Saya asisten HR Anda. Ada yang bisa saya bantu hari ini?",
			Suggestions: defaultSuggestions,
		}
	case intent.Help:
		return &dto.ChatMessageResponse{
			Message: "Saya bisa membantu Anda dengan informasi cuti, gaji, absensi, data karyawan, rekrutmen, penilaian kinerja, kebijakan perusahaan, dan jadwal pelatihan. Ketik pertanyaan Anda dengan bahasa sehari-hari.",
			Suggestions: []string{
				"Berapa sisa cuti saya?",
				"Cek absensi bulan ini",
				"Apa kebijakan lembur?",
			},
		}
	case intent.LeaveBalance:
		return s.answerWithKnowledge(ctx, message,
			"Sisa cuti Anda dapat dilihat di menu Leave > My Leave Requests. Di sana tercantum jatah cuti tahunan, cuti terpakai, dan sisa cuti per jenis cuti.",
			"Ingin tahu cara mengajukan cuti?")
	case intent.PayrollInquiry:
		return s.answerWithKnowledge(ctx, message,
			"Slip gaji Anda tersedia di menu Payroll > Payslips setiap akhir periode penggajian. Untuk pertanyaan komponen gaji atau THR, hubungi tim HR melalui helpdesk.",
			"Ada komponen gaji tertentu yang ingin Anda tanyakan?")
	case intent.AttendanceCheck:
		return s.answerWithKnowledge(ctx, message,
			"Riwayat absensi dan jam kerja Anda ada di menu Attendance > My Attendances. Keterlambatan dan koreksi absensi dapat diajukan dari halaman yang sama.",
			"Perlu informasi tentang aturan jam kerja?")
	case intent.EmployeeInfo:
		return s.answerWithKnowledge(ctx, message,
			"Data profil Anda dapat dilihat dan diperbarui di menu Employee > My Profile. Perubahan data penting seperti rekening bank memerlukan verifikasi HR.",
			"")
	case intent.EmployeeList:
		return s.answerWithKnowledge(ctx, message,
			"Direktori karyawan tersedia di menu Employee > Directory untuk pengguna dengan akses yang sesuai.",
			"")
	case intent.HiringProcess:
		return s.answerWithKnowledge(ctx, message,
			"Informasi lowongan dan status lamaran dikelola di modul Recruitment. Kandidat dapat dipantau per tahapan mulai dari screening sampai offer.",
			"Ingin tahu tahapan rekrutmen selengkapnya?")
	case intent.ApplicantCount:
		return s.answerWithKnowledge(ctx, message,
			"Jumlah pelamar per lowongan dapat dilihat di dashboard Recruitment > Pipeline oleh tim rekrutmen.",
			"")
	case intent.PerformanceReview:
		return s.answerWithKnowledge(ctx, message,
			"Siklus penilaian kinerja dan formulir appraisal Anda ada di menu Performance. Jadwal review ditentukan oleh HR di awal periode.",
			"Perlu panduan mengisi self-review?")
	case intent.CompanyPolicy:
		return s.searchBacked(ctx, message,
			"Maaf, saya tidak menemukan kebijakan yang cocok. Coba sebutkan nama kebijakannya, misalnya \"kebijakan cuti\" atau \"kebijakan lembur\".")
	case intent.TrainingSchedule:
		return s.searchBacked(ctx, message,
			"Maaf, saya tidak menemukan jadwal pelatihan yang cocok. Coba tanyakan nama pelatihannya atau cek menu Training > Courses.")
	default:
		return s.fallback(ctx, message)
	}
}

// answerWithKnowledge returns canned portal guidance and attaches matching
// knowledge entries as supporting data.
func (s *chatbotService) answerWithKnowledge(ctx context.Context, query, message, followUp string) *dto.ChatMessageResponse {
	resp := &dto.ChatMessageResponse{
		Message:  message,
		FollowUp: followUp,
	}
	if results := s.searchService.Search(ctx, query, 3); len(results) > 0 {
		resp.Data = map[string]interface{}{
			"related": results,
		}
	}
	return resp
}

// searchBacked answers directly from the best search hit.
func (s *chatbotService) searchBacked(ctx context.Context, query, emptyMessage string) *dto.ChatMessageResponse {
	results := s.searchService.Search(ctx, query, 5)
	if len(results) == 0 || results[0].Score < s.searchService.MinRelevance() {
		return &dto.ChatMessageResponse{
			Message:     emptyMessage,
			Suggestions: defaultSuggestions,
		}
	}

	best := results[0]
	return &dto.ChatMessageResponse{
		Message: best.Answer,
		Data: map[string]interface{}{
			"source":  best.Source,
			"title":   best.Question,
			"results": results,
		},
	}
}

// fallback handles unknown intent: broad search, best match if it clears
// the relevance bar, otherwise suggestions plus contextual help.
func (s *chatbotService) fallback(ctx context.Context, message string) *dto.ChatMessageResponse {
	results := s.searchService.Search(ctx, message, 5)
	if len(results) > 0 && results[0].Score >= s.searchService.MinRelevance() {
		best := results[0]
		return &dto.ChatMessageResponse{
			Message: best.Answer,
			Data: map[string]interface{}{
				"source":  best.Source,
				"title":   best.Question,
				"results": results,
			},
		}
	}

	return &dto.ChatMessageResponse{
		Message:        "Maaf, saya belum memahami pertanyaan Anda.",
		Suggestions:    defaultSuggestions,
		ContextualHelp: "Coba gunakan kata kunci seperti \"cuti\", \"gaji\", \"absensi\", \"kebijakan\", atau \"pelatihan\". Ketik \"help\" untuk melihat semua yang bisa saya bantu.",
	}
}

// maybeEnhance rewrites the reply through the adapter under its own
// timeout. Any failure leaves the original text untouched.
func (s *chatbotService) maybeEnhance(ctx context.Context, resp *dto.ChatMessageResponse) {
	if s.adapter == nil || resp.Message == "" || !s.adapter.Available(ctx) {
		return
	}

	enhanceCtx, cancel := context.WithTimeout(ctx, s.enhanceTimeout)
	defer cancel()

	enhanced, err := s.adapter.EnhanceResponse(enhanceCtx, resp.Message, "intent: "+resp.Intent)
	if err != nil {
		s.log.Warn("chatbot", "enhancement skipped", map[string]interface{}{
			"intent": resp.Intent,
			"error":  err.Error(),
		})
		return
	}
	resp.Message = enhanced
	resp.EnhancedByAI = true
}

func (s *chatbotService) rememberTurn(userId, intentName, message string) {
	if s.sessions == nil || userId == "" {
		return
	}
	session, found := s.sessions.Get(userId)
	if !found {
		session = &store.Session{UserID: userId}
	}
	session.LastIntent = intentName
	session.LastQuery = message
	session.TurnCount++
	s.sessions.Save(session)
}
