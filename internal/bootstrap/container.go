package bootstrap

import (
	"context"
	"encoding/json"
	"log"

	"hr-knowledge-be/internal/config"
	"hr-knowledge-be/internal/controller"
	"hr-knowledge-be/internal/dto"
	"hr-knowledge-be/internal/pkg/logger"
	"hr-knowledge-be/internal/repository/memory"
	"hr-knowledge-be/internal/repository/unitofwork"
	"hr-knowledge-be/internal/service"
	"hr-knowledge-be/pkg/events"
	"hr-knowledge-be/pkg/intent"
	"hr-knowledge-be/pkg/knowledge"
	"hr-knowledge-be/pkg/llm/factory"
	"hr-knowledge-be/pkg/pipeline"
	"hr-knowledge-be/pkg/search"
	"hr-knowledge-be/pkg/status"

	pkgNats "hr-knowledge-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	DocumentController controller.IDocumentController
	SearchController   controller.ISearchController
	ChatbotController  controller.IChatbotController

	// Background workers (exposed for main.go to run)
	ConsumerService service.IConsumerService
	Reaper          *pipeline.Reaper

	// Held for shutdown
	NatsPublisher  *pkgNats.Publisher
	NatsSubscriber *pkgNats.Subscriber
	Redis          *redis.Client
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Work queue
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Event bus and status cache, both optional at startup
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pkgNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		rdb = nil
	}
	statusTracker := status.NewTracker(rdb)

	// 4. Domain engines
	machine := pipeline.NewMachine(uowFactory, sysLogger)
	reaper := pipeline.NewReaper(
		machine,
		uowFactory,
		sysLogger,
		cfg.Pipeline.StuckThreshold,
		cfg.Pipeline.ReaperInterval,
		cfg.Pipeline.LogRetention,
	)
	extractor := knowledge.NewExtractor(uowFactory, sysLogger, knowledge.Config{
		ActivationThreshold: cfg.Knowledge.ActivationThreshold,
		MinChunkSize:        cfg.Knowledge.MinChunkSize,
		MaxKeywords:         cfg.Knowledge.MaxKeywords,
	})
	engine := search.NewEngine(uowFactory, sysLogger, search.Config{
		DefaultLimit: cfg.Search.DefaultLimit,
		MinRelevance: cfg.Search.MinRelevance,
	})

	adapter := factory.NewModelAdapter(
		cfg.Ai.Provider,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.OllamaModel,
		cfg.Ai.RequestTimeout,
		cfg.Ai.HealthCacheTTL,
	)
	log.Printf("[INFO] Using model adapter: %s (%s)", cfg.Ai.Provider, cfg.Ai.OllamaModel)

	classifier := intent.NewClassifier(sysLogger).WithAdapter(adapter)
	sessionRepo := memory.NewSessionRepository()

	// 5. Services
	publisherService := service.NewPublisherService(cfg.App.ProcessTopic, pubSub)
	documentService := service.NewDocumentService(
		uowFactory,
		machine,
		extractor,
		publisherService,
		natsPub,
		statusTracker,
		sysLogger,
	)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.ProcessTopic,
		documentService,
		sysLogger,
	)
	searchService := service.NewSearchService(engine, sysLogger)
	chatbotService := service.NewChatbotService(
		classifier,
		searchService,
		adapter,
		sessionRepo,
		sysLogger,
		cfg.Ai.EnhanceTimeout,
	)

	// Reopened documents flow back into the work queue, so a reopen from
	// any node in the cluster gets picked up here.
	if natsSub != nil {
		err := natsSub.Subscribe(
			"events."+events.TypeDocumentReopened,
			"document-requeue",
			func(ctx context.Context, event events.Event) error {
				rawId, _ := event.Payload()["document_id"].(string)
				documentId, err := uuid.Parse(rawId)
				if err != nil {
					sysLogger.Warn("bootstrap", "reopened event with bad document id", map[string]interface{}{
						"document_id": rawId,
					})
					return nil
				}
				payload, err := json.Marshal(dto.ProcessDocumentMessage{DocumentId: documentId})
				if err != nil {
					return err
				}
				return publisherService.Publish(ctx, payload)
			},
		)
		if err != nil {
			log.Printf("[WARN] Failed to subscribe to reopened events: %v", err)
		}
	}

	return &Container{
		DocumentController: controller.NewDocumentController(documentService),
		SearchController:   controller.NewSearchController(searchService),
		ChatbotController:  controller.NewChatbotController(chatbotService),

		ConsumerService: consumerService,
		Reaper:          reaper,

		NatsPublisher:  natsPub,
		NatsSubscriber: natsSub,
		Redis:          rdb,
	}
}
