package service

import (
	"context"
	"encoding/json"
	"errors"

	"hr-knowledge-be/internal/dto"
	"hr-knowledge-be/internal/pkg/logger"
	"hr-knowledge-be/pkg/pipeline"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub          *gochannel.GoChannel
	topicName       string
	documentService IDocumentService
	log             logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	documentService IDocumentService,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:          pubSub,
		topicName:       topicName,
		documentService: documentService,
		log:             log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// processMessage honors at-least-once delivery: permanent conditions (bad
// payload, missing document, lost transition race) are Acked, transient
// store faults are Nacked for redelivery.
func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ProcessDocumentMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("consumer", "failed to unmarshal job payload", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.log.Info("consumer", "processing document job", map[string]interface{}{
		"document_id": payload.DocumentId.String(),
	})

	err := cs.documentService.ProcessDocument(ctx, payload.DocumentId)
	if err != nil {
		if errors.Is(err, pipeline.ErrDocumentNotFound) {
			cs.log.Warn("consumer", "document no longer exists, dropping job", map[string]interface{}{
				"document_id": payload.DocumentId.String(),
			})
			msg.Ack()
			return
		}
		cs.log.Error("consumer", "document job failed, will retry", map[string]interface{}{
			"document_id": payload.DocumentId.String(),
			"error":       err.Error(),
		})
		msg.Nack()
		return
	}

	msg.Ack()
}
