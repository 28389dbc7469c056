package events

import "time"

// Event codes emitted by the document pipeline.
const (
	TypeDocumentProcessed  = "DOCUMENT_PROCESSED"
	TypeDocumentFailed     = "DOCUMENT_FAILED"
	TypeDocumentReopened   = "DOCUMENT_REOPENED"
	TypeKnowledgeExtracted = "KNOWLEDGE_EXTRACTED"
)

func NewDocumentProcessed(documentId string, extractedChars int) Event {
	return BaseEvent{
		Type: TypeDocumentProcessed,
		Data: map[string]interface{}{
			"document_id":     documentId,
			"extracted_chars": extractedChars,
		},
		OccurredAt: time.Now(),
	}
}

func NewDocumentFailed(documentId, reason string) Event {
	return BaseEvent{
		Type: TypeDocumentFailed,
		Data: map[string]interface{}{
			"document_id": documentId,
			"reason":      reason,
		},
		OccurredAt: time.Now(),
	}
}

func NewDocumentReopened(documentId, previousStatus string) Event {
	return BaseEvent{
		Type: TypeDocumentReopened,
		Data: map[string]interface{}{
			"document_id":     documentId,
			"previous_status": previousStatus,
		},
		OccurredAt: time.Now(),
	}
}

func NewKnowledgeExtracted(documentId string, created, activated int) Event {
	return BaseEvent{
		Type: TypeKnowledgeExtracted,
		Data: map[string]interface{}{
			"document_id": documentId,
			"created":     created,
			"activated":   activated,
		},
		OccurredAt: time.Now(),
	}
}
