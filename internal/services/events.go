package services

import (
	"encoding/json"
	"log"

	"github.com/google/uuid"
)

// EventPublisher is the subset of the RabbitMQ client the services use.
type EventPublisher interface {
	Publish(eventType string, body []byte) error
}

// entityEvent is the envelope published for every entity lifecycle change.
type entityEvent struct {
	EventID string `json:"event_id"`
	Event   string `json:"event"`
	ID      uint   `json:"id"`
}

// publishEvent sends a lifecycle event through mq when a client is
// configured. Publish failures are logged and never fail the operation
// that triggered them.
func publishEvent(mq EventPublisher, event string, id uint) {
	if mq == nil {
		return
	}
	body, err := json.Marshal(entityEvent{
		EventID: uuid.New().String(),
		Event:   event,
		ID:      id,
	})
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", event, err)
		return
	}
	if err := mq.Publish(event, body); err != nil {
		log.Printf("Warning: Failed to publish %s event for id %d: %v", event, id, err)
	}
}
