package consumer

import (
	"encoding/json"
	"log"

	"github.com/Lapatan16/Event-Organization-App-sub000/internal/models"
	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventConsumer struct {
	db *gorm.DB
}

func NewEventConsumer(db *gorm.DB) *EventConsumer {
	return &EventConsumer{db: db}
}

// Start listens for platform event messages and keeps the ledger's local
// events table in sync.
func (ec *EventConsumer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		for msg := range msgs {
			ec.handleMessage(msg)
		}
		log.Println("[EventConsumer] channel closed, stopping consumer")
	}()
}

func (ec *EventConsumer) handleMessage(msg amqp.Delivery) {
	var event models.Event
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		log.Printf("[EventConsumer] failed to unmarshal: %v", err)
		msg.Nack(false, false)
		return
	}

	if msg.RoutingKey == "event.deleted" {
		if err := ec.db.Where("id = ?", event.ID).Delete(&models.Event{}).Error; err != nil {
			log.Printf("[EventConsumer] failed to delete event %s: %v", event.ID, err)
			msg.Nack(false, true) // requeue
			return
		}
		log.Printf("[EventConsumer] removed event %s", event.ID)
		msg.Ack(false)
		return
	}

	// Upsert: insert or update on conflict (same ID from the event service)
	result := ec.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
	}).Create(&event)

	if result.Error != nil {
		log.Printf("[EventConsumer] failed to upsert event %s: %v", event.ID, result.Error)
		msg.Nack(false, true) // requeue
		return
	}

	log.Printf("[EventConsumer] synced event %s: %s", event.ID, event.Name)
	msg.Ack(false)
}
