package models

import "time"

// Event is a local copy of the platform's event record, synced over
// RabbitMQ. The ledger only needs it to validate ownership of resources.
type Event struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
