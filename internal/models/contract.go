package models

import "time"

type ContractStatus string

const (
	ContractPending ContractStatus = "pending"
	ContractSealed  ContractStatus = "sealed"
)

// Contract binds one event resource to one supplier product. At most one
// logical contract exists per (resource, supplier, product) key; repeated
// upserts against the same key accumulate quantity and price into the
// existing row. Price is the absolute line total, not a unit price.
type Contract struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	EventID    string `gorm:"size:36;not null;index" json:"event_id"`
	ResourceID string `gorm:"size:36;not null;uniqueIndex:idx_contract_key,priority:1" json:"resource_id"`
	SupplierID string `gorm:"size:36;not null;uniqueIndex:idx_contract_key,priority:2" json:"supplier_id"`
	ProductID  string `gorm:"size:36;not null;uniqueIndex:idx_contract_key,priority:3" json:"product_id"`

	Quantity int            `gorm:"not null" json:"quantity"`
	Price    float64        `gorm:"not null" json:"price"`
	Status   ContractStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
