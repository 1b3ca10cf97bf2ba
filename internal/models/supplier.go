package models

import "time"

// Supplier is a registered vendor. The ledger treats it as read-mostly:
// contracts reference a supplier and one of its products, and a supplier
// can only be bound to a resource of the same type.
type Supplier struct {
	ID   string       `gorm:"primaryKey;size:36" json:"id"`
	Name string       `gorm:"not null" json:"name"`
	Type ResourceType `gorm:"type:varchar(20);not null" json:"type"`

	Products []SupplierProduct `gorm:"foreignKey:SupplierID" json:"products"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SupplierProduct struct {
	ID         string  `gorm:"primaryKey;size:36" json:"id"`
	SupplierID string  `gorm:"size:36;not null;index" json:"supplier_id"`
	Name       string  `gorm:"not null" json:"name"`
	UnitPrice  float64 `gorm:"not null" json:"unit_price"`
	Unit       string  `json:"unit"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
