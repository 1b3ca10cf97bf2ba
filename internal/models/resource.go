package models

import "time"

type ResourceType string

const (
	TypeSpace       ResourceType = "space"
	TypeEquipment   ResourceType = "equipment"
	TypeFood        ResourceType = "food"
	TypeTransport   ResourceType = "transport"
	TypeStaff       ResourceType = "staff"
	TypeSecurity    ResourceType = "security"
	TypeAdvertising ResourceType = "advertising"
)

var KnownResourceTypes = []ResourceType{
	TypeSpace, TypeEquipment, TypeFood, TypeTransport,
	TypeStaff, TypeSecurity, TypeAdvertising,
}

func (t ResourceType) Known() bool {
	for _, k := range KnownResourceTypes {
		if t == k {
			return true
		}
	}
	return false
}

// EventResource is one finite bookable thing belonging to one event.
// Reserved counts units committed through customer bookings and is mutated
// only through the conditional-update reservation path, never overwritten
// by resource updates.
type EventResource struct {
	ID       string       `gorm:"primaryKey;size:36" json:"id"`
	EventID  string       `gorm:"size:36;not null;index" json:"event_id"`
	Name     string       `gorm:"not null" json:"name"`
	Type     ResourceType `gorm:"type:varchar(20);not null" json:"type"`
	Quantity int          `gorm:"not null" json:"quantity"`
	Unit     string       `json:"unit"`
	IsPublic bool         `gorm:"not null;default:false" json:"is_public"`
	Price    float64      `json:"price"`
	Reserved int          `gorm:"not null;default:0" json:"reserved"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
