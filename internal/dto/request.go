package dto

type UpsertResourceRequest struct {
	ID       string  `json:"id"`
	Name     string  `json:"name" validate:"required"`
	Type     string  `json:"type" validate:"required"`
	Quantity int     `json:"quantity" validate:"gte=0"`
	Unit     string  `json:"unit"`
	IsPublic bool    `json:"is_public"`
	Price    float64 `json:"price" validate:"gte=0"`
}

type ReserveRequest struct {
	Delta int `json:"delta" validate:"required"`
}

type ProductRequest struct {
	Name      string  `json:"name" validate:"required"`
	UnitPrice float64 `json:"unit_price" validate:"gte=0"`
	Unit      string  `json:"unit"`
}

type CreateSupplierRequest struct {
	Name     string           `json:"name" validate:"required"`
	Type     string           `json:"type" validate:"required"`
	Products []ProductRequest `json:"products"`
}

type ContractRequest struct {
	EventID    string  `json:"event_id" validate:"required"`
	ResourceID string  `json:"resource_id" validate:"required"`
	SupplierID string  `json:"supplier_id" validate:"required"`
	ProductID  string  `json:"product_id" validate:"required"`
	Quantity   int     `json:"quantity" validate:"required,gt=0"`
	Price      float64 `json:"price" validate:"gte=0"`
}
