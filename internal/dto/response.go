package dto

import (
	"time"

	"github.com/Lapatan16/Event-Organization-App-sub000/internal/models"
)

type ResourceResponse struct {
	ID        string              `json:"id"`
	EventID   string              `json:"event_id"`
	Name      string              `json:"name"`
	Type      models.ResourceType `json:"type"`
	Quantity  int                 `json:"quantity"`
	Unit      string              `json:"unit"`
	IsPublic  bool                `json:"is_public"`
	Price     float64             `json:"price"`
	Reserved  int                 `json:"reserved"`
	CreatedAt time.Time           `json:"created_at"`
}

// PublicResourceResponse is the customer-facing catalog view. It only
// exposes fields relevant to booking.
type PublicResourceResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Reserved int     `json:"reserved"`
	Unit     string  `json:"unit"`
}

type ResourcePageResponse struct {
	Items    []ResourceResponse `json:"items"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

type ProductResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Unit      string  `json:"unit"`
}

type SupplierResponse struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Type     models.ResourceType `json:"type"`
	Products []ProductResponse   `json:"products"`
}

type ContractResponse struct {
	ID         string                `json:"id"`
	EventID    string                `json:"event_id"`
	ResourceID string                `json:"resource_id"`
	SupplierID string                `json:"supplier_id"`
	ProductID  string                `json:"product_id"`
	Quantity   int                   `json:"quantity"`
	Price      float64               `json:"price"`
	Status     models.ContractStatus `json:"status"`
	CreatedAt  time.Time             `json:"created_at"`
}

type DeletedResponse struct {
	Deleted int64 `json:"deleted"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToResourceResponse(r *models.EventResource) ResourceResponse {
	return ResourceResponse{
		ID:        r.ID,
		EventID:   r.EventID,
		Name:      r.Name,
		Type:      r.Type,
		Quantity:  r.Quantity,
		Unit:      r.Unit,
		IsPublic:  r.IsPublic,
		Price:     r.Price,
		Reserved:  r.Reserved,
		CreatedAt: r.CreatedAt,
	}
}

func ToPublicResourceResponse(r *models.EventResource) PublicResourceResponse {
	return PublicResourceResponse{
		ID:       r.ID,
		Name:     r.Name,
		Price:    r.Price,
		Quantity: r.Quantity,
		Reserved: r.Reserved,
		Unit:     r.Unit,
	}
}

func ToSupplierResponse(s *models.Supplier) SupplierResponse {
	products := make([]ProductResponse, len(s.Products))
	for i, p := range s.Products {
		products[i] = ProductResponse{
			ID:        p.ID,
			Name:      p.Name,
			UnitPrice: p.UnitPrice,
			Unit:      p.Unit,
		}
	}
	return SupplierResponse{
		ID:       s.ID,
		Name:     s.Name,
		Type:     s.Type,
		Products: products,
	}
}

func ToContractResponse(c *models.Contract) ContractResponse {
	return ContractResponse{
		ID:         c.ID,
		EventID:    c.EventID,
		ResourceID: c.ResourceID,
		SupplierID: c.SupplierID,
		ProductID:  c.ProductID,
		Quantity:   c.Quantity,
		Price:      c.Price,
		Status:     c.Status,
		CreatedAt:  c.CreatedAt,
	}
}
