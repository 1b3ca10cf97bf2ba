// Package allocation builds the read-only resource → supplier → product
// rollup used by the management UI. It joins current contract rows against
// resources and the supplier catalog; nothing here is persisted and the
// build is deterministic for a given input.
package allocation

import (
	"fmt"

	"github.com/Lapatan16/Event-Organization-App-sub000/internal/models"
)

type FillStatus string

const (
	FillUnder FillStatus = "under-booked"
	FillExact FillStatus = "exactly-met"
	FillOver  FillStatus = "over-booked"
)

const (
	unknownSupplier = "unknown supplier"
	unknownProduct  = "unknown product"

	labelPending = "awaiting acceptance"
	labelSealed  = "accepted"
)

type ProductNode struct {
	Key       string  `json:"key"`
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Unit      string  `json:"unit"`
	Status    string  `json:"status"`
}

type SupplierNode struct {
	Key        string        `json:"key"`
	SupplierID string        `json:"supplier_id"`
	Name       string        `json:"name"`
	Quantity   int           `json:"quantity"`
	Price      float64       `json:"price"`
	Products   []ProductNode `json:"products"`
}

type ResourceNode struct {
	Key        string              `json:"key"`
	ResourceID string              `json:"resource_id"`
	Name       string              `json:"name"`
	Type       models.ResourceType `json:"type"`
	Unit       string              `json:"unit"`
	Quantity   int                 `json:"quantity"`
	Price      float64             `json:"price"`
	Reserved   int                 `json:"reserved"`
	Capacity   int                 `json:"capacity"`
	Booked     string              `json:"booked"`
	Fill       FillStatus          `json:"fill"`
	IsPublic   bool                `json:"is_public"`
	UnitPrice  float64             `json:"unit_price,omitempty"`
	Suppliers  []SupplierNode      `json:"suppliers"`
}

// BuildTree produces one root node per resource, one child per supplier that
// holds contracts against it, and one leaf per contract. Quantity and price
// aggregate upward by summation. Supplier and product names come from the
// supplier catalog; deleted references degrade to "unknown" labels instead
// of failing the whole read. The reserved counter and the contract totals
// are independent numbers and are shown side by side, not reconciled.
func BuildTree(resources []models.EventResource, contracts []models.Contract, suppliers []models.Supplier) []ResourceNode {
	supplierNames := make(map[string]string, len(suppliers))
	productNames := make(map[string]string)
	for _, s := range suppliers {
		supplierNames[s.ID] = s.Name
		for _, p := range s.Products {
			productNames[p.ID] = p.Name
		}
	}

	nodes := make([]ResourceNode, 0, len(resources))
	for _, res := range resources {
		node := ResourceNode{
			Key:        res.ID,
			ResourceID: res.ID,
			Name:       res.Name,
			Type:       res.Type,
			Unit:       res.Unit,
			Reserved:   res.Reserved,
			Capacity:   res.Quantity,
			Booked:     fmt.Sprintf("%d/%d", res.Reserved, res.Quantity),
			Fill:       fillStatus(res.Reserved, res.Quantity),
			IsPublic:   res.IsPublic,
			Suppliers:  []SupplierNode{},
		}
		if res.IsPublic {
			node.UnitPrice = res.Price
		}

		// Group this resource's contracts by supplier, preserving the input
		// order of contracts so the tree is stable across rebuilds.
		bySupplier := make(map[string]int)
		for _, c := range contracts {
			if c.ResourceID != res.ID {
				continue
			}

			idx, ok := bySupplier[c.SupplierID]
			if !ok {
				name, found := supplierNames[c.SupplierID]
				if !found {
					name = unknownSupplier
				}
				node.Suppliers = append(node.Suppliers, SupplierNode{
					Key:        res.ID + ":" + c.SupplierID,
					SupplierID: c.SupplierID,
					Name:       name,
					Products:   []ProductNode{},
				})
				idx = len(node.Suppliers) - 1
				bySupplier[c.SupplierID] = idx
			}

			productName, found := productNames[c.ProductID]
			if !found {
				productName = unknownProduct
			}

			// Each (supplier, product) pair is a single contract row after
			// the upsert merge, so every contract becomes one leaf. The unit
			// is the resource's declared unit, not the product's.
			leaf := ProductNode{
				Key:       res.ID + ":" + c.SupplierID + ":" + c.ProductID,
				ProductID: c.ProductID,
				Name:      productName,
				Quantity:  c.Quantity,
				Price:     c.Price,
				Unit:      res.Unit,
				Status:    statusLabel(c.Status),
			}

			sup := &node.Suppliers[idx]
			sup.Products = append(sup.Products, leaf)
			sup.Quantity += leaf.Quantity
			sup.Price += leaf.Price
			node.Quantity += leaf.Quantity
			node.Price += leaf.Price
		}

		nodes = append(nodes, node)
	}
	return nodes
}

func fillStatus(reserved, quantity int) FillStatus {
	switch {
	case reserved < quantity:
		return FillUnder
	case reserved == quantity:
		return FillExact
	default:
		// Should be unreachable once the capacity guard is in place, but
		// legacy rows may still carry an overshoot and must be flagged.
		return FillOver
	}
}

func statusLabel(status models.ContractStatus) string {
	if status == models.ContractSealed {
		return labelSealed
	}
	return labelPending
}
