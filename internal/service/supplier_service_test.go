package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Lapatan16/Event-Organization-App-sub000/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCreateSupplier_GeneratesIDs(t *testing.T) {
	var created *models.Supplier
	repo := &mockSupplierRepo{
		createFn: func(ctx context.Context, supplier *models.Supplier) error {
			created = supplier
			return nil
		},
	}

	svc := NewSupplierService(repo)
	supplier := &models.Supplier{
		Name: "Catering Co",
		Type: models.TypeFood,
		Products: []models.SupplierProduct{
			{Name: "Canapés", UnitPrice: 50},
			{Name: "Buffet", UnitPrice: 120},
		},
	}

	err := svc.Create(context.Background(), supplier)

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	for _, p := range created.Products {
		assert.NotEmpty(t, p.ID)
		assert.Equal(t, created.ID, p.SupplierID)
	}
}

func TestCreateSupplier_UnknownType(t *testing.T) {
	svc := NewSupplierService(&mockSupplierRepo{})
	err := svc.Create(context.Background(), &models.Supplier{Name: "X", Type: "juggling"})

	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestAddProduct_SupplierNotFound(t *testing.T) {
	repo := &mockSupplierRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Supplier, error) {
			return nil, errors.New("record not found")
		},
	}

	svc := NewSupplierService(repo)
	err := svc.AddProduct(context.Background(), "ghost", &models.SupplierProduct{Name: "Tent"})

	assert.ErrorIs(t, err, ErrSupplierNotFound)
}

func TestAddProduct_AssignsSupplier(t *testing.T) {
	var added *models.SupplierProduct
	repo := &mockSupplierRepo{
		findByIDFn: func(ctx context.Context, id string) (*models.Supplier, error) {
			return &models.Supplier{ID: id, Type: models.TypeEquipment}, nil
		},
		addProductFn: func(ctx context.Context, product *models.SupplierProduct) error {
			added = product
			return nil
		},
	}

	svc := NewSupplierService(repo)
	err := svc.AddProduct(context.Background(), "sup-1", &models.SupplierProduct{Name: "Tent", UnitPrice: 75})

	assert.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "sup-1", added.SupplierID)
}
