package service

import (
	"context"
	"fmt"

	"github.com/Lapatan16/Event-Organization-App-sub000/internal/models"
	"github.com/Lapatan16/Event-Organization-App-sub000/internal/repository"
	"github.com/google/uuid"
)

type SupplierService interface {
	Create(ctx context.Context, supplier *models.Supplier) error
	Get(ctx context.Context, id string) (*models.Supplier, error)
	ListAll(ctx context.Context) ([]models.Supplier, error)
	AddProduct(ctx context.Context, supplierID string, product *models.SupplierProduct) error
}

type supplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) SupplierService {
	return &supplierService{repo: repo}
}

func (s *supplierService) Create(ctx context.Context, supplier *models.Supplier) error {
	if !supplier.Type.Known() {
		return fmt.Errorf("%w: %q", ErrUnknownType, supplier.Type)
	}

	supplier.ID = uuid.NewString()
	for i := range supplier.Products {
		supplier.Products[i].ID = uuid.NewString()
		supplier.Products[i].SupplierID = supplier.ID
	}

	if err := s.repo.Create(ctx, supplier); err != nil {
		return fmt.Errorf("create supplier: %w", err)
	}
	return nil
}

func (s *supplierService) Get(ctx context.Context, id string) (*models.Supplier, error) {
	supplier, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, ErrSupplierNotFound
	}
	return supplier, nil
}

func (s *supplierService) ListAll(ctx context.Context) ([]models.Supplier, error) {
	return s.repo.FindAll(ctx)
}

func (s *supplierService) AddProduct(ctx context.Context, supplierID string, product *models.SupplierProduct) error {
	if _, err := s.repo.FindByID(ctx, supplierID); err != nil {
		return ErrSupplierNotFound
	}

	product.ID = uuid.NewString()
	product.SupplierID = supplierID
	if err := s.repo.AddProduct(ctx, product); err != nil {
		return fmt.Errorf("add product: %w", err)
	}
	return nil
}
