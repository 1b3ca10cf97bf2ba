package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lapatan16/Event-Organization-App-sub000/internal/models"
	"github.com/Lapatan16/Event-Organization-App-sub000/internal/repository"
	"github.com/Lapatan16/Event-Organization-App-sub000/pkg/rabbitmq"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrContractNotFound = errors.New("contract not found")
	ErrContractExists   = errors.New("contract already exists for this resource, supplier and product")
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrProductNotFound  = errors.New("product not found in supplier catalog")
	ErrTypeMismatch     = errors.New("supplier type does not match resource type")
	ErrInvalidQuantity  = errors.New("contract quantity must be positive")
	ErrInvalidPrice     = errors.New("contract price must not be negative")
)

type ContractService interface {
	ListAll(ctx context.Context) ([]models.Contract, error)
	ListByEvent(ctx context.Context, eventID string) ([]models.Contract, error)
	ListByResource(ctx context.Context, resourceID string) ([]models.Contract, error)
	ListBySupplier(ctx context.Context, supplierID string) ([]models.Contract, error)
	ListByProduct(ctx context.Context, productID string) ([]models.Contract, error)
	Create(ctx context.Context, contract *models.Contract) error
	Upsert(ctx context.Context, contract *models.Contract) (*models.Contract, error)
	Seal(ctx context.Context, contractID string) (*models.Contract, error)
	DeleteByID(ctx context.Context, contractID string) error
	DeleteByKey(ctx context.Context, resourceID, supplierID, productID string) (int64, error)
	DeleteByResource(ctx context.Context, resourceID string) (int64, error)
	DeleteByResourceAndSupplier(ctx context.Context, resourceID, supplierID string) (int64, error)
}

type contractService struct {
	repo         repository.ContractRepository
	resourceRepo repository.ResourceRepository
	supplierRepo repository.SupplierRepository
	publisher    *rabbitmq.Publisher
}

func NewContractService(repo repository.ContractRepository, resourceRepo repository.ResourceRepository, supplierRepo repository.SupplierRepository, publisher *rabbitmq.Publisher) ContractService {
	return &contractService{
		repo:         repo,
		resourceRepo: resourceRepo,
		supplierRepo: supplierRepo,
		publisher:    publisher,
	}
}

func (s *contractService) ListAll(ctx context.Context) ([]models.Contract, error) {
	return s.repo.FindAll(ctx)
}

func (s *contractService) ListByEvent(ctx context.Context, eventID string) ([]models.Contract, error) {
	return s.repo.FindByEvent(ctx, eventID)
}

func (s *contractService) ListByResource(ctx context.Context, resourceID string) ([]models.Contract, error) {
	return s.repo.FindByResource(ctx, resourceID)
}

func (s *contractService) ListBySupplier(ctx context.Context, supplierID string) ([]models.Contract, error) {
	return s.repo.FindBySupplier(ctx, supplierID)
}

func (s *contractService) ListByProduct(ctx context.Context, productID string) ([]models.Contract, error) {
	return s.repo.FindByProduct(ctx, productID)
}

// validateRefs checks every foreign reference of a new contract and the
// offerability rule: a supplier can only serve resources of its own type.
func (s *contractService) validateRefs(ctx context.Context, c *models.Contract) error {
	if c.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if c.Price < 0 {
		return ErrInvalidPrice
	}

	resource, err := s.resourceRepo.FindByID(ctx, c.EventID, c.ResourceID)
	if err != nil {
		return ErrResourceNotFound
	}

	supplier, err := s.supplierRepo.FindByID(ctx, c.SupplierID)
	if err != nil {
		return ErrSupplierNotFound
	}

	var product *models.SupplierProduct
	for i := range supplier.Products {
		if supplier.Products[i].ID == c.ProductID {
			product = &supplier.Products[i]
			break
		}
	}
	if product == nil {
		return ErrProductNotFound
	}

	if supplier.Type != resource.Type {
		return ErrTypeMismatch
	}
	return nil
}

// Create inserts a new pending contract and rejects the call when a contract
// with the same (resource, supplier, product) key already exists.
func (s *contractService) Create(ctx context.Context, contract *models.Contract) error {
	if err := s.validateRefs(ctx, contract); err != nil {
		return err
	}

	err := s.repo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.repo.FindByKeyForUpdate(ctx, tx, contract.ResourceID, contract.SupplierID, contract.ProductID)
		if err == nil {
			return ErrContractExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		contract.ID = uuid.NewString()
		contract.Status = models.ContractPending
		return s.repo.Create(ctx, tx, contract)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, ErrContractExists) {
			return ErrContractExists
		}
		return fmt.Errorf("create contract: %w", err)
	}
	return nil
}

// Upsert merges into the existing contract for the key, accumulating
// quantity and price, or creates a fresh pending one. Status is never
// touched by the merge; it only advances through Seal.
func (s *contractService) Upsert(ctx context.Context, contract *models.Contract) (*models.Contract, error) {
	if err := s.validateRefs(ctx, contract); err != nil {
		return nil, err
	}

	merged, err := s.mergeOrCreate(ctx, contract)
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Lost the insert race against a concurrent upsert of the same key;
		// the row exists now, so a second pass merges into it.
		merged, err = s.mergeOrCreate(ctx, contract)
	}
	if err != nil {
		return nil, fmt.Errorf("upsert contract: %w", err)
	}
	return merged, nil
}

func (s *contractService) mergeOrCreate(ctx context.Context, contract *models.Contract) (*models.Contract, error) {
	var out *models.Contract
	err := s.repo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing, err := s.repo.FindByKeyForUpdate(ctx, tx, contract.ResourceID, contract.SupplierID, contract.ProductID)
		if err == nil {
			if err := s.repo.Accumulate(ctx, tx, existing.ID, contract.Quantity, contract.Price); err != nil {
				return err
			}
			existing.Quantity += contract.Quantity
			existing.Price += contract.Price
			out = existing
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		contract.ID = uuid.NewString()
		contract.Status = models.ContractPending
		if err := s.repo.Create(ctx, tx, contract); err != nil {
			return err
		}
		out = contract
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Seal advances a pending contract to sealed. Sealing an already-sealed
// contract is a no-op success; the transition is one-way.
func (s *contractService) Seal(ctx context.Context, contractID string) (*models.Contract, error) {
	contract, err := s.repo.FindByID(ctx, contractID)
	if err != nil {
		return nil, ErrContractNotFound
	}

	if contract.Status == models.ContractSealed {
		return contract, nil
	}

	if err := s.repo.UpdateStatus(ctx, contractID, models.ContractSealed); err != nil {
		return nil, fmt.Errorf("seal contract: %w", err)
	}
	contract.Status = models.ContractSealed

	if s.publisher != nil {
		_ = s.publisher.Publish("ledger.contract.sealed", contract)
	}

	return contract, nil
}

func (s *contractService) DeleteByID(ctx context.Context, contractID string) error {
	rows, err := s.repo.DeleteByID(ctx, contractID)
	if err != nil {
		return fmt.Errorf("delete contract: %w", err)
	}
	if rows == 0 {
		return ErrContractNotFound
	}
	return nil
}

func (s *contractService) DeleteByKey(ctx context.Context, resourceID, supplierID, productID string) (int64, error) {
	rows, err := s.repo.DeleteByKey(ctx, resourceID, supplierID, productID)
	if err != nil {
		return 0, fmt.Errorf("delete contract by key: %w", err)
	}
	if rows == 0 {
		return 0, ErrContractNotFound
	}
	return rows, nil
}

func (s *contractService) DeleteByResource(ctx context.Context, resourceID string) (int64, error) {
	rows, err := s.repo.DeleteByResource(ctx, resourceID)
	if err != nil {
		return 0, fmt.Errorf("delete contracts by resource: %w", err)
	}
	if rows == 0 {
		return 0, ErrContractNotFound
	}
	return rows, nil
}

func (s *contractService) DeleteByResourceAndSupplier(ctx context.Context, resourceID, supplierID string) (int64, error) {
	rows, err := s.repo.DeleteByResourceAndSupplier(ctx, resourceID, supplierID)
	if err != nil {
		return 0, fmt.Errorf("delete contracts by resource and supplier: %w", err)
	}
	if rows == 0 {
		return 0, ErrContractNotFound
	}
	return rows, nil
}
