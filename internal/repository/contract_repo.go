package repository

import (
	"context"

	"github.com/Lapatan16/Event-Organization-App-sub000/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ContractRepository interface {
	Create(ctx context.Context, tx *gorm.DB, contract *models.Contract) error
	FindByID(ctx context.Context, id string) (*models.Contract, error)
	FindByKeyForUpdate(ctx context.Context, tx *gorm.DB, resourceID, supplierID, productID string) (*models.Contract, error)
	Accumulate(ctx context.Context, tx *gorm.DB, id string, quantity int, price float64) error
	FindAll(ctx context.Context) ([]models.Contract, error)
	FindByEvent(ctx context.Context, eventID string) ([]models.Contract, error)
	FindByResource(ctx context.Context, resourceID string) ([]models.Contract, error)
	FindBySupplier(ctx context.Context, supplierID string) ([]models.Contract, error)
	FindByProduct(ctx context.Context, productID string) ([]models.Contract, error)
	UpdateStatus(ctx context.Context, id string, status models.ContractStatus) error
	DeleteByID(ctx context.Context, id string) (int64, error)
	DeleteByKey(ctx context.Context, resourceID, supplierID, productID string) (int64, error)
	DeleteByResource(ctx context.Context, resourceID string) (int64, error)
	DeleteByResourceAndSupplier(ctx context.Context, resourceID, supplierID string) (int64, error)
	GetDB() *gorm.DB
}

type contractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *contractRepository) Create(ctx context.Context, tx *gorm.DB, contract *models.Contract) error {
	return tx.WithContext(ctx).Create(contract).Error
}

func (r *contractRepository) FindByID(ctx context.Context, id string) (*models.Contract, error) {
	var contract models.Contract
	if err := r.db.WithContext(ctx).First(&contract, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &contract, nil
}

// FindByKeyForUpdate locks the logical contract row for the given key within
// the transaction, serializing concurrent merges against the same key.
func (r *contractRepository) FindByKeyForUpdate(ctx context.Context, tx *gorm.DB, resourceID, supplierID, productID string) (*models.Contract, error) {
	var contract models.Contract
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("resource_id = ? AND supplier_id = ? AND product_id = ?", resourceID, supplierID, productID).
		First(&contract).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

// Accumulate adds quantity and price onto an existing contract row. Status
// is deliberately not part of the merge.
func (r *contractRepository) Accumulate(ctx context.Context, tx *gorm.DB, id string, quantity int, price float64) error {
	return tx.WithContext(ctx).
		Model(&models.Contract{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"quantity": gorm.Expr("quantity + ?", quantity),
			"price":    gorm.Expr("price + ?", price),
		}).Error
}

func (r *contractRepository) FindAll(ctx context.Context) ([]models.Contract, error) {
	var contracts []models.Contract
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *contractRepository) FindByEvent(ctx context.Context, eventID string) ([]models.Contract, error) {
	return r.findWhere(ctx, "event_id = ?", eventID)
}

func (r *contractRepository) FindByResource(ctx context.Context, resourceID string) ([]models.Contract, error) {
	return r.findWhere(ctx, "resource_id = ?", resourceID)
}

func (r *contractRepository) FindBySupplier(ctx context.Context, supplierID string) ([]models.Contract, error) {
	return r.findWhere(ctx, "supplier_id = ?", supplierID)
}

func (r *contractRepository) FindByProduct(ctx context.Context, productID string) ([]models.Contract, error) {
	return r.findWhere(ctx, "product_id = ?", productID)
}

func (r *contractRepository) findWhere(ctx context.Context, query string, arg string) ([]models.Contract, error) {
	var contracts []models.Contract
	err := r.db.WithContext(ctx).
		Where(query, arg).
		Order("created_at ASC, id ASC").
		Find(&contracts).Error
	if err != nil {
		return nil, err
	}
	return contracts, nil
}

func (r *contractRepository) UpdateStatus(ctx context.Context, id string, status models.ContractStatus) error {
	return r.db.WithContext(ctx).
		Model(&models.Contract{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *contractRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Contract{})
	return result.RowsAffected, result.Error
}

func (r *contractRepository) DeleteByKey(ctx context.Context, resourceID, supplierID, productID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("resource_id = ? AND supplier_id = ? AND product_id = ?", resourceID, supplierID, productID).
		Delete(&models.Contract{})
	return result.RowsAffected, result.Error
}

func (r *contractRepository) DeleteByResource(ctx context.Context, resourceID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("resource_id = ?", resourceID).
		Delete(&models.Contract{})
	return result.RowsAffected, result.Error
}

func (r *contractRepository) DeleteByResourceAndSupplier(ctx context.Context, resourceID, supplierID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("resource_id = ? AND supplier_id = ?", resourceID, supplierID).
		Delete(&models.Contract{})
	return result.RowsAffected, result.Error
}
