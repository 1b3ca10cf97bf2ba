package repository

import (
	"context"

	"github.com/Lapatan16/Event-Organization-App-sub000/internal/models"
	"gorm.io/gorm"
)

type ResourceRepository interface {
	Create(ctx context.Context, res *models.EventResource) error
	FindByID(ctx context.Context, eventID, id string) (*models.EventResource, error)
	FindByEvent(ctx context.Context, eventID string, offset, limit int) ([]models.EventResource, int64, error)
	FindPublicByEvent(ctx context.Context, eventID string) ([]models.EventResource, error)
	UpdateFields(ctx context.Context, eventID, id string, name string, rtype models.ResourceType, quantity int) (int64, error)
	UpdateFieldsAndTerms(ctx context.Context, eventID, id string, name string, rtype models.ResourceType, quantity int, isPublic bool, price float64) (int64, error)
	Delete(ctx context.Context, eventID, id string) (int64, error)
	IncrementReserved(ctx context.Context, eventID, id string, delta int) (int64, error)
	ReleaseReserved(ctx context.Context, eventID, id string, delta int) (int64, error)
}

type resourceRepository struct {
	db *gorm.DB
}

func NewResourceRepository(db *gorm.DB) ResourceRepository {
	return &resourceRepository{db: db}
}

func (r *resourceRepository) Create(ctx context.Context, res *models.EventResource) error {
	return r.db.WithContext(ctx).Create(res).Error
}

func (r *resourceRepository) FindByID(ctx context.Context, eventID, id string) (*models.EventResource, error) {
	var res models.EventResource
	err := r.db.WithContext(ctx).
		Where("id = ? AND event_id = ?", id, eventID).
		First(&res).Error
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *resourceRepository) FindByEvent(ctx context.Context, eventID string, offset, limit int) ([]models.EventResource, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.EventResource{}).
		Where("event_id = ?", eventID).
		Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	var resources []models.EventResource
	err = r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&resources).Error
	if err != nil {
		return nil, 0, err
	}
	return resources, total, nil
}

func (r *resourceRepository) FindPublicByEvent(ctx context.Context, eventID string) ([]models.EventResource, error) {
	var resources []models.EventResource
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND is_public = ?", eventID, true).
		Order("created_at ASC, id ASC").
		Find(&resources).Error
	if err != nil {
		return nil, err
	}
	return resources, nil
}

// UpdateFields overwrites only the always-mutable fields of a resource.
// Reserved, is_public and price are never touched here.
func (r *resourceRepository) UpdateFields(ctx context.Context, eventID, id string, name string, rtype models.ResourceType, quantity int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.EventResource{}).
		Where("id = ? AND event_id = ?", id, eventID).
		Updates(map[string]any{
			"name":     name,
			"type":     rtype,
			"quantity": quantity,
		})
	return result.RowsAffected, result.Error
}

// UpdateFieldsAndTerms additionally writes the public flag and the price.
// Only valid while the resource is still private; the service freezes both
// once a resource has gone public.
func (r *resourceRepository) UpdateFieldsAndTerms(ctx context.Context, eventID, id string, name string, rtype models.ResourceType, quantity int, isPublic bool, price float64) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.EventResource{}).
		Where("id = ? AND event_id = ?", id, eventID).
		Updates(map[string]any{
			"name":      name,
			"type":      rtype,
			"quantity":  quantity,
			"is_public": isPublic,
			"price":     price,
		})
	return result.RowsAffected, result.Error
}

func (r *resourceRepository) Delete(ctx context.Context, eventID, id string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND event_id = ?", id, eventID).
		Delete(&models.EventResource{})
	return result.RowsAffected, result.Error
}

// IncrementReserved adds delta to the reserved counter in a single
// conditional UPDATE guarded by the capacity check. Zero rows affected means
// either the resource does not exist or the increment would exceed quantity;
// the caller disambiguates.
func (r *resourceRepository) IncrementReserved(ctx context.Context, eventID, id string, delta int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.EventResource{}).
		Where("id = ? AND event_id = ? AND reserved + ? <= quantity", id, eventID, delta).
		UpdateColumn("reserved", gorm.Expr("reserved + ?", delta))
	return result.RowsAffected, result.Error
}

// ReleaseReserved subtracts from the reserved counter, flooring at zero.
// delta is negative.
func (r *resourceRepository) ReleaseReserved(ctx context.Context, eventID, id string, delta int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.EventResource{}).
		Where("id = ? AND event_id = ?", id, eventID).
		UpdateColumn("reserved", gorm.Expr("GREATEST(reserved + ?, 0)", delta))
	return result.RowsAffected, result.Error
}
