package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Lapatan16/Event-Organization-App-sub000/internal/models"
	"github.com/Lapatan16/Event-Organization-App-sub000/internal/repository"
	"github.com/Lapatan16/Event-Organization-App-sub000/pkg/rabbitmq"
	"github.com/google/uuid"
)

var (
	ErrEventNotFound     = errors.New("event not found")
	ErrResourceNotFound  = errors.New("resource not found")
	ErrCapacityExceeded  = errors.New("reservation exceeds resource capacity")
	ErrUnknownType       = errors.New("unknown resource type")
	ErrNegativePrice     = errors.New("public resource price must not be negative")
	ErrResourceImmutable = errors.New("public resource terms cannot change")
	ErrInvalidDelta      = errors.New("reservation delta must be non-zero")
	ErrCascadeFailed     = errors.New("failed to remove contracts for resource")
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type ResourcePage struct {
	Items    []models.EventResource
	Total    int64
	Page     int
	PageSize int
}

type ResourceService interface {
	List(ctx context.Context, eventID string, page, pageSize int) (*ResourcePage, error)
	ListPublic(ctx context.Context, eventID string) ([]models.EventResource, error)
	Upsert(ctx context.Context, eventID string, res *models.EventResource) error
	Delete(ctx context.Context, eventID, resourceID string) error
	Reserve(ctx context.Context, eventID, resourceID string, delta int) (*models.EventResource, error)
}

type resourceService struct {
	repo         repository.ResourceRepository
	eventRepo    repository.EventRepository
	contractRepo repository.ContractRepository
	publisher    *rabbitmq.Publisher
}

func NewResourceService(repo repository.ResourceRepository, eventRepo repository.EventRepository, contractRepo repository.ContractRepository, publisher *rabbitmq.Publisher) ResourceService {
	return &resourceService{
		repo:         repo,
		eventRepo:    eventRepo,
		contractRepo: contractRepo,
		publisher:    publisher,
	}
}

func (s *resourceService) List(ctx context.Context, eventID string, page, pageSize int) (*ResourcePage, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, ErrEventNotFound
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}

	items, total, err := s.repo.FindByEvent(ctx, eventID, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}

	return &ResourcePage{Items: items, Total: total, Page: page, PageSize: pageSize}, nil
}

func (s *resourceService) ListPublic(ctx context.Context, eventID string) ([]models.EventResource, error) {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return nil, ErrEventNotFound
	}
	resources, err := s.repo.FindPublicByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list public resources: %w", err)
	}
	return resources, nil
}

// Upsert creates a resource when the id is empty, otherwise overwrites the
// existing one. The reserved counter is never written here. A private
// resource can change its price freely and may become public; once public,
// the flag and the price are frozen so sold reservations keep their terms.
// On the update path res is reloaded with the stored row.
func (s *resourceService) Upsert(ctx context.Context, eventID string, res *models.EventResource) error {
	if _, err := s.eventRepo.FindByID(ctx, eventID); err != nil {
		return ErrEventNotFound
	}

	if !res.Type.Known() {
		return fmt.Errorf("%w: %q", ErrUnknownType, res.Type)
	}

	if res.ID == "" {
		if res.IsPublic && res.Price < 0 {
			return ErrNegativePrice
		}
		res.ID = uuid.NewString()
		res.EventID = eventID
		res.Reserved = 0
		if err := s.repo.Create(ctx, res); err != nil {
			return fmt.Errorf("create resource: %w", err)
		}
		return nil
	}

	existing, err := s.repo.FindByID(ctx, eventID, res.ID)
	if err != nil {
		return ErrResourceNotFound
	}

	var rows int64
	if existing.IsPublic {
		if !res.IsPublic || res.Price != existing.Price {
			return ErrResourceImmutable
		}
		rows, err = s.repo.UpdateFields(ctx, eventID, res.ID, res.Name, res.Type, res.Quantity)
	} else {
		if res.IsPublic && res.Price < 0 {
			return ErrNegativePrice
		}
		rows, err = s.repo.UpdateFieldsAndTerms(ctx, eventID, res.ID, res.Name, res.Type, res.Quantity, res.IsPublic, res.Price)
	}
	if err != nil {
		return fmt.Errorf("update resource: %w", err)
	}
	if rows == 0 {
		return ErrResourceNotFound
	}

	stored, err := s.repo.FindByID(ctx, eventID, res.ID)
	if err != nil {
		return fmt.Errorf("reload resource: %w", err)
	}
	*res = *stored
	return nil
}

// Delete removes a resource and cascades over its contracts first. Zero
// contracts removed is the common case and not an error; any other cascade
// failure aborts the deletion so no orphaned contracts are left behind.
func (s *resourceService) Delete(ctx context.Context, eventID, resourceID string) error {
	if _, err := s.repo.FindByID(ctx, eventID, resourceID); err != nil {
		return ErrResourceNotFound
	}

	if _, err := s.contractRepo.DeleteByResource(ctx, resourceID); err != nil {
		return fmt.Errorf("%w: %v", ErrCascadeFailed, err)
	}

	rows, err := s.repo.Delete(ctx, eventID, resourceID)
	if err != nil {
		return fmt.Errorf("delete resource: %w", err)
	}
	if rows == 0 {
		return ErrResourceNotFound
	}
	return nil
}

// Reserve applies delta to the resource's reserved counter. Positive deltas
// go through a single conditional UPDATE with a capacity guard, so
// concurrent bookings of the same resource can never overshoot quantity.
// Negative deltas release units, floored at zero.
func (s *resourceService) Reserve(ctx context.Context, eventID, resourceID string, delta int) (*models.EventResource, error) {
	if delta == 0 {
		return nil, ErrInvalidDelta
	}

	if delta > 0 {
		rows, err := s.repo.IncrementReserved(ctx, eventID, resourceID, delta)
		if err != nil {
			return nil, fmt.Errorf("reserve: %w", err)
		}
		if rows == 0 {
			if _, err := s.repo.FindByID(ctx, eventID, resourceID); err != nil {
				return nil, ErrResourceNotFound
			}
			return nil, ErrCapacityExceeded
		}
	} else {
		rows, err := s.repo.ReleaseReserved(ctx, eventID, resourceID, delta)
		if err != nil {
			return nil, fmt.Errorf("release: %w", err)
		}
		if rows == 0 {
			return nil, ErrResourceNotFound
		}
	}

	res, err := s.repo.FindByID(ctx, eventID, resourceID)
	if err != nil {
		return nil, ErrResourceNotFound
	}

	if delta > 0 && s.publisher != nil {
		_ = s.publisher.Publish("ledger.resource.reserved", res)
	}

	return res, nil
}
