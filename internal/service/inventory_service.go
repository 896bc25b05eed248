package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"estore/internal/cache"
	"estore/internal/errors"
	"estore/internal/model"
	"estore/internal/repository"
)

// InventoryService handles CRUD over store items.
type InventoryService interface {
	List(ctx context.Context) ([]model.StoreItem, error)
	Get(ctx context.Context, idParam string) (*model.StoreItem, error)
	Create(ctx context.Context, item *model.StoreItem) (uuid.UUID, error)
	Update(ctx context.Context, idParam string, fields map[string]interface{}) (bool, error)
	Delete(ctx context.Context, idParam string) (bool, error)
}

type inventoryService struct {
	itemRepo repository.ItemRepository
	cache    *cache.Client
}

// NewInventoryService creates a new inventory service.
func NewInventoryService(itemRepo repository.ItemRepository, cache *cache.Client) InventoryService {
	return &inventoryService{
		itemRepo: itemRepo,
		cache:    cache,
	}
}

// List returns all items.
func (s *inventoryService) List(ctx context.Context) ([]model.StoreItem, error) {
	return s.itemRepo.List(ctx)
}

// Get returns the item, or (nil, nil) when no item matches: for this
// operation absence is an empty success, not a failure.
func (s *inventoryService) Get(ctx context.Context, idParam string) (*model.StoreItem, error) {
	id, err := uuid.Parse(idParam)
	if err != nil {
		return nil, errors.ErrInvalidID
	}

	if cached := s.cache.GetItem(ctx, id.String()); cached != nil {
		return cached, nil
	}

	item, err := s.itemRepo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}

	s.cache.SetItem(ctx, item)
	return item, nil
}

// Create inserts the item as given and returns the generated identifier.
func (s *inventoryService) Create(ctx context.Context, item *model.StoreItem) (uuid.UUID, error) {
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return uuid.Nil, err
	}
	return item.ID, nil
}

// Update applies a partial merge of the supplied fields and reports whether
// anything actually changed.
func (s *inventoryService) Update(ctx context.Context, idParam string, fields map[string]interface{}) (bool, error) {
	id, err := uuid.Parse(idParam)
	if err != nil {
		return false, errors.ErrInvalidID
	}

	if _, err := s.itemRepo.FindByID(ctx, id); err != nil {
		if err == gorm.ErrRecordNotFound {
			return false, errors.ErrItemNotFound
		}
		return false, fmt.Errorf("find item: %w", err)
	}

	// A body with no recognized fields matches but changes nothing.
	if len(fields) == 0 {
		return false, nil
	}

	modified, err := s.itemRepo.UpdateFields(ctx, id, fields)
	if err != nil {
		return false, fmt.Errorf("update item: %w", err)
	}

	s.cache.InvalidateItem(ctx, id.String())
	return modified, nil
}

// Delete removes the item if present and reports whether a deletion occurred.
func (s *inventoryService) Delete(ctx context.Context, idParam string) (bool, error) {
	id, err := uuid.Parse(idParam)
	if err != nil {
		return false, errors.ErrInvalidID
	}

	deleted, err := s.itemRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}

	s.cache.InvalidateItem(ctx, id.String())
	return deleted, nil
}
